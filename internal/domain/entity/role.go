package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleFarmer indicates a farmer account, the default for new registrations.
	RoleFarmer Role = "farmer"
	// RoleScientist indicates a scientist account with access to cross-farmer data.
	RoleScientist Role = "scientist"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleFarmer, RoleScientist:
		return true
	default:
		return false
	}
}

// RoleOrDefault returns the role when valid, otherwise RoleFarmer.
// Registration never fails on an unknown role; it falls back to farmer.
func RoleOrDefault(s string) Role {
	role := Role(s)
	if role.IsValid() {
		return role
	}

	return RoleFarmer
}
