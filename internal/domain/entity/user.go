// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system: a farmer working their own
// fields or a scientist advising them. The JSON field names mirror the
// mobile client's wire format (cultivo/ubicacion/fechaRegistro).
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Crop         string    `json:"cultivo"`
	Location     string    `json:"ubicacion"`
	CreatedAt    time.Time `json:"fechaRegistro"`
	UpdatedAt    time.Time `json:"-"`
}
