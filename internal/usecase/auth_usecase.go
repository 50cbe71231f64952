// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"agromon/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// An invalid or missing role silently falls back to farmer.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Crop     string
	Location string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput carries the profile fields a user may change.
// Nil fields are left untouched.
type UpdateProfileInput struct {
	Name     *string
	Crop     *string
	Location *string
}

// --- Output DTOs ---

// AuthOutput returns the account plus the credential the client presents
// on subsequent requests.
type AuthOutput struct {
	User  *entity.User
	Token string
}

// AuthUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
}
