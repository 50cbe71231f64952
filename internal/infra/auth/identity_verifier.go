package auth

import (
	"context"

	"agromon/internal/domain/entity"
	domainerrors "agromon/internal/domain/errors"
	"agromon/internal/domain/repository"
	"agromon/internal/domain/service"
	"agromon/internal/errors"

	"github.com/google/uuid"
)

// identityVerifier resolves a bearer credential to a user account. The
// credential is the account identifier itself: the user's id, or their
// email as a fallback for clients that stored it before ids were issued.
type identityVerifier struct {
	userRepo repository.UserRepository
}

// NewIdentityVerifier is the constructor for identityVerifier.
func NewIdentityVerifier(userRepo repository.UserRepository) service.CredentialVerifier {
	return &identityVerifier{
		userRepo: userRepo,
	}
}

// Verify looks up the account the credential names. Unknown credentials
// map to ErrUnauthenticated regardless of whether they were well-formed.
func (v *identityVerifier) Verify(ctx context.Context, credential string) (*entity.User, error) {
	if credential == "" {
		return nil, domainerrors.ErrAuthRequired
	}

	if id, err := uuid.Parse(credential); err == nil {
		user, err := v.userRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return nil, domainerrors.ErrUnauthenticated
			}

			return nil, err
		}

		return user, nil
	}

	user, err := v.userRepo.FindByEmail(ctx, credential)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthenticated
		}

		return nil, err
	}

	return user, nil
}
