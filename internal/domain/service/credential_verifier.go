package service

import (
	"context"

	"agromon/internal/domain/entity"
)

// CredentialVerifier resolves the raw Authorization header value of a
// request to the user it identifies. It is the single seam where the
// credential scheme lives: handlers and middleware never inspect the
// credential themselves, so the scheme can be swapped without touching
// the delivery layer.
type CredentialVerifier interface {
	// Verify resolves a credential to its user. It returns an error when
	// the credential is malformed or identifies no known user.
	Verify(ctx context.Context, credential string) (*entity.User, error)
}
