package middleware

import (
	"crypto/subtle"
	"strings"

	"agromon/config"
	"agromon/internal/domain/entity"
	domainerrors "agromon/internal/domain/errors"
	"agromon/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Context keys the handlers read the authenticated identity from.
const (
	ContextKeyUser   = "user"
	ContextKeyUserID = "userID"
)

// AuthMiddleware resolves the Authorization header to a user account.
// The credential is the opaque value issued at login; clients send it
// raw or with a Bearer prefix.
type AuthMiddleware struct {
	verifier service.CredentialVerifier
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.CredentialVerifier, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, cfg: cfg}
}

// Authenticate resolves the request credential and stores the account on
// the context for handlers to use.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		credential := strings.TrimSpace(c.Request().Header.Get("Authorization"))
		credential = strings.TrimPrefix(credential, "Bearer ")

		user, err := m.verifier.Verify(c.Request().Context(), credential)
		if err != nil {
			return errors.WithStack(err)
		}

		c.Set(ContextKeyUser, user)
		c.Set(ContextKeyUserID, user.ID)

		return next(c)
	}
}

// RequireRole gates a route group to one role. It must run after
// Authenticate.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(ContextKeyUser).(*entity.User)
			if !ok {
				return errors.WithStack(domainerrors.ErrAuthRequired)
			}

			if user.Role != requiredRole {
				if requiredRole == entity.RoleScientist {
					return errors.WithStack(domainerrors.ErrScientistOnly)
				}

				return errors.WithStack(domainerrors.ErrForbidden)
			}

			return next(c)
		}
	}
}

// AuthenticateDevice validates the shared API key field devices present
// when pushing sensor readings.
func (m *AuthMiddleware) AuthenticateDevice(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		apiKey := strings.TrimPrefix(c.Request().Header.Get("Authorization"), "Bearer ")
		if apiKey == "" {
			return errors.WithStack(domainerrors.ErrAuthRequired)
		}

		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(m.cfg.Sensor.APIKey)) != 1 {
			return errors.WithStack(domainerrors.ErrUnauthenticated)
		}

		return next(c)
	}
}

// CurrentUser reads the authenticated account set by Authenticate.
func CurrentUser(c echo.Context) (*entity.User, error) {
	user, ok := c.Get(ContextKeyUser).(*entity.User)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrAuthRequired)
	}

	return user, nil
}
