// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"agromon/internal/domain/entity"
	domainerrors "agromon/internal/domain/errors"
	"agromon/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for account-related handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, logger: logger}
}

// userSummary is the account shape returned by login and registration,
// using the field names the mobile client expects.
type userSummary struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Crop     string    `json:"cultivo"`
	Location string    `json:"ubicacion"`
}

func summarize(user *entity.User) userSummary {
	return userSummary{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Role:     string(user.Role),
		Crop:     user.Crop,
		Location: user.Location,
	}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}

	if err := c.Validate(&req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"mensaje": "Login exitoso",
		"usuario": summarize(output.User),
		"token":   output.Token,
	})
}

// registerRequest carries the registration payload. Role has no oneof
// constraint: an unknown role falls back to farmer instead of failing.
type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"`
	Crop     string `json:"cultivo"`
	Location string `json:"ubicacion"`
}

// Register handles the registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}

	if err := c.Validate(&req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Crop:     req.Crop,
		Location: req.Location,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"mensaje": "Usuario registrado correctamente",
		"usuario": summarize(output.User),
		"token":   output.Token,
	})
}

// GetUser handles the profile lookup request.
func (h *AuthHandler) GetUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}

	user, err := h.uc.GetUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, user)
}

type updateProfileRequest struct {
	Name     *string `json:"name"`
	Crop     *string `json:"cultivo"`
	Location *string `json:"ubicacion"`
}

// UpdateProfile handles the profile update request.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), userID, &usecase.UpdateProfileInput{
		Name:     req.Name,
		Crop:     req.Crop,
		Location: req.Location,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"mensaje": "Perfil actualizado correctamente",
		"usuario": summarize(user),
	})
}
