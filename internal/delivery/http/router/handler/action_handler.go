package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"agromon/internal/delivery/http/middleware"
	domainerrors "agromon/internal/domain/errors"
	"agromon/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ActionHandler holds dependencies for the activity feed handlers.
type ActionHandler struct {
	uc     usecase.ActionUsecase
	logger *slog.Logger
}

// NewActionHandler is the constructor for ActionHandler, injected by Fx.
func NewActionHandler(uc usecase.ActionUsecase, logger *slog.Logger) *ActionHandler {
	return &ActionHandler{uc: uc, logger: logger}
}

type recordActionRequest struct {
	Type          string     `json:"type"`
	Seed          string     `json:"seed"`
	SowingDate    *time.Time `json:"sowingDate"`
	BioFertilizer string     `json:"bioFertilizer"`
	Observations  string     `json:"observations"`
	Location      string     `json:"location"`
	Crop          string     `json:"crop"`
}

// RecordAction handles appending one entry to the activity feed.
func (h *ActionHandler) RecordAction(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req recordActionRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}

	entry, err := h.uc.RecordAction(c.Request().Context(), user.ID, &usecase.RecordActionInput{
		Type:          req.Type,
		Seed:          req.Seed,
		SowingDate:    req.SowingDate,
		BioFertilizer: req.BioFertilizer,
		Observations:  req.Observations,
		Location:      req.Location,
		Crop:          req.Crop,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"mensaje": "Acción registrada correctamente",
		"accion":  entry,
	})
}

// ListActions handles the activity feed listing, optionally filtered by
// type and capped by limit.
func (h *ActionHandler) ListActions(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	entries, err := h.uc.ListActions(c.Request().Context(), user.ID, &usecase.ListActionsInput{
		Type:  c.QueryParam("type"),
		Limit: limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, entries)
}
