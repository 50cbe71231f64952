package handler

import (
	"log/slog"
	"net/http"
	"time"

	"agromon/internal/delivery/http/middleware"
	"agromon/internal/domain/entity"
	domainerrors "agromon/internal/domain/errors"
	"agromon/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CropHandler holds dependencies for crop record handlers.
type CropHandler struct {
	uc     usecase.CropUsecase
	logger *slog.Logger
}

// NewCropHandler is the constructor for CropHandler, injected by Fx.
func NewCropHandler(uc usecase.CropUsecase, logger *slog.Logger) *CropHandler {
	return &CropHandler{uc: uc, logger: logger}
}

// submitActionRequest is one action submission. The body keys mirror the
// mobile client's payload.
type submitActionRequest struct {
	Crop            string   `json:"crop"`
	Location        string   `json:"location"`
	ActionType      string   `json:"actionType"`
	Seed            string   `json:"seed"`
	BioFertilizer   string   `json:"bioFertilizer"`
	Observations    string   `json:"observations"`
	Recommendations string   `json:"recommendations"`
	Humidity        *float64 `json:"humidity"`
	Status          string   `json:"status"`
}

// SubmitAction handles the merge-on-submit crop endpoint: the action
// lands on the matching Active record, or opens a new growing cycle.
func (h *CropHandler) SubmitAction(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req submitActionRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}

	output, err := h.uc.SubmitAction(c.Request().Context(), user.ID, &usecase.SubmitActionInput{
		CropName:        req.Crop,
		Location:        req.Location,
		Type:            req.ActionType,
		Seed:            req.Seed,
		BioFertilizer:   req.BioFertilizer,
		Observations:    req.Observations,
		Recommendations: req.Recommendations,
		Humidity:        req.Humidity,
		Status:          req.Status,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	mensaje := "Cultivo creado correctamente"
	if output.Outcome == usecase.OutcomeActionAdded {
		mensaje = "Acción agregada al cultivo existente"
	}

	var accion *entity.ActionEntry
	if len(output.Crop.History) > 0 {
		accion = output.Crop.History[0]
	}

	return c.JSON(http.StatusOK, map[string]any{
		"mensaje": mensaje,
		"tipo":    output.Outcome,
		"cultivo": output.Crop,
		"accion":  accion,
	})
}

// ListCrops handles the crop listing request.
func (h *CropHandler) ListCrops(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	crops, err := h.uc.ListCrops(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, crops)
}

// GetCrop handles the single crop lookup request.
func (h *CropHandler) GetCrop(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	cropID, err := uuid.Parse(c.Param("cropId"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}

	crop, err := h.uc.GetCrop(c.Request().Context(), user.ID, cropID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, crop)
}

type updateCropRequest struct {
	Crop            *string  `json:"crop"`
	Location        *string  `json:"location"`
	Status          *string  `json:"status"`
	Humidity        *float64 `json:"humidity"`
	BioFertilizer   *string  `json:"bioFertilizer"`
	Observations    *string  `json:"observations"`
	Recommendations *string  `json:"recommendations"`
}

// UpdateCrop handles the direct crop edit request.
func (h *CropHandler) UpdateCrop(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	cropID, err := uuid.Parse(c.Param("cropId"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}

	var req updateCropRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}

	crop, err := h.uc.UpdateCrop(c.Request().Context(), user.ID, cropID, &usecase.UpdateCropInput{
		CropName:        req.Crop,
		Location:        req.Location,
		Status:          req.Status,
		Humidity:        req.Humidity,
		BioFertilizer:   req.BioFertilizer,
		Observations:    req.Observations,
		Recommendations: req.Recommendations,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"mensaje": "Cultivo actualizado correctamente",
		"cultivo": crop,
	})
}

// DeleteCrop handles the crop deletion request.
func (h *CropHandler) DeleteCrop(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	cropID, err := uuid.Parse(c.Param("cropId"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}

	if err := h.uc.DeleteCrop(c.Request().Context(), user.ID, cropID); err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"mensaje": "Cultivo eliminado correctamente",
	})
}

// DeleteHistoryEntry handles removal of one action from a crop's history.
func (h *CropHandler) DeleteHistoryEntry(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	cropID, err := uuid.Parse(c.Param("cropId"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}

	actionID, err := uuid.Parse(c.Param("actionId"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}

	crop, err := h.uc.DeleteHistoryEntry(c.Request().Context(), user.ID, cropID, actionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"mensaje": "Acción eliminada correctamente",
		"cultivo": crop,
	})
}

// SyncAllData handles the full client refresh request.
func (h *CropHandler) SyncAllData(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	output, err := h.uc.SyncAllData(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"mensaje":    "Datos sincronizados correctamente",
		"usuario":    summarize(output.User),
		"datos":      output.Crops,
		"acciones":   output.Actions,
		"sensorData": output.SensorData,
		"alertas":    output.Alerts,
		"resumen": map[string]any{
			"total":                len(output.Crops),
			"ultimaSincronizacion": time.Now(),
		},
	})
}
