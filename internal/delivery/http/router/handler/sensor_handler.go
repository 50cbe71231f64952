package handler

import (
	"log/slog"
	"net/http"

	"agromon/internal/delivery/http/response"
	"agromon/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SensorHandler holds dependencies for the device ingestion handler.
type SensorHandler struct {
	uc     usecase.MonitoringUsecase
	logger *slog.Logger
}

// NewSensorHandler is the constructor for SensorHandler, injected by Fx.
func NewSensorHandler(uc usecase.MonitoringUsecase, logger *slog.Logger) *SensorHandler {
	return &SensorHandler{uc: uc, logger: logger}
}

// ingestReadingRequest is the payload a field device pushes. Moisture and
// temperature are required; the rest fall back to ingestion defaults.
type ingestReadingRequest struct {
	UserID      string   `json:"userId"`
	Moisture    *float64 `json:"moisture"`
	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity"`
	PH          *float64 `json:"ph"`
	Location    string   `json:"location"`
	Crop        string   `json:"crop"`
}

// IngestReading handles a device measurement push.
func (h *SensorHandler) IngestReading(c echo.Context) error {
	var req ingestReadingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "Datos inválidos")
	}

	if req.UserID == "" {
		return response.Error(c, http.StatusBadRequest, "userId es requerido")
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "userId es requerido")
	}

	if req.Moisture == nil || req.Temperature == nil {
		return response.Error(c, http.StatusBadRequest, "Datos del sensor incompletos")
	}

	reading, err := h.uc.IngestReading(c.Request().Context(), &usecase.IngestReadingInput{
		UserID:      userID,
		Moisture:    *req.Moisture,
		Temperature: *req.Temperature,
		Humidity:    req.Humidity,
		PH:          req.PH,
		Location:    req.Location,
		Crop:        req.Crop,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"success": true,
		"message": "Datos del sensor guardados correctamente",
		"data": map[string]any{
			"id":          reading.ID,
			"moisture":    reading.Moisture,
			"temperature": reading.Temperature,
			"timestamp":   reading.Date,
		},
	})
}
