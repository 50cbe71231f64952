package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"agromon/internal/delivery/http/middleware"
	domainerrors "agromon/internal/domain/errors"
	"agromon/internal/domain/repository"
	"agromon/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MonitoringHandler holds dependencies for alert and sensor data handlers.
type MonitoringHandler struct {
	uc     usecase.MonitoringUsecase
	logger *slog.Logger
}

// NewMonitoringHandler is the constructor for MonitoringHandler, injected by Fx.
func NewMonitoringHandler(uc usecase.MonitoringUsecase, logger *slog.Logger) *MonitoringHandler {
	return &MonitoringHandler{uc: uc, logger: logger}
}

// ListAlerts handles the alert listing request. unreadOnly=true narrows
// to unread alerts.
func (h *MonitoringHandler) ListAlerts(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	unreadOnly := c.QueryParam("unreadOnly") == "true"

	alerts, err := h.uc.ListAlerts(c.Request().Context(), user.ID, unreadOnly)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, alerts)
}

// MarkAlertRead handles flipping the read flag on one alert.
func (h *MonitoringHandler) MarkAlertRead(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	alertID, err := uuid.Parse(c.Param("alertId"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}

	alert, err := h.uc.MarkAlertRead(c.Request().Context(), user.ID, alertID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"mensaje": "Alerta marcada como leída",
		"alerta":  alert,
	})
}

// ListSensorData handles the sensor history listing with optional limit
// and date range filters.
func (h *MonitoringHandler) ListSensorData(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	input := &usecase.ListSensorDataInput{Limit: limit}
	if raw := c.QueryParam("startDate"); raw != "" {
		start, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return errors.WithStack(domainerrors.ErrValidationFailed)
		}
		input.StartDate = &start
	}
	if raw := c.QueryParam("endDate"); raw != "" {
		end, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return errors.WithStack(domainerrors.ErrValidationFailed)
		}
		input.EndDate = &end
	}

	readings, err := h.uc.ListSensorData(c.Request().Context(), user.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, readings)
}

// LatestSensorData handles the most-recent-reading request. A user with
// no readings gets an empty object, not an error.
func (h *MonitoringHandler) LatestSensorData(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	reading, err := h.uc.LatestSensorData(c.Request().Context(), user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNoSensorData) {
			return c.JSON(http.StatusOK, map[string]any{})
		}

		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, reading)
}
