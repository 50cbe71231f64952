package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"agromon/internal/delivery/http/middleware"
	domainerrors "agromon/internal/domain/errors"
	"agromon/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// defaultScientistSensorLimit caps sensor listings on the scientist
// dashboards when no limit is given.
const defaultScientistSensorLimit = 50

// ScientistHandler holds dependencies for the scientist dashboard handlers.
type ScientistHandler struct {
	uc      usecase.ScientistUsecase
	statsUC usecase.StatsUsecase
	logger  *slog.Logger
}

// NewScientistHandler is the constructor for ScientistHandler, injected by Fx.
func NewScientistHandler(uc usecase.ScientistUsecase, statsUC usecase.StatsUsecase, logger *slog.Logger) *ScientistHandler {
	return &ScientistHandler{uc: uc, statsUC: statsUC, logger: logger}
}

// ListFarmers handles the farmer directory request.
func (h *ScientistHandler) ListFarmers(c echo.Context) error {
	farmers, err := h.uc.ListFarmers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, farmers)
}

// GetFarmer handles the single farmer lookup request.
func (h *ScientistHandler) GetFarmer(c echo.Context) error {
	farmerID, err := uuid.Parse(c.Param("farmerId"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}

	farmer, err := h.uc.GetFarmer(c.Request().Context(), farmerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, farmer)
}

// FarmerCrops handles listing one farmer's crop records.
func (h *ScientistHandler) FarmerCrops(c echo.Context) error {
	farmerID, err := uuid.Parse(c.Param("farmerId"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}

	crops, err := h.uc.FarmerCrops(c.Request().Context(), farmerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, crops)
}

// FarmerSensorData handles listing one farmer's readings.
func (h *ScientistHandler) FarmerSensorData(c echo.Context) error {
	farmerID, err := uuid.Parse(c.Param("farmerId"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}

	readings, err := h.uc.FarmerSensorData(c.Request().Context(), farmerID, sensorLimit(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, readings)
}

// RecentSensorData handles listing the newest readings across all farmers.
func (h *ScientistHandler) RecentSensorData(c echo.Context) error {
	readings, err := h.uc.RecentSensorData(c.Request().Context(), sensorLimit(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, readings)
}

// GetCropDetail handles the cross-farmer crop lookup request.
func (h *ScientistHandler) GetCropDetail(c echo.Context) error {
	cropID, err := uuid.Parse(c.Param("cropId"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}

	crop, err := h.uc.GetCropDetail(c.Request().Context(), cropID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, crop)
}

type sendRecommendationRequest struct {
	FarmerID       string `json:"farmerId" validate:"required,uuid"`
	CropID         string `json:"cropId" validate:"omitempty,uuid"`
	Recommendation string `json:"recommendation" validate:"required"`
	Priority       string `json:"priority" validate:"omitempty,oneof=low medium high"`
	ScientistName  string `json:"scientistName"`
}

// SendRecommendation handles the advisory submission.
func (h *ScientistHandler) SendRecommendation(c echo.Context) error {
	scientist, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req sendRecommendationRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}

	if err := c.Validate(&req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	farmerID, err := uuid.Parse(req.FarmerID)
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}

	input := &usecase.SendRecommendationInput{
		FarmerID:       farmerID,
		Recommendation: req.Recommendation,
		Priority:       req.Priority,
		ScientistName:  req.ScientistName,
	}
	if req.CropID != "" {
		cropID, err := uuid.Parse(req.CropID)
		if err != nil {
			return errors.WithStack(domainerrors.ErrValidationFailed)
		}
		input.CropID = &cropID
	}

	rec, err := h.uc.SendRecommendation(c.Request().Context(), scientist, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"success":        true,
		"message":        "Recomendación enviada exitosamente",
		"recommendation": rec,
	})
}

// ListRecommendations handles one farmer's advisory history.
func (h *ScientistHandler) ListRecommendations(c echo.Context) error {
	farmerID, err := uuid.Parse(c.Param("farmerId"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}

	recs, err := h.uc.ListRecommendations(c.Request().Context(), farmerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, recs)
}

// Overview handles the system-wide stats request.
func (h *ScientistHandler) Overview(c echo.Context) error {
	stats, err := h.statsUC.Overview(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, stats)
}

// SimpleStats handles the compact dashboard request.
func (h *ScientistHandler) SimpleStats(c echo.Context) error {
	stats, err := h.statsUC.Simple(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, stats)
}

// FarmersRanking handles the productivity ranking request.
func (h *ScientistHandler) FarmersRanking(c echo.Context) error {
	ranking, err := h.statsUC.FarmersRanking(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, ranking)
}

// BiofertilizerStats handles the biofertilizer usage request.
func (h *ScientistHandler) BiofertilizerStats(c echo.Context) error {
	stats, err := h.statsUC.BiofertilizerStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, stats)
}

// FarmerStats handles the per-farmer stats request.
func (h *ScientistHandler) FarmerStats(c echo.Context) error {
	farmerID, err := uuid.Parse(c.Param("farmerId"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}

	stats, err := h.statsUC.FarmerStatsByID(c.Request().Context(), farmerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, stats)
}

func sensorLimit(c echo.Context) int {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 {
		return defaultScientistSensorLimit
	}

	return limit
}
