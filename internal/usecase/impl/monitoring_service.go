package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "agromon/internal/delivery/context"
	"agromon/internal/domain/entity"
	domainerrors "agromon/internal/domain/errors"
	"agromon/internal/domain/repository"
	"agromon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// monitoringService implements the MonitoringUsecase interface.
type monitoringService struct {
	alertRepo  repository.AlertRepository
	sensorRepo repository.SensorRepository
	logger     *slog.Logger
}

// MonitoringServiceParams holds dependencies for monitoringService, injected by Fx.
type MonitoringServiceParams struct {
	fx.In

	AlertRepo  repository.AlertRepository
	SensorRepo repository.SensorRepository
	Logger     *slog.Logger
}

// NewMonitoringService is the constructor for monitoringService.
func NewMonitoringService(params MonitoringServiceParams) usecase.MonitoringUsecase {
	return &monitoringService{
		alertRepo:  params.AlertRepo,
		sensorRepo: params.SensorRepo,
		logger:     params.Logger,
	}
}

func (srv *monitoringService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAlerts retrieves the user's alerts, newest first.
func (srv *monitoringService) ListAlerts(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*entity.Alert, error) {
	alerts, err := srv.alertRepo.ListByUser(ctx, userID, unreadOnly)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list alerts")
	}

	return alerts, nil
}

// MarkAlertRead flips the read flag on one of the user's alerts.
func (srv *monitoringService) MarkAlertRead(ctx context.Context, userID, alertID uuid.UUID) (*entity.Alert, error) {
	alert, err := srv.alertRepo.MarkRead(ctx, userID, alertID)
	if err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAlertNotFound, "alert update failed")
		}

		return nil, errors.Wrap(err, "failed to mark alert as read")
	}

	return alert, nil
}

// ListSensorData retrieves the user's readings, newest first.
func (srv *monitoringService) ListSensorData(ctx context.Context, userID uuid.UUID, input *usecase.ListSensorDataInput) ([]*entity.SensorReading, error) {
	readings, err := srv.sensorRepo.ListByUser(ctx, userID, repository.SensorQuery{
		Limit:     input.Limit,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sensor data")
	}

	return readings, nil
}

// LatestSensorData retrieves the user's single most recent reading.
// ErrNoSensorData passes through so the handler can answer with an empty
// payload the way clients expect.
func (srv *monitoringService) LatestSensorData(ctx context.Context, userID uuid.UUID) (*entity.SensorReading, error) {
	reading, err := srv.sensorRepo.LatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNoSensorData) {
			return nil, repository.ErrNoSensorData
		}

		return nil, errors.Wrap(err, "failed to load latest sensor data")
	}

	return reading, nil
}

// IngestReading stores one device measurement, filling omitted fields with
// the ingestion defaults.
func (srv *monitoringService) IngestReading(ctx context.Context, input *usecase.IngestReadingInput) (*entity.SensorReading, error) {
	reading := &entity.SensorReading{
		ID:          uuid.New(),
		UserID:      input.UserID,
		Moisture:    input.Moisture,
		Temperature: input.Temperature,
		Humidity:    usecase.DefaultHumidity,
		PH:          usecase.DefaultPH,
		Date:        time.Now(),
		Location:    usecase.DefaultLocation,
		Crop:        usecase.DefaultCrop,
	}

	if input.Humidity != nil {
		reading.Humidity = *input.Humidity
	}
	if input.PH != nil {
		reading.PH = *input.PH
	}
	if input.Location != "" {
		reading.Location = input.Location
	}
	if input.Crop != "" {
		reading.Crop = input.Crop
	}

	if err := srv.sensorRepo.Create(ctx, reading); err != nil {
		srv.log(ctx).Warn("Failed to ingest sensor reading",
			slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to ingest sensor reading")
	}

	srv.log(ctx).Debug("Sensor reading stored",
		slog.Any("userID", input.UserID),
		slog.Float64("moisture", reading.Moisture),
		slog.Float64("temperature", reading.Temperature))

	return reading, nil
}
