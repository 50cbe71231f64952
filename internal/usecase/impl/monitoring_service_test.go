package impl

import (
	"context"
	"testing"

	"agromon/internal/domain/entity"
	domainerrors "agromon/internal/domain/errors"
	"agromon/internal/domain/repository"
	mockRepo "agromon/internal/mocks/repository"
	"agromon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// monitoringServiceFixtures holds all test dependencies for monitoring service tests.
type monitoringServiceFixtures struct {
	service    usecase.MonitoringUsecase
	alertRepo  *mockRepo.MockAlertRepository
	sensorRepo *mockRepo.MockSensorRepository
}

func createTestMonitoringService(t *testing.T) monitoringServiceFixtures {
	t.Helper()

	alertRepo := new(mockRepo.MockAlertRepository)
	sensorRepo := new(mockRepo.MockSensorRepository)
	service := NewMonitoringService(MonitoringServiceParams{
		AlertRepo:  alertRepo,
		SensorRepo: sensorRepo,
		Logger:     discardLogger(),
	})

	return monitoringServiceFixtures{
		service:    service,
		alertRepo:  alertRepo,
		sensorRepo: sensorRepo,
	}
}

func TestMonitoringService_IngestReading_AppliesDefaults(t *testing.T) {
	fx := createTestMonitoringService(t)
	ctx := context.Background()
	userID := uuid.New()

	var stored *entity.SensorReading

	fx.sensorRepo.On("Create", ctx, mock.AnythingOfType("*entity.SensorReading")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*entity.SensorReading)
		}).
		Return(nil)

	reading, err := fx.service.IngestReading(ctx, &usecase.IngestReadingInput{
		UserID:      userID,
		Moisture:    42.0,
		Temperature: 23.5,
	})

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, reading, stored)
	assert.Equal(t, userID, stored.UserID)
	assert.Equal(t, usecase.DefaultHumidity, stored.Humidity)
	assert.Equal(t, usecase.DefaultPH, stored.PH)
	assert.Equal(t, usecase.DefaultLocation, stored.Location)
	assert.Equal(t, usecase.DefaultCrop, stored.Crop)
	assert.False(t, stored.Date.IsZero())
}

func TestMonitoringService_IngestReading_KeepsProvidedFields(t *testing.T) {
	fx := createTestMonitoringService(t)
	ctx := context.Background()

	fx.sensorRepo.On("Create", ctx, mock.AnythingOfType("*entity.SensorReading")).Return(nil)

	humidity := 70.0
	ph := 7.2
	reading, err := fx.service.IngestReading(ctx, &usecase.IngestReadingInput{
		UserID:      uuid.New(),
		Moisture:    42.0,
		Temperature: 23.5,
		Humidity:    &humidity,
		PH:          &ph,
		Location:    "Invernadero 2",
		Crop:        "Tomate",
	})

	require.NoError(t, err)
	assert.Equal(t, 70.0, reading.Humidity)
	assert.Equal(t, 7.2, reading.PH)
	assert.Equal(t, "Invernadero 2", reading.Location)
	assert.Equal(t, "Tomate", reading.Crop)
}

func TestMonitoringService_LatestSensorData_PassesThroughEmpty(t *testing.T) {
	fx := createTestMonitoringService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.sensorRepo.On("LatestByUser", ctx, userID).Return(nil, repository.ErrNoSensorData)

	reading, err := fx.service.LatestSensorData(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, reading)
	assert.True(t, errors.Is(err, repository.ErrNoSensorData))
}

func TestMonitoringService_MarkAlertRead_NotFound(t *testing.T) {
	fx := createTestMonitoringService(t)
	ctx := context.Background()
	userID := uuid.New()
	alertID := uuid.New()

	fx.alertRepo.On("MarkRead", ctx, userID, alertID).Return(nil, repository.ErrAlertNotFound)

	alert, err := fx.service.MarkAlertRead(ctx, userID, alertID)

	require.Error(t, err)
	assert.Nil(t, alert)
	assert.True(t, errors.Is(err, domainerrors.ErrAlertNotFound))
}
