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
	"github.com/stretchr/testify/require"
)

// statsServiceFixtures holds all test dependencies for stats service tests.
type statsServiceFixtures struct {
	service    usecase.StatsUsecase
	statsRepo  *mockRepo.MockStatsRepository
	userRepo   *mockRepo.MockUserRepository
	cropRepo   *mockRepo.MockCropRepository
	sensorRepo *mockRepo.MockSensorRepository
}

func createTestStatsService(t *testing.T) statsServiceFixtures {
	t.Helper()

	statsRepo := new(mockRepo.MockStatsRepository)
	userRepo := new(mockRepo.MockUserRepository)
	cropRepo := new(mockRepo.MockCropRepository)
	sensorRepo := new(mockRepo.MockSensorRepository)
	service := NewStatsService(StatsServiceParams{
		StatsRepo:  statsRepo,
		UserRepo:   userRepo,
		CropRepo:   cropRepo,
		SensorRepo: sensorRepo,
		Logger:     discardLogger(),
	})

	return statsServiceFixtures{
		service:    service,
		statsRepo:  statsRepo,
		userRepo:   userRepo,
		cropRepo:   cropRepo,
		sensorRepo: sensorRepo,
	}
}

func TestStatsService_Overview_AveragesRoundedToOneDecimal(t *testing.T) {
	fx := createTestStatsService(t)
	ctx := context.Background()

	readings := []*entity.SensorReading{
		{Moisture: 45.5, Temperature: 21.0},
		{Moisture: 50.4, Temperature: 22.0},
		{Moisture: 33.3, Temperature: 24.5},
	}

	fx.statsRepo.On("CountUsersByRole", ctx, entity.RoleFarmer).Return(int64(4), nil)
	fx.statsRepo.On("CountCrops", ctx).Return(int64(9), nil)
	fx.statsRepo.On("CountSensorReadings", ctx).Return(int64(312), nil)
	fx.sensorRepo.On("ListRecent", ctx, usecase.StatsWindowSize).Return(readings, nil)

	stats, err := fx.service.Overview(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalFarmers)
	assert.Equal(t, int64(9), stats.TotalCrops)
	assert.Equal(t, int64(312), stats.TotalSensorData)
	assert.Equal(t, 43.1, stats.AvgMoisture)
	assert.Equal(t, 22.5, stats.AvgTemperature)
	assert.False(t, stats.LastUpdated.IsZero())
}

func TestStatsService_Overview_NoReadings(t *testing.T) {
	fx := createTestStatsService(t)
	ctx := context.Background()

	fx.statsRepo.On("CountUsersByRole", ctx, entity.RoleFarmer).Return(int64(0), nil)
	fx.statsRepo.On("CountCrops", ctx).Return(int64(0), nil)
	fx.statsRepo.On("CountSensorReadings", ctx).Return(int64(0), nil)
	fx.sensorRepo.On("ListRecent", ctx, usecase.StatsWindowSize).
		Return([]*entity.SensorReading{}, nil)

	stats, err := fx.service.Overview(ctx)

	require.NoError(t, err)
	assert.Equal(t, 0.0, stats.AvgMoisture)
	assert.Equal(t, 0.0, stats.AvgTemperature)
}

func TestStatsService_Simple_BuildsCompactPayload(t *testing.T) {
	fx := createTestStatsService(t)
	ctx := context.Background()

	ranking := []*repository.FarmerCropCount{
		{Name: "Ana", Email: "ana@example.com", TotalProjects: 7, UniqueCrops: 3},
		{Name: "Luis", Email: "luis@example.com", TotalProjects: 4, UniqueCrops: 2},
	}
	biofertilizers := []*repository.BiofertilizerCount{
		{BioFertilizer: "Compost", TotalProjects: 6, UniqueFarmers: 2},
		{BioFertilizer: "Bocashi", TotalProjects: 3, UniqueFarmers: 1},
		{BioFertilizer: "Humus", TotalProjects: 1, UniqueFarmers: 1},
	}

	fx.statsRepo.On("CountUsersByRole", ctx, entity.RoleFarmer).Return(int64(2), nil)
	fx.statsRepo.On("CountCrops", ctx).Return(int64(11), nil)
	fx.statsRepo.On("FarmerCropCounts", ctx, usecase.SimpleRankingLimit).Return(ranking, nil)
	fx.statsRepo.On("BiofertilizerUsage", ctx).Return(biofertilizers, nil)

	stats, err := fx.service.Simple(ctx)

	require.NoError(t, err)
	require.Len(t, stats.RankingAgricultores, 2)
	assert.Equal(t, "Ana", stats.RankingAgricultores[0].Nombre)
	assert.Equal(t, int64(7), stats.RankingAgricultores[0].TotalProyectos)
	require.Len(t, stats.Biofertilizantes, 3)
	assert.Equal(t, "Compost", stats.Biofertilizantes[0].Biofertilizante)
	assert.Equal(t, int64(2), stats.General.TotalAgricultores)
	assert.Equal(t, int64(11), stats.General.TotalProyectos)
	assert.Equal(t, int64(3), stats.General.TotalBiofertilizantes)
	assert.False(t, stats.FechaGeneracion.IsZero())
}

func TestStatsService_FarmersRanking_MapsRows(t *testing.T) {
	fx := createTestStatsService(t)
	ctx := context.Background()

	rows := []*repository.FarmerCropCount{
		{Name: "Ana", Email: "ana@example.com", Location: "Valle Norte", TotalProjects: 7, UniqueCrops: 3},
	}

	fx.statsRepo.On("FarmerCropCounts", ctx, usecase.RankingLimit).Return(rows, nil)

	ranking, err := fx.service.FarmersRanking(ctx)

	require.NoError(t, err)
	require.Len(t, ranking, 1)
	assert.Equal(t, "Ana", ranking[0].Nombre)
	assert.Equal(t, "Valle Norte", ranking[0].Ubicacion)
	assert.Equal(t, int64(7), ranking[0].TotalProyectos)
	assert.Equal(t, int64(3), ranking[0].CultivosUnicos)
}

func TestStatsService_FarmerStatsByID_Summarizes(t *testing.T) {
	fx := createTestStatsService(t)
	ctx := context.Background()
	farmerID := uuid.New()

	farmer := &entity.User{ID: farmerID, Name: "Ana", Location: "Valle Norte", Crop: "Maíz"}
	crops := []*entity.CropRecord{
		{ID: uuid.New(), Status: entity.CropActive},
		{ID: uuid.New(), Status: entity.CropActive},
		{ID: uuid.New(), Status: entity.CropHarvested},
	}
	readings := []*entity.SensorReading{
		{Moisture: 25.0, Temperature: 20.0},
		{Moisture: 29.9, Temperature: 22.0},
		{Moisture: 48.0, Temperature: 21.0},
		{Moisture: 30.0, Temperature: 21.0},
	}

	fx.userRepo.On("FindByID", ctx, farmerID).Return(farmer, nil)
	fx.cropRepo.On("ListByUser", ctx, farmerID).Return(crops, nil)
	fx.sensorRepo.On("ListByUser", ctx, farmerID,
		repository.SensorQuery{Limit: usecase.StatsWindowSize}).Return(readings, nil)

	stats, err := fx.service.FarmerStatsByID(ctx, farmerID)

	require.NoError(t, err)
	assert.Equal(t, "Ana", stats.Farmer.Name)
	assert.Equal(t, "Maíz", stats.Farmer.MainCrop)
	assert.Equal(t, 3, stats.Crops.Total)
	assert.Equal(t, 2, stats.Crops.Active)
	assert.Equal(t, 1, stats.Crops.Harvested)
	assert.Equal(t, 4, stats.SensorData.Total)
	// Only readings strictly below the threshold need irrigation.
	assert.Equal(t, 2, stats.SensorData.NeedsWater)
	assert.Equal(t, 33.2, stats.SensorData.AvgMoisture)
	assert.Equal(t, 21.0, stats.SensorData.AvgTemperature)
}

func TestStatsService_FarmerStatsByID_FarmerMissing(t *testing.T) {
	fx := createTestStatsService(t)
	ctx := context.Background()
	farmerID := uuid.New()

	fx.userRepo.On("FindByID", ctx, farmerID).Return(nil, repository.ErrUserNotFound)

	stats, err := fx.service.FarmerStatsByID(ctx, farmerID)

	require.Error(t, err)
	assert.Nil(t, stats)
	assert.True(t, errors.Is(err, domainerrors.ErrFarmerNotFound))
}
