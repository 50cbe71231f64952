package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	"agromon/internal/domain/entity"
	domainerrors "agromon/internal/domain/errors"
	"agromon/internal/domain/repository"
	"agromon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/fx"
)

// moistureThreshold marks a reading as needing irrigation.
const moistureThreshold = 30.0

// statsService implements the StatsUsecase interface.
type statsService struct {
	statsRepo  repository.StatsRepository
	userRepo   repository.UserRepository
	cropRepo   repository.CropRepository
	sensorRepo repository.SensorRepository
	logger     *slog.Logger
}

// StatsServiceParams holds dependencies for statsService, injected by Fx.
type StatsServiceParams struct {
	fx.In

	StatsRepo  repository.StatsRepository
	UserRepo   repository.UserRepository
	CropRepo   repository.CropRepository
	SensorRepo repository.SensorRepository
	Logger     *slog.Logger
}

// NewStatsService is the constructor for statsService.
func NewStatsService(params StatsServiceParams) usecase.StatsUsecase {
	return &statsService{
		statsRepo:  params.StatsRepo,
		userRepo:   params.UserRepo,
		cropRepo:   params.CropRepo,
		sensorRepo: params.SensorRepo,
		logger:     params.Logger,
	}
}

// round1 keeps one decimal, matching what the dashboards display.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// readingAverages computes the mean moisture and temperature of a readings
// window, rounded to one decimal. An empty window averages to zero.
func readingAverages(readings []*entity.SensorReading) (moisture, temperature float64) {
	if len(readings) == 0 {
		return 0, 0
	}

	n := float64(len(readings))
	moisture = round1(lo.SumBy(readings, func(r *entity.SensorReading) float64 { return r.Moisture }) / n)
	temperature = round1(lo.SumBy(readings, func(r *entity.SensorReading) float64 { return r.Temperature }) / n)

	return moisture, temperature
}

// Overview builds the system-wide monitoring summary.
func (srv *statsService) Overview(ctx context.Context) (*usecase.OverviewStats, error) {
	totalFarmers, err := srv.statsRepo.CountUsersByRole(ctx, entity.RoleFarmer)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count farmers")
	}

	totalCrops, err := srv.statsRepo.CountCrops(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count crops")
	}

	totalReadings, err := srv.statsRepo.CountSensorReadings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count sensor readings")
	}

	recent, err := srv.sensorRepo.ListRecent(ctx, usecase.StatsWindowSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load recent readings")
	}

	avgMoisture, avgTemperature := readingAverages(recent)

	return &usecase.OverviewStats{
		TotalFarmers:    totalFarmers,
		TotalCrops:      totalCrops,
		TotalSensorData: totalReadings,
		AvgMoisture:     avgMoisture,
		AvgTemperature:  avgTemperature,
		LastUpdated:     time.Now(),
	}, nil
}

// FarmersRanking builds the farmer productivity ranking.
func (srv *statsService) FarmersRanking(ctx context.Context) ([]*usecase.FarmerRankingEntry, error) {
	rows, err := srv.statsRepo.FarmerCropCounts(ctx, usecase.RankingLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load farmer ranking")
	}

	return lo.Map(rows, func(row *repository.FarmerCropCount, _ int) *usecase.FarmerRankingEntry {
		return &usecase.FarmerRankingEntry{
			Nombre:         row.Name,
			Email:          row.Email,
			Ubicacion:      row.Location,
			TotalProyectos: row.TotalProjects,
			CultivosUnicos: row.UniqueCrops,
		}
	}), nil
}

// BiofertilizerStats builds the biofertilizer usage report.
func (srv *statsService) BiofertilizerStats(ctx context.Context) ([]*usecase.BiofertilizerStat, error) {
	rows, err := srv.statsRepo.BiofertilizerUsage(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load biofertilizer usage")
	}

	return lo.Map(rows, func(row *repository.BiofertilizerCount, _ int) *usecase.BiofertilizerStat {
		return &usecase.BiofertilizerStat{
			Biofertilizante:   row.BioFertilizer,
			TotalProyectos:    row.TotalProjects,
			TotalAgricultores: row.UniqueFarmers,
		}
	}), nil
}

// Simple builds the compact dashboard payload.
func (srv *statsService) Simple(ctx context.Context) (*usecase.SimpleStats, error) {
	totalFarmers, err := srv.statsRepo.CountUsersByRole(ctx, entity.RoleFarmer)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count farmers")
	}

	totalCrops, err := srv.statsRepo.CountCrops(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count crops")
	}

	ranking, err := srv.statsRepo.FarmerCropCounts(ctx, usecase.SimpleRankingLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load farmer ranking")
	}

	biofertilizers, err := srv.statsRepo.BiofertilizerUsage(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load biofertilizer usage")
	}

	return &usecase.SimpleStats{
		RankingAgricultores: lo.Map(ranking, func(row *repository.FarmerCropCount, _ int) *usecase.SimpleRankingEntry {
			return &usecase.SimpleRankingEntry{
				Nombre:         row.Name,
				TotalProyectos: row.TotalProjects,
			}
		}),
		Biofertilizantes: lo.Map(biofertilizers, func(row *repository.BiofertilizerCount, _ int) *usecase.SimpleBiofertilizerEntry {
			return &usecase.SimpleBiofertilizerEntry{
				Biofertilizante: row.BioFertilizer,
				TotalProyectos:  row.TotalProjects,
			}
		}),
		General: usecase.SimpleGeneralStats{
			TotalAgricultores:     totalFarmers,
			TotalProyectos:        totalCrops,
			TotalBiofertilizantes: int64(len(biofertilizers)),
		},
		FechaGeneracion: time.Now(),
	}, nil
}

// FarmerStatsByID builds the per-farmer monitoring summary.
func (srv *statsService) FarmerStatsByID(ctx context.Context, farmerID uuid.UUID) (*usecase.FarmerStats, error) {
	farmer, err := srv.userRepo.FindByID(ctx, farmerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrFarmerNotFound, "farmer stats failed")
		}

		return nil, errors.Wrap(err, "failed to load farmer for stats")
	}

	crops, err := srv.cropRepo.ListByUser(ctx, farmerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list farmer crops for stats")
	}

	readings, err := srv.sensorRepo.ListByUser(ctx, farmerID, repository.SensorQuery{Limit: usecase.StatsWindowSize})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list farmer readings for stats")
	}

	avgMoisture, avgTemperature := readingAverages(readings)

	return &usecase.FarmerStats{
		Farmer: usecase.FarmerStatsProfile{
			Name:     farmer.Name,
			Location: farmer.Location,
			MainCrop: farmer.Crop,
		},
		Crops: usecase.FarmerCropStats{
			Total: len(crops),
			Active: lo.CountBy(crops, func(c *entity.CropRecord) bool {
				return c.Status == entity.CropActive
			}),
			Harvested: lo.CountBy(crops, func(c *entity.CropRecord) bool {
				return c.Status == entity.CropHarvested
			}),
		},
		SensorData: usecase.FarmerSensorStats{
			Total:          len(readings),
			AvgMoisture:    avgMoisture,
			AvgTemperature: avgTemperature,
			NeedsWater: lo.CountBy(readings, func(r *entity.SensorReading) bool {
				return r.Moisture < moistureThreshold
			}),
		},
		LastUpdated: time.Now(),
	}, nil
}
