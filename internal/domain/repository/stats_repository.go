package repository

import (
	"context"

	"agromon/internal/domain/entity"
)

// FarmerCropCount is one row of the per-farmer project aggregation used by
// the ranking endpoint.
type FarmerCropCount struct {
	Name          string
	Email         string
	Location      string
	TotalProjects int64
	UniqueCrops   int64
}

// BiofertilizerCount is one row of the biofertilizer usage aggregation.
type BiofertilizerCount struct {
	BioFertilizer string
	TotalProjects int64
	UniqueFarmers int64
}

// StatsRepository defines the read-only aggregation queries backing the
// statistics endpoints.
type StatsRepository interface {
	// CountUsersByRole counts users holding the given role.
	CountUsersByRole(ctx context.Context, role entity.Role) (int64, error)

	// CountCrops counts all crop records in the system.
	CountCrops(ctx context.Context) (int64, error)

	// CountSensorReadings counts all stored sensor readings.
	CountSensorReadings(ctx context.Context) (int64, error)

	// FarmerCropCounts aggregates crop records per farmer, ordered by
	// project count descending, capped at limit.
	FarmerCropCounts(ctx context.Context, limit int) ([]*FarmerCropCount, error)

	// BiofertilizerUsage counts crop records per declared biofertilizer,
	// skipping records without one, ordered by count descending.
	BiofertilizerUsage(ctx context.Context) ([]*BiofertilizerCount, error)
}
