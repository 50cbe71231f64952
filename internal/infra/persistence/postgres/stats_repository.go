package postgres

import (
	"context"

	"agromon/internal/domain/entity"
	"agromon/internal/domain/repository"
	"agromon/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// statsRepository implements the repository.StatsRepository interface with
// aggregation queries pushed down to the database.
type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository is the constructor for statsRepository.
func NewStatsRepository(db *gorm.DB) repository.StatsRepository {
	return &statsRepository{
		db: db,
	}
}

// CountUsersByRole counts users holding the given role.
func (repo *statsRepository) CountUsersByRole(ctx context.Context, role entity.Role) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("role = ?", string(role)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count users by role")
	}

	return count, nil
}

// CountCrops counts all crop records in the system.
func (repo *statsRepository) CountCrops(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.CropModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count crops")
	}

	return count, nil
}

// CountSensorReadings counts all stored sensor readings.
func (repo *statsRepository) CountSensorReadings(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.SensorReadingModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count sensor readings")
	}

	return count, nil
}

// FarmerCropCounts aggregates crop records per farmer, ordered by project
// count descending. Farmers without crop records are included with zero
// counts so a fresh deployment still produces a ranking.
func (repo *statsRepository) FarmerCropCounts(ctx context.Context, limit int) ([]*repository.FarmerCropCount, error) {
	var rows []*repository.FarmerCropCount

	q := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Select(
			"users.name AS name",
			"users.email AS email",
			"users.location AS location",
			"COUNT(crops.id) AS total_projects",
			"COUNT(DISTINCT crops.crop_key) AS unique_crops",
		).
		Joins("LEFT JOIN crops ON crops.user_id = users.id").
		Where("users.role = ?", string(entity.RoleFarmer)).
		Group("users.id, users.name, users.email, users.location").
		Order("total_projects DESC")

	if limit > 0 {
		q = q.Limit(limit)
	}

	if err := q.Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate farmer crop counts")
	}

	return rows, nil
}

// BiofertilizerUsage counts crop records per declared biofertilizer,
// skipping records without one, ordered by count descending.
func (repo *statsRepository) BiofertilizerUsage(ctx context.Context) ([]*repository.BiofertilizerCount, error) {
	var rows []*repository.BiofertilizerCount

	if err := repo.db.WithContext(ctx).
		Model(&model.CropModel{}).
		Select(
			"bio_fertilizer",
			"COUNT(*) AS total_projects",
			"COUNT(DISTINCT user_id) AS unique_farmers",
		).
		Where("bio_fertilizer <> ''").
		Group("bio_fertilizer").
		Order("total_projects DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate biofertilizer usage")
	}

	return rows, nil
}
