package postgres

import (
	"context"

	"agromon/internal/domain/entity"
	domainerrors "agromon/internal/domain/errors"
	"agromon/internal/domain/repository"
	"agromon/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// defaultSensorLimit caps sensor history listings when the caller does not
// ask for a specific page size.
const defaultSensorLimit = 100

// sensorRepository implements the repository.SensorRepository interface.
type sensorRepository struct {
	db *gorm.DB
}

// NewSensorRepository is the constructor for sensorRepository.
func NewSensorRepository(db *gorm.DB) repository.SensorRepository {
	return &sensorRepository{
		db: db,
	}
}

// Create persists a new sensor reading.
func (repo *sensorRepository) Create(ctx context.Context, reading *entity.SensorReading) error {
	readingM := fromSensorDomain(reading)

	if err := repo.db.WithContext(ctx).Create(readingM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required sensor information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create sensor reading")
	}

	return nil
}

// ListByUser retrieves the user's readings, newest first.
func (repo *sensorRepository) ListByUser(ctx context.Context, userID uuid.UUID, query repository.SensorQuery) ([]*entity.SensorReading, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = defaultSensorLimit
	}

	q := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit)

	if query.StartDate != nil {
		q = q.Where("date >= ?", *query.StartDate)
	}
	if query.EndDate != nil {
		q = q.Where("date <= ?", *query.EndDate)
	}

	var readingModels []*model.SensorReadingModel
	if err := q.Find(&readingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list sensor readings")
	}

	readings := make([]*entity.SensorReading, 0, len(readingModels))
	for _, readingM := range readingModels {
		readings = append(readings, toSensorDomain(readingM))
	}

	return readings, nil
}

// LatestByUser retrieves the user's single most recent reading.
func (repo *sensorRepository) LatestByUser(ctx context.Context, userID uuid.UUID) (*entity.SensorReading, error) {
	var readingM model.SensorReadingModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		First(&readingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNoSensorData
		}

		return nil, errors.Wrap(err, "failed to find latest sensor reading")
	}

	return toSensorDomain(&readingM), nil
}

// ListRecent retrieves the most recent readings across all users, newest first.
func (repo *sensorRepository) ListRecent(ctx context.Context, limit int) ([]*entity.SensorReading, error) {
	if limit <= 0 {
		limit = defaultSensorLimit
	}

	var readingModels []*model.SensorReadingModel
	if err := repo.db.WithContext(ctx).
		Order("date DESC").
		Limit(limit).
		Find(&readingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recent sensor readings")
	}

	readings := make([]*entity.SensorReading, 0, len(readingModels))
	for _, readingM := range readingModels {
		readings = append(readings, toSensorDomain(readingM))
	}

	return readings, nil
}

// --- Mapper Functions ---

// toSensorDomain converts a GORM SensorReadingModel to a domain SensorReading.
func toSensorDomain(data *model.SensorReadingModel) *entity.SensorReading {
	if data == nil {
		return nil
	}

	return &entity.SensorReading{
		ID:          data.ID,
		UserID:      data.UserID,
		Moisture:    data.Moisture,
		Temperature: data.Temperature,
		Humidity:    data.Humidity,
		PH:          data.PH,
		Date:        data.Date,
		Location:    data.Location,
		Crop:        data.Crop,
	}
}

// fromSensorDomain converts a domain SensorReading to a GORM SensorReadingModel.
func fromSensorDomain(data *entity.SensorReading) *model.SensorReadingModel {
	if data == nil {
		return nil
	}

	return &model.SensorReadingModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Moisture:    data.Moisture,
		Temperature: data.Temperature,
		Humidity:    data.Humidity,
		PH:          data.PH,
		Date:        data.Date,
		Location:    data.Location,
		Crop:        data.Crop,
	}
}
