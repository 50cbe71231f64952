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

// defaultActionLogLimit caps activity feed listings when the caller does
// not ask for a specific page size.
const defaultActionLogLimit = 50

// actionLogRepository implements the repository.ActionLogRepository interface.
type actionLogRepository struct {
	db *gorm.DB
}

// NewActionLogRepository is the constructor for actionLogRepository.
func NewActionLogRepository(db *gorm.DB) repository.ActionLogRepository {
	return &actionLogRepository{
		db: db,
	}
}

// Create persists a new activity feed entry.
func (repo *actionLogRepository) Create(ctx context.Context, entry *entity.ActionLogEntry) error {
	entryM := fromActionLogDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required action information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create action log entry")
	}

	return nil
}

// ListByUser retrieves the user's activity feed entries, newest first.
func (repo *actionLogRepository) ListByUser(ctx context.Context, userID uuid.UUID, query repository.ActionLogQuery) ([]*entity.ActionLogEntry, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = defaultActionLogLimit
	}

	q := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit)

	if query.Type != "" {
		q = q.Where("type = ?", string(query.Type))
	}

	var entryModels []*model.ActionLogModel
	if err := q.Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list action log entries")
	}

	entries := make([]*entity.ActionLogEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toActionLogDomain(entryM))
	}

	return entries, nil
}

// --- Mapper Functions ---

// toActionLogDomain converts a GORM ActionLogModel to a domain ActionLogEntry.
func toActionLogDomain(data *model.ActionLogModel) *entity.ActionLogEntry {
	if data == nil {
		return nil
	}

	return &entity.ActionLogEntry{
		ID:            data.ID,
		UserID:        data.UserID,
		Type:          entity.ActionType(data.Type),
		Seed:          data.Seed,
		SowingDate:    data.SowingDate,
		BioFertilizer: data.BioFertilizer,
		Observations:  data.Observations,
		Date:          data.Date,
		Synced:        data.Synced,
		Location:      data.Location,
		Crop:          data.Crop,
	}
}

// fromActionLogDomain converts a domain ActionLogEntry to a GORM ActionLogModel.
func fromActionLogDomain(data *entity.ActionLogEntry) *model.ActionLogModel {
	if data == nil {
		return nil
	}

	return &model.ActionLogModel{
		ID:            data.ID,
		UserID:        data.UserID,
		Type:          string(data.Type),
		Seed:          data.Seed,
		SowingDate:    data.SowingDate,
		BioFertilizer: data.BioFertilizer,
		Observations:  data.Observations,
		Date:          data.Date,
		Synced:        data.Synced,
		Location:      data.Location,
		Crop:          data.Crop,
	}
}
