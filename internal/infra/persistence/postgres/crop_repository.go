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

// historyOrder keeps action history newest first; seq breaks ties between
// entries written within the same timestamp tick.
const historyOrder = "date DESC, seq DESC"

// cropRepository implements the repository.CropRepository interface.
type cropRepository struct {
	db *gorm.DB
}

// NewCropRepository is the constructor for cropRepository.
func NewCropRepository(db *gorm.DB) repository.CropRepository {
	return &cropRepository{
		db: db,
	}
}

// FindActiveByKey retrieves the user's Active crop record matching the
// normalized crop and location keys.
func (repo *cropRepository) FindActiveByKey(ctx context.Context, userID uuid.UUID, cropKey, locationKey string) (*entity.CropRecord, error) {
	var cropM model.CropModel

	if err := repo.db.WithContext(ctx).
		Preload("Actions", func(db *gorm.DB) *gorm.DB {
			return db.Order(historyOrder)
		}).
		Where("user_id = ? AND crop_key = ? AND location_key = ? AND status = ?",
			userID, cropKey, locationKey, string(entity.CropActive)).
		First(&cropM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCropNotFound
		}

		return nil, errors.Wrap(err, "failed to find active crop by key")
	}

	return toCropDomain(&cropM), nil
}

// FindByID retrieves a single crop record by its unique ID.
func (repo *cropRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CropRecord, error) {
	var cropM model.CropModel

	if err := repo.db.WithContext(ctx).
		Preload("Actions", func(db *gorm.DB) *gorm.DB {
			return db.Order(historyOrder)
		}).
		Where("id = ?", id).
		First(&cropM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCropNotFound
		}

		return nil, errors.Wrap(err, "failed to find crop by ID")
	}

	return toCropDomain(&cropM), nil
}

// FindByIDForUser retrieves a crop record only if it belongs to the user.
func (repo *cropRepository) FindByIDForUser(ctx context.Context, userID, cropID uuid.UUID) (*entity.CropRecord, error) {
	var cropM model.CropModel

	if err := repo.db.WithContext(ctx).
		Preload("Actions", func(db *gorm.DB) *gorm.DB {
			return db.Order(historyOrder)
		}).
		Where("id = ? AND user_id = ?", cropID, userID).
		First(&cropM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCropNotFound
		}

		return nil, errors.Wrap(err, "failed to find crop for user")
	}

	return toCropDomain(&cropM), nil
}

// ListByUser retrieves all of the user's crop records, newest first.
func (repo *cropRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CropRecord, error) {
	var cropModels []*model.CropModel

	if err := repo.db.WithContext(ctx).
		Preload("Actions", func(db *gorm.DB) *gorm.DB {
			return db.Order(historyOrder)
		}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&cropModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list crops by user")
	}

	crops := make([]*entity.CropRecord, 0, len(cropModels))
	for _, cropM := range cropModels {
		crops = append(crops, toCropDomain(cropM))
	}

	return crops, nil
}

// Create persists a new crop record together with its initial history.
func (repo *cropRepository) Create(ctx context.Context, crop *entity.CropRecord) error {
	cropM := fromCropDomain(crop)

	if err := repo.db.WithContext(ctx).Create(cropM).Error; err != nil {
		// A uniqueness violation here means another request created the
		// same Active record first; the caller retries as an append.
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateActiveCrop
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required crop information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create crop")
	}

	// Update the entity with generated values
	crop.CreatedAt = cropM.CreatedAt

	return nil
}

// Save persists field-level changes of an existing crop record.
func (repo *cropRepository) Save(ctx context.Context, crop *entity.CropRecord) error {
	cropM := fromCropDomain(crop)

	result := repo.db.WithContext(ctx).
		Model(&model.CropModel{}).
		Where("id = ? AND user_id = ?", crop.ID, crop.UserID).
		Updates(map[string]interface{}{
			"crop_name":       cropM.CropName,
			"location":        cropM.Location,
			"crop_key":        cropM.CropKey,
			"location_key":    cropM.LocationKey,
			"status":          cropM.Status,
			"humidity":        cropM.Humidity,
			"bio_fertilizer":  cropM.BioFertilizer,
			"sowing_date":     cropM.SowingDate,
			"observations":    cropM.Observations,
			"recommendations": cropM.Recommendations,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateActiveCrop
		}

		return errors.Wrap(result.Error, "failed to save crop")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCropNotFound
	}

	return nil
}

// AppendAction adds a history entry to an existing crop record.
func (repo *cropRepository) AppendAction(ctx context.Context, cropID uuid.UUID, entry *entity.ActionEntry) error {
	actionM := fromActionEntryDomain(cropID, entry)

	if err := repo.db.WithContext(ctx).Create(actionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCropNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append crop action")
	}

	return nil
}

// RemoveAction deletes one history entry from the user's crop record.
func (repo *cropRepository) RemoveAction(ctx context.Context, userID, cropID, actionID uuid.UUID) error {
	// Ownership check happens through the crops join condition: the delete
	// touches nothing when the crop is not the user's.
	result := repo.db.WithContext(ctx).
		Where("action_id = ? AND crop_id IN (?)",
			actionID,
			repo.db.Model(&model.CropModel{}).
				Select("id").
				Where("id = ? AND user_id = ?", cropID, userID),
		).
		Delete(&model.CropActionModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to remove crop action")
	}

	if result.RowsAffected == 0 {
		return repository.ErrActionNotFound
	}

	return nil
}

// Delete removes a crop record and its entire history.
func (repo *cropRepository) Delete(ctx context.Context, userID, cropID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", cropID, userID).
		Select("Actions").
		Delete(&model.CropModel{ID: cropID})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete crop")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCropNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCropDomain converts a GORM CropModel to a domain CropRecord entity.
func toCropDomain(data *model.CropModel) *entity.CropRecord {
	if data == nil {
		return nil
	}

	history := make([]*entity.ActionEntry, 0, len(data.Actions))
	for i := range data.Actions {
		history = append(history, toActionEntryDomain(&data.Actions[i]))
	}

	return &entity.CropRecord{
		ID:              data.ID,
		UserID:          data.UserID,
		CropName:        data.CropName,
		Location:        data.Location,
		Status:          entity.CropStatus(data.Status),
		Humidity:        data.Humidity,
		BioFertilizer:   data.BioFertilizer,
		SowingDate:      data.SowingDate,
		Observations:    data.Observations,
		Recommendations: data.Recommendations,
		History:         history,
		CreatedAt:       data.CreatedAt,
	}
}

// fromCropDomain converts a domain CropRecord entity to a GORM CropModel.
// The normalized match keys are always derived here so no caller can store
// a record with stale keys.
func fromCropDomain(data *entity.CropRecord) *model.CropModel {
	if data == nil {
		return nil
	}

	actions := make([]model.CropActionModel, 0, len(data.History))
	for _, entry := range data.History {
		actions = append(actions, *fromActionEntryDomain(data.ID, entry))
	}

	return &model.CropModel{
		ID:              data.ID,
		UserID:          data.UserID,
		CropName:        data.CropName,
		Location:        data.Location,
		CropKey:         entity.NormalizeKey(data.CropName),
		LocationKey:     entity.NormalizeKey(data.Location),
		Status:          string(data.Status),
		Humidity:        data.Humidity,
		BioFertilizer:   data.BioFertilizer,
		SowingDate:      data.SowingDate,
		Observations:    data.Observations,
		Recommendations: data.Recommendations,
		CreatedAt:       data.CreatedAt,
		Actions:         actions,
	}
}

// toActionEntryDomain converts a GORM CropActionModel to a domain ActionEntry.
func toActionEntryDomain(data *model.CropActionModel) *entity.ActionEntry {
	if data == nil {
		return nil
	}

	return &entity.ActionEntry{
		ID:            data.ActionID,
		Date:          data.Date,
		Type:          entity.ActionType(data.Type),
		Seed:          data.Seed,
		Action:        data.Action,
		BioFertilizer: data.BioFertilizer,
		Observations:  data.Observations,
		Synced:        data.Synced,
	}
}

// fromActionEntryDomain converts a domain ActionEntry to a GORM CropActionModel.
func fromActionEntryDomain(cropID uuid.UUID, data *entity.ActionEntry) *model.CropActionModel {
	if data == nil {
		return nil
	}

	return &model.CropActionModel{
		ActionID:      data.ID,
		CropID:        cropID,
		Date:          data.Date,
		Type:          string(data.Type),
		Seed:          data.Seed,
		Action:        data.Action,
		BioFertilizer: data.BioFertilizer,
		Observations:  data.Observations,
		Synced:        data.Synced,
	}
}
