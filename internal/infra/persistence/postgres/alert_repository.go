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

// alertRepository implements the repository.AlertRepository interface.
type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(db *gorm.DB) repository.AlertRepository {
	return &alertRepository{
		db: db,
	}
}

// Create persists a new alert.
func (repo *alertRepository) Create(ctx context.Context, alert *entity.Alert) error {
	alertM := fromAlertDomain(alert)

	if err := repo.db.WithContext(ctx).Create(alertM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required alert information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create alert")
	}

	return nil
}

// ListByUser retrieves the user's alerts, newest first.
func (repo *alertRepository) ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*entity.Alert, error) {
	q := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC")

	if unreadOnly {
		q = q.Where("read = ?", false)
	}

	var alertModels []*model.AlertModel
	if err := q.Find(&alertModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list alerts by user")
	}

	alerts := make([]*entity.Alert, 0, len(alertModels))
	for _, alertM := range alertModels {
		alerts = append(alerts, toAlertDomain(alertM))
	}

	return alerts, nil
}

// MarkRead flips the read flag of the user's alert.
func (repo *alertRepository) MarkRead(ctx context.Context, userID, alertID uuid.UUID) (*entity.Alert, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.AlertModel{}).
		Where("id = ? AND user_id = ?", alertID, userID).
		Update("read", true)

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to mark alert as read")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrAlertNotFound
	}

	var alertM model.AlertModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", alertID).
		First(&alertM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to reload alert after update")
	}

	return toAlertDomain(&alertM), nil
}

// --- Mapper Functions ---

// toAlertDomain converts a GORM AlertModel to a domain Alert entity.
func toAlertDomain(data *model.AlertModel) *entity.Alert {
	if data == nil {
		return nil
	}

	return &entity.Alert{
		ID:       data.ID,
		UserID:   data.UserID,
		Title:    data.Title,
		Message:  data.Message,
		Type:     entity.AlertType(data.Type),
		From:     data.Sender,
		Date:     data.Date,
		Read:     data.Read,
		Priority: entity.AlertPriority(data.Priority),
	}
}

// fromAlertDomain converts a domain Alert entity to a GORM AlertModel.
func fromAlertDomain(data *entity.Alert) *model.AlertModel {
	if data == nil {
		return nil
	}

	return &model.AlertModel{
		ID:       data.ID,
		UserID:   data.UserID,
		Title:    data.Title,
		Message:  data.Message,
		Type:     string(data.Type),
		Sender:   data.From,
		Date:     data.Date,
		Read:     data.Read,
		Priority: string(data.Priority),
	}
}
