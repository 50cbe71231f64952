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

// recommendationRepository implements the repository.RecommendationRepository interface.
type recommendationRepository struct {
	db *gorm.DB
}

// NewRecommendationRepository is the constructor for recommendationRepository.
func NewRecommendationRepository(db *gorm.DB) repository.RecommendationRepository {
	return &recommendationRepository{
		db: db,
	}
}

// Create persists a new recommendation.
func (repo *recommendationRepository) Create(ctx context.Context, rec *entity.Recommendation) error {
	recM := fromRecommendationDomain(rec)

	if err := repo.db.WithContext(ctx).Create(recM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrFarmerNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required recommendation information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create recommendation")
	}

	// Update the entity with generated values
	rec.CreatedAt = recM.CreatedAt

	return nil
}

// ListByFarmer retrieves the farmer's recommendations, newest first.
func (repo *recommendationRepository) ListByFarmer(ctx context.Context, farmerID uuid.UUID, limit int) ([]*entity.Recommendation, error) {
	q := repo.db.WithContext(ctx).
		Where("farmer_id = ?", farmerID).
		Order("created_at DESC")

	if limit > 0 {
		q = q.Limit(limit)
	}

	var recModels []*model.RecommendationModel
	if err := q.Find(&recModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recommendations by farmer")
	}

	recs := make([]*entity.Recommendation, 0, len(recModels))
	for _, recM := range recModels {
		recs = append(recs, toRecommendationDomain(recM))
	}

	return recs, nil
}

// --- Mapper Functions ---

// toRecommendationDomain converts a GORM RecommendationModel to a domain Recommendation.
func toRecommendationDomain(data *model.RecommendationModel) *entity.Recommendation {
	if data == nil {
		return nil
	}

	return &entity.Recommendation{
		ID:             data.ID,
		FarmerID:       data.FarmerID,
		CropID:         data.CropID,
		Recommendation: data.Recommendation,
		Priority:       entity.AlertPriority(data.Priority),
		ScientistID:    data.ScientistID,
		ScientistName:  data.ScientistName,
		Status:         entity.RecommendationStatus(data.Status),
		CreatedAt:      data.CreatedAt,
	}
}

// fromRecommendationDomain converts a domain Recommendation to a GORM RecommendationModel.
func fromRecommendationDomain(data *entity.Recommendation) *model.RecommendationModel {
	if data == nil {
		return nil
	}

	return &model.RecommendationModel{
		ID:             data.ID,
		FarmerID:       data.FarmerID,
		CropID:         data.CropID,
		Recommendation: data.Recommendation,
		Priority:       string(data.Priority),
		ScientistID:    data.ScientistID,
		ScientistName:  data.ScientistName,
		Status:         string(data.Status),
		CreatedAt:      data.CreatedAt,
	}
}
