package repository

import (
	"context"

	"agromon/internal/domain/entity"

	"github.com/google/uuid"
)

// RecommendationRepository defines the operations for scientist advisory
// persistence.
type RecommendationRepository interface {
	// Create persists a new recommendation.
	Create(ctx context.Context, rec *entity.Recommendation) error

	// ListByFarmer retrieves the farmer's recommendations, newest first,
	// capped at limit.
	ListByFarmer(ctx context.Context, farmerID uuid.UUID, limit int) ([]*entity.Recommendation, error)
}
