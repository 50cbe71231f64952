package usecase

import (
	"context"

	"agromon/internal/domain/entity"

	"github.com/google/uuid"
)

// RecommendationHistoryLimit caps how many past advisories a scientist
// sees for one farmer.
const RecommendationHistoryLimit = 20

// --- Input DTOs ---

// SendRecommendationInput defines an advisory a scientist sends to a
// farmer. CropID optionally ties it to one of the farmer's records.
type SendRecommendationInput struct {
	FarmerID       uuid.UUID
	CropID         *uuid.UUID
	Recommendation string
	Priority       string
	ScientistName  string
}

// ScientistUsecase defines the cross-farmer operations available to
// scientist accounts. Role enforcement happens in the delivery layer;
// these operations assume the caller is already authorized.
type ScientistUsecase interface {
	ListFarmers(ctx context.Context) ([]*entity.User, error)
	GetFarmer(ctx context.Context, farmerID uuid.UUID) (*entity.User, error)
	FarmerCrops(ctx context.Context, farmerID uuid.UUID) ([]*entity.CropRecord, error)
	FarmerSensorData(ctx context.Context, farmerID uuid.UUID, limit int) ([]*entity.SensorReading, error)
	RecentSensorData(ctx context.Context, limit int) ([]*entity.SensorReading, error)
	GetCropDetail(ctx context.Context, cropID uuid.UUID) (*entity.CropRecord, error)

	// SendRecommendation stores the advisory and raises an alert for the
	// farmer in the same transaction.
	SendRecommendation(ctx context.Context, scientist *entity.User, input *SendRecommendationInput) (*entity.Recommendation, error)

	ListRecommendations(ctx context.Context, farmerID uuid.UUID) ([]*entity.Recommendation, error)
}
