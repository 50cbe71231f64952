package entity

import (
	"time"

	"github.com/google/uuid"
)

// RecommendationStatus tracks the farmer-side lifecycle of an advisory.
type RecommendationStatus string

const (
	RecommendationPending   RecommendationStatus = "pending"
	RecommendationRead      RecommendationStatus = "read"
	RecommendationCompleted RecommendationStatus = "completed"
)

// Recommendation is an advisory message from a scientist to a farmer,
// optionally tied to one of the farmer's crop records.
type Recommendation struct {
	ID             uuid.UUID            `json:"id"`
	FarmerID       uuid.UUID            `json:"farmerId"`
	CropID         *uuid.UUID           `json:"cropId"`
	Recommendation string               `json:"recommendation"`
	Priority       AlertPriority        `json:"priority"`
	ScientistID    uuid.UUID            `json:"scientistId"`
	ScientistName  string               `json:"scientistName"`
	Status         RecommendationStatus `json:"status"`
	CreatedAt      time.Time            `json:"createdAt"`
}
