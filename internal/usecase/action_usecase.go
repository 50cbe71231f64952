package usecase

import (
	"context"
	"time"

	"agromon/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RecordActionInput defines one standalone activity feed entry.
type RecordActionInput struct {
	Type          string
	Seed          string
	SowingDate    *time.Time
	BioFertilizer string
	Observations  string
	Location      string
	Crop          string
}

// ListActionsInput narrows an activity feed listing.
type ListActionsInput struct {
	Type  string
	Limit int
}

// ActionUsecase defines the interface for the standalone activity feed.
type ActionUsecase interface {
	RecordAction(ctx context.Context, userID uuid.UUID, input *RecordActionInput) (*entity.ActionLogEntry, error)
	ListActions(ctx context.Context, userID uuid.UUID, input *ListActionsInput) ([]*entity.ActionLogEntry, error)
}
