package repository

import (
	"context"

	"agromon/internal/domain/entity"

	"github.com/google/uuid"
)

// ActionLogQuery narrows an activity feed listing. A zero value lists
// everything with the default cap.
type ActionLogQuery struct {
	// Type filters entries by action type when non-empty.
	Type entity.ActionType

	// Limit caps the number of returned entries. Zero means the default.
	Limit int
}

// ActionLogRepository defines the operations for the flat activity feed.
// Entries are append-only.
type ActionLogRepository interface {
	// Create persists a new activity feed entry.
	Create(ctx context.Context, entry *entity.ActionLogEntry) error

	// ListByUser retrieves the user's activity feed entries, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, query ActionLogQuery) ([]*entity.ActionLogEntry, error)
}
