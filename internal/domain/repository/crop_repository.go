package repository

import (
	"context"
	"errors"

	"agromon/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCropNotFound is returned when a crop record does not exist or does not
// belong to the requesting user.
var ErrCropNotFound = errors.New("crop not found")

// ErrActionNotFound is returned when a history entry does not exist within
// the addressed crop record.
var ErrActionNotFound = errors.New("action not found")

// ErrDuplicateActiveCrop is returned when an insert would create a second
// Active record for the same (user, crop, location) key. The storage layer
// enforces this with a uniqueness constraint so concurrent submissions
// cannot both create a record.
var ErrDuplicateActiveCrop = errors.New("active crop already exists for this crop and location")

// CropRepository defines the operations for crop record persistence.
// Crop records always load with their full action history, ordered newest
// first.
type CropRepository interface {
	// FindActiveByKey retrieves the user's Active crop record matching the
	// normalized crop and location keys. Harvested and Abandoned records
	// never match.
	FindActiveByKey(ctx context.Context, userID uuid.UUID, cropKey, locationKey string) (*entity.CropRecord, error)

	// FindByID retrieves a single crop record by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CropRecord, error)

	// FindByIDForUser retrieves a crop record only if it belongs to the user.
	FindByIDForUser(ctx context.Context, userID, cropID uuid.UUID) (*entity.CropRecord, error)

	// ListByUser retrieves all of the user's crop records, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CropRecord, error)

	// Create persists a new crop record together with its initial history.
	Create(ctx context.Context, crop *entity.CropRecord) error

	// Save persists field-level changes of an existing crop record. History
	// entries are not written through Save; use AppendAction.
	Save(ctx context.Context, crop *entity.CropRecord) error

	// AppendAction adds a history entry to an existing crop record.
	AppendAction(ctx context.Context, cropID uuid.UUID, entry *entity.ActionEntry) error

	// RemoveAction deletes one history entry from the user's crop record.
	RemoveAction(ctx context.Context, userID, cropID, actionID uuid.UUID) error

	// Delete removes a crop record and its entire history.
	Delete(ctx context.Context, userID, cropID uuid.UUID) error
}
