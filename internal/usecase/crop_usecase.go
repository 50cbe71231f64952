package usecase

import (
	"context"

	"agromon/internal/domain/entity"

	"github.com/google/uuid"
)

// Submission outcomes reported back to the client, telling it whether the
// action landed on an existing record or opened a new growing cycle.
const (
	OutcomeActionAdded = "accion_agregada"
	OutcomeNewCrop     = "nuevo_cultivo"
)

// --- Input DTOs ---

// SubmitActionInput is one action submission against a (crop, location)
// pair. Optional fields only override the stored record when present.
type SubmitActionInput struct {
	CropName        string
	Location        string
	Type            string
	Seed            string
	BioFertilizer   string
	Observations    string
	Recommendations string
	Humidity        *float64
	Status          string
}

// UpdateCropInput carries the crop fields a farmer may edit directly.
// Nil fields are left untouched.
type UpdateCropInput struct {
	CropName        *string
	Location        *string
	Status          *string
	Humidity        *float64
	BioFertilizer   *string
	Observations    *string
	Recommendations *string
}

// --- Output DTOs ---

// SubmitActionOutput reports the affected record and which path the
// submission took.
type SubmitActionOutput struct {
	Crop    *entity.CropRecord
	Outcome string
}

// SyncAllDataOutput bundles everything a client needs to rebuild its
// local state in one round trip.
type SyncAllDataOutput struct {
	User       *entity.User
	Crops      []*entity.CropRecord
	Actions    []*entity.ActionLogEntry
	SensorData []*entity.SensorReading
	Alerts     []*entity.Alert
}

// CropUsecase defines the interface for crop record business operations.
type CropUsecase interface {
	// SubmitAction applies one action: it appends to the matching Active
	// record when one exists, otherwise it creates a new growing cycle.
	SubmitAction(ctx context.Context, userID uuid.UUID, input *SubmitActionInput) (*SubmitActionOutput, error)

	ListCrops(ctx context.Context, userID uuid.UUID) ([]*entity.CropRecord, error)
	GetCrop(ctx context.Context, userID, cropID uuid.UUID) (*entity.CropRecord, error)
	UpdateCrop(ctx context.Context, userID, cropID uuid.UUID, input *UpdateCropInput) (*entity.CropRecord, error)
	DeleteCrop(ctx context.Context, userID, cropID uuid.UUID) error
	DeleteHistoryEntry(ctx context.Context, userID, cropID, actionID uuid.UUID) (*entity.CropRecord, error)
	SyncAllData(ctx context.Context, userID uuid.UUID) (*SyncAllDataOutput, error)
}
