package repository

import (
	"context"
	"errors"
	"time"

	"agromon/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNoSensorData is returned when a latest-reading lookup finds no rows.
var ErrNoSensorData = errors.New("no sensor data found")

// SensorQuery narrows a sensor history listing. A zero value lists the
// newest readings with the default cap.
type SensorQuery struct {
	// Limit caps the number of returned readings. Zero means the default.
	Limit int

	// StartDate excludes readings taken before it when non-nil.
	StartDate *time.Time

	// EndDate excludes readings taken after it when non-nil.
	EndDate *time.Time
}

// SensorRepository defines the operations for sensor reading persistence.
// Readings are immutable once stored.
type SensorRepository interface {
	// Create persists a new sensor reading.
	Create(ctx context.Context, reading *entity.SensorReading) error

	// ListByUser retrieves the user's readings, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, query SensorQuery) ([]*entity.SensorReading, error)

	// LatestByUser retrieves the user's single most recent reading.
	LatestByUser(ctx context.Context, userID uuid.UUID) (*entity.SensorReading, error)

	// ListRecent retrieves the most recent readings across all users,
	// newest first.
	ListRecent(ctx context.Context, limit int) ([]*entity.SensorReading, error)
}
