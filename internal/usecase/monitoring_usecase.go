package usecase

import (
	"context"
	"time"

	"agromon/internal/domain/entity"

	"github.com/google/uuid"
)

// Device ingestion defaults, applied when the field device omits the
// optional measurements.
const (
	DefaultHumidity = 45.0
	DefaultPH       = 6.5
	DefaultLocation = "Campo Principal"
	DefaultCrop     = "Maíz"
)

// --- Input DTOs ---

// IngestReadingInput is one measurement pushed by a field device on behalf
// of a user.
type IngestReadingInput struct {
	UserID      uuid.UUID
	Moisture    float64
	Temperature float64
	Humidity    *float64
	PH          *float64
	Location    string
	Crop        string
}

// ListSensorDataInput narrows a sensor history listing.
type ListSensorDataInput struct {
	Limit     int
	StartDate *time.Time
	EndDate   *time.Time
}

// MonitoringUsecase defines the interface for alerts and sensor data
// business operations.
type MonitoringUsecase interface {
	ListAlerts(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*entity.Alert, error)
	MarkAlertRead(ctx context.Context, userID, alertID uuid.UUID) (*entity.Alert, error)

	ListSensorData(ctx context.Context, userID uuid.UUID, input *ListSensorDataInput) ([]*entity.SensorReading, error)
	LatestSensorData(ctx context.Context, userID uuid.UUID) (*entity.SensorReading, error)

	// IngestReading stores a device measurement, filling omitted fields
	// with the ingestion defaults.
	IngestReading(ctx context.Context, input *IngestReadingInput) (*entity.SensorReading, error)
}
