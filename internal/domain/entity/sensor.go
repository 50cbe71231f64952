package entity

import (
	"time"

	"github.com/google/uuid"
)

// SensorReading is a timestamped environmental measurement ingested from a
// field device. Readings are immutable once stored.
type SensorReading struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Moisture    float64   `json:"moisture"`
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	PH          float64   `json:"ph"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Crop        string    `json:"crop"`
}
