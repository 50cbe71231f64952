package model

import (
	"time"

	"github.com/google/uuid"
)

// SensorReadingModel mirrors the 'sensor_readings' table. Rows are
// immutable once inserted.
type SensorReadingModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Moisture    float64   `gorm:"not null"`
	Temperature float64   `gorm:"not null"`
	Humidity    float64   `gorm:"not null"`
	PH          float64   `gorm:"column:ph;not null"`
	Date        time.Time `gorm:"not null;index"`
	Location    string    `gorm:"type:varchar(255)"`
	Crop        string    `gorm:"type:varchar(100)"`
}

// TableName explicitly sets the table name for GORM.
func (SensorReadingModel) TableName() string {
	return "sensor_readings"
}
