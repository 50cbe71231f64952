package model

import (
	"time"

	"github.com/google/uuid"
)

// AlertModel mirrors the 'alerts' table.
type AlertModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Title    string    `gorm:"type:varchar(255);not null"`
	Message  string    `gorm:"type:text;not null"`
	Type     string    `gorm:"type:varchar(20);not null;default:'info'"`
	Sender   string    `gorm:"type:varchar(100)"`
	Date     time.Time `gorm:"not null;index"`
	Read     bool      `gorm:"not null;default:false"`
	Priority string    `gorm:"type:varchar(20);not null;default:'medium'"`
}

// TableName explicitly sets the table name for GORM.
func (AlertModel) TableName() string {
	return "alerts"
}
