package model

import (
	"time"

	"github.com/google/uuid"
)

// ActionLogModel mirrors the 'action_logs' table, the flat per-user
// activity feed. Rows are append-only.
type ActionLogModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Type          string    `gorm:"type:varchar(20);not null;index"`
	Seed          string    `gorm:"type:varchar(100)"`
	SowingDate    *time.Time
	BioFertilizer string    `gorm:"type:varchar(100)"`
	Observations  string    `gorm:"type:text"`
	Date          time.Time `gorm:"not null;index"`
	Synced        bool      `gorm:"not null;default:true"`
	Location      string    `gorm:"type:varchar(255)"`
	Crop          string    `gorm:"type:varchar(100)"`
}

// TableName explicitly sets the table name for GORM.
func (ActionLogModel) TableName() string {
	return "action_logs"
}
