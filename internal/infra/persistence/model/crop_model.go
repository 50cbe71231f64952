package model

import (
	"time"

	"github.com/google/uuid"
)

// CropModel mirrors the 'crops' table, one row per growing cycle.
//
// CropKey and LocationKey are the normalized (trimmed, lowercased) match
// keys. The partial unique index is scoped per user and closes the
// find-then-create race: two concurrent submissions by one user for the
// same key can never both insert an Active row, the loser gets a
// uniqueness violation and retries as an append. Different users may hold
// the same crop and location.
type CropModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uniq_active_crop,where:status = 'Active'"`
	CropName        string    `gorm:"type:varchar(100);not null"`
	Location        string    `gorm:"type:varchar(255);not null"`
	CropKey         string    `gorm:"type:varchar(100);not null;uniqueIndex:uniq_active_crop,where:status = 'Active'"`
	LocationKey     string    `gorm:"type:varchar(255);not null;uniqueIndex:uniq_active_crop,where:status = 'Active'"`
	Status          string    `gorm:"type:varchar(20);not null;default:'Active'"`
	Humidity        *float64
	BioFertilizer   string    `gorm:"type:varchar(100)"`
	SowingDate      time.Time `gorm:"not null"`
	Observations    string    `gorm:"type:text"`
	Recommendations string    `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Actions []CropActionModel `gorm:"foreignKey:CropID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CropModel) TableName() string {
	return "crops"
}

// CropActionModel mirrors the 'crop_actions' table, the history entries of
// a crop record. Seq is a monotonically increasing insertion counter used
// to break ties between entries sharing a timestamp.
type CropActionModel struct {
	Seq           int64     `gorm:"primaryKey;autoIncrement"`
	ActionID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CropID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Date          time.Time `gorm:"not null"`
	Type          string    `gorm:"type:varchar(20);not null"`
	Seed          string    `gorm:"type:varchar(100)"`
	Action        string    `gorm:"type:text;not null"`
	BioFertilizer string    `gorm:"type:varchar(100)"`
	Observations  string    `gorm:"type:text"`
	Synced        bool      `gorm:"not null;default:true"`
}

// TableName explicitly sets the table name for GORM.
func (CropActionModel) TableName() string {
	return "crop_actions"
}
