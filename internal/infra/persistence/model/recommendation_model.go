package model

import (
	"time"

	"github.com/google/uuid"
)

// RecommendationModel mirrors the 'recommendations' table.
type RecommendationModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FarmerID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	CropID         *uuid.UUID `gorm:"type:uuid"`
	Recommendation string     `gorm:"type:text;not null"`
	Priority       string     `gorm:"type:varchar(20);not null;default:'medium'"`
	ScientistID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	ScientistName  string     `gorm:"type:varchar(100)"`
	Status         string     `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecommendationModel) TableName() string {
	return "recommendations"
}
