package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActionLogEntry is a flat, standalone record in a user's activity feed.
// It shares the action vocabulary with crop history but is not linked to
// any crop record, and is read-only once created.
type ActionLogEntry struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"userId"`
	Type          ActionType `json:"type"`
	Seed          string     `json:"seed"`
	SowingDate    *time.Time `json:"sowingDate"`
	BioFertilizer string     `json:"bioFertilizer"`
	Observations  string     `json:"observations"`
	Date          time.Time  `json:"date"`
	Synced        bool       `json:"synced"`
	Location      string     `json:"location"`
	Crop          string     `json:"crop"`
}
