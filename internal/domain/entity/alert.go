package entity

import (
	"time"

	"github.com/google/uuid"
)

// AlertType classifies an alert for client-side presentation.
type AlertType string

const (
	AlertInfo    AlertType = "info"
	AlertWarning AlertType = "warning"
	AlertSuccess AlertType = "success"
	AlertError   AlertType = "error"
)

// AlertPriority ranks how urgently an alert should be surfaced.
type AlertPriority string

const (
	PriorityLow    AlertPriority = "low"
	PriorityMedium AlertPriority = "medium"
	PriorityHigh   AlertPriority = "high"
)

// IsValid checks if the AlertPriority is a valid value.
func (p AlertPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// Alert is a notification addressed to one user, mutated only through its
// read flag.
type Alert struct {
	ID       uuid.UUID     `json:"id"`
	UserID   uuid.UUID     `json:"userId"`
	Title    string        `json:"title"`
	Message  string        `json:"message"`
	Type     AlertType     `json:"type"`
	From     string        `json:"from"`
	Date     time.Time     `json:"date"`
	Read     bool          `json:"read"`
	Priority AlertPriority `json:"priority"`
}
