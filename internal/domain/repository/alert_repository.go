package repository

import (
	"context"
	"errors"

	"agromon/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAlertNotFound is returned when an alert does not exist or does not
// belong to the requesting user.
var ErrAlertNotFound = errors.New("alert not found")

// AlertRepository defines the operations for alert persistence.
type AlertRepository interface {
	// Create persists a new alert.
	Create(ctx context.Context, alert *entity.Alert) error

	// ListByUser retrieves the user's alerts, newest first. When unreadOnly
	// is set, read alerts are excluded.
	ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*entity.Alert, error)

	// MarkRead flips the read flag of the user's alert.
	MarkRead(ctx context.Context, userID, alertID uuid.UUID) (*entity.Alert, error)
}
