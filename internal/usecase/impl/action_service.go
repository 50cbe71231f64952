package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "agromon/internal/delivery/context"
	"agromon/internal/domain/entity"
	domainerrors "agromon/internal/domain/errors"
	"agromon/internal/domain/repository"
	"agromon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// actionService implements the ActionUsecase interface.
type actionService struct {
	actionRepo repository.ActionLogRepository
	logger     *slog.Logger
}

// ActionServiceParams holds dependencies for actionService, injected by Fx.
type ActionServiceParams struct {
	fx.In

	ActionRepo repository.ActionLogRepository
	Logger     *slog.Logger
}

// NewActionService is the constructor for actionService.
func NewActionService(params ActionServiceParams) usecase.ActionUsecase {
	return &actionService{
		actionRepo: params.ActionRepo,
		logger:     params.Logger,
	}
}

func (srv *actionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordAction appends one entry to the user's activity feed.
func (srv *actionService) RecordAction(ctx context.Context, userID uuid.UUID, input *usecase.RecordActionInput) (*entity.ActionLogEntry, error) {
	actionType := entity.ActionType(input.Type)
	if input.Type == "" || !actionType.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "action type is required")
	}

	entry := &entity.ActionLogEntry{
		ID:            uuid.New(),
		UserID:        userID,
		Type:          actionType,
		Seed:          input.Seed,
		SowingDate:    input.SowingDate,
		BioFertilizer: input.BioFertilizer,
		Observations:  input.Observations,
		Date:          time.Now(),
		Synced:        true,
		Location:      input.Location,
		Crop:          input.Crop,
	}

	if err := srv.actionRepo.Create(ctx, entry); err != nil {
		srv.log(ctx).Warn("Failed to record action",
			slog.Any("userID", userID), slog.String("type", input.Type), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to record action")
	}

	return entry, nil
}

// ListActions retrieves the user's activity feed, optionally filtered by
// action type. The filter value "all" means no filter.
func (srv *actionService) ListActions(ctx context.Context, userID uuid.UUID, input *usecase.ListActionsInput) ([]*entity.ActionLogEntry, error) {
	query := repository.ActionLogQuery{Limit: input.Limit}
	if input.Type != "" && input.Type != "all" {
		query.Type = entity.ActionType(input.Type)
	}

	entries, err := srv.actionRepo.ListByUser(ctx, userID, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list actions")
	}

	return entries, nil
}
