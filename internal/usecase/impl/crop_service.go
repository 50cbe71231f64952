package impl

import (
	"context"
	"log/slog"
	"strings"
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

// submitAttempts bounds the create-path retry. One retry is enough: after
// a uniqueness violation the winning record exists, so the second attempt
// always takes the append path.
const submitAttempts = 2

// cropService implements the CropUsecase interface.
type cropService struct {
	txManager  repository.TransactionManager
	cropRepo   repository.CropRepository
	userRepo   repository.UserRepository
	actionRepo repository.ActionLogRepository
	sensorRepo repository.SensorRepository
	alertRepo  repository.AlertRepository
	logger     *slog.Logger
}

// CropServiceParams holds dependencies for cropService, injected by Fx.
type CropServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	CropRepo   repository.CropRepository
	UserRepo   repository.UserRepository
	ActionRepo repository.ActionLogRepository
	SensorRepo repository.SensorRepository
	AlertRepo  repository.AlertRepository
	Logger     *slog.Logger
}

// NewCropService is the constructor for cropService.
func NewCropService(params CropServiceParams) usecase.CropUsecase {
	return &cropService{
		txManager:  params.TxManager,
		cropRepo:   params.CropRepo,
		userRepo:   params.UserRepo,
		actionRepo: params.ActionRepo,
		sensorRepo: params.SensorRepo,
		alertRepo:  params.AlertRepo,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cropService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitAction applies one action submission. When an Active record matches
// the normalized (crop, location) key the action is appended to its
// history; otherwise a new growing cycle is created. Two concurrent
// submissions for the same key cannot both create: the storage constraint
// rejects the loser, which then retries down the append path.
func (srv *cropService) SubmitAction(ctx context.Context, userID uuid.UUID, input *usecase.SubmitActionInput) (*usecase.SubmitActionOutput, error) {
	cropName := strings.TrimSpace(input.CropName)
	location := strings.TrimSpace(input.Location)

	if cropName == "" || location == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "crop and location are required")
	}

	actionType := entity.ActionType(input.Type)
	if input.Type != "" && !actionType.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown action type")
	}

	var output *usecase.SubmitActionOutput

	for attempt := 0; attempt < submitAttempts; attempt++ {
		err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			cropRepo := repoFactory.NewCropRepository()

			existing, err := cropRepo.FindActiveByKey(ctx, userID,
				entity.NormalizeKey(cropName), entity.NormalizeKey(location))
			if err == nil {
				output, err = srv.appendToExisting(ctx, cropRepo, existing, actionType, input)

				return err
			}
			if !errors.Is(err, repository.ErrCropNotFound) {
				return errors.Wrap(err, "failed to look up active crop")
			}

			output, err = srv.createNewCycle(ctx, cropRepo, userID, cropName, location, actionType, input)

			return err
		})
		if err == nil {
			return output, nil
		}
		if errors.Is(err, repository.ErrDuplicateActiveCrop) && attempt < submitAttempts-1 {
			srv.log(ctx).Debug("Concurrent crop creation detected, retrying as append",
				slog.Any("userID", userID), slog.String("crop", cropName))

			continue
		}

		srv.log(ctx).Warn("Action submission failed",
			slog.Any("userID", userID), slog.String("crop", cropName), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute action submission transaction")
	}

	return nil, errors.Wrap(domainerrors.ErrInternalError, "action submission retries exhausted")
}

// appendToExisting records the action on an existing growing cycle and
// applies the submission's field overrides.
func (srv *cropService) appendToExisting(
	ctx context.Context,
	cropRepo repository.CropRepository,
	crop *entity.CropRecord,
	actionType entity.ActionType,
	input *usecase.SubmitActionInput,
) (*usecase.SubmitActionOutput, error) {
	if actionType == "" {
		actionType = entity.ActionOther
	}

	entry := entity.NewActionEntry(actionType, strings.TrimSpace(input.Seed),
		strings.TrimSpace(input.BioFertilizer), input.Observations)

	if err := cropRepo.AppendAction(ctx, crop.ID, entry); err != nil {
		return nil, errors.Wrap(err, "failed to append action to crop history")
	}

	// Optional fields only override the stored record when present.
	if input.Humidity != nil {
		crop.Humidity = input.Humidity
	}
	if bf := strings.TrimSpace(input.BioFertilizer); bf != "" {
		crop.BioFertilizer = bf
	}
	if input.Observations != "" {
		crop.Observations = input.Observations
	}
	if input.Recommendations != "" {
		crop.Recommendations = input.Recommendations
	}
	if status := entity.CropStatus(input.Status); input.Status != "" && status.IsValid() {
		crop.Status = status
	}
	// A new sowing restarts the cycle clock.
	if actionType == entity.ActionSowing {
		crop.SowingDate = entry.Date
	}

	if err := cropRepo.Save(ctx, crop); err != nil {
		return nil, errors.Wrap(err, "failed to save crop after appending action")
	}

	crop.Prepend(entry)

	return &usecase.SubmitActionOutput{Crop: crop, Outcome: usecase.OutcomeActionAdded}, nil
}

// createNewCycle opens a new growing cycle seeded with the submission's
// action as its first history entry.
func (srv *cropService) createNewCycle(
	ctx context.Context,
	cropRepo repository.CropRepository,
	userID uuid.UUID,
	cropName, location string,
	actionType entity.ActionType,
	input *usecase.SubmitActionInput,
) (*usecase.SubmitActionOutput, error) {
	if actionType == "" {
		actionType = entity.ActionSowing
	}

	entry := entity.NewActionEntry(actionType, strings.TrimSpace(input.Seed),
		strings.TrimSpace(input.BioFertilizer), input.Observations)

	newCrop := &entity.CropRecord{
		ID:              uuid.New(),
		UserID:          userID,
		CropName:        cropName,
		Location:        location,
		Status:          entity.CropActive,
		Humidity:        input.Humidity,
		BioFertilizer:   strings.TrimSpace(input.BioFertilizer),
		SowingDate:      entry.Date,
		Observations:    input.Observations,
		Recommendations: input.Recommendations,
		History:         []*entity.ActionEntry{entry},
	}

	if err := cropRepo.Create(ctx, newCrop); err != nil {
		return nil, err
	}

	return &usecase.SubmitActionOutput{Crop: newCrop, Outcome: usecase.OutcomeNewCrop}, nil
}

// ListCrops retrieves all of the user's crop records, newest first.
func (srv *cropService) ListCrops(ctx context.Context, userID uuid.UUID) ([]*entity.CropRecord, error) {
	crops, err := srv.cropRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list crops")
	}

	return crops, nil
}

// GetCrop retrieves one of the user's crop records with its full history.
func (srv *cropService) GetCrop(ctx context.Context, userID, cropID uuid.UUID) (*entity.CropRecord, error) {
	crop, err := srv.cropRepo.FindByIDForUser(ctx, userID, cropID)
	if err != nil {
		if errors.Is(err, repository.ErrCropNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCropNotFound, "crop lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find crop")
	}

	return crop, nil
}

// UpdateCrop changes the crop fields present in the input.
func (srv *cropService) UpdateCrop(ctx context.Context, userID, cropID uuid.UUID, input *usecase.UpdateCropInput) (*entity.CropRecord, error) {
	if input.Status != nil && !entity.CropStatus(*input.Status).IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown crop status")
	}

	var updatedCrop *entity.CropRecord

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cropRepo := repoFactory.NewCropRepository()

		crop, err := cropRepo.FindByIDForUser(ctx, userID, cropID)
		if err != nil {
			if errors.Is(err, repository.ErrCropNotFound) {
				return errors.Wrap(domainerrors.ErrCropNotFound, "crop update failed")
			}

			return errors.Wrap(err, "failed to load crop for update")
		}

		if input.CropName != nil && strings.TrimSpace(*input.CropName) != "" {
			crop.CropName = strings.TrimSpace(*input.CropName)
		}
		if input.Location != nil && strings.TrimSpace(*input.Location) != "" {
			crop.Location = strings.TrimSpace(*input.Location)
		}
		if input.Status != nil {
			crop.Status = entity.CropStatus(*input.Status)
		}
		if input.Humidity != nil {
			crop.Humidity = input.Humidity
		}
		if input.BioFertilizer != nil {
			crop.BioFertilizer = strings.TrimSpace(*input.BioFertilizer)
		}
		if input.Observations != nil {
			crop.Observations = *input.Observations
		}
		if input.Recommendations != nil {
			crop.Recommendations = *input.Recommendations
		}

		if err := cropRepo.Save(ctx, crop); err != nil {
			if errors.Is(err, repository.ErrDuplicateActiveCrop) {
				return errors.Wrap(domainerrors.ErrValidationFailed,
					"an active record already exists for this crop and location")
			}

			return errors.Wrap(err, "failed to save crop update")
		}

		updatedCrop = crop

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute crop update transaction")
	}

	return updatedCrop, nil
}

// DeleteCrop removes one of the user's crop records with its history.
func (srv *cropService) DeleteCrop(ctx context.Context, userID, cropID uuid.UUID) error {
	if err := srv.cropRepo.Delete(ctx, userID, cropID); err != nil {
		if errors.Is(err, repository.ErrCropNotFound) {
			return errors.Wrap(domainerrors.ErrCropNotFound, "crop deletion failed")
		}

		return errors.Wrap(err, "failed to delete crop")
	}

	srv.log(ctx).Info("Crop deleted", slog.Any("userID", userID), slog.Any("cropID", cropID))

	return nil
}

// DeleteHistoryEntry removes one action from a crop's history and returns
// the updated record.
func (srv *cropService) DeleteHistoryEntry(ctx context.Context, userID, cropID, actionID uuid.UUID) (*entity.CropRecord, error) {
	if err := srv.cropRepo.RemoveAction(ctx, userID, cropID, actionID); err != nil {
		if errors.Is(err, repository.ErrActionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrActionNotFound, "history entry deletion failed")
		}

		return nil, errors.Wrap(err, "failed to remove history entry")
	}

	crop, err := srv.cropRepo.FindByIDForUser(ctx, userID, cropID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload crop after history deletion")
	}

	return crop, nil
}

// SyncAllData bundles the user's complete state for a full client refresh.
func (srv *cropService) SyncAllData(ctx context.Context, userID uuid.UUID) (*usecase.SyncAllDataOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "sync failed")
		}

		return nil, errors.Wrap(err, "failed to load user for sync")
	}

	crops, err := srv.cropRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list crops for sync")
	}

	actions, err := srv.actionRepo.ListByUser(ctx, userID, repository.ActionLogQuery{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list actions for sync")
	}

	readings, err := srv.sensorRepo.ListByUser(ctx, userID, repository.SensorQuery{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sensor data for sync")
	}

	alerts, err := srv.alertRepo.ListByUser(ctx, userID, false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list alerts for sync")
	}

	srv.log(ctx).Debug("Full sync completed",
		slog.Any("userID", userID),
		slog.Int("crops", len(crops)),
		slog.Int("actions", len(actions)),
		slog.Time("syncedAt", time.Now()))

	return &usecase.SyncAllDataOutput{
		User:       user,
		Crops:      crops,
		Actions:    actions,
		SensorData: readings,
		Alerts:     alerts,
	}, nil
}
