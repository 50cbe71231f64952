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

// scientistService implements the ScientistUsecase interface.
type scientistService struct {
	txManager  repository.TransactionManager
	userRepo   repository.UserRepository
	cropRepo   repository.CropRepository
	sensorRepo repository.SensorRepository
	recRepo    repository.RecommendationRepository
	logger     *slog.Logger
}

// ScientistServiceParams holds dependencies for scientistService, injected by Fx.
type ScientistServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	UserRepo   repository.UserRepository
	CropRepo   repository.CropRepository
	SensorRepo repository.SensorRepository
	RecRepo    repository.RecommendationRepository
	Logger     *slog.Logger
}

// NewScientistService is the constructor for scientistService.
func NewScientistService(params ScientistServiceParams) usecase.ScientistUsecase {
	return &scientistService{
		txManager:  params.TxManager,
		userRepo:   params.UserRepo,
		cropRepo:   params.CropRepo,
		sensorRepo: params.SensorRepo,
		recRepo:    params.RecRepo,
		logger:     params.Logger,
	}
}

func (srv *scientistService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListFarmers retrieves every farmer account, newest first.
func (srv *scientistService) ListFarmers(ctx context.Context) ([]*entity.User, error) {
	farmers, err := srv.userRepo.ListByRole(ctx, entity.RoleFarmer)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list farmers")
	}

	return farmers, nil
}

// GetFarmer retrieves one farmer's profile.
func (srv *scientistService) GetFarmer(ctx context.Context, farmerID uuid.UUID) (*entity.User, error) {
	farmer, err := srv.loadFarmer(ctx, farmerID)
	if err != nil {
		return nil, err
	}

	return farmer, nil
}

// FarmerCrops retrieves all crop records of one farmer, newest first.
func (srv *scientistService) FarmerCrops(ctx context.Context, farmerID uuid.UUID) ([]*entity.CropRecord, error) {
	crops, err := srv.cropRepo.ListByUser(ctx, farmerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list farmer crops")
	}

	return crops, nil
}

// FarmerSensorData retrieves one farmer's readings, newest first.
func (srv *scientistService) FarmerSensorData(ctx context.Context, farmerID uuid.UUID, limit int) ([]*entity.SensorReading, error) {
	readings, err := srv.sensorRepo.ListByUser(ctx, farmerID, repository.SensorQuery{Limit: limit})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list farmer sensor data")
	}

	return readings, nil
}

// RecentSensorData retrieves the most recent readings across all farmers.
func (srv *scientistService) RecentSensorData(ctx context.Context, limit int) ([]*entity.SensorReading, error) {
	readings, err := srv.sensorRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent sensor data")
	}

	return readings, nil
}

// GetCropDetail retrieves any crop record regardless of owner.
func (srv *scientistService) GetCropDetail(ctx context.Context, cropID uuid.UUID) (*entity.CropRecord, error) {
	crop, err := srv.cropRepo.FindByID(ctx, cropID)
	if err != nil {
		if errors.Is(err, repository.ErrCropNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCropNotFound, "crop lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find crop")
	}

	return crop, nil
}

// SendRecommendation stores the advisory and raises an alert for the
// farmer in the same transaction, so the farmer never sees one without
// the other.
func (srv *scientistService) SendRecommendation(ctx context.Context, scientist *entity.User, input *usecase.SendRecommendationInput) (*entity.Recommendation, error) {
	text := strings.TrimSpace(input.Recommendation)
	if text == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "recommendation text is required")
	}

	priority := entity.AlertPriority(input.Priority)
	if input.Priority == "" {
		priority = entity.PriorityMedium
	} else if !priority.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown priority")
	}

	scientistName := strings.TrimSpace(input.ScientistName)
	if scientistName == "" {
		scientistName = scientist.Name
	}

	rec := &entity.Recommendation{
		ID:             uuid.New(),
		FarmerID:       input.FarmerID,
		CropID:         input.CropID,
		Recommendation: text,
		Priority:       priority,
		ScientistID:    scientist.ID,
		ScientistName:  scientistName,
		Status:         entity.RecommendationPending,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		cropRepo := repoFactory.NewCropRepository()

		if _, err := userRepo.FindByID(ctx, input.FarmerID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrFarmerNotFound, "recommendation target missing")
			}

			return errors.Wrap(err, "failed to load farmer for recommendation")
		}

		if input.CropID != nil {
			if _, err := cropRepo.FindByID(ctx, *input.CropID); err != nil {
				if errors.Is(err, repository.ErrCropNotFound) {
					return errors.Wrap(domainerrors.ErrCropNotFound, "recommendation crop missing")
				}

				return errors.Wrap(err, "failed to load crop for recommendation")
			}
		}

		if err := repoFactory.NewRecommendationRepository().Create(ctx, rec); err != nil {
			return errors.Wrap(err, "failed to create recommendation")
		}

		alert := &entity.Alert{
			ID:       uuid.New(),
			UserID:   input.FarmerID,
			Title:    "Nueva recomendación",
			Message:  text,
			Type:     entity.AlertInfo,
			From:     scientistName,
			Date:     time.Now(),
			Read:     false,
			Priority: priority,
		}

		if err := repoFactory.NewAlertRepository().Create(ctx, alert); err != nil {
			return errors.Wrap(err, "failed to create recommendation alert")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to send recommendation",
			slog.Any("farmerID", input.FarmerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute recommendation transaction")
	}

	srv.log(ctx).Info("Recommendation sent",
		slog.Any("farmerID", input.FarmerID), slog.Any("scientistID", scientist.ID))

	return rec, nil
}

// ListRecommendations retrieves one farmer's advisory history, newest
// first, capped at the history limit.
func (srv *scientistService) ListRecommendations(ctx context.Context, farmerID uuid.UUID) ([]*entity.Recommendation, error) {
	recs, err := srv.recRepo.ListByFarmer(ctx, farmerID, usecase.RecommendationHistoryLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recommendations")
	}

	return recs, nil
}

// loadFarmer fetches a user and maps a miss to the farmer-specific error.
func (srv *scientistService) loadFarmer(ctx context.Context, farmerID uuid.UUID) (*entity.User, error) {
	farmer, err := srv.userRepo.FindByID(ctx, farmerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrFarmerNotFound, "farmer lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find farmer")
	}

	return farmer, nil
}
