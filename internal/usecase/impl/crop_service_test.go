package impl

import (
	"context"
	"testing"
	"time"

	"agromon/internal/domain/entity"
	domainerrors "agromon/internal/domain/errors"
	"agromon/internal/domain/repository"
	mockRepo "agromon/internal/mocks/repository"
	"agromon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cropServiceFixtures holds all test dependencies for crop service tests.
type cropServiceFixtures struct {
	service    usecase.CropUsecase
	cropRepo   *mockRepo.MockCropRepository
	userRepo   *mockRepo.MockUserRepository
	actionRepo *mockRepo.MockActionLogRepository
	sensorRepo *mockRepo.MockSensorRepository
	alertRepo  *mockRepo.MockAlertRepository
}

func createTestCropService(t *testing.T) cropServiceFixtures {
	t.Helper()

	cropRepo := new(mockRepo.MockCropRepository)
	userRepo := new(mockRepo.MockUserRepository)
	actionRepo := new(mockRepo.MockActionLogRepository)
	sensorRepo := new(mockRepo.MockSensorRepository)
	alertRepo := new(mockRepo.MockAlertRepository)
	service := NewCropService(CropServiceParams{
		TxManager:  &stubTxManager{factory: &stubRepoFactory{cropRepo: cropRepo, userRepo: userRepo}},
		CropRepo:   cropRepo,
		UserRepo:   userRepo,
		ActionRepo: actionRepo,
		SensorRepo: sensorRepo,
		AlertRepo:  alertRepo,
		Logger:     discardLogger(),
	})

	return cropServiceFixtures{
		service:    service,
		cropRepo:   cropRepo,
		userRepo:   userRepo,
		actionRepo: actionRepo,
		sensorRepo: sensorRepo,
		alertRepo:  alertRepo,
	}
}

func TestCropService_SubmitAction_AppendsToExisting(t *testing.T) {
	fx := createTestCropService(t)
	ctx := context.Background()
	userID := uuid.New()

	existing := &entity.CropRecord{
		ID:       uuid.New(),
		UserID:   userID,
		CropName: "Maíz",
		Location: "Campo Norte",
		Status:   entity.CropActive,
	}

	fx.cropRepo.On("FindActiveByKey", ctx, userID, "maíz", "campo norte").
		Return(existing, nil)
	fx.cropRepo.On("AppendAction", ctx, existing.ID, mock.AnythingOfType("*entity.ActionEntry")).
		Return(nil)
	fx.cropRepo.On("Save", ctx, existing).Return(nil)

	humidity := 55.5
	output, err := fx.service.SubmitAction(ctx, userID, &usecase.SubmitActionInput{
		CropName:     "  Maíz ",
		Location:     "Campo Norte",
		Type:         "watering",
		Observations: "hojas algo secas",
		Humidity:     &humidity,
	})

	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeActionAdded, output.Outcome)
	require.Len(t, output.Crop.History, 1)
	assert.Equal(t, entity.ActionWatering, output.Crop.History[0].Type)
	assert.Equal(t, "Watering applied", output.Crop.History[0].Action)
	assert.Equal(t, "hojas algo secas", output.Crop.Observations)
	require.NotNil(t, output.Crop.Humidity)
	assert.Equal(t, 55.5, *output.Crop.Humidity)
	fx.cropRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCropService_SubmitAction_CreatesNewCycle(t *testing.T) {
	fx := createTestCropService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.cropRepo.On("FindActiveByKey", ctx, userID, "frijol", "parcela sur").
		Return(nil, repository.ErrCropNotFound)
	fx.cropRepo.On("Create", ctx, mock.AnythingOfType("*entity.CropRecord")).Return(nil)

	output, err := fx.service.SubmitAction(ctx, userID, &usecase.SubmitActionInput{
		CropName: "Frijol",
		Location: "Parcela Sur",
		Seed:     "frijol negro",
	})

	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeNewCrop, output.Outcome)
	assert.Equal(t, entity.CropActive, output.Crop.Status)
	assert.Equal(t, "Frijol", output.Crop.CropName)
	require.Len(t, output.Crop.History, 1)
	assert.Equal(t, entity.ActionSowing, output.Crop.History[0].Type)
	assert.Equal(t, "Sowing of frijol negro", output.Crop.History[0].Action)
	assert.Equal(t, output.Crop.History[0].Date, output.Crop.SowingDate)
	fx.cropRepo.AssertNotCalled(t, "AppendAction", mock.Anything, mock.Anything, mock.Anything)
}

func TestCropService_SubmitAction_RetriesAsAppendOnConflict(t *testing.T) {
	fx := createTestCropService(t)
	ctx := context.Background()
	userID := uuid.New()

	winner := &entity.CropRecord{
		ID:       uuid.New(),
		UserID:   userID,
		CropName: "Maíz",
		Location: "Campo Norte",
		Status:   entity.CropActive,
	}

	// First attempt loses the create race, second finds the winner.
	fx.cropRepo.On("FindActiveByKey", ctx, userID, "maíz", "campo norte").
		Return(nil, repository.ErrCropNotFound).Once()
	fx.cropRepo.On("Create", ctx, mock.AnythingOfType("*entity.CropRecord")).
		Return(repository.ErrDuplicateActiveCrop).Once()
	fx.cropRepo.On("FindActiveByKey", ctx, userID, "maíz", "campo norte").
		Return(winner, nil).Once()
	fx.cropRepo.On("AppendAction", ctx, winner.ID, mock.AnythingOfType("*entity.ActionEntry")).
		Return(nil)
	fx.cropRepo.On("Save", ctx, winner).Return(nil)

	output, err := fx.service.SubmitAction(ctx, userID, &usecase.SubmitActionInput{
		CropName: "Maíz",
		Location: "Campo Norte",
		Type:     "watering",
	})

	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeActionAdded, output.Outcome)
	fx.cropRepo.AssertExpectations(t)
}

func TestCropService_SubmitAction_MissingCropOrLocation(t *testing.T) {
	fx := createTestCropService(t)

	output, err := fx.service.SubmitAction(context.Background(), uuid.New(), &usecase.SubmitActionInput{
		CropName: "   ",
		Location: "Campo Norte",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	fx.cropRepo.AssertNotCalled(t, "FindActiveByKey", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCropService_SubmitAction_UnknownActionType(t *testing.T) {
	fx := createTestCropService(t)

	output, err := fx.service.SubmitAction(context.Background(), uuid.New(), &usecase.SubmitActionInput{
		CropName: "Maíz",
		Location: "Campo Norte",
		Type:     "dancing",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCropService_SubmitAction_SowingRestartsCycleClock(t *testing.T) {
	fx := createTestCropService(t)
	ctx := context.Background()
	userID := uuid.New()

	oldSowing := time.Now().AddDate(0, -3, 0)
	existing := &entity.CropRecord{
		ID:         uuid.New(),
		UserID:     userID,
		CropName:   "Maíz",
		Location:   "Campo Norte",
		Status:     entity.CropActive,
		SowingDate: oldSowing,
	}

	fx.cropRepo.On("FindActiveByKey", ctx, userID, "maíz", "campo norte").
		Return(existing, nil)
	fx.cropRepo.On("AppendAction", ctx, existing.ID, mock.AnythingOfType("*entity.ActionEntry")).
		Return(nil)
	fx.cropRepo.On("Save", ctx, existing).Return(nil)

	output, err := fx.service.SubmitAction(ctx, userID, &usecase.SubmitActionInput{
		CropName: "Maíz",
		Location: "Campo Norte",
		Type:     "sowing",
		Seed:     "maíz criollo",
	})

	require.NoError(t, err)
	assert.True(t, output.Crop.SowingDate.After(oldSowing))
	assert.Equal(t, output.Crop.History[0].Date, output.Crop.SowingDate)
}

func TestCropService_SubmitAction_BlankFieldsDoNotOverride(t *testing.T) {
	fx := createTestCropService(t)
	ctx := context.Background()
	userID := uuid.New()

	humidity := 40.0
	existing := &entity.CropRecord{
		ID:            uuid.New(),
		UserID:        userID,
		CropName:      "Maíz",
		Location:      "Campo Norte",
		Status:        entity.CropActive,
		Humidity:      &humidity,
		BioFertilizer: "Compost",
		Observations:  "todo bien",
	}

	fx.cropRepo.On("FindActiveByKey", ctx, userID, "maíz", "campo norte").
		Return(existing, nil)
	fx.cropRepo.On("AppendAction", ctx, existing.ID, mock.AnythingOfType("*entity.ActionEntry")).
		Return(nil)
	fx.cropRepo.On("Save", ctx, existing).Return(nil)

	output, err := fx.service.SubmitAction(ctx, userID, &usecase.SubmitActionInput{
		CropName: "Maíz",
		Location: "Campo Norte",
		Type:     "harvest",
	})

	require.NoError(t, err)
	assert.Equal(t, "Compost", output.Crop.BioFertilizer)
	assert.Equal(t, "todo bien", output.Crop.Observations)
	require.NotNil(t, output.Crop.Humidity)
	assert.Equal(t, 40.0, *output.Crop.Humidity)
}

func TestCropService_UpdateCrop_UnknownStatus(t *testing.T) {
	fx := createTestCropService(t)

	status := "Flooded"
	crop, err := fx.service.UpdateCrop(context.Background(), uuid.New(), uuid.New(), &usecase.UpdateCropInput{
		Status: &status,
	})

	require.Error(t, err)
	assert.Nil(t, crop)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCropService_UpdateCrop_AbsentStatusKeepsStoredValue(t *testing.T) {
	fx := createTestCropService(t)
	ctx := context.Background()
	userID := uuid.New()
	cropID := uuid.New()

	existing := &entity.CropRecord{
		ID:       cropID,
		UserID:   userID,
		CropName: "Maíz",
		Location: "Campo Principal",
		Status:   entity.CropHarvested,
	}

	fx.cropRepo.On("FindByIDForUser", ctx, userID, cropID).Return(existing, nil)
	fx.cropRepo.On("Save", ctx, existing).Return(nil)

	observations := "listo para vender"
	crop, err := fx.service.UpdateCrop(ctx, userID, cropID, &usecase.UpdateCropInput{
		Observations: &observations,
	})

	require.NoError(t, err)
	// Editing other fields must not revive a finished cycle.
	assert.Equal(t, entity.CropHarvested, crop.Status)
	assert.Equal(t, "listo para vender", crop.Observations)
}

func TestCropService_UpdateCrop_RenameCollidesWithActiveRecord(t *testing.T) {
	fx := createTestCropService(t)
	ctx := context.Background()
	userID := uuid.New()
	cropID := uuid.New()

	existing := &entity.CropRecord{
		ID:       cropID,
		UserID:   userID,
		CropName: "Frijol",
		Location: "Parcela Sur",
		Status:   entity.CropActive,
	}

	fx.cropRepo.On("FindByIDForUser", ctx, userID, cropID).Return(existing, nil)
	fx.cropRepo.On("Save", ctx, existing).Return(repository.ErrDuplicateActiveCrop)

	name := "Maíz"
	crop, err := fx.service.UpdateCrop(ctx, userID, cropID, &usecase.UpdateCropInput{
		CropName: &name,
	})

	require.Error(t, err)
	assert.Nil(t, crop)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCropService_GetCrop_NotFound(t *testing.T) {
	fx := createTestCropService(t)
	ctx := context.Background()
	userID := uuid.New()
	cropID := uuid.New()

	fx.cropRepo.On("FindByIDForUser", ctx, userID, cropID).
		Return(nil, repository.ErrCropNotFound)

	crop, err := fx.service.GetCrop(ctx, userID, cropID)

	require.Error(t, err)
	assert.Nil(t, crop)
	assert.True(t, errors.Is(err, domainerrors.ErrCropNotFound))
}

func TestCropService_DeleteHistoryEntry_ReturnsUpdatedRecord(t *testing.T) {
	fx := createTestCropService(t)
	ctx := context.Background()
	userID := uuid.New()
	cropID := uuid.New()
	actionID := uuid.New()

	reloaded := &entity.CropRecord{ID: cropID, UserID: userID, CropName: "Maíz"}

	fx.cropRepo.On("RemoveAction", ctx, userID, cropID, actionID).Return(nil)
	fx.cropRepo.On("FindByIDForUser", ctx, userID, cropID).Return(reloaded, nil)

	crop, err := fx.service.DeleteHistoryEntry(ctx, userID, cropID, actionID)

	require.NoError(t, err)
	assert.Equal(t, reloaded, crop)
}

func TestCropService_SyncAllData_BundlesEverything(t *testing.T) {
	fx := createTestCropService(t)
	ctx := context.Background()
	userID := uuid.New()

	user := &entity.User{ID: userID, Name: "Ana"}
	crops := []*entity.CropRecord{{ID: uuid.New(), UserID: userID}}
	actions := []*entity.ActionLogEntry{{ID: uuid.New(), UserID: userID}}
	readings := []*entity.SensorReading{{ID: uuid.New(), UserID: userID}}
	alerts := []*entity.Alert{{ID: uuid.New(), UserID: userID}}

	fx.userRepo.On("FindByID", ctx, userID).Return(user, nil)
	fx.cropRepo.On("ListByUser", ctx, userID).Return(crops, nil)
	fx.actionRepo.On("ListByUser", ctx, userID, repository.ActionLogQuery{}).Return(actions, nil)
	fx.sensorRepo.On("ListByUser", ctx, userID, repository.SensorQuery{}).Return(readings, nil)
	fx.alertRepo.On("ListByUser", ctx, userID, false).Return(alerts, nil)

	output, err := fx.service.SyncAllData(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, user, output.User)
	assert.Equal(t, crops, output.Crops)
	assert.Equal(t, actions, output.Actions)
	assert.Equal(t, readings, output.SensorData)
	assert.Equal(t, alerts, output.Alerts)
}
