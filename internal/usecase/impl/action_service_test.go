package impl

import (
	"context"
	"testing"

	"agromon/internal/domain/entity"
	domainerrors "agromon/internal/domain/errors"
	"agromon/internal/domain/repository"
	mocksrepo "agromon/internal/mocks/repository"
	"agromon/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type actionServiceFixtures struct {
	service    usecase.ActionUsecase
	actionRepo *mocksrepo.MockActionLogRepository
}

func createTestActionService(t *testing.T) actionServiceFixtures {
	t.Helper()

	actionRepo := new(mocksrepo.MockActionLogRepository)

	service := NewActionService(ActionServiceParams{
		ActionRepo: actionRepo,
		Logger:     discardLogger(),
	})

	return actionServiceFixtures{
		service:    service,
		actionRepo: actionRepo,
	}
}

func TestActionService_RecordAction_Success(t *testing.T) {
	fx := createTestActionService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.actionRepo.On("Create", ctx, mock.AnythingOfType("*entity.ActionLogEntry")).Return(nil)

	entry, err := fx.service.RecordAction(ctx, userID, &usecase.RecordActionInput{
		Type:          "fertilization",
		BioFertilizer: "Bocashi",
		Location:      "Parcela 3",
		Crop:          "Tomate",
	})

	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, userID, entry.UserID)
	assert.Equal(t, entity.ActionFertilization, entry.Type)
	assert.Equal(t, "Bocashi", entry.BioFertilizer)
	assert.True(t, entry.Synced)
	assert.False(t, entry.Date.IsZero())
	fx.actionRepo.AssertExpectations(t)
}

func TestActionService_RecordAction_MissingType(t *testing.T) {
	fx := createTestActionService(t)
	ctx := context.Background()

	_, err := fx.service.RecordAction(ctx, uuid.New(), &usecase.RecordActionInput{
		Observations: "sin tipo",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.actionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestActionService_RecordAction_UnknownType(t *testing.T) {
	fx := createTestActionService(t)
	ctx := context.Background()

	_, err := fx.service.RecordAction(ctx, uuid.New(), &usecase.RecordActionInput{
		Type: "dancing",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestActionService_ListActions_AllMeansNoFilter(t *testing.T) {
	fx := createTestActionService(t)
	ctx := context.Background()
	userID := uuid.New()

	entries := []*entity.ActionLogEntry{{ID: uuid.New(), UserID: userID}}
	fx.actionRepo.On("ListByUser", ctx, userID, repository.ActionLogQuery{Limit: 25}).
		Return(entries, nil)

	got, err := fx.service.ListActions(ctx, userID, &usecase.ListActionsInput{Type: "all", Limit: 25})

	require.NoError(t, err)
	assert.Equal(t, entries, got)
	fx.actionRepo.AssertExpectations(t)
}

func TestActionService_ListActions_FiltersByType(t *testing.T) {
	fx := createTestActionService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.actionRepo.On("ListByUser", ctx, userID,
		repository.ActionLogQuery{Type: entity.ActionWatering}).
		Return([]*entity.ActionLogEntry{}, nil)

	got, err := fx.service.ListActions(ctx, userID, &usecase.ListActionsInput{Type: "watering"})

	require.NoError(t, err)
	assert.Empty(t, got)
	fx.actionRepo.AssertExpectations(t)
}
