package impl

import (
	"context"
	"testing"

	"agromon/internal/domain/entity"
	domainerrors "agromon/internal/domain/errors"
	"agromon/internal/domain/repository"
	mockRepo "agromon/internal/mocks/repository"
	mockService "agromon/internal/mocks/service"
	"agromon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service  usecase.AuthUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockService.MockPasswordHasher
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	userRepo := new(mockRepo.MockUserRepository)
	hasher := new(mockService.MockPasswordHasher)
	service := NewAuthService(AuthServiceParams{
		TxManager: &stubTxManager{factory: &stubRepoFactory{userRepo: userRepo}},
		UserRepo:  userRepo,
		Hasher:    hasher,
		Logger:    discardLogger(),
	})

	return authServiceFixtures{
		service:  service,
		userRepo: userRepo,
		hasher:   hasher,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.On("Hash", "secret123").Return("hashed-secret", nil)
	fx.userRepo.On("FindByEmail", ctx, "ana@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "  Ana  ",
		Email:    " Ana@Example.com ",
		Password: "secret123",
		Crop:     "Maíz",
		Location: "Valle Norte",
	})

	require.NoError(t, err)
	assert.Equal(t, "Ana", output.User.Name)
	assert.Equal(t, "ana@example.com", output.User.Email)
	assert.Equal(t, "hashed-secret", output.User.PasswordHash)
	assert.Equal(t, entity.RoleFarmer, output.User.Role)
	assert.Equal(t, output.User.ID.String(), output.Token)
	fx.userRepo.AssertExpectations(t)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.On("Hash", "secret123").Return("hashed-secret", nil)
	fx.userRepo.On("FindByEmail", ctx, "ana@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "ana@example.com"}, nil)

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret123",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	fx := createTestAuthService(t)

	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Name:  "Ana",
		Email: "ana@example.com",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           uuid.New(),
		Email:        "ana@example.com",
		PasswordHash: "hashed-secret",
	}

	fx.userRepo.On("FindByEmail", ctx, "ana@example.com").Return(user, nil)
	fx.hasher.On("Check", "secret123", "hashed-secret").Return(true)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    " ANA@example.com ",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, user, output.User)
	assert.Equal(t, user.ID.String(), output.Token)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Email: "ana@example.com", PasswordHash: "hashed-secret"}

	fx.userRepo.On("FindByEmail", ctx, "ana@example.com").Return(user, nil)
	fx.hasher.On("Check", "wrong", "hashed-secret").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ana@example.com",
		Password: "wrong",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "secret123",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_UpdateProfile_OnlyPresentFields(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	existing := &entity.User{
		ID:       userID,
		Name:     "Ana",
		Crop:     "Maíz",
		Location: "Valle Norte",
	}

	fx.userRepo.On("FindByID", ctx, userID).Return(existing, nil)
	fx.userRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	crop := " Frijol "
	user, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{
		Crop: &crop,
	})

	require.NoError(t, err)
	assert.Equal(t, "Frijol", user.Crop)
	assert.Equal(t, "Ana", user.Name)
	assert.Equal(t, "Valle Norte", user.Location)
}

func TestAuthService_UpdateProfile_UserNotFound(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{})

	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
