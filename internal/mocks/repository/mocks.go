// Package repository provides testify mocks for the domain repository
// interfaces, used by the use case unit tests.
package repository

import (
	"context"

	"agromon/internal/domain/entity"
	"agromon/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) ListByRole(ctx context.Context, role entity.Role) ([]*entity.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.User), args.Error(1)
}

// MockCropRepository is a mock implementation of repository.CropRepository.
type MockCropRepository struct {
	mock.Mock
}

func (m *MockCropRepository) FindActiveByKey(ctx context.Context, userID uuid.UUID, cropKey, locationKey string) (*entity.CropRecord, error) {
	args := m.Called(ctx, userID, cropKey, locationKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.CropRecord), args.Error(1)
}

func (m *MockCropRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CropRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.CropRecord), args.Error(1)
}

func (m *MockCropRepository) FindByIDForUser(ctx context.Context, userID, cropID uuid.UUID) (*entity.CropRecord, error) {
	args := m.Called(ctx, userID, cropID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.CropRecord), args.Error(1)
}

func (m *MockCropRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CropRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.CropRecord), args.Error(1)
}

func (m *MockCropRepository) Create(ctx context.Context, crop *entity.CropRecord) error {
	return m.Called(ctx, crop).Error(0)
}

func (m *MockCropRepository) Save(ctx context.Context, crop *entity.CropRecord) error {
	return m.Called(ctx, crop).Error(0)
}

func (m *MockCropRepository) AppendAction(ctx context.Context, cropID uuid.UUID, entry *entity.ActionEntry) error {
	return m.Called(ctx, cropID, entry).Error(0)
}

func (m *MockCropRepository) RemoveAction(ctx context.Context, userID, cropID, actionID uuid.UUID) error {
	return m.Called(ctx, userID, cropID, actionID).Error(0)
}

func (m *MockCropRepository) Delete(ctx context.Context, userID, cropID uuid.UUID) error {
	return m.Called(ctx, userID, cropID).Error(0)
}

// MockActionLogRepository is a mock implementation of repository.ActionLogRepository.
type MockActionLogRepository struct {
	mock.Mock
}

func (m *MockActionLogRepository) Create(ctx context.Context, entry *entity.ActionLogEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockActionLogRepository) ListByUser(ctx context.Context, userID uuid.UUID, query repository.ActionLogQuery) ([]*entity.ActionLogEntry, error) {
	args := m.Called(ctx, userID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.ActionLogEntry), args.Error(1)
}

// MockSensorRepository is a mock implementation of repository.SensorRepository.
type MockSensorRepository struct {
	mock.Mock
}

func (m *MockSensorRepository) Create(ctx context.Context, reading *entity.SensorReading) error {
	return m.Called(ctx, reading).Error(0)
}

func (m *MockSensorRepository) ListByUser(ctx context.Context, userID uuid.UUID, query repository.SensorQuery) ([]*entity.SensorReading, error) {
	args := m.Called(ctx, userID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.SensorReading), args.Error(1)
}

func (m *MockSensorRepository) LatestByUser(ctx context.Context, userID uuid.UUID) (*entity.SensorReading, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.SensorReading), args.Error(1)
}

func (m *MockSensorRepository) ListRecent(ctx context.Context, limit int) ([]*entity.SensorReading, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.SensorReading), args.Error(1)
}

// MockAlertRepository is a mock implementation of repository.AlertRepository.
type MockAlertRepository struct {
	mock.Mock
}

func (m *MockAlertRepository) Create(ctx context.Context, alert *entity.Alert) error {
	return m.Called(ctx, alert).Error(0)
}

func (m *MockAlertRepository) ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*entity.Alert, error) {
	args := m.Called(ctx, userID, unreadOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Alert), args.Error(1)
}

func (m *MockAlertRepository) MarkRead(ctx context.Context, userID, alertID uuid.UUID) (*entity.Alert, error) {
	args := m.Called(ctx, userID, alertID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Alert), args.Error(1)
}

// MockRecommendationRepository is a mock implementation of repository.RecommendationRepository.
type MockRecommendationRepository struct {
	mock.Mock
}

func (m *MockRecommendationRepository) Create(ctx context.Context, rec *entity.Recommendation) error {
	return m.Called(ctx, rec).Error(0)
}

func (m *MockRecommendationRepository) ListByFarmer(ctx context.Context, farmerID uuid.UUID, limit int) ([]*entity.Recommendation, error) {
	args := m.Called(ctx, farmerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Recommendation), args.Error(1)
}

// MockStatsRepository is a mock implementation of repository.StatsRepository.
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) CountUsersByRole(ctx context.Context, role entity.Role) (int64, error) {
	args := m.Called(ctx, role)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) CountCrops(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) CountSensorReadings(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) FarmerCropCounts(ctx context.Context, limit int) ([]*repository.FarmerCropCount, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*repository.FarmerCropCount), args.Error(1)
}

func (m *MockStatsRepository) BiofertilizerUsage(ctx context.Context) ([]*repository.BiofertilizerCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*repository.BiofertilizerCount), args.Error(1)
}

// MockTransactionManager is a mock implementation of repository.TransactionManager.
// By default it runs the callback against a MockRepositoryFactory supplied
// through the test expectation.
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return m.Called(ctx, fn).Error(0)
}

// MockRepositoryFactory is a mock implementation of repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

func (m *MockRepositoryFactory) NewUserRepository() repository.UserRepository {
	return m.Called().Get(0).(repository.UserRepository)
}

func (m *MockRepositoryFactory) NewCropRepository() repository.CropRepository {
	return m.Called().Get(0).(repository.CropRepository)
}

func (m *MockRepositoryFactory) NewAlertRepository() repository.AlertRepository {
	return m.Called().Get(0).(repository.AlertRepository)
}

func (m *MockRepositoryFactory) NewRecommendationRepository() repository.RecommendationRepository {
	return m.Called().Get(0).(repository.RecommendationRepository)
}
