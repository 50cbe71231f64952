package impl

import (
	"context"
	"io"
	"log/slog"

	"agromon/internal/domain/repository"
)

// stubTxManager runs the transactional callback directly against a fixed
// factory, so the callback's error reaches the service under test.
type stubTxManager struct {
	factory repository.RepositoryFactory
}

func (m *stubTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

// stubRepoFactory hands the test's mocks to transactional callbacks.
type stubRepoFactory struct {
	userRepo  repository.UserRepository
	cropRepo  repository.CropRepository
	alertRepo repository.AlertRepository
	recRepo   repository.RecommendationRepository
}

func (f *stubRepoFactory) NewUserRepository() repository.UserRepository {
	return f.userRepo
}

func (f *stubRepoFactory) NewCropRepository() repository.CropRepository {
	return f.cropRepo
}

func (f *stubRepoFactory) NewAlertRepository() repository.AlertRepository {
	return f.alertRepo
}

func (f *stubRepoFactory) NewRecommendationRepository() repository.RecommendationRepository {
	return f.recRepo
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
