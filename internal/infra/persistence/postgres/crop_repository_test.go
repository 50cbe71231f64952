package postgres

import (
	"context"
	"testing"
	"time"

	"agromon/internal/domain/entity"
	"agromon/internal/domain/repository"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every session on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))

	return db
}

func seedUser(t *testing.T, db *gorm.DB) *entity.User {
	t.Helper()

	user := &entity.User{
		ID:           uuid.New(),
		Name:         "Juan Perez",
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "x",
		Role:         entity.RoleFarmer,
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func newCrop(userID uuid.UUID, name, location string) *entity.CropRecord {
	return &entity.CropRecord{
		ID:         uuid.New(),
		UserID:     userID,
		CropName:   name,
		Location:   location,
		Status:     entity.CropActive,
		SowingDate: time.Now(),
		History: []*entity.ActionEntry{
			entity.NewActionEntry(entity.ActionSowing, name, "", ""),
		},
	}
}

func TestCropRepository_DuplicateActiveBlocked(t *testing.T) {
	db := newTestDB(t)
	repo := NewCropRepository(db)
	user := seedUser(t, db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newCrop(user.ID, "Tomate", "Campo Norte")))

	err := repo.Create(ctx, newCrop(user.ID, "Tomate", "Campo Norte"))
	assert.ErrorIs(t, err, repository.ErrDuplicateActiveCrop)

	// A different location is a different growing cycle.
	assert.NoError(t, repo.Create(ctx, newCrop(user.ID, "Tomate", "Campo Sur")))
}

func TestCropRepository_UniquenessIsPerUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewCropRepository(db)
	farmer := seedUser(t, db)
	neighbor := seedUser(t, db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newCrop(farmer.ID, "Tomate", "Campo Norte")))

	// The same crop and location under another account is unrelated.
	assert.NoError(t, repo.Create(ctx, newCrop(neighbor.ID, "Tomate", "Campo Norte")))

	found, err := repo.FindActiveByKey(ctx, neighbor.ID, "tomate", "campo norte")
	require.NoError(t, err)
	assert.Equal(t, neighbor.ID, found.UserID)
}

func TestCropRepository_HarvestedDoesNotBlockNewCycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewCropRepository(db)
	user := seedUser(t, db)
	ctx := context.Background()

	first := newCrop(user.ID, "Maíz", "Campo Principal")
	require.NoError(t, repo.Create(ctx, first))

	first.Status = entity.CropHarvested
	require.NoError(t, repo.Save(ctx, first))

	// The uniqueness constraint only covers Active records.
	assert.NoError(t, repo.Create(ctx, newCrop(user.ID, "Maíz", "Campo Principal")))

	_, err := repo.FindActiveByKey(ctx, user.ID, "maíz", "campo principal")
	assert.NoError(t, err)
}

func TestCropRepository_FindActiveByKeyIsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	repo := NewCropRepository(db)
	user := seedUser(t, db)
	ctx := context.Background()

	crop := newCrop(user.ID, "  Tomate ", "Campo Norte")
	require.NoError(t, repo.Create(ctx, crop))

	found, err := repo.FindActiveByKey(ctx, user.ID,
		entity.NormalizeKey("TOMATE"), entity.NormalizeKey(" campo norte"))
	require.NoError(t, err)
	assert.Equal(t, crop.ID, found.ID)
	assert.Len(t, found.History, 1)

	_, err = repo.FindActiveByKey(ctx, user.ID, "papa", "campo norte")
	assert.ErrorIs(t, err, repository.ErrCropNotFound)
}

func TestCropRepository_HistoryNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewCropRepository(db)
	user := seedUser(t, db)
	ctx := context.Background()

	crop := newCrop(user.ID, "Frijol", "Parcela 2")
	base := time.Now().Add(-time.Hour)
	crop.History[0].Date = base
	require.NoError(t, repo.Create(ctx, crop))

	watering := entity.NewActionEntry(entity.ActionWatering, "", "", "")
	watering.Date = base.Add(10 * time.Minute)
	require.NoError(t, repo.AppendAction(ctx, crop.ID, watering))

	harvest := entity.NewActionEntry(entity.ActionHarvest, "", "", "")
	harvest.Date = base.Add(20 * time.Minute)
	require.NoError(t, repo.AppendAction(ctx, crop.ID, harvest))

	found, err := repo.FindByIDForUser(ctx, user.ID, crop.ID)
	require.NoError(t, err)
	require.Len(t, found.History, 3)
	assert.Equal(t, harvest.ID, found.History[0].ID)
	assert.Equal(t, watering.ID, found.History[1].ID)
	assert.Equal(t, entity.ActionSowing, found.History[2].Type)
}

func TestCropRepository_RemoveAction(t *testing.T) {
	db := newTestDB(t)
	repo := NewCropRepository(db)
	user := seedUser(t, db)
	other := seedUser(t, db)
	ctx := context.Background()

	crop := newCrop(user.ID, "Cebolla", "Invernadero")
	require.NoError(t, repo.Create(ctx, crop))
	actionID := crop.History[0].ID

	// Another user cannot touch this crop's history.
	err := repo.RemoveAction(ctx, other.ID, crop.ID, actionID)
	assert.ErrorIs(t, err, repository.ErrActionNotFound)

	require.NoError(t, repo.RemoveAction(ctx, user.ID, crop.ID, actionID))

	found, err := repo.FindByIDForUser(ctx, user.ID, crop.ID)
	require.NoError(t, err)
	assert.Empty(t, found.History)

	err = repo.RemoveAction(ctx, user.ID, crop.ID, actionID)
	assert.ErrorIs(t, err, repository.ErrActionNotFound)
}

func TestCropRepository_DeleteRemovesHistory(t *testing.T) {
	db := newTestDB(t)
	repo := NewCropRepository(db)
	user := seedUser(t, db)
	ctx := context.Background()

	crop := newCrop(user.ID, "Papa", "Lote 7")
	require.NoError(t, repo.Create(ctx, crop))

	require.NoError(t, repo.Delete(ctx, user.ID, crop.ID))

	_, err := repo.FindByIDForUser(ctx, user.ID, crop.ID)
	assert.ErrorIs(t, err, repository.ErrCropNotFound)

	err = repo.Delete(ctx, user.ID, crop.ID)
	assert.ErrorIs(t, err, repository.ErrCropNotFound)
}
