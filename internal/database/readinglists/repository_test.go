package readinglists

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/bookshelf/internal/entities"
)

func setupTestDB(t *testing.T) *Repository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "reading_lists.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.ReadingList{}))

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	return NewRepository(db)
}

func TestRepository_CreateAndGet(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	entry := &entities.ReadingList{UserID: 1, BookID: 2, Status: entities.ReadingStatusReading}
	require.NoError(t, repo.CreateReadingList(ctx, entry))
	assert.NotZero(t, entry.ID)

	loaded, err := repo.GetReadingListByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(1), loaded.UserID)
	assert.Equal(t, uint(2), loaded.BookID)
	assert.Equal(t, "Reading", loaded.Status)
}

func TestRepository_GetReadingListByID_NotFound(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.GetReadingListByID(context.Background(), 42)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_GetReadingListsByUser(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateReadingList(ctx, &entities.ReadingList{UserID: 1, BookID: 1, Status: "Reading"}))
	require.NoError(t, repo.CreateReadingList(ctx, &entities.ReadingList{UserID: 1, BookID: 2, Status: "Completed"}))
	require.NoError(t, repo.CreateReadingList(ctx, &entities.ReadingList{UserID: 2, BookID: 1, Status: "Reading"}))

	entries, err := repo.GetReadingListsByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, uint(1), entries[0].BookID)
	assert.Equal(t, uint(2), entries[1].BookID)

	empty, err := repo.GetReadingListsByUser(ctx, 99)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestRepository_DeleteReadingList(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	entry := &entities.ReadingList{UserID: 1, BookID: 1, Status: "Reading"}
	require.NoError(t, repo.CreateReadingList(ctx, entry))

	require.NoError(t, repo.DeleteReadingList(ctx, entry.ID))

	_, err := repo.GetReadingListByID(ctx, entry.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
