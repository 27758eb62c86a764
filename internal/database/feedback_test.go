package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/trentd187/golf-companion/internal/models"
)

// newTestDB opens a private in-memory SQLite database with the feedback table.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Feedback{}))
	return db
}

func TestFeedbackRepositorySave(t *testing.T) {
	db := newTestDB(t)
	repo := NewFeedbackRepository(db)

	fb := models.Feedback{
		ID:          uuid.New(),
		Rating:      4,
		Comment:     "Caddie tips are spot on",
		SubmittedAt: time.Date(2024, time.May, 4, 9, 30, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Save(context.Background(), fb))

	var got models.Feedback
	require.NoError(t, db.First(&got, "id = ?", fb.ID).Error)
	assert.Equal(t, 4, got.Rating)
	assert.Equal(t, fb.Comment, got.Comment)
	assert.True(t, fb.SubmittedAt.Equal(got.SubmittedAt))
}

func TestFeedbackRepositorySaveDuplicate(t *testing.T) {
	repo := NewFeedbackRepository(newTestDB(t))
	fb := models.Feedback{ID: uuid.New(), Rating: 2, SubmittedAt: time.Now()}

	require.NoError(t, repo.Save(context.Background(), fb))
	err := repo.Save(context.Background(), fb)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert feedback "+fb.ID.String())
}

func TestFeedbackRepositoryHonoursContext(t *testing.T) {
	repo := NewFeedbackRepository(newTestDB(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Save(ctx, models.Feedback{ID: uuid.New(), Rating: 5, SubmittedAt: time.Now()})
	require.Error(t, err)
}
