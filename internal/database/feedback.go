package database

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/trentd187/golf-companion/internal/models"
)

// FeedbackRepository stores submitted feedback in the feedback table.
// It satisfies store.FeedbackSink.
type FeedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository returns a repository backed by db.
func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// Save inserts fb. The request context bounds the query.
func (r *FeedbackRepository) Save(ctx context.Context, fb models.Feedback) error {
	if err := r.db.WithContext(ctx).Create(&fb).Error; err != nil {
		return errors.Wrapf(err, "insert feedback %s", fb.ID)
	}
	return nil
}
