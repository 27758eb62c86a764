package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/trentd187/golf-companion/internal/models"
)

// SubmitFeedback acknowledges a rating and comment. When a feedback sink is
// configured the feedback is also saved there, and a sink error is returned;
// the acknowledgement itself never fails.
func (s *Store) SubmitFeedback(ctx context.Context, rating int, comment string) (models.Feedback, error) {
	fb := models.Feedback{
		ID:          uuid.New(),
		Rating:      rating,
		Comment:     comment,
		SubmittedAt: s.now(),
	}
	s.logger.Info("feedback submitted", "feedback_id", fb.ID, "rating", rating)

	// The sink may be a database round trip, so it runs without the lock.
	if s.feedback != nil {
		if err := s.feedback.Save(ctx, fb); err != nil {
			s.logger.Error("save feedback", "feedback_id", fb.ID, "err", err)
			return fb, err
		}
	}

	s.mu.Lock()
	s.changedLocked(TopicFeedback, "feedback.submitted", fb.ID.String())
	s.unlock()
	return fb, nil
}
