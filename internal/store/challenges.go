package store

import "github.com/trentd187/golf-companion/internal/models"

// WeeklyChallenges returns this week's challenges.
func (s *Store) WeeklyChallenges() []models.WeeklyChallenge {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.challenges, identity[models.WeeklyChallenge])
}

// challengeLocked finds a challenge by ID. Callers must hold s.mu.
func (s *Store) challengeLocked(id string) *models.WeeklyChallenge {
	for i := range s.challenges {
		if s.challenges[i].ID == id {
			return &s.challenges[i]
		}
	}
	return nil
}

// UpdateChallengeProgress sets a challenge's progress. Progress is capped at the
// target and never completes the challenge by itself.
func (s *Store) UpdateChallengeProgress(id string, current int) bool {
	s.mu.Lock()
	defer s.unlock()

	c := s.challengeLocked(id)
	if c == nil {
		return false
	}
	c.Current = max(0, min(current, c.Target))
	s.changedLocked(TopicChallenges, "challenge.progress", id)
	return true
}

// CompleteChallenge marks challenge id completed and snaps its progress to the
// target, whatever the progress was. It returns false for an unknown ID.
func (s *Store) CompleteChallenge(id string) bool {
	s.mu.Lock()
	defer s.unlock()

	c := s.challengeLocked(id)
	if c == nil {
		return false
	}
	c.Completed = true
	c.Current = c.Target
	s.changedLocked(TopicChallenges, "challenge.completed", id)
	return true
}

// Achievements returns the badges the player has unlocked.
func (s *Store) Achievements() []models.Achievement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.achievements, identity[models.Achievement])
}
