package store

import "github.com/trentd187/golf-companion/internal/models"

// StartNewRound begins a fresh 18-hole round at courseName and makes hole 1
// current. Any round already in progress is discarded without being archived.
func (s *Store) StartNewRound(courseName string) models.CurrentRound {
	s.mu.Lock()
	defer s.unlock()

	round := models.CurrentRound{
		ID:         s.newID(),
		CourseName: courseName,
		StartTime:  s.now(),
		Holes:      make([]models.Hole, models.HoleCount),
	}
	for i := range round.Holes {
		round.Holes[i] = models.Hole{
			HoleNumber: i + 1,
			Par:        models.StandardPars[i],
			Shots:      []models.Shot{},
		}
	}
	discarded := s.currentRound != nil
	s.currentRound = &round
	s.currentHole = 1

	s.logger.Info("round started", "round_id", round.ID, "course", courseName, "replaced_active", discarded)
	s.changedLocked(TopicRound, "round.started", round.ID)
	return cloneCurrentRound(round)
}

// CurrentRound returns the round in progress. ok is false when there is none.
func (s *Store) CurrentRound() (round models.CurrentRound, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.currentRound == nil {
		return models.CurrentRound{}, false
	}
	return cloneCurrentRound(*s.currentRound), true
}

// CurrentHole returns the hole the player is on, starting at 1.
func (s *Store) CurrentHole() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentHole
}

// SetCurrentHole moves the player to hole n. Holes outside 1–18 are ignored.
func (s *Store) SetCurrentHole(n int) bool {
	if n < 1 || n > models.HoleCount {
		return false
	}
	s.mu.Lock()
	defer s.unlock()

	s.currentHole = n
	s.changedLocked(TopicRound, "hole.selected", "")
	return true
}

// holeLocked returns the active round's hole numbered n, or nil.
// Callers must hold s.mu.
func (s *Store) holeLocked(n int) *models.Hole {
	if s.currentRound == nil {
		return nil
	}
	for i := range s.currentRound.Holes {
		if s.currentRound.Holes[i].HoleNumber == n {
			return &s.currentRound.Holes[i]
		}
	}
	return nil
}

// UpdateHoleScore applies patch to hole holeNumber of the round in progress.
// With no active round, or a hole number outside 1–18, nothing happens.
func (s *Store) UpdateHoleScore(holeNumber int, patch models.HolePatch) {
	s.mu.Lock()
	defer s.unlock()

	hole := s.holeLocked(holeNumber)
	if hole == nil {
		return
	}
	*hole = patch.Apply(*hole)
	s.changedLocked(TopicRound, "hole.updated", s.currentRound.ID)
}

// AddShot records a shot on the hole named by in.HoleNumber. It returns false
// when there is no active round or no such hole.
func (s *Store) AddShot(in models.ShotInput) (models.Shot, bool) {
	s.mu.Lock()
	defer s.unlock()

	hole := s.holeLocked(in.HoleNumber)
	if hole == nil {
		return models.Shot{}, false
	}
	shot := models.Shot{
		ID:         s.newID(),
		HoleNumber: in.HoleNumber,
		Club:       in.Club,
		Distance:   in.Distance,
		Accuracy:   in.Accuracy,
		X:          in.X,
		Y:          in.Y,
	}
	hole.Shots = append(hole.Shots, shot)
	s.changedLocked(TopicRound, "shot.added", shot.ID)
	return shot, true
}

// HoleShots returns the shots recorded on hole holeNumber, oldest first.
// The slice is empty, never nil, when there is no round or no such hole.
func (s *Store) HoleShots(holeNumber int) []models.Shot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hole := s.holeLocked(holeNumber)
	if hole == nil {
		return []models.Shot{}
	}
	return append([]models.Shot{}, hole.Shots...)
}

// CompleteRound finishes the round in progress: the total is the sum of every
// hole's strokes, the summary is added to the front of the round history, and
// the active round is cleared. ok is false when no round was active.
func (s *Store) CompleteRound() (summary models.Round, ok bool) {
	s.mu.Lock()
	defer s.unlock()

	if s.currentRound == nil {
		return models.Round{}, false
	}
	summary = models.Round{
		ID:         s.currentRound.ID,
		Date:       s.now(),
		CourseName: s.currentRound.CourseName,
		TotalScore: s.currentRound.TotalStrokes(),
		Holes:      models.HoleCount,
		Handicap:   s.playerStats.Handicap,
	}
	s.roundHistory = append([]models.Round{summary}, s.roundHistory...)
	s.currentRound = nil
	s.currentHole = 1

	s.logger.Info("round completed", "round_id", summary.ID, "total_score", summary.TotalScore)
	s.changedLocked(TopicRound, "round.completed", summary.ID)
	s.changedLocked(TopicHistory, "round.archived", summary.ID)
	return summary, true
}

// RoundHistory returns finished rounds, newest first.
func (s *Store) RoundHistory() []models.Round {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.roundHistory, identity[models.Round])
}

// AddRound records a round played outside the app. Missing fields default to
// "Unknown Course", a score of 0, 18 holes, today, and the current handicap.
func (s *Store) AddRound(in models.RoundInput) models.Round {
	s.mu.Lock()
	defer s.unlock()

	round := models.Round{
		ID:         s.newID(),
		Date:       s.now(),
		CourseName: "Unknown Course",
		Holes:      models.HoleCount,
		Handicap:   s.playerStats.Handicap,
	}
	if in.CourseName != nil && *in.CourseName != "" {
		round.CourseName = *in.CourseName
	}
	if in.TotalScore != nil {
		round.TotalScore = *in.TotalScore
	}
	if in.Holes != nil && *in.Holes > 0 {
		round.Holes = *in.Holes
	}
	if in.Handicap != nil {
		round.Handicap = *in.Handicap
	}
	if in.Date != nil {
		round.Date = *in.Date
	}
	s.roundHistory = append([]models.Round{round}, s.roundHistory...)
	s.changedLocked(TopicHistory, "round.added", round.ID)
	return round
}

// CurrentWeather returns the conditions at the course.
func (s *Store) CurrentWeather() models.Weather {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.weather
}
