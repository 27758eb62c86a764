package store

import (
	"math"

	"github.com/trentd187/golf-companion/internal/models"
)

// --- Range sessions ---

// StartRangeSession opens a practice session for club and returns its ID.
// New sessions go to the front of the list.
func (s *Store) StartRangeSession(club string) string {
	s.mu.Lock()
	defer s.unlock()

	session := models.RangeSession{
		ID:    s.newID(),
		Club:  club,
		Date:  s.now(),
		Shots: []models.RangeShot{},
	}
	s.rangeSessions = append([]models.RangeSession{session}, s.rangeSessions...)
	s.changedLocked(TopicRange, "session.started", session.ID)
	return session.ID
}

// AddRangeShot records a shot in session sessionID and recomputes the
// session's aggregates: average distance and average dispersion are the means
// of all shots so far, rounded half up; best distance is the maximum.
// Unknown sessions are ignored.
func (s *Store) AddRangeShot(sessionID string, distance, dispersion int) {
	s.mu.Lock()
	defer s.unlock()

	rs := s.rangeSessionLocked(sessionID)
	if rs == nil {
		return
	}
	rs.Shots = append(rs.Shots, models.RangeShot{Distance: distance, Dispersion: dispersion})
	summarise(rs)
	s.changedLocked(TopicRange, "shot.added", sessionID)
}

// rangeSessionLocked finds a session by ID. Callers must hold s.mu.
func (s *Store) rangeSessionLocked(id string) *models.RangeSession {
	for i := range s.rangeSessions {
		if s.rangeSessions[i].ID == id {
			return &s.rangeSessions[i]
		}
	}
	return nil
}

// summarise recomputes rs's aggregates from its shot list.
func summarise(rs *models.RangeSession) {
	rs.TotalShots = len(rs.Shots)
	if rs.TotalShots == 0 {
		rs.AverageDistance, rs.BestDistance, rs.Dispersion = 0, 0, 0
		return
	}
	var distSum, dispSum int
	best := rs.Shots[0].Distance
	for _, shot := range rs.Shots {
		distSum += shot.Distance
		dispSum += shot.Dispersion
		best = max(best, shot.Distance)
	}
	n := float64(rs.TotalShots)
	rs.AverageDistance = roundHalfUp(float64(distSum) / n)
	rs.Dispersion = roundHalfUp(float64(dispSum) / n)
	rs.BestDistance = best
}

// roundHalfUp rounds to the nearest integer, with .5 going up (7.5 -> 8, -7.5 -> -7).
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// EndRangeSession marks a session finished. It does not fold the session into
// the player's stats; callers that want that call UpdatePlayerStats. It
// returns false for an unknown session.
func (s *Store) EndRangeSession(sessionID string) bool {
	s.mu.Lock()
	defer s.unlock()

	rs := s.rangeSessionLocked(sessionID)
	if rs == nil {
		return false
	}
	rs.Ended = true
	s.changedLocked(TopicRange, "session.ended", sessionID)
	return true
}

// RangeSessions returns every practice session, newest first.
func (s *Store) RangeSessions() []models.RangeSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.rangeSessions, cloneRangeSession)
}

// RangeSession returns one session by ID.
func (s *Store) RangeSession(sessionID string) (models.RangeSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rs := range s.rangeSessions {
		if rs.ID == sessionID {
			return cloneRangeSession(rs), true
		}
	}
	return models.RangeSession{}, false
}

// --- Player stats ---

// PlayerStats returns the current user's stats.
func (s *Store) PlayerStats() models.PlayerStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneStats(s.playerStats)
}

// UpdatePlayerStats merges patch into the player's stats.
func (s *Store) UpdatePlayerStats(patch models.PlayerStatsPatch) models.PlayerStats {
	s.mu.Lock()
	defer s.unlock()

	s.playerStats = patch.Apply(s.playerStats)
	s.changedLocked(TopicStats, "stats.updated", "")
	return cloneStats(s.playerStats)
}

// --- Swing analyses ---

// AddSwingAnalysis stores a new analysis at the front of the list. Missing
// fields default to club "Unknown", score 0, no improvements and zero metrics.
func (s *Store) AddSwingAnalysis(in models.SwingAnalysisInput) models.SwingAnalysis {
	s.mu.Lock()
	defer s.unlock()

	a := models.SwingAnalysis{
		ID:           s.newID(),
		Timestamp:    s.now(),
		Club:         "Unknown",
		Improvements: []string{},
	}
	if in.Club != nil && *in.Club != "" {
		a.Club = *in.Club
	}
	if in.Score != nil {
		a.Score = *in.Score
	}
	if in.Improvements != nil {
		a.Improvements = append([]string{}, in.Improvements...)
	}
	if in.Metrics != nil {
		a.Metrics = *in.Metrics
	}
	s.swingAnalyses = append([]models.SwingAnalysis{a}, s.swingAnalyses...)
	s.changedLocked(TopicSwing, "analysis.added", a.ID)
	return cloneSwing(a)
}

// SwingAnalyses returns every analysis, newest first.
func (s *Store) SwingAnalyses() []models.SwingAnalysis {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.swingAnalyses, cloneSwing)
}

// --- Heatmap ---

// AddHeatmapData adds shot to club's bucket, creating the bucket on the
// club's first shot.
func (s *Store) AddHeatmapData(club string, shot models.HeatmapShot) {
	s.mu.Lock()
	defer s.unlock()

	added := false
	for i := range s.heatmap {
		if s.heatmap[i].Club == club {
			s.heatmap[i].Shots = append(s.heatmap[i].Shots, shot)
			added = true
			break
		}
	}
	if !added {
		s.heatmap = append(s.heatmap, models.HeatmapData{Club: club, Shots: []models.HeatmapShot{shot}})
	}
	s.changedLocked(TopicHeatmap, "shot.added", club)
}

// HeatmapData returns every club's samples in the order clubs were first seen.
func (s *Store) HeatmapData() []models.HeatmapData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.heatmap, cloneHeatmap)
}
