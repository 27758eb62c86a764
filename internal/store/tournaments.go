package store

import (
	"strings"

	"github.com/trentd187/golf-companion/internal/models"
)

// Tournaments returns every tournament, oldest first.
func (s *Store) Tournaments() []models.Tournament {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.tournaments, cloneTournament)
}

// CreateTournament creates a tournament with the current user as its only
// player. Missing fields default to "Unnamed Tournament", "Unknown Course",
// now, and the current user as creator. Private tournaments get a join code.
func (s *Store) CreateTournament(in models.TournamentInput) models.Tournament {
	s.mu.Lock()
	defer s.unlock()

	me, _ := s.userLocked(s.currentUserID)
	t := models.Tournament{
		ID:        s.newID(),
		Name:      "Unnamed Tournament",
		Course:    "Unknown Course",
		Date:      s.now(),
		IsPublic:  in.IsPublic,
		CreatedBy: me.ID,
		Players:   []models.User{cloneUser(me)},
		Scores:    map[string]int{},
	}
	if in.Name != nil && *in.Name != "" {
		t.Name = *in.Name
	}
	if in.Course != nil && *in.Course != "" {
		t.Course = *in.Course
	}
	if in.Date != nil {
		t.Date = *in.Date
	}
	if in.CreatedBy != nil && *in.CreatedBy != "" {
		t.CreatedBy = *in.CreatedBy
	}
	if !t.IsPublic {
		code := strings.ToUpper(s.joinCode())
		t.JoinCode = &code
	}
	s.tournaments = append(s.tournaments, t)

	s.logger.Info("tournament created", "tournament_id", t.ID, "public", t.IsPublic)
	s.changedLocked(TopicTournaments, "tournament.created", t.ID)
	return cloneTournament(t)
}

// tournamentLocked finds a tournament by ID. Callers must hold s.mu.
func (s *Store) tournamentLocked(id string) *models.Tournament {
	for i := range s.tournaments {
		if s.tournaments[i].ID == id {
			return &s.tournaments[i]
		}
	}
	return nil
}

// joinLocked adds the current user to t once. Callers must hold s.mu.
func (s *Store) joinLocked(t *models.Tournament) {
	for _, p := range t.Players {
		if p.ID == s.currentUserID {
			return
		}
	}
	me, _ := s.userLocked(s.currentUserID)
	t.Players = append(t.Players, cloneUser(me))
}

// JoinTournament adds the current user to public tournament id. Joining twice
// leaves a single entry. It returns false for an unknown tournament and for a
// private one, which can only be joined with its code.
func (s *Store) JoinTournament(id string) bool {
	s.mu.Lock()
	defer s.unlock()

	t := s.tournamentLocked(id)
	if t == nil || !t.IsPublic {
		return false
	}
	s.joinLocked(t)
	s.changedLocked(TopicTournaments, "tournament.joined", id)
	return true
}

// JoinTournamentByCode joins the private tournament whose join code matches
// code, ignoring case.
func (s *Store) JoinTournamentByCode(code string) (models.Tournament, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return models.Tournament{}, false
	}

	s.mu.Lock()
	defer s.unlock()

	var t *models.Tournament
	for i := range s.tournaments {
		if jc := s.tournaments[i].JoinCode; jc != nil && *jc == code {
			t = &s.tournaments[i]
			break
		}
	}
	if t == nil {
		return models.Tournament{}, false
	}
	s.joinLocked(t)
	s.changedLocked(TopicTournaments, "tournament.joined", t.ID)
	return cloneTournament(*t), true
}

// RecordTournamentScore sets playerID's score in tournament id. Only players
// of the tournament can have a score.
func (s *Store) RecordTournamentScore(id, playerID string, score int) bool {
	s.mu.Lock()
	defer s.unlock()

	t := s.tournamentLocked(id)
	if t == nil {
		return false
	}
	isPlayer := false
	for _, p := range t.Players {
		if p.ID == playerID {
			isPlayer = true
			break
		}
	}
	if !isPlayer {
		return false
	}
	t.Scores[playerID] = score
	s.changedLocked(TopicTournaments, "score.recorded", id)
	return true
}

// CompleteTournament marks tournament id finished.
func (s *Store) CompleteTournament(id string) bool {
	s.mu.Lock()
	defer s.unlock()

	t := s.tournamentLocked(id)
	if t == nil {
		return false
	}
	t.Completed = true
	s.changedLocked(TopicTournaments, "tournament.completed", id)
	return true
}
