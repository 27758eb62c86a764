// This file handles weekly challenges, achievements and tournaments.
//
// Public tournaments are joined by ID. Private ones carry a six-character join
// code and can only be joined through POST /tournaments/join.

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trentd187/golf-companion/internal/models"
	"github.com/trentd187/golf-companion/internal/store"
)

// ChallengeProgressRequest is the body of PUT /challenges/:id/progress.
type ChallengeProgressRequest struct {
	Current int `json:"current" validate:"min=0"`
}

// JoinByCodeRequest is the body of POST /tournaments/join.
type JoinByCodeRequest struct {
	Code string `json:"code" validate:"required"`
}

// TournamentScoreRequest is the body of PUT /tournaments/:id/scores.
type TournamentScoreRequest struct {
	PlayerID string `json:"player_id" validate:"required"` // Must already be a player in the tournament
	Score    int    `json:"score" validate:"min=0"`        // Gross strokes
}

// --- Challenges ---

// GetChallenges handles GET /challenges.
func GetChallenges(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(s.WeeklyChallenges())
	}
}

func findChallenge(s *store.Store, id string) (models.WeeklyChallenge, bool) {
	for _, ch := range s.WeeklyChallenges() {
		if ch.ID == id {
			return ch, true
		}
	}
	return models.WeeklyChallenge{}, false
}

// UpdateChallengeProgress handles PUT /challenges/:id/progress. Progress past
// the target is capped.
func UpdateChallengeProgress(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req ChallengeProgressRequest
		if err := bind(c, &req); err != nil {
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
		id := c.Params("id")
		if !s.UpdateChallengeProgress(id, req.Current) {
			return fail(c, fiber.StatusNotFound, "challenge not found")
		}
		ch, _ := findChallenge(s, id)
		return c.JSON(ch)
	}
}

// CompleteChallenge handles POST /challenges/:id/complete.
func CompleteChallenge(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !s.CompleteChallenge(id) {
			return fail(c, fiber.StatusNotFound, "challenge not found")
		}
		ch, _ := findChallenge(s, id)
		return c.JSON(ch)
	}
}

// GetAchievements handles GET /achievements.
func GetAchievements(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(s.Achievements())
	}
}

// --- Tournaments ---

// GetTournaments handles GET /tournaments.
func GetTournaments(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(s.Tournaments())
	}
}

func findTournament(s *store.Store, id string) (models.Tournament, bool) {
	for _, t := range s.Tournaments() {
		if t.ID == id {
			return t, true
		}
	}
	return models.Tournament{}, false
}

// CreateTournament handles POST /tournaments. Private tournaments come back
// with the join code other players use.
func CreateTournament(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in models.TournamentInput
		if err := bind(c, &in); err != nil {
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(s.CreateTournament(in))
	}
}

// JoinTournament handles POST /tournaments/:id/join. Joining twice is fine.
func JoinTournament(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !s.JoinTournament(id) {
			if t, ok := findTournament(s, id); ok && !t.IsPublic {
				return fail(c, fiber.StatusForbidden, "private tournament: join with its code")
			}
			return fail(c, fiber.StatusNotFound, "tournament not found")
		}
		t, _ := findTournament(s, id)
		return c.JSON(t)
	}
}

// JoinTournamentByCode handles POST /tournaments/join.
func JoinTournamentByCode(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req JoinByCodeRequest
		if err := bind(c, &req); err != nil {
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
		t, ok := s.JoinTournamentByCode(req.Code)
		if !ok {
			return fail(c, fiber.StatusNotFound, "no tournament with that join code")
		}
		return c.JSON(t)
	}
}

// RecordTournamentScore handles PUT /tournaments/:id/scores.
func RecordTournamentScore(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req TournamentScoreRequest
		if err := bind(c, &req); err != nil {
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
		id := c.Params("id")
		if !s.RecordTournamentScore(id, req.PlayerID, req.Score) {
			return fail(c, fiber.StatusNotFound, "tournament or player not found")
		}
		t, _ := findTournament(s, id)
		return c.JSON(t)
	}
}

// CompleteTournament handles POST /tournaments/:id/complete.
func CompleteTournament(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !s.CompleteTournament(id) {
			return fail(c, fiber.StatusNotFound, "tournament not found")
		}
		t, _ := findTournament(s, id)
		return c.JSON(t)
	}
}
