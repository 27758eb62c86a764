// This file handles the /rounds routes: starting a round, scoring holes,
// logging shots, finishing the round and the round history.
//
// Most /rounds/current routes sit behind middleware.RequireRound (see
// RegisterRoutes), so a handler here can assume a round is in progress.

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trentd187/golf-companion/internal/models"
	"github.com/trentd187/golf-companion/internal/store"
)

// StartRoundRequest is the body of POST /rounds.
type StartRoundRequest struct {
	CourseName string `json:"course_name" validate:"required"`
}

// CurrentHoleRequest is the body of PUT /rounds/current/hole.
type CurrentHoleRequest struct {
	Hole int `json:"hole" validate:"min=1,max=18"`
}

// CurrentRoundResponse is the round in progress plus the hole being played.
type CurrentRoundResponse struct {
	Round        models.CurrentRound `json:"round"`         // All 18 holes with their shots
	CurrentHole  int                 `json:"current_hole"`  // The hole being played, 1-18
	TotalStrokes int                 `json:"total_strokes"` // Sum of every hole's strokes so far
}

func currentRound(s *store.Store) (CurrentRoundResponse, bool) {
	r, ok := s.CurrentRound()
	if !ok {
		return CurrentRoundResponse{}, false
	}
	return CurrentRoundResponse{Round: r, CurrentHole: s.CurrentHole(), TotalStrokes: r.TotalStrokes()}, true
}

// StartRound handles POST /rounds. A round already in progress is replaced.
func StartRound(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req StartRoundRequest
		if err := bind(c, &req); err != nil {
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
		s.StartNewRound(req.CourseName)
		resp, _ := currentRound(s)
		return c.Status(fiber.StatusCreated).JSON(resp)
	}
}

// GetCurrentRound handles GET /rounds/current.
func GetCurrentRound(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		resp, ok := currentRound(s)
		if !ok {
			return fail(c, fiber.StatusNotFound, "no round in progress")
		}
		return c.JSON(resp)
	}
}

// UpdateHole handles PATCH /rounds/current/holes/:hole with a partial hole.
func UpdateHole(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		n, err := intParam(c, "hole")
		if err != nil {
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
		if n < 1 || n > models.HoleCount {
			return fail(c, fiber.StatusNotFound, "hole not found")
		}
		var patch models.HolePatch
		if err := bind(c, &patch); err != nil {
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
		s.UpdateHoleScore(n, patch)

		r, ok := s.CurrentRound()
		if !ok {
			return fail(c, fiber.StatusNotFound, "no round in progress")
		}
		return c.JSON(r.Holes[n-1])
	}
}

// AddShot handles POST /rounds/current/shots.
func AddShot(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in models.ShotInput
		if err := bind(c, &in); err != nil {
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
		shot, ok := s.AddShot(in)
		if !ok {
			return fail(c, fiber.StatusNotFound, "no round in progress")
		}
		return c.Status(fiber.StatusCreated).JSON(shot)
	}
}

// GetHoleShots handles GET /rounds/current/holes/:hole/shots. With no round
// in progress the list is simply empty.
func GetHoleShots(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		n, err := intParam(c, "hole")
		if err != nil {
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
		return c.JSON(s.HoleShots(n))
	}
}

// SetCurrentHole handles PUT /rounds/current/hole.
func SetCurrentHole(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req CurrentHoleRequest
		if err := bind(c, &req); err != nil {
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
		s.SetCurrentHole(req.Hole)
		return c.JSON(fiber.Map{"current_hole": s.CurrentHole()})
	}
}

// CompleteRound handles POST /rounds/current/complete and returns the
// archived summary.
func CompleteRound(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		summary, ok := s.CompleteRound()
		if !ok {
			return fail(c, fiber.StatusNotFound, "no round in progress")
		}
		return c.JSON(summary)
	}
}

// GetRoundHistory handles GET /rounds/history, newest first.
func GetRoundHistory(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(s.RoundHistory())
	}
}

// AddRound handles POST /rounds/history, for rounds played without the app.
func AddRound(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in models.RoundInput
		if err := bind(c, &in); err != nil {
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(s.AddRound(in))
	}
}
