// This file handles the practice routes: driving range sessions, player stats,
// the shot heatmap, the caddie's club pick and swing analysis.
//
// Swing analysis is asynchronous. POST /swings/analyze answers 202 straight
// away and the result shows up later on GET /swings/analysis and GET /swings.

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trentd187/golf-companion/internal/analysis"
	"github.com/trentd187/golf-companion/internal/models"
	"github.com/trentd187/golf-companion/internal/scoring"
	"github.com/trentd187/golf-companion/internal/store"
)

// RangeSessionRequest is the body of POST /range/sessions.
type RangeSessionRequest struct {
	Club string `json:"club" validate:"required"`
}

// RangeShotRequest is the body of POST /range/sessions/:id/shots.
type RangeShotRequest struct {
	Distance   int `json:"distance" validate:"min=0"`   // Carry in yards
	Dispersion int `json:"dispersion" validate:"min=0"` // Yards off the target line
}

// HeatmapShotRequest is the body of POST /heatmap.
type HeatmapShotRequest struct {
	Club   string               `json:"club" validate:"required"`
	X      float64              `json:"x" validate:"min=0,max=100"` // Percent across the green, left to right
	Y      float64              `json:"y" validate:"min=0,max=100"` // Percent down the green, back to front
	Result models.HeatmapResult `json:"result" validate:"required,oneof=hit miss-left miss-right short long"`
}

// AnalyzeRequest is the body of POST /swings/analyze.
type AnalyzeRequest struct {
	Club string `json:"club" validate:"required"`
}

// --- Range ---

// GetRangeSessions handles GET /range/sessions, newest first.
func GetRangeSessions(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(s.RangeSessions())
	}
}

// StartRangeSession handles POST /range/sessions.
func StartRangeSession(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req RangeSessionRequest
		if err := bind(c, &req); err != nil {
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
		id := s.StartRangeSession(req.Club)
		rs, _ := s.RangeSession(id)
		return c.Status(fiber.StatusCreated).JSON(rs)
	}
}

// AddRangeShot handles POST /range/sessions/:id/shots and returns the session
// with its recomputed averages.
func AddRangeShot(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, ok := s.RangeSession(id); !ok {
			return fail(c, fiber.StatusNotFound, "range session not found")
		}
		var req RangeShotRequest
		if err := bind(c, &req); err != nil {
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
		s.AddRangeShot(id, req.Distance, req.Dispersion)
		rs, _ := s.RangeSession(id)
		return c.JSON(rs)
	}
}

// EndRangeSession handles POST /range/sessions/:id/end.
func EndRangeSession(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !s.EndRangeSession(id) {
			return fail(c, fiber.StatusNotFound, "range session not found")
		}
		rs, _ := s.RangeSession(id)
		return c.JSON(rs)
	}
}

// --- Stats ---

// GetStats handles GET /stats.
func GetStats(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(s.PlayerStats())
	}
}

// UpdateStats handles PATCH /stats. Per-club maps are merged, not replaced.
func UpdateStats(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var patch models.PlayerStatsPatch
		if err := bind(c, &patch); err != nil {
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
		return c.JSON(s.UpdatePlayerStats(patch))
	}
}

// GetHandicap handles GET /stats/handicap. It estimates a handicap index from
// the 18-hole rounds in the history; the stored handicap is returned alongside.
func GetHandicap(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var scores []int
		for _, r := range s.RoundHistory() {
			if r.Holes == models.HoleCount {
				scores = append(scores, r.TotalScore)
			}
		}
		return c.JSON(fiber.Map{
			"estimated": scoring.Handicap(scores, nil),
			"current":   s.PlayerStats().Handicap,
			"rounds":    len(scores),
		})
	}
}

// GetHeatmap handles GET /heatmap.
func GetHeatmap(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(s.HeatmapData())
	}
}

// AddHeatmapShot handles POST /heatmap.
func AddHeatmapShot(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req HeatmapShotRequest
		if err := bind(c, &req); err != nil {
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
		s.AddHeatmapData(req.Club, models.HeatmapShot{X: req.X, Y: req.Y, Result: req.Result})
		return c.Status(fiber.StatusCreated).JSON(s.HeatmapData())
	}
}

// --- Caddie ---

// GetClubRecommendation handles GET /caddie/recommendation?distance=, with the
// distance to the pin in yards.
func GetClubRecommendation(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		distance := c.QueryInt("distance", -1)
		if distance < 0 {
			return fail(c, fiber.StatusBadRequest, "distance must be a non-negative number of yards")
		}
		club := scoring.RecommendClub(distance)
		return c.JSON(fiber.Map{
			"distance":      distance,
			"club":          club,
			"average_carry": s.PlayerStats().AverageDistances[club],
			"weather":       s.CurrentWeather(),
		})
	}
}

// GetWeather handles GET /weather.
func GetWeather(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(s.CurrentWeather())
	}
}

// --- Swing analysis ---

// GetSwings handles GET /swings, newest first.
func GetSwings(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(s.SwingAnalyses())
	}
}

// AnalyzeSwing handles POST /swings/analyze. The analysis runs in the
// background; poll GET /swings/analysis or watch the "swing" change topic.
func AnalyzeSwing(r *analysis.Runner) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req AnalyzeRequest
		if err := bind(c, &req); err != nil {
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
		r.Start(req.Club)
		return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
			"club":   req.Club,
			"status": "processing",
		})
	}
}

// GetAnalysisStatus handles GET /swings/analysis.
func GetAnalysisStatus(r *analysis.Runner) fiber.Handler {
	return func(c *fiber.Ctx) error {
		resp := fiber.Map{"pending": r.Pending(), "latest": nil}
		if out, ok := r.Latest(); ok {
			resp["latest"] = out
		}
		return c.JSON(resp)
	}
}
