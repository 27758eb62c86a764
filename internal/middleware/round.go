package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trentd187/golf-companion/internal/store"
)

// RequireRound lets a request through only while a round is in progress and
// answers 404 otherwise. The store itself treats round operations without an
// active round as no-ops; this gives HTTP clients a clear answer instead.
//
//	rounds.Patch("/current/holes/:hole", middleware.RequireRound(s), handlers.UpdateHole(s))
func RequireRound(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := s.CurrentRound(); !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "no round in progress",
			})
		}
		return c.Next()
	}
}
