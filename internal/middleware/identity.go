// Package middleware contains HTTP middleware for the Golf Companion API.
package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trentd187/golf-companion/internal/store"
)

// LocalUserID is the c.Locals key holding the ID of the user the request acts as.
const LocalUserID = "userID"

// Identity stores the current user's ID in the request context so handlers
// can read it with c.Locals(LocalUserID) without reaching into the store.
//
// The companion is single-user: there is no sign-in, every request acts as
// the store's current user. The ID is also echoed in the X-User-ID response
// header to make that visible to clients.
func Identity(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := s.CurrentUser().ID
		c.Locals(LocalUserID, id)
		c.Set("X-User-ID", id)
		return c.Next()
	}
}

// UserID returns the ID set by Identity, or "" when the middleware did not run.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalUserID).(string)
	return id
}
