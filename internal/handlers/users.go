// This file handles the social routes: the current user, the user directory,
// friends, game invitations and the friends leaderboard.
//
// Lookups that name nobody answer 404. Adding someone who is already a friend
// answers 409, so clients can tell "no such user" apart from "already added".

package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/trentd187/golf-companion/internal/models"
	"github.com/trentd187/golf-companion/internal/store"
)

// AddFriendRequest is the body of POST /friends.
type AddFriendRequest struct {
	Username string `json:"username" validate:"required"`
}

// InvitationRequest is the body of POST /invitations.
type InvitationRequest struct {
	UserIDs []string  `json:"user_ids" validate:"required,min=1,dive,required"` // Who to invite; unknown IDs are skipped
	Course  string    `json:"course" validate:"required"`                      // Course to play
	Date    time.Time `json:"date" validate:"required"`                        // Tee time, RFC 3339
	Message string    `json:"message" validate:"max=500"`                      // Optional note shown with the invite
}

// GetMe handles GET /me.
func GetMe(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(s.CurrentUser())
	}
}

// SearchUsers handles GET /users?q=. Without q it lists every user.
func SearchUsers(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(s.SearchUsers(c.Query("q")))
	}
}

// GetUser handles GET /users/:id.
func GetUser(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, ok := s.UserByID(c.Params("id"))
		if !ok {
			return fail(c, fiber.StatusNotFound, "user not found")
		}
		return c.JSON(u)
	}
}

// GetFriends handles GET /friends.
func GetFriends(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(s.Friends())
	}
}

// AddFriend handles POST /friends. The store does not say why a request
// failed, so the handler checks for an unknown username first to tell 404
// apart from 409 (already a friend).
func AddFriend(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req AddFriendRequest
		if err := bind(c, &req); err != nil {
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
		if !s.AddFriend(req.Username) {
			for _, u := range s.AllUsers() {
				if u.Username == req.Username {
					return fail(c, fiber.StatusConflict, "already on your friend list")
				}
			}
			return fail(c, fiber.StatusNotFound, "no user with that username")
		}
		return c.Status(fiber.StatusCreated).JSON(s.Friends())
	}
}

// RemoveFriend handles DELETE /friends/:userId. Removing someone who is not a
// friend is not an error.
func RemoveFriend(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s.RemoveFriend(c.Params("userId"))
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GetInvitations handles GET /invitations.
func GetInvitations(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(s.GameInvitations())
	}
}

// SendInvitations handles POST /invitations. Unknown user IDs are skipped; if
// none of them is known the request is a 404.
func SendInvitations(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req InvitationRequest
		if err := bind(c, &req); err != nil {
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
		created := s.SendGameInvitation(req.UserIDs, req.Course, req.Date, req.Message)
		if len(created) == 0 {
			return fail(c, fiber.StatusNotFound, "none of the invited users exist")
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// GetLeaderboard handles GET /leaderboard?by=score|distance|fairways.
// The current user and accepted friends are ranked by the chosen number;
// without "by" the board ranks by average score.
func GetLeaderboard(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		by, ok := models.ParseLeaderboardCriteria(c.Query("by"))
		if !ok {
			return fail(c, fiber.StatusBadRequest, "by must be one of score, distance, fairways")
		}
		return c.JSON(fiber.Map{
			"by":      by,
			"entries": s.Leaderboard(by),
		})
	}
}
