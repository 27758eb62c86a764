// This file handles the /navigation routes: reading the back-stack, pushing a
// screen, going back, and resolving a screen name to what the app renders.
// The navigation manager is safe for concurrent use, so the handlers call it
// directly without extra locking.

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trentd187/golf-companion/internal/navigation"
)

// NavigationResponse describes where the app is.
type NavigationResponse struct {
	Current   navigation.Entry   `json:"current"`     // The screen on top of the stack
	CanGoBack bool               `json:"can_go_back"` // False only on the root screen
	History   []navigation.Entry `json:"history"`     // Root first
}

// NavigateRequest is the body of POST /navigation. Any screen string is
// accepted; unknown screens render as home (see GET /navigation/resolve).
type NavigateRequest struct {
	Screen string            `json:"screen" validate:"required"` // e.g. "range-mode" or "user-profile-friend1"
	Params map[string]string `json:"params"`                     // Optional screen parameters
}

func navigationState(m *navigation.Manager) NavigationResponse {
	return NavigationResponse{
		Current:   m.Current(),
		CanGoBack: m.CanGoBack(),
		History:   m.History(),
	}
}

// GetNavigation handles GET /navigation.
func GetNavigation(m *navigation.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(navigationState(m))
	}
}

// Navigate handles POST /navigation.
func Navigate(m *navigation.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req NavigateRequest
		if err := bind(c, &req); err != nil {
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
		m.NavigateTo(req.Screen, req.Params)
		return c.JSON(navigationState(m))
	}
}

// NavigateBack handles POST /navigation/back. Going back from the root is not
// an error; the response simply shows nothing changed.
func NavigateBack(m *navigation.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		moved := m.NavigateBack()
		return c.JSON(fiber.Map{
			"moved":      moved,
			"navigation": navigationState(m),
		})
	}
}

// ResetNavigation handles POST /navigation/reset.
func ResetNavigation(m *navigation.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		m.Reset()
		return c.JSON(navigationState(m))
	}
}

// ResolveScreen handles GET /navigation/resolve?screen=. It tells a renderer
// what to draw for a screen identifier.
func ResolveScreen(c *fiber.Ctx) error {
	screen := c.Query("screen")
	resp := fiber.Map{
		"screen":   screen,
		"resolved": navigation.Resolve(screen),
	}
	if userID, ok := navigation.ExtractUserID(screen); ok {
		resp["user_id"] = userID
	}
	return c.JSON(resp)
}
