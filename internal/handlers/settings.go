// This file handles the three settings records (user, voice, smartwatch) and
// in-app feedback. Settings routes use PATCH: only the fields present in the
// body change, everything else keeps its value.

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trentd187/golf-companion/internal/models"
	"github.com/trentd187/golf-companion/internal/store"
)

// FeedbackRequest is the body of POST /feedback.
type FeedbackRequest struct {
	Rating  int    `json:"rating" validate:"min=1,max=5"` // Stars, 1 to 5
	Comment string `json:"comment" validate:"max=2000"`   // Optional free text
}

// GetUserSettings handles GET /settings/user.
func GetUserSettings(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(s.UserSettings())
	}
}

// UpdateUserSettings handles PATCH /settings/user. Only the fields present in
// the body change.
func UpdateUserSettings(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var patch models.UserSettingsPatch
		if err := bind(c, &patch); err != nil {
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
		return c.JSON(s.UpdateUserSettings(patch))
	}
}

// GetVoiceSettings handles GET /settings/voice.
func GetVoiceSettings(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(s.VoiceSettings())
	}
}

// UpdateVoiceSettings handles PATCH /settings/voice.
func UpdateVoiceSettings(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var patch models.VoiceSettingsPatch
		if err := bind(c, &patch); err != nil {
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
		return c.JSON(s.UpdateVoiceSettings(patch))
	}
}

// GetSmartwatchSettings handles GET /settings/smartwatch.
func GetSmartwatchSettings(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(s.SmartwatchSettings())
	}
}

// UpdateSmartwatchSettings handles PATCH /settings/smartwatch.
func UpdateSmartwatchSettings(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var patch models.SmartwatchSettingsPatch
		if err := bind(c, &patch); err != nil {
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
		return c.JSON(s.UpdateSmartwatchSettings(patch))
	}
}

// SubmitFeedback handles POST /feedback. When a database is configured and
// the insert fails the client gets a 500; otherwise feedback is acknowledged.
func SubmitFeedback(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req FeedbackRequest
		if err := bind(c, &req); err != nil {
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
		fb, err := s.SubmitFeedback(c.UserContext(), req.Rating, req.Comment)
		if err != nil {
			return fail(c, fiber.StatusInternalServerError, "failed to save feedback")
		}
		return c.Status(fiber.StatusCreated).JSON(fb)
	}
}
