// This file handles the voice assistant routes. Speech-to-text happens on the
// device; the server only sees the transcribed question and answers it by
// keyword.

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trentd187/golf-companion/internal/scoring"
	"github.com/trentd187/golf-companion/internal/store"
)

// VoiceQueryRequest is the body of POST /voice/query: the transcribed question.
type VoiceQueryRequest struct {
	Query string `json:"query" validate:"required,max=500"`
}

// VoiceQueryResponse answers a voice query. Spoken mirrors the voice feedback
// setting: when it is false the client shows the reply without reading it out.
type VoiceQueryResponse struct {
	Query       string   `json:"query"`
	Intent      string   `json:"intent"`
	Response    string   `json:"response"`
	Matched     bool     `json:"matched"`
	Spoken      bool     `json:"spoken"`
	Suggestions []string `json:"suggestions,omitempty"` // Only when the query wasn't understood
}

// AskVoiceAssistant handles POST /voice/query. The answer is built from the
// course weather and the player's current stats.
func AskVoiceAssistant(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req VoiceQueryRequest
		if err := bind(c, &req); err != nil {
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
		reply := scoring.VoiceResponse(req.Query, s.CurrentWeather(), s.PlayerStats())
		resp := VoiceQueryResponse{
			Query:    req.Query,
			Intent:   reply.Intent,
			Response: reply.Response,
			Matched:  reply.Matched,
			Spoken:   s.VoiceSettings().FeedbackEnabled,
		}
		if !reply.Matched {
			resp.Suggestions = scoring.VoiceSuggestions
		}
		return c.JSON(resp)
	}
}

// GetVoiceSuggestions handles GET /voice/suggestions.
func GetVoiceSuggestions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"suggestions": scoring.VoiceSuggestions})
}
