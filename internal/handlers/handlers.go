// Package handlers contains the HTTP route handlers for the Golf Companion API.
//
// Each exported function follows the "handler factory" pattern: it takes the
// collaborators it needs (the state store, the navigation manager, ...) and
// returns a fiber.Handler. Nothing is global, so tests build their own app
// with fresh state.
//
// Error responses are always {"error": "..."} with one of:
//   - 400 when the body or a parameter is malformed
//   - 403 when a private resource needs a code the request didn't use
//   - 404 when an ID names nothing
//   - 409 when a request conflicts with existing state
//   - 500 when an outside system (the database) fails
package handlers

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/trentd187/golf-companion/internal/analysis"
	"github.com/trentd187/golf-companion/internal/hub"
	"github.com/trentd187/golf-companion/internal/middleware"
	"github.com/trentd187/golf-companion/internal/navigation"
	"github.com/trentd187/golf-companion/internal/store"
)

// Deps are the collaborators the routes are built from.
type Deps struct {
	Store    *store.Store
	Nav      *navigation.Manager
	Analysis *analysis.Runner
	Hub      *hub.Hub
}

// RegisterRoutes mounts every API route on router (normally the /api/v1 group).
func RegisterRoutes(router fiber.Router, d Deps) {
	s := d.Store
	router.Use(middleware.Identity(s))

	// Navigation
	router.Get("/navigation", GetNavigation(d.Nav))
	router.Post("/navigation", Navigate(d.Nav))
	router.Post("/navigation/back", NavigateBack(d.Nav))
	router.Post("/navigation/reset", ResetNavigation(d.Nav))
	router.Get("/navigation/resolve", ResolveScreen)

	// Users & social
	router.Get("/me", GetMe(s))
	router.Get("/users", SearchUsers(s))
	router.Get("/users/:id", GetUser(s))
	router.Get("/friends", GetFriends(s))
	router.Post("/friends", AddFriend(s))
	router.Delete("/friends/:userId", RemoveFriend(s))
	router.Get("/invitations", GetInvitations(s))
	router.Post("/invitations", SendInvitations(s))
	router.Get("/leaderboard", GetLeaderboard(s))

	// Rounds. Everything under /rounds/current except the shot list needs a
	// round in progress.
	rounds := router.Group("/rounds")
	rounds.Post("/", StartRound(s))
	rounds.Get("/history", GetRoundHistory(s))
	rounds.Post("/history", AddRound(s))
	rounds.Get("/current/holes/:hole/shots", GetHoleShots(s))
	rounds.Get("/current", middleware.RequireRound(s), GetCurrentRound(s))
	rounds.Patch("/current/holes/:hole", middleware.RequireRound(s), UpdateHole(s))
	rounds.Post("/current/shots", middleware.RequireRound(s), AddShot(s))
	rounds.Put("/current/hole", SetCurrentHole(s))
	rounds.Post("/current/complete", middleware.RequireRound(s), CompleteRound(s))

	// Practice
	router.Get("/range/sessions", GetRangeSessions(s))
	router.Post("/range/sessions", StartRangeSession(s))
	router.Post("/range/sessions/:id/shots", AddRangeShot(s))
	router.Post("/range/sessions/:id/end", EndRangeSession(s))

	// Stats & caddie
	router.Get("/stats", GetStats(s))
	router.Patch("/stats", UpdateStats(s))
	router.Get("/stats/handicap", GetHandicap(s))
	router.Get("/heatmap", GetHeatmap(s))
	router.Post("/heatmap", AddHeatmapShot(s))
	router.Get("/caddie/recommendation", GetClubRecommendation(s))
	router.Get("/weather", GetWeather(s))

	// Swing analysis
	router.Get("/swings", GetSwings(s))
	router.Post("/swings/analyze", AnalyzeSwing(d.Analysis))
	router.Get("/swings/analysis", GetAnalysisStatus(d.Analysis))

	// Voice assistant
	router.Post("/voice/query", AskVoiceAssistant(s))
	router.Get("/voice/suggestions", GetVoiceSuggestions)

	// Challenges & achievements
	router.Get("/challenges", GetChallenges(s))
	router.Put("/challenges/:id/progress", UpdateChallengeProgress(s))
	router.Post("/challenges/:id/complete", CompleteChallenge(s))
	router.Get("/achievements", GetAchievements(s))

	// Tournaments. The literal /join route is registered before /:id/join.
	router.Get("/tournaments", GetTournaments(s))
	router.Post("/tournaments", CreateTournament(s))
	router.Post("/tournaments/join", JoinTournamentByCode(s))
	router.Post("/tournaments/:id/join", JoinTournament(s))
	router.Put("/tournaments/:id/scores", RecordTournamentScore(s))
	router.Post("/tournaments/:id/complete", CompleteTournament(s))

	// Settings & feedback
	router.Get("/settings/user", GetUserSettings(s))
	router.Patch("/settings/user", UpdateUserSettings(s))
	router.Get("/settings/voice", GetVoiceSettings(s))
	router.Patch("/settings/voice", UpdateVoiceSettings(s))
	router.Get("/settings/smartwatch", GetSmartwatchSettings(s))
	router.Patch("/settings/smartwatch", UpdateSmartwatchSettings(s))
	router.Post("/feedback", SubmitFeedback(s))

	// Live change events
	router.Get("/changes", StreamChanges(d.Hub))
}

// validate checks request bodies against their `validate` struct tags.
// Field names in its errors are the JSON names clients send.
var validate = func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}()

// bind parses the JSON body into out and validates it.
func bind(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return errors.New("invalid request body")
	}
	if err := validate.Struct(out); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		msgs := make([]string, len(fieldErrs))
		for i, fe := range fieldErrs {
			msgs[i] = fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
		}
		return errors.New(strings.Join(msgs, "; "))
	}
	return nil
}

// fail writes the standard error body.
func fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// intParam reads an integer route parameter.
func intParam(c *fiber.Ctx, name string) (int, error) {
	n, err := strconv.Atoi(c.Params(name))
	if err != nil {
		return 0, errors.Errorf("%s must be a number", name)
	}
	return n, nil
}
