package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trentd187/golf-companion/internal/store"
)

func TestIdentity(t *testing.T) {
	t.Parallel()
	s := store.New()

	app := fiber.New()
	app.Use(Identity(s))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(UserID(c))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "user1", resp.Header.Get("X-User-ID"))
}

func TestRequireRound(t *testing.T) {
	t.Parallel()
	s := store.New()

	app := fiber.New()
	app.Get("/", RequireRound(s), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	s.StartNewRound("Pebble Beach")
	resp, err = app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
