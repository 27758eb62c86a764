package handlers

import "github.com/gofiber/fiber/v2"

// HealthCheck handles GET /health.
// It returns a small JSON body showing the server is alive and reachable.
// No state is read, so it stays cheap enough for load balancer health checks.
//
// c *fiber.Ctx is the request context; every Fiber handler has this signature.
func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "service": "golf-companion"})
}
