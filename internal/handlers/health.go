package handlers

import "github.com/gofiber/fiber/v2"

// HealthCheck handles GET /health.
// It never touches the database: it only tells load balancers and uptime probes that
// the process is up and serving.
func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true})
}

// Root handles GET / with a plain-text banner.
func Root(c *fiber.Ctx) error {
	return c.SendString("Sport Stats API is running!")
}
