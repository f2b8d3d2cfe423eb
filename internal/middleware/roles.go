package middleware

import "github.com/gofiber/fiber/v2"

// RequireRole returns a middleware that lets the request through only when the role
// stored by Auth is one of roles. It must run after Auth.
//
//	app.Post("/teams", middleware.Auth(cfg), middleware.RequireRole("service_role"), handlers.CreateTeam(gw))
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(LocalRole).(string)
		if !ok || role == "" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "forbidden",
			})
		}

		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "insufficient permissions",
		})
	}
}

// WriteGuard returns the middleware chain for mutating routes: Auth followed by
// RequireRole(writeRoles...), or nothing when authentication is disabled.
func WriteGuard(authEnabled bool, auth fiber.Handler, writeRoles []string) []fiber.Handler {
	if !authEnabled {
		return nil
	}
	return []fiber.Handler{auth, RequireRole(writeRoles...)}
}
