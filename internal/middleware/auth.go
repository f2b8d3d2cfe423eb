// Package middleware contains HTTP middleware for the Sport Stats API.
// Middleware runs before the route handler, which makes it the place for cross-cutting
// checks such as authentication of write requests.
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/trentd187/sport-stats-api/internal/config"
)

// Locals keys set by Auth.
const (
	LocalRole    = "role"
	LocalSubject = "subject"
)

// Claims is the JWT payload we read. Role follows the hosted-database convention of
// a "role" claim ("anon", "authenticated", "service_role", ...).
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// Auth returns a middleware that accepts only requests carrying
// "Authorization: Bearer <token>" where the token is an HS256 JWT signed with
// cfg.JWTSecret and not expired. The token's role and subject are stored in c.Locals.
func Auth(cfg *config.Config) fiber.Handler {
	secret := []byte(cfg.JWTSecret)
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	keyFunc := func(*jwt.Token) (interface{}, error) { return secret, nil }

	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing or invalid authorization header",
			})
		}

		claims := &Claims{}
		if _, err := parser.ParseWithClaims(strings.TrimPrefix(authHeader, "Bearer "), claims, keyFunc); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid token",
			})
		}

		c.Locals(LocalRole, claims.Role)
		c.Locals(LocalSubject, claims.Subject)
		return c.Next()
	}
}
