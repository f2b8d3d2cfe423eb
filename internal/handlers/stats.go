package handlers

import "github.com/gofiber/fiber/v2"

// ListPlayerStats handles GET /players/:playerId/stats, newest first.
func ListPlayerStats(stats StatStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := stats.ListPlayerStats(c.UserContext(), c.Params("playerId"))
		if err != nil {
			return backend("fetch player stats", err)
		}
		return c.JSON(list)
	}
}

// ListMatchStats handles GET /matches/:matchId/stats, newest first.
func ListMatchStats(stats StatStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := stats.ListMatchStats(c.UserContext(), c.Params("matchId"))
		if err != nil {
			return backend("fetch match stats", err)
		}
		return c.JSON(list)
	}
}
