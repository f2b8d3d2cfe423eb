package handlers

import "github.com/gofiber/fiber/v2"

// ListTeamMatches handles GET /teams/:teamId/matches, most recent first.
func ListTeamMatches(matches MatchStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := matches.ListTeamMatches(c.UserContext(), c.Params("teamId"))
		if err != nil {
			return backend("fetch matches", err)
		}
		return c.JSON(list)
	}
}

// CreateMatch handles POST /teams/:teamId/matches.
// opponent_name and date are required; scores default to 0 and status to "scheduled".
// Body fields beyond the known match columns are stored as extra statistic columns.
func CreateMatch(matches MatchStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fields, err := matchCreateFields(c, c.Params("teamId"))
		if err != nil {
			return err
		}
		match, err := matches.CreateMatch(c.UserContext(), fields)
		if err != nil {
			return backend("create match", err)
		}
		return c.Status(fiber.StatusCreated).JSON(match)
	}
}

// UpdateMatch handles PUT /matches/:matchId.
// Fields outside the match allow-list are dropped without complaint.
func UpdateMatch(matches MatchStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fields, err := decodeFields(c, matchSchema, false)
		if err != nil {
			return err
		}
		match, err := matches.UpdateMatch(c.UserContext(), c.Params("matchId"), fields)
		if err != nil {
			return backend("update match", err)
		}
		return c.JSON(match)
	}
}

// DeleteMatch handles DELETE /matches/:matchId.
func DeleteMatch(matches MatchStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := matches.DeleteMatch(c.UserContext(), c.Params("matchId")); err != nil {
			return backend("delete match", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
