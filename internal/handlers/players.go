package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/trentd187/sport-stats-api/internal/models"
)

// ListPlayers handles GET /players: every player of every team, sorted by name.
func ListPlayers(players PlayerStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := players.ListPlayers(c.UserContext())
		if err != nil {
			return backend("fetch players", err)
		}
		return c.JSON(list)
	}
}

// ListTeamPlayers handles GET /teams/:teamId/players.
func ListTeamPlayers(players PlayerStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := players.ListTeamPlayers(c.UserContext(), c.Params("teamId"))
		if err != nil {
			return backend("fetch players", err)
		}
		return c.JSON(list)
	}
}

// CreatePlayer handles POST /teams/:teamId/players.
// The team comes from the path; a team_id in the body is ignored.
func CreatePlayer(players PlayerStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createPlayerRequest
		if err := decodeBody(c, &req); err != nil {
			return err
		}
		if err := checkRequired(req, "name is required"); err != nil {
			return err
		}

		player := models.Player{
			TeamID:    c.Params("teamId"),
			Name:      req.Name,
			Position:  nullIfEmpty(req.Position),
			JerseyNum: req.JerseyNum,
			ImageURL:  nullIfEmpty(req.ImageURL),
		}
		if err := players.CreatePlayer(c.UserContext(), &player); err != nil {
			return backend("create player", err)
		}
		return c.Status(fiber.StatusCreated).JSON(player)
	}
}

// UpdatePlayer handles PUT /players/:playerId.
func UpdatePlayer(players PlayerStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fields, err := decodeFields(c, playerUpdateSchema, false)
		if err != nil {
			return err
		}
		player, err := players.UpdatePlayer(c.UserContext(), c.Params("playerId"), fields)
		if err != nil {
			return backend("update player", err)
		}
		return c.JSON(player)
	}
}

// DeletePlayer handles DELETE /players/:playerId. Unknown ids still get a 204.
func DeletePlayer(players PlayerStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := players.DeletePlayer(c.UserContext(), c.Params("playerId")); err != nil {
			return backend("delete player", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
