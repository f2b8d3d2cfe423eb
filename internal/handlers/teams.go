package handlers

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/trentd187/sport-stats-api/internal/models"
	"github.com/trentd187/sport-stats-api/internal/store"
	"github.com/trentd187/sport-stats-api/internal/summary"
)

// ListTeams handles GET /teams. Teams come back sorted by name.
func ListTeams(teams TeamStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := teams.ListTeams(c.UserContext())
		if err != nil {
			return backend("fetch teams", err)
		}
		return c.JSON(list)
	}
}

// GetTeam handles GET /teams/:teamId.
// This is the only single-row read that distinguishes a missing row (404).
func GetTeam(teams TeamStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		team, err := teams.GetTeam(c.UserContext(), c.Params("teamId"))
		if errors.Is(err, store.ErrNotFound) {
			return &NotFoundError{Message: "Team not found"}
		}
		if err != nil {
			return backend("fetch team", err)
		}
		return c.JSON(team)
	}
}

// CreateTeam handles POST /teams. The client chooses the team id.
func CreateTeam(teams TeamStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createTeamRequest
		if err := decodeBody(c, &req); err != nil {
			return err
		}
		if err := checkRequired(req, "id and name are required"); err != nil {
			return err
		}

		team := models.Team{
			ID:      req.ID,
			Name:    req.Name,
			CoachID: nullIfEmpty(req.CoachID),
			LogoURL: nullIfEmpty(req.LogoURL),
		}
		if err := teams.CreateTeam(c.UserContext(), &team); err != nil {
			return backend("create team", err)
		}
		return c.Status(fiber.StatusCreated).JSON(team)
	}
}

// UpdateTeam handles PUT /teams/:teamId. Only name, coach_id and logo_url are applied,
// and only when present in the body.
func UpdateTeam(teams TeamStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fields, err := decodeFields(c, teamUpdateSchema, false)
		if err != nil {
			return err
		}
		team, err := teams.UpdateTeam(c.UserContext(), c.Params("teamId"), fields)
		if err != nil {
			return backend("update team", err)
		}
		return c.JSON(team)
	}
}

// TeamSummary handles GET /teams/:teamId/summary: totals and averages over all of the
// team's matches. A team without matches gets an empty object.
func TeamSummary(teams TeamStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := teams.TeamMatchStats(c.UserContext(), c.Params("teamId"))
		if err != nil {
			return backend("fetch summary", err)
		}
		return c.JSON(summary.Summarize(rows))
	}
}
