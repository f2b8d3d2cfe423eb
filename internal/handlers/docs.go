package handlers

import "github.com/gofiber/fiber/v2"

// Endpoint describes one route in the API catalog served at GET /docs.
type Endpoint struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"desc"`
	Example     string `json:"example,omitempty"`
}

// EndpointGroup is a category of endpoints ("Teams", "Players", "Matches").
type EndpointGroup struct {
	Category string     `json:"category"`
	Routes   []Endpoint `json:"routes"`
}

var catalog = []EndpointGroup{
	{
		Category: "Teams",
		Routes: []Endpoint{
			{Method: fiber.MethodGet, Path: "/teams", Description: "Get all teams."},
			{Method: fiber.MethodGet, Path: "/teams/:teamId", Description: "Get a specific team by ID.", Example: "/teams/1"},
			{Method: fiber.MethodGet, Path: "/teams/:teamId/summary", Description: "Get summary stats for a team.", Example: "/teams/1/summary"},
			{Method: fiber.MethodPost, Path: "/teams", Description: "Create a team. Requires id and name."},
			{Method: fiber.MethodPut, Path: "/teams/:teamId", Description: "Update a team's name, coach_id or logo_url.", Example: "/teams/1"},
		},
	},
	{
		Category: "Players",
		Routes: []Endpoint{
			{Method: fiber.MethodGet, Path: "/teams/:teamId/players", Description: "Get all players for a team.", Example: "/teams/1/players"},
			{Method: fiber.MethodGet, Path: "/players", Description: "Get all players."},
			{Method: fiber.MethodGet, Path: "/players/:playerId/stats", Description: "Get all stats for a player.", Example: "/players/15/stats"},
			{Method: fiber.MethodPost, Path: "/teams/:teamId/players", Description: "Add a player to a team. Requires name.", Example: "/teams/1/players"},
			{Method: fiber.MethodPut, Path: "/players/:playerId", Description: "Update a player.", Example: "/players/15"},
			{Method: fiber.MethodDelete, Path: "/players/:playerId", Description: "Delete a player.", Example: "/players/15"},
		},
	},
	{
		Category: "Matches",
		Routes: []Endpoint{
			{Method: fiber.MethodGet, Path: "/teams/:teamId/matches", Description: "Get all matches for a team.", Example: "/teams/1/matches"},
			{Method: fiber.MethodGet, Path: "/matches/:matchId/events", Description: "Get events for a match.", Example: "/matches/12/events"},
			{Method: fiber.MethodGet, Path: "/matches/:matchId/stats", Description: "Get all stats for a specific match.", Example: "/matches/12/stats"},
			{Method: fiber.MethodGet, Path: "/matches/:matchId/live", Description: "Follow a match's events over a websocket.", Example: "/matches/12/live"},
			{Method: fiber.MethodPost, Path: "/teams/:teamId/matches", Description: "Create a match. Requires opponent_name and date.", Example: "/teams/1/matches"},
			{Method: fiber.MethodPut, Path: "/matches/:matchId", Description: "Update a match's score, status or statistics.", Example: "/matches/12"},
			{Method: fiber.MethodDelete, Path: "/matches/:matchId", Description: "Delete a match.", Example: "/matches/12"},
			{Method: fiber.MethodPost, Path: "/matches/:matchId/events", Description: "Record an event. Requires player_id and event_type.", Example: "/matches/12/events"},
			{Method: fiber.MethodDelete, Path: "/events/:eventId", Description: "Delete an event.", Example: "/events/40"},
		},
	},
}

// Catalog returns the documented endpoints. With readOnly set, only GET routes are listed.
func Catalog(readOnly bool) []EndpointGroup {
	out := make([]EndpointGroup, 0, len(catalog))
	for _, group := range catalog {
		routes := make([]Endpoint, 0, len(group.Routes))
		for _, r := range group.Routes {
			if readOnly && r.Method != fiber.MethodGet {
				continue
			}
			routes = append(routes, r)
		}
		out = append(out, EndpointGroup{Category: group.Category, Routes: routes})
	}
	return out
}

// Docs handles GET /docs with the endpoint catalog of the running profile.
func Docs(readOnly bool) fiber.Handler {
	groups := Catalog(readOnly)
	return func(c *fiber.Ctx) error {
		return c.JSON(groups)
	}
}
