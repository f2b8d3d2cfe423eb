// Package server assembles the Fiber application: codec, error handling, global
// middleware and the routes of the configured profile.
package server

import (
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/trentd187/sport-stats-api/internal/config"
	"github.com/trentd187/sport-stats-api/internal/handlers"
	"github.com/trentd187/sport-stats-api/internal/middleware"
	"github.com/trentd187/sport-stats-api/internal/websocket"
)

// New builds the HTTP application. hub may be nil, in which case the live feed
// route is not registered and no live messages are sent.
func New(cfg *config.Config, gw handlers.Gateway, hub *websocket.Hub) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Sport Stats API",
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ErrorHandler: handlers.ErrorHandler,
		UnescapePath: true,
	})

	app.Use(recover.New())
	if !cfg.IsTest() {
		app.Use(logger.New())
	}
	app.Use(cors.New())

	Register(app, cfg, gw, hub)
	return app
}

// Register mounts the API routes on router. Read routes are always mounted; write
// routes only under the full profile, behind the write guard when auth is enabled.
func Register(router fiber.Router, cfg *config.Config, gw handlers.Gateway, hub *websocket.Hub) {
	readOnly := cfg.Profile == config.ProfileReadOnly

	router.Get("/", handlers.Root)
	router.Get("/health", handlers.HealthCheck)
	router.Get("/docs", handlers.Docs(readOnly))

	// Teams
	router.Get("/teams", handlers.ListTeams(gw))
	router.Get("/teams/:teamId", handlers.GetTeam(gw))
	router.Get("/teams/:teamId/summary", handlers.TeamSummary(gw))

	// Players
	router.Get("/teams/:teamId/players", handlers.ListTeamPlayers(gw))
	router.Get("/players", handlers.ListPlayers(gw))
	router.Get("/players/:playerId/stats", handlers.ListPlayerStats(gw))

	// Matches
	router.Get("/teams/:teamId/matches", handlers.ListTeamMatches(gw))
	router.Get("/matches/:matchId/events", handlers.ListMatchEvents(gw))
	router.Get("/matches/:matchId/stats", handlers.ListMatchStats(gw))

	// live stays a nil interface when there is no hub, so handlers skip announcing.
	var live handlers.Broadcaster
	if hub != nil {
		live = hub
		router.Get("/matches/:matchId/live", websocket.RequireUpgrade, websocket.Handler(hub))
	}

	if readOnly {
		return
	}

	guard := middleware.WriteGuard(cfg.AuthEnabled(), middleware.Auth(cfg), cfg.WriteRoles)
	guarded := func(h fiber.Handler) []fiber.Handler {
		chain := make([]fiber.Handler, 0, len(guard)+1)
		return append(append(chain, guard...), h)
	}

	router.Post("/teams", guarded(handlers.CreateTeam(gw))...)
	router.Put("/teams/:teamId", guarded(handlers.UpdateTeam(gw))...)

	router.Post("/teams/:teamId/players", guarded(handlers.CreatePlayer(gw))...)
	router.Put("/players/:playerId", guarded(handlers.UpdatePlayer(gw))...)
	router.Delete("/players/:playerId", guarded(handlers.DeletePlayer(gw))...)

	router.Post("/teams/:teamId/matches", guarded(handlers.CreateMatch(gw))...)
	router.Put("/matches/:matchId", guarded(handlers.UpdateMatch(gw))...)
	router.Delete("/matches/:matchId", guarded(handlers.DeleteMatch(gw))...)

	router.Post("/matches/:matchId/events", guarded(handlers.CreateMatchEvent(gw, live))...)
	router.Delete("/events/:eventId", guarded(handlers.DeleteMatchEvent(gw, live))...)
}
