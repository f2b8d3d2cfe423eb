// Package handlers contains the HTTP route handler functions for the Sport Stats API.
// Each handler corresponds to one endpoint: it reads the path and body, makes one call
// to the data access gateway, and shapes the response.
//
// Every exported function follows the "handler factory" pattern: it takes the piece of
// the gateway it needs and returns a fiber.Handler. Dependencies are injected this way
// instead of living in globals.
//
// Handlers never write error responses themselves. They return *ValidationError,
// *NotFoundError or *BackendError and ErrorHandler renders them.
package handlers

import (
	"context"

	"github.com/trentd187/sport-stats-api/internal/models"
)

type TeamStore interface {
	ListTeams(ctx context.Context) ([]models.Team, error)
	GetTeam(ctx context.Context, id string) (*models.Team, error)
	CreateTeam(ctx context.Context, team *models.Team) error
	UpdateTeam(ctx context.Context, id string, fields map[string]any) (*models.Team, error)
	TeamMatchStats(ctx context.Context, teamID string) ([]map[string]any, error)
}

type PlayerStore interface {
	ListPlayers(ctx context.Context) ([]models.Player, error)
	ListTeamPlayers(ctx context.Context, teamID string) ([]models.Player, error)
	CreatePlayer(ctx context.Context, player *models.Player) error
	UpdatePlayer(ctx context.Context, id string, fields map[string]any) (*models.Player, error)
	DeletePlayer(ctx context.Context, id string) error
}

type MatchStore interface {
	ListTeamMatches(ctx context.Context, teamID string) ([]models.Match, error)
	CreateMatch(ctx context.Context, fields map[string]any) (*models.Match, error)
	UpdateMatch(ctx context.Context, id string, fields map[string]any) (*models.Match, error)
	DeleteMatch(ctx context.Context, id string) error
}

type EventStore interface {
	ListMatchEvents(ctx context.Context, matchID string) ([]models.MatchEvent, error)
	CreateMatchEvent(ctx context.Context, event *models.MatchEvent) error
	DeleteMatchEvent(ctx context.Context, id string) (*models.MatchEvent, error)
}

type StatStore interface {
	ListPlayerStats(ctx context.Context, playerID string) ([]models.PlayerStat, error)
	ListMatchStats(ctx context.Context, matchID string) ([]models.PlayerStat, error)
}

// Gateway is the full data access surface the API is built on.
// *store.Store implements it against Postgres.
type Gateway interface {
	TeamStore
	PlayerStore
	MatchStore
	EventStore
	StatStore
}

// Broadcaster pushes a message to everyone following a match live.
type Broadcaster interface {
	BroadcastToMatch(matchID string, data []byte)
}
