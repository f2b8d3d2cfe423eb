// Package models defines the data structures (models) that map to database tables.
// GORM uses these structs to generate SQL queries and map database rows back to Go values.
// The struct tags tell GORM the column names and tell the JSON encoder how each field
// is named in API responses, so a row read from Postgres can be returned to the client
// exactly as stored.
//
// The data model is a football statistics tracker:
//   - A Team has Players and plays Matches
//   - A Match belongs to one Team; the opponent is only a name, not a linked Team
//   - MatchEvents record what happened during a Match (goals, cards, substitutions...)
//   - PlayerStats hold per-player, per-match statistic lines (read-only through the API)
//
// Nullable columns are pointers: a nil pointer is NULL in the database and null in JSON.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MatchStatusScheduled is the status given to a match created without one.
// Status is otherwise free-form text ("live", "finished", "postponed", ...).
const MatchStatusScheduled = "scheduled"

// Team is a club or squad. Its ID is chosen by the client on creation.
type Team struct {
	ID      string  `gorm:"primaryKey" json:"id"`
	Name    string  `gorm:"not null" json:"name"`
	CoachID *string `gorm:"column:coach_id" json:"coach_id"` // Reference to a coach; coaches are not modelled here
	LogoURL *string `gorm:"column:logo_url" json:"logo_url"`
}

func (Team) TableName() string { return "teams" }

// Player belongs to exactly one Team.
// TeamID is omitted from JSON when empty because the per-team listing does not select it.
type Player struct {
	ID        string  `gorm:"primaryKey" json:"id"`
	TeamID    string  `gorm:"column:team_id" json:"team_id,omitempty"`
	Name      string  `gorm:"not null" json:"name"`
	Position  *string `json:"position"`
	JerseyNum *int    `gorm:"column:jersey_num" json:"jersey_num"`
	ImageURL  *string `gorm:"column:image_url" json:"image_url"`
}

func (Player) TableName() string { return "players" }

// BeforeCreate is a GORM hook: it runs right before the INSERT.
// It assigns a UUID when the caller did not supply an ID.
func (p *Player) BeforeCreate(*gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// Match is one fixture played by a Team.
// The statistic columns are all optional; the summary endpoint treats missing values as zero.
type Match struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	TeamID        string    `gorm:"column:team_id" json:"team_id"`
	OpponentName  string    `gorm:"column:opponent_name" json:"opponent_name"`
	TeamScore     int       `gorm:"column:team_score" json:"team_score"`
	OpponentScore int       `gorm:"column:opponent_score" json:"opponent_score"`
	Date          time.Time `json:"date"`
	Status        string    `json:"status"`

	Possession    *float64 `json:"possession"`
	Shots         *int     `json:"shots"`
	ShotsOnTarget *int     `gorm:"column:shots_on_target" json:"shots_on_target"`
	Corners       *int     `json:"corners"`
	Fouls         *int     `json:"fouls"`
	Offsides      *int     `json:"offsides"`
	XG            *float64 `gorm:"column:xg" json:"xg"`
	Passes        *int     `json:"passes"`
	PassAccuracy  *float64 `gorm:"column:pass_accuracy" json:"pass_accuracy"`
	Tackles       *int     `json:"tackles"`
	Saves         *int     `json:"saves"`
}

func (Match) TableName() string { return "matches" }

// MatchEvent is a single occurrence inside a match. EventType is free-form.
type MatchEvent struct {
	ID        string `gorm:"primaryKey" json:"id"`
	MatchID   string `gorm:"column:match_id" json:"match_id"`
	PlayerID  string `gorm:"column:player_id" json:"player_id"`
	EventType string `gorm:"column:event_type" json:"event_type"`
	Minute    *int   `json:"minute"`
}

func (MatchEvent) TableName() string { return "match_events" }

func (e *MatchEvent) BeforeCreate(*gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// PlayerStat is one player's statistic line for one match.
// Rows are written by an ingestion process outside this API.
type PlayerStat struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	PlayerID      string    `gorm:"column:player_id" json:"player_id"`
	MatchID       string    `gorm:"column:match_id" json:"match_id"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
	MinutesPlayed *int      `gorm:"column:minutes_played" json:"minutes_played"`
	Goals         *int      `json:"goals"`
	Assists       *int      `json:"assists"`
	Shots         *int      `json:"shots"`
	ShotsOnTarget *int      `gorm:"column:shots_on_target" json:"shots_on_target"`
	Passes        *int      `json:"passes"`
	PassAccuracy  *float64  `gorm:"column:pass_accuracy" json:"pass_accuracy"`
	Tackles       *int      `json:"tackles"`
	Saves         *int      `json:"saves"`
	YellowCards   *int      `gorm:"column:yellow_cards" json:"yellow_cards"`
	RedCards      *int      `gorm:"column:red_cards" json:"red_cards"`
	Rating        *float64  `json:"rating"`
}

func (PlayerStat) TableName() string { return "player_stats" }
