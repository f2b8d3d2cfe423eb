// Package store is the data access layer of the Sport Stats API.
// It is the only package that talks to Postgres: every method runs one query through GORM
// against a single table and hands the rows back as models. Handlers never see *gorm.DB.
//
// Semantics shared by all methods:
//   - Listings are always explicitly ordered; an empty result is an empty slice, never nil.
//   - Single-row updates use RETURNING and report ErrNotFound when no row matched.
//   - Deletes are by filter: removing an id that does not exist is not an error.
package store

import (
	"context"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/trentd187/sport-stats-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when a single-row read or update matched nothing.
var ErrNotFound = errors.New("record not found")

// SummaryColumns are the match columns projected for the team summary.
var SummaryColumns = []string{
	"team_score", "opponent_score", "shots", "shots_on_target", "possession", "corners",
	"fouls", "offsides", "xg", "passes", "pass_accuracy", "tackles", "saves",
}

// Store implements the data access gateway on top of a GORM connection.
type Store struct {
	db *gorm.DB
}

// New returns a Store using db for every query.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// --- Teams ---

func (s *Store) ListTeams(ctx context.Context) ([]models.Team, error) {
	teams := make([]models.Team, 0)
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&teams).Error; err != nil {
		return nil, errors.Wrap(err, "list teams")
	}
	return teams, nil
}

// GetTeam returns the team with the given id, or ErrNotFound.
func (s *Store) GetTeam(ctx context.Context, id string) (*models.Team, error) {
	var team models.Team
	err := s.db.WithContext(ctx).Where("id = ?", id).Take(&team).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get team %s", id)
	}
	return &team, nil
}

// CreateTeam inserts team; on success team holds the stored row.
func (s *Store) CreateTeam(ctx context.Context, team *models.Team) error {
	if err := s.db.WithContext(ctx).Create(team).Error; err != nil {
		return errors.Wrap(err, "create team")
	}
	return nil
}

// UpdateTeam applies fields (column name -> value) to one team and returns the updated row.
func (s *Store) UpdateTeam(ctx context.Context, id string, fields map[string]any) (*models.Team, error) {
	var team models.Team
	if err := s.updateReturning(ctx, &team, id, fields); err != nil {
		return nil, errors.Wrapf(err, "update team %s", id)
	}
	return &team, nil
}

// --- Players ---

func (s *Store) ListPlayers(ctx context.Context) ([]models.Player, error) {
	players := make([]models.Player, 0)
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&players).Error; err != nil {
		return nil, errors.Wrap(err, "list players")
	}
	return players, nil
}

// ListTeamPlayers returns the roster of a team. team_id is not selected.
func (s *Store) ListTeamPlayers(ctx context.Context, teamID string) ([]models.Player, error) {
	players := make([]models.Player, 0)
	err := s.db.WithContext(ctx).
		Select("id", "name", "position", "jersey_num", "image_url").
		Where("team_id = ?", teamID).
		Order("name ASC").
		Find(&players).Error
	if err != nil {
		return nil, errors.Wrapf(err, "list players of team %s", teamID)
	}
	return players, nil
}

func (s *Store) CreatePlayer(ctx context.Context, player *models.Player) error {
	if err := s.db.WithContext(ctx).Create(player).Error; err != nil {
		return errors.Wrap(err, "create player")
	}
	return nil
}

func (s *Store) UpdatePlayer(ctx context.Context, id string, fields map[string]any) (*models.Player, error) {
	var player models.Player
	if err := s.updateReturning(ctx, &player, id, fields); err != nil {
		return nil, errors.Wrapf(err, "update player %s", id)
	}
	return &player, nil
}

func (s *Store) DeletePlayer(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Player{}).Error; err != nil {
		return errors.Wrapf(err, "delete player %s", id)
	}
	return nil
}

// --- Matches ---

// ListTeamMatches returns a team's matches, most recent first.
func (s *Store) ListTeamMatches(ctx context.Context, teamID string) ([]models.Match, error) {
	matches := make([]models.Match, 0)
	err := s.db.WithContext(ctx).Where("team_id = ?", teamID).Order("date DESC").Find(&matches).Error
	if err != nil {
		return nil, errors.Wrapf(err, "list matches of team %s", teamID)
	}
	return matches, nil
}

// CreateMatch inserts one match row built from fields (column name -> value).
// Columns are taken as given, so extra statistic columns reach the INSERT untouched.
// An id is generated when fields does not carry one.
func (s *Store) CreateMatch(ctx context.Context, fields map[string]any) (*models.Match, error) {
	if _, ok := fields["id"]; !ok {
		fields["id"] = uuid.NewString()
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	columns := make([]clause.Column, 0, len(keys))
	values := make([]interface{}, 0, len(keys))
	for _, k := range keys {
		columns = append(columns, clause.Column{Name: k})
		values = append(values, fields[k])
	}

	var match models.Match
	err := s.db.WithContext(ctx).
		Raw("INSERT INTO ? ? VALUES ? RETURNING *", clause.Table{Name: models.Match{}.TableName()}, columns, values).
		Scan(&match).Error
	if err != nil {
		return nil, errors.Wrap(err, "create match")
	}
	return &match, nil
}

func (s *Store) UpdateMatch(ctx context.Context, id string, fields map[string]any) (*models.Match, error) {
	var match models.Match
	if err := s.updateReturning(ctx, &match, id, fields); err != nil {
		return nil, errors.Wrapf(err, "update match %s", id)
	}
	return &match, nil
}

func (s *Store) DeleteMatch(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Match{}).Error; err != nil {
		return errors.Wrapf(err, "delete match %s", id)
	}
	return nil
}

// TeamMatchStats returns every match of a team projected to SummaryColumns.
// Rows are generic maps so the aggregator can coerce whatever the driver hands back.
func (s *Store) TeamMatchStats(ctx context.Context, teamID string) ([]map[string]any, error) {
	rows := make([]map[string]any, 0)
	err := s.db.WithContext(ctx).
		Model(&models.Match{}).
		Select(SummaryColumns).
		Where("team_id = ?", teamID).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrapf(err, "match stats of team %s", teamID)
	}
	return rows, nil
}

// --- Match events ---

// ListMatchEvents returns a match's events in minute order.
func (s *Store) ListMatchEvents(ctx context.Context, matchID string) ([]models.MatchEvent, error) {
	events := make([]models.MatchEvent, 0)
	err := s.db.WithContext(ctx).Where("match_id = ?", matchID).Order("minute ASC").Find(&events).Error
	if err != nil {
		return nil, errors.Wrapf(err, "list events of match %s", matchID)
	}
	return events, nil
}

func (s *Store) CreateMatchEvent(ctx context.Context, event *models.MatchEvent) error {
	if err := s.db.WithContext(ctx).Create(event).Error; err != nil {
		return errors.Wrap(err, "create match event")
	}
	return nil
}

// DeleteMatchEvent removes an event and returns the deleted row, or nil when nothing matched.
func (s *Store) DeleteMatchEvent(ctx context.Context, id string) (*models.MatchEvent, error) {
	var deleted []models.MatchEvent
	err := s.db.WithContext(ctx).Clauses(clause.Returning{}).Where("id = ?", id).Delete(&deleted).Error
	if err != nil {
		return nil, errors.Wrapf(err, "delete match event %s", id)
	}
	if len(deleted) == 0 {
		return nil, nil
	}
	return &deleted[0], nil
}

// --- Player stats ---

func (s *Store) ListPlayerStats(ctx context.Context, playerID string) ([]models.PlayerStat, error) {
	return s.listStats(ctx, "player_id = ?", playerID)
}

func (s *Store) ListMatchStats(ctx context.Context, matchID string) ([]models.PlayerStat, error) {
	return s.listStats(ctx, "match_id = ?", matchID)
}

func (s *Store) listStats(ctx context.Context, cond string, arg string) ([]models.PlayerStat, error) {
	stats := make([]models.PlayerStat, 0)
	err := s.db.WithContext(ctx).Where(cond, arg).Order("created_at DESC").Find(&stats).Error
	if err != nil {
		return nil, errors.Wrapf(err, "list player stats where %s", cond)
	}
	return stats, nil
}

// updateReturning updates the row with the given id in dest's table and scans the
// updated row into dest. An empty field set is a plain read.
func (s *Store) updateReturning(ctx context.Context, dest any, id string, fields map[string]any) error {
	db := s.db.WithContext(ctx)

	if len(fields) == 0 {
		err := db.Where("id = ?", id).Take(dest).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	res := db.Model(dest).Clauses(clause.Returning{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
