package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/suite"
	"github.com/trentd187/sport-stats-api/internal/models"
	"github.com/trentd187/sport-stats-api/internal/summary"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type StoreTestSuite struct {
	suite.Suite
	sqlDB *sql.DB
	mock  sqlmock.Sqlmock
	store *Store
	ctx   context.Context
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) SetupTest() {
	sqlDB, mock, err := sqlmock.New()
	s.Require().NoError(err)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)

	s.sqlDB = sqlDB
	s.mock = mock
	s.store = New(db)
	s.ctx = context.Background()
}

func (s *StoreTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
	s.sqlDB.Close()
}

func (s *StoreTestSuite) TestListTeams_OrderedByName() {
	s.mock.ExpectQuery(`SELECT \* FROM "teams" ORDER BY name ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "coach_id", "logo_url"}).
			AddRow("t1", "Arsenal", nil, nil).
			AddRow("t2", "Brentford", "c1", "b.png"))

	teams, err := s.store.ListTeams(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(teams, 2)
	s.Equal("Arsenal", teams[0].Name)
	s.Nil(teams[0].CoachID)
	s.Equal("c1", *teams[1].CoachID)
}

func (s *StoreTestSuite) TestListTeams_EmptyIsNotNil() {
	s.mock.ExpectQuery(`SELECT \* FROM "teams"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	teams, err := s.store.ListTeams(s.ctx)
	s.Require().NoError(err)
	s.NotNil(teams)
	s.Empty(teams)
}

func (s *StoreTestSuite) TestGetTeam() {
	s.mock.ExpectQuery(`SELECT \* FROM "teams" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("t1", "Arsenal"))

	team, err := s.store.GetTeam(s.ctx, "t1")
	s.Require().NoError(err)
	s.Equal("Arsenal", team.Name)
}

func (s *StoreTestSuite) TestGetTeam_NotFound() {
	s.mock.ExpectQuery(`SELECT \* FROM "teams" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	_, err := s.store.GetTeam(s.ctx, "nope")
	s.ErrorIs(err, ErrNotFound)
}

func (s *StoreTestSuite) TestGetTeam_QueryError() {
	boom := errors.New("connection reset")
	s.mock.ExpectQuery(`SELECT \* FROM "teams"`).WillReturnError(boom)

	_, err := s.store.GetTeam(s.ctx, "t1")
	s.ErrorIs(err, boom)
	s.NotErrorIs(err, ErrNotFound)
}

func (s *StoreTestSuite) TestCreateTeam() {
	s.mock.ExpectExec(`INSERT INTO "teams"`).
		WithArgs("t1", "Arsenal", nil, "a.png").
		WillReturnResult(sqlmock.NewResult(0, 1))

	logo := "a.png"
	err := s.store.CreateTeam(s.ctx, &models.Team{ID: "t1", Name: "Arsenal", LogoURL: &logo})
	s.NoError(err)
}

func (s *StoreTestSuite) TestUpdateTeam_Returning() {
	s.mock.ExpectQuery(`UPDATE "teams" SET "name"=\$1 WHERE id = \$2 RETURNING \*`).
		WithArgs("Gunners", "t1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "coach_id", "logo_url"}).
			AddRow("t1", "Gunners", nil, nil))

	team, err := s.store.UpdateTeam(s.ctx, "t1", map[string]any{"name": "Gunners"})
	s.Require().NoError(err)
	s.Equal("t1", team.ID)
	s.Equal("Gunners", team.Name)
}

func (s *StoreTestSuite) TestUpdateTeam_NoRow() {
	s.mock.ExpectQuery(`UPDATE "teams" SET "name"=\$1 WHERE id = \$2 RETURNING \*`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	_, err := s.store.UpdateTeam(s.ctx, "ghost", map[string]any{"name": "x"})
	s.ErrorIs(err, ErrNotFound)
}

func (s *StoreTestSuite) TestUpdateMatch_EmptyFieldsReads() {
	s.mock.ExpectQuery(`SELECT \* FROM "matches" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "team_id", "status"}).AddRow("m1", "t1", "live"))

	match, err := s.store.UpdateMatch(s.ctx, "m1", map[string]any{})
	s.Require().NoError(err)
	s.Equal("live", match.Status)
}

func (s *StoreTestSuite) TestListTeamPlayers() {
	s.mock.ExpectQuery(`SELECT .*jersey_num.* FROM "players" WHERE team_id = \$1 ORDER BY name ASC`).
		WithArgs("t1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "position", "jersey_num", "image_url"}).
			AddRow("p1", "Saka", "RW", 7, nil))

	players, err := s.store.ListTeamPlayers(s.ctx, "t1")
	s.Require().NoError(err)
	s.Require().Len(players, 1)
	s.Empty(players[0].TeamID)
	s.Equal(7, *players[0].JerseyNum)
}

func (s *StoreTestSuite) TestCreatePlayer_AssignsID() {
	s.mock.ExpectExec(`INSERT INTO "players"`).WillReturnResult(sqlmock.NewResult(0, 1))

	player := models.Player{TeamID: "t1", Name: "Rice"}
	s.Require().NoError(s.store.CreatePlayer(s.ctx, &player))
	s.NotEmpty(player.ID)
}

func (s *StoreTestSuite) TestDeletePlayer_MissingIsNotAnError() {
	s.mock.ExpectExec(`DELETE FROM "players" WHERE id = \$1`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	s.NoError(s.store.DeletePlayer(s.ctx, "missing"))
}

func (s *StoreTestSuite) TestListTeamMatches_MostRecentFirst() {
	s.mock.ExpectQuery(`SELECT \* FROM "matches" WHERE team_id = \$1 ORDER BY date DESC`).
		WithArgs("t1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "team_id", "opponent_name", "date"}).
			AddRow("m2", "t1", "Chelsea", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)).
			AddRow("m1", "t1", "Spurs", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))

	matches, err := s.store.ListTeamMatches(s.ctx, "t1")
	s.Require().NoError(err)
	s.Require().Len(matches, 2)
	s.Equal("m2", matches[0].ID)
}

func (s *StoreTestSuite) TestCreateMatch_RawInsertWithExtras() {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	s.mock.ExpectQuery(`INSERT INTO "matches" \(.*"venue"\) VALUES \(.*\$7\) RETURNING \*`).
		WithArgs(date, sqlmock.AnyArg(), "Chelsea", "scheduled", "t1", 0, "home").
		WillReturnRows(sqlmock.NewRows([]string{"id", "team_id", "opponent_name", "team_score", "status", "date"}).
			AddRow("generated", "t1", "Chelsea", 0, "scheduled", date))

	fields := map[string]any{
		"opponent_name": "Chelsea",
		"date":          date,
		"team_score":    0,
		"status":        "scheduled",
		"team_id":       "t1",
		"venue":         "home",
	}
	match, err := s.store.CreateMatch(s.ctx, fields)
	s.Require().NoError(err)
	s.Equal("generated", match.ID)
	s.Equal("Chelsea", match.OpponentName)
	s.NotEmpty(fields["id"])
}

func (s *StoreTestSuite) TestTeamMatchStats_FeedsSummary() {
	s.mock.ExpectQuery(`SELECT .*team_score.* FROM "matches" WHERE team_id = \$1`).
		WithArgs("t1").
		WillReturnRows(sqlmock.NewRows(SummaryColumns).
			AddRow(2, 1, 10, 5, "60.00", 4, 8, 1, 1.5, 400, "85.50", 12, 3).
			AddRow(0, 2, 6, 2, "40.00", 1, 12, 3, 0.4, 300, nil, 20, 5))

	rows, err := s.store.TeamMatchStats(s.ctx, "t1")
	s.Require().NoError(err)
	s.Require().Len(rows, 2)

	got := summary.Summarize(rows)
	s.Equal(2.0, got["goals_for"])
	s.Equal(3.0, got["goals_against"])
	s.Equal(16.0, got["shots"])
	s.Equal(50.0, got["possession_avg"])
	s.Equal(86.0, got["pass_accuracy_avg"])
}

func (s *StoreTestSuite) TestListMatchEvents_MinuteOrder() {
	s.mock.ExpectQuery(`SELECT \* FROM "match_events" WHERE match_id = \$1 ORDER BY minute ASC`).
		WithArgs("m1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "match_id", "player_id", "event_type", "minute"}).
			AddRow("e1", "m1", "p1", "goal", 3).
			AddRow("e2", "m1", "p2", "yellow_card", 55))

	events, err := s.store.ListMatchEvents(s.ctx, "m1")
	s.Require().NoError(err)
	s.Len(events, 2)
}

func (s *StoreTestSuite) TestCreateMatchEvent_AssignsID() {
	s.mock.ExpectExec(`INSERT INTO "match_events"`).WillReturnResult(sqlmock.NewResult(0, 1))

	event := models.MatchEvent{MatchID: "m1", PlayerID: "p1", EventType: "goal"}
	s.Require().NoError(s.store.CreateMatchEvent(s.ctx, &event))
	s.NotEmpty(event.ID)
}

func (s *StoreTestSuite) TestDeleteMatchEvent_ReturnsDeletedRow() {
	s.mock.ExpectQuery(`DELETE FROM "match_events" WHERE id = \$1 RETURNING \*`).
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "match_id", "player_id", "event_type"}).
			AddRow("e1", "m1", "p1", "goal"))

	deleted, err := s.store.DeleteMatchEvent(s.ctx, "e1")
	s.Require().NoError(err)
	s.Require().NotNil(deleted)
	s.Equal("m1", deleted.MatchID)
}

func (s *StoreTestSuite) TestDeleteMatchEvent_Missing() {
	s.mock.ExpectQuery(`DELETE FROM "match_events" WHERE id = \$1 RETURNING \*`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	deleted, err := s.store.DeleteMatchEvent(s.ctx, "gone")
	s.NoError(err)
	s.Nil(deleted)
}

func (s *StoreTestSuite) TestListStats_NewestFirst() {
	s.mock.ExpectQuery(`SELECT \* FROM "player_stats" WHERE player_id = \$1 ORDER BY created_at DESC`).
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "player_id", "goals"}).AddRow("s1", "p1", 2))
	s.mock.ExpectQuery(`SELECT \* FROM "player_stats" WHERE match_id = \$1 ORDER BY created_at DESC`).
		WithArgs("m1").
		WillReturnError(errors.New("boom"))

	stats, err := s.store.ListPlayerStats(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal(2, *stats[0].Goals)

	_, err = s.store.ListMatchStats(s.ctx, "m1")
	s.ErrorContains(err, "boom")
}
