package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/trentd187/sport-stats-api/internal/config"
	"github.com/trentd187/sport-stats-api/internal/handlers"
	"github.com/trentd187/sport-stats-api/internal/mocks"
	"github.com/trentd187/sport-stats-api/internal/models"
	"github.com/trentd187/sport-stats-api/internal/websocket"
)

type ServerSuite struct {
	suite.Suite
	gw *mocks.Gateway
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func (s *ServerSuite) SetupTest() {
	s.gw = mocks.NewGateway(s.T())
}

func (s *ServerSuite) app(profile config.Profile, jwtSecret string) *fiber.App {
	cfg := &config.Config{
		Env:        config.EnvTest,
		Profile:    profile,
		JWTSecret:  jwtSecret,
		WriteRoles: []string{"service_role"},
	}
	return New(cfg, s.gw, websocket.NewHub())
}

func (s *ServerSuite) do(app *fiber.App, method, path, body string) (int, string) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	s.Require().NoError(err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp.StatusCode, string(data)
}

func (s *ServerSuite) TestRootHealthDocs() {
	app := s.app(config.ProfileFull, "")

	status, body := s.do(app, http.MethodGet, "/", "")
	s.Equal(fiber.StatusOK, status)
	s.Equal("Sport Stats API is running!", body)

	status, body = s.do(app, http.MethodGet, "/health", "")
	s.Equal(fiber.StatusOK, status)
	s.JSONEq(`{"ok":true}`, body)

	status, body = s.do(app, http.MethodGet, "/docs", "")
	s.Equal(fiber.StatusOK, status)
	var groups []handlers.EndpointGroup
	s.Require().NoError(sonic.Unmarshal([]byte(body), &groups))
	s.Len(groups, 3)
	s.Contains(body, `"method":"POST"`)
}

func (s *ServerSuite) TestReadOnlyProfileHasNoWriteRoutes() {
	app := s.app(config.ProfileReadOnly, "")

	for _, r := range []struct{ method, path string }{
		{http.MethodPost, "/teams"},
		{http.MethodPut, "/teams/t1"},
		{http.MethodPost, "/teams/t1/players"},
		{http.MethodPut, "/players/p1"},
		{http.MethodDelete, "/players/p1"},
		{http.MethodPost, "/teams/t1/matches"},
		{http.MethodPut, "/matches/m1"},
		{http.MethodDelete, "/matches/m1"},
		{http.MethodPost, "/matches/m1/events"},
		{http.MethodDelete, "/events/e1"},
	} {
		status, _ := s.do(app, r.method, r.path, `{"id":"t1","name":"x"}`)
		s.Contains([]int{fiber.StatusNotFound, fiber.StatusMethodNotAllowed}, status, "%s %s", r.method, r.path)
	}

	_, body := s.do(app, http.MethodGet, "/docs", "")
	s.NotContains(body, `"method":"POST"`)
	s.NotContains(body, `"method":"DELETE"`)
}

func (s *ServerSuite) TestReadOnlyProfileServesReads() {
	s.gw.On("ListTeams", mock.Anything).Return([]models.Team{{ID: "t1", Name: "Arsenal"}}, nil).Once()
	app := s.app(config.ProfileReadOnly, "")

	status, body := s.do(app, http.MethodGet, "/teams", "")
	s.Equal(fiber.StatusOK, status)
	s.Contains(body, "Arsenal")
}

func (s *ServerSuite) TestFullProfileWithoutAuth() {
	s.gw.On("CreateTeam", mock.Anything, mock.Anything).Return(nil).Once()
	app := s.app(config.ProfileFull, "")

	status, _ := s.do(app, http.MethodPost, "/teams", `{"id":"t1","name":"Arsenal"}`)
	s.Equal(fiber.StatusCreated, status)
}

func (s *ServerSuite) TestFullProfileWriteGuard() {
	app := s.app(config.ProfileFull, "secret")

	status, body := s.do(app, http.MethodPost, "/teams", `{"id":"t1","name":"Arsenal"}`)
	s.Equal(fiber.StatusUnauthorized, status)
	s.Contains(body, "authorization")

	// Reads stay public.
	s.gw.On("ListPlayers", mock.Anything).Return([]models.Player{}, nil).Once()
	status, _ = s.do(app, http.MethodGet, "/players", "")
	s.Equal(fiber.StatusOK, status)
}

func (s *ServerSuite) TestLiveRouteNeedsUpgrade() {
	app := s.app(config.ProfileReadOnly, "")

	status, _ := s.do(app, http.MethodGet, "/matches/m1/live", "")
	s.Equal(fiber.StatusUpgradeRequired, status)
}

func TestNew_WithoutHub(t *testing.T) {
	gw := mocks.NewGateway(t)
	app := New(&config.Config{Env: config.EnvTest, Profile: config.ProfileFull}, gw, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/matches/m1/live", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
