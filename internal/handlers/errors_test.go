package handlers_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/trentd187/sport-stats-api/internal/handlers"
)

func TestErrorHandler(t *testing.T) {
	cases := map[string]struct {
		err    error
		status int
		msg    string
	}{
		"validation":         {&handlers.ValidationError{Message: "name is required"}, fiber.StatusBadRequest, "name is required"},
		"not found":          {&handlers.NotFoundError{Message: "Team not found"}, fiber.StatusNotFound, "Team not found"},
		"backend hides err":  {&handlers.BackendError{Op: "fetch teams", Err: errors.New("dial tcp 10.0.0.1")}, fiber.StatusInternalServerError, "Failed to fetch teams"},
		"wrapped validation": {errors.Wrap(&handlers.ValidationError{Message: "bad"}, "ctx"), fiber.StatusBadRequest, "bad"},
		"fiber error":        {fiber.ErrUpgradeRequired, fiber.StatusUpgradeRequired, "Upgrade Required"},
		"anything else":      {errors.New("secret detail"), fiber.StatusInternalServerError, "Internal Server Error"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			app := newApp()
			app.Get("/", func(*fiber.Ctx) error { return tc.err })

			status, body := do(t, app, get, "/", "")
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.msg, errorMessage(t, body))
		})
	}
}

func TestBackendErrorUnwrap(t *testing.T) {
	cause := errors.New("cause")
	err := &handlers.BackendError{Op: "x", Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Failed to x", err.Error())
}

func TestRootAndHealth(t *testing.T) {
	app := newApp()
	app.Get("/", handlers.Root)
	app.Get("/health", handlers.HealthCheck)

	status, body := do(t, app, get, "/", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Sport Stats API is running!", string(body))

	status, body = do(t, app, get, "/health", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"ok":true}`, string(body))
}

func TestCatalog_ReadOnlyListsOnlyGets(t *testing.T) {
	full := handlers.Catalog(false)
	readOnly := handlers.Catalog(true)
	assert.Len(t, readOnly, len(full))

	var fullWrites int
	for _, g := range full {
		for _, r := range g.Routes {
			if r.Method != fiber.MethodGet {
				fullWrites++
			}
		}
	}
	assert.Positive(t, fullWrites)

	for _, g := range readOnly {
		for _, r := range g.Routes {
			assert.Equal(t, fiber.MethodGet, r.Method, r.Path)
		}
	}
}
