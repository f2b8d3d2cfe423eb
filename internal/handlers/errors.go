package handlers

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// ValidationError means the request body is missing required fields or has wrongly
// typed values. It becomes a 400 carrying Message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError becomes a 404 carrying Message.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// BackendError wraps a data access failure. Clients only ever see "Failed to <Op>";
// Err is logged and never sent.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string { return "Failed to " + e.Op }

func (e *BackendError) Unwrap() error { return e.Err }

func backend(op string, err error) error {
	return &BackendError{Op: op, Err: err}
}

// ErrorHandler is the fiber.Config.ErrorHandler of the API. Every error returned by a
// handler ends up here and is written as {"error": "<message>"}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var (
		validationErr *ValidationError
		notFoundErr   *NotFoundError
		backendErr    *BackendError
		fiberErr      *fiber.Error
	)

	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr.Message})

	case errors.As(err, &notFoundErr):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": notFoundErr.Message})

	case errors.As(err, &backendErr):
		log.Error().
			Err(backendErr.Err).
			Str("op", backendErr.Op).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("backend call failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": backendErr.Error()})

	case errors.As(err, &fiberErr):
		return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})

	default:
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("unhandled error")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}
}
