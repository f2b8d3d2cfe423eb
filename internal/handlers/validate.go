package handlers

import (
	"bytes"
	"math"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/trentd187/sport-stats-api/internal/models"
)

var validate = validator.New()

// --- Create payloads ---
// Required fields carry validate:"required"; the message of a failed check is the
// static one passed to checkRequired, naming every required field of the route.

type createTeamRequest struct {
	ID      string  `json:"id" validate:"required"`
	Name    string  `json:"name" validate:"required"`
	CoachID *string `json:"coach_id"`
	LogoURL *string `json:"logo_url"`
}

type createPlayerRequest struct {
	Name      string  `json:"name" validate:"required"`
	Position  *string `json:"position"`
	JerseyNum *int    `json:"jersey_num"`
	ImageURL  *string `json:"image_url"`
}

type createMatchRequest struct {
	OpponentName string `json:"opponent_name" validate:"required"`
	Date         string `json:"date" validate:"required"`
}

type createEventRequest struct {
	PlayerID  string `json:"player_id" validate:"required"`
	EventType string `json:"event_type" validate:"required"`
	Minute    *int   `json:"minute"`
}

// decodeBody unmarshals the JSON request body into dst. An empty body leaves dst untouched,
// so required-field checks report the missing fields rather than a decoding failure.
func decodeBody(c *fiber.Ctx, dst any) error {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		return nil
	}
	if err := sonic.Unmarshal(body, dst); err != nil {
		return &ValidationError{Message: "invalid request body"}
	}
	return nil
}

func checkRequired(req any, message string) error {
	if err := validate.Struct(req); err != nil {
		return &ValidationError{Message: message}
	}
	return nil
}

// --- Partial update payloads ---

type fieldKind int

const (
	textField fieldKind = iota
	intField
	numberField
	dateField
)

type field struct {
	kind     fieldKind
	nullable bool
}

// fieldSchema is the static set of columns a route accepts, keyed by JSON name.
type fieldSchema map[string]field

var teamUpdateSchema = fieldSchema{
	"name":     {kind: textField},
	"coach_id": {kind: textField, nullable: true},
	"logo_url": {kind: textField, nullable: true},
}

var playerUpdateSchema = fieldSchema{
	"name":       {kind: textField},
	"position":   {kind: textField, nullable: true},
	"jersey_num": {kind: intField, nullable: true},
	"image_url":  {kind: textField, nullable: true},
}

// matchSchema lists the 16 match columns a client may set on update.
var matchSchema = fieldSchema{
	"opponent_name":   {kind: textField},
	"team_score":      {kind: intField},
	"opponent_score":  {kind: intField},
	"date":            {kind: dateField},
	"status":          {kind: textField},
	"possession":      {kind: numberField, nullable: true},
	"shots":           {kind: intField, nullable: true},
	"shots_on_target": {kind: intField, nullable: true},
	"corners":         {kind: intField, nullable: true},
	"fouls":           {kind: intField, nullable: true},
	"offsides":        {kind: intField, nullable: true},
	"xg":              {kind: numberField, nullable: true},
	"passes":          {kind: intField, nullable: true},
	"pass_accuracy":   {kind: numberField, nullable: true},
	"tackles":         {kind: intField, nullable: true},
	"saves":           {kind: intField, nullable: true},
}

// filter keeps the keys of body that the schema knows, converted to their column type.
// Unknown keys are dropped, or copied verbatim when keepUnknown is set.
func (s fieldSchema) filter(body map[string]any, keepUnknown bool) (map[string]any, error) {
	out := make(map[string]any, len(body))
	for name, raw := range body {
		f, ok := s[name]
		if !ok {
			if keepUnknown {
				out[name] = raw
			}
			continue
		}
		v, msg := f.convert(raw)
		if msg != "" {
			return nil, &ValidationError{Message: name + " " + msg}
		}
		out[name] = v
	}
	return out, nil
}

// convert checks a decoded JSON value against the field kind. A non-empty msg
// describes the mismatch.
func (f field) convert(v any) (value any, msg string) {
	if v == nil {
		if f.nullable {
			return nil, ""
		}
		return nil, "must not be null"
	}

	switch f.kind {
	case textField:
		if s, ok := v.(string); ok {
			return s, ""
		}
		return nil, "must be a string"

	case intField:
		if n, ok := v.(float64); ok && n == math.Trunc(n) && !math.IsInf(n, 0) {
			return int64(n), ""
		}
		return nil, "must be an integer"

	case numberField:
		if n, ok := v.(float64); ok {
			return n, ""
		}
		return nil, "must be a number"

	case dateField:
		if s, ok := v.(string); ok {
			if t, err := parseDate(s); err == nil {
				return t, ""
			}
		}
		return nil, "must be a date (YYYY-MM-DD or RFC 3339)"
	}
	return nil, "has an unsupported type"
}

// parseDate accepts a calendar date or a full RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// decodeFields unmarshals the body as a JSON object and filters it through schema.
func decodeFields(c *fiber.Ctx, schema fieldSchema, keepUnknown bool) (map[string]any, error) {
	var body map[string]any
	if err := decodeBody(c, &body); err != nil {
		return nil, err
	}
	return schema.filter(body, keepUnknown)
}

// matchCreateFields builds the INSERT columns for a new match of teamID: known columns
// typed, unknown ones passed through, and the score and status defaults applied.
func matchCreateFields(c *fiber.Ctx, teamID string) (map[string]any, error) {
	var req createMatchRequest
	if err := decodeBody(c, &req); err != nil {
		return nil, err
	}
	if err := checkRequired(req, "opponent_name and date are required"); err != nil {
		return nil, err
	}

	fields, err := decodeFields(c, matchSchema, true)
	if err != nil {
		return nil, err
	}

	if _, ok := fields["team_score"]; !ok {
		fields["team_score"] = 0
	}
	if _, ok := fields["opponent_score"]; !ok {
		fields["opponent_score"] = 0
	}
	if _, ok := fields["status"]; !ok {
		fields["status"] = models.MatchStatusScheduled
	}
	fields["team_id"] = teamID
	return fields, nil
}

// nullIfEmpty maps an absent or empty optional string to NULL.
func nullIfEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
