package handlers

import (
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/trentd187/sport-stats-api/internal/models"
)

// Live feed message types.
const (
	EventCreated = "event_created"
	EventDeleted = "event_deleted"
)

// LiveMessage is what followers of a match receive over the websocket feed.
type LiveMessage struct {
	Type  string             `json:"type"`
	Event *models.MatchEvent `json:"event"`
}

// ListMatchEvents handles GET /matches/:matchId/events in minute order.
func ListMatchEvents(events EventStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := events.ListMatchEvents(c.UserContext(), c.Params("matchId"))
		if err != nil {
			return backend("fetch events", err)
		}
		return c.JSON(list)
	}
}

// CreateMatchEvent handles POST /matches/:matchId/events and announces the new event
// on the match's live feed. live may be nil.
func CreateMatchEvent(events EventStore, live Broadcaster) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createEventRequest
		if err := decodeBody(c, &req); err != nil {
			return err
		}
		if err := checkRequired(req, "player_id and event_type are required"); err != nil {
			return err
		}

		event := models.MatchEvent{
			MatchID:   c.Params("matchId"),
			PlayerID:  req.PlayerID,
			EventType: req.EventType,
			Minute:    req.Minute,
		}
		if err := events.CreateMatchEvent(c.UserContext(), &event); err != nil {
			return backend("create event", err)
		}

		announce(live, EventCreated, &event)
		return c.Status(fiber.StatusCreated).JSON(event)
	}
}

// DeleteMatchEvent handles DELETE /events/:eventId.
func DeleteMatchEvent(events EventStore, live Broadcaster) fiber.Handler {
	return func(c *fiber.Ctx) error {
		deleted, err := events.DeleteMatchEvent(c.UserContext(), c.Params("eventId"))
		if err != nil {
			return backend("delete event", err)
		}
		if deleted != nil {
			announce(live, EventDeleted, deleted)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func announce(live Broadcaster, kind string, event *models.MatchEvent) {
	if live == nil {
		return
	}
	data, err := sonic.Marshal(LiveMessage{Type: kind, Event: event})
	if err != nil {
		log.Warn().Err(err).Str("event_id", event.ID).Msg("encode live message")
		return
	}
	live.BroadcastToMatch(event.MatchID, data)
}
