package websocket

import (
	fws "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// sendBuffer is how many messages may queue for one client before it is dropped.
const sendBuffer = 32

// RequireUpgrade rejects plain HTTP requests on websocket routes with 426.
func RequireUpgrade(c *fiber.Ctx) error {
	if fws.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Handler serves GET /matches/:matchId/live. The connection only ever receives;
// anything the client sends is read and discarded to notice disconnects.
func Handler(hub *Hub) fiber.Handler {
	return fws.New(func(conn *fws.Conn) {
		client := &Client{
			MatchID: conn.Params("matchId"),
			Send:    make(chan []byte, sendBuffer),
		}
		if !hub.Register(client) {
			return
		}
		defer hub.Unregister(client)

		go func() {
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					hub.Unregister(client)
					return
				}
			}
		}()

		for msg := range client.Send {
			if err := conn.WriteMessage(fws.TextMessage, msg); err != nil {
				log.Debug().Err(err).Str("match_id", client.MatchID).Msg("live feed write failed")
				return
			}
		}
	})
}
