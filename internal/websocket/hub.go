// Package websocket implements the live match feed.
// Clients open a websocket on /matches/:matchId/live and receive a JSON message every
// time an event of that match is recorded or deleted, without polling the events route.
package websocket

import (
	"context"
	"sync"
)

// Client is one connected follower of a match.
type Client struct {
	MatchID string      // Which match this client follows
	Send    chan []byte // Outgoing messages; the hub writes, the connection goroutine drains
}

// Message is a payload for every client following MatchID.
type Message struct {
	MatchID string
	Data    []byte
}

// Hub tracks connected clients grouped by match id.
// All map writes happen on the Run goroutine; broadcasts are fanned out from there too.
type Hub struct {
	clients map[string]map[*Client]bool

	broadcast  chan *Message
	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	mu sync.RWMutex
}

// NewHub creates a hub. Call Run before registering clients.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		broadcast:  make(chan *Message, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run processes registrations and broadcasts until ctx is cancelled.
// On exit every remaining client's Send channel is closed.
func (h *Hub) Run(ctx context.Context) {
	defer h.shutdown()

	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.MatchID] == nil {
				h.clients[client.MatchID] = make(map[*Client]bool)
			}
			h.clients[client.MatchID][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.remove(client)

		case msg := <-h.broadcast:
			h.mu.RLock()
			var slow []*Client
			for client := range h.clients[msg.MatchID] {
				select {
				case client.Send <- msg.Data:
				default:
					// Full buffer: the client is not keeping up.
					slow = append(slow, client)
				}
			}
			h.mu.RUnlock()

			for _, client := range slow {
				h.remove(client)
			}
		}
	}
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.clients[client.MatchID]
	if !ok || !clients[client] {
		return
	}
	delete(clients, client)
	close(client.Send)
	if len(clients) == 0 {
		delete(h.clients, client.MatchID)
	}
}

func (h *Hub) shutdown() {
	close(h.done)

	h.mu.Lock()
	defer h.mu.Unlock()
	for matchID, clients := range h.clients {
		for client := range clients {
			close(client.Send)
		}
		delete(h.clients, matchID)
	}
}

// Followers returns how many clients currently follow matchID.
func (h *Hub) Followers(matchID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[matchID])
}

// BroadcastToMatch queues data for every client following matchID.
// It is a no-op once the hub has stopped.
func (h *Hub) BroadcastToMatch(matchID string, data []byte) {
	select {
	case h.broadcast <- &Message{MatchID: matchID, Data: data}:
	case <-h.done:
	}
}

// Register starts delivering matchID broadcasts to client.
// It reports false when the hub has stopped; the client is then not tracked.
func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// Unregister stops deliveries to client and closes its Send channel.
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}
