// Package realtime fans newly persisted chat messages out to connected
// dashboard and mobile clients. Delivery is best-effort: the canonical message
// history is always the messages endpoint, never this channel.
package realtime

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

// Wire event names.
const (
	EventNewMessage             = "new_message"
	EventNewMessageNotification = "new_message_notification"
	EventNewNotification        = "new_notification"
)

type envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Hub tracks connected clients and the conversation rooms they joined.
type Hub struct {
	mu      sync.RWMutex
	rooms   map[string]map[*Client]struct{}
	clients map[*Client]struct{}
	logger  *zap.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		rooms:   make(map[string]map[*Client]struct{}),
		clients: make(map[*Client]struct{}),
		logger:  logger,
	}
}

// Register adds a client to the broadcast set.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
}

// Unregister removes a client from the broadcast set and every room.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
	for room, members := range h.rooms {
		delete(members, c)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
}

// Join subscribes a client to one conversation's room.
func (h *Hub) Join(conversationID string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[conversationID] == nil {
		h.rooms[conversationID] = make(map[*Client]struct{})
	}
	h.rooms[conversationID][c] = struct{}{}
}

// Leave removes a client from one conversation's room.
func (h *Hub) Leave(conversationID string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if members := h.rooms[conversationID]; members != nil {
		delete(members, c)
		if len(members) == 0 {
			delete(h.rooms, conversationID)
		}
	}
}

// Publish sends an event to every subscriber of one conversation. Slow
// consumers are skipped rather than blocked on.
func (h *Hub) Publish(conversationID, event string, data any) {
	payload, err := json.Marshal(envelope{Event: event, Data: data})
	if err != nil {
		h.logger.Error("marshal realtime event", zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.rooms[conversationID] {
		select {
		case c.send <- payload:
		default:
			h.logger.Warn("dropping realtime event for slow client",
				zap.String("conversation_id", conversationID),
				zap.String("event", event))
		}
	}
}

// Broadcast sends an event to every connected client regardless of room.
func (h *Hub) Broadcast(event string, data any) {
	payload, err := json.Marshal(envelope{Event: event, Data: data})
	if err != nil {
		h.logger.Error("marshal realtime event", zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		select {
		case c.send <- payload:
		default:
			h.logger.Warn("dropping realtime broadcast for slow client",
				zap.String("event", event))
		}
	}
}

// RoomSize reports how many clients currently subscribe to a conversation.
func (h *Hub) RoomSize(conversationID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[conversationID])
}
