// Package hub tracks live push connections per support-group room and fans
// events out to them. Delivery is best-effort and in-process only: there is
// no backlog, no ordering guarantee across rooms, and a connection that
// fails a write is dropped from the room.
package hub

import (
	"sync"

	"go.uber.org/zap"
)

// Conn is the slice of a websocket connection the hub needs. It is satisfied
// by *websocket.Conn from gorilla.
type Conn interface {
	WriteJSON(v any) error
}

// Hub maintains the per-room connection sets. Membership here is the sole
// ownership record; the hub never closes the underlying connection.
type Hub struct {
	mu     sync.Mutex
	rooms  map[string]map[Conn]struct{}
	logger *zap.Logger
}

// New returns an empty hub.
func New(logger *zap.Logger) *Hub {
	return &Hub{rooms: make(map[string]map[Conn]struct{}), logger: logger}
}

// Join adds a connection to a room, creating the room set if absent.
func (h *Hub) Join(room string, conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.rooms[room]
	if !ok {
		set = make(map[Conn]struct{})
		h.rooms[room] = set
	}
	set[conn] = struct{}{}
}

// Leave removes a connection from a room. Removing a connection that was
// never added (or was already dropped) is a no-op.
func (h *Hub) Leave(room string, conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if set, ok := h.rooms[room]; ok {
		delete(set, conn)
		if len(set) == 0 {
			delete(h.rooms, room)
		}
	}
}

// Broadcast sends payload to every connection currently in the room. A
// failing connection is removed from the set; the remaining connections
// still receive the payload.
func (h *Hub) Broadcast(room string, payload any) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.rooms[room]
	if !ok {
		return
	}
	for conn := range set {
		if err := conn.WriteJSON(payload); err != nil {
			h.logger.Warn("dropping dead connection",
				zap.String("room", room), zap.Error(err))
			delete(set, conn)
		}
	}
	if len(set) == 0 {
		delete(h.rooms, room)
	}
}

// Size reports how many connections a room currently has.
func (h *Hub) Size(room string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms[room])
}
