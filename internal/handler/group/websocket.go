package group

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/soulconnect/backend/internal/model/group"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type inboundEvent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func newMessageEvent(message group.Message) map[string]any {
	return map[string]any{
		"type":     "new_message",
		"message":  message,
		"group_id": message.GroupID,
	}
}

func userJoinedEvent(groupID, userID string) map[string]any {
	return map[string]any{
		"type":      "user_joined",
		"user_id":   userID,
		"group_id":  groupID,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
}

func userLeftEvent(groupID, userID string) map[string]any {
	return map[string]any{
		"type":     "user_left",
		"user_id":  userID,
		"group_id": groupID,
	}
}

// handleWebSocket attaches a live connection to a room. The connection only
// sees events raised after it joined; history stays behind the REST routes.
func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupID")
	userID := chi.URLParam(r, "userID")

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	h.hub.Join(groupID, conn)
	h.logger.Info("live connection opened",
		zap.String("group_id", groupID), zap.String("user_id", userID))

	for {
		var event inboundEvent
		if err := conn.ReadJSON(&event); err != nil {
			break
		}

		switch event.Type {
		case "join_group":
			h.hub.Broadcast(groupID, userJoinedEvent(groupID, userID))
		case "chat_message":
			message, err := h.groups.Post(r.Context(), groupID, userID, event.Text)
			if err != nil {
				h.logger.Warn("live message rejected",
					zap.String("group_id", groupID),
					zap.String("user_id", userID),
					zap.Error(err))
				continue
			}
			h.hub.Broadcast(groupID, newMessageEvent(message))
		}
	}

	h.hub.Leave(groupID, conn)
	h.hub.Broadcast(groupID, userLeftEvent(groupID, userID))
	h.logger.Info("live connection closed",
		zap.String("group_id", groupID), zap.String("user_id", userID))
}
