package group

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	groupservice "github.com/soulconnect/backend/internal/service/group"
	"github.com/soulconnect/backend/internal/service/hub"
	"github.com/soulconnect/backend/pkg/utils"
)

// recentMessages is how much history REST responses carry; live connections
// never receive backlog.
const recentMessages = 20

// Handler serves the support-group REST routes and the live channel.
type Handler struct {
	groups *groupservice.Service
	hub    *hub.Hub
	logger *zap.Logger
}

// New creates the group handler.
func New(groups *groupservice.Service, h *hub.Hub, logger *zap.Logger) *Handler {
	return &Handler{groups: groups, hub: h, logger: logger}
}

// RegisterRoutes mounts REST and websocket routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/support-groups", h.handleList)
	r.Post("/support-groups/create", h.handleCreate)
	r.Post("/support-groups/join", h.handleJoin)
	r.Post("/support-groups/send-message", h.handleSendMessage)
	r.Get("/support-groups/{groupID}/messages", h.handleMessages)
	r.Get("/support-groups/{groupID}/info", h.handleInfo)
	r.Post("/support-groups/{groupID}/leave", h.handleLeave)
	r.Get("/ws/groups/{groupID}/{userID}", h.handleWebSocket)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	groups := h.groups.List(r.Context())
	utils.RespondJSON(w, http.StatusOK, map[string]any{"groups": groups})
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name        string `json:"name"`
		Topic       string `json:"topic"`
		Description string `json:"description"`
		MaxMembers  int    `json:"max_members"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created := h.groups.Create(r.Context(), payload.Name, payload.Topic, payload.Description, payload.MaxMembers)
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"group":   created,
		"message": "Support group created successfully",
	})
}

func (h *Handler) handleJoin(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		GroupID string `json:"group_id"`
		UserID  string `json:"user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	member, err := h.groups.Join(r.Context(), payload.GroupID, payload.UserID, "")
	if err != nil {
		utils.RespondJSON(w, http.StatusOK, map[string]any{
			"success": false,
			"message": "Group is full or not found",
		})
		return
	}

	snap, _ := h.groups.Snapshot(payload.GroupID, recentMessages)
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"member":  member,
		"group":   snap,
		"message": "Joined group successfully",
	})
}

func (h *Handler) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		GroupID     string `json:"group_id"`
		UserID      string `json:"user_id"`
		MessageText string `json:"message_text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	message, err := h.groups.Post(r.Context(), payload.GroupID, payload.UserID, payload.MessageText)
	if err != nil {
		utils.RespondJSON(w, http.StatusOK, map[string]any{
			"success": false,
			"error":   "Failed to send message",
		})
		return
	}

	h.hub.Broadcast(payload.GroupID, newMessageEvent(message))

	messages, _, _ := h.groups.Messages(payload.GroupID, recentMessages)
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"success":        true,
		"message":        message,
		"group_messages": messages,
	})
}

func (h *Handler) handleMessages(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupID")
	messages, memberCount, ok := h.groups.Messages(groupID, 50)
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "Group not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"group_id":     groupID,
		"messages":     messages,
		"member_count": memberCount,
	})
}

func (h *Handler) handleInfo(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupID")
	snap, ok := h.groups.Snapshot(groupID, 0)
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "Group not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]any{"group": snap})
}

func (h *Handler) handleLeave(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupID")
	var payload struct {
		UserID string `json:"user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !h.groups.Leave(r.Context(), groupID, payload.UserID) {
		utils.RespondJSON(w, http.StatusOK, map[string]any{
			"success": false,
			"message": "Error leaving group",
		})
		return
	}

	h.hub.Broadcast(groupID, userLeftEvent(groupID, payload.UserID))
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Left group successfully",
	})
}
