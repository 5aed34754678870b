package chat

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/soulconnect/backend/internal/analysis/emotion"
	"github.com/soulconnect/backend/internal/analysis/risk"
	"github.com/soulconnect/backend/internal/analysis/text"
	chatmodel "github.com/soulconnect/backend/internal/model/chat"
	"github.com/soulconnect/backend/internal/service/responder"
	"github.com/soulconnect/backend/internal/service/session"
	"github.com/soulconnect/backend/internal/storage"
	"github.com/soulconnect/backend/pkg/utils"
)

// Handler serves the one-on-one support conversation endpoints.
type Handler struct {
	sessions   *session.Service
	classifier *emotion.Classifier
	responder  *responder.Responder
	sink       storage.Sink
}

// New creates the chat handler.
func New(sessions *session.Service, classifier *emotion.Classifier, resp *responder.Responder, sink storage.Sink) *Handler {
	return &Handler{
		sessions:   sessions,
		classifier: classifier,
		responder:  resp,
		sink:       sink,
	}
}

// RegisterRoutes mounts the conversation routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/create-user", h.handleCreateUser)
	r.Post("/send-message", h.handleSendMessage)
	r.Get("/session-info/{sessionID}", h.handleSessionInfo)
	r.Get("/user/{userID}/conversations", h.handleConversations)
	r.Post("/process-voice", h.handleProcessVoice)
}

func (h *Handler) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	userID := uuid.NewString()
	anonymousID := fmt.Sprintf("user_%s", userID[:8])

	h.sink.SaveUser(r.Context(), storage.UserRow{
		ID:          userID,
		AnonymousID: anonymousID,
		CreatedAt:   time.Now().UTC(),
		LastActive:  time.Now().UTC(),
	})
	h.sessions.Ensure(userID)

	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"user_id":      userID,
		"anonymous_id": anonymousID,
		"session_id":   userID,
		"message":      "Anonymous user created successfully",
	})
}

type sendMessageRequest struct {
	SessionID    string `json:"session_id"`
	SessionIDAlt string `json:"sessionId"`
	MessageText  string `json:"message_text"`
	MessageAlt   string `json:"messageText"`
	Message      string `json:"message"`
}

// sessionID and message tolerate several field spellings and fall back to
// permissive defaults rather than rejecting the request.
func (r sendMessageRequest) sessionID() string {
	if r.SessionID != "" {
		return r.SessionID
	}
	if r.SessionIDAlt != "" {
		return r.SessionIDAlt
	}
	return uuid.NewString()
}

func (r sendMessageRequest) message() string {
	for _, candidate := range []string{r.MessageText, r.MessageAlt, r.Message} {
		if candidate != "" {
			return candidate
		}
	}
	return "Hello"
}

func (h *Handler) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var payload sendMessageRequest
	_ = json.NewDecoder(r.Body).Decode(&payload) // malformed bodies use defaults

	sessionID := payload.sessionID()
	rawMessage := payload.message()
	userText := strings.ToLower(rawMessage)
	messageID := uuid.NewString()
	ctx := r.Context()

	h.sessions.Ensure(sessionID)

	corrected, intents := text.Normalize(userText)
	emotionLabel, confidence := h.classifier.Predict(corrected)
	riskLevel, riskScore := risk.Assess(corrected, emotionLabel, confidence,
		h.sessions.RecentRiskLevels(sessionID, 3))

	result := h.responder.Respond(ctx, responder.Input{
		SessionID:  sessionID,
		Text:       corrected,
		RawText:    userText,
		Intents:    intents,
		Emotion:    emotionLabel,
		Confidence: confidence,
		RiskLevel:  riskLevel,
		History:    h.sessions.History(sessionID, 4),
	})

	now := time.Now().UTC()
	h.sink.SaveMessage(ctx, storage.MessageRow{
		ID:           messageID,
		SessionID:    sessionID,
		SenderType:   "user",
		MessageText:  userText,
		EmotionLabel: emotionLabel,
		RiskLevel:    riskLevel,
		Timestamp:    now,
	})
	h.sink.SaveEmotionSample(ctx, storage.EmotionRow{
		ID:              uuid.NewString(),
		UserID:          sessionID,
		Emotion:         emotionLabel,
		ConfidenceScore: confidence,
		MessageContext:  truncate(userText, 200),
		Timestamp:       now,
	})

	length := h.sessions.Record(sessionID, chatmodel.Turn{
		Timestamp:        now,
		UserMessage:      userText,
		CorrectedMessage: corrected,
		BotResponse:      result.Text,
		Emotion:          emotionLabel,
		RiskLevel:        riskLevel,
		Intents:          intents,
		Confidence:       confidence,
		Technique:        result.Technique,
	})

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"user_message":        rawMessage,
		"bot_response":        result.Text,
		"corrected_text":      corrected,
		"detected_intents":    intents,
		"emotion":             emotionLabel,
		"confidence_score":    confidence,
		"risk_level":          riskLevel,
		"risk_score":          riskScore,
		"message_id":          messageID,
		"session_id":          sessionID,
		"conversation_length": length,
	})
}

func (h *Handler) handleSessionInfo(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	utils.RespondJSON(w, http.StatusOK, h.sessions.Summarize(sessionID))
}

func (h *Handler) handleConversations(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	rows := h.sink.RecentMessages(r.Context(), userID, 50)
	if rows == nil {
		rows = []storage.MessageRow{}
	}
	utils.RespondJSON(w, http.StatusOK, map[string]any{"conversations": rows})
}

// handleProcessVoice simulates voice transcription; there is no audio
// pipeline behind it yet.
func (h *Handler) handleProcessVoice(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SessionID string `json:"session_id"`
	}
	_ = json.NewDecoder(r.Body).Decode(&payload)

	transcript := "I'm feeling anxious today (from voice)"
	corrected, _ := text.Normalize(strings.ToLower(transcript))
	emotionLabel, confidence := h.classifier.Predict(corrected)
	riskLevel, _ := risk.Assess(corrected, emotionLabel, confidence,
		h.sessions.RecentRiskLevels(payload.SessionID, 3))

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"transcribed_text": transcript,
		"emotion":          emotionLabel,
		"risk_level":       riskLevel,
		"message":          "Voice processed successfully",
	})
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
