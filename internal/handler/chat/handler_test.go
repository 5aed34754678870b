package chat

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/soulconnect/backend/internal/analysis/emotion"
	"github.com/soulconnect/backend/internal/service/responder"
	"github.com/soulconnect/backend/internal/service/session"
	"github.com/soulconnect/backend/internal/storage"
)

func setupRouter(trained bool) *chi.Mux {
	classifier := emotion.NewClassifier()
	if trained {
		classifier.Train()
	}
	sessions := session.NewService()
	resp := responder.New(nil, storage.Noop{}, zap.NewNop())
	handler := New(sessions, classifier, resp, storage.Noop{})

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func postJSON(t *testing.T, r http.Handler, path string, body map[string]any) map[string]any {
	t.Helper()
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("%s returned %d", path, resp.Code)
	}
	var decoded map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	return decoded
}

func TestCreateUser(t *testing.T) {
	r := setupRouter(true)
	decoded := postJSON(t, r, "/create-user", nil)

	if decoded["user_id"] == "" {
		t.Fatal("expected a generated user_id")
	}
	if decoded["session_id"] != decoded["user_id"] {
		t.Fatal("session_id should match user_id")
	}
}

func TestSendMessageCrisisScenario(t *testing.T) {
	r := setupRouter(true)
	decoded := postJSON(t, r, "/send-message", map[string]any{
		"session_id":   "crisis-session",
		"message_text": "I want to kill myself",
	})

	if decoded["risk_level"] != "high" {
		t.Fatalf("expected high risk, got %v", decoded["risk_level"])
	}
	reply, _ := decoded["bot_response"].(string)
	for _, contact := range []string{"+91-9999666555", "+91-9820466726", "+91-9152987821", "112"} {
		if !strings.Contains(reply, contact) {
			t.Fatalf("crisis reply missing contact %s", contact)
		}
	}
}

func TestSendMessageGreetingWithFreshClassifier(t *testing.T) {
	r := setupRouter(false)
	decoded := postJSON(t, r, "/send-message", map[string]any{
		"session_id":   "greeting-session",
		"message_text": "hello",
	})

	if decoded["emotion"] != "neutral" {
		t.Fatalf("expected neutral emotion, got %v", decoded["emotion"])
	}
	greetings := []string{
		"Hello! I'm Soul Connect. Thank you for reaching out. How are you feeling today?",
		"Hi there! I'm here to listen and support you. What's on your mind?",
		"Welcome! I'm Soul Connect, your mental health companion. How can I help you today?",
	}
	reply, _ := decoded["bot_response"].(string)
	found := false
	for _, greeting := range greetings {
		if reply == greeting {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a greeting template, got %q", reply)
	}
}

func TestSendMessageBoundedHistory(t *testing.T) {
	r := setupRouter(true)
	var length float64
	for i := 0; i < 25; i++ {
		decoded := postJSON(t, r, "/send-message", map[string]any{
			"session_id":   "long-session",
			"message_text": fmt.Sprintf("checking in %d", i),
		})
		length = decoded["conversation_length"].(float64)
	}
	if length != 20 {
		t.Fatalf("expected conversation length capped at 20, got %v", length)
	}
}

func TestSendMessageDefaultsOnMalformedBody(t *testing.T) {
	r := setupRouter(true)
	req := httptest.NewRequest(http.MethodPost, "/send-message", strings.NewReader("{not json"))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected permissive handling, got %d", resp.Code)
	}
	var decoded map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if decoded["session_id"] == "" {
		t.Fatal("expected a generated session id")
	}
	if decoded["user_message"] != "Hello" {
		t.Fatalf("expected default message, got %v", decoded["user_message"])
	}
}

func TestSendMessageReturnsCorrectedText(t *testing.T) {
	r := setupRouter(true)
	decoded := postJSON(t, r, "/send-message", map[string]any{
		"session_id":   "spelling-session",
		"message_text": "im so depresed",
	})
	if decoded["corrected_text"] != "im so depressed" {
		t.Fatalf("unexpected corrected text: %v", decoded["corrected_text"])
	}
}

func TestSessionInfo(t *testing.T) {
	r := setupRouter(true)
	postJSON(t, r, "/send-message", map[string]any{
		"session_id":   "info-session",
		"message_text": "i feel so sad and depressed today",
	})

	req := httptest.NewRequest(http.MethodGet, "/session-info/info-session", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("session-info returned %d", resp.Code)
	}
	var info session.Info
	if err := json.Unmarshal(resp.Body.Bytes(), &info); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if info.ConversationCount != 1 {
		t.Fatalf("expected 1 turn, got %d", info.ConversationCount)
	}
	if info.EmotionStats["sadness"] != 1 {
		t.Fatalf("expected one sadness sample, got %v", info.EmotionStats)
	}
}

func TestProcessVoiceSimulated(t *testing.T) {
	r := setupRouter(true)
	decoded := postJSON(t, r, "/process-voice", map[string]any{
		"session_id": "voice-session",
	})
	if decoded["transcribed_text"] != "I'm feeling anxious today (from voice)" {
		t.Fatalf("unexpected transcript: %v", decoded["transcribed_text"])
	}
	if decoded["emotion"] == "" {
		t.Fatal("expected an emotion label")
	}
}

func TestConversationsEmptyWithoutStore(t *testing.T) {
	r := setupRouter(true)
	req := httptest.NewRequest(http.MethodGet, "/user/someone/conversations", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("conversations returned %d", resp.Code)
	}
	var decoded struct {
		Conversations []storage.MessageRow `json:"conversations"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(decoded.Conversations) != 0 {
		t.Fatalf("expected no conversations without a store, got %d", len(decoded.Conversations))
	}
}
