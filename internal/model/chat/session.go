package chat

import "time"

// Session captures a transient anonymous support conversation.
type Session struct {
	ID        string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Turn records a single user message together with everything the
// pipeline derived from it.
type Turn struct {
	Timestamp        time.Time `json:"timestamp"`
	UserMessage      string    `json:"user_message"`
	CorrectedMessage string    `json:"corrected_message"`
	BotResponse      string    `json:"bot_response"`
	Emotion          string    `json:"emotion"`
	RiskLevel        string    `json:"risk_level"`
	Intents          []string  `json:"intents"`
	Confidence       float64   `json:"confidence"`
	Technique        string    `json:"technique,omitempty"`
}

// EmotionTrend is one point in a session's emotion timeline.
type EmotionTrend struct {
	Timestamp  time.Time `json:"timestamp"`
	Emotion    string    `json:"emotion"`
	RiskLevel  string    `json:"risk_level"`
	Confidence float64   `json:"confidence"`
}
