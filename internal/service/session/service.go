package session

import (
	"sync"
	"time"

	"github.com/soulconnect/backend/internal/model/chat"
)

// maxTurns bounds the per-session conversation log; older turns are dropped.
const maxTurns = 20

type state struct {
	turns     []chat.Turn
	trends    []chat.EmotionTrend
	createdAt time.Time
}

// Service is the in-memory authoritative store for conversation sessions.
// Sessions are created on first contact and live for the process lifetime.
type Service struct {
	mu       sync.RWMutex
	sessions map[string]*state
}

// NewService bootstraps an empty session store.
func NewService() *Service {
	return &Service{sessions: make(map[string]*state)}
}

// Ensure creates the session if it does not exist yet.
func (s *Service) Ensure(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLocked(sessionID)
}

func (s *Service) ensureLocked(sessionID string) *state {
	st, ok := s.sessions[sessionID]
	if !ok {
		st = &state{createdAt: time.Now().UTC()}
		s.sessions[sessionID] = st
	}
	return st
}

// Record appends a completed turn and its emotion-trend point, trimming the
// conversation log to the most recent maxTurns entries. It returns the
// resulting conversation length.
func (s *Service) Record(sessionID string, turn chat.Turn) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.ensureLocked(sessionID)
	st.turns = append(st.turns, turn)
	if len(st.turns) > maxTurns {
		st.turns = st.turns[len(st.turns)-maxTurns:]
	}
	st.trends = append(st.trends, chat.EmotionTrend{
		Timestamp:  turn.Timestamp,
		Emotion:    turn.Emotion,
		RiskLevel:  turn.RiskLevel,
		Confidence: turn.Confidence,
	})
	return len(st.turns)
}

// History returns up to n most recent turns, oldest first.
func (s *Service) History(sessionID string, n int) []chat.Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.sessions[sessionID]
	if !ok {
		return nil
	}
	turns := st.turns
	if n > 0 && len(turns) > n {
		turns = turns[len(turns)-n:]
	}
	out := make([]chat.Turn, len(turns))
	copy(out, turns)
	return out
}

// RecentRiskLevels returns the risk tiers of the last n turns.
func (s *Service) RecentRiskLevels(sessionID string, n int) []string {
	tiers := make([]string, 0, n)
	for _, turn := range s.History(sessionID, n) {
		tiers = append(tiers, turn.RiskLevel)
	}
	return tiers
}

// RecentTechniques returns the CBT technique names used in the last n turns.
func (s *Service) RecentTechniques(sessionID string, n int) []string {
	techniques := make([]string, 0, n)
	for _, turn := range s.History(sessionID, n) {
		if turn.Technique != "" {
			techniques = append(techniques, turn.Technique)
		}
	}
	return techniques
}

// Count reports the number of active sessions.
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Info summarizes one session for the session-info endpoint.
type Info struct {
	SessionID         string              `json:"session_id"`
	ConversationCount int                 `json:"conversation_count"`
	EmotionTrends     []chat.EmotionTrend `json:"emotion_trends"`
	EmotionStats      map[string]int      `json:"emotion_statistics"`
	CreatedAt         time.Time           `json:"created_at"`
	RecentIntents     [][]string          `json:"recent_intents"`
}

// Summarize builds the session-info view: conversation length, the last 10
// trend points, per-emotion counts, and intents of the last 5 turns.
func (s *Service) Summarize(sessionID string) Info {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info := Info{SessionID: sessionID, EmotionStats: make(map[string]int)}
	st, ok := s.sessions[sessionID]
	if !ok {
		return info
	}

	info.ConversationCount = len(st.turns)
	info.CreatedAt = st.createdAt
	for _, trend := range st.trends {
		info.EmotionStats[trend.Emotion]++
	}

	trends := st.trends
	if len(trends) > 10 {
		trends = trends[len(trends)-10:]
	}
	info.EmotionTrends = append(info.EmotionTrends, trends...)

	turns := st.turns
	if len(turns) > 5 {
		turns = turns[len(turns)-5:]
	}
	for _, turn := range turns {
		info.RecentIntents = append(info.RecentIntents, turn.Intents)
	}
	return info
}
