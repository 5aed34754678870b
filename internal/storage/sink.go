// Package storage mirrors in-memory state to an optional relational store.
// The store is never the source of truth: every write is fire-and-forget and
// absence of a database must not change observed behavior, so the interface
// returns nothing and implementations swallow (but log) their own failures.
package storage

import (
	"context"
	"time"
)

// Sink receives best-effort copies of state transitions.
type Sink interface {
	SaveUser(ctx context.Context, user UserRow)
	SaveMessage(ctx context.Context, message MessageRow)
	SaveEmotionSample(ctx context.Context, sample EmotionRow)
	SaveGroup(ctx context.Context, group GroupRow)
	SaveGroupMember(ctx context.Context, member GroupMemberRow)
	SaveGroupMessage(ctx context.Context, message GroupMessageRow)
	DeactivateGroupMember(ctx context.Context, groupID, userID string)
	SaveCrisisLog(ctx context.Context, entry CrisisRow)

	// RecentMessages is the one read path; it returns nil when the store is
	// absent or unreachable.
	RecentMessages(ctx context.Context, sessionID string, limit int) []MessageRow
}

// UserRow mirrors the users table.
type UserRow struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	AnonymousID string    `gorm:"uniqueIndex;size:100" json:"anonymous_id"`
	CreatedAt   time.Time `json:"created_at"`
	LastActive  time.Time `json:"last_active"`
}

// MessageRow mirrors the messages table.
type MessageRow struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	SessionID    string    `gorm:"index;size:36" json:"session_id"`
	SenderType   string    `gorm:"size:20" json:"sender_type"`
	MessageText  string    `gorm:"type:text" json:"message_text"`
	EmotionLabel string    `gorm:"size:50" json:"emotion_label"`
	RiskLevel    string    `gorm:"size:20" json:"risk_level"`
	Timestamp    time.Time `json:"timestamp"`
}

// EmotionRow mirrors the emotion_analytics table.
type EmotionRow struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	UserID          string    `gorm:"index;size:36" json:"user_id"`
	Emotion         string    `gorm:"size:50" json:"emotion"`
	ConfidenceScore float64   `json:"confidence_score"`
	MessageContext  string    `gorm:"type:text" json:"message_context"`
	Timestamp       time.Time `json:"timestamp"`
}

// TherapySessionRow mirrors the therapy_sessions table. Nothing writes it
// yet; the table is kept for schema parity with the analytics dashboard.
type TherapySessionRow struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	UserID          string    `gorm:"index;size:36" json:"user_id"`
	ToolUsed        string    `gorm:"size:100" json:"tool_used"`
	DurationMinutes int       `json:"duration_minutes"`
	OutcomeNotes    string    `gorm:"type:text" json:"outcome_notes"`
	Timestamp       time.Time `json:"timestamp"`
}

// GroupRow mirrors the support_groups table.
type GroupRow struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"size:200" json:"name"`
	Topic       string    `gorm:"size:100" json:"topic"`
	Description string    `gorm:"type:text" json:"description"`
	MaxMembers  int       `json:"max_members"`
	Status      string    `gorm:"size:20" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// GroupMemberRow mirrors the group_members table.
type GroupMemberRow struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	GroupID       string    `gorm:"index;size:36" json:"group_id"`
	UserID        string    `gorm:"index;size:36" json:"user_id"`
	AnonymousName string    `gorm:"size:100" json:"anonymous_name"`
	JoinTime      time.Time `json:"join_time"`
	IsActive      bool      `gorm:"default:true" json:"is_active"`
}

// GroupMessageRow mirrors the group_messages table.
type GroupMessageRow struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	GroupID       string    `gorm:"index;size:36" json:"group_id"`
	UserID        string    `gorm:"size:36" json:"user_id"`
	AnonymousName string    `gorm:"size:100" json:"anonymous_name"`
	MessageText   string    `gorm:"type:text" json:"message_text"`
	EmotionLabel  string    `gorm:"size:50" json:"emotion_label"`
	Timestamp     time.Time `json:"timestamp"`
}

// CrisisRow mirrors the crisis_logs table.
type CrisisRow struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	UserID         string    `gorm:"index;size:36" json:"user_id"`
	TriggerMessage string    `gorm:"type:text" json:"trigger_message"`
	SeverityLevel  int       `json:"severity_level"`
	ActionTaken    string    `gorm:"type:text" json:"action_taken"`
	Timestamp      time.Time `json:"timestamp"`
}

// Table names follow the soul_connect schema rather than gorm's derived
// pluralization.
func (UserRow) TableName() string           { return "users" }
func (MessageRow) TableName() string        { return "messages" }
func (EmotionRow) TableName() string        { return "emotion_analytics" }
func (TherapySessionRow) TableName() string { return "therapy_sessions" }
func (GroupRow) TableName() string          { return "support_groups" }
func (GroupMemberRow) TableName() string    { return "group_members" }
func (GroupMessageRow) TableName() string   { return "group_messages" }
func (CrisisRow) TableName() string         { return "crisis_logs" }

// Noop is the sink used when no database is configured.
type Noop struct{}

func (Noop) SaveUser(context.Context, UserRow)                    {}
func (Noop) SaveMessage(context.Context, MessageRow)              {}
func (Noop) SaveEmotionSample(context.Context, EmotionRow)        {}
func (Noop) SaveGroup(context.Context, GroupRow)                  {}
func (Noop) SaveGroupMember(context.Context, GroupMemberRow)      {}
func (Noop) SaveGroupMessage(context.Context, GroupMessageRow)    {}
func (Noop) DeactivateGroupMember(context.Context, string, string) {}
func (Noop) SaveCrisisLog(context.Context, CrisisRow)             {}

func (Noop) RecentMessages(context.Context, string, int) []MessageRow { return nil }
