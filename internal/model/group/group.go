package group

import "time"

// Status values a support group moves through. Closed is terminal and only
// reachable administratively; nothing in the API flips a group there.
const (
	StatusActive = "active"
	StatusClosed = "closed"
)

// Group describes one support group room.
type Group struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Topic       string    `json:"topic"`
	Description string    `json:"description"`
	MaxMembers  int       `json:"max_members"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// Member is one participant, identified to other members only by pseudonym.
type Member struct {
	UserID    string    `json:"user_id"`
	Pseudonym string    `json:"anonymous_name"`
	JoinedAt  time.Time `json:"join_time"`
}

// Message is a single group chat message with its emotion annotation.
type Message struct {
	ID         string    `json:"id"`
	GroupID    string    `json:"group_id"`
	UserID     string    `json:"user_id"`
	Pseudonym  string    `json:"anonymous_name"`
	Text       string    `json:"message_text"`
	Emotion    string    `json:"emotion"`
	Confidence float64   `json:"confidence"`
	CreatedAt  time.Time `json:"timestamp"`
}

// Summary is the listing view of a group.
type Summary struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Topic          string    `json:"topic"`
	Description    string    `json:"description"`
	CurrentMembers int       `json:"current_members"`
	MaxMembers     int       `json:"max_members"`
	CreatedAt      time.Time `json:"created_at"`
}

// Snapshot is the detailed view returned on join and info requests.
type Snapshot struct {
	Group
	Members        []Member  `json:"members"`
	CurrentMembers int       `json:"current_members"`
	Messages       []Message `json:"messages,omitempty"`
}
