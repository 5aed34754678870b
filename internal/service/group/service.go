package group

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/soulconnect/backend/internal/analysis/emotion"
	"github.com/soulconnect/backend/internal/model/group"
	"github.com/soulconnect/backend/internal/storage"
)

var (
	// ErrGroupUnavailable covers both "group missing" and "group full";
	// callers surface it as a structured {success:false} result.
	ErrGroupUnavailable = errors.New("group is full or not found")
	ErrNotMember        = errors.New("user is not a member of this group")
)

const defaultMaxMembers = 8

var pseudonymColors = []string{"Blue", "Green", "Red", "Purple", "Orange", "Yellow", "Pink", "Teal"}
var pseudonymAnimals = []string{"Dolphin", "Owl", "Bear", "Wolf", "Butterfly", "Tiger", "Elephant", "Panda"}

type state struct {
	info     group.Group
	members  []group.Member
	messages []group.Message
}

// Service is the in-memory registry of support groups. All check-then-mutate
// sequences (capacity, membership) are serialized under the registry mutex.
type Service struct {
	mu         sync.Mutex
	groups     map[string]*state
	classifier *emotion.Classifier
	sink       storage.Sink
	logger     *zap.Logger
}

// NewService wires the registry to the emotion classifier used for message
// annotation and the optional relational mirror.
func NewService(classifier *emotion.Classifier, sink storage.Sink, logger *zap.Logger) *Service {
	return &Service{
		groups:     make(map[string]*state),
		classifier: classifier,
		sink:       sink,
		logger:     logger,
	}
}

// Create registers a new active group and mirrors it to the store.
func (s *Service) Create(ctx context.Context, name, topic, description string, maxMembers int) group.Group {
	if maxMembers <= 0 {
		maxMembers = defaultMaxMembers
	}

	info := group.Group{
		ID:          uuid.NewString(),
		Name:        name,
		Topic:       topic,
		Description: description,
		MaxMembers:  maxMembers,
		Status:      group.StatusActive,
		CreatedAt:   time.Now().UTC(),
	}

	s.mu.Lock()
	s.groups[info.ID] = &state{info: info}
	s.mu.Unlock()

	s.sink.SaveGroup(ctx, storage.GroupRow{
		ID:          info.ID,
		Name:        info.Name,
		Topic:       info.Topic,
		Description: info.Description,
		MaxMembers:  info.MaxMembers,
		Status:      info.Status,
		CreatedAt:   info.CreatedAt,
	})

	s.logger.Info("support group created",
		zap.String("group_id", info.ID),
		zap.String("topic", info.Topic))
	return info
}

// Join adds the user to the group, generating a pseudonym when none is
// supplied. Rejoining is idempotent: an existing membership is returned as-is
// and the member count does not change.
func (s *Service) Join(ctx context.Context, groupID, userID, pseudonym string) (group.Member, error) {
	s.mu.Lock()
	st, ok := s.groups[groupID]
	if !ok {
		s.mu.Unlock()
		return group.Member{}, ErrGroupUnavailable
	}

	for _, member := range st.members {
		if member.UserID == userID {
			s.mu.Unlock()
			return member, nil
		}
	}

	if len(st.members) >= st.info.MaxMembers {
		s.mu.Unlock()
		return group.Member{}, ErrGroupUnavailable
	}

	if pseudonym == "" {
		pseudonym = generatePseudonym()
	}
	member := group.Member{
		UserID:    userID,
		Pseudonym: pseudonym,
		JoinedAt:  time.Now().UTC(),
	}
	st.members = append(st.members, member)
	s.mu.Unlock()

	s.sink.SaveGroupMember(ctx, storage.GroupMemberRow{
		ID:            uuid.NewString(),
		GroupID:       groupID,
		UserID:        userID,
		AnonymousName: member.Pseudonym,
		JoinTime:      member.JoinedAt,
		IsActive:      true,
	})
	return member, nil
}

// Post records a message from an existing member, annotating it with the
// classifier's emotion label, and returns the stored record for broadcast.
func (s *Service) Post(ctx context.Context, groupID, userID, text string) (group.Message, error) {
	label, confidence := s.classifier.Predict(text)

	s.mu.Lock()
	st, ok := s.groups[groupID]
	if !ok {
		s.mu.Unlock()
		return group.Message{}, ErrGroupUnavailable
	}

	pseudonym := ""
	for _, member := range st.members {
		if member.UserID == userID {
			pseudonym = member.Pseudonym
			break
		}
	}
	if pseudonym == "" {
		s.mu.Unlock()
		return group.Message{}, ErrNotMember
	}

	message := group.Message{
		ID:         uuid.NewString(),
		GroupID:    groupID,
		UserID:     userID,
		Pseudonym:  pseudonym,
		Text:       text,
		Emotion:    label,
		Confidence: confidence,
		CreatedAt:  time.Now().UTC(),
	}
	st.messages = append(st.messages, message)
	s.mu.Unlock()

	s.sink.SaveGroupMessage(ctx, storage.GroupMessageRow{
		ID:            message.ID,
		GroupID:       groupID,
		UserID:        userID,
		AnonymousName: pseudonym,
		MessageText:   text,
		EmotionLabel:  label,
		Timestamp:     message.CreatedAt,
	})
	return message, nil
}

// Leave removes the member if present and reports whether a removal happened.
func (s *Service) Leave(ctx context.Context, groupID, userID string) bool {
	s.mu.Lock()
	st, ok := s.groups[groupID]
	if !ok {
		s.mu.Unlock()
		return false
	}

	removed := false
	kept := st.members[:0]
	for _, member := range st.members {
		if member.UserID == userID {
			removed = true
			continue
		}
		kept = append(kept, member)
	}
	st.members = kept
	s.mu.Unlock()

	if removed {
		s.sink.DeactivateGroupMember(ctx, groupID, userID)
	}
	return removed
}

// List returns available groups (active and under capacity). When the
// registry is empty it first seeds the demo set.
func (s *Service) List(ctx context.Context) []group.Summary {
	s.mu.Lock()
	empty := len(s.groups) == 0
	s.mu.Unlock()
	if empty {
		s.seedDemoGroups(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var out []group.Summary
	for _, st := range s.groups {
		if st.info.Status != group.StatusActive || len(st.members) >= st.info.MaxMembers {
			continue
		}
		out = append(out, group.Summary{
			ID:             st.info.ID,
			Name:           st.info.Name,
			Topic:          st.info.Topic,
			Description:    st.info.Description,
			CurrentMembers: len(st.members),
			MaxMembers:     st.info.MaxMembers,
			CreatedAt:      st.info.CreatedAt,
		})
	}
	return out
}

// Snapshot returns the detailed group view including up to lastMessages
// recent messages (0 means none).
func (s *Service) Snapshot(groupID string, lastMessages int) (group.Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.groups[groupID]
	if !ok {
		return group.Snapshot{}, false
	}

	snap := group.Snapshot{
		Group:          st.info,
		Members:        append([]group.Member(nil), st.members...),
		CurrentMembers: len(st.members),
	}
	if lastMessages > 0 {
		messages := st.messages
		if len(messages) > lastMessages {
			messages = messages[len(messages)-lastMessages:]
		}
		snap.Messages = append([]group.Message(nil), messages...)
	}
	return snap, true
}

// Messages returns up to n recent messages plus the member count.
func (s *Service) Messages(groupID string, n int) ([]group.Message, int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.groups[groupID]
	if !ok {
		return nil, 0, false
	}
	messages := st.messages
	if n > 0 && len(messages) > n {
		messages = messages[len(messages)-n:]
	}
	return append([]group.Message(nil), messages...), len(st.members), true
}

// Count reports the number of registered groups.
func (s *Service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.groups)
}

func (s *Service) seedDemoGroups(ctx context.Context) {
	s.Create(ctx, "Anxiety Support Circle", "anxiety",
		"Safe space for anxiety discussions and coping strategies", defaultMaxMembers)
	s.Create(ctx, "Depression Support", "depression",
		"Supportive community for depression recovery", defaultMaxMembers)
	s.Create(ctx, "Stress Management", "stress",
		"Learn stress relief techniques together", defaultMaxMembers)
	s.Create(ctx, "Loneliness & Connection", "loneliness",
		"Building connections and overcoming isolation", defaultMaxMembers)
}

// generatePseudonym builds a {Color}_{Animal}_{NN} alias. Collisions are
// possible and not checked.
func generatePseudonym() string {
	color := pseudonymColors[rand.IntN(len(pseudonymColors))]
	animal := pseudonymAnimals[rand.IntN(len(pseudonymAnimals))]
	return fmt.Sprintf("%s_%s_%d", color, animal, 10+rand.IntN(90))
}
