package group_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"go.uber.org/zap"

	"github.com/soulconnect/backend/internal/analysis/emotion"
	groupservice "github.com/soulconnect/backend/internal/service/group"
	"github.com/soulconnect/backend/internal/storage"
)

func newService() *groupservice.Service {
	classifier := emotion.NewClassifier()
	classifier.Train()
	return groupservice.NewService(classifier, storage.Noop{}, zap.NewNop())
}

func TestJoinIdempotent(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	g := svc.Create(ctx, "Test", "anxiety", "desc", 4)

	first, err := svc.Join(ctx, g.ID, "user-a", "")
	if err != nil {
		t.Fatalf("Join err: %v", err)
	}
	second, err := svc.Join(ctx, g.ID, "user-a", "")
	if err != nil {
		t.Fatalf("rejoin err: %v", err)
	}
	if first.Pseudonym != second.Pseudonym {
		t.Fatalf("rejoin returned a different membership: %q vs %q", first.Pseudonym, second.Pseudonym)
	}

	snap, _ := svc.Snapshot(g.ID, 0)
	if snap.CurrentMembers != 1 {
		t.Fatalf("expected 1 member after rejoin, got %d", snap.CurrentMembers)
	}
}

func TestJoinCapacityInvariant(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	g := svc.Create(ctx, "Tiny", "stress", "desc", 1)

	if _, err := svc.Join(ctx, g.ID, "user-a", ""); err != nil {
		t.Fatalf("first join err: %v", err)
	}
	if _, err := svc.Join(ctx, g.ID, "user-b", ""); !errors.Is(err, groupservice.ErrGroupUnavailable) {
		t.Fatalf("expected ErrGroupUnavailable, got %v", err)
	}

	snap, _ := svc.Snapshot(g.ID, 0)
	if snap.CurrentMembers != 1 {
		t.Fatalf("member count changed on rejected join: %d", snap.CurrentMembers)
	}

	// A leaves, B can now join.
	if !svc.Leave(ctx, g.ID, "user-a") {
		t.Fatal("expected leave to remove user-a")
	}
	if _, err := svc.Join(ctx, g.ID, "user-b", ""); err != nil {
		t.Fatalf("join after leave err: %v", err)
	}
}

func TestJoinUnknownGroup(t *testing.T) {
	svc := newService()
	if _, err := svc.Join(context.Background(), "missing", "user-a", ""); !errors.Is(err, groupservice.ErrGroupUnavailable) {
		t.Fatalf("expected ErrGroupUnavailable, got %v", err)
	}
}

func TestPostRequiresMembership(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	g := svc.Create(ctx, "Test", "anxiety", "desc", 4)

	if _, err := svc.Post(ctx, g.ID, "stranger", "hello"); !errors.Is(err, groupservice.ErrNotMember) {
		t.Fatalf("expected ErrNotMember, got %v", err)
	}
}

func TestPostAnnotatesEmotion(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	g := svc.Create(ctx, "Test", "sadness", "desc", 4)
	member, _ := svc.Join(ctx, g.ID, "user-a", "Blue_Owl_42")

	message, err := svc.Post(ctx, g.ID, "user-a", "i feel so sad and depressed today")
	if err != nil {
		t.Fatalf("Post err: %v", err)
	}
	if message.Pseudonym != member.Pseudonym {
		t.Fatalf("message pseudonym %q does not match membership %q", message.Pseudonym, member.Pseudonym)
	}
	if message.Emotion != emotion.Sadness {
		t.Fatalf("expected sadness annotation, got %s", message.Emotion)
	}

	messages, count, ok := svc.Messages(g.ID, 20)
	if !ok || len(messages) != 1 || count != 1 {
		t.Fatalf("unexpected history: ok=%v len=%d members=%d", ok, len(messages), count)
	}
}

func TestLeaveAbsentMember(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	g := svc.Create(ctx, "Test", "anxiety", "desc", 4)
	if svc.Leave(ctx, g.ID, "ghost") {
		t.Fatal("expected leave of non-member to report false")
	}
}

func TestListSeedsDemoGroups(t *testing.T) {
	svc := newService()
	groups := svc.List(context.Background())
	if len(groups) != 4 {
		t.Fatalf("expected 4 seeded groups, got %d", len(groups))
	}
	// A second list must not seed again.
	if again := svc.List(context.Background()); len(again) != 4 {
		t.Fatalf("expected 4 groups on second list, got %d", len(again))
	}
}

func TestGeneratedPseudonymFormat(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	g := svc.Create(ctx, "Test", "anxiety", "desc", 8)
	member, err := svc.Join(ctx, g.ID, "user-a", "")
	if err != nil {
		t.Fatalf("Join err: %v", err)
	}

	pattern := regexp.MustCompile(`^[A-Z][a-z]+_[A-Z][a-z]+_[1-9][0-9]$`)
	if !pattern.MatchString(member.Pseudonym) {
		t.Fatalf("pseudonym %q does not match color_animal_NN format", member.Pseudonym)
	}
}
