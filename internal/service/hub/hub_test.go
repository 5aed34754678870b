package hub_test

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/soulconnect/backend/internal/service/hub"
)

type fakeConn struct {
	received []any
	fail     bool
}

func (c *fakeConn) WriteJSON(v any) error {
	if c.fail {
		return errors.New("connection reset")
	}
	c.received = append(c.received, v)
	return nil
}

func TestBroadcastReachesAllConnections(t *testing.T) {
	h := hub.New(zap.NewNop())
	a, b := &fakeConn{}, &fakeConn{}
	h.Join("room", a)
	h.Join("room", b)

	h.Broadcast("room", "hello")

	if len(a.received) != 1 || len(b.received) != 1 {
		t.Fatalf("expected both connections to receive the event: a=%d b=%d", len(a.received), len(b.received))
	}
}

func TestBroadcastIsolatesFailures(t *testing.T) {
	h := hub.New(zap.NewNop())
	good1, bad, good2 := &fakeConn{}, &fakeConn{fail: true}, &fakeConn{}
	h.Join("room", good1)
	h.Join("room", bad)
	h.Join("room", good2)

	h.Broadcast("room", "hello")

	if len(good1.received) != 1 || len(good2.received) != 1 {
		t.Fatal("healthy connections must still receive the event")
	}
	if h.Size("room") != 2 {
		t.Fatalf("failing connection should have been removed, size=%d", h.Size("room"))
	}
}

func TestLeaveIsAbsenceSafe(t *testing.T) {
	h := hub.New(zap.NewNop())
	c := &fakeConn{}

	h.Leave("room", c) // never joined
	h.Join("room", c)
	h.Leave("room", c)
	h.Leave("room", c) // already removed

	if h.Size("room") != 0 {
		t.Fatalf("expected empty room, size=%d", h.Size("room"))
	}
}

func TestBroadcastToEmptyRoom(t *testing.T) {
	h := hub.New(zap.NewNop())
	h.Broadcast("nowhere", "hello") // must not panic
}

func TestRoomsAreIndependent(t *testing.T) {
	h := hub.New(zap.NewNop())
	a, b := &fakeConn{}, &fakeConn{}
	h.Join("room-1", a)
	h.Join("room-2", b)

	h.Broadcast("room-1", "event")

	if len(a.received) != 1 {
		t.Fatal("room-1 connection missed its event")
	}
	if len(b.received) != 0 {
		t.Fatal("room-2 connection received a foreign event")
	}
}
