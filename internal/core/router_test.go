package core

import (
	"testing"

	"github.com/rs/zerolog"
)

func newTestRouter(capacity int) (*Registry, *Router) {
	reg := NewRegistry(capacity)
	logger := zerolog.Nop()
	return reg, NewRouter(reg, &logger)
}

func mustRegister(t *testing.T, reg *Registry, room string) *Client {
	t.Helper()
	c := newClient(nil, "", room, 4)
	if _, err := reg.Register(c); err != nil {
		t.Fatalf("register: %v", err)
	}
	return c
}

func drained(c *Client) []string {
	var lines []string
	for {
		select {
		case line := <-c.outbox:
			lines = append(lines, line)
		default:
			return lines
		}
	}
}

func TestBroadcastMatchesRoomCaseInsensitive(t *testing.T) {
	reg, rt := newTestRouter(4)
	a := mustRegister(t, reg, "Common")
	b := mustRegister(t, reg, "COMMON")
	c := mustRegister(t, reg, "Other")

	rt.BroadcastToRoom("common", "hi all")

	for _, recipient := range []*Client{a, b} {
		got := drained(recipient)
		if len(got) != 1 || got[0] != "hi all" {
			t.Fatalf("client %d got %v, want [hi all]", recipient.ID(), got)
		}
	}
	if got := drained(c); len(got) != 0 {
		t.Fatalf("other-room client must not receive, got %v", got)
	}
}

func TestBroadcastExceptSkipsOneClient(t *testing.T) {
	reg, rt := newTestRouter(4)
	a := mustRegister(t, reg, "Common")
	b := mustRegister(t, reg, "Common")

	rt.BroadcastToRoomExcept("Common", "no echo", a.ID())

	if got := drained(a); len(got) != 0 {
		t.Fatalf("excluded client must not receive, got %v", got)
	}
	if got := drained(b); len(got) != 1 {
		t.Fatalf("peer must receive exactly once, got %v", got)
	}
}

func TestSendToClientIgnoresRoom(t *testing.T) {
	reg, rt := newTestRouter(4)
	a := mustRegister(t, reg, "RoomA")
	b := mustRegister(t, reg, "RoomB")

	rt.SendToClient(b.ID(), "psst")

	if got := drained(b); len(got) != 1 || got[0] != "psst" {
		t.Fatalf("target got %v, want [psst]", got)
	}
	if got := drained(a); len(got) != 0 {
		t.Fatalf("bystander got %v", got)
	}
}

func TestSendToUnregisteredClientIsNoop(t *testing.T) {
	_, rt := newTestRouter(2)
	rt.SendToClient(0, "nobody home")
	rt.SendToClient(-1, "nobody home")
	rt.SendToClient(99, "nobody home")
}

func TestFullOutboxDropsInsteadOfBlocking(t *testing.T) {
	reg, rt := newTestRouter(2)
	stalled := newClient(nil, "", "Common", 1)
	if _, err := reg.Register(stalled); err != nil {
		t.Fatalf("register: %v", err)
	}
	healthy := mustRegister(t, reg, "Common")

	// Nothing drains stalled's outbox; the second broadcast must not wedge
	// the loop and must still reach the healthy peer.
	rt.BroadcastToRoom("Common", "one")
	rt.BroadcastToRoom("Common", "two")

	if got := drained(stalled); len(got) != 1 || got[0] != "one" {
		t.Fatalf("stalled client got %v, want just [one]", got)
	}
	if got := drained(healthy); len(got) != 2 {
		t.Fatalf("healthy client got %v, want both lines", got)
	}
}

func TestBroadcastOrderPerPeer(t *testing.T) {
	reg, rt := newTestRouter(2)
	a := mustRegister(t, reg, "Common")

	rt.BroadcastToRoom("Common", "first")
	rt.SendToSelf(a, "second")
	rt.BroadcastToRoom("Common", "third")

	got := drained(a)
	want := []string{"first", "second", "third"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("delivery order %v, want %v", got, want)
		}
	}
}
