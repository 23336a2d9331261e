package core

import (
	"strconv"
	"strings"
	"sync"
)

// Registry is the capacity-bounded table of connected clients. The slot
// index is the client id: registration takes the lowest free slot and slots
// are reused after release, which fixes the display order of who and room
// listings. One mutex covers membership and the matching-relevant fields
// (name, room, echo), so broadcast enumeration never observes a half-updated
// record and two concurrent renames cannot both pass the uniqueness check.
//
// Lookups are linear scans. At this scale (at most MaxClients, ~100) that is
// a deliberate simplicity tradeoff over index structures.
type Registry struct {
	mu    sync.Mutex
	slots []*Client
	count int
}

// NewRegistry builds a registry with the given fixed capacity.
func NewRegistry(capacity int) *Registry {
	return &Registry{slots: make([]*Client, capacity)}
}

// Register assigns the lowest unused slot to the client and returns its id,
// or ErrServerFull when every slot is occupied. A client with no name yet
// gets the string form of its id.
func (r *Registry) Register(c *Client) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, slot := range r.slots {
		if slot != nil {
			continue
		}
		c.id = i
		c.reg = r
		if c.name == "" {
			c.name = strconv.Itoa(i)
		}
		r.slots[i] = c
		r.count++
		return i, nil
	}
	return 0, ErrServerFull
}

// Unregister releases the slot. Unregistering an absent id is a no-op.
func (r *Registry) Unregister(id int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id < 0 || id >= len(r.slots) || r.slots[id] == nil {
		return
	}
	r.slots[id] = nil
	r.count--
}

// Len returns the number of currently registered clients.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Find returns the clients matching pred, in slot order. The predicate runs
// under the registry lock and may read the record fields directly.
func (r *Registry) Find(pred func(*Client) bool) []*Client {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matches []*Client
	for _, c := range r.slots {
		if c != nil && pred(c) {
			matches = append(matches, c)
		}
	}
	return matches
}

// FindOne returns the first client matching pred in slot order.
func (r *Registry) FindOne(pred func(*Client) bool) (*Client, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.slots {
		if c != nil && pred(c) {
			return c, true
		}
	}
	return nil, false
}

// ClientInfo is a consistent copy of a record's listing fields, taken while
// the registry lock was held.
type ClientInfo struct {
	ID   int
	Name string
	Room string
}

// Snapshot copies the listing fields of every client matching pred, in slot
// order. Unlike Find, the caller gets values it can read without the lock.
func (r *Registry) Snapshot(pred func(*Client) bool) []ClientInfo {
	r.mu.Lock()
	defer r.mu.Unlock()

	var infos []ClientInfo
	for _, c := range r.slots {
		if c != nil && pred(c) {
			infos = append(infos, ClientInfo{ID: c.id, Name: c.name, Room: c.room})
		}
	}
	return infos
}

// Rename sets a new display name unless any other registered client already
// holds it case-insensitively. The check and the assignment happen under one
// lock acquisition, so concurrent renames cannot both succeed with colliding
// names. Returns the previous name.
func (r *Registry) Rename(c *Client, name string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, other := range r.slots {
		if other == nil || other == c {
			continue
		}
		if strings.EqualFold(other.name, name) {
			return "", ErrNameTaken
		}
	}
	old := c.name
	c.name = name
	return old, nil
}

// MoveRoom switches the client's room and returns the previous one. Rooms
// are implicit: there is no existence precondition and no uniqueness rule.
func (r *Registry) MoveRoom(c *Client, room string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	old := c.room
	c.room = room
	return old
}

// SetEcho flips whether the client receives its own plain broadcasts.
func (r *Registry) SetEcho(c *Client, on bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.echoSelf = on
}

// sameRoom is the case-insensitive room predicate used across the router.
func sameRoom(room string) func(*Client) bool {
	return func(c *Client) bool {
		return strings.EqualFold(c.room, room)
	}
}
