package core

import "github.com/rs/zerolog"

// Router delivers formatted lines to clients through the registry. All sends
// are best-effort: a full outbox is logged as a drop and never surfaced to
// the sender or allowed to abort delivery to the remaining recipients.
//
// Enumeration and enqueue happen under the registry lock, so two broadcasts
// into the same room are observed by every peer in the order the registry
// accepted them. The enqueue itself never blocks, so holding the lock across
// the loop is cheap and a stalled peer cannot wedge a broadcast.
type Router struct {
	reg *Registry
	log *zerolog.Logger
}

// NewRouter builds a router over the given registry.
func NewRouter(reg *Registry, logger *zerolog.Logger) *Router {
	return &Router{reg: reg, log: logger}
}

// BroadcastToRoom delivers line to every client whose room matches room
// case-insensitively, including the sender if it is in that room.
func (rt *Router) BroadcastToRoom(room, line string) {
	rt.broadcast(room, line, -1)
}

// BroadcastToRoomExcept is BroadcastToRoom skipping the client excludeID.
func (rt *Router) BroadcastToRoomExcept(room, line string, excludeID int) {
	rt.broadcast(room, line, excludeID)
}

func (rt *Router) broadcast(room, line string, excludeID int) {
	match := sameRoom(room)

	rt.reg.mu.Lock()
	defer rt.reg.mu.Unlock()

	for _, c := range rt.reg.slots {
		if c == nil || c.id == excludeID || !match(c) {
			continue
		}
		rt.deliver(c, line)
	}
}

// SendToClient delivers line to exactly one client regardless of room. An
// unregistered id is a logged no-op.
func (rt *Router) SendToClient(id int, line string) {
	rt.reg.mu.Lock()
	defer rt.reg.mu.Unlock()

	if id < 0 || id >= len(rt.reg.slots) || rt.reg.slots[id] == nil {
		rt.log.Debug().Int("client_id", id).Msg("send to unregistered client skipped")
		return
	}
	rt.deliver(rt.reg.slots[id], line)
}

// SendToSelf delivers a private reply to the client's own transport. It
// shares the broadcast lock so replies keep their order relative to room
// traffic the client is about to receive.
func (rt *Router) SendToSelf(c *Client, line string) {
	rt.reg.mu.Lock()
	defer rt.reg.mu.Unlock()
	rt.deliver(c, line)
}

func (rt *Router) deliver(c *Client, line string) {
	if !c.enqueue(line) {
		rt.log.Warn().Int("client_id", c.id).Msg("outbox full, line dropped")
	}
}
