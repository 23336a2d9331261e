package core

import (
	"io"
	"net"

	"github.com/rs/zerolog"
)

// Client is one connected chat participant. The slot id and remote address
// are fixed for the connection's lifetime; name, room, and the echo flag are
// mutated only by the owning session but read by every other session during
// broadcast enumeration, so all access goes through the registry's lock.
//
// Outbound delivery runs through a buffered outbox drained by a dedicated
// writer goroutine, so one stalled peer never blocks another session.
type Client struct {
	id         int
	remoteAddr string
	conn       net.Conn
	outbox     chan string

	// guarded by the owning registry's mutex after registration
	reg      *Registry
	name     string
	room     string
	echoSelf bool
}

// newClient builds an unregistered client record. The registry assigns the
// id and default name at Register time.
func newClient(conn net.Conn, remoteAddr, room string, outboxSize int) *Client {
	return &Client{
		id:         -1,
		remoteAddr: remoteAddr,
		conn:       conn,
		outbox:     make(chan string, outboxSize),
		room:       room,
		echoSelf:   true,
	}
}

// ID returns the registry slot index, stable for the connection's lifetime.
func (c *Client) ID() int { return c.id }

// RemoteAddr is informational and immutable after creation.
func (c *Client) RemoteAddr() string { return c.remoteAddr }

// Name returns the display name under the registry lock.
func (c *Client) Name() string {
	if c.reg == nil {
		return c.name
	}
	c.reg.mu.Lock()
	defer c.reg.mu.Unlock()
	return c.name
}

// Room returns the current room under the registry lock.
func (c *Client) Room() string {
	if c.reg == nil {
		return c.room
	}
	c.reg.mu.Lock()
	defer c.reg.mu.Unlock()
	return c.room
}

// Echo reports whether the client receives its own plain broadcasts.
func (c *Client) Echo() bool {
	if c.reg == nil {
		return c.echoSelf
	}
	c.reg.mu.Lock()
	defer c.reg.mu.Unlock()
	return c.echoSelf
}

// enqueue offers a line to the outbox without blocking. A false return means
// the recipient's buffer is full and the line was dropped for it.
func (c *Client) enqueue(line string) bool {
	select {
	case c.outbox <- line:
		return true
	default:
		return false
	}
}

// closeOutbox stops the writer goroutine. Called exactly once, after the
// client has been unregistered.
func (c *Client) closeOutbox() {
	close(c.outbox)
}

// writeLoop drains the outbox to the transport until the outbox closes.
// Write failures are logged and delivery continues; the read loop detects
// the broken transport independently.
func (c *Client) writeLoop(logger *zerolog.Logger) {
	for line := range c.outbox {
		if _, err := io.WriteString(c.conn, line+"\r\n"); err != nil {
			logger.Warn().Err(err).Int("client_id", c.id).Msg("write to client failed")
		}
	}
}
