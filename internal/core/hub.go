// Package core implements the chat domain: the capacity-bounded client
// registry, room-scoped routing, the command parser, and the per-connection
// session state machine. Transports hand accepted connections to the Hub and
// everything else happens here.
package core

import (
	"net"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Hub owns the registry and router and runs the connection lifecycle. It is
// shared by all transports; one goroutine per connection calls HandleConn.
type Hub struct {
	reg    *Registry
	router *Router
	opts   Options
	format Formatter
	eval   Evaluator
	log    *zerolog.Logger
}

// NewHub builds a hub with the given options and math evaluator.
func NewHub(opts Options, eval Evaluator, logger *zerolog.Logger) *Hub {
	reg := NewRegistry(opts.MaxClients)
	return &Hub{
		reg:    reg,
		router: NewRouter(reg, logger),
		opts:   opts,
		format: NewFormatter(opts.Color),
		eval:   eval,
		log:    logger,
	}
}

// Registry exposes the client registry, mainly for listings and tests.
func (h *Hub) Registry() *Registry { return h.reg }

// ClientCount returns the number of registered clients.
func (h *Hub) ClientCount() int { return h.reg.Len() }

// HandleConn runs the full lifecycle of one accepted connection: allocate a
// slot, announce the join, run the session to completion, then tear down in
// order (close transport, announce the leave, release the slot). It returns
// when the session ends; callers run it in its own goroutine so the accept
// loop never blocks on a session's lifetime.
//
// When the registry is full the connection is closed with no side effects:
// no registration, no announcement.
func (h *Hub) HandleConn(conn net.Conn) {
	remote := ""
	if addr := conn.RemoteAddr(); addr != nil {
		remote = addr.String()
	}
	logger := h.log.With().Str("session", uuid.NewString()).Str("remote", remote).Logger()

	client := newClient(conn, remote, h.opts.DefaultRoom, h.opts.OutboxSize)
	id, err := h.reg.Register(client)
	if err != nil {
		logger.Warn().Err(err).Msg("reject")
		_ = conn.Close()
		return
	}
	logger.Info().Int("client_id", id).Msg("accept")

	go client.writeLoop(&logger)

	h.router.BroadcastToRoom(client.Room(), h.format.JoinNotice(client.Name()))

	s := &session{
		client: client,
		conn:   conn,
		reg:    h.reg,
		router: h.router,
		opts:   h.opts,
		format: h.format,
		eval:   h.eval,
		log:    &logger,
	}
	s.run()

	// Teardown order is part of the contract: transport first, then the
	// leave notice to the current room, then the slot release.
	_ = conn.Close()
	h.router.BroadcastToRoom(client.Room(), h.format.ByeNotice(client.Name()))
	h.reg.Unregister(id)
	client.closeOutbox()

	logger.Info().Int("client_id", id).Msg("leave")
}
