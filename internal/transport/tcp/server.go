// Package tcp is the primary transport: a plain TCP listener whose accepted
// connections speak the line protocol directly.
package tcp

import (
	"context"
	"fmt"
	"net"

	"github.com/rs/zerolog"

	"github.com/vretko/linechat-server/internal/core"
)

// Server accepts TCP connections and hands each one to the hub.
type Server struct {
	addr string
	hub  *core.Hub
	log  *zerolog.Logger

	ln net.Listener
}

// NewServer builds a TCP transport bound to addr.
func NewServer(addr string, hub *core.Hub, logger *zerolog.Logger) *Server {
	return &Server{addr: addr, hub: hub, log: logger}
}

// Addr returns the bound listener address, useful when addr was ":0".
func (s *Server) Addr() net.Addr {
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// Listen binds the address and accepts connections until the context is
// cancelled. Each connection gets its own goroutine; the accept loop never
// waits on a session. Live sessions keep running after cancellation.
func (s *Server) Listen(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.addr, err)
	}
	s.ln = ln

	go func() {
		<-ctx.Done()
		_ = ln.Close()
	}()

	s.log.Info().Str("addr", ln.Addr().String()).Msg("tcp listener started")

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}
		go s.hub.HandleConn(conn)
	}
}
