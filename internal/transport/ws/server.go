// Package ws is the secondary transport: a websocket endpoint that bridges
// each accepted socket into the same line protocol the TCP listener speaks.
package ws

import (
	"fmt"
	stdhttp "net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/rs/zerolog"

	"github.com/vretko/linechat-server/internal/core"
)

// NewServer builds the HTTP server exposing /chat and /health.
func NewServer(addr string, readHeaderTimeout time.Duration, hub *core.Hub, logger *zerolog.Logger) *stdhttp.Server {
	mux := stdhttp.NewServeMux()
	mux.HandleFunc("/health", healthHandler)
	mux.Handle("/chat", &chatHandler{hub: hub, log: logger})

	return &stdhttp.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}
}

func healthHandler(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
	_, _ = fmt.Fprint(w, "ok")
}

// chatHandler upgrades the request and runs the connection lifecycle on a
// net.Conn view of the websocket, so sessions behave identically on both
// transports.
type chatHandler struct {
	hub *core.Hub
	log *zerolog.Logger
}

func (h *chatHandler) ServeHTTP(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("ws accept error")
		return
	}

	nc := websocket.NetConn(r.Context(), conn, websocket.MessageText)
	h.hub.HandleConn(nc)
}
