// Package app wires configuration, the chat hub, and the transports.
package app

import (
	"context"
	stdhttp "net/http"

	"github.com/rs/zerolog"

	"github.com/vretko/linechat-server/internal/config"
	"github.com/vretko/linechat-server/internal/core"
	"github.com/vretko/linechat-server/internal/matheval"
	"github.com/vretko/linechat-server/internal/transport/tcp"
	"github.com/vretko/linechat-server/internal/transport/ws"
)

// App ties the hub to its transports for one server process.
type App struct {
	cfg config.Config
	hub *core.Hub
	tcp *tcp.Server
	ws  *stdhttp.Server
	log *zerolog.Logger
}

// New constructs the application with the provided configuration.
func New(cfg config.Config, logger *zerolog.Logger) *App {
	opts := core.Options{
		MaxClients:  cfg.MaxClients,
		MaxNameLen:  cfg.MaxNameLen,
		DefaultRoom: cfg.DefaultRoom,
		OutboxSize:  cfg.OutboxSize,
		Color:       cfg.Color,
		EchoCommand: cfg.EchoCommand,
	}

	hub := core.NewHub(opts, matheval.Evaluate, logger)

	a := &App{
		cfg: cfg,
		hub: hub,
		tcp: tcp.NewServer(cfg.Addr, hub, logger),
		log: logger,
	}
	if cfg.WSAddr != "" {
		a.ws = ws.NewServer(cfg.WSAddr, cfg.ReadHeaderTimeout, hub, logger)
	}
	return a
}

// Hub exposes the chat hub, mainly for tests.
func (a *App) Hub() *core.Hub { return a.hub }

// Run serves the listeners until context cancellation or a listener failure.
// Cancellation stops accepting; sessions already running are left alone.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 2)

	go func() {
		errCh <- a.tcp.Listen(ctx)
	}()

	if a.ws != nil {
		go func() {
			if err := a.ws.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
				errCh <- err
				return
			}
			errCh <- nil
		}()
		go func() {
			<-ctx.Done()
			_ = a.ws.Close()
		}()
		a.log.Info().Str("addr", a.cfg.WSAddr).Msg("websocket listener started")
	}

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return nil
	}
}
