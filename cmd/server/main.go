package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vretko/linechat-server/internal/app"
	"github.com/vretko/linechat-server/internal/config"
	"github.com/vretko/linechat-server/internal/log"
)

func main() {
	var (
		cfgPath  string
		addr     string
		wsAddr   string
		logLevel string
	)

	root := &cobra.Command{
		Use:          "linechat-server",
		Short:        "Multi-room line-protocol chat server",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bootLog := log.New("info")

			cfg, path, err := config.Load(bootLog, cfgPath)
			if err != nil {
				return err
			}

			// Flags win over file and environment.
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("ws-addr") {
				cfg.WSAddr = wsAddr
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}

			logger := log.New(cfg.LogLevel)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info().
				Str("addr", cfg.Addr).
				Str("ws_addr", cfg.WSAddr).
				Str("config", path).
				Int("max_clients", cfg.MaxClients).
				Msg("starting linechat server")

			application := app.New(cfg, logger)
			if err := application.Run(ctx); err != nil {
				return err
			}

			logger.Info().Msg("server stopped")
			return nil
		},
	}

	def := config.Default()
	root.Flags().StringVar(&cfgPath, "config", "", "path to config file")
	root.Flags().StringVar(&addr, "addr", def.Addr, "TCP listen address")
	root.Flags().StringVar(&wsAddr, "ws-addr", def.WSAddr, "websocket listen address (empty disables)")
	root.Flags().StringVar(&logLevel, "log-level", def.LogLevel, "log level (debug, info, warn, error)")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
