// cmd/sample-server/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"mcp-sample-server/internal/app"
	"mcp-sample-server/internal/auth"
	"mcp-sample-server/internal/config"
	applog "mcp-sample-server/internal/log"
)

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Nothing may listen before the secret is known.
	secret := auth.MustLoadSecret(cfg.AuthEnvKey())

	logger := applog.New(applog.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: cfg.ServerID,
		Version: cfg.ServerVersion,
	})

	gate, err := auth.NewGate(secret,
		auth.WithLogger(applog.WithComponent(logger, "auth")),
		auth.WithUnboundContext(cfg.AllowUnboundContext),
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("init auth gate")
	}
	if cfg.AllowUnboundContext {
		logger.Warn().Str("event", "auth.bypass").Msg("tool calls without an HTTP request are authorized; do not use in production")
	} else if cfg.Transport == config.TransportStdio {
		logger.Warn().Str("event", "auth.stdio").Msg("stdio carries no request context; every tool call will return empty content")
	}

	a, err := app.New(cfg, gate, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("init app")
	}

	logger.Info().
		Str("event", "server.config").
		Str("server_id", cfg.ServerID).
		Str("auth_env", cfg.AuthEnvKey()).
		Str("transport", cfg.Transport).
		Msg("server starting with auth code loaded")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := a.Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}
	logger.Info().Str("event", "server.stop").Msg("server stopped")
}
