// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"mcp-sample-server/internal/auth"
	"mcp-sample-server/internal/config"
	"mcp-sample-server/internal/handlers/tools"
	"mcp-sample-server/internal/mcp"
	"mcp-sample-server/internal/metrics"
)

// App menampung router utama dan MCP server.
type App struct {
	Router *mux.Router
	MCP    *server.MCPServer

	cfg       *config.Config
	transport *mcp.Transport
	log       zerolog.Logger

	// stdio streams, swapped in tests
	stdin  io.Reader
	stdout io.Writer
}

// New registers every tool behind gate and, for HTTP transports, mounts the
// MCP endpoint next to the health and metrics routes.
func New(cfg *config.Config, gate *auth.Gate, logger zerolog.Logger) (*App, error) {
	reg := mcp.NewRegistry()
	tools.Register(reg, tools.ServerInfo{
		ID:      cfg.ServerID,
		Name:    cfg.ServerName,
		Version: cfg.ServerVersion,
	})

	a := &App{
		MCP:    mcp.NewServer(mcp.ServerInfo{Name: cfg.ServerName, Version: cfg.ServerVersion}, reg, gate, logger),
		cfg:    cfg,
		log:    logger,
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}

	if cfg.Transport != config.TransportStdio {
		t, err := mcp.NewHTTPTransport(cfg, a.MCP)
		if err != nil {
			return nil, err
		}
		a.transport = t
		a.Router = mux.NewRouter()
		RegisterRoutes(a.Router, RegisterDeps{Config: cfg, Transport: t, Logger: logger})
	}

	metrics.SetBuildInfo(cfg.ServerID, cfg.ServerVersion, cfg.Transport)
	return a, nil
}

// Run serves until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if a.cfg.Transport == config.TransportStdio {
		a.log.Info().Str("event", "server.start").Str("transport", a.cfg.Transport).Msg("serving MCP on stdio")
		return mcp.ServeStdio(ctx, a.MCP, a.stdin, a.stdout, a.log)
	}

	addr := a.cfg.Addr()
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return a.Serve(ctx, ln)
}

// Serve runs the HTTP server on ln and shuts it down gracefully once ctx is
// cancelled. Long-lived SSE streams are tied to a base context that is
// cancelled first, so they do not hold up shutdown.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	if a.Router == nil {
		_ = ln.Close()
		return fmt.Errorf("%w: %q has no HTTP endpoint", config.ErrUnknownTransport, a.cfg.Transport)
	}

	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()

	srv := &http.Server{
		Handler:           a.Router,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	a.log.Info().
		Str("event", "server.start").
		Str("transport", a.transport.Name).
		Str("addr", ln.Addr().String()).
		Str("path", a.transport.Pattern).
		Msg("MCP server listening")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	a.log.Info().Str("event", "server.stop").Msg("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	// ends SSE streams, which Shutdown alone would wait on
	cancelBase()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
