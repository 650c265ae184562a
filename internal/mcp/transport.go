package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	stdlog "log"
	"net/http"
	"strings"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"mcp-sample-server/internal/auth"
	"mcp-sample-server/internal/config"
)

// Transport is an HTTP-mounted MCP endpoint.
type Transport struct {
	Name string
	// Pattern is the mount path; with Prefix every path below it is routed here.
	Pattern string
	Prefix  bool
	Handler http.Handler
}

// NewHTTPTransport builds the HTTP transport selected by cfg.Transport.
// Both variants bind the inbound request to each tool call via
// auth.HTTPContextFunc, so the gate sees the caller's query parameters.
// The handlers are mounted on the caller's http.Server; open streams end
// when that server's base context is cancelled.
func NewHTTPTransport(cfg *config.Config, s *server.MCPServer) (*Transport, error) {
	switch cfg.Transport {
	case config.TransportSSE:
		base := strings.TrimRight(cfg.Path, "/")
		opts := []server.SSEOption{
			server.WithSSEContextFunc(auth.HTTPContextFunc),
			// the code given on /sse?code=... must reach the message endpoint
			server.WithAppendQueryToMessageEndpoint(),
		}
		if base != "" {
			opts = append(opts, server.WithStaticBasePath(base))
		}
		if cfg.BaseURL != "" {
			opts = append(opts, server.WithBaseURL(cfg.BaseURL))
		}
		sse := server.NewSSEServer(s, opts...)
		return &Transport{
			Name:    config.TransportSSE,
			Pattern: base + "/",
			Prefix:  true,
			Handler: sse,
		}, nil

	case config.TransportStreamableHTTP:
		path := cfg.Path
		if path == "" {
			path = "/"
		}
		h := server.NewStreamableHTTPServer(s,
			server.WithEndpointPath(path),
			server.WithHTTPContextFunc(auth.HTTPContextFunc),
		)
		return &Transport{
			Name:    config.TransportStreamableHTTP,
			Pattern: path,
			Handler: h,
		}, nil
	}
	return nil, fmt.Errorf("%w: %q is not an HTTP transport", config.ErrUnknownTransport, cfg.Transport)
}

// ServeStdio serves s over in/out until ctx is cancelled or in is closed.
// No HTTP request exists on this transport, so the gate sees no context.
func ServeStdio(ctx context.Context, s *server.MCPServer, in io.Reader, out io.Writer, logger zerolog.Logger) error {
	stdio := server.NewStdioServer(s)
	stdio.SetErrorLogger(stdlog.New(logger, "", 0))
	err := stdio.Listen(ctx, in, out)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
