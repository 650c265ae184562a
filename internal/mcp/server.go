// internal/mcp/server.go
// Membangun MCP server dari registry; setiap tool dibungkus gate auth.

package mcp

import (
	"context"
	"time"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"mcp-sample-server/internal/auth"
	"mcp-sample-server/internal/metrics"
)

// ServerInfo is announced to clients during initialization.
type ServerInfo struct {
	Name    string
	Version string
}

// NewServer registers every tool of reg on a fresh MCP server.
func NewServer(info ServerInfo, reg *Registry, gate *auth.Gate, logger zerolog.Logger) *server.MCPServer {
	s := server.NewMCPServer(info.Name, info.Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	for _, t := range reg.Tools() {
		s.AddTool(mcpgo.NewTool(t.Name, mcpgo.WithDescription(t.Description)), Guard(gate, t, logger))
	}
	return s
}

// Guard turns t into a tool handler that consults gate first. A denied call
// gets an empty text result, indistinguishable from a tool with no output.
func Guard(gate *auth.Gate, t Tool, logger zerolog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
		start := time.Now()
		if !gate.Authorized(auth.FromContext(ctx)) {
			metrics.RecordToolCall(t.Name, metrics.OutcomeDenied)
			return mcpgo.NewToolResultText(""), nil
		}

		text, err := t.Op(ctx)
		if err != nil {
			metrics.RecordToolCall(t.Name, metrics.OutcomeError)
			logger.Error().Err(err).
				Str("event", "mcp.tool").
				Str("tool", t.Name).
				Msg("tool failed")
			return mcpgo.NewToolResultError("tool " + t.Name + " failed"), nil
		}

		metrics.RecordToolCall(t.Name, metrics.OutcomeOK)
		logger.Debug().
			Str("event", "mcp.tool").
			Str("tool", t.Name).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("tool served")
		return mcpgo.NewToolResultText(text), nil
	}
}
