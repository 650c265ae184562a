// internal/mcp/protocol.go
// Tipe dasar tool MCP.

package mcp

import "context"

// Operation produces the text payload of a tool. It only runs after the
// gate has authorized the call.
type Operation func(ctx context.Context) (string, error)

// Tool is a named, remotely invokable operation.
type Tool struct {
	Name        string
	Description string
	Op          Operation
}
