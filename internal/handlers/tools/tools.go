// Package tools implements the MCP tools served by this process.
//
// Every tool here only renders text; authorization happens in the
// mcp.Guard wrapper before an operation runs.
package tools

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"text/template"

	"mcp-sample-server/internal/mcp"
)

const (
	SampleServerVersionTool = "sample_server_version"
	GetLogsTool             = "get_logs"
)

//go:embed templates/*.md.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.md.tmpl"))

// ServerInfo is the data the templates render.
type ServerInfo struct {
	ID      string
	Name    string
	Version string
}

// Register adds every tool to reg.
func Register(reg *mcp.Registry, info ServerInfo) {
	reg.RegisterFunc(SampleServerVersionTool, SampleServerVersion(info))
	reg.RegisterFunc(GetLogsTool, GetLogs(info))
}

// SampleServerVersion reports the version, id and status of this server.
func SampleServerVersion(info ServerInfo) mcp.Operation {
	return func(context.Context) (string, error) {
		return render("sample_server_version.md.tmpl", info)
	}
}

// GetLogs returns recent log lines of a simulated network switch.
func GetLogs(info ServerInfo) mcp.Operation {
	return func(context.Context) (string, error) {
		return render("get_logs.md.tmpl", info)
	}
}

func render(name string, info ServerInfo) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, info); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}
