// internal/mcp/tools_def.go
package mcp

import (
	_ "embed"
	"sync"

	"gopkg.in/yaml.v3"
)

// file berada di paket ini (tanpa "..")
//
//go:embed mcp-tools.yaml
var toolsYAML []byte

// ToolDef is one entry of the embedded catalog.
type ToolDef struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// ToolCatalog is the root of mcp-tools.yaml.
type ToolCatalog struct {
	Tools []ToolDef `yaml:"tools"`
}

var (
	toolDefs     []ToolDef
	toolDefsOnce sync.Once
	toolDefsErr  error
)

// LoadToolDefs parses the embedded tool catalog once.
func LoadToolDefs() ([]ToolDef, error) {
	toolDefsOnce.Do(func() {
		var cat ToolCatalog
		if err := yaml.Unmarshal(toolsYAML, &cat); err != nil {
			toolDefsErr = err
			return
		}
		toolDefs = cat.Tools
	})
	return toolDefs, toolDefsErr
}

// LookupToolDef returns the catalog entry for name.
func LookupToolDef(name string) (ToolDef, bool) {
	defs, err := LoadToolDefs()
	if err != nil {
		return ToolDef{}, false
	}
	for _, d := range defs {
		if d.Name == name {
			return d, true
		}
	}
	return ToolDef{}, false
}
