// internal/mcp/registry.go
// Registry mapping nama tool ke operasi.

package mcp

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores tool name -> Tool in a thread-safe map.
type Registry struct {
	mu   sync.RWMutex
	data map[string]Tool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{data: make(map[string]Tool)}
}

// Register adds a tool. An existing tool with the same name is replaced.
// The description falls back to the embedded catalog when empty.
func (reg *Registry) Register(t Tool) {
	if t.Description == "" {
		if def, ok := LookupToolDef(t.Name); ok {
			t.Description = def.Description
		}
	}
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.data[t.Name] = t
}

// RegisterFunc registers a plain operation under name.
func (reg *Registry) RegisterFunc(name string, op Operation) {
	reg.Register(Tool{Name: name, Op: op})
}

// Get returns (tool, true) when name is registered.
func (reg *Registry) Get(name string) (Tool, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	t, ok := reg.data[name]
	return t, ok
}

// MustGet is Get for startup wiring: it panics when name is unknown.
func (reg *Registry) MustGet(name string) Tool {
	if t, ok := reg.Get(name); ok {
		return t
	}
	panic(fmt.Sprintf("mcp: tool not found: %s", name))
}

// List returns all registered tool names, sorted.
func (reg *Registry) List() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	keys := make([]string, 0, len(reg.data))
	for k := range reg.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Tools returns the registered tools ordered by name.
func (reg *Registry) Tools() []Tool {
	names := reg.List()
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	out := make([]Tool, 0, len(names))
	for _, n := range names {
		if t, ok := reg.data[n]; ok {
			out = append(out, t)
		}
	}
	return out
}
