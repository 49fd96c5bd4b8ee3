// Package registry holds the process-wide table of MCP tools the server
// exposes. The table is populated once at startup, keeps registration
// order, and is read-only afterwards.
package registry

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/seoulgreet/seoulgreet/internal/toolfilter"
)

// Entry binds one tool definition to its handler.
type Entry struct {
	Tool    mcp.Tool
	Handler server.ToolHandlerFunc
}

// Registry is an ordered collection of tool entries indexed by name.
type Registry struct {
	entries []Entry
	index   map[string]int
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Add registers a tool entry. Registering the same name twice is a
// programming error and is rejected.
func (r *Registry) Add(tool mcp.Tool, handler server.ToolHandlerFunc) error {
	if _, dup := r.index[tool.Name]; dup {
		return fmt.Errorf("tool %q already registered", tool.Name)
	}
	r.index[tool.Name] = len(r.entries)
	r.entries = append(r.entries, Entry{Tool: tool, Handler: handler})
	return nil
}

// Get looks up an entry by tool name.
func (r *Registry) Get(name string) (Entry, bool) {
	i, ok := r.index[name]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}

// Len reports the number of registered tools.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Names returns tool names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Tool.Name
	}
	return names
}

// Filter returns a registry restricted by the include/exclude name lists,
// preserving registration order. With both lists empty the receiver is
// returned unchanged. Unknown include names surface toolfilter's error,
// including its close-name suggestion.
func (r *Registry) Filter(include, exclude []string) (*Registry, error) {
	if len(include) == 0 && len(exclude) == 0 {
		return r, nil
	}

	candidates := make([]toolfilter.Tool, len(r.entries))
	for i, e := range r.entries {
		candidates[i] = toolfilter.Tool{Name: e.Tool.Name, Description: e.Tool.Description}
	}

	kept, err := toolfilter.Filter(candidates, include, exclude)
	if err != nil {
		return nil, err
	}

	keptSet := make(map[string]struct{}, len(kept))
	for _, t := range kept {
		keptSet[t.Name] = struct{}{}
	}

	out := New()
	for _, e := range r.entries {
		if _, keep := keptSet[e.Tool.Name]; keep {
			// Names are unique in the source registry, so Add cannot fail.
			_ = out.Add(e.Tool, e.Handler)
		}
	}
	return out, nil
}

// Install adds every entry to the MCP server in registration order. The
// server owns tools/list and tools/call dispatch from then on.
func (r *Registry) Install(s *server.MCPServer) {
	for _, e := range r.entries {
		s.AddTool(e.Tool, e.Handler)
	}
}
