// Package tools provides the atomic tool plugins and the contract they
// share.
//
// Every tool follows the same five-part convention: a typed input
// schema, a typed output schema, a config struct, the execution logic,
// and tests. The Tool interface is the uniform surface an agent host
// consumes; Parameters returns the JSON Schema for the tool's input so
// the host can hand it to an LLM as a function definition.
package tools

import (
	"context"
	"sort"
)

// Tool defines the interface for all atomic tool plugins.
type Tool interface {
	Name() string
	Description() string
	Parameters() map[string]any // JSON Schema for the tool's inputs
	Execute(ctx context.Context, input string) (string, error)
}

// Registry manages the set of available tools.
type Registry struct {
	Tools map[string]Tool
}

func NewRegistry() *Registry {
	return &Registry{
		Tools: make(map[string]Tool),
	}
}

func (r *Registry) Register(t Tool) {
	r.Tools[t.Name()] = t
}

func (r *Registry) Get(name string) Tool {
	return r.Tools[name]
}

// List returns the registered tools sorted by name for stable output.
func (r *Registry) List() []Tool {
	names := make([]string, 0, len(r.Tools))
	for name := range r.Tools {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]Tool, 0, len(names))
	for _, name := range names {
		out = append(out, r.Tools[name])
	}
	return out
}
