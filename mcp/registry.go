// Package mcp names the external tool providers the agent may use.
//
// Providers are hosted behind a tool-calling gateway; this package only
// records their names and tools. Connecting to them belongs to the runtime.
package mcp

import (
	"slices"
	"strings"

	"github.com/richinex/flightagent/flights"
)

// Provider is one registered tool provider and the tools it exposes.
type Provider struct {
	Name  string
	Tools []string
}

// Registry is an ordered, read-only set of providers.
type Registry struct {
	providers []Provider
}

// NewRegistry creates a registry holding the given providers in order.
func NewRegistry(providers ...Provider) *Registry {
	r := &Registry{providers: make([]Provider, len(providers))}
	for i, p := range providers {
		r.providers[i] = Provider{Name: p.Name, Tools: slices.Clone(p.Tools)}
	}
	return r
}

// DefaultRegistry returns the flight agent's providers.
func DefaultRegistry() *Registry {
	return NewRegistry(Provider{
		Name:  flights.Toolkit,
		Tools: []string{flights.SearchOneWayTool},
	})
}

// DefaultServers returns the flight agent's provider names.
func DefaultServers() []string {
	return DefaultRegistry().Servers()
}

// Servers returns provider names in registration order.
func (r *Registry) Servers() []string {
	names := make([]string, len(r.providers))
	for i, p := range r.providers {
		names[i] = p.Name
	}
	return names
}

// Tools returns every tool name across providers.
func (r *Registry) Tools() []string {
	var all []string
	for _, p := range r.providers {
		all = append(all, p.Tools...)
	}
	return all
}

// Owns reports whether a tool name belongs to a registered provider.
func (r *Registry) Owns(tool string) bool {
	toolkit, ok := ToolkitOf(tool)
	if !ok {
		return false
	}
	for _, p := range r.providers {
		if p.Name == toolkit {
			return true
		}
	}
	return false
}

// Config renders the registry in the provider file layout.
// userID is attached to each entry when non-empty.
func (r *Registry) Config(userID string) *Config {
	cfg := &Config{MCPServers: make(map[string]ServerConfig, len(r.providers))}
	for _, p := range r.providers {
		cfg.MCPServers[p.Name] = ServerConfig{
			Type:    ServerTypeArcade,
			Toolkit: p.Name,
			Tools:   slices.Clone(p.Tools),
			UserID:  userID,
		}
	}
	return cfg
}

// ToolkitOf splits a gateway tool name of the form Toolkit_Tool.
func ToolkitOf(tool string) (string, bool) {
	toolkit, name, ok := strings.Cut(tool, "_")
	if !ok || toolkit == "" || name == "" {
		return "", false
	}
	return toolkit, true
}
