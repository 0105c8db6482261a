// Package agent defines the configuration bundle handed to the hosting runtime.
//
// Information Hiding:
// - Bundle fields are unexported; accessors hand out copies
// - Serialization layout hidden behind Export
package agent

import (
	"slices"
)

// Config is the immutable bundle a runtime uses to construct an agent.
// Create it with a Builder or NewFlightAgent and pass it explicitly.
type Config struct {
	name                     string
	model                    string
	userID                   string
	tools                    []string
	mcpServers               []string
	toolLimit                int
	systemPrompt             string
	enforceHumanConfirmation []string
}

// Name returns the agent's label.
func (c Config) Name() string { return c.name }

// Model returns the model identifier.
func (c Config) Model() string { return c.model }

// UserID returns the tool-provider session scope, or "" when absent.
func (c Config) UserID() string { return c.userID }

// HasUserID reports whether a user ID is present.
func (c Config) HasUserID() bool { return c.userID != "" }

// ToolLimit returns the cap on tools exposed to the model.
// The runtime enforces it, not this package.
func (c Config) ToolLimit() int { return c.toolLimit }

// SystemPrompt returns the operating prompt.
func (c Config) SystemPrompt() string { return c.systemPrompt }

// Tools returns the runtime-populated tool placeholder; nil until populated.
func (c Config) Tools() []string { return slices.Clone(c.tools) }

// Servers returns the permitted tool providers in order.
func (c Config) Servers() []string { return slices.Clone(c.mcpServers) }

// ConfirmationList returns actions the runtime must confirm with a human.
func (c Config) ConfirmationList() []string {
	return append([]string{}, c.enforceHumanConfirmation...)
}

// RequiresConfirmation reports whether action is on the confirmation list.
func (c Config) RequiresConfirmation(action string) bool {
	return slices.Contains(c.enforceHumanConfirmation, action)
}
