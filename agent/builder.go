// Agent builder for fluent configuration.
//
// Information Hiding:
// - Builder state management hidden
// - Default value application hidden

package agent

import (
	"fmt"
	"slices"

	"github.com/richinex/flightagent/config"
)

// Builder provides fluent configuration for creating agent bundles.
// Usage: agent.NewBuilder("name") - no stutter.
type Builder struct {
	name         string
	model        string
	userID       string
	tools        []string
	mcpServers   []string
	toolLimit    int
	systemPrompt string
	confirm      []string
}

// NewBuilder creates a new agent builder with the given name.
func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

// Model sets the model identifier.
func (b *Builder) Model(model string) *Builder {
	b.model = model
	return b
}

// UserID sets the tool-provider session scope.
func (b *Builder) UserID(id string) *Builder {
	b.userID = id
	return b
}

// SystemPrompt sets the agent's system prompt.
func (b *Builder) SystemPrompt(prompt string) *Builder {
	b.systemPrompt = prompt
	return b
}

// MCPServer adds a tool provider.
func (b *Builder) MCPServer(name string) *Builder {
	b.mcpServers = append(b.mcpServers, name)
	return b
}

// MCPServers adds multiple tool providers at once.
func (b *Builder) MCPServers(names []string) *Builder {
	b.mcpServers = append(b.mcpServers, names...)
	return b
}

// Tools fills the tool placeholder. Runtimes call this once they have
// resolved the providers' tools; the flight agent leaves it unset.
func (b *Builder) Tools(names []string) *Builder {
	b.tools = append(b.tools, names...)
	return b
}

// ToolLimit sets the cap on tools exposed to the model.
func (b *Builder) ToolLimit(limit int) *Builder {
	b.toolLimit = limit
	return b
}

// RequireConfirmation adds actions that need human confirmation.
func (b *Builder) RequireConfirmation(actions ...string) *Builder {
	b.confirm = append(b.confirm, actions...)
	return b
}

// Build creates the agent configuration. The result shares no slices
// with the builder.
func (b *Builder) Build() Config {
	model := b.model
	if model == "" {
		model = config.DefaultModel
	}

	toolLimit := b.toolLimit
	if toolLimit == 0 {
		toolLimit = DefaultToolLimit
	}

	systemPrompt := b.systemPrompt
	if systemPrompt == "" {
		systemPrompt = fmt.Sprintf(
			"You are an agent named %s. Use available tools to complete tasks.",
			b.name,
		)
	}

	return Config{
		name:                     b.name,
		model:                    model,
		userID:                   b.userID,
		tools:                    slices.Clone(b.tools),
		mcpServers:               slices.Clone(b.mcpServers),
		toolLimit:                toolLimit,
		systemPrompt:             systemPrompt,
		enforceHumanConfirmation: append([]string{}, b.confirm...),
	}
}

// Name returns the builder's agent name.
func (b *Builder) Name() string {
	return b.name
}

// ServerCount returns the number of tool providers registered.
func (b *Builder) ServerCount() int {
	return len(b.mcpServers)
}
