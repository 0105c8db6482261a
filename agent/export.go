package agent

import (
	"encoding/json"
)

// Export is the serialized form of Config, keyed the way runtimes expect.
type Export struct {
	UserID                   *string  `json:"user_id" yaml:"user_id"`
	Tools                    []string `json:"tools" yaml:"tools"`
	MCPServers               []string `json:"mcp_servers" yaml:"mcp_servers"`
	ToolLimit                int      `json:"tool_limit" yaml:"tool_limit"`
	Model                    string   `json:"model" yaml:"model"`
	AgentName                string   `json:"agent_name" yaml:"agent_name"`
	SystemPrompt             string   `json:"system_prompt" yaml:"system_prompt"`
	EnforceHumanConfirmation []string `json:"enforce_human_confirmation" yaml:"enforce_human_confirmation"`
}

// Export returns a detached copy of the bundle.
// An absent user ID and unpopulated tools serialize as null.
func (c Config) Export() Export {
	var userID *string
	if c.userID != "" {
		id := c.userID
		userID = &id
	}
	return Export{
		UserID:                   userID,
		Tools:                    c.Tools(),
		MCPServers:               c.Servers(),
		ToolLimit:                c.toolLimit,
		Model:                    c.model,
		AgentName:                c.name,
		SystemPrompt:             c.systemPrompt,
		EnforceHumanConfirmation: c.ConfirmationList(),
	}
}

// MarshalJSON implements json.Marshaler.
func (c Config) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Export())
}

// MarshalYAML implements yaml.Marshaler.
func (c Config) MarshalYAML() (any, error) {
	return c.Export(), nil
}
