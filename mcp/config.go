// Tool-provider configuration file support.
//
// Writes an Anthropic-style layout keyed by provider name so a hosting
// runtime can pick up the registered providers:
//
//	{
//	  "mcpServers": {
//	    "GoogleFlights": {
//	      "type": "arcade",
//	      "toolkit": "GoogleFlights",
//	      "tools": ["GoogleFlights_SearchOneWayFlights"]
//	    }
//	  }
//	}

package mcp

import (
	"encoding/json"
	"fmt"
	"os"
)

// ServerTypeArcade marks providers reached through the Arcade tool gateway.
const ServerTypeArcade = "arcade"

// Config represents the provider configuration file format.
type Config struct {
	MCPServers map[string]ServerConfig `json:"mcpServers"`
}

// ServerConfig represents a single gateway-hosted provider.
type ServerConfig struct {
	Type    string   `json:"type"`
	Toolkit string   `json:"toolkit"`
	Tools   []string `json:"tools,omitempty"`
	UserID  string   `json:"user_id,omitempty"`
}

// LoadConfig loads provider configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// WriteConfig writes provider configuration as indented JSON.
func WriteConfig(path string, config *Config) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
