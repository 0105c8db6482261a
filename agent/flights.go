package agent

import (
	"github.com/richinex/flightagent/config"
	"github.com/richinex/flightagent/mcp"
	"github.com/richinex/flightagent/prompt"
)

const (
	// FlightAgentName labels the flight search agent.
	FlightAgentName = "GoogleFlights_Agent"

	// DefaultToolLimit caps how many tools the runtime exposes to the model.
	DefaultToolLimit = 30
)

// NewFlightAgent assembles the flight agent bundle from loaded settings.
// Call it once at startup and pass the result to the runtime.
func NewFlightAgent(settings config.Settings) Config {
	return NewBuilder(FlightAgentName).
		Model(settings.LLM.Model).
		UserID(settings.Arcade.UserID).
		SystemPrompt(prompt.System()).
		MCPServers(mcp.DefaultServers()).
		ToolLimit(DefaultToolLimit).
		Build()
}
