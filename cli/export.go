package cli

import (
	"fmt"
	"io"
	"slices"

	"github.com/richinex/flightagent/agent"
	"github.com/richinex/flightagent/flights"
	"github.com/richinex/flightagent/mcp"
)

// Prompt writes the system prompt exactly as the runtime receives it.
func Prompt(w io.Writer, cfg agent.Config) error {
	_, err := io.WriteString(w, cfg.SystemPrompt())
	return err
}

// Schema writes the flight search tool's input schema. With example set it
// also writes a default Action Input for the given route and date.
func Schema(w io.Writer, example *flights.SearchParams) error {
	if err := writeJSON(w, flights.Schema()); err != nil {
		return err
	}
	if example == nil {
		return nil
	}
	input, err := example.ActionInput()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "\nAction: %s\nAction Input:\n%s\n", flights.SearchOneWayTool, input)
	return err
}

// Export writes the bundle as JSON for a hosting runtime.
func Export(w io.Writer, cfg agent.Config) error {
	return writeJSON(w, cfg)
}

// ExportProviders writes the provider file for the bundle's servers.
func ExportProviders(path string, cfg agent.Config) error {
	registry := mcp.DefaultRegistry()
	for _, name := range cfg.Servers() {
		if !slices.Contains(registry.Servers(), name) {
			return fmt.Errorf("server %q has no known tools", name)
		}
	}
	return mcp.WriteConfig(path, registry.Config(cfg.UserID()))
}
