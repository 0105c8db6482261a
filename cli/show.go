// Command execution for CLI commands.
//
// Information Hiding:
// - Output formatting hidden
// - Table layout hidden

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"gopkg.in/yaml.v3"

	"github.com/richinex/flightagent/agent"
	"github.com/richinex/flightagent/llm"
	"github.com/richinex/flightagent/prompt"
)

// Output formats accepted by Show.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// TokenCounter sizes a text for a model. llm.CountTokens is the default.
type TokenCounter func(model, text string) llm.TokenCount

// Show writes the bundle in the requested format.
func Show(w io.Writer, cfg agent.Config, format string, count TokenCounter) error {
	switch strings.ToLower(format) {
	case "", FormatTable:
		return showTable(w, cfg, count)
	case FormatJSON:
		return writeJSON(w, cfg)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want table, json or yaml)", format)
	}
}

func showTable(w io.Writer, cfg agent.Config, count TokenCounter) error {
	if count == nil {
		count = llm.CountTokens
	}

	table := newTable(w, []string{"Field", "Value"})
	rows := [][]string{
		{"agent_name", cfg.Name()},
		{"model", cfg.Model()},
		{"user_id", orDash(cfg.UserID(), "(absent)")},
		{"mcp_servers", strings.Join(cfg.Servers(), ", ")},
		{"tool_limit", fmt.Sprintf("%d", cfg.ToolLimit())},
		{"tools", orDash(strings.Join(cfg.Tools(), ", "), "(set by runtime)")},
		{"enforce_human_confirmation", orDash(strings.Join(cfg.ConfirmationList(), ", "), "(none)")},
		{"system_prompt", promptSummary(cfg, count)},
	}
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return fmt.Errorf("append row: %w", err)
		}
	}
	return table.Render()
}

func promptSummary(cfg agent.Config, count TokenCounter) string {
	tc := count(cfg.Model(), cfg.SystemPrompt())
	tokens := fmt.Sprintf("%d tokens (%s)", tc.Tokens, tc.Encoding)
	if tc.Estimated {
		tokens = fmt.Sprintf("~%d tokens (estimated)", tc.Tokens)
	}
	summary := fmt.Sprintf("%d bytes, %s", len(cfg.SystemPrompt()), tokens)
	if cfg.SystemPrompt() == prompt.System() {
		summary += fmt.Sprintf(", %d sections", len(prompt.Sections()))
	}
	return summary
}

func newTable(w io.Writer, headers []string) *tablewriter.Table {
	cfg := tablewriter.Config{
		Header: tw.CellConfig{
			Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			Formatting: tw.CellFormatting{AutoFormat: tw.Off},
		},
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignLeft},
		},
		Behavior: tw.Behavior{TrimSpace: tw.Off},
	}
	return tablewriter.NewTable(w,
		tablewriter.WithConfig(cfg),
		tablewriter.WithHeader(headers),
		tablewriter.WithRenderer(renderer.NewBlueprint()),
		tablewriter.WithRendition(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleMarkdown),
			Borders: tw.Border{
				Left:   tw.On,
				Top:    tw.Off,
				Right:  tw.On,
				Bottom: tw.Off,
			},
		}),
		tablewriter.WithRowAutoWrap(tw.WrapNone),
	)
}

func orDash(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
