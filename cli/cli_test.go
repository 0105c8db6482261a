package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sethvargo/go-envconfig"

	"github.com/richinex/flightagent/agent"
	"github.com/richinex/flightagent/config"
	"github.com/richinex/flightagent/flights"
	"github.com/richinex/flightagent/llm"
	"github.com/richinex/flightagent/mcp"
)

func fakeCounter(model, text string) llm.TokenCount {
	return llm.TokenCount{Tokens: 42, Encoding: "fake"}
}

func flightAgent(t *testing.T, env map[string]string) (config.Settings, agent.Config) {
	t.Helper()
	settings, err := config.LoadWith(context.Background(), envconfig.MapLookuper(env))
	if err != nil {
		t.Fatalf("loading settings: %v", err)
	}
	return settings, agent.NewFlightAgent(settings)
}

func TestShowTable(t *testing.T) {
	_, cfg := flightAgent(t, map[string]string{})

	var buf bytes.Buffer
	if err := Show(&buf, cfg, FormatTable, fakeCounter); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"GoogleFlights_Agent", "gpt-4o-mini", "(absent)", "GoogleFlights", "30", "(none)", "42 tokens (fake)", "6 sections"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected table to contain %q, got:\n%s", want, out)
		}
	}
}

func TestShowTableEstimatedTokens(t *testing.T) {
	_, cfg := flightAgent(t, map[string]string{})
	estimate := func(model, text string) llm.TokenCount {
		return llm.TokenCount{Tokens: 7, Estimated: true}
	}

	var buf bytes.Buffer
	if err := Show(&buf, cfg, "", estimate); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "~7 tokens (estimated)") {
		t.Errorf("expected estimated token count, got:\n%s", buf.String())
	}
}

func TestShowJSON(t *testing.T) {
	_, cfg := flightAgent(t, map[string]string{config.EnvModel: "gpt-4o"})

	var buf bytes.Buffer
	if err := Show(&buf, cfg, FormatJSON, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got agent.Export
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if got.Model != "gpt-4o" || got.ToolLimit != 30 || got.AgentName != "GoogleFlights_Agent" {
		t.Errorf("unexpected export %+v", got)
	}
}

func TestShowYAML(t *testing.T) {
	_, cfg := flightAgent(t, map[string]string{})

	var buf bytes.Buffer
	if err := Show(&buf, cfg, FormatYAML, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "model: gpt-4o-mini") {
		t.Errorf("expected YAML model line, got:\n%s", buf.String())
	}
}

func TestShowUnknownFormat(t *testing.T) {
	_, cfg := flightAgent(t, map[string]string{})
	if err := Show(&bytes.Buffer{}, cfg, "xml", nil); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestPromptVerbatim(t *testing.T) {
	_, cfg := flightAgent(t, map[string]string{})

	var buf bytes.Buffer
	if err := Prompt(&buf, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != cfg.SystemPrompt() {
		t.Error("expected prompt output to match the bundle byte for byte")
	}
}

func TestSchemaWithExample(t *testing.T) {
	example := flights.DefaultParams("EWR", "LAX", "2026-03-15")

	var buf bytes.Buffer
	if err := Schema(&buf, &example); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"required"`) {
		t.Errorf("expected schema output, got:\n%s", out)
	}
	if !strings.Contains(out, "Action: GoogleFlights_SearchOneWayFlights") || !strings.Contains(out, `"departure_airport_code": "EWR"`) {
		t.Errorf("expected example action input, got:\n%s", out)
	}
}

func TestExport(t *testing.T) {
	_, cfg := flightAgent(t, map[string]string{config.EnvUserID: "u-9"})

	var buf bytes.Buffer
	if err := Export(&buf, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got agent.Export
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if got.UserID == nil || *got.UserID != "u-9" {
		t.Errorf("expected user_id 'u-9', got %v", got.UserID)
	}
	if got.SystemPrompt != cfg.SystemPrompt() {
		t.Error("expected exported prompt to match")
	}
}

func TestExportProviders(t *testing.T) {
	_, cfg := flightAgent(t, map[string]string{config.EnvUserID: "u-9"})
	path := filepath.Join(t.TempDir(), "mcp.json")

	if err := ExportProviders(path, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	loaded, err := mcp.LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry, ok := loaded.MCPServers["GoogleFlights"]; !ok || entry.UserID != "u-9" {
		t.Errorf("unexpected provider file %+v", loaded)
	}
}

func TestExportProvidersUnknownServer(t *testing.T) {
	cfg := agent.NewBuilder("custom").MCPServer("Unknown").Build()
	if err := ExportProviders(filepath.Join(t.TempDir(), "mcp.json"), cfg); err == nil {
		t.Error("expected error for unknown server")
	}
}

type stubChecker struct {
	model string
	err   error
}

func (s stubChecker) Model() string                    { return s.model }
func (s stubChecker) CheckModel(context.Context) error { return s.err }

func TestDoctorOK(t *testing.T) {
	settings, _ := flightAgent(t, map[string]string{config.EnvAPIKey: "sk-test"})

	var gotKey string
	var buf bytes.Buffer
	err := Doctor(context.Background(), &buf, settings, func(apiKey, model string) ModelChecker {
		gotKey = apiKey
		return stubChecker{model: model}
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotKey != "sk-test" {
		t.Errorf("expected checker to receive the API key, got %q", gotKey)
	}
	if !strings.Contains(buf.String(), "model ok: yes") {
		t.Errorf("expected success line, got:\n%s", buf.String())
	}
}

func TestDoctorMissingKey(t *testing.T) {
	settings, _ := flightAgent(t, map[string]string{})

	called := false
	err := Doctor(context.Background(), &bytes.Buffer{}, settings, func(apiKey, model string) ModelChecker {
		called = true
		return stubChecker{model: model}
	})
	if !errors.Is(err, config.ErrMissingAPIKey) {
		t.Errorf("expected ErrMissingAPIKey, got %v", err)
	}
	if called {
		t.Error("expected checker not to be created without an API key")
	}
}

func TestDoctorModelMissing(t *testing.T) {
	settings, _ := flightAgent(t, map[string]string{config.EnvAPIKey: "sk-test"})

	var buf bytes.Buffer
	err := Doctor(context.Background(), &buf, settings, func(apiKey, model string) ModelChecker {
		return stubChecker{model: model, err: llm.ErrModelNotFound}
	})
	if !errors.Is(err, llm.ErrModelNotFound) {
		t.Errorf("expected ErrModelNotFound, got %v", err)
	}
	if !strings.Contains(buf.String(), "model ok: no") {
		t.Errorf("expected failure line, got:\n%s", buf.String())
	}
}
