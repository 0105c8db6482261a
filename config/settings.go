// Package config provides agent settings loaded from environment variables.
//
// Settings are created via Load() which handles:
// - Environment variable lookup (process env or any envconfig.Lookuper)
// - Default value application
// - Optional .env file loading through LoadDotEnv

package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/chainguard-dev/clog"
	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Environment variable names read by Load.
const (
	EnvUserID = "ARCADE_USER_ID"
	EnvModel  = "OPENAI_MODEL"
	EnvAPIKey = "OPENAI_API_KEY"
)

// DefaultModel is used when OPENAI_MODEL is unset or empty.
const DefaultModel = "gpt-4o-mini"

// ProviderOpenAI is the only model provider the agent is configured for.
const ProviderOpenAI = "openai"

// ErrMissingAPIKey is returned by APIKey when OPENAI_API_KEY is not set.
var ErrMissingAPIKey = errors.New(EnvAPIKey + " environment variable not set")

// Settings holds everything read from the environment.
type Settings struct {
	Arcade ArcadeConfig
	LLM    LLMConfig
}

// ArcadeConfig holds tool gateway configuration.
type ArcadeConfig struct {
	// UserID scopes the tool-provider session. Empty means absent.
	UserID string
}

// LLMConfig holds model configuration.
type LLMConfig struct {
	Provider string
	Model    string
	APIKey   string
}

// HasUserID reports whether ARCADE_USER_ID was provided.
func (s Settings) HasUserID() bool {
	return s.Arcade.UserID != ""
}

// environment mirrors the variables we read; it is never exposed.
type environment struct {
	UserID string `env:"ARCADE_USER_ID"`
	Model  string `env:"OPENAI_MODEL"`
	APIKey string `env:"OPENAI_API_KEY"`
}

// Load reads settings from the process environment.
func Load(ctx context.Context) (Settings, error) {
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith reads settings from the given lookuper.
// Missing variables fall back to defaults or stay empty; nothing is validated.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (Settings, error) {
	var env environment
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &env,
		Lookuper: lookuper,
	}); err != nil {
		return Settings{}, fmt.Errorf("processing environment: %w", err)
	}

	log := clog.FromContext(ctx)

	model := env.Model
	if model == "" {
		log.Debugf("%s not set, using %s", EnvModel, DefaultModel)
		model = DefaultModel
	}
	if env.UserID == "" {
		log.Debugf("%s not set, tool sessions will be unscoped", EnvUserID)
	}

	return Settings{
		Arcade: ArcadeConfig{
			UserID: env.UserID,
		},
		LLM: LLMConfig{
			Provider: ProviderOpenAI,
			Model:    model,
			APIKey:   env.APIKey,
		},
	}, nil
}

// MustLoad reads settings from the process environment.
// Panics if the environment cannot be processed.
// Use this only when configuration errors should be fatal.
func MustLoad(ctx context.Context) Settings {
	settings, err := Load(ctx)
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return settings
}

// APIKey returns the OpenAI API key or ErrMissingAPIKey.
func APIKey(s Settings) (string, error) {
	if s.LLM.APIKey == "" {
		return "", ErrMissingAPIKey
	}
	return s.LLM.APIKey, nil
}

// LoadDotEnv loads variables from .env files into the process environment.
// With no paths it loads ./.env. Missing files are skipped; variables that
// are already set are not overridden.
func LoadDotEnv(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	log := clog.FromContext(ctx)
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				log.Debugf("no env file at %s", path)
				continue
			}
			return fmt.Errorf("loading %s: %w", path, err)
		}
		log.Debugf("loaded env file %s", path)
	}
	return nil
}
