// OpenAI model checks using go-openai library.
//
// Information Hiding:
// - API endpoint and authentication
// - Model lookup response format

package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/chainguard-dev/clog"
	openai "github.com/sashabaranov/go-openai"
)

// ErrModelNotFound is returned when the API does not serve the configured model.
var ErrModelNotFound = errors.New("model not found")

// OpenAIProvider talks to the OpenAI API on behalf of one model.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider creates a new OpenAI provider.
func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	return NewOpenAIProviderWithConfig(openai.DefaultConfig(apiKey), model)
}

// NewOpenAIProviderWithConfig creates a provider from a full client config,
// e.g. to point at a proxy or a test server.
func NewOpenAIProviderWithConfig(cfg openai.ClientConfig, model string) *OpenAIProvider {
	return &OpenAIProvider{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// Model returns the current model.
func (p *OpenAIProvider) Model() string {
	return p.model
}

// CheckModel confirms the API serves the configured model.
func (p *OpenAIProvider) CheckModel(ctx context.Context) error {
	m, err := p.client.GetModel(ctx, p.model)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusNotFound {
			return fmt.Errorf("%w: %s", ErrModelNotFound, p.model)
		}
		return fmt.Errorf("model lookup failed: %w", err)
	}

	clog.FromContext(ctx).Debugf("model %s available (owned by %s)", m.ID, m.OwnedBy)
	return nil
}
