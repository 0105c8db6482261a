package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/chainguard-dev/clog"

	"github.com/richinex/flightagent/config"
)

// ModelChecker confirms a model is served. *llm.OpenAIProvider satisfies it.
type ModelChecker interface {
	Model() string
	CheckModel(ctx context.Context) error
}

// Doctor reports whether the bundle can be handed to a runtime: the API key
// is present and the model is served. newChecker is only called when a key
// is available.
func Doctor(ctx context.Context, w io.Writer, settings config.Settings, newChecker func(apiKey, model string) ModelChecker) error {
	log := clog.FromContext(ctx)

	fmt.Fprintf(w, "model:    %s\n", settings.LLM.Model)
	if settings.HasUserID() {
		fmt.Fprintf(w, "user_id:  %s\n", settings.Arcade.UserID)
	} else {
		fmt.Fprintf(w, "user_id:  (absent) - set %s to scope tool sessions\n", config.EnvUserID)
	}

	apiKey, err := config.APIKey(settings)
	if err != nil {
		fmt.Fprintf(w, "api key:  missing\n")
		return err
	}
	fmt.Fprintf(w, "api key:  present\n")

	checker := newChecker(apiKey, settings.LLM.Model)
	log.Debugf("checking model %s", checker.Model())
	if err := checker.CheckModel(ctx); err != nil {
		fmt.Fprintf(w, "model ok: no\n")
		return fmt.Errorf("checking model %s: %w", checker.Model(), err)
	}
	fmt.Fprintf(w, "model ok: yes\n")
	return nil
}
