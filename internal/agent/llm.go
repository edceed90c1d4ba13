// Package agent turns free-text prompts into canonical payment instructions,
// delegating to a language model when one is configured and falling back to
// fixed phrase templates otherwise.
package agent

import (
	"context"

	"github.com/port402/socialpay-cli/internal/config"
)

// Model is a text completion provider.
type Model interface {
	// Complete submits the prompt under the given system instruction and
	// returns the model's raw text response.
	Complete(ctx context.Context, system, prompt string) (string, error)

	// Name identifies the provider and model for verbose output.
	Name() string
}

// NewModel picks the configured language-model provider: OpenAI when its key
// is set, Gemini otherwise. Returns nil when no provider is configured.
func NewModel(ctx context.Context, cfg *config.Config) (Model, error) {
	if cfg.OpenAIKey != "" {
		return NewOpenAIModel(cfg.OpenAIKey), nil
	}
	if cfg.GeminiKey != "" {
		return NewGeminiModel(ctx, cfg.GeminiKey)
	}
	return nil, nil
}
