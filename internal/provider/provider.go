package provider

import (
	"context"
	"fmt"

	"github.com/YashuMishra/Accessibility-AI-Agent/pkg/config"
)

// Generator is the multimodal model capability the report pipeline
// consumes: one prompt, one image, one text answer. Implementations do
// a single attempt; callers own timeouts and decide what to do with a
// failure.
type Generator interface {
	Generate(ctx context.Context, prompt string, image []byte, mimeType string) (string, error)
	Name() string
}

// New selects the provider implementation from configuration.
func New(cfg config.AIConfig) (Generator, error) {
	switch cfg.Provider {
	case "openai":
		return NewOpenAI(cfg), nil
	case "anthropic":
		return NewAnthropic(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported ai provider %q", cfg.Provider)
	}
}
