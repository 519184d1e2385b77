package quizgen

import (
	"context"
	"errors"
	"fmt"

	"testforge/internal/config"
	"testforge/internal/domain"

	"go.uber.org/zap"
)

// ErrMissingCredential is returned when the selected provider has no credential configured.
var ErrMissingCredential = errors.New("missing generation service credential")

// New builds the generator selected by cfg.Provider.
func New(ctx context.Context, cfg config.GenerationConfig, logger *zap.Logger) (domain.QuizGenerator, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI, "":
		gen, err := NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.Model, logger)
		if err != nil {
			return nil, err
		}
		return gen, nil
	case config.ProviderGemini:
		gen, err := NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.Model, logger)
		if err != nil {
			return nil, err
		}
		return gen, nil
	case config.ProviderOllama:
		gen, err := NewOllamaGenerator(cfg.OllamaServerURL, cfg.Model, logger)
		if err != nil {
			return nil, err
		}
		return gen, nil
	default:
		return nil, fmt.Errorf("unsupported generation provider: %s", cfg.Provider)
	}
}
