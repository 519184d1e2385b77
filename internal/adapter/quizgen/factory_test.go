package quizgen

import (
	"context"
	"testing"

	"testforge/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	ctx := context.Background()

	t.Run("openai", func(t *testing.T) {
		gen, err := New(ctx, config.GenerationConfig{Provider: config.ProviderOpenAI, OpenAIAPIKey: "sk-test"}, zap.NewNop())
		require.NoError(t, err)
		assert.IsType(t, &LangChainGenerator{}, gen)
	})

	t.Run("ollama", func(t *testing.T) {
		gen, err := New(ctx, config.GenerationConfig{Provider: config.ProviderOllama, OllamaServerURL: "http://localhost:11434"}, zap.NewNop())
		require.NoError(t, err)
		assert.IsType(t, &LangChainGenerator{}, gen)
	})

	t.Run("missing credential", func(t *testing.T) {
		gen, err := New(ctx, config.GenerationConfig{Provider: config.ProviderGemini}, zap.NewNop())
		assert.ErrorIs(t, err, ErrMissingCredential)
		assert.Nil(t, gen)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := New(ctx, config.GenerationConfig{Provider: "bard"}, zap.NewNop())
		assert.Error(t, err)
	})
}
