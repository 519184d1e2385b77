package quizgen

import (
	"context"
	"errors"
	"fmt"
	"time"

	"testforge/internal/domain"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

const (
	DefaultOpenAIModel = "gpt-4.1-mini"
	DefaultOllamaModel = "qwen3:0.6b"
)

// LangChainGenerator implements domain.QuizGenerator on any langchaingo chat model.
type LangChainGenerator struct {
	llm    llms.Model
	name   string
	logger *zap.Logger
}

// NewLangChainGenerator wraps an already constructed langchaingo model.
func NewLangChainGenerator(llm llms.Model, name string, logger *zap.Logger) (*LangChainGenerator, error) {
	if llm == nil {
		return nil, errors.New("llm model cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LangChainGenerator{llm: llm, name: name, logger: logger}, nil
}

// NewOpenAIGenerator creates a generator backed by the OpenAI chat API.
func NewOpenAIGenerator(apiKey, modelName string, logger *zap.Logger) (*LangChainGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: OpenAI API key cannot be empty", ErrMissingCredential)
	}
	if modelName == "" {
		modelName = DefaultOpenAIModel
	}
	llm, err := openai.New(openai.WithToken(apiKey), openai.WithModel(modelName))
	if err != nil {
		return nil, fmt.Errorf("failed to create LangchainGo OpenAI client: %w", err)
	}
	return NewLangChainGenerator(llm, "openai/"+modelName, logger)
}

// NewOllamaGenerator creates a generator backed by a local Ollama server.
func NewOllamaGenerator(serverURL, modelName string, logger *zap.Logger) (*LangChainGenerator, error) {
	if serverURL == "" {
		return nil, fmt.Errorf("%w: Ollama server URL cannot be empty", ErrMissingCredential)
	}
	if modelName == "" {
		modelName = DefaultOllamaModel
	}
	llm, err := ollama.New(ollama.WithServerURL(serverURL), ollama.WithModel(modelName))
	if err != nil {
		return nil, fmt.Errorf("failed to create LangchainGo Ollama client: %w", err)
	}
	return NewLangChainGenerator(llm, "ollama/"+modelName, logger)
}

// Generate sends the instructions as the system message and the input as the
// user message. The call is made once; failures are returned unchanged.
func (g *LangChainGenerator) Generate(ctx context.Context, instructions, input string) (*domain.GeneratedQuiz, error) {
	start := time.Now()
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, instructions),
		llms.TextParts(llms.ChatMessageTypeHuman, input),
	}

	resp, err := g.llm.GenerateContent(ctx, messages)
	if err != nil {
		g.logger.Error("Generation request failed", zap.String("model", g.name), zap.Error(err))
		return nil, err
	}

	text := ""
	if resp != nil && len(resp.Choices) > 0 && resp.Choices[0] != nil {
		text = resp.Choices[0].Content
	}

	g.logger.Debug("Generation request completed",
		zap.String("model", g.name),
		zap.Int("output_length", len(text)),
		zap.Duration("duration", time.Since(start)),
	)
	return &domain.GeneratedQuiz{Text: text}, nil
}

var _ domain.QuizGenerator = (*LangChainGenerator)(nil)
