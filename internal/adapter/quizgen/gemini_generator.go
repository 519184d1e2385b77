package quizgen

import (
	"context"
	"fmt"

	"testforge/internal/domain"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const DefaultGeminiModel = "gemini-2.0-flash"

// geminiModels is the subset of *genai.Models used by GeminiGenerator.
type geminiModels interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator implements domain.QuizGenerator with the Gemini API.
type GeminiGenerator struct {
	models    geminiModels
	modelName string
	logger    *zap.Logger
}

// NewGeminiGenerator creates a Gemini-backed generator.
func NewGeminiGenerator(ctx context.Context, apiKey, modelName string, logger *zap.Logger) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: Gemini API key cannot be empty", ErrMissingCredential)
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return newGeminiGenerator(client.Models, modelName, logger), nil
}

func newGeminiGenerator(models geminiModels, modelName string, logger *zap.Logger) *GeminiGenerator {
	if modelName == "" {
		modelName = DefaultGeminiModel
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GeminiGenerator{models: models, modelName: modelName, logger: logger}
}

func (g *GeminiGenerator) Generate(ctx context.Context, instructions, input string) (*domain.GeneratedQuiz, error) {
	result, err := g.models.GenerateContent(ctx, g.modelName, genai.Text(input), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(instructions, genai.RoleUser),
	})
	if err != nil {
		g.logger.Error("Gemini generation failed", zap.String("model", g.modelName), zap.Error(err))
		return nil, err
	}

	text := ""
	if result != nil {
		text = result.Text()
	}
	g.logger.Debug("Gemini generation completed", zap.String("model", g.modelName), zap.Int("output_length", len(text)))
	return &domain.GeneratedQuiz{Text: text}, nil
}

var _ domain.QuizGenerator = (*GeminiGenerator)(nil)
