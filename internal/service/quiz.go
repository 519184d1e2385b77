package service

import (
	"context"

	"testforge/internal/domain"
	"testforge/internal/dto"
	"testforge/internal/logger"
	"testforge/internal/prompt"
	"testforge/internal/validation"

	"go.uber.org/zap"
)

// QuizService generates quizzes from pasted lesson content.
type QuizService interface {
	GenerateQuiz(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error)
}

type quizService struct {
	generator      domain.QuizGenerator
	sanitizer      *validation.Sanitizer
	usage          UsageService
	credentialName string
}

// NewQuizService creates a QuizService. generator may be nil when the
// provider credential is not configured; every GenerateQuiz call then fails
// with a configuration error naming credentialName. usage may be nil.
func NewQuizService(generator domain.QuizGenerator, usage UsageService, credentialName string) QuizService {
	if credentialName == "" {
		credentialName = "OPENAI_API_KEY"
	}
	return &quizService{
		generator:      generator,
		sanitizer:      validation.NewSanitizer(),
		usage:          usage,
		credentialName: credentialName,
	}
}

// GenerateQuiz sanitizes the request, builds the prompt and calls the
// generation service exactly once.
func (s *quizService) GenerateQuiz(ctx context.Context, raw *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error) {
	if s.generator == nil {
		return nil, domain.NewConfigurationError("Missing " + s.credentialName)
	}

	req, err := s.sanitizer.Sanitize(raw)
	if err != nil {
		return nil, err
	}

	p := prompt.Build(req)
	l := logger.Get()
	l.Info("Generating quiz",
		zap.String("title", req.Title),
		zap.Int("num_questions", req.NumQuestions),
		zap.String("difficulty", string(req.Difficulty)),
		zap.String("mode", string(req.Mode)),
		zap.String("grade_level", string(req.GradeLevel)),
		zap.Bool("explanations", req.Explanations),
		zap.Int("source_length", len(req.SourceText)),
	)

	quiz, err := s.generator.Generate(ctx, p.Instructions, p.Input)
	if err != nil {
		return nil, domain.NewUpstreamError(err)
	}

	resp := &dto.GenerateQuizResponse{
		Output: quiz.Text,
		Title:  req.Title,
	}

	if s.usage != nil {
		total, err := s.usage.Record(ctx)
		if err != nil {
			l.Warn("Failed to record usage", zap.Error(err))
		}
		if total > 0 {
			resp.Stats = &dto.GenerationStats{TotalGenerations: total}
			l.Info("Quiz generated", zap.Int64("total_generations", total))
		}
	}

	return resp, nil
}
