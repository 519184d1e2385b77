package domain

import "context"

// QuizGenerator is the port for the external text-completion provider.
// Generate is invoked exactly once per request; implementations must not retry.
type QuizGenerator interface {
	Generate(ctx context.Context, instructions, input string) (*GeneratedQuiz, error)
}
