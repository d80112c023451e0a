// Package quiz produces five-question movie trivia quizzes. The primary path
// asks a text-generation model and validates its output strictly; any defect
// falls back to a deterministic template-based set, so callers always get a
// valid quiz.
package quiz

import (
	"context"
	"log/slog"

	"github.com/cinepass/cinebook/internal/cinebook"
)

// QuestionCount is the fixed quiz length.
const QuestionCount = 5

// TextGenerator is the upstream text-generation call. The service treats the
// result as untrusted text; it is parsed and schema-checked before acceptance.
type TextGenerator interface {
	GenerateText(ctx context.Context, system, user string) (string, error)
}

// Result is a complete quiz plus disclosure of whether the fallback path
// produced it, so the caller can show a notice.
type Result struct {
	Questions     []cinebook.QuizQuestion
	UsingFallback bool
	Message       string
}

type Service struct {
	gen    TextGenerator
	logger *slog.Logger
}

// NewService creates the quiz service. gen may be nil when no generation
// credential is configured; every request then serves the fallback set.
func NewService(gen TextGenerator, logger *slog.Logger) *Service {
	return &Service{gen: gen, logger: logger}
}

// Generate returns a valid five-question quiz for the movie. It never returns
// an error: the deterministic fallback covers every primary-path failure.
func (s *Service) Generate(ctx context.Context, movieTitle, movieGenre string) Result {
	if s.gen == nil {
		s.logger.Warn("quiz generation credential not configured, using fallback",
			"movie", movieTitle)
		return Result{
			Questions:     fallbackQuiz(movieTitle, movieGenre),
			UsingFallback: true,
			Message:       "Using generic quiz - configure OPENAI_API_KEY for AI-generated questions",
		}
	}

	text, err := s.gen.GenerateText(ctx, systemPrompt, userPrompt(movieTitle, movieGenre))
	if err != nil {
		s.logger.Error("quiz generation failed, using fallback",
			"movie", movieTitle, "error", err)
		return Result{
			Questions:     fallbackQuiz(movieTitle, movieGenre),
			UsingFallback: true,
			Message:       "AI generation failed, using generic quiz. Error: " + err.Error(),
		}
	}

	questions, err := parseQuiz(text)
	if err != nil {
		s.logger.Error("quiz response rejected, using fallback",
			"movie", movieTitle, "error", err)
		return Result{
			Questions:     fallbackQuiz(movieTitle, movieGenre),
			UsingFallback: true,
			Message:       "AI generation failed, using generic quiz. Error: " + err.Error(),
		}
	}

	s.logger.Info("quiz generated", "movie", movieTitle, "questions", len(questions))
	return Result{Questions: questions}
}
