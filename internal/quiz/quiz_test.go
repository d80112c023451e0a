package quiz

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinepass/cinebook/internal/cinebook"
)

// stubGenerator returns canned text or an error.
type stubGenerator struct {
	text string
	err  error
}

func (s *stubGenerator) GenerateText(_ context.Context, _, _ string) (string, error) {
	return s.text, s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const validQuizJSON = `[
	{"question": "Q1?", "options": ["a", "b", "c", "d"], "correctAnswer": 0},
	{"question": "Q2?", "options": ["a", "b", "c", "d"], "correctAnswer": 1},
	{"question": "Q3?", "options": ["a", "b", "c", "d"], "correctAnswer": 2},
	{"question": "Q4?", "options": ["a", "b", "c", "d"], "correctAnswer": 3},
	{"question": "Q5?", "options": ["a", "b", "c", "d"], "correctAnswer": 0}
]`

func assertValidQuiz(t *testing.T, questions []cinebook.QuizQuestion) {
	t.Helper()
	require.Len(t, questions, QuestionCount)
	for i, q := range questions {
		assert.NotEmpty(t, q.Question, "question %d", i)
		assert.Len(t, q.Options, 4, "question %d", i)
		assert.GreaterOrEqual(t, q.CorrectAnswer, 0, "question %d", i)
		assert.LessOrEqual(t, q.CorrectAnswer, 3, "question %d", i)
	}
}

func TestGeneratePrimaryPath(t *testing.T) {
	svc := NewService(&stubGenerator{text: validQuizJSON}, discardLogger())

	res := svc.Generate(context.Background(), "Inception", "Sci-Fi")

	assert.False(t, res.UsingFallback)
	assert.Empty(t, res.Message)
	assertValidQuiz(t, res.Questions)
	assert.Equal(t, "Q1?", res.Questions[0].Question)
}

func TestGenerateStripsCodeFences(t *testing.T) {
	svc := NewService(&stubGenerator{text: "```json\n" + validQuizJSON + "\n```"}, discardLogger())

	res := svc.Generate(context.Background(), "Inception", "Sci-Fi")

	assert.False(t, res.UsingFallback)
	assertValidQuiz(t, res.Questions)
}

func TestGenerateNoCredentialUsesFallback(t *testing.T) {
	svc := NewService(nil, discardLogger())

	res := svc.Generate(context.Background(), "Inception", "Sci-Fi")

	assert.True(t, res.UsingFallback)
	assert.NotEmpty(t, res.Message)
	assertValidQuiz(t, res.Questions)

	// Genre "Sci-Fi" does not contain "action", so the second fallback
	// question's correct index is 0.
	assert.Equal(t, 0, res.Questions[1].CorrectAnswer)
}

func TestGenerateErrorUsesFallback(t *testing.T) {
	svc := NewService(&stubGenerator{err: errors.New("rate limited")}, discardLogger())

	res := svc.Generate(context.Background(), "Animal", "Action Drama")

	assert.True(t, res.UsingFallback)
	assert.Contains(t, res.Message, "rate limited")
	assertValidQuiz(t, res.Questions)
	assert.Equal(t, 1, res.Questions[1].CorrectAnswer, "action genre flips the index")
}

func TestGenerateInvalidShapeUsesFallback(t *testing.T) {
	cases := map[string]string{
		"not json":        "the model apologizes",
		"not an array":    `{"question": "Q?"}`,
		"empty array":     `[]`,
		"four questions":  `[` + oneQuestion + `,` + oneQuestion + `,` + oneQuestion + `,` + oneQuestion + `]`,
		"three options":   `[{"question": "Q?", "options": ["a", "b", "c"], "correctAnswer": 0}]`,
		"index too large": `[{"question": "Q?", "options": ["a", "b", "c", "d"], "correctAnswer": 4}]`,
		"missing fields":  `[{"options": ["a", "b", "c", "d"], "correctAnswer": 0}]`,
		"float index":     `[{"question": "Q?", "options": ["a", "b", "c", "d"], "correctAnswer": 1.5}]`,
	}

	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			svc := NewService(&stubGenerator{text: text}, discardLogger())

			res := svc.Generate(context.Background(), "Inception", "Sci-Fi")

			assert.True(t, res.UsingFallback, "response should be rejected whole")
			assertValidQuiz(t, res.Questions)
		})
	}
}

const oneQuestion = `{"question": "Q?", "options": ["a", "b", "c", "d"], "correctAnswer": 0}`

func TestFallbackDeterministic(t *testing.T) {
	a := fallbackQuiz("Inception", "Sci-Fi")
	b := fallbackQuiz("Inception", "Sci-Fi")
	assert.Equal(t, a, b)

	assert.Contains(t, a[0].Question, "Inception")
	assert.Equal(t, "Sci-Fi", a[0].Options[0])
	assert.Equal(t, 0, a[0].CorrectAnswer)
	assert.Equal(t, 3, a[2].CorrectAnswer)
	assert.Equal(t, 3, a[3].CorrectAnswer)
	assert.Equal(t, 3, a[4].CorrectAnswer)
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, "[]", stripFences("[]"))
	assert.Equal(t, "[]", stripFences("```json\n[]\n```"))
	assert.Equal(t, "[]", stripFences("```\n[]\n```"))
	assert.Equal(t, "[]", stripFences("  []  "))
}
