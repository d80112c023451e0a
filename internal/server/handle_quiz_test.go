package server

import (
	"net/http"
	"testing"
)

func TestQuizMissingFields(t *testing.T) {
	r := newTestRouter(t)

	for name, body := range map[string]QuizRequest{
		"no title": {MovieGenre: "Sci-Fi"},
		"no genre": {MovieTitle: "Inception"},
		"blank":    {MovieTitle: "  ", MovieGenre: "  "},
	} {
		w := doJSON(t, r, http.MethodPost, "/api/quiz", body, nil, "", nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", name, w.Code)
		}
	}
}

func TestQuizFallbackShape(t *testing.T) {
	r := newTestRouter(t)

	var resp QuizResponse
	w := doJSON(t, r, http.MethodPost, "/api/quiz",
		QuizRequest{MovieTitle: "Inception", MovieGenre: "Sci-Fi"}, nil, "", &resp)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	if !resp.UsingFallback {
		t.Error("expected usingFallback with no generator configured")
	}
	if resp.Message == "" {
		t.Error("expected a disclosure message")
	}
	if len(resp.Questions) != 5 {
		t.Fatalf("got %d questions, want 5", len(resp.Questions))
	}
	for i, q := range resp.Questions {
		if q.Question == "" {
			t.Errorf("question %d: empty text", i)
		}
		if len(q.Options) != 4 {
			t.Errorf("question %d: %d options, want 4", i, len(q.Options))
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer > 3 {
			t.Errorf("question %d: correctAnswer %d out of range", i, q.CorrectAnswer)
		}
	}

	// Sci-Fi is not an action genre, so the genre question keys on option 0.
	if resp.Questions[1].CorrectAnswer != 0 {
		t.Errorf("genre question correctAnswer = %d, want 0", resp.Questions[1].CorrectAnswer)
	}
}
