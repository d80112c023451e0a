package server

import (
	"net/http"
	"strings"

	"github.com/cinepass/cinebook/internal/cinebook"
	"github.com/cinepass/cinebook/internal/quiz"
)

// QuizRequest is the request body for POST /api/quiz.
type QuizRequest struct {
	MovieTitle string `json:"movieTitle"`
	MovieGenre string `json:"movieGenre"`
}

// QuizResponse always carries a valid five-question quiz; UsingFallback and
// Message disclose when the generic set was substituted.
type QuizResponse struct {
	Questions     []cinebook.QuizQuestion `json:"questions"`
	UsingFallback bool                    `json:"usingFallback,omitempty"`
	Message       string                  `json:"message,omitempty"`
}

func handleQuiz(svc *quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req QuizRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		req.MovieTitle = strings.TrimSpace(req.MovieTitle)
		req.MovieGenre = strings.TrimSpace(req.MovieGenre)
		if req.MovieTitle == "" || req.MovieGenre == "" {
			writeError(w, http.StatusBadRequest, "movieTitle and movieGenre are required")
			return
		}

		res := svc.Generate(r.Context(), req.MovieTitle, req.MovieGenre)
		if len(res.Questions) != quiz.QuestionCount {
			// Unreachable unless the fallback generator itself is broken.
			writeErrorDetails(w, http.StatusInternalServerError,
				"failed to generate quiz", "fallback produced an invalid quiz")
			return
		}

		writeJSON(w, http.StatusOK, QuizResponse{
			Questions:     res.Questions,
			UsingFallback: res.UsingFallback,
			Message:       res.Message,
		})
	}
}
