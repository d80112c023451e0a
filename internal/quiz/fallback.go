package quiz

import (
	"fmt"
	"strings"

	"github.com/cinepass/cinebook/internal/cinebook"
)

// fallbackQuiz derives five generic questions from the movie title and genre
// using fixed templates. Deterministic given the same inputs, except that the
// second question's correct index depends on whether the genre mentions
// action.
func fallbackQuiz(movieTitle, movieGenre string) []cinebook.QuizQuestion {
	genreAnswer := 0
	if strings.Contains(strings.ToLower(movieGenre), "action") {
		genreAnswer = 1
	}

	return []cinebook.QuizQuestion{
		{
			Question:      fmt.Sprintf("What genre does %q belong to?", movieTitle),
			Options:       []string{movieGenre, "Documentary", "Horror", "Western"},
			CorrectAnswer: 0,
		},
		{
			Question: fmt.Sprintf("Which of these elements is most commonly found in %s movies?", movieGenre),
			Options: []string{
				"Complex character development",
				"Fast-paced action sequences",
				"Musical numbers",
				"Historical accuracy",
			},
			CorrectAnswer: genreAnswer,
		},
		{
			Question: fmt.Sprintf("What makes %q memorable as a %s film?", movieTitle, movieGenre),
			Options: []string{
				"Its unique storytelling approach",
				"The special effects",
				"The soundtrack",
				"All of the above",
			},
			CorrectAnswer: 3,
		},
		{
			Question: fmt.Sprintf("In terms of %s movies, which aspect is typically most important?", movieGenre),
			Options: []string{
				"Plot twists",
				"Character relationships",
				"Visual aesthetics",
				"Depends on the specific film",
			},
			CorrectAnswer: 3,
		},
		{
			Question: fmt.Sprintf("How would you describe the typical tone of a %s movie like %q?", movieGenre, movieTitle),
			Options: []string{
				"Lighthearted and comedic",
				"Serious and dramatic",
				"Suspenseful and thrilling",
				"Varies by the story",
			},
			CorrectAnswer: 3,
		},
	}
}
