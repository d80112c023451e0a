package quiz

import "fmt"

const systemPrompt = "You are a helpful assistant that generates movie trivia quizzes. Always respond with valid JSON only."

func userPrompt(movieTitle, movieGenre string) string {
	return fmt.Sprintf(`Generate a fun movie trivia quiz with 5 multiple-choice questions about the movie %q (%s genre).

Format the response as a JSON array with this structure:
[
  {
    "question": "Question text here?",
    "options": ["Option A", "Option B", "Option C", "Option D"],
    "correctAnswer": 0
  }
]

Make the questions engaging and test knowledge about plot, characters, themes, and memorable scenes.
The correctAnswer should be the index (0-3) of the correct option.
Return ONLY the JSON array, no other text.`, movieTitle, movieGenre)
}
