package quiz

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/cinepass/cinebook/internal/cinebook"
)

// quizSchema is the shape the model is asked to produce. Validation fails
// closed: any element out of shape rejects the entire response.
const quizSchemaJSON = `{
	"type": "array",
	"minItems": 5,
	"maxItems": 5,
	"items": {
		"type": "object",
		"required": ["question", "options", "correctAnswer"],
		"properties": {
			"question": {"type": "string", "minLength": 1},
			"options": {
				"type": "array",
				"minItems": 4,
				"maxItems": 4,
				"items": {"type": "string"}
			},
			"correctAnswer": {"type": "integer", "minimum": 0, "maximum": 3}
		}
	}
}`

var (
	schemaOnce sync.Once
	quizSchema *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(quizSchemaJSON))
		if err != nil {
			schemaErr = fmt.Errorf("parsing quiz schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("quiz.json", doc); err != nil {
			schemaErr = fmt.Errorf("adding quiz schema: %w", err)
			return
		}
		quizSchema, schemaErr = c.Compile("quiz.json")
	})
	return quizSchema, schemaErr
}

// stripFences removes an optional markdown code-fence wrapper, with or
// without a language tag.
func stripFences(text string) string {
	text = strings.TrimSpace(text)

	if rest, ok := strings.CutPrefix(text, "```json"); ok {
		text = rest
	} else if rest, ok := strings.CutPrefix(text, "```"); ok {
		text = rest
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")

	return strings.TrimSpace(text)
}

// parseQuiz parses and validates the model's raw output. The whole response
// is rejected on any defect; there is no partial acceptance.
func parseQuiz(text string) ([]cinebook.QuizQuestion, error) {
	cleaned := stripFences(text)

	var parsed any
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiledSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var questions []cinebook.QuizQuestion
	if err := json.Unmarshal([]byte(cleaned), &questions); err != nil {
		return nil, fmt.Errorf("decoding questions: %w", err)
	}
	return questions, nil
}
