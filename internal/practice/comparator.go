// Package practice contains the client-side grading used for immediate
// feedback during ungraded self-practice. It is advisory only: the
// authoritative score for a graded attempt is always computed server-side.
package practice

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Hayatzendah/essam-question-engine/internal/models"
)

// GradeInput is one practice item to grade: the question type, the stored
// correct-answer data, and the learner's current answer. The raw JSON shapes
// per type match internal/models answer and key structs.
type GradeInput struct {
	Type    models.QuestionType `json:"type" validate:"required,question_type"`
	Correct json.RawMessage     `json:"correct" validate:"required"`
	Answer  json.RawMessage     `json:"answer" validate:"required"`
}

// Grade decides binary correctness for one practice item. Question types
// without immediate-feedback support return an error.
func Grade(in GradeInput) (bool, error) {
	switch in.Type {
	case models.MultipleChoice:
		return gradeChoice(in)
	case models.TrueFalse:
		return gradeBool(in)
	case models.FillBlank:
		return gradeText(in)
	case models.Reorder:
		return gradeReorder(in)
	default:
		return false, fmt.Errorf("question type %s does not support practice grading", in.Type)
	}
}

func gradeChoice(in GradeInput) (bool, error) {
	var key models.ChoiceKey
	if err := json.Unmarshal(in.Correct, &key); err != nil {
		return false, fmt.Errorf("invalid multiple choice key: %w", err)
	}
	var answer models.ChoiceAnswer
	if err := json.Unmarshal(in.Answer, &answer); err != nil {
		return false, fmt.Errorf("invalid multiple choice answer: %w", err)
	}
	return answer.Selected == key.Value, nil
}

func gradeBool(in GradeInput) (bool, error) {
	var key models.BoolKey
	if err := json.Unmarshal(in.Correct, &key); err != nil {
		return false, fmt.Errorf("invalid true/false key: %w", err)
	}
	var answer models.BoolAnswer
	if err := json.Unmarshal(in.Answer, &answer); err != nil {
		return false, fmt.Errorf("invalid true/false answer: %w", err)
	}
	return answer.Value == key.Value, nil
}

func gradeText(in GradeInput) (bool, error) {
	var key models.TextKey
	if err := json.Unmarshal(in.Correct, &key); err != nil {
		return false, fmt.Errorf("invalid fill-in key: %w", err)
	}
	var answer models.TextAnswer
	if err := json.Unmarshal(in.Answer, &answer); err != nil {
		return false, fmt.Errorf("invalid fill-in answer: %w", err)
	}
	return normalize(answer.Text) == normalize(key.Value), nil
}

func gradeReorder(in GradeInput) (bool, error) {
	var key models.ReorderKey
	if err := json.Unmarshal(in.Correct, &key); err != nil {
		return false, fmt.Errorf("invalid reorder key: %w", err)
	}
	var answer models.ReorderAnswer
	if err := json.Unmarshal(in.Answer, &answer); err != nil {
		return false, fmt.Errorf("invalid reorder answer: %w", err)
	}

	// Both interaction styles reduce to one space-joined sentence: the
	// drag-to-order token list wins over the typed string when both exist.
	submitted := answer.Typed
	if len(answer.Tokens) > 0 {
		submitted = strings.Join(answer.Tokens, " ")
	}
	return normalize(submitted) == normalize(key.Sentence), nil
}

// normalize reduces an answer to its comparable form: trimmed, lower-cased,
// inner whitespace collapsed to single spaces.
func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
