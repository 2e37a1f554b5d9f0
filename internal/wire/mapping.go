package wire

import (
	"github.com/Hayatzendah/essam-question-engine/internal/models"
)

// questionTypeLabels is the exhaustive mapping from the authoring form's
// human-readable labels to backend type codes. Lookups outside this table
// fail loudly instead of falling back to a lower-cased guess.
var questionTypeLabels = map[string]models.QuestionType{
	"Multiple Choice":   models.MultipleChoice,
	"Richtig / Falsch":  models.TrueFalse,
	"Lückentext":        models.FillBlank,
	"Zuordnung":         models.Matching,
	"Satzbau":           models.Reorder,
	"Freitext":          models.FreeText,
	"Sprechen":          models.Speaking,
	"Interaktiver Text": models.InteractiveText,
}

// QuestionTypeFromLabel resolves a form label to its backend code.
func QuestionTypeFromLabel(label string) (models.QuestionType, error) {
	if code, ok := questionTypeLabels[label]; ok {
		return code, nil
	}
	// Codes are accepted verbatim so API clients can skip the label layer.
	if models.IsValidQuestionType(models.QuestionType(label)) {
		return models.QuestionType(label), nil
	}
	return "", &UnmappedLabelError{Label: label}
}

// QuestionTypeLabel returns the form label for a backend code.
func QuestionTypeLabel(t models.QuestionType) (string, error) {
	for label, code := range questionTypeLabels {
		if code == t {
			return label, nil
		}
	}
	return "", &InvariantError{Type: string(t)}
}
