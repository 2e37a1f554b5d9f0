package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hayatzendah/essam-question-engine/internal/models"
)

func TestQuestionTypeFromLabel(t *testing.T) {
	tests := []struct {
		label string
		want  models.QuestionType
	}{
		{"Multiple Choice", models.MultipleChoice},
		{"Richtig / Falsch", models.TrueFalse},
		{"Lückentext", models.FillBlank},
		{"Zuordnung", models.Matching},
		{"Satzbau", models.Reorder},
		{"Freitext", models.FreeText},
		{"Sprechen", models.Speaking},
		{"Interaktiver Text", models.InteractiveText},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := QuestionTypeFromLabel(tt.label)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuestionTypeFromLabel_AcceptsCodesVerbatim(t *testing.T) {
	got, err := QuestionTypeFromLabel("true_false")
	require.NoError(t, err)
	assert.Equal(t, models.TrueFalse, got)
}

func TestQuestionTypeFromLabel_UnknownLabelFailsLoudly(t *testing.T) {
	_, err := QuestionTypeFromLabel("Hörverstehen")
	require.Error(t, err)

	var ule *UnmappedLabelError
	require.ErrorAs(t, err, &ule)
	assert.Equal(t, "Hörverstehen", ule.Label)
}

func TestQuestionTypeFromLabel_NoCaseGuessing(t *testing.T) {
	_, err := QuestionTypeFromLabel("multiple choice")
	assert.Error(t, err, "lookups are exact; casing is never guessed")
}

func TestQuestionTypeLabel_RoundTrip(t *testing.T) {
	for _, qt := range models.AllQuestionTypes {
		label, err := QuestionTypeLabel(qt)
		require.NoError(t, err)

		back, err := QuestionTypeFromLabel(label)
		require.NoError(t, err)
		assert.Equal(t, qt, back)
	}
}

func TestQuestionTypeLabel_UnknownType(t *testing.T) {
	_, err := QuestionTypeLabel("bogus")
	assert.Error(t, err)
}
