package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hayatzendah/essam-question-engine/internal/draft"
	"github.com/Hayatzendah/essam-question-engine/internal/models"
)

func providerDraft(t models.QuestionType) draft.QuestionDraft {
	d := draft.New(t)
	d.Prompt = "Wähle die richtige Antwort"
	d.Category = models.CategoryProvider
	d.Provider = "Goethe"
	d.Level = "B1"
	d.Skill = "lesen"
	d.Teil = 2
	return d
}

func TestNormalize_BaseFields(t *testing.T) {
	d := providerDraft(models.TrueFalse)
	v := true
	d.TrueAnswer = &v
	d.Explanation = "Weil es so ist"

	p, err := Normalize(d, Options{})
	require.NoError(t, err)

	assert.Equal(t, "true_false", p[KeyQuestionType])
	assert.Equal(t, "Wähle die richtige Antwort", p["question"])
	assert.Equal(t, 1, p["points"])
	assert.Equal(t, "provider", p["usageCategory"])
	assert.Equal(t, "Weil es so ist", p["explanation"])
}

func TestNormalize_EmptyExplanationOmitted(t *testing.T) {
	d := providerDraft(models.TrueFalse)
	v := false
	d.TrueAnswer = &v
	d.Explanation = "   "

	p, err := Normalize(d, Options{})
	require.NoError(t, err)

	_, present := p["explanation"]
	assert.False(t, present)
}

func TestNormalize_GrammarCategory(t *testing.T) {
	d := draft.New(models.FillBlank)
	d.Prompt = "Ich ___ nach Hause"
	d.Category = models.CategoryGrammar
	d.GrammarLevel = "B1"
	d.FillExact = "gehe"
	d.Tags = []string{"should", "be", "ignored"}
	d.Teil = 4

	p, err := Normalize(d, Options{})
	require.NoError(t, err)

	assert.Equal(t, "grammatik", p["provider"])
	assert.Equal(t, "B1", p["level"])
	assert.Equal(t, "grammatik", p["skill"])
	assert.Equal(t, 0, p[KeyTeilNumber], "grammar questions never carry a real teil")
	_, hasTags := p["tags"]
	assert.False(t, hasTags, "grammar questions get no free-form tags")
}

func TestNormalize_ProviderCategory(t *testing.T) {
	d := providerDraft(models.TrueFalse)
	v := true
	d.TrueAnswer = &v
	d.SourceName = "Modelltest 3"

	p, err := Normalize(d, Options{})
	require.NoError(t, err)

	assert.Equal(t, "goethe", p["provider"], "provider is lower-cased")
	assert.Equal(t, "B1", p["level"])
	assert.Equal(t, "lesen", p["skill"])
	assert.Equal(t, 2, p[KeyTeilNumber])
	assert.Equal(t, []string{"goethe", "b1", "lesen", "teil-2", "modelltest 3"}, p["tags"])
}

func TestNormalize_ProviderTagsWithoutTeilOrSource(t *testing.T) {
	d := providerDraft(models.TrueFalse)
	v := true
	d.TrueAnswer = &v
	d.Teil = 0

	p, err := Normalize(d, Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"goethe", "b1", "lesen"}, p["tags"])
}

func TestNormalize_CommonCategory(t *testing.T) {
	d := draft.New(models.MultipleChoice)
	d.Prompt = "Was ist die Hauptstadt?"
	d.Category = models.CategoryCommon
	d.Options = []models.MCQOption{
		{Text: "Berlin", IsCorrect: true},
		{Text: "Bonn"},
	}
	d.Images = []string{"bild-1.png"}

	p, err := Normalize(d, Options{})
	require.NoError(t, err)

	assert.Equal(t, "leben-in-deutschland-test", p["provider"])
	assert.Equal(t, "allgemein", p["skill"])
	assert.Equal(t, []string{"bild-1.png"}, p["images"])
	assert.Equal(t, "bild-1.png", p["media"], "single image also fills the legacy media field")
	_, hasRegion := p["region"]
	assert.False(t, hasRegion)
}

func TestNormalize_CommonCategoryMultipleImagesNoMedia(t *testing.T) {
	d := draft.New(models.MultipleChoice)
	d.Prompt = "Welches Bild passt?"
	d.Category = models.CategoryCommon
	d.Options = []models.MCQOption{
		{Text: "A", IsCorrect: true},
		{Text: "B"},
	}
	d.Images = []string{"a.png", "b.png"}

	p, err := Normalize(d, Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.png", "b.png"}, p["images"])
	_, hasMedia := p["media"]
	assert.False(t, hasMedia)
}

func TestNormalize_StateSpecificCategory(t *testing.T) {
	d := draft.New(models.MultipleChoice)
	d.Prompt = "Welches Wappen gehört zu Bayern?"
	d.Category = models.CategoryStateSpecific
	d.Region = "Bayern"
	d.Options = []models.MCQOption{
		{Text: "A", IsCorrect: true},
		{Text: "B"},
	}

	p, err := Normalize(d, Options{})
	require.NoError(t, err)

	assert.Equal(t, "leben-in-deutschland-test", p["provider"])
	assert.Equal(t, "Bayern", p["region"])
}

func TestNormalize_MultipleChoiceProjection(t *testing.T) {
	d := providerDraft(models.MultipleChoice)
	d.Options = []models.MCQOption{
		{Text: "der", IsCorrect: true},
		{Text: "die"},
	}

	p, err := Normalize(d, Options{})
	require.NoError(t, err)

	options, ok := p["options"].([]map[string]interface{})
	require.True(t, ok)
	require.Len(t, options, 2)
	assert.Equal(t, "der", options[0]["text"])
	assert.Equal(t, true, options[0]["isCorrect"])
	assert.Equal(t, false, options[1]["isCorrect"])
}

func TestNormalize_TrueFalseProjection(t *testing.T) {
	d := providerDraft(models.TrueFalse)
	v := false
	d.TrueAnswer = &v

	p, err := Normalize(d, Options{})
	require.NoError(t, err)

	assert.Equal(t, false, p["correct"])
	_, hasOptions := p["options"]
	assert.False(t, hasOptions, "true/false never carries an options array")
}

func TestNormalize_FillAnswerIsAlwaysArrayWrapped(t *testing.T) {
	d := providerDraft(models.FillBlank)
	d.FillExact = "gehe"

	p, err := Normalize(d, Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"gehe"}, p["answers"])
	_, hasPatterns := p["patterns"]
	assert.False(t, hasPatterns)
}

func TestNormalize_FillPatternsOnly(t *testing.T) {
	d := providerDraft(models.FillBlank)
	d.RegexList = []string{"^geh(e|st)$"}

	p, err := Normalize(d, Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{}, p["answers"])
	assert.Equal(t, []string{"^geh(e|st)$"}, p["patterns"])
}

func TestNormalize_MatchProjection(t *testing.T) {
	d := providerDraft(models.Matching)
	d.Pairs = []models.MatchPair{
		{Left: "Hund", Right: "dog"},
		{Left: "Katze", Right: "cat"},
	}

	p, err := Normalize(d, Options{})
	require.NoError(t, err)

	assert.Equal(t, [][2]string{{"Hund", "dog"}, {"Katze", "cat"}}, p["pairs"])
}

func TestNormalize_ReorderProjection(t *testing.T) {
	d := providerDraft(models.Reorder)
	d.OrderItems = []string{"Ich", "gehe", "nach", "Hause"}

	p, err := Normalize(d, Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Ich", "gehe", "nach", "Hause"}, p["items"])
	assert.Equal(t, "Ich gehe nach Hause", p["solution"])
}

func TestNormalize_FreeTextProjection(t *testing.T) {
	d := providerDraft(models.FreeText)
	d.Skill = "schreiben"
	minWords, maxWords := 30, 80
	d.MinWords = &minWords
	d.MaxWords = &maxWords
	d.SampleAnswer = "Meine Antwort"

	p, err := Normalize(d, Options{})
	require.NoError(t, err)

	assert.Equal(t, "Meine Antwort", p["sampleAnswer"])
	assert.Equal(t, 30, p["minWords"])
	assert.Equal(t, 80, p["maxWords"])
}

func TestNormalize_InteractiveBlanksProjection(t *testing.T) {
	d := draft.New(models.InteractiveText)
	d.Prompt = "Ergänze den Text"
	d.Category = models.CategoryGrammar
	d.GrammarLevel = "B1"
	d.Template = "Ich {{b1}} nach {{b2}} und {{b3}} müde."
	d.Blanks = []models.Blank{
		{ID: "b1", Kind: models.BlankTextInput, Answers: []string{"gehe"}},
		{ID: "b2", Kind: models.BlankDropdown, Answers: []string{"Hause"}, Choices: []string{"Hause", "Haus"}},
		{ID: "b3", Kind: models.BlankTextInput, Answers: []string{"bin"}},
	}

	p, err := Normalize(d, Options{})
	require.NoError(t, err)

	assert.Equal(t, "blanks", p["mode"])
	assert.Equal(t, d.Template, p["template"])

	blanks, ok := p["blanks"].([]map[string]interface{})
	require.True(t, ok)
	require.Len(t, blanks, 3)
	assert.Equal(t, "b1", blanks[0]["id"])
	assert.Equal(t, "textInput", blanks[0]["kind"])
	_, hasChoices := blanks[0]["choices"]
	assert.False(t, hasChoices, "text input blanks carry no choices")
	assert.Equal(t, []string{"Hause", "Haus"}, blanks[1]["choices"])
}

func TestNormalize_InteractiveReorderProjection(t *testing.T) {
	d := draft.New(models.InteractiveText)
	d.Prompt = "Sortiere"
	d.Category = models.CategoryGrammar
	d.GrammarLevel = "B1"
	d.InteractiveMode = models.InteractiveReorder
	d.Parts = []models.ReorderPart{
		{ID: "p1", Text: "Ich gehe", Order: 1},
		{ID: "p2", Text: "nach Hause", Order: 2},
	}

	p, err := Normalize(d, Options{})
	require.NoError(t, err)

	assert.Equal(t, "reorder", p["mode"])
	parts, ok := p["parts"].([]map[string]interface{})
	require.True(t, ok)
	require.Len(t, parts, 2)
	assert.Equal(t, "p1", parts[0]["id"])
	assert.Equal(t, 2, parts[1]["order"])
	_, hasTemplate := p["template"]
	assert.False(t, hasTemplate)
}

func TestNormalize_ListeningClipRule(t *testing.T) {
	listening := func() draft.QuestionDraft {
		d := providerDraft(models.TrueFalse)
		d.Skill = "hoeren"
		v := true
		d.TrueAnswer = &v
		return d
	}

	t.Run("resolved section clip wins", func(t *testing.T) {
		d := listening()
		d.ListeningClipID = "clip-draft"

		p, err := Normalize(d, Options{ClipID: "clip-section"})
		require.NoError(t, err)
		assert.Equal(t, "clip-section", p["listeningClipId"])
	})

	t.Run("explicit draft clip is the fallback", func(t *testing.T) {
		d := listening()
		d.ListeningClipID = "clip-draft"

		p, err := Normalize(d, Options{})
		require.NoError(t, err)
		assert.Equal(t, "clip-draft", p["listeningClipId"])
	})

	t.Run("missing clip with exam link", func(t *testing.T) {
		d := listening()
		link := &models.ExamLink{ExamID: 7, SectionKey: "hoeren-1"}

		_, err := Normalize(d, Options{Link: link})
		require.Error(t, err)
		assert.Equal(t, "the linked exam section has no audio clip: upload the section audio first", err.Error())
	})

	t.Run("missing clip without exam link", func(t *testing.T) {
		d := listening()

		_, err := Normalize(d, Options{})
		require.Error(t, err)
		assert.Equal(t, "listening questions need an audio clip: pick a clip manually", err.Error())
	})

	t.Run("non listening skill skips the rule", func(t *testing.T) {
		d := providerDraft(models.TrueFalse)
		v := true
		d.TrueAnswer = &v

		p, err := Normalize(d, Options{})
		require.NoError(t, err)
		_, present := p["listeningClipId"]
		assert.False(t, present)
	})

	t.Run("skill match is case insensitive", func(t *testing.T) {
		d := listening()
		d.Skill = "Hoeren"
		d.ListeningClipID = "clip-1"

		p, err := Normalize(d, Options{})
		require.NoError(t, err)
		assert.Equal(t, "clip-1", p["listeningClipId"])
	})
}

func TestNormalize_ExamLinkage(t *testing.T) {
	d := providerDraft(models.TrueFalse)
	v := true
	d.TrueAnswer = &v
	link := &models.ExamLink{ExamID: 12, SectionKey: "lesen-1", Teil: 3}

	p, err := Normalize(d, Options{Link: link})
	require.NoError(t, err)

	assert.Equal(t, uint(12), p["examId"])
	assert.Equal(t, "lesen-1", p["sectionKey"])
	assert.Equal(t, 3, p[KeyTeilNumber], "the section teil overrides the draft teil")
}

func TestNormalize_StandaloneHasNoLinkageKeys(t *testing.T) {
	d := providerDraft(models.TrueFalse)
	v := true
	d.TrueAnswer = &v

	p, err := Normalize(d, Options{})
	require.NoError(t, err)

	_, hasExam := p["examId"]
	_, hasSection := p["sectionKey"]
	assert.False(t, hasExam)
	assert.False(t, hasSection)
}

func TestNormalize_ForbiddenKeysNeverSurvive(t *testing.T) {
	d := providerDraft(models.TrueFalse)
	v := true
	d.TrueAnswer = &v

	p, err := Normalize(d, Options{})
	require.NoError(t, err)

	_, hasType := p["type"]
	_, hasTeil := p["teil"]
	assert.False(t, hasType)
	assert.False(t, hasTeil)
	assert.Equal(t, "true_false", p[KeyQuestionType])
}

func TestStripForbiddenKeys_Idempotent(t *testing.T) {
	p := Payload{
		KeyQuestionType: "mcq",
		"type":          "mcq",
		"teil":          3,
		KeyTeilNumber:   3,
	}

	StripForbiddenKeys(p)
	first := len(p)
	StripForbiddenKeys(p)

	assert.Equal(t, first, len(p))
	assert.Equal(t, "mcq", p[KeyQuestionType])
	assert.Equal(t, 3, p[KeyTeilNumber])
	_, hasType := p["type"]
	_, hasTeil := p["teil"]
	assert.False(t, hasType)
	assert.False(t, hasTeil)
}

func TestNormalize_RejectsUnknownType(t *testing.T) {
	d := providerDraft("bogus")

	_, err := Normalize(d, Options{})
	require.Error(t, err)

	var ie *InvariantError
	assert.ErrorAs(t, err, &ie)
}
