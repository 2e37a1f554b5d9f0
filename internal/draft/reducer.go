package draft

import (
	"github.com/Hayatzendah/essam-question-engine/internal/models"
)

// Edit is one atomic change to a draft. The set of edits is closed; every
// form interaction maps to exactly one edit type.
type Edit interface {
	apply(d QuestionDraft) QuestionDraft
}

// Apply returns the draft after the edit. The input draft is never modified;
// slice fields are copied before being changed.
func Apply(d QuestionDraft, e Edit) QuestionDraft {
	return e.apply(d)
}

// ===== SHARED FIELD EDITS =====

type SetType struct{ Type models.QuestionType }

func (e SetType) apply(d QuestionDraft) QuestionDraft {
	if d.Type == e.Type {
		return d
	}
	return resetVariant(d, e.Type)
}

type SetPrompt struct{ Prompt string }

func (e SetPrompt) apply(d QuestionDraft) QuestionDraft {
	d.Prompt = e.Prompt
	return d
}

type SetPoints struct{ Points int }

func (e SetPoints) apply(d QuestionDraft) QuestionDraft {
	d.Points = e.Points
	return d
}

type SetExplanation struct{ Explanation string }

func (e SetExplanation) apply(d QuestionDraft) QuestionDraft {
	d.Explanation = e.Explanation
	return d
}

type SetCategory struct{ Category models.UsageCategory }

func (e SetCategory) apply(d QuestionDraft) QuestionDraft {
	d.Category = e.Category
	return d
}

type SetProvider struct{ Provider string }

func (e SetProvider) apply(d QuestionDraft) QuestionDraft {
	d.Provider = e.Provider
	return d
}

type SetLevel struct{ Level string }

func (e SetLevel) apply(d QuestionDraft) QuestionDraft {
	d.Level = e.Level
	return d
}

type SetSkill struct{ Skill string }

func (e SetSkill) apply(d QuestionDraft) QuestionDraft {
	d.Skill = e.Skill
	return d
}

type SetTeil struct{ Teil int }

func (e SetTeil) apply(d QuestionDraft) QuestionDraft {
	d.Teil = e.Teil
	return d
}

type SetGrammarLevel struct{ Level string }

func (e SetGrammarLevel) apply(d QuestionDraft) QuestionDraft {
	d.GrammarLevel = e.Level
	return d
}

type SetRegion struct{ Region string }

func (e SetRegion) apply(d QuestionDraft) QuestionDraft {
	d.Region = e.Region
	return d
}

type SetSourceName struct{ Name string }

func (e SetSourceName) apply(d QuestionDraft) QuestionDraft {
	d.SourceName = e.Name
	return d
}

type SetTags struct{ Tags []string }

func (e SetTags) apply(d QuestionDraft) QuestionDraft {
	d.Tags = copyStrings(e.Tags)
	return d
}

type SetImages struct{ Images []string }

func (e SetImages) apply(d QuestionDraft) QuestionDraft {
	d.Images = copyStrings(e.Images)
	return d
}

type SetListeningClip struct{ ClipID string }

func (e SetListeningClip) apply(d QuestionDraft) QuestionDraft {
	d.ListeningClipID = e.ClipID
	return d
}

// ===== MCQ EDITS =====

type AddOption struct{ Text string }

func (e AddOption) apply(d QuestionDraft) QuestionDraft {
	d.Options = append(copyOptions(d.Options), models.MCQOption{Text: e.Text})
	return d
}

type SetOptionText struct {
	Index int
	Text  string
}

func (e SetOptionText) apply(d QuestionDraft) QuestionDraft {
	if e.Index < 0 || e.Index >= len(d.Options) {
		return d
	}
	opts := copyOptions(d.Options)
	opts[e.Index].Text = e.Text
	d.Options = opts
	return d
}

type SetOptionCorrect struct {
	Index   int
	Correct bool
}

func (e SetOptionCorrect) apply(d QuestionDraft) QuestionDraft {
	if e.Index < 0 || e.Index >= len(d.Options) {
		return d
	}
	opts := copyOptions(d.Options)
	opts[e.Index].IsCorrect = e.Correct
	d.Options = opts
	return d
}

type RemoveOption struct{ Index int }

func (e RemoveOption) apply(d QuestionDraft) QuestionDraft {
	if e.Index < 0 || e.Index >= len(d.Options) {
		return d
	}
	opts := copyOptions(d.Options)
	d.Options = append(opts[:e.Index], opts[e.Index+1:]...)
	return d
}

// ===== TRUE/FALSE EDITS =====

type SetTrueFalse struct{ Value bool }

func (e SetTrueFalse) apply(d QuestionDraft) QuestionDraft {
	v := e.Value
	d.TrueAnswer = &v
	return d
}

// ===== FILL EDITS =====

type SetFillExact struct{ Value string }

func (e SetFillExact) apply(d QuestionDraft) QuestionDraft {
	d.FillExact = e.Value
	return d
}

type AddRegexPattern struct{ Pattern string }

func (e AddRegexPattern) apply(d QuestionDraft) QuestionDraft {
	d.RegexList = append(copyStrings(d.RegexList), e.Pattern)
	return d
}

type RemoveRegexPattern struct{ Index int }

func (e RemoveRegexPattern) apply(d QuestionDraft) QuestionDraft {
	if e.Index < 0 || e.Index >= len(d.RegexList) {
		return d
	}
	list := copyStrings(d.RegexList)
	d.RegexList = append(list[:e.Index], list[e.Index+1:]...)
	return d
}

// ===== MATCH EDITS =====

type AddPair struct{ Left, Right string }

func (e AddPair) apply(d QuestionDraft) QuestionDraft {
	d.Pairs = append(copyPairs(d.Pairs), models.MatchPair{Left: e.Left, Right: e.Right})
	return d
}

type SetPair struct {
	Index       int
	Left, Right string
}

func (e SetPair) apply(d QuestionDraft) QuestionDraft {
	if e.Index < 0 || e.Index >= len(d.Pairs) {
		return d
	}
	pairs := copyPairs(d.Pairs)
	pairs[e.Index] = models.MatchPair{Left: e.Left, Right: e.Right}
	d.Pairs = pairs
	return d
}

type RemovePair struct{ Index int }

func (e RemovePair) apply(d QuestionDraft) QuestionDraft {
	if e.Index < 0 || e.Index >= len(d.Pairs) {
		return d
	}
	pairs := copyPairs(d.Pairs)
	d.Pairs = append(pairs[:e.Index], pairs[e.Index+1:]...)
	return d
}

// ===== REORDER EDITS =====

type SetOrderItems struct{ Items []string }

func (e SetOrderItems) apply(d QuestionDraft) QuestionDraft {
	d.OrderItems = copyStrings(e.Items)
	return d
}

type MoveOrderItem struct{ From, To int }

func (e MoveOrderItem) apply(d QuestionDraft) QuestionDraft {
	n := len(d.OrderItems)
	if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n || e.From == e.To {
		return d
	}
	items := copyStrings(d.OrderItems)
	moved := items[e.From]
	items = append(items[:e.From], items[e.From+1:]...)
	rest := append(copyStrings(items[:e.To]), moved)
	d.OrderItems = append(rest, items[e.To:]...)
	return d
}

// ===== FREE TEXT / SPEAKING EDITS =====

type SetSampleAnswer struct{ Text string }

func (e SetSampleAnswer) apply(d QuestionDraft) QuestionDraft {
	d.SampleAnswer = e.Text
	return d
}

type SetWordLimits struct{ Min, Max *int }

func (e SetWordLimits) apply(d QuestionDraft) QuestionDraft {
	d.MinWords = copyInt(e.Min)
	d.MaxWords = copyInt(e.Max)
	return d
}

type SetDurationLimits struct{ Min, Max *int }

func (e SetDurationLimits) apply(d QuestionDraft) QuestionDraft {
	d.MinSeconds = copyInt(e.Min)
	d.MaxSeconds = copyInt(e.Max)
	return d
}

// ===== INTERACTIVE TEXT EDITS =====

type SetInteractiveMode struct{ Mode models.InteractiveMode }

func (e SetInteractiveMode) apply(d QuestionDraft) QuestionDraft {
	if d.InteractiveMode == e.Mode {
		return d
	}
	d.InteractiveMode = e.Mode
	d.Template = ""
	d.Blanks = nil
	d.Parts = nil
	return d
}

type SetTemplate struct{ Template string }

func (e SetTemplate) apply(d QuestionDraft) QuestionDraft {
	d.Template = e.Template
	return d
}

type AddBlank struct{ Blank models.Blank }

func (e AddBlank) apply(d QuestionDraft) QuestionDraft {
	d.Blanks = append(copyBlanks(d.Blanks), e.Blank)
	return d
}

type SetBlank struct {
	Index int
	Blank models.Blank
}

func (e SetBlank) apply(d QuestionDraft) QuestionDraft {
	if e.Index < 0 || e.Index >= len(d.Blanks) {
		return d
	}
	blanks := copyBlanks(d.Blanks)
	blanks[e.Index] = e.Blank
	d.Blanks = blanks
	return d
}

type RemoveBlank struct{ Index int }

func (e RemoveBlank) apply(d QuestionDraft) QuestionDraft {
	if e.Index < 0 || e.Index >= len(d.Blanks) {
		return d
	}
	blanks := copyBlanks(d.Blanks)
	d.Blanks = append(blanks[:e.Index], blanks[e.Index+1:]...)
	return d
}

type SetParts struct{ Parts []models.ReorderPart }

func (e SetParts) apply(d QuestionDraft) QuestionDraft {
	parts := make([]models.ReorderPart, len(e.Parts))
	copy(parts, e.Parts)
	d.Parts = parts
	return d
}

// ===== COPY HELPERS =====

func copyStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func copyOptions(s []models.MCQOption) []models.MCQOption {
	if s == nil {
		return nil
	}
	out := make([]models.MCQOption, len(s))
	copy(out, s)
	return out
}

func copyPairs(s []models.MatchPair) []models.MatchPair {
	if s == nil {
		return nil
	}
	out := make([]models.MatchPair, len(s))
	copy(out, s)
	return out
}

func copyBlanks(s []models.Blank) []models.Blank {
	if s == nil {
		return nil
	}
	out := make([]models.Blank, len(s))
	for i, b := range s {
		b.Answers = copyStrings(b.Answers)
		b.Choices = copyStrings(b.Choices)
		out[i] = b
	}
	return out
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
