package draft

import (
	"github.com/Hayatzendah/essam-question-engine/internal/models"
)

// QuestionDraft is an in-progress, unsaved question being authored. It is a
// plain value: the reducer in this package produces a new draft for every
// edit, and validation/normalization never mutate it.
//
// The variant payload fields are mutually exclusive in meaning; only the
// fields matching Type are consulted downstream. Switching Type through the
// reducer clears every variant field, so stale data from a previous type can
// never leak into a payload.
type QuestionDraft struct {
	Type        models.QuestionType
	Prompt      string
	Points      int
	Explanation string
	Category    models.UsageCategory

	// Shared authoring metadata.
	Provider     string
	Level        string
	Skill        string
	Teil         int
	GrammarLevel string
	Region       string
	SourceName   string
	Tags         []string
	Images       []string

	// Explicit listening clip pick, used when no linked exam section can
	// resolve one.
	ListeningClipID string

	// mcq
	Options []models.MCQOption

	// true_false
	TrueAnswer *bool

	// fill
	FillExact string
	RegexList []string

	// match
	Pairs []models.MatchPair

	// reorder
	OrderItems []string

	// free_text / speaking
	SampleAnswer string
	MinWords     *int
	MaxWords     *int
	MinSeconds   *int
	MaxSeconds   *int

	// interactive_text
	InteractiveMode models.InteractiveMode
	Template        string
	Blanks          []models.Blank
	Parts           []models.ReorderPart
}

// New returns a fresh draft of the given type with authoring defaults applied.
func New(t models.QuestionType) QuestionDraft {
	d := QuestionDraft{Points: 1}
	return resetVariant(d, t)
}

// resetVariant clears every variant payload field and sets the new type.
// This is the single place where the "reset on type change" rule lives.
func resetVariant(d QuestionDraft, t models.QuestionType) QuestionDraft {
	d.Type = t
	d.Options = nil
	d.TrueAnswer = nil
	d.FillExact = ""
	d.RegexList = nil
	d.Pairs = nil
	d.OrderItems = nil
	d.SampleAnswer = ""
	d.MinWords = nil
	d.MaxWords = nil
	d.MinSeconds = nil
	d.MaxSeconds = nil
	d.InteractiveMode = ""
	d.Template = ""
	d.Blanks = nil
	d.Parts = nil

	if t == models.InteractiveText {
		d.InteractiveMode = models.InteractiveBlanks
	}
	return d
}
