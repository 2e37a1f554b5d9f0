// Package wire turns validated authoring drafts into the exact payload shape
// the backend accepts. Every backend-contract quirk lives here as a named
// rule so contract changes touch one place.
package wire

import (
	"strconv"
	"strings"

	"github.com/Hayatzendah/essam-question-engine/internal/draft"
	"github.com/Hayatzendah/essam-question-engine/internal/models"
)

// Payload is the flat normalized object sent to the backend.
type Payload map[string]interface{}

// Canonical and forbidden payload keys. The backend accepts exactly one type
// discriminator; the legacy ones must never leave this package.
const (
	KeyQuestionType = "questionType"
	KeyTeilNumber   = "teilNumber"

	legacyKeyType = "type"
	legacyKeyTeil = "teil"
)

// Options carries the externally resolved inputs normalization needs: the
// exam linkage (nil for standalone questions) and the resolved listening
// clip id (empty when none could be resolved).
type Options struct {
	Link   *models.ExamLink
	ClipID string
}

// Normalize projects a validated draft into its wire payload.
//
// The category rules run first, then the per-type projection, then the
// listening-clip rule, and the forbidden-key strip pass always runs last.
// Normalization failure is fatal for the submit attempt and is not retried.
func Normalize(d draft.QuestionDraft, opts Options) (Payload, error) {
	p := Payload{
		KeyQuestionType: string(d.Type),
		"question":      d.Prompt,
		"points":        d.Points,
		"usageCategory": string(d.Category),
	}
	if strings.TrimSpace(d.Explanation) != "" {
		p["explanation"] = d.Explanation
	}

	applyCategoryRules(p, d)
	applyTypeProjection(p, d)

	if err := applyListeningClipRule(p, d, opts); err != nil {
		return nil, err
	}
	applyExamLinkage(p, opts.Link)

	StripForbiddenKeys(p)

	// Defensive check against typos in the label-to-code tables; user-facing
	// validation has already run by this point.
	code, _ := p[KeyQuestionType].(string)
	if !models.IsValidQuestionType(models.QuestionType(code)) {
		return nil, &InvariantError{Type: code}
	}

	return p, nil
}

// applyCategoryRules performs the category-specific field projections.
func applyCategoryRules(p Payload, d draft.QuestionDraft) {
	switch d.Category {
	case models.CategoryGrammar:
		// Grammar questions carry a fixed provider and sentinel skill/teil;
		// the level comes from the grammar-level field, and tags derive from
		// the linked exam instead of the free-form list.
		p["provider"] = models.ProviderGrammar
		p["level"] = d.GrammarLevel
		p["skill"] = models.SkillGrammarSentinel
		p[KeyTeilNumber] = 0

	case models.CategoryProvider:
		p["provider"] = strings.ToLower(d.Provider)
		p["level"] = d.Level
		p["skill"] = d.Skill
		p[KeyTeilNumber] = d.Teil
		p["tags"] = synthesizeTags(d)

	case models.CategoryCommon, models.CategoryStateSpecific:
		p["provider"] = models.ProviderLifeInCountry
		p["skill"] = models.SkillMainSentinel
		if d.Category == models.CategoryStateSpecific {
			p["region"] = d.Region
		}
		p["images"] = append([]string(nil), d.Images...)
		if len(d.Images) == 1 {
			// Older clients still read the singular media field.
			p["media"] = d.Images[0]
		}
	}
}

// synthesizeTags builds the provider-category tag list from the exam
// metadata, plus the source name when one is set.
func synthesizeTags(d draft.QuestionDraft) []string {
	tags := []string{
		strings.ToLower(d.Provider),
		strings.ToLower(d.Level),
		strings.ToLower(d.Skill),
	}
	if d.Teil > 0 {
		tags = append(tags, "teil-"+strconv.Itoa(d.Teil))
	}
	if strings.TrimSpace(d.SourceName) != "" {
		tags = append(tags, strings.ToLower(d.SourceName))
	}
	return tags
}

// applyTypeProjection performs the per-variant field projection.
func applyTypeProjection(p Payload, d draft.QuestionDraft) {
	switch d.Type {
	case models.MultipleChoice:
		options := make([]map[string]interface{}, len(d.Options))
		for i, opt := range d.Options {
			options[i] = map[string]interface{}{
				"text":      opt.Text,
				"isCorrect": opt.IsCorrect,
			}
		}
		p["options"] = options

	case models.TrueFalse:
		// Only the boolean key, never an options array.
		if d.TrueAnswer != nil {
			p["correct"] = *d.TrueAnswer
		}

	case models.FillBlank:
		// The exact answer is always array-wrapped, even when single.
		if strings.TrimSpace(d.FillExact) != "" {
			p["answers"] = []string{d.FillExact}
		} else {
			p["answers"] = []string{}
		}
		if len(d.RegexList) > 0 {
			p["patterns"] = append([]string(nil), d.RegexList...)
		}

	case models.Matching:
		pairs := make([][2]string, len(d.Pairs))
		for i, pair := range d.Pairs {
			pairs[i] = [2]string{pair.Left, pair.Right}
		}
		p["pairs"] = pairs

	case models.Reorder:
		p["items"] = append([]string(nil), d.OrderItems...)
		p["solution"] = strings.Join(d.OrderItems, " ")

	case models.FreeText:
		if strings.TrimSpace(d.SampleAnswer) != "" {
			p["sampleAnswer"] = d.SampleAnswer
		}
		if d.MinWords != nil {
			p["minWords"] = *d.MinWords
		}
		if d.MaxWords != nil {
			p["maxWords"] = *d.MaxWords
		}

	case models.Speaking:
		if strings.TrimSpace(d.SampleAnswer) != "" {
			p["sampleAnswer"] = d.SampleAnswer
		}
		if d.MinSeconds != nil {
			p["minSeconds"] = *d.MinSeconds
		}
		if d.MaxSeconds != nil {
			p["maxSeconds"] = *d.MaxSeconds
		}

	case models.InteractiveText:
		p["mode"] = string(d.InteractiveMode)
		if d.InteractiveMode == models.InteractiveBlanks {
			p["template"] = d.Template
			blanks := make([]map[string]interface{}, len(d.Blanks))
			for i, b := range d.Blanks {
				entry := map[string]interface{}{
					"id":      b.ID,
					"kind":    string(b.Kind),
					"answers": append([]string(nil), b.Answers...),
				}
				if b.Kind == models.BlankDropdown {
					entry["choices"] = append([]string(nil), b.Choices...)
				}
				blanks[i] = entry
			}
			p["blanks"] = blanks
		} else {
			parts := make([]map[string]interface{}, len(d.Parts))
			for i, part := range d.Parts {
				parts[i] = map[string]interface{}{
					"id":    part.ID,
					"text":  part.Text,
					"order": part.Order,
				}
			}
			p["parts"] = parts
		}
	}
}

// applyListeningClipRule enforces the audio-clip invariant for listening
// questions: provider-category payloads with the listening skill must carry
// a non-null clip reference.
func applyListeningClipRule(p Payload, d draft.QuestionDraft, opts Options) error {
	if d.Category != models.CategoryProvider || !strings.EqualFold(d.Skill, models.SkillListening) {
		return nil
	}

	clip := opts.ClipID
	if clip == "" {
		clip = d.ListeningClipID
	}
	if clip == "" {
		return &MissingClipError{ExamLinked: opts.Link != nil}
	}

	p["listeningClipId"] = clip
	return nil
}

// applyExamLinkage attaches the exam linkage fields when the question is
// created under an exam section. The payload shape is otherwise identical
// to the standalone one.
func applyExamLinkage(p Payload, link *models.ExamLink) {
	if link == nil {
		return
	}
	p["examId"] = link.ExamID
	p["sectionKey"] = link.SectionKey
	if link.Teil > 0 {
		p[KeyTeilNumber] = link.Teil
	}
}

// StripForbiddenKeys removes the deprecated keys that must never reach the
// backend, however they were set upstream. The pass is idempotent and always
// runs last.
func StripForbiddenKeys(p Payload) {
	delete(p, legacyKeyType)
	delete(p, legacyKeyTeil)
}

