package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Hayatzendah/essam-question-engine/internal/blanks"
	"github.com/Hayatzendah/essam-question-engine/internal/draft"
	"github.com/Hayatzendah/essam-question-engine/internal/models"
)

// DraftValidator decides whether an authoring draft can be submitted.
//
// Validation is short-circuiting: rules run in a fixed order and the first
// violation is returned as a single human-readable error. The draft is never
// modified.
type DraftValidator struct{}

// NewDraftValidator creates a new draft validator
func NewDraftValidator() *DraftValidator {
	return &DraftValidator{}
}

// Validate runs all rules against the draft. The enum table is optional;
// when nil the metadata cross-checks are skipped.
//
// Rule order: enum cross-checks, prompt, variant structure, usage category,
// category metadata completeness, category/type cross-rule.
func (v *DraftValidator) Validate(d draft.QuestionDraft, enums *models.EnumTable) error {
	if err := v.validateEnums(d, enums); err != nil {
		return err
	}

	if strings.TrimSpace(d.Prompt) == "" {
		return fmt.Errorf("question prompt is required")
	}
	if d.Points < 1 {
		return fmt.Errorf("points must be a positive number")
	}

	if err := v.validateVariant(d); err != nil {
		return err
	}

	if d.Category == "" {
		return fmt.Errorf("a usage category must be selected")
	}
	if !models.IsValidUsageCategory(d.Category) {
		return fmt.Errorf("unknown usage category: %s", d.Category)
	}

	if err := v.validateCategoryMetadata(d); err != nil {
		return err
	}

	// Leben in Deutschland question pools are multiple choice only.
	if d.Category == models.CategoryCommon || d.Category == models.CategoryStateSpecific {
		if d.Type != models.MultipleChoice {
			return fmt.Errorf("Leben in Deutschland only supports multiple choice questions")
		}
	}

	return nil
}

func (v *DraftValidator) validateEnums(d draft.QuestionDraft, enums *models.EnumTable) error {
	if enums == nil {
		return nil
	}

	if d.Provider != "" && len(enums.Providers) > 0 && d.Category == models.CategoryProvider {
		if !enums.HasProvider(d.Provider) {
			return fmt.Errorf("unknown provider: %s", d.Provider)
		}
	}
	if d.Level != "" && len(enums.Levels) > 0 {
		if !enums.HasLevel(d.Level) {
			return fmt.Errorf("unknown level: %s", d.Level)
		}
	}
	if d.Skill != "" && len(enums.Skills) > 0 {
		if !enums.HasSkill(d.Skill) {
			return fmt.Errorf("unknown skill: %s", d.Skill)
		}
	}
	return nil
}

func (v *DraftValidator) validateVariant(d draft.QuestionDraft) error {
	switch d.Type {
	case models.MultipleChoice:
		return v.validateMultipleChoice(d)
	case models.TrueFalse:
		return v.validateTrueFalse(d)
	case models.FillBlank:
		return v.validateFill(d)
	case models.Matching:
		return v.validateMatch(d)
	case models.Reorder:
		return v.validateReorder(d)
	case models.FreeText:
		return v.validateFreeText(d)
	case models.Speaking:
		return v.validateSpeaking(d)
	case models.InteractiveText:
		return v.validateInteractiveText(d)
	default:
		return fmt.Errorf("unsupported question type: %s", d.Type)
	}
}

func (v *DraftValidator) validateMultipleChoice(d draft.QuestionDraft) error {
	if len(d.Options) < 2 {
		return fmt.Errorf("multiple choice questions need at least two options")
	}

	hasCorrect := false
	for i, opt := range d.Options {
		if strings.TrimSpace(opt.Text) == "" {
			return fmt.Errorf("option %d text cannot be empty", i+1)
		}
		if opt.IsCorrect {
			hasCorrect = true
		}
	}
	if !hasCorrect {
		return fmt.Errorf("multiple choice questions need at least one correct answer")
	}
	return nil
}

func (v *DraftValidator) validateTrueFalse(d draft.QuestionDraft) error {
	if d.TrueAnswer == nil {
		return fmt.Errorf("true/false questions need the correct answer selected")
	}
	return nil
}

func (v *DraftValidator) validateFill(d draft.QuestionDraft) error {
	hasExact := strings.TrimSpace(d.FillExact) != ""

	patterns := 0
	for i, p := range d.RegexList {
		if strings.TrimSpace(p) == "" {
			continue
		}
		if _, err := regexp.Compile(p); err != nil {
			return fmt.Errorf("regex pattern %d is invalid: %v", i+1, err)
		}
		patterns++
	}

	if !hasExact && patterns == 0 {
		return fmt.Errorf("fill-in questions need an exact answer or at least one regex pattern")
	}
	return nil
}

func (v *DraftValidator) validateMatch(d draft.QuestionDraft) error {
	if len(d.Pairs) < 2 {
		return fmt.Errorf("matching questions need at least two pairs")
	}
	for i, p := range d.Pairs {
		if strings.TrimSpace(p.Left) == "" || strings.TrimSpace(p.Right) == "" {
			return fmt.Errorf("pair %d must have both sides filled in", i+1)
		}
	}
	return nil
}

func (v *DraftValidator) validateReorder(d draft.QuestionDraft) error {
	if len(d.OrderItems) < 2 {
		return fmt.Errorf("reorder questions need at least two items")
	}
	for i, item := range d.OrderItems {
		if strings.TrimSpace(item) == "" {
			return fmt.Errorf("item %d cannot be empty", i+1)
		}
	}
	return nil
}

func (v *DraftValidator) validateFreeText(d draft.QuestionDraft) error {
	if d.MinWords != nil && *d.MinWords < 0 {
		return fmt.Errorf("minimum word count cannot be negative")
	}
	if d.MaxWords != nil && *d.MaxWords < 0 {
		return fmt.Errorf("maximum word count cannot be negative")
	}
	if d.MinWords != nil && d.MaxWords != nil && *d.MinWords > *d.MaxWords {
		return fmt.Errorf("minimum word count cannot be greater than maximum")
	}
	return nil
}

func (v *DraftValidator) validateSpeaking(d draft.QuestionDraft) error {
	if d.MinSeconds != nil && *d.MinSeconds < 0 {
		return fmt.Errorf("minimum duration cannot be negative")
	}
	if d.MaxSeconds != nil && *d.MaxSeconds < 0 {
		return fmt.Errorf("maximum duration cannot be negative")
	}
	if d.MinSeconds != nil && d.MaxSeconds != nil && *d.MinSeconds > *d.MaxSeconds {
		return fmt.Errorf("minimum duration cannot be greater than maximum")
	}
	return nil
}

func (v *DraftValidator) validateInteractiveText(d draft.QuestionDraft) error {
	switch d.InteractiveMode {
	case models.InteractiveBlanks:
		return v.validateInteractiveBlanks(d)
	case models.InteractiveReorder:
		return v.validateInteractiveReorder(d)
	default:
		return fmt.Errorf("interactive text questions need a mode (blanks or reorder)")
	}
}

func (v *DraftValidator) validateInteractiveBlanks(d draft.QuestionDraft) error {
	if strings.TrimSpace(d.Template) == "" {
		return fmt.Errorf("interactive text questions need a template text")
	}

	if len(d.Blanks) < 3 || len(d.Blanks) > 10 {
		return fmt.Errorf("interactive text questions need between 3 and 10 blanks, got %d", len(d.Blanks))
	}

	ids := make([]string, 0, len(d.Blanks))
	seen := make(map[string]bool, len(d.Blanks))
	for i, b := range d.Blanks {
		if strings.TrimSpace(b.ID) == "" {
			return fmt.Errorf("blank %d needs an id", i+1)
		}
		if seen[b.ID] {
			return fmt.Errorf("blank id '%s' is used more than once", b.ID)
		}
		seen[b.ID] = true
		ids = append(ids, b.ID)

		answers := 0
		for _, a := range b.Answers {
			if strings.TrimSpace(a) != "" {
				answers++
			}
		}
		if answers == 0 {
			return fmt.Errorf("blank '%s' needs at least one correct answer", b.ID)
		}

		if b.Kind == models.BlankDropdown && len(b.Choices) < 2 {
			return fmt.Errorf("dropdown blank '%s' needs at least two choices", b.ID)
		}
	}

	return blanks.Verify(d.Template, ids)
}

func (v *DraftValidator) validateInteractiveReorder(d draft.QuestionDraft) error {
	if len(d.Parts) < 2 {
		return fmt.Errorf("reorder parts need at least two entries")
	}

	// Order values must form a contiguous 1..N sequence.
	seen := make(map[int]bool, len(d.Parts))
	for i, p := range d.Parts {
		if strings.TrimSpace(p.Text) == "" {
			return fmt.Errorf("part %d text cannot be empty", i+1)
		}
		if p.Order < 1 || p.Order > len(d.Parts) {
			return fmt.Errorf("part order values must be between 1 and %d, got %d", len(d.Parts), p.Order)
		}
		if seen[p.Order] {
			return fmt.Errorf("part order value %d is used more than once", p.Order)
		}
		seen[p.Order] = true
	}
	return nil
}

func (v *DraftValidator) validateCategoryMetadata(d draft.QuestionDraft) error {
	switch d.Category {
	case models.CategoryGrammar:
		if strings.TrimSpace(d.GrammarLevel) == "" {
			return fmt.Errorf("grammar questions need a grammar level")
		}
	case models.CategoryProvider:
		if strings.TrimSpace(d.Provider) == "" {
			return fmt.Errorf("provider questions need a provider")
		}
		if strings.TrimSpace(d.Level) == "" {
			return fmt.Errorf("provider questions need a level")
		}
		if strings.TrimSpace(d.Skill) == "" {
			return fmt.Errorf("provider questions need a skill")
		}
	case models.CategoryStateSpecific:
		if strings.TrimSpace(d.Region) == "" {
			return fmt.Errorf("state specific questions need a selected region")
		}
	}
	return nil
}
