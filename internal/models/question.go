package models

import (
	"time"

	"gorm.io/datatypes"
)

// QuestionType is the closed set of supported question variants.
type QuestionType string

const (
	MultipleChoice  QuestionType = "mcq"
	TrueFalse       QuestionType = "true_false"
	FillBlank       QuestionType = "fill"
	Matching        QuestionType = "match"
	Reorder         QuestionType = "reorder"
	FreeText        QuestionType = "free_text"
	Speaking        QuestionType = "speaking"
	InteractiveText QuestionType = "interactive_text"
)

// AllQuestionTypes lists every member of the closed variant set in a stable order.
var AllQuestionTypes = []QuestionType{
	MultipleChoice,
	TrueFalse,
	FillBlank,
	Matching,
	Reorder,
	FreeText,
	Speaking,
	InteractiveText,
}

// IsValidQuestionType reports whether t belongs to the closed variant set.
func IsValidQuestionType(t QuestionType) bool {
	for _, valid := range AllQuestionTypes {
		if t == valid {
			return true
		}
	}
	return false
}

// UsageCategory classifies a question and determines which metadata is mandatory.
type UsageCategory string

const (
	CategoryGrammar       UsageCategory = "grammar"
	CategoryProvider      UsageCategory = "provider"
	CategoryCommon        UsageCategory = "common"
	CategoryStateSpecific UsageCategory = "state_specific"
)

// AllUsageCategories lists every usage category.
var AllUsageCategories = []UsageCategory{
	CategoryGrammar,
	CategoryProvider,
	CategoryCommon,
	CategoryStateSpecific,
}

// IsValidUsageCategory reports whether c belongs to the closed category set.
func IsValidUsageCategory(c UsageCategory) bool {
	for _, valid := range AllUsageCategories {
		if c == valid {
			return true
		}
	}
	return false
}

// InteractiveMode selects which sub-engine an interactive_text question uses.
type InteractiveMode string

const (
	InteractiveBlanks  InteractiveMode = "blanks"
	InteractiveReorder InteractiveMode = "reorder"
)

// BlankKind is the input widget rendered for a fill-blank placeholder.
type BlankKind string

const (
	BlankTextInput BlankKind = "textInput"
	BlankDropdown  BlankKind = "dropdown"
)

// ===== VARIANT CONTENT SHAPES =====

// MCQOption is one answer option of a multiple-choice question.
type MCQOption struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

// MatchPair is one left/right pairing of a matching question.
type MatchPair struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// Blank defines one placeholder of an interactive-text fill-blanks question.
// ID must appear literally as {{id}} in the template text.
type Blank struct {
	ID      string    `json:"id"`
	Kind    BlankKind `json:"kind"`
	Answers []string  `json:"answers"`
	Choices []string  `json:"choices,omitempty"` // dropdown only
}

// ReorderPart is one fragment of an interactive-text reorder question.
// Order values of a question's parts must form a contiguous 1..N sequence.
type ReorderPart struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Order int    `json:"order"`
}

// ===== WELL-KNOWN PROVIDER / SKILL CODES =====

const (
	// ProviderGrammar is the fixed provider label forced onto grammar-category
	// questions.
	ProviderGrammar = "grammatik"

	// ProviderLifeInCountry is the fixed provider identifier forced onto
	// common and state_specific (Leben in Deutschland) questions.
	ProviderLifeInCountry = "leben-in-deutschland-test"

	// SkillListening is the listening skill code; provider questions with this
	// skill must carry a listening clip reference.
	SkillListening = "hoeren"

	// SkillGrammarSentinel is the sentinel skill stamped onto grammar-category
	// payloads in place of a real exam skill.
	SkillGrammarSentinel = "grammatik"

	// SkillMainSentinel is the fixed main-skill sentinel stamped onto
	// Leben-in-Deutschland payloads.
	SkillMainSentinel = "allgemein"
)

// ===== PERSISTED QUESTION =====

// Question is the stored form of a normalized question payload.
type Question struct {
	ID       uint          `json:"id" gorm:"primaryKey"`
	Type     QuestionType  `json:"question_type" gorm:"column:question_type;not null;index"`
	Prompt   string        `json:"prompt" gorm:"not null;size:2000"`
	Points   int           `json:"points" gorm:"not null;default:1"`
	Category UsageCategory `json:"usage_category" gorm:"column:usage_category;not null;index"`

	Explanation *string `json:"explanation,omitempty" gorm:"size:2000"`

	// Exam-style metadata. Provider is stored lower-case.
	Provider   string `json:"provider" gorm:"index"`
	Level      string `json:"level"`
	Skill      string `json:"skill"`
	TeilNumber int    `json:"teil_number"`

	// Tags and the full normalized payload, both JSONB.
	Tags    datatypes.JSON `json:"tags" gorm:"type:jsonb"`
	Payload datatypes.JSON `json:"payload" gorm:"type:jsonb;not null"`

	// Exam linkage, set only for exam-linked questions.
	ExamID     *uint   `json:"exam_id,omitempty" gorm:"index"`
	SectionKey *string `json:"section_key,omitempty" gorm:"size:100"`

	ListeningClipID *string `json:"listening_clip_id,omitempty" gorm:"size:100"`

	CreatedBy string    `json:"created_by" gorm:"size:100;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Question) TableName() string {
	return "questions"
}
