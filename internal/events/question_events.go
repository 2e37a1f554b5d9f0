package events

import (
	"time"

	"github.com/Hayatzendah/essam-question-engine/internal/models"
)

// EventType represents different types of question lifecycle events
type EventType string

const (
	EventQuestionCreated EventType = "question.created"
	EventQuestionUpdated EventType = "question.updated"
	EventQuestionDeleted EventType = "question.deleted"
)

// QuestionEvent is the envelope published for every question lifecycle change
type QuestionEvent struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Data      interface{}            `json:"data"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// QuestionCreatedEvent is the payload for question.created
type QuestionCreatedEvent struct {
	QuestionID uint                 `json:"question_id"`
	Type       models.QuestionType  `json:"question_type"`
	Category   models.UsageCategory `json:"usage_category"`
	Provider   string               `json:"provider"`
	Level      string               `json:"level"`
	Skill      string               `json:"skill"`
	ExamID     *uint                `json:"exam_id,omitempty"`
	CreatedBy  string               `json:"created_by"`
}

// QuestionUpdatedEvent is the payload for question.updated
type QuestionUpdatedEvent struct {
	QuestionID uint                `json:"question_id"`
	Type       models.QuestionType `json:"question_type"`
	UpdatedBy  string              `json:"updated_by"`
}

// QuestionDeletedEvent is the payload for question.deleted
type QuestionDeletedEvent struct {
	QuestionID uint   `json:"question_id"`
	DeletedBy  string `json:"deleted_by"`
}
