package models

import (
	"time"

	"gorm.io/datatypes"
)

// Exam is a published exam a question can be linked to. Sections are kept as a
// JSONB list because the section layout differs per provider and level.
type Exam struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Title    string `json:"title" gorm:"not null;size:200"`
	Provider string `json:"provider" gorm:"not null;index"`
	Level    string `json:"level" gorm:"not null"`

	Sections datatypes.JSON `json:"sections" gorm:"type:jsonb"` // []ExamSection

	CreatedBy string    `json:"created_by" gorm:"size:100"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Exam) TableName() string {
	return "exams"
}

// ExamSection is one skill section of an exam. ListeningClipID is set once the
// section's audio has been uploaded.
type ExamSection struct {
	Key             string `json:"key"`
	Skill           string `json:"skill"`
	Teil            int    `json:"teil"`
	ListeningClipID string `json:"listeningClipId,omitempty"`
}

// ExamLink identifies the exam section a question is being created under.
type ExamLink struct {
	ExamID     uint   `json:"exam_id"`
	SectionKey string `json:"section_key"`
	Teil       int    `json:"teil"`
}
