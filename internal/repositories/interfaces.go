package repositories

import (
	"context"
	"errors"

	"github.com/Hayatzendah/essam-question-engine/internal/models"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("record not found")

// IsNotFoundError reports whether err represents a missing record.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// ===== SHARED FILTER STRUCTS =====

type QuestionFilters struct {
	Type      *models.QuestionType  `json:"type"`
	Category  *models.UsageCategory `json:"category"`
	Provider  *string               `json:"provider"`
	Level     *string               `json:"level"`
	Skill     *string               `json:"skill"`
	ExamID    *uint                 `json:"exam_id"`
	CreatedBy *string               `json:"created_by"`
	Limit     int                   `json:"limit"`
	Offset    int                   `json:"offset"`
	SortBy    string                `json:"sort_by"`    // "created_at", "prompt", "provider"
	SortOrder string                `json:"sort_order"` // "asc", "desc"
}

// ===== REPOSITORY INTERFACES =====

// QuestionRepository interface for question-specific operations
type QuestionRepository interface {
	Create(ctx context.Context, question *models.Question) error
	GetByID(ctx context.Context, id uint) (*models.Question, error)
	Update(ctx context.Context, question *models.Question) error
	Delete(ctx context.Context, id uint) error

	List(ctx context.Context, filters QuestionFilters) ([]*models.Question, int64, error)
	GetByExam(ctx context.Context, examID uint) ([]*models.Question, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*models.Question, error)

	ExistsByPrompt(ctx context.Context, prompt string, createdBy string) (bool, error)
}

// ExamRepository interface for exam linkage lookups
type ExamRepository interface {
	Create(ctx context.Context, exam *models.Exam) error
	GetByID(ctx context.Context, id uint) (*models.Exam, error)
	GetSections(ctx context.Context, id uint) ([]models.ExamSection, error)
}

// Repository aggregates all repositories behind one accessor
type Repository interface {
	Question() QuestionRepository
	Exam() ExamRepository

	Ping(ctx context.Context) error
}
