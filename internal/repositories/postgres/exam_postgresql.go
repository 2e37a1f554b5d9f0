package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Hayatzendah/essam-question-engine/internal/models"
	"github.com/Hayatzendah/essam-question-engine/internal/repositories"
)

type ExamPostgreSQL struct {
	db *gorm.DB
}

func NewExamPostgreSQL(db *gorm.DB) repositories.ExamRepository {
	return &ExamPostgreSQL{db: db}
}

// Create stores a new exam
func (e *ExamPostgreSQL) Create(ctx context.Context, exam *models.Exam) error {
	if err := e.db.WithContext(ctx).Create(exam).Error; err != nil {
		return fmt.Errorf("failed to create exam: %w", err)
	}
	return nil
}

// GetByID retrieves an exam by ID
func (e *ExamPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Exam, error) {
	var exam models.Exam
	if err := e.db.WithContext(ctx).First(&exam, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get exam: %w", err)
	}
	return &exam, nil
}

// GetSections decodes the exam's JSONB section list
func (e *ExamPostgreSQL) GetSections(ctx context.Context, id uint) ([]models.ExamSection, error) {
	exam, err := e.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(exam.Sections) == 0 {
		return nil, nil
	}

	var sections []models.ExamSection
	if err := json.Unmarshal(exam.Sections, &sections); err != nil {
		return nil, fmt.Errorf("failed to decode exam sections: %w", err)
	}
	return sections, nil
}
