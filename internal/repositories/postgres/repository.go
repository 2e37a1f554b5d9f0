package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/Hayatzendah/essam-question-engine/internal/repositories"
)

// Repository is the gorm-backed aggregate of all repositories.
type Repository struct {
	db       *gorm.DB
	question repositories.QuestionRepository
	exam     repositories.ExamRepository
}

func NewRepository(db *gorm.DB) repositories.Repository {
	return &Repository{
		db:       db,
		question: NewQuestionPostgreSQL(db),
		exam:     NewExamPostgreSQL(db),
	}
}

func (r *Repository) Question() repositories.QuestionRepository {
	return r.question
}

func (r *Repository) Exam() repositories.ExamRepository {
	return r.exam
}

func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
