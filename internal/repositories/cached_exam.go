package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Hayatzendah/essam-question-engine/internal/cache"
	"github.com/Hayatzendah/essam-question-engine/internal/models"
	"github.com/Hayatzendah/essam-question-engine/internal/utils"
)

const sectionCacheTTL = 5 * time.Minute

// cachedExamRepository caches section lookups, which the question submit path
// hits once per exam-linked creation to resolve listening clips.
type cachedExamRepository struct {
	inner  ExamRepository
	cache  cache.CacheService
	logger utils.Logger
}

// WithCachedExams decorates the repository aggregate with section caching.
// Cache failures fall through to the database.
func WithCachedExams(repo Repository, cacheService cache.CacheService, logger utils.Logger) Repository {
	return &cachedRepository{
		Repository: repo,
		exam: &cachedExamRepository{
			inner:  repo.Exam(),
			cache:  cacheService,
			logger: logger,
		},
	}
}

type cachedRepository struct {
	Repository
	exam ExamRepository
}

func (r *cachedRepository) Exam() ExamRepository { return r.exam }

func sectionCacheKey(id uint) string {
	return fmt.Sprintf("exam:sections:%d", id)
}

func (r *cachedExamRepository) Create(ctx context.Context, exam *models.Exam) error {
	if err := r.inner.Create(ctx, exam); err != nil {
		return err
	}
	if err := r.cache.Delete(ctx, sectionCacheKey(exam.ID)); err != nil {
		r.logger.WarnContext(ctx, "Failed to invalidate section cache", "exam_id", exam.ID, "error", err)
	}
	return nil
}

func (r *cachedExamRepository) GetByID(ctx context.Context, id uint) (*models.Exam, error) {
	return r.inner.GetByID(ctx, id)
}

func (r *cachedExamRepository) GetSections(ctx context.Context, id uint) ([]models.ExamSection, error) {
	key := sectionCacheKey(id)

	var sections []models.ExamSection
	err := r.cache.Get(ctx, key, &sections)
	if err == nil {
		return sections, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		r.logger.WarnContext(ctx, "Section cache unavailable", "exam_id", id, "error", err)
	}

	sections, err = r.inner.GetSections(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, key, sections, sectionCacheTTL); err != nil {
		r.logger.WarnContext(ctx, "Failed to cache exam sections", "exam_id", id, "error", err)
	}
	return sections, nil
}
