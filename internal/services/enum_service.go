package services

import (
	"context"
	"errors"
	"time"

	"github.com/Hayatzendah/essam-question-engine/internal/cache"
	"github.com/Hayatzendah/essam-question-engine/internal/models"
	"github.com/Hayatzendah/essam-question-engine/internal/utils"
)

const (
	enumCacheKey = "enums:table"
	enumCacheTTL = time.Hour
)

// EnumService serves the allowed metadata values (skills, statuses,
// providers, levels) used for draft cross-validation and form dropdowns.
type EnumService interface {
	Get(ctx context.Context) (*models.EnumTable, error)
	Invalidate(ctx context.Context) error
}

type enumService struct {
	cache  cache.CacheService
	logger utils.Logger
}

func NewEnumService(cacheService cache.CacheService, logger utils.Logger) EnumService {
	return &enumService{
		cache:  cacheService,
		logger: logger,
	}
}

// Get returns the enum table, preferring the cached copy. A cache failure
// falls back to the built-in table rather than failing the caller.
func (s *enumService) Get(ctx context.Context) (*models.EnumTable, error) {
	var table models.EnumTable
	err := s.cache.Get(ctx, enumCacheKey, &table)
	if err == nil {
		return &table, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.WarnContext(ctx, "Enum cache unavailable, using defaults", "error", err)
		return models.DefaultEnumTable(), nil
	}

	fresh := models.DefaultEnumTable()
	if err := s.cache.Set(ctx, enumCacheKey, fresh, enumCacheTTL); err != nil {
		s.logger.WarnContext(ctx, "Failed to cache enum table", "error", err)
	}
	return fresh, nil
}

// Invalidate drops the cached table so the next Get refetches it.
func (s *enumService) Invalidate(ctx context.Context) error {
	return s.cache.Delete(ctx, enumCacheKey)
}
