package services

import (
	"github.com/Hayatzendah/essam-question-engine/internal/cache"
	"github.com/Hayatzendah/essam-question-engine/internal/events"
	"github.com/Hayatzendah/essam-question-engine/internal/repositories"
	"github.com/Hayatzendah/essam-question-engine/internal/utils"
	"github.com/Hayatzendah/essam-question-engine/internal/validator"
)

// ServiceManager bundles the service layer for handler wiring.
type ServiceManager interface {
	Question() QuestionService
	Practice() PracticeService
	Enums() EnumService
	Export() ExportService
}

type serviceManager struct {
	question QuestionService
	practice PracticeService
	enums    EnumService
	export   ExportService
}

func NewServiceManager(
	repo repositories.Repository,
	v *validator.Validator,
	cacheService cache.CacheService,
	publisher events.EventPublisher,
	logger utils.Logger,
) ServiceManager {
	enums := NewEnumService(cacheService, logger)
	cachedRepo := repositories.WithCachedExams(repo, cacheService, logger)
	return &serviceManager{
		question: NewQuestionService(cachedRepo, v, enums, publisher, logger),
		practice: NewPracticeService(logger),
		enums:    enums,
		export:   NewExportService(repo, logger),
	}
}

func (m *serviceManager) Question() QuestionService { return m.question }
func (m *serviceManager) Practice() PracticeService { return m.practice }
func (m *serviceManager) Enums() EnumService        { return m.enums }
func (m *serviceManager) Export() ExportService     { return m.export }
