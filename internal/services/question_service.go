package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/Hayatzendah/essam-question-engine/internal/draft"
	"github.com/Hayatzendah/essam-question-engine/internal/events"
	"github.com/Hayatzendah/essam-question-engine/internal/models"
	"github.com/Hayatzendah/essam-question-engine/internal/repositories"
	"github.com/Hayatzendah/essam-question-engine/internal/utils"
	"github.com/Hayatzendah/essam-question-engine/internal/validator"
	"github.com/Hayatzendah/essam-question-engine/internal/wire"
)

// CreateQuestionRequest mirrors the authoring form state. Either the type
// code or the form's type label must be set; the label is resolved through
// the closed mapping table.
type CreateQuestionRequest struct {
	Type      models.QuestionType `json:"question_type" validate:"omitempty,question_type"`
	TypeLabel string              `json:"type_label"`

	Prompt      string               `json:"prompt" validate:"required"`
	Points      int                  `json:"points" validate:"omitempty,min=1,max=100"`
	Explanation string               `json:"explanation"`
	Category    models.UsageCategory `json:"usage_category" validate:"omitempty,usage_category"`

	Provider     string   `json:"provider"`
	Level        string   `json:"level"`
	Skill        string   `json:"skill"`
	Teil         int      `json:"teil_number"`
	GrammarLevel string   `json:"grammar_level"`
	Region       string   `json:"region"`
	SourceName   string   `json:"source_name"`
	Tags         []string `json:"tags"`
	Images       []string `json:"images"`

	ListeningClipID string `json:"listening_clip_id"`

	Options    []models.MCQOption `json:"options"`
	TrueAnswer *bool              `json:"true_answer"`
	FillExact  string             `json:"fill_exact"`
	RegexList  []string           `json:"regex_list"`
	Pairs      []models.MatchPair `json:"pairs"`
	OrderItems []string           `json:"order_items"`

	SampleAnswer string `json:"sample_answer"`
	MinWords     *int   `json:"min_words"`
	MaxWords     *int   `json:"max_words"`
	MinSeconds   *int   `json:"min_seconds"`
	MaxSeconds   *int   `json:"max_seconds"`

	InteractiveMode models.InteractiveMode `json:"interactive_mode" validate:"omitempty,interactive_mode"`
	Template        string                 `json:"template"`
	Blanks          []models.Blank         `json:"blanks"`
	Parts           []models.ReorderPart   `json:"parts"`
}

// ToDraft converts the request into an authoring draft value.
func (r *CreateQuestionRequest) ToDraft() (draft.QuestionDraft, error) {
	qType := r.Type
	if qType == "" {
		code, err := wire.QuestionTypeFromLabel(r.TypeLabel)
		if err != nil {
			return draft.QuestionDraft{}, err
		}
		qType = code
	}

	d := draft.New(qType)
	d.Prompt = r.Prompt
	if r.Points > 0 {
		d.Points = r.Points
	}
	d.Explanation = r.Explanation
	d.Category = r.Category
	d.Provider = r.Provider
	d.Level = r.Level
	d.Skill = r.Skill
	d.Teil = r.Teil
	d.GrammarLevel = r.GrammarLevel
	d.Region = r.Region
	d.SourceName = r.SourceName
	d.Tags = r.Tags
	d.Images = r.Images
	d.ListeningClipID = r.ListeningClipID

	d.Options = r.Options
	d.TrueAnswer = r.TrueAnswer
	d.FillExact = r.FillExact
	d.RegexList = r.RegexList
	d.Pairs = r.Pairs
	d.OrderItems = r.OrderItems
	d.SampleAnswer = r.SampleAnswer
	d.MinWords = r.MinWords
	d.MaxWords = r.MaxWords
	d.MinSeconds = r.MinSeconds
	d.MaxSeconds = r.MaxSeconds

	if qType == models.InteractiveText {
		if r.InteractiveMode != "" {
			d.InteractiveMode = r.InteractiveMode
		}
		d.Template = r.Template
		d.Blanks = r.Blanks
		d.Parts = r.Parts
	}

	return d, nil
}

// QuestionResponse is the API shape of a stored question.
type QuestionResponse struct {
	ID       uint                 `json:"id"`
	Type     models.QuestionType  `json:"question_type"`
	Prompt   string               `json:"prompt"`
	Points   int                  `json:"points"`
	Category models.UsageCategory `json:"usage_category"`
	Provider string               `json:"provider"`
	Level    string               `json:"level"`
	Skill    string               `json:"skill"`
	Teil     int                  `json:"teil_number"`
	Tags     []string             `json:"tags"`
	Payload  wire.Payload         `json:"payload"`
	ExamID   *uint                `json:"exam_id,omitempty"`
	Created  time.Time            `json:"created_at"`
}

// ListQuestionsResponse wraps a paginated question listing.
type ListQuestionsResponse struct {
	Questions []*QuestionResponse `json:"questions"`
	Total     int64               `json:"total"`
	Limit     int                 `json:"limit"`
	Offset    int                 `json:"offset"`
}

// QuestionService orchestrates the authoring pipeline: validation always
// completes before normalization, normalization before persistence.
type QuestionService interface {
	Create(ctx context.Context, req *CreateQuestionRequest, link *models.ExamLink, creatorID string) (*QuestionResponse, error)
	Update(ctx context.Context, id uint, req *CreateQuestionRequest, updatedBy string) (*QuestionResponse, error)
	Validate(ctx context.Context, req *CreateQuestionRequest) error
	GetByID(ctx context.Context, id uint) (*QuestionResponse, error)
	List(ctx context.Context, filters repositories.QuestionFilters) (*ListQuestionsResponse, error)
	Delete(ctx context.Context, id uint, deletedBy string) error
}

type questionService struct {
	repo      repositories.Repository
	validator *validator.Validator
	enums     EnumService
	publisher events.EventPublisher
	logger    utils.Logger
}

func NewQuestionService(
	repo repositories.Repository,
	v *validator.Validator,
	enums EnumService,
	publisher events.EventPublisher,
	logger utils.Logger,
) QuestionService {
	return &questionService{
		repo:      repo,
		validator: v,
		enums:     enums,
		publisher: publisher,
		logger:    logger,
	}
}

// Create validates, normalizes and persists a question draft, then publishes
// a question.created event. A normalization failure aborts the attempt
// without partial side effects and is not retried.
func (s *questionService) Create(ctx context.Context, req *CreateQuestionRequest, link *models.ExamLink, creatorID string) (*QuestionResponse, error) {
	d, err := req.ToDraft()
	if err != nil {
		return nil, err
	}

	enums, err := s.enums.Get(ctx)
	if err != nil {
		// Enum cross-checks are optional; validate without them.
		s.logger.WarnContext(ctx, "Enum table unavailable", "error", err)
		enums = nil
	}

	if err := s.validator.Draft().Validate(d, enums); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	clipID, err := s.resolveListeningClip(ctx, d, link)
	if err != nil {
		return nil, err
	}

	payload, err := wire.Normalize(d, wire.Options{Link: link, ClipID: clipID})
	if err != nil {
		return nil, err
	}

	question, err := payloadToQuestion(d, payload, link, creatorID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Question().Create(ctx, question); err != nil {
		return nil, fmt.Errorf("failed to persist question: %w", err)
	}

	s.publishCreated(ctx, question)

	s.logger.InfoContext(ctx, "Question created",
		"question_id", question.ID,
		"question_type", question.Type,
		"usage_category", question.Category)

	return questionToResponse(question)
}

// Update replaces an existing question with the re-validated, re-normalized
// draft and publishes a question.updated event. The exam linkage of the
// stored row is kept; only authoring fields change.
func (s *questionService) Update(ctx context.Context, id uint, req *CreateQuestionRequest, updatedBy string) (*QuestionResponse, error) {
	existing, err := s.repo.Question().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}

	link := examLinkFromQuestion(existing)

	d, err := req.ToDraft()
	if err != nil {
		return nil, err
	}

	enums, err := s.enums.Get(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "Enum table unavailable", "error", err)
		enums = nil
	}

	if err := s.validator.Draft().Validate(d, enums); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	clipID, err := s.resolveListeningClip(ctx, d, link)
	if err != nil {
		return nil, err
	}

	payload, err := wire.Normalize(d, wire.Options{Link: link, ClipID: clipID})
	if err != nil {
		return nil, err
	}

	question, err := payloadToQuestion(d, payload, link, existing.CreatedBy)
	if err != nil {
		return nil, err
	}
	question.ID = existing.ID
	question.CreatedAt = existing.CreatedAt

	if err := s.repo.Question().Update(ctx, question); err != nil {
		return nil, fmt.Errorf("failed to update question: %w", err)
	}

	s.publishEvent(ctx, events.EventQuestionUpdated, events.QuestionUpdatedEvent{
		QuestionID: question.ID,
		Type:       question.Type,
		UpdatedBy:  updatedBy,
	})

	s.logger.InfoContext(ctx, "Question updated",
		"question_id", question.ID,
		"question_type", question.Type)

	return questionToResponse(question)
}

// Validate runs the authoring validation without persisting anything. Used
// by the form's dry-run endpoint.
func (s *questionService) Validate(ctx context.Context, req *CreateQuestionRequest) error {
	d, err := req.ToDraft()
	if err != nil {
		return err
	}

	enums, err := s.enums.Get(ctx)
	if err != nil {
		enums = nil
	}

	if err := s.validator.Draft().Validate(d, enums); err != nil {
		return fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}
	return nil
}

func (s *questionService) GetByID(ctx context.Context, id uint) (*QuestionResponse, error) {
	question, err := s.repo.Question().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	return questionToResponse(question)
}

func (s *questionService) List(ctx context.Context, filters repositories.QuestionFilters) (*ListQuestionsResponse, error) {
	if filters.Limit <= 0 || filters.Limit > 100 {
		filters.Limit = 20
	}

	questions, total, err := s.repo.Question().List(ctx, filters)
	if err != nil {
		return nil, err
	}

	responses := make([]*QuestionResponse, 0, len(questions))
	for _, q := range questions {
		resp, err := questionToResponse(q)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}

	return &ListQuestionsResponse{
		Questions: responses,
		Total:     total,
		Limit:     filters.Limit,
		Offset:    filters.Offset,
	}, nil
}

func (s *questionService) Delete(ctx context.Context, id uint, deletedBy string) error {
	if err := s.repo.Question().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrQuestionNotFound
		}
		return err
	}

	s.publishEvent(ctx, events.EventQuestionDeleted, events.QuestionDeletedEvent{
		QuestionID: id,
		DeletedBy:  deletedBy,
	})
	return nil
}

// resolveListeningClip resolves the audio clip for listening questions:
// the linked exam section's clip wins, the draft's explicit pick is the
// fallback. The missing-clip failure itself is raised by the normalizer.
func (s *questionService) resolveListeningClip(ctx context.Context, d draft.QuestionDraft, link *models.ExamLink) (string, error) {
	if d.Category != models.CategoryProvider || !strings.EqualFold(d.Skill, models.SkillListening) {
		return "", nil
	}
	if link == nil {
		return "", nil
	}

	sections, err := s.repo.Exam().GetSections(ctx, link.ExamID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return "", ErrExamNotFound
		}
		return "", err
	}

	for _, section := range sections {
		if section.Key == link.SectionKey {
			return section.ListeningClipID, nil
		}
	}
	return "", ErrSectionNotFound
}

func (s *questionService) publishCreated(ctx context.Context, q *models.Question) {
	s.publishEvent(ctx, events.EventQuestionCreated, events.QuestionCreatedEvent{
		QuestionID: q.ID,
		Type:       q.Type,
		Category:   q.Category,
		Provider:   q.Provider,
		Level:      q.Level,
		Skill:      q.Skill,
		ExamID:     q.ExamID,
		CreatedBy:  q.CreatedBy,
	})
}

// publishEvent publishes best-effort: a broker failure is logged, not
// surfaced, because the question is already persisted.
func (s *questionService) publishEvent(ctx context.Context, eventType events.EventType, data interface{}) {
	event := &events.QuestionEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Source:    "question-engine",
		Version:   "1.0",
		Data:      data,
	}
	if err := s.publisher.PublishQuestionEvent(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish question event",
			"event_type", eventType, "error", err)
	}
}

// examLinkFromQuestion reconstructs the exam linkage of a stored row, or nil
// for standalone questions.
func examLinkFromQuestion(q *models.Question) *models.ExamLink {
	if q.ExamID == nil || q.SectionKey == nil {
		return nil
	}
	return &models.ExamLink{
		ExamID:     *q.ExamID,
		SectionKey: *q.SectionKey,
		Teil:       q.TeilNumber,
	}
}

// payloadToQuestion maps the normalized payload onto the storage row.
func payloadToQuestion(d draft.QuestionDraft, payload wire.Payload, link *models.ExamLink, creatorID string) (*models.Question, error) {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}

	question := &models.Question{
		Type:      d.Type,
		Prompt:    d.Prompt,
		Points:    d.Points,
		Category:  d.Category,
		Payload:   datatypes.JSON(payloadJSON),
		CreatedBy: creatorID,
	}
	if strings.TrimSpace(d.Explanation) != "" {
		explanation := d.Explanation
		question.Explanation = &explanation
	}

	if provider, ok := payload["provider"].(string); ok {
		question.Provider = provider
	}
	if level, ok := payload["level"].(string); ok {
		question.Level = level
	}
	if skill, ok := payload["skill"].(string); ok {
		question.Skill = skill
	}
	if teil, ok := payload[wire.KeyTeilNumber].(int); ok {
		question.TeilNumber = teil
	}

	if tags, ok := payload["tags"].([]string); ok {
		tagsJSON, err := json.Marshal(tags)
		if err != nil {
			return nil, fmt.Errorf("failed to encode tags: %w", err)
		}
		question.Tags = datatypes.JSON(tagsJSON)
	}

	if clip, ok := payload["listeningClipId"].(string); ok && clip != "" {
		question.ListeningClipID = &clip
	}

	if link != nil {
		examID := link.ExamID
		sectionKey := link.SectionKey
		question.ExamID = &examID
		question.SectionKey = &sectionKey
	}

	return question, nil
}

func questionToResponse(q *models.Question) (*QuestionResponse, error) {
	var payload wire.Payload
	if len(q.Payload) > 0 {
		if err := json.Unmarshal(q.Payload, &payload); err != nil {
			return nil, fmt.Errorf("failed to decode stored payload: %w", err)
		}
	}

	var tags []string
	if len(q.Tags) > 0 {
		if err := json.Unmarshal(q.Tags, &tags); err != nil {
			return nil, fmt.Errorf("failed to decode stored tags: %w", err)
		}
	}

	return &QuestionResponse{
		ID:       q.ID,
		Type:     q.Type,
		Prompt:   q.Prompt,
		Points:   q.Points,
		Category: q.Category,
		Provider: q.Provider,
		Level:    q.Level,
		Skill:    q.Skill,
		Teil:     q.TeilNumber,
		Tags:     tags,
		Payload:  payload,
		ExamID:   q.ExamID,
		Created:  q.CreatedAt,
	}, nil
}
