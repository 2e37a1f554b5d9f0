package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Hayatzendah/essam-question-engine/internal/models"
	"github.com/Hayatzendah/essam-question-engine/internal/repositories"
	"github.com/Hayatzendah/essam-question-engine/internal/services"
	"github.com/Hayatzendah/essam-question-engine/internal/utils"
	"github.com/Hayatzendah/essam-question-engine/internal/validator"
)

type QuestionHandler struct {
	BaseHandler
	questionService services.QuestionService
	validator       *validator.Validator
}

func NewQuestionHandler(
	questionService services.QuestionService,
	validator *validator.Validator,
	logger utils.Logger,
) *QuestionHandler {
	return &QuestionHandler{
		BaseHandler:     NewBaseHandler(logger),
		questionService: questionService,
		validator:       validator,
	}
}

// CreateQuestion creates a standalone question
// @Summary Create question
// @Tags questions
// @Accept json
// @Produce json
// @Param question body services.CreateQuestionRequest true "Question data"
// @Success 201 {object} SuccessResponse{data=services.QuestionResponse}
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /questions [post]
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req services.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request payload", err, err.Error())
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Validation failed", err, err.Error())
		return
	}

	question, err := h.questionService.Create(c.Request.Context(), &req, nil, creatorID(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusCreated, "Question created successfully", question)
}

// CreateExamQuestion creates a question attached to an exam section
// @Summary Create question in exam section
// @Tags questions
// @Accept json
// @Produce json
// @Param id path int true "Exam ID"
// @Param section query string true "Section key"
// @Param question body services.CreateQuestionRequest true "Question data"
// @Success 201 {object} SuccessResponse{data=services.QuestionResponse}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /exams/{id}/questions [post]
func (h *QuestionHandler) CreateExamQuestion(c *gin.Context) {
	examID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid exam ID", err)
		return
	}

	sectionKey := c.Query("section")
	if sectionKey == "" {
		h.RespondWithError(c, http.StatusBadRequest, "Section key is required", nil)
		return
	}

	var req services.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request payload", err, err.Error())
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Validation failed", err, err.Error())
		return
	}

	link := &models.ExamLink{
		ExamID:     uint(examID),
		SectionKey: sectionKey,
		Teil:       req.Teil,
	}

	question, err := h.questionService.Create(c.Request.Context(), &req, link, creatorID(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusCreated, "Question created successfully", question)
}

// UpdateQuestion replaces an existing question
// @Summary Update question
// @Tags questions
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param question body services.CreateQuestionRequest true "Question data"
// @Success 200 {object} SuccessResponse{data=services.QuestionResponse}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /questions/{id} [put]
func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid question ID", err)
		return
	}

	var req services.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request payload", err, err.Error())
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Validation failed", err, err.Error())
		return
	}

	question, err := h.questionService.Update(c.Request.Context(), uint(id), &req, creatorID(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Question updated successfully", question)
}

// ValidateQuestion runs the authoring validation without persisting
// @Summary Validate question draft
// @Tags questions
// @Accept json
// @Produce json
// @Param question body services.CreateQuestionRequest true "Question data"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /questions/validate [post]
func (h *QuestionHandler) ValidateQuestion(c *gin.Context) {
	var req services.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request payload", err, err.Error())
		return
	}

	if err := h.questionService.Validate(c.Request.Context(), &req); err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Question draft is valid", nil)
}

// GetQuestion retrieves a question by ID
// @Summary Get question
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} SuccessResponse{data=services.QuestionResponse}
// @Failure 404 {object} ErrorResponse
// @Router /questions/{id} [get]
func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid question ID", err)
		return
	}

	question, err := h.questionService.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Question retrieved successfully", question)
}

// ListQuestions retrieves questions with filtering and pagination
// @Summary List questions
// @Tags questions
// @Produce json
// @Success 200 {object} SuccessResponse{data=services.ListQuestionsResponse}
// @Router /questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	filters := repositories.QuestionFilters{
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	if v := c.Query("type"); v != "" {
		qt := models.QuestionType(v)
		filters.Type = &qt
	}
	if v := c.Query("category"); v != "" {
		cat := models.UsageCategory(v)
		filters.Category = &cat
	}
	if v := c.Query("provider"); v != "" {
		filters.Provider = &v
	}
	if v := c.Query("level"); v != "" {
		filters.Level = &v
	}
	if v := c.Query("skill"); v != "" {
		filters.Skill = &v
	}
	if v := c.Query("created_by"); v != "" {
		filters.CreatedBy = &v
	}
	if limit, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil {
		filters.Limit = limit
	}
	if offset, err := strconv.Atoi(c.DefaultQuery("offset", "0")); err == nil {
		filters.Offset = offset
	}
	if examID, err := strconv.ParseUint(c.Query("exam_id"), 10, 32); err == nil {
		id := uint(examID)
		filters.ExamID = &id
	}

	result, err := h.questionService.List(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Questions retrieved successfully", result)
}

// DeleteQuestion removes a question
// @Summary Delete question
// @Tags questions
// @Param id path int true "Question ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid question ID", err)
		return
	}

	if err := h.questionService.Delete(c.Request.Context(), uint(id), creatorID(c)); err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Question deleted successfully", nil)
}

// creatorID reads the authenticated user set by upstream middleware, falling
// back to the X-User-ID header used by internal tooling.
func creatorID(c *gin.Context) string {
	if userID, exists := c.Get("user_id"); exists {
		if s, ok := userID.(string); ok {
			return s
		}
	}
	return c.GetHeader("X-User-ID")
}
