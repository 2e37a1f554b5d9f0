package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Hayatzendah/essam-question-engine/internal/services"
	"github.com/Hayatzendah/essam-question-engine/internal/utils"
	"github.com/Hayatzendah/essam-question-engine/internal/validator"
)

type PracticeHandler struct {
	BaseHandler
	practiceService services.PracticeService
	validator       *validator.Validator
}

func NewPracticeHandler(
	practiceService services.PracticeService,
	validator *validator.Validator,
	logger utils.Logger,
) *PracticeHandler {
	return &PracticeHandler{
		BaseHandler:     NewBaseHandler(logger),
		practiceService: practiceService,
		validator:       validator,
	}
}

// GradePractice grades a batch of self-practice answers
// @Summary Grade practice round
// @Tags practice
// @Accept json
// @Produce json
// @Param items body services.GradeBatchRequest true "Practice items"
// @Success 200 {object} SuccessResponse{data=services.GradeBatchResponse}
// @Failure 400 {object} ErrorResponse
// @Router /practice/grade [post]
func (h *PracticeHandler) GradePractice(c *gin.Context) {
	var req services.GradeBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request payload", err, err.Error())
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Validation failed", err, err.Error())
		return
	}

	result, err := h.practiceService.GradeBatch(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Practice round graded", result)
}
