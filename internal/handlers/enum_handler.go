package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Hayatzendah/essam-question-engine/internal/services"
	"github.com/Hayatzendah/essam-question-engine/internal/utils"
)

type EnumHandler struct {
	BaseHandler
	enumService services.EnumService
}

func NewEnumHandler(enumService services.EnumService, logger utils.Logger) *EnumHandler {
	return &EnumHandler{
		BaseHandler: NewBaseHandler(logger),
		enumService: enumService,
	}
}

// GetEnums returns the enum table the authoring form validates against
// @Summary Get enum table
// @Tags enums
// @Produce json
// @Success 200 {object} SuccessResponse{data=models.EnumTable}
// @Router /enums [get]
func (h *EnumHandler) GetEnums(c *gin.Context) {
	enums, err := h.enumService.Get(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, "Enum table retrieved successfully", enums)
}

// InvalidateEnums drops the cached enum table
// @Summary Invalidate enum cache
// @Tags enums
// @Success 200 {object} SuccessResponse
// @Router /enums/invalidate [post]
func (h *EnumHandler) InvalidateEnums(c *gin.Context) {
	if err := h.enumService.Invalidate(c.Request.Context()); err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, "Enum cache invalidated", nil)
}
