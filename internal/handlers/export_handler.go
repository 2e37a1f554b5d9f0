package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Hayatzendah/essam-question-engine/internal/services"
	"github.com/Hayatzendah/essam-question-engine/internal/utils"
)

type ExportHandler struct {
	BaseHandler
	exportService services.ExportService
}

func NewExportHandler(exportService services.ExportService, logger utils.Logger) *ExportHandler {
	return &ExportHandler{
		BaseHandler:   NewBaseHandler(logger),
		exportService: exportService,
	}
}

// ExportQuestionsRequest selects the questions and spreadsheet format
type ExportQuestionsRequest struct {
	QuestionIDs []uint `json:"question_ids" validate:"required,min=1"`
	Format      string `json:"format" validate:"omitempty,oneof=xlsx csv"`
}

// ExportQuestions writes the selected questions as a spreadsheet download
// @Summary Export questions
// @Tags questions
// @Accept json
// @Produce application/octet-stream
// @Param request body ExportQuestionsRequest true "Export selection"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /questions/export [post]
func (h *ExportHandler) ExportQuestions(c *gin.Context) {
	var req ExportQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request payload", err, err.Error())
		return
	}
	if len(req.QuestionIDs) == 0 {
		h.RespondWithError(c, http.StatusBadRequest, "No question IDs given", nil)
		return
	}

	format := req.Format
	if format == "" {
		format = "xlsx"
	}

	var (
		data        []byte
		err         error
		contentType string
	)
	switch format {
	case "csv":
		data, err = h.exportService.ExportQuestionsToCSV(c.Request.Context(), req.QuestionIDs)
		contentType = "text/csv"
	default:
		data, err = h.exportService.ExportQuestionsToExcel(c.Request.Context(), req.QuestionIDs)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("questions_%s.%s", time.Now().Format("20060102_150405"), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, contentType, data)
}
