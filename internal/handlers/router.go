package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Hayatzendah/essam-question-engine/internal/services"
	"github.com/Hayatzendah/essam-question-engine/internal/utils"
	"github.com/Hayatzendah/essam-question-engine/internal/validator"
)

type HandlerManager struct {
	questionHandler *QuestionHandler
	practiceHandler *PracticeHandler
	enumHandler     *EnumHandler
	exportHandler   *ExportHandler
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	validator *validator.Validator,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		questionHandler: NewQuestionHandler(serviceManager.Question(), validator, logger),
		practiceHandler: NewPracticeHandler(serviceManager.Practice(), validator, logger),
		enumHandler:     NewEnumHandler(serviceManager.Enums(), logger),
		exportHandler:   NewExportHandler(serviceManager.Export(), logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1")
	{
		questions := v1.Group("/questions")
		{
			questions.POST("", hm.questionHandler.CreateQuestion)
			questions.POST("/validate", hm.questionHandler.ValidateQuestion)
			questions.POST("/export", hm.exportHandler.ExportQuestions)
			questions.GET("", hm.questionHandler.ListQuestions)
			questions.GET("/:id", hm.questionHandler.GetQuestion)
			questions.PUT("/:id", hm.questionHandler.UpdateQuestion)
			questions.DELETE("/:id", hm.questionHandler.DeleteQuestion)
		}

		exams := v1.Group("/exams")
		{
			exams.POST("/:id/questions", hm.questionHandler.CreateExamQuestion)
		}

		practice := v1.Group("/practice")
		{
			practice.POST("/grade", hm.practiceHandler.GradePractice)
		}

		enums := v1.Group("/enums")
		{
			enums.GET("", hm.enumHandler.GetEnums)
			enums.POST("/invalidate", hm.enumHandler.InvalidateEnums)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "question-engine",
		})
	})
}
