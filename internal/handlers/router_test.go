package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hayatzendah/essam-question-engine/internal/models"
	"github.com/Hayatzendah/essam-question-engine/internal/repositories"
	"github.com/Hayatzendah/essam-question-engine/internal/services"
	"github.com/Hayatzendah/essam-question-engine/internal/utils"
	"github.com/Hayatzendah/essam-question-engine/internal/validator"
)

// ===== SERVICE STUBS =====

type stubQuestionService struct {
	created     *services.QuestionResponse
	validateErr error
	createErr   error
}

func (s *stubQuestionService) Create(ctx context.Context, req *services.CreateQuestionRequest, link *models.ExamLink, creatorID string) (*services.QuestionResponse, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.created, nil
}

func (s *stubQuestionService) Update(ctx context.Context, id uint, req *services.CreateQuestionRequest, updatedBy string) (*services.QuestionResponse, error) {
	if s.created == nil || s.created.ID != id {
		return nil, services.ErrQuestionNotFound
	}
	return s.created, nil
}

func (s *stubQuestionService) Validate(ctx context.Context, req *services.CreateQuestionRequest) error {
	return s.validateErr
}

func (s *stubQuestionService) GetByID(ctx context.Context, id uint) (*services.QuestionResponse, error) {
	if s.created == nil || s.created.ID != id {
		return nil, services.ErrQuestionNotFound
	}
	return s.created, nil
}

func (s *stubQuestionService) List(ctx context.Context, filters repositories.QuestionFilters) (*services.ListQuestionsResponse, error) {
	return &services.ListQuestionsResponse{Limit: filters.Limit}, nil
}

func (s *stubQuestionService) Delete(ctx context.Context, id uint, deletedBy string) error {
	if s.created == nil || s.created.ID != id {
		return services.ErrQuestionNotFound
	}
	return nil
}

type stubEnumService struct{}

func (stubEnumService) Get(ctx context.Context) (*models.EnumTable, error) {
	return models.DefaultEnumTable(), nil
}
func (stubEnumService) Invalidate(ctx context.Context) error { return nil }

type stubExportService struct{}

func (stubExportService) ExportQuestionsToExcel(ctx context.Context, ids []uint) ([]byte, error) {
	return []byte("xlsx"), nil
}
func (stubExportService) ExportQuestionsToCSV(ctx context.Context, ids []uint) ([]byte, error) {
	return []byte("csv"), nil
}

type stubServiceManager struct {
	question services.QuestionService
}

func (m *stubServiceManager) Question() services.QuestionService { return m.question }
func (m *stubServiceManager) Practice() services.PracticeService {
	return services.NewPracticeService(utils.NewDefaultLogger())
}
func (m *stubServiceManager) Enums() services.EnumService   { return stubEnumService{} }
func (m *stubServiceManager) Export() services.ExportService { return stubExportService{} }

func newTestRouter(question services.QuestionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	hm := NewHandlerManager(&stubServiceManager{question: question}, validator.New(), utils.NewDefaultLogger())
	hm.SetupRoutes(router)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ===== TESTS =====

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(&stubQuestionService{})

	w := doRequest(t, router, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "question-engine")
}

func TestGetEnums(t *testing.T) {
	router := newTestRouter(&stubQuestionService{})

	w := doRequest(t, router, http.MethodGet, "/api/v1/enums", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	table, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, table["skills"], "hoeren")
}

func TestCreateQuestion(t *testing.T) {
	created := &services.QuestionResponse{ID: 5, Type: models.MultipleChoice, Prompt: "Testfrage", Points: 1}
	router := newTestRouter(&stubQuestionService{created: created})

	body := `{"type_label":"Multiple Choice","prompt":"Testfrage","usage_category":"common","options":[{"text":"A","isCorrect":true},{"text":"B"}]}`
	w := doRequest(t, router, http.MethodPost, "/api/v1/questions", body)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Testfrage")
}

func TestCreateQuestion_InvalidJSON(t *testing.T) {
	router := newTestRouter(&stubQuestionService{})

	w := doRequest(t, router, http.MethodPost, "/api/v1/questions", "{not json")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateQuestion_ValidationFailure(t *testing.T) {
	svc := &stubQuestionService{
		createErr: fmt.Errorf("%w: question prompt is required", services.ErrValidationFailed),
	}
	router := newTestRouter(svc)

	body := `{"type_label":"Multiple Choice","prompt":"x"}`
	w := doRequest(t, router, http.MethodPost, "/api/v1/questions", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateQuestion(t *testing.T) {
	created := &services.QuestionResponse{ID: 5, Type: models.MultipleChoice, Prompt: "Testfrage", Points: 1}
	router := newTestRouter(&stubQuestionService{created: created})

	body := `{"type_label":"Multiple Choice","prompt":"Testfrage","usage_category":"common","options":[{"text":"A","isCorrect":true},{"text":"B"}]}`
	w := doRequest(t, router, http.MethodPut, "/api/v1/questions/5", body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "updated")
}

func TestUpdateQuestion_NotFound(t *testing.T) {
	router := newTestRouter(&stubQuestionService{})

	body := `{"type_label":"Multiple Choice","prompt":"x"}`
	w := doRequest(t, router, http.MethodPut, "/api/v1/questions/42", body)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestValidateQuestion_Failure(t *testing.T) {
	svc := &stubQuestionService{
		validateErr: fmt.Errorf("%w: points must be a positive number", services.ErrValidationFailed),
	}
	router := newTestRouter(svc)

	body := `{"type_label":"Multiple Choice","prompt":"x"}`
	w := doRequest(t, router, http.MethodPost, "/api/v1/questions/validate", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "points must be a positive number")
}

func TestGetQuestion_NotFound(t *testing.T) {
	router := newTestRouter(&stubQuestionService{})

	w := doRequest(t, router, http.MethodGet, "/api/v1/questions/42", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetQuestion_BadID(t *testing.T) {
	router := newTestRouter(&stubQuestionService{})

	w := doRequest(t, router, http.MethodGet, "/api/v1/questions/abc", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateExamQuestion_RequiresSectionKey(t *testing.T) {
	router := newTestRouter(&stubQuestionService{})

	body := `{"type_label":"Multiple Choice","prompt":"x"}`
	w := doRequest(t, router, http.MethodPost, "/api/v1/exams/7/questions", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Section key is required")
}

func TestGradePractice(t *testing.T) {
	router := newTestRouter(&stubQuestionService{})

	body := `{"items":[
		{"type":"true_false","correct":{"value":true},"answer":{"value":true}},
		{"type":"fill","correct":{"value":"gehe"},"answer":{"text":"GEHE"}}
	]}`
	w := doRequest(t, router, http.MethodPost, "/api/v1/practice/grade", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(2), data["correct"])
	assert.Equal(t, float64(100), data["percent"])
}

func TestGradePractice_UnsupportedType(t *testing.T) {
	router := newTestRouter(&stubQuestionService{})

	body := `{"items":[{"type":"free_text","correct":{},"answer":{}}]}`
	w := doRequest(t, router, http.MethodPost, "/api/v1/practice/grade", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
