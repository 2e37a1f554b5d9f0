package services

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Hayatzendah/essam-question-engine/internal/models"
	"github.com/Hayatzendah/essam-question-engine/internal/repositories"
	"github.com/Hayatzendah/essam-question-engine/internal/utils"
	"github.com/Hayatzendah/essam-question-engine/internal/wire"
)

// ExportService writes question banks out as spreadsheets for content
// reviewers.
type ExportService interface {
	ExportQuestionsToExcel(ctx context.Context, questionIDs []uint) ([]byte, error)
	ExportQuestionsToCSV(ctx context.Context, questionIDs []uint) ([]byte, error)
}

type exportService struct {
	repo   repositories.Repository
	logger utils.Logger
}

func NewExportService(repo repositories.Repository, logger utils.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

var exportHeaders = []string{
	"Question Type", "Question Text", "Points", "Usage Category",
	"Provider", "Level", "Skill", "Teil", "Tags", "Explanation",
}

func (s *exportService) ExportQuestionsToExcel(ctx context.Context, questionIDs []uint) ([]byte, error) {
	questions, err := s.getQuestionsForExport(ctx, questionIDs)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheetName := "Questions"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}
	f.SetActiveSheet(index)

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for rowIndex, question := range questions {
		row := questionToExportRow(question)
		for colIndex, value := range row {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, rowIndex+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}

	s.logger.InfoContext(ctx, "Questions exported", "format", "xlsx", "count", len(questions))
	return buf.Bytes(), nil
}

func (s *exportService) ExportQuestionsToCSV(ctx context.Context, questionIDs []uint) ([]byte, error) {
	questions, err := s.getQuestionsForExport(ctx, questionIDs)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	if err := writer.Write(exportHeaders); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, question := range questions {
		if err := writer.Write(questionToExportRow(question)); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	s.logger.InfoContext(ctx, "Questions exported", "format", "csv", "count", len(questions))
	return []byte(sb.String()), nil
}

func (s *exportService) getQuestionsForExport(ctx context.Context, questionIDs []uint) ([]*models.Question, error) {
	if len(questionIDs) == 0 {
		return nil, fmt.Errorf("%w: no question IDs given", ErrValidationFailed)
	}

	questions, err := s.repo.Question().GetByIDs(ctx, questionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions for export: %w", err)
	}
	if len(questions) == 0 {
		return nil, ErrQuestionNotFound
	}
	return questions, nil
}

func questionToExportRow(q *models.Question) []string {
	var tags []string
	if len(q.Tags) > 0 {
		_ = json.Unmarshal(q.Tags, &tags)
	}

	explanation := ""
	if q.Explanation != nil {
		explanation = *q.Explanation
	}

	label, err := wire.QuestionTypeLabel(q.Type)
	if err != nil {
		label = string(q.Type)
	}

	return []string{
		label,
		q.Prompt,
		strconv.Itoa(q.Points),
		string(q.Category),
		q.Provider,
		q.Level,
		q.Skill,
		strconv.Itoa(q.TeilNumber),
		strings.Join(tags, ";"),
		explanation,
	}
}
