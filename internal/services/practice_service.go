package services

import (
	"context"
	"fmt"

	"github.com/Hayatzendah/essam-question-engine/internal/practice"
	"github.com/Hayatzendah/essam-question-engine/internal/utils"
)

// GradeBatchRequest carries the practice items of one self-practice round.
type GradeBatchRequest struct {
	Items []practice.GradeInput `json:"items" validate:"required,min=1,dive"`
}

// GradeBatchResponse reports per-item correctness plus the session total.
type GradeBatchResponse struct {
	Results []bool `json:"results"`
	Correct int    `json:"correct"`
	Total   int    `json:"total"`
	Percent int    `json:"percent"`
}

// PracticeService grades ungraded self-practice rounds for immediate
// feedback.
type PracticeService interface {
	GradeBatch(ctx context.Context, req *GradeBatchRequest) (*GradeBatchResponse, error)
}

type practiceService struct {
	logger utils.Logger
}

func NewPracticeService(logger utils.Logger) PracticeService {
	return &practiceService{logger: logger}
}

func (s *practiceService) GradeBatch(ctx context.Context, req *GradeBatchRequest) (*GradeBatchResponse, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: no items to grade", ErrValidationFailed)
	}

	results := make([]bool, 0, len(req.Items))
	for i, item := range req.Items {
		correct, err := practice.Grade(item)
		if err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrPracticeUnsupportedType, i, err)
		}
		results = append(results, correct)
	}

	session := practice.Score(results)

	s.logger.DebugContext(ctx, "Practice round graded",
		"total", session.Total, "correct", session.Correct, "percent", session.Percent)

	return &GradeBatchResponse{
		Results: session.Results,
		Correct: session.Correct,
		Total:   session.Total,
		Percent: session.Percent,
	}, nil
}
