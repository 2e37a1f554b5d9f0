package services

import (
	"errors"

	apperrors "github.com/Hayatzendah/essam-question-engine/internal/errors"
	"github.com/Hayatzendah/essam-question-engine/internal/wire"
)

// ===== COMMON SERVICE ERRORS =====

var (
	// Generic errors
	ErrNotFound         = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrInternalError    = errors.New("internal server error")
	ErrBadRequest       = errors.New("bad request")
	ErrConflict         = errors.New("resource conflict")

	// Question specific errors
	ErrQuestionNotFound    = errors.New("question not found")
	ErrQuestionInvalidType = errors.New("invalid question type")
	ErrQuestionDuplicate   = errors.New("question with this prompt already exists for this creator")

	// Exam linkage errors
	ErrExamNotFound    = errors.New("exam not found")
	ErrSectionNotFound = errors.New("exam section not found")

	// Practice errors
	ErrPracticeUnsupportedType = errors.New("question type does not support practice grading")
)

// ===== CUSTOM ERROR TYPES =====

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

// NewValidationError creates a new validation error using the shared type
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return apperrors.NewValidationError(field, message, value)
}

// ===== ERROR HELPERS =====

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrQuestionNotFound) ||
		errors.Is(err, ErrExamNotFound) ||
		errors.Is(err, ErrSectionNotFound)
}

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	if errors.Is(err, ErrValidationFailed) {
		return true
	}
	var ve apperrors.ValidationErrors
	return errors.As(err, &ve)
}

// IsMissingClip checks if error represents an unresolvable listening clip
func IsMissingClip(err error) bool {
	var mce *wire.MissingClipError
	return errors.As(err, &mce)
}

// IsInvariant checks if error represents a normalization invariant violation
func IsInvariant(err error) bool {
	var ie *wire.InvariantError
	return errors.As(err, &ie)
}

// IsUnmappedLabel checks if error represents an unknown question type label
func IsUnmappedLabel(err error) bool {
	var ule *wire.UnmappedLabelError
	return errors.As(err, &ule)
}
