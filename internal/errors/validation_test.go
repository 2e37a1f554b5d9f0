package errors

import (
	"testing"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("prompt", "cannot be empty", "")

	if err.Field != "prompt" {
		t.Errorf("Expected field to be 'prompt', got '%s'", err.Field)
	}

	if err.Message != "cannot be empty" {
		t.Errorf("Expected message to be 'cannot be empty', got '%s'", err.Message)
	}

	expected := "validation error on field 'prompt': cannot be empty"
	if err.Error() != expected {
		t.Errorf("Expected error message to be '%s', got '%s'", expected, err.Error())
	}
}

func TestValidationErrors(t *testing.T) {
	var errs ValidationErrors
	if errs.Error() != "validation failed" {
		t.Errorf("Expected 'validation failed' for empty errors, got '%s'", errs.Error())
	}

	errs = append(errs, *NewValidationError("prompt", "cannot be empty", nil))
	expected := "validation failed: prompt cannot be empty"
	if errs.Error() != expected {
		t.Errorf("Expected '%s' for single error, got '%s'", expected, errs.Error())
	}

	errs = append(errs, *NewValidationError("points", "must be positive", nil))
	expected = "validation failed: 2 field errors"
	if errs.Error() != expected {
		t.Errorf("Expected '%s' for multiple errors, got '%s'", expected, errs.Error())
	}
}

func TestNewValidationErrorWithRule(t *testing.T) {
	err := NewValidationErrorWithRule("question_type", "must be a valid question type", "question_type", "essay")

	if err.Rule != "question_type" {
		t.Errorf("Expected rule to be 'question_type', got '%s'", err.Rule)
	}

	if err.Field != "question_type" {
		t.Errorf("Expected field to be 'question_type', got '%s'", err.Field)
	}
}
