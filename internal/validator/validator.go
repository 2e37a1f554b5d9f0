package validator

import (
	"reflect"
	"strings"

	"github.com/Hayatzendah/essam-question-engine/internal/models"
	"github.com/go-playground/validator/v10"
)

// Validator combines struct-tag validation for request DTOs with the
// draft-level authoring validation.
type Validator struct {
	structValidator *validator.Validate
	draftValidator  *DraftValidator
}

// New creates a new centralized validator instance
func New() *Validator {
	structValidator := validator.New()
	registerCustomValidators(structValidator)

	return &Validator{
		structValidator: structValidator,
		draftValidator:  NewDraftValidator(),
	}
}

// ValidateStruct validates struct tags only
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.structValidator.Struct(s)
}

// Validate performs struct-tag validation and converts failures to the
// shared error type
func (v *Validator) Validate(s interface{}) error {
	if err := v.structValidator.Struct(s); err != nil {
		if converted := ToValidationErrors(err); len(converted) > 0 {
			return converted
		}
		return err
	}
	return nil
}

// Draft returns the authoring draft validator
func (v *Validator) Draft() *DraftValidator {
	return v.draftValidator
}

// registerCustomValidators registers all custom validation functions
func registerCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("question_type", validateQuestionType)
	validate.RegisterValidation("usage_category", validateUsageCategory)
	validate.RegisterValidation("interactive_mode", validateInteractiveMode)

	// Custom tag name function for better error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateQuestionType(fl validator.FieldLevel) bool {
	return models.IsValidQuestionType(models.QuestionType(fl.Field().String()))
}

func validateUsageCategory(fl validator.FieldLevel) bool {
	return models.IsValidUsageCategory(models.UsageCategory(fl.Field().String()))
}

func validateInteractiveMode(fl validator.FieldLevel) bool {
	value := models.InteractiveMode(fl.Field().String())
	return value == models.InteractiveBlanks || value == models.InteractiveReorder
}
