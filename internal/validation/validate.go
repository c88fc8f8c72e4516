package validation

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// notblank rejects strings that are empty or whitespace-only; trimmed
	// non-empty strings or explicit absence are the only legal states.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// Validate checks a candidate mapping against the canonical resume schema.
// On failure it applies exactly one deterministic repair pass and revalidates
// once; a second failure surfaces as *SchemaViolationError. The returned
// record always has every list field non-nil.
func Validate(candidate map[string]any) (*types.Resume, error) {
	resume, err := validateOnce(candidate)
	if err == nil {
		return resume, nil
	}

	resume, err = validateOnce(Repair(candidate))
	if err != nil {
		return nil, err
	}
	return resume, nil
}

func validateOnce(candidate map[string]any) (*types.Resume, error) {
	raw, err := json.Marshal(candidate)
	if err != nil {
		return nil, &SchemaViolationError{Message: "candidate is not serializable", Cause: err}
	}

	if err := schemas.ValidateResume(raw); err != nil {
		return nil, asSchemaViolation(err)
	}

	var resume types.Resume
	if err := json.Unmarshal(raw, &resume); err != nil {
		violation := &SchemaViolationError{Message: "candidate does not decode to a resume", Cause: err}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			violation.Field = typeErr.Field
		}
		return nil, violation
	}

	if err := structValidator.Struct(&resume); err != nil {
		return nil, asSchemaViolation(err)
	}

	return resume.Canonicalize(), nil
}

// asSchemaViolation converts schema and struct validation failures into the
// pipeline's error taxonomy, naming the first offending field.
func asSchemaViolation(err error) *SchemaViolationError {
	var schemaErr *schemas.ValidationError
	if errors.As(err, &schemaErr) && len(schemaErr.Errors) > 0 {
		return &SchemaViolationError{
			Field:   schemaErr.Errors[0].Field,
			Message: schemaErr.Errors[0].Message,
			Cause:   err,
		}
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return &SchemaViolationError{
			Field:   fieldErrs[0].Namespace(),
			Message: "failed " + fieldErrs[0].Tag() + " constraint",
			Cause:   err,
		}
	}

	return &SchemaViolationError{Message: "validation failed", Cause: err}
}
