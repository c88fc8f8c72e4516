// Package validation checks candidate resume mappings against the canonical
// schema and applies one bounded, deterministic repair pass on failure.
package validation

import "fmt"

// SchemaViolationError indicates a candidate record failed validation even
// after the single repair pass. Field names the offending location when known.
type SchemaViolationError struct {
	Field   string
	Message string
	Cause   error
}

func (e *SchemaViolationError) Error() string {
	msg := "schema violation"
	if e.Field != "" {
		msg += fmt.Sprintf(" in %s", e.Field)
	}
	msg += fmt.Sprintf(": %s", e.Message)
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *SchemaViolationError) Unwrap() error {
	return e.Cause
}
