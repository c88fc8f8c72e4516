// Package rendering produces presentation formats (HTML, PDF, DOCX) from a
// validated resume record. Renderers consume the record read-only; their
// failures never affect the pipeline result.
package rendering

import "fmt"

// UnavailableError indicates the underlying document engine for an export is
// not installed or reachable. It only affects that specific export.
type UnavailableError struct {
	Engine  string
	Message string
	Cause   error
}

func (e *UnavailableError) Error() string {
	msg := fmt.Sprintf("%s is unavailable: %s", e.Engine, e.Message)
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}

// TemplateError represents an error locating, parsing or executing a
// rendering template.
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError represents a general rendering failure.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
