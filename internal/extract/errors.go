package extract

import "fmt"

// MalformedResponseError indicates the oracle returned text with no
// locatable, parseable JSON object. The orchestrator decides whether this
// triggers a fallback or propagates to the caller.
type MalformedResponseError struct {
	Message string
	Snippet string
	Cause   error
}

func (e *MalformedResponseError) Error() string {
	msg := fmt.Sprintf("malformed oracle response: %s", e.Message)
	if e.Snippet != "" {
		msg += fmt.Sprintf(" (response: %q)", e.Snippet)
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Cause
}
