package llm

import "fmt"

// APICallError represents a failure of the generation capability: transport,
// auth, rate limit, or an empty response. The pipeline propagates these
// verbatim and never retries them itself.
type APICallError struct {
	Provider   string
	Message    string
	StatusCode int // non-zero for HTTP providers
	Cause      error
}

func (e *APICallError) Error() string {
	msg := fmt.Sprintf("%s API call failed: %s", e.Provider, e.Message)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}
