package types

import (
	"encoding/json"
	"strings"
)

// InputKind tags how raw pipeline input should be interpreted.
type InputKind string

const (
	// InputStructured means the input parsed as a JSON object and can be
	// normalized directly without an extraction call.
	InputStructured InputKind = "structured"
	// InputFreeText means the input is treated as unstructured text and
	// must go through the extraction call. Ambiguous input always lands
	// here; ambiguity is not an error.
	InputFreeText InputKind = "free_text"
)

// ClassifiedInput is the result of classifying raw input before any oracle
// call is made.
type ClassifiedInput struct {
	Kind   InputKind
	Object map[string]any // populated only when Kind is InputStructured
	Text   string         // trimmed raw input, always populated
}

// ClassifyInput decides whether raw input is a JSON object or free text.
// Only a top-level JSON object counts as structured; arrays, scalars, JSON
// null and unparseable text all classify as free text.
func ClassifyInput(raw string) ClassifiedInput {
	trimmed := strings.TrimSpace(raw)

	// Cheap pre-check: a JSON object must start with '{'.
	if !strings.HasPrefix(trimmed, "{") {
		return ClassifiedInput{Kind: InputFreeText, Text: trimmed}
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(trimmed), &obj); err != nil || obj == nil {
		return ClassifiedInput{Kind: InputFreeText, Text: trimmed}
	}

	return ClassifiedInput{Kind: InputStructured, Object: obj, Text: trimmed}
}
