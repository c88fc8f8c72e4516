// Package extract recovers a canonical resume mapping from raw oracle output.
// Oracle responses often wrap the JSON object in prose or markdown fencing
// even when instructed not to; this package locates the object, parses it,
// and backfills any missing top-level sections from the canonical defaults.
package extract

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// fencedObjectRe matches a markdown code fence (optionally tagged json)
// wrapping a JSON object.
var fencedObjectRe = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")

// Extract locates and parses the JSON object in raw oracle output and returns
// it with every canonical top-level key present. It returns a
// *MalformedResponseError when no parseable JSON object can be found.
func Extract(rawText string) (map[string]any, error) {
	text := strings.TrimSpace(rawText)

	if match := fencedObjectRe.FindStringSubmatch(text); match != nil {
		text = match[1]
	}

	// Widest brace span, so leading and trailing commentary is discarded.
	if start := strings.Index(text, "{"); start >= 0 {
		if end := strings.LastIndex(text, "}"); end > start {
			text = text[start : end+1]
		}
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(text), &data); err != nil {
		return nil, &MalformedResponseError{
			Message: "no parseable JSON object in response",
			Snippet: snippet(rawText),
			Cause:   err,
		}
	}
	if data == nil {
		return nil, &MalformedResponseError{
			Message: "response parsed to JSON null, not an object",
			Snippet: snippet(rawText),
		}
	}

	// Guarantee a complete shape even when the oracle omitted sections.
	for key, defaultValue := range types.Defaults() {
		if _, present := data[key]; !present {
			data[key] = defaultValue
		}
	}

	return data, nil
}

// snippetLen bounds how much raw response text is carried in errors.
const snippetLen = 120

func snippet(text string) string {
	text = strings.TrimSpace(text)
	if len(text) > snippetLen {
		return text[:snippetLen] + "..."
	}
	return text
}
