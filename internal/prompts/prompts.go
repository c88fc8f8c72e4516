// Package prompts provides the extraction and rewrite prompt pair used for
// the two oracle phases. Prompt text is externalized as embedded JSON files
// so wording changes never touch Go code.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

// Prompt is a system/user prompt pair ready to send to the oracle.
type Prompt struct {
	System string `json:"system"`
	User   string `json:"user"`
}

var (
	cache   = make(map[string]Prompt)
	cacheMu sync.RWMutex
)

// Extraction returns the prompt pair instructing the oracle to convert free
// text into the canonical JSON structure without inventing data.
func Extraction(rawText string) Prompt {
	p := mustLoad("extraction.json")
	p.User = format(p.User, map[string]string{"RawText": rawText})
	return p
}

// Rewrite returns the prompt pair instructing the oracle to reword the
// existing bullets and summary of a draft without introducing new employers,
// dates, certifications, or skills.
func Rewrite(resumeJSON string) Prompt {
	p := mustLoad("rewrite.json")
	p.User = format(p.User, map[string]string{"ResumeJSON": resumeJSON})
	return p
}

// format replaces {{.Key}} placeholders with values from data.
func format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		result = strings.ReplaceAll(result, fmt.Sprintf("{{.%s}}", key), value)
	}
	return result
}

func mustLoad(filename string) Prompt {
	cacheMu.RLock()
	if p, ok := cache[filename]; ok {
		cacheMu.RUnlock()
		return p
	}
	cacheMu.RUnlock()

	raw, err := promptFiles.ReadFile(filename)
	if err != nil {
		panic(fmt.Sprintf("embedded prompt %s missing: %v", filename, err))
	}
	var p Prompt
	if err := json.Unmarshal(raw, &p); err != nil {
		panic(fmt.Sprintf("embedded prompt %s invalid: %v", filename, err))
	}

	cacheMu.Lock()
	cache[filename] = p
	cacheMu.Unlock()
	return p
}
