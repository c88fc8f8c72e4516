// Package normalize converts arbitrary caller-supplied JSON into the
// canonical resume shape. Malformed shapes degrade to defaults; this package
// never panics and never returns an error.
package normalize

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// sentenceEndRe matches sentence-ending punctuation followed by whitespace,
// used to derive bullets from free-text descriptions.
var sentenceEndRe = regexp.MustCompile(`([.!?])\s+`)

// Normalize maps an untyped JSON value to the canonical resume shape.
// Missing sections are filled from the shared defaults; non-mapping input
// yields the full default shape.
func Normalize(raw any) map[string]any {
	normalized := types.Defaults()

	data, ok := raw.(map[string]any)
	if !ok {
		return normalized
	}

	normalized["contact"] = normalizeContact(data["contact"])
	if summary := trimmedString(data["summary"]); summary != "" {
		normalized["summary"] = summary
	}
	normalized["experience"] = normalizeExperience(data["experience"])
	normalized["education"] = normalizeEducation(data["education"])
	normalized["projects"] = normalizeProjects(data["projects"])
	normalized["skills"] = stringList(data["skills"])
	normalized["certifications"] = mappingList(data["certifications"])
	normalized["achievements"] = stringList(data["achievements"])
	normalized["languages"] = stringList(data["languages"])
	normalized["interests"] = stringList(data["interests"])

	extracurricular := stringList(data["extracurricular"])
	if len(extracurricular) == 0 {
		// Fall back to common alternate section names.
		if alt := stringList(data["volunteering"]); len(alt) > 0 {
			extracurricular = alt
		} else if alt := stringList(data["volunteer"]); len(alt) > 0 {
			extracurricular = alt
		}
	}
	normalized["extracurricular"] = extracurricular

	return normalized
}

func normalizeContact(raw any) map[string]any {
	contact := types.Defaults()["contact"].(map[string]any)

	data, ok := raw.(map[string]any)
	if !ok {
		return contact
	}

	fullName := trimmedString(data["full_name"])
	if fullName == "" {
		fullName = trimmedString(data["name"])
	}
	contact["full_name"] = nullableString(fullName)
	contact["email"] = nullableString(trimmedString(data["email"]))
	contact["phone"] = nullableString(trimmedString(data["phone"]))
	contact["location"] = nullableString(trimmedString(data["location"]))
	contact["links"] = normalizeLinks(data["links"])

	return contact
}

// normalizeLinks accepts either an ordered list or a keyed mapping of
// link-like values and flattens them to a list of non-empty strings.
// Mapping keys are discarded; entries that yield no usable string are dropped.
func normalizeLinks(raw any) []any {
	var entries []any
	switch v := raw.(type) {
	case []any:
		entries = v
	case map[string]any:
		for _, key := range sortedKeys(v) {
			entries = append(entries, v[key])
		}
	default:
		return []any{}
	}

	links := []any{}
	for _, entry := range entries {
		var value string
		switch e := entry.(type) {
		case map[string]any:
			for _, key := range []string{"value", "url", "link", "href"} {
				if value = stringify(e[key]); value != "" {
					break
				}
			}
		case string:
			value = strings.TrimSpace(e)
		default:
			value = stringify(entry)
		}
		if value != "" {
			links = append(links, value)
		}
	}
	return links
}

func normalizeExperience(raw any) []any {
	entries, ok := raw.([]any)
	if !ok {
		return []any{}
	}

	normalized := []any{}
	for _, entry := range entries {
		exp, ok := entry.(map[string]any)
		if !ok {
			continue
		}

		title := trimmedString(exp["title"])
		if title == "" {
			title = trimmedString(exp["job_title"])
		}

		normalized = append(normalized, map[string]any{
			"title":           nullableString(title),
			"company":         nullableString(trimmedString(exp["company"])),
			"location":        nullableString(trimmedString(exp["location"])),
			"start_date":      nullableString(stringify(exp["start_date"])),
			"end_date":        nullableString(stringify(exp["end_date"])),
			"current":         exp["current"] == true,
			"bullets":         normalizeBullets(exp),
			"technologies":    stringList(exp["technologies"]),
			"employment_type": nullableString(trimmedString(exp["employment_type"])),
		})
	}
	return normalized
}

func normalizeEducation(raw any) []any {
	entries, ok := raw.([]any)
	if !ok {
		return []any{}
	}

	normalized := []any{}
	for _, entry := range entries {
		edu, ok := entry.(map[string]any)
		if !ok {
			continue
		}

		endDate := stringify(edu["end_date"])
		if endDate == "" {
			endDate = stringify(edu["graduation_year"])
		}

		normalized = append(normalized, map[string]any{
			"institution": nullableString(trimmedString(edu["institution"])),
			"degree":      nullableString(trimmedString(edu["degree"])),
			"field":       nullableString(trimmedString(edu["field"])),
			"start_date":  nullableString(stringify(edu["start_date"])),
			"end_date":    nullableString(endDate),
			"gpa":         nullableString(stringify(edu["gpa"])),
		})
	}
	return normalized
}

func normalizeProjects(raw any) []any {
	entries, ok := raw.([]any)
	if !ok {
		return []any{}
	}

	normalized := []any{}
	for _, entry := range entries {
		proj, ok := entry.(map[string]any)
		if !ok {
			continue
		}

		normalized = append(normalized, map[string]any{
			"name":    nullableString(trimmedString(proj["name"])),
			"role":    nullableString(trimmedString(proj["role"])),
			"bullets": normalizeBullets(proj),
			"stack":   stringList(proj["stack"]),
			"link":    nullableString(trimmedString(proj["link"])),
			"outcome": nullableString(trimmedString(proj["outcome"])),
		})
	}
	return normalized
}

// normalizeBullets resolves the bullets for an experience or project entry.
// Explicit bullets win even when empty; only an entry with no bullets key at
// all derives them from a free-text description.
func normalizeBullets(entry map[string]any) []any {
	if _, present := entry["bullets"]; present {
		return stringList(entry["bullets"])
	}
	if description := trimmedString(entry["description"]); description != "" {
		return sentenceBullets(description)
	}
	return []any{}
}

// sentenceBullets splits free text on sentence-ending punctuation followed by
// whitespace, keeping the punctuation with its sentence.
func sentenceBullets(text string) []any {
	parts := sentenceEndRe.Split(text, -1)
	ends := sentenceEndRe.FindAllStringSubmatch(text, -1)

	bullets := []any{}
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if i < len(ends) {
			part += ends[i][1]
		}
		bullets = append(bullets, part)
	}
	return bullets
}

// stringList filters an untyped value down to its non-empty trimmed string
// elements. Anything that is not a list yields an empty list.
func stringList(raw any) []any {
	entries, ok := raw.([]any)
	if !ok {
		return []any{}
	}
	out := []any{}
	for _, entry := range entries {
		if s, ok := entry.(string); ok {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}

// mappingList keeps only the mapping-typed elements of a list.
func mappingList(raw any) []any {
	entries, ok := raw.([]any)
	if !ok {
		return []any{}
	}
	out := []any{}
	for _, entry := range entries {
		if _, ok := entry.(map[string]any); ok {
			out = append(out, entry)
		}
	}
	return out
}

// trimmedString returns the trimmed value when raw is a string, else "".
func trimmedString(raw any) string {
	if s, ok := raw.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// stringify coerces scalars to their trimmed string representation.
// Used for *_date and gpa fields that arrive as numbers.
func stringify(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64, bool, int, int64:
		return fmt.Sprint(v)
	default:
		return ""
	}
}

// sortedKeys returns map keys in sorted order so flattening a keyed link
// mapping is deterministic.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// nullableString maps "" to nil so empty strings never appear in the record.
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
