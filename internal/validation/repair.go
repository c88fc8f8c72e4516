package validation

import "strings"

// Repair applies the fixed, enumerated cleanup actions to a candidate
// mapping: certifications without a usable name are discarded, and skills
// entries that are not non-empty strings are dropped. The input is not
// mutated; a shallow copy with repaired sections is returned. Repair is
// deterministic and applied at most once per pipeline invocation.
func Repair(candidate map[string]any) map[string]any {
	repaired := make(map[string]any, len(candidate))
	for key, value := range candidate {
		repaired[key] = value
	}

	if certs, ok := repaired["certifications"].([]any); ok {
		repaired["certifications"] = dropNamelessCertifications(certs)
	}
	if skills, ok := repaired["skills"].([]any); ok {
		repaired["skills"] = dropBlankStrings(skills)
	}

	return repaired
}

// dropNamelessCertifications keeps only mapping entries carrying a non-empty
// string name. A certification without identity is not a certification.
func dropNamelessCertifications(entries []any) []any {
	kept := []any{}
	for _, entry := range entries {
		cert, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if name, ok := cert["name"].(string); ok && strings.TrimSpace(name) != "" {
			kept = append(kept, cert)
		}
	}
	return kept
}

func dropBlankStrings(entries []any) []any {
	kept := []any{}
	for _, entry := range entries {
		if s, ok := entry.(string); ok && strings.TrimSpace(s) != "" {
			kept = append(kept, s)
		}
	}
	return kept
}
