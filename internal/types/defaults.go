package types

// Defaults returns the canonical empty-state mapping for a resume record:
// every top-level key present, nullable strings as nil, list fields as empty
// lists. Both the input normalizer and the response extractor backfill from
// this single definition so their notion of "empty" cannot drift apart.
// A fresh value is returned on every call; callers may mutate it freely.
func Defaults() map[string]any {
	return map[string]any{
		"contact": map[string]any{
			"full_name": nil,
			"email":     nil,
			"phone":     nil,
			"location":  nil,
			"links":     []any{},
		},
		"summary":         nil,
		"experience":      []any{},
		"projects":        []any{},
		"education":       []any{},
		"skills":          []any{},
		"certifications":  []any{},
		"achievements":    []any{},
		"extracurricular": []any{},
		"languages":       []any{},
		"interests":       []any{},
	}
}
