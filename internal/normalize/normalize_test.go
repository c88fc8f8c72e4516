package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeNonMappingInput(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{"nil input", nil},
		{"string input", "not a mapping"},
		{"list input", []any{"a", "b"}},
		{"number input", 42.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(tt.input)
			assert.Equal(t, []any{}, result["experience"])
			assert.Equal(t, []any{}, result["skills"])
			assert.Nil(t, result["summary"])
			contact := result["contact"].(map[string]any)
			assert.Nil(t, contact["full_name"])
			assert.Equal(t, []any{}, contact["links"])
		})
	}
}

func TestNormalizeContainsAllCanonicalKeys(t *testing.T) {
	// Arbitrary subsets of canonical keys are always completed with defaults.
	result := Normalize(map[string]any{"skills": []any{"Go"}})

	for _, key := range []string{"contact", "summary", "experience", "projects",
		"education", "skills", "certifications", "achievements",
		"extracurricular", "languages", "interests"} {
		assert.Contains(t, result, key)
	}
	assert.Equal(t, []any{"Go"}, result["skills"])
}

func TestNormalizeContactNameFallback(t *testing.T) {
	tests := []struct {
		name     string
		contact  map[string]any
		expected any
	}{
		{"full_name preferred", map[string]any{"full_name": "Jane Lee", "name": "J. Lee"}, "Jane Lee"},
		{"name fallback", map[string]any{"name": "Jane Lee"}, "Jane Lee"},
		{"whitespace full_name falls back", map[string]any{"full_name": "   ", "name": "Jane"}, "Jane"},
		{"neither present", map[string]any{"email": "jane@x.com"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(map[string]any{"contact": tt.contact})
			contact := result["contact"].(map[string]any)
			assert.Equal(t, tt.expected, contact["full_name"])
		})
	}
}

func TestNormalizeLinks(t *testing.T) {
	tests := []struct {
		name     string
		links    any
		expected []any
	}{
		{
			name:     "plain string list",
			links:    []any{" https://a.example ", "https://b.example"},
			expected: []any{"https://a.example", "https://b.example"},
		},
		{
			name:     "keyed mapping flattened",
			links:    map[string]any{"github": "https://gh.example", "blog": "https://blog.example"},
			expected: []any{"https://blog.example", "https://gh.example"},
		},
		{
			name: "mapping entries use first link-like key",
			links: []any{
				map[string]any{"url": "https://url.example"},
				map[string]any{"label": "GitHub", "href": "https://href.example"},
				map[string]any{"value": "https://value.example", "url": "ignored"},
			},
			expected: []any{"https://url.example", "https://href.example", "https://value.example"},
		},
		{
			name:     "unusable entries dropped",
			links:    []any{"", "   ", map[string]any{"label": "nothing"}, nil},
			expected: []any{},
		},
		{
			name:     "non-string scalars coerced",
			links:    []any{12345.0},
			expected: []any{"12345"},
		},
		{
			name:     "non-list non-mapping yields empty",
			links:    "https://single.example",
			expected: []any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(map[string]any{"contact": map[string]any{"links": tt.links}})
			contact := result["contact"].(map[string]any)
			assert.Equal(t, tt.expected, contact["links"])
		})
	}
}

func TestNormalizeExperienceBulletDerivation(t *testing.T) {
	tests := []struct {
		name     string
		entry    map[string]any
		expected []any
	}{
		{
			name:     "explicit bullets win",
			entry:    map[string]any{"bullets": []any{"Did a thing."}, "description": "Ignored. Entirely."},
			expected: []any{"Did a thing."},
		},
		{
			name:     "explicit empty bullets suppress derivation",
			entry:    map[string]any{"bullets": []any{}, "description": "Ignored. Entirely."},
			expected: []any{},
		},
		{
			name:     "bullets derived from description",
			entry:    map[string]any{"description": "Built dashboards. Improved load time by 30%."},
			expected: []any{"Built dashboards.", "Improved load time by 30%."},
		},
		{
			name:     "exclamation and question sentences",
			entry:    map[string]any{"description": "Shipped it! Was it hard? Yes."},
			expected: []any{"Shipped it!", "Was it hard?", "Yes."},
		},
		{
			name:     "no bullets and no description",
			entry:    map[string]any{"title": "Engineer"},
			expected: []any{},
		},
		{
			name:     "non-string bullets filtered",
			entry:    map[string]any{"bullets": []any{"Kept.", 42.0, "", "  "}},
			expected: []any{"Kept."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(map[string]any{"experience": []any{tt.entry}})
			experience := result["experience"].([]any)
			require.Len(t, experience, 1)
			assert.Equal(t, tt.expected, experience[0].(map[string]any)["bullets"])
		})
	}
}

func TestNormalizeExperienceFields(t *testing.T) {
	result := Normalize(map[string]any{
		"experience": []any{
			map[string]any{
				"job_title":  "Engineer",
				"company":    "Acme",
				"start_date": 2021.0,
				"current":    true,
				"technologies": []any{"Go", "", 7.0},
			},
			"not a mapping",
			[]any{"also not a mapping"},
		},
	})

	experience := result["experience"].([]any)
	require.Len(t, experience, 1, "non-mapping entries are skipped entirely")

	entry := experience[0].(map[string]any)
	assert.Equal(t, "Engineer", entry["title"], "job_title fallback applies")
	assert.Equal(t, "Acme", entry["company"])
	assert.Equal(t, "2021", entry["start_date"], "numeric dates coerced to strings")
	assert.Nil(t, entry["end_date"])
	assert.Equal(t, true, entry["current"])
	assert.Equal(t, []any{"Go"}, entry["technologies"])
	assert.Nil(t, entry["employment_type"])
}

func TestNormalizeExperienceCurrentOnlyTrueBool(t *testing.T) {
	tests := []struct {
		name     string
		current  any
		expected bool
	}{
		{"bool true", true, true},
		{"bool false", false, false},
		{"truthy string", "yes", false},
		{"number one", 1.0, false},
		{"absent", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := map[string]any{"title": "Engineer"}
			if tt.current != nil {
				entry["current"] = tt.current
			}
			result := Normalize(map[string]any{"experience": []any{entry}})
			got := result["experience"].([]any)[0].(map[string]any)["current"]
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNormalizeEducation(t *testing.T) {
	result := Normalize(map[string]any{
		"education": []any{
			map[string]any{
				"institution":     "State University",
				"degree":          "BSc",
				"graduation_year": 2020.0,
				"gpa":             3.8,
			},
		},
	})

	education := result["education"].([]any)
	require.Len(t, education, 1)
	entry := education[0].(map[string]any)
	assert.Equal(t, "State University", entry["institution"])
	assert.Equal(t, "2020", entry["end_date"], "graduation_year backs end_date")
	assert.Equal(t, "3.8", entry["gpa"])
	assert.Nil(t, entry["field"])
}

func TestNormalizeProjects(t *testing.T) {
	result := Normalize(map[string]any{
		"projects": []any{
			map[string]any{
				"name":        "Dashboards",
				"description": "Built charts. Added exports.",
				"stack":       []any{"Go", " React ", ""},
			},
			7.0,
		},
	})

	projects := result["projects"].([]any)
	require.Len(t, projects, 1)
	entry := projects[0].(map[string]any)
	assert.Equal(t, "Dashboards", entry["name"])
	assert.Equal(t, []any{"Built charts.", "Added exports."}, entry["bullets"])
	assert.Equal(t, []any{"Go", "React"}, entry["stack"])
}

func TestNormalizeExtracurricularFallback(t *testing.T) {
	tests := []struct {
		name     string
		data     map[string]any
		expected []any
	}{
		{
			name:     "explicit extracurricular wins",
			data:     map[string]any{"extracurricular": []any{"Chess club"}, "volunteering": []any{"Shelter"}},
			expected: []any{"Chess club"},
		},
		{
			name:     "volunteering fallback",
			data:     map[string]any{"volunteering": []any{"Shelter"}},
			expected: []any{"Shelter"},
		},
		{
			name:     "volunteer fallback",
			data:     map[string]any{"volunteer": []any{"Food bank"}},
			expected: []any{"Food bank"},
		},
		{
			name:     "empty extracurricular falls through",
			data:     map[string]any{"extracurricular": []any{}, "volunteer": []any{"Food bank"}},
			expected: []any{"Food bank"},
		},
		{
			name:     "non-list fallback ignored",
			data:     map[string]any{"volunteering": "Shelter"},
			expected: []any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(tt.data)
			assert.Equal(t, tt.expected, result["extracurricular"])
		})
	}
}

func TestNormalizeStringListSections(t *testing.T) {
	result := Normalize(map[string]any{
		"skills":    []any{"Go", "", "  ", 3.0, "SQL "},
		"languages": "not a list",
		"interests": []any{"hiking"},
	})

	assert.Equal(t, []any{"Go", "SQL"}, result["skills"])
	assert.Equal(t, []any{}, result["languages"])
	assert.Equal(t, []any{"hiking"}, result["interests"])
}

func TestNormalizeCertificationsKeepsMappingsOnly(t *testing.T) {
	result := Normalize(map[string]any{
		"certifications": []any{
			map[string]any{"name": "AWS Cert", "issuer": "Amazon"},
			"stray string",
			map[string]any{"issuer": "ACME"},
		},
	})

	certs := result["certifications"].([]any)
	require.Len(t, certs, 2, "only mapping entries survive; name filtering happens at repair time")
	assert.Equal(t, "AWS Cert", certs[0].(map[string]any)["name"])
}

func TestNormalizePreservesSummary(t *testing.T) {
	result := Normalize(map[string]any{"summary": "  Engineer with ten years of Go.  "})
	assert.Equal(t, "Engineer with ten years of Go.", result["summary"])
}
