package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func TestValidateAcceptsCanonicalDefaults(t *testing.T) {
	resume, err := Validate(types.Defaults())
	require.NoError(t, err)
	assert.Nil(t, resume.Contact.FullName)
	assert.NotNil(t, resume.Skills, "list fields are never nil on a validated record")
	assert.NotNil(t, resume.Experience)
}

func TestValidateDecodesPopulatedRecord(t *testing.T) {
	candidate := types.Defaults()
	candidate["summary"] = "Engineer with ten years of Go."
	candidate["skills"] = []any{"Go", "SQL"}
	candidate["experience"] = []any{map[string]any{
		"title": "Engineer", "company": "Acme", "location": nil,
		"start_date": "2021-01-01", "end_date": "2023-01-01", "current": false,
		"bullets": []any{"Built dashboards.", "Improved load time by 30%."},
		"technologies": []any{"Go"}, "employment_type": "full-time",
	}}

	resume, err := Validate(candidate)
	require.NoError(t, err)

	require.Len(t, resume.Experience, 1)
	exp := resume.Experience[0]
	require.NotNil(t, exp.Title)
	assert.Equal(t, "Engineer", *exp.Title)
	assert.Equal(t, []string{"Built dashboards.", "Improved load time by 30%."}, exp.Bullets)
	require.NotNil(t, resume.Summary)
	assert.Equal(t, "Engineer with ten years of Go.", *resume.Summary)
}

func TestValidateFiltersNamelessCertifications(t *testing.T) {
	candidate := types.Defaults()
	candidate["certifications"] = []any{
		map[string]any{"issuer": "ACME"},
		map[string]any{"name": "AWS Cert", "issuer": "Amazon"},
	}

	resume, err := Validate(candidate)
	require.NoError(t, err)

	require.Len(t, resume.Certifications, 1)
	require.NotNil(t, resume.Certifications[0].Name)
	assert.Equal(t, "AWS Cert", *resume.Certifications[0].Name)
	require.NotNil(t, resume.Certifications[0].Issuer)
	assert.Equal(t, "Amazon", *resume.Certifications[0].Issuer)
}

func TestValidateRepairsSkills(t *testing.T) {
	candidate := types.Defaults()
	candidate["skills"] = []any{"Go", "", 42.0, "SQL"}

	resume, err := Validate(candidate)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "SQL"}, resume.Skills)
}

func TestValidateSecondFailureSurfaces(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{
			// The repair action set is fixed; experience damage is not repaired.
			name: "non-list experience",
			mutate: func(m map[string]any) {
				m["experience"] = "not a list"
			},
		},
		{
			name: "missing top-level key",
			mutate: func(m map[string]any) {
				delete(m, "languages")
			},
		},
		{
			name: "blank bullet",
			mutate: func(m map[string]any) {
				m["experience"] = []any{map[string]any{
					"title": "Engineer", "bullets": []any{"   "},
				}}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := types.Defaults()
			tt.mutate(candidate)

			_, err := Validate(candidate)
			require.Error(t, err)
			var violation *SchemaViolationError
			assert.ErrorAs(t, err, &violation)
		})
	}
}

func TestRepairDoesNotMutateInput(t *testing.T) {
	candidate := map[string]any{
		"certifications": []any{map[string]any{"issuer": "ACME"}},
		"skills":         []any{"", "Go"},
	}

	repaired := Repair(candidate)

	assert.Len(t, candidate["certifications"], 1, "input left untouched")
	assert.Len(t, candidate["skills"], 2)
	assert.Len(t, repaired["certifications"], 0)
	assert.Equal(t, []any{"Go"}, repaired["skills"])
}

func TestRepairIgnoresNonListSections(t *testing.T) {
	repaired := Repair(map[string]any{"certifications": "oops", "skills": 7.0})
	assert.Equal(t, "oops", repaired["certifications"])
	assert.Equal(t, 7.0, repaired["skills"])
}
