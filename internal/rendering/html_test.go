package rendering

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func sampleResume() *types.Resume {
	name := "Jane Lee"
	email := "jane@x.com"
	summary := "Backend engineer with a focus on data pipelines."
	title := "Software Engineer"
	company := "Initech"
	start := "2021-03-01"
	degree := "BSc Computer Science"
	school := "State University"
	resume := &types.Resume{
		Contact: types.Contact{
			FullName: &name,
			Email:    &email,
			Links:    []string{"https://github.com/janelee"},
		},
		Summary: &summary,
		Experience: []types.Experience{
			{
				Title:     &title,
				Company:   &company,
				StartDate: &start,
				Current:   true,
				Bullets:   []string{"Built ingestion services", "Led schema migrations"},
			},
		},
		Education: []types.Education{
			{Institution: &school, Degree: &degree},
		},
		Skills: []string{"Go", "Python"},
	}
	return resume.Canonicalize()
}

func TestTemplateNames(t *testing.T) {
	names := TemplateNames()
	assert.Contains(t, names, "minimal")
	assert.Contains(t, names, "modern")
}

func TestRenderHTML(t *testing.T) {
	for _, name := range TemplateNames() {
		t.Run(name, func(t *testing.T) {
			html, err := RenderHTML(sampleResume(), name)
			require.NoError(t, err)

			assert.Contains(t, html, "Jane Lee")
			assert.Contains(t, html, "jane@x.com")
			assert.Contains(t, html, "Initech")
			assert.Contains(t, html, "Built ingestion services")
			assert.Contains(t, html, "BSc Computer Science")
			assert.Contains(t, html, "Go, Python")
			// current role renders an open-ended date range
			assert.Contains(t, strings.ToLower(html), "present")
		})
	}
}

func TestRenderHTMLUnknownTemplate(t *testing.T) {
	_, err := RenderHTML(sampleResume(), "nonexistent")
	require.Error(t, err)

	var templateErr *TemplateError
	assert.ErrorAs(t, err, &templateErr)
}

func TestRenderHTMLEscapesContent(t *testing.T) {
	resume := sampleResume()
	hostile := `<script>alert("x")</script>`
	resume.Skills = []string{hostile}

	html, err := RenderHTML(resume, "minimal")
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}
