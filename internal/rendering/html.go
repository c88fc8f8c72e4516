package rendering

import (
	"embed"
	"fmt"
	"html/template"
	"sort"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

//go:embed templates/*.html
var templateFiles embed.FS

var htmlTemplates = template.Must(template.New("resume").Funcs(template.FuncMap{
	"join": strings.Join,
}).ParseFS(templateFiles, "templates/*.html"))

// TemplateNames lists the available template names in sorted order.
func TemplateNames() []string {
	var names []string
	for _, t := range htmlTemplates.Templates() {
		if name, ok := strings.CutSuffix(t.Name(), ".html"); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// RenderHTML renders the resume with the named template and returns the HTML
// document. Unknown template names yield a *TemplateError.
func RenderHTML(resume *types.Resume, templateName string) (string, error) {
	tmpl := htmlTemplates.Lookup(templateName + ".html")
	if tmpl == nil {
		return "", &TemplateError{
			Message: fmt.Sprintf("unknown template %q (available: %s)", templateName, strings.Join(TemplateNames(), ", ")),
		}
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, resume); err != nil {
		return "", &TemplateError{Message: "failed to execute template", Cause: err}
	}
	return sb.String(), nil
}
