package rendering

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// DOCX is a zip of OOXML parts; the three below are the minimum a word
// processor needs to open the document.

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const docxRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

// RenderDOCX writes the resume as a Word document at outputPath.
func RenderDOCX(resume *types.Resume, outputPath string) error {
	if dir := filepath.Dir(outputPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &RenderError{Message: "failed to create output directory", Cause: err}
		}
	}

	var buf bytes.Buffer
	archive := zip.NewWriter(&buf)

	parts := map[string]string{
		"[Content_Types].xml": docxContentTypes,
		"_rels/.rels":         docxRels,
		"word/document.xml":   buildDocumentXML(resume),
	}
	for _, name := range []string{"[Content_Types].xml", "_rels/.rels", "word/document.xml"} {
		w, err := archive.Create(name)
		if err != nil {
			return &RenderError{Message: "failed to create archive part " + name, Cause: err}
		}
		if _, err := w.Write([]byte(parts[name])); err != nil {
			return &RenderError{Message: "failed to write archive part " + name, Cause: err}
		}
	}
	if err := archive.Close(); err != nil {
		return &RenderError{Message: "failed to finalize archive", Cause: err}
	}

	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return &RenderError{Message: "failed to write DOCX", Cause: err}
	}
	return nil
}

// docBuilder accumulates WordprocessingML paragraphs.
type docBuilder struct {
	sb strings.Builder
}

func (b *docBuilder) heading(text string, level int) {
	if text == "" {
		return
	}
	size := 32 - 4*level // half-points
	if size < 24 {
		size = 24
	}
	b.sb.WriteString(`<w:p><w:pPr><w:rPr><w:b/><w:sz w:val="` + fmt.Sprint(size) + `"/></w:rPr></w:pPr>`)
	b.run(text, true)
	b.sb.WriteString(`</w:p>`)
}

func (b *docBuilder) paragraph(text string) {
	if text == "" {
		return
	}
	b.sb.WriteString(`<w:p>`)
	b.run(text, false)
	b.sb.WriteString(`</w:p>`)
}

func (b *docBuilder) bullet(text string) {
	if text == "" {
		return
	}
	b.sb.WriteString(`<w:p><w:pPr><w:ind w:left="360"/></w:pPr>`)
	b.run("• "+text, false)
	b.sb.WriteString(`</w:p>`)
}

func (b *docBuilder) run(text string, bold bool) {
	b.sb.WriteString(`<w:r>`)
	if bold {
		b.sb.WriteString(`<w:rPr><w:b/></w:rPr>`)
	}
	b.sb.WriteString(`<w:t xml:space="preserve">` + escapeXML(text) + `</w:t></w:r>`)
}

func buildDocumentXML(resume *types.Resume) string {
	b := &docBuilder{}

	b.heading(deref(resume.Contact.FullName), 0)
	var contactParts []string
	for _, field := range []*string{resume.Contact.Email, resume.Contact.Phone, resume.Contact.Location} {
		if field != nil {
			contactParts = append(contactParts, *field)
		}
	}
	contactParts = append(contactParts, resume.Contact.Links...)
	b.paragraph(strings.Join(contactParts, " · "))

	if resume.Summary != nil {
		b.heading("Summary", 1)
		b.paragraph(*resume.Summary)
	}

	if len(resume.Experience) > 0 {
		b.heading("Experience", 1)
		for _, exp := range resume.Experience {
			b.paragraph(entryLine(deref(exp.Title), deref(exp.Company), dateRange(exp.StartDate, exp.EndDate, exp.Current)))
			for _, bullet := range exp.Bullets {
				b.bullet(bullet)
			}
			if len(exp.Technologies) > 0 {
				b.paragraph("Technologies: " + strings.Join(exp.Technologies, ", "))
			}
		}
	}

	if len(resume.Projects) > 0 {
		b.heading("Projects", 1)
		for _, proj := range resume.Projects {
			b.paragraph(entryLine(deref(proj.Name), deref(proj.Role), ""))
			for _, bullet := range proj.Bullets {
				b.bullet(bullet)
			}
			if len(proj.Stack) > 0 {
				b.paragraph("Stack: " + strings.Join(proj.Stack, ", "))
			}
		}
	}

	if len(resume.Education) > 0 {
		b.heading("Education", 1)
		for _, edu := range resume.Education {
			line := entryLine(deref(edu.Degree), deref(edu.Institution), deref(edu.EndDate))
			if edu.GPA != nil {
				line += " (GPA: " + *edu.GPA + ")"
			}
			b.paragraph(line)
		}
	}

	if len(resume.Skills) > 0 {
		b.heading("Skills", 1)
		b.paragraph(strings.Join(resume.Skills, ", "))
	}

	if len(resume.Certifications) > 0 {
		b.heading("Certifications", 1)
		for _, cert := range resume.Certifications {
			line := deref(cert.Name)
			if cert.Issuer != nil {
				line += " — " + *cert.Issuer
			}
			b.paragraph(line)
		}
	}

	for _, section := range []struct {
		title string
		items []string
	}{
		{"Achievements", resume.Achievements},
		{"Extracurricular", resume.Extracurricular},
		{"Languages", resume.Languages},
		{"Interests", resume.Interests},
	} {
		if len(section.items) > 0 {
			b.heading(section.title, 1)
			for _, item := range section.items {
				b.bullet(item)
			}
		}
	}

	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` + b.sb.String() + `</w:body></w:document>`
}

func entryLine(primary, secondary, dates string) string {
	var parts []string
	if primary != "" {
		parts = append(parts, primary)
	}
	if secondary != "" {
		parts = append(parts, secondary)
	}
	line := strings.Join(parts, " — ")
	if dates != "" {
		line += " (" + dates + ")"
	}
	return line
}

func dateRange(start, end *string, current bool) string {
	from := deref(start)
	to := deref(end)
	if current {
		to = "present"
	}
	if from == "" && to == "" {
		return ""
	}
	return strings.TrimSpace(from + " – " + to)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
