// Package observability provides formatted progress output for verbose CLI
// mode. Nothing here is required for correctness; the pipeline works silently
// without a printer.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the width of formatted output boxes.
	boxWidth = 60
	// maxItemsToShow caps list previews.
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// PrintStep reports progress through a pipeline phase.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintStep(runID, step, message string) {
	if p == nil {
		return
	}
	fmt.Fprintf(p.out, "[%s] %-22s %s\n", shortID(runID), step, message)
}

// PrintResume outputs a human-readable summary of the final record.
func (p *Printer) PrintResume(resume *types.Resume) {
	if p == nil || resume == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", stringOr(resume.Contact.FullName, "—")))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", stringOr(resume.Contact.Email, "—")))
	if resume.Summary != nil {
		sb.WriteString(fmt.Sprintf("Summary:  %s\n", *resume.Summary))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Experience entries: %d\n", len(resume.Experience)))
	count := min(len(resume.Experience), maxItemsToShow)
	for i := 0; i < count; i++ {
		exp := resume.Experience[i]
		sb.WriteString(fmt.Sprintf("  • %s at %s (%d bullets)\n",
			stringOr(exp.Title, "?"), stringOr(exp.Company, "?"), len(exp.Bullets)))
	}
	if len(resume.Experience) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Experience)-maxItemsToShow))
	}

	sb.WriteString(fmt.Sprintf("Education entries:  %d\n", len(resume.Education)))
	sb.WriteString(fmt.Sprintf("Projects:           %d\n", len(resume.Projects)))
	sb.WriteString(fmt.Sprintf("Skills:             %d\n", len(resume.Skills)))
	sb.WriteString(fmt.Sprintf("Certifications:     %d\n", len(resume.Certifications)))

	p.printBox("Final Resume", strings.TrimRight(sb.String(), "\n"))
}

// printBox prints a formatted box with a title and content.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func shortID(runID string) string {
	if len(runID) > 8 {
		return runID[:8]
	}
	return runID
}

func stringOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
