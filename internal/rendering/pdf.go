package rendering

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/jonathan/resume-builder/internal/types"
)

// pdfTimeout bounds the whole headless-browser print.
const pdfTimeout = 60 * time.Second

// browserBinaries are the executables probed when locating a Chrome-family
// browser for PDF printing.
var browserBinaries = []string{
	"google-chrome",
	"google-chrome-stable",
	"chromium",
	"chromium-browser",
	"headless-shell",
}

// RenderPDF renders the resume with the named template and prints it to PDF
// at outputPath using a headless Chrome. Returns *UnavailableError when no
// Chrome-family browser is installed.
func RenderPDF(ctx context.Context, resume *types.Resume, templateName, outputPath string) error {
	browser, err := findBrowser()
	if err != nil {
		return err
	}

	htmlContent, err := RenderHTML(resume, templateName)
	if err != nil {
		return err
	}

	// chromedp navigates a file URL; data URLs hit length limits on long resumes.
	tmpDir, err := os.MkdirTemp("", "resume-pdf-*")
	if err != nil {
		return &RenderError{Message: "failed to create temp directory", Cause: err}
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	htmlPath := filepath.Join(tmpDir, "resume.html")
	if err := os.WriteFile(htmlPath, []byte(htmlContent), 0644); err != nil {
		return &RenderError{Message: "failed to write temp HTML", Cause: err}
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.ExecPath(browser),
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, pdfTimeout)
	defer cancel()

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var printErr error
			pdf, _, printErr = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27). // A4, inches
				WithPaperHeight(11.69).
				Do(ctx)
			return printErr
		}),
	)
	if err != nil {
		return &RenderError{Message: "headless browser print failed", Cause: err}
	}

	if dir := filepath.Dir(outputPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &RenderError{Message: "failed to create output directory", Cause: err}
		}
	}
	if err := os.WriteFile(outputPath, pdf, 0644); err != nil {
		return &RenderError{Message: "failed to write PDF", Cause: err}
	}
	return nil
}

// findBrowser locates a Chrome-family executable on PATH.
func findBrowser() (string, error) {
	for _, name := range browserBinaries {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", &UnavailableError{
		Engine:  "headless Chrome",
		Message: "no Chrome or Chromium executable found on PATH; install one to enable PDF export",
	}
}
