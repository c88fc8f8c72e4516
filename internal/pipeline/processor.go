// Package pipeline orchestrates the two-phase resume build: classify the
// input, obtain a canonical draft (by normalization or oracle extraction),
// run the rewrite pass, then validate with one bounded repair attempt.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-builder/internal/extract"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/normalize"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/prompts"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/validation"
)

// oracleTemperature favors determinism and fidelity over creativity.
const oracleTemperature = 0.1

// oracleMaxTokens bounds a single oracle response.
const oracleMaxTokens = 2000

// ErrEmptyInput is returned when raw input is blank; no oracle call is made.
var ErrEmptyInput = errors.New("input is empty")

// Processor drives one build at a time. Each Processor is independently
// configured with one oracle client and one template selection; invocations
// share no mutable state and may run concurrently.
type Processor struct {
	client   llm.Client
	template string
	printer  *observability.Printer
}

// Option configures a Processor.
type Option func(*Processor)

// WithTemplate selects the rendering template (default "minimal").
func WithTemplate(name string) Option {
	return func(p *Processor) { p.template = name }
}

// WithPrinter enables verbose progress output.
func WithPrinter(printer *observability.Printer) Option {
	return func(p *Processor) { p.printer = printer }
}

// New creates a Processor backed by the given oracle client.
func New(client llm.Client, opts ...Option) *Processor {
	p := &Processor{client: client, template: "minimal"}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// BuildOptions holds the optional rendering targets for one build.
type BuildOptions struct {
	OutputPDF  string
	OutputDOCX string
}

// Build converts raw input (free text or a JSON-encoded object) into a
// validated resume record, optionally rendering it to PDF and DOCX.
//
// A structured-looking input takes the normalize-then-rewrite branch; any
// failure there falls back unconditionally to the free-text branch
// (extract-then-rewrite). Free-text branch failures and post-validation
// failures propagate to the caller as typed errors.
//
// When only rendering fails, the validated record is still returned alongside
// the render error; rendering never corrupts the core result.
func (p *Processor) Build(ctx context.Context, rawInput string, opts BuildOptions) (*types.Resume, error) {
	if strings.TrimSpace(rawInput) == "" {
		return nil, ErrEmptyInput
	}

	runID := uuid.NewString()
	classified := types.ClassifyInput(rawInput)

	var candidate map[string]any
	if classified.Kind == types.InputStructured {
		p.printer.PrintStep(runID, "classify", "structured JSON input")
		draft := normalize.Normalize(classified.Object)
		rewritten, err := p.rewriteDraft(ctx, runID, draft)
		if err != nil {
			// Treat the input as unstructured on any ambiguity: the
			// structured branch error is discarded and the free-text
			// branch gets a full attempt.
			p.printer.PrintStep(runID, "fallback", fmt.Sprintf("structured branch failed (%v), retrying as free text", err))
		} else {
			candidate = rewritten
		}
	} else {
		p.printer.PrintStep(runID, "classify", "free-text input")
	}

	if candidate == nil {
		draft, err := p.extractFromText(ctx, runID, classified.Text)
		if err != nil {
			return nil, err
		}
		candidate, err = p.rewriteDraft(ctx, runID, draft)
		if err != nil {
			return nil, err
		}
	}

	p.printer.PrintStep(runID, "validate", "validating final record")
	resume, err := validation.Validate(candidate)
	if err != nil {
		return nil, err
	}
	p.printer.PrintResume(resume)

	if err := p.render(ctx, runID, resume, opts); err != nil {
		return resume, err
	}
	return resume, nil
}

// extractFromText runs the extraction oracle call over free text and recovers
// the draft mapping from its response.
func (p *Processor) extractFromText(ctx context.Context, runID, text string) (map[string]any, error) {
	p.printer.PrintStep(runID, "extract", "requesting structured extraction")

	prompt := prompts.Extraction(text)
	response, err := p.client.Complete(ctx, llm.CompletionRequest{
		SystemPrompt: prompt.System,
		UserPrompt:   prompt.User,
		Temperature:  oracleTemperature,
		MaxTokens:    oracleMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return extract.Extract(response)
}

// rewriteDraft runs the rewrite oracle call over a canonical draft and
// recovers the improved mapping from its response.
func (p *Processor) rewriteDraft(ctx context.Context, runID string, draft map[string]any) (map[string]any, error) {
	raw, err := json.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("failed to encode draft: %w", err)
	}

	p.printer.PrintStep(runID, "rewrite", "requesting rewrite pass")

	prompt := prompts.Rewrite(string(raw))
	response, err := p.client.Complete(ctx, llm.CompletionRequest{
		SystemPrompt: prompt.System,
		UserPrompt:   prompt.User,
		Temperature:  oracleTemperature,
		MaxTokens:    oracleMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return extract.Extract(response)
}

// render produces the requested export files. Each export writes only to its
// own output path; failures are joined and reported without invalidating the
// record.
func (p *Processor) render(ctx context.Context, runID string, resume *types.Resume, opts BuildOptions) error {
	if opts.OutputPDF == "" && opts.OutputDOCX == "" {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	if opts.OutputPDF != "" {
		g.Go(func() error {
			p.printer.PrintStep(runID, "render", "writing PDF to "+opts.OutputPDF)
			return rendering.RenderPDF(ctx, resume, p.template, opts.OutputPDF)
		})
	}
	if opts.OutputDOCX != "" {
		g.Go(func() error {
			p.printer.PrintStep(runID, "render", "writing DOCX to "+opts.OutputDOCX)
			return rendering.RenderDOCX(resume, opts.OutputDOCX)
		})
	}
	return g.Wait()
}
