package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/pipeline"
)

var buildCommand = &cobra.Command{
	Use:   "build",
	Short: "Build a validated resume record from raw input",
	Long: `Reads raw resume input (free text or JSON) from a file or URL, runs it through
the extraction and rewrite pipeline, validates the result against the resume
schema, and writes the canonical JSON record. PDF and DOCX export are optional.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runBuildCmd,
}

var (
	buildConfigPath string
	buildInput      string
	buildTemplate   string
	buildProvider   string
	buildModel      string
	buildAPIKey     string
	buildOutputDir  string
	buildPDF        bool
	buildDOCX       bool
	buildVerbose    bool
	buildRetry      string
)

func init() {
	// Config file flag (processed first)
	buildCommand.Flags().StringVar(&buildConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	buildCommand.Flags().StringVarP(&buildInput, "input", "i", "", "Path or URL of the raw resume input")
	buildCommand.Flags().StringVarP(&buildTemplate, "template", "t", "", "Output template name (see 'templates' command)")
	buildCommand.Flags().StringVarP(&buildProvider, "provider", "p", "", "LLM provider: gemini, openai, groq")
	buildCommand.Flags().StringVarP(&buildModel, "model", "m", "", "Model override for the provider")
	buildCommand.Flags().StringVar(&buildAPIKey, "api-key", "", "Provider API key (defaults to the provider's env var)")
	buildCommand.Flags().StringVarP(&buildOutputDir, "out", "o", "", "Directory for output files (defaults to current directory)")
	buildCommand.Flags().BoolVar(&buildPDF, "pdf", false, "Render a PDF (requires a Chrome-family browser)")
	buildCommand.Flags().BoolVar(&buildDOCX, "docx", false, "Render a DOCX")
	buildCommand.Flags().BoolVarP(&buildVerbose, "verbose", "v", false, "Print detailed progress information")
	buildCommand.Flags().StringVar(&buildRetry, "retry-max-elapsed", "", "Retry transient API failures for up to this duration, e.g. 30s (default: no retries)")

	rootCmd.AddCommand(buildCommand)
}

func runBuildCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if buildConfigPath != "" {
		loadedCfg, err := config.LoadConfig(buildConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
		if buildVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", buildConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (only flags explicitly set)
	if cmd.Flags().Changed("input") {
		cfg.Input = buildInput
	}
	if cmd.Flags().Changed("template") {
		cfg.Template = buildTemplate
	}
	if cmd.Flags().Changed("provider") {
		cfg.Provider = buildProvider
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = buildModel
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = buildAPIKey
	}
	if cmd.Flags().Changed("out") {
		cfg.OutputDir = buildOutputDir
	}
	if cmd.Flags().Changed("pdf") {
		cfg.OutputPDF = buildPDF
	}
	if cmd.Flags().Changed("docx") {
		cfg.OutputDOCX = buildDOCX
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = buildVerbose
	}
	if cmd.Flags().Changed("retry-max-elapsed") {
		cfg.RetryMaxElapsed = buildRetry
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{
		Template:  "minimal",
		Provider:  string(llm.ProviderGemini),
		OutputDir: ".",
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Step 4: Validate required fields
	if cfg.Input == "" {
		return fmt.Errorf("--input is required (via flag or config)")
	}

	// Step 5: API key handling
	provider := llm.Provider(cfg.Provider)
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv(llm.APIKeyEnvVar(provider))
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("%s environment variable or --api-key flag is required", llm.APIKeyEnvVar(provider))
	}

	// Step 6: Build the oracle client
	llmCfg := llm.ConfigFor(provider)
	llmCfg.Model = cfg.Model
	llmCfg.APIKey = cfg.APIKey
	if cfg.RetryMaxElapsed != "" {
		maxElapsed, err := time.ParseDuration(cfg.RetryMaxElapsed)
		if err != nil {
			return fmt.Errorf("invalid --retry-max-elapsed value %q: %w", cfg.RetryMaxElapsed, err)
		}
		llmCfg.MaxRetryElapsed = maxElapsed
	}

	client, err := llm.NewClient(ctx, llmCfg)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	// Step 7: Read the raw input
	rawInput, err := ingestion.ReadInput(ctx, cfg.Input)
	if err != nil {
		return err
	}

	// Step 8: Run the pipeline
	opts := []pipeline.Option{pipeline.WithTemplate(cfg.Template)}
	if cfg.Verbose {
		opts = append(opts, pipeline.WithPrinter(observability.NewPrinter(os.Stdout)))
	}
	processor := pipeline.New(client, opts...)

	buildOpts := pipeline.BuildOptions{}
	if cfg.OutputPDF {
		buildOpts.OutputPDF = filepath.Join(cfg.OutputDir, "resume.pdf")
	}
	if cfg.OutputDOCX {
		buildOpts.OutputDOCX = filepath.Join(cfg.OutputDir, "resume.docx")
	}

	resume, err := processor.Build(ctx, rawInput, buildOpts)
	if resume == nil {
		return err
	}
	if err != nil {
		// The record validated; only an export failed.
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	// Step 9: Write the canonical record
	record, marshalErr := json.MarshalIndent(resume, "", "  ")
	if marshalErr != nil {
		return fmt.Errorf("failed to encode resume record: %w", marshalErr)
	}
	recordPath := filepath.Join(cfg.OutputDir, "resume.json")
	if mkErr := os.MkdirAll(cfg.OutputDir, 0755); mkErr != nil && !errors.Is(mkErr, os.ErrExist) {
		return fmt.Errorf("failed to create output directory: %w", mkErr)
	}
	if writeErr := os.WriteFile(recordPath, record, 0644); writeErr != nil {
		return fmt.Errorf("failed to write resume record: %w", writeErr)
	}

	fmt.Fprintf(os.Stdout, "Resume record written to %s\n", recordPath)
	return nil
}
