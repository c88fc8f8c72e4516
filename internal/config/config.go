// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-builder/internal/llm"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or come from
// CLI flags.
type Config struct {
	Input    string `json:"input,omitempty"`    // Path or URL of the raw resume input
	Template string `json:"template,omitempty"` // Output template name

	Provider string `json:"provider,omitempty"` // LLM provider: gemini, openai, groq
	Model    string `json:"model,omitempty"`    // Model override for the provider
	APIKey   string `json:"api_key,omitempty"`  // Provider API key

	OutputDir  string `json:"output_dir,omitempty"` // Directory for rendered artifacts
	OutputPDF  bool   `json:"output_pdf,omitempty"` // Render a PDF alongside the JSON record
	OutputDOCX bool   `json:"output_docx,omitempty"`
	Verbose    bool   `json:"verbose,omitempty"` // Print detailed progress information

	RetryMaxElapsed string `json:"retry_max_elapsed,omitempty"` // e.g. "30s"; empty disables retries
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. Required fields
// are enforced by CLI flag validation after merging, not here.
func (c *Config) Validate() error {
	if c.Provider != "" {
		switch llm.Provider(c.Provider) {
		case llm.ProviderGemini, llm.ProviderOpenAI, llm.ProviderGroq:
		default:
			return fmt.Errorf("config error: unknown provider %q", c.Provider)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. Config file values act as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Input == "" {
		result.Input = defaults.Input
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.RetryMaxElapsed == "" {
		result.RetryMaxElapsed = defaults.RetryMaxElapsed
	}

	// Bool fields: true wins from either side.
	result.OutputPDF = result.OutputPDF || defaults.OutputPDF
	result.OutputDOCX = result.OutputDOCX || defaults.OutputDOCX
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}
