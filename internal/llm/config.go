package llm

import (
	"os"
	"time"
)

// Provider identifies an LLM provider implementation.
type Provider string

// Supported providers.
const (
	// ProviderGemini is Google Gemini via the official SDK.
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI chat completions API.
	ProviderOpenAI Provider = "openai"
	// ProviderGroq is the Groq API (OpenAI-compatible endpoint).
	ProviderGroq Provider = "groq"
)

// Base URLs for the OpenAI-compatible providers.
const (
	openAIBaseURL = "https://api.openai.com/v1"
	groqBaseURL   = "https://api.groq.com/openai/v1"
)

// defaultModels maps each provider to its default model.
var defaultModels = map[Provider]string{
	ProviderGemini: "gemini-2.5-flash",
	ProviderOpenAI: "gpt-4o-mini",
	ProviderGroq:   "llama-3.3-70b-versatile",
}

// apiKeyEnvVars maps each provider to the environment variable holding its key.
var apiKeyEnvVars = map[Provider]string{
	ProviderGemini: "GEMINI_API_KEY",
	ProviderOpenAI: "OPENAI_API_KEY",
	ProviderGroq:   "GROQ_API_KEY",
}

// Config holds provider selection and credentials for one client.
type Config struct {
	Provider Provider
	Model    string
	APIKey   string
	BaseURL  string // OpenAI-compatible providers only; empty uses the provider default

	// MaxRetryElapsed enables transport-level retry with exponential backoff
	// for the HTTP providers when non-zero. Zero keeps the zero-retry
	// baseline: oracle failures propagate immediately.
	MaxRetryElapsed time.Duration
}

// DefaultConfig returns the default configuration (currently Gemini).
func DefaultConfig() *Config {
	return ConfigFor(ProviderGemini)
}

// ConfigFor returns the default configuration for a provider, reading the
// API key from the provider's environment variable.
func ConfigFor(provider Provider) *Config {
	return &Config{
		Provider: provider,
		Model:    defaultModels[provider],
		APIKey:   os.Getenv(apiKeyEnvVars[provider]),
	}
}

// model returns the configured model, falling back to the provider default.
func (c *Config) model() string {
	if c.Model != "" {
		return c.Model
	}
	return defaultModels[c.Provider]
}

// baseURL returns the endpoint for OpenAI-compatible providers.
func (c *Config) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	if c.Provider == ProviderGroq {
		return groqBaseURL
	}
	return openAIBaseURL
}

// APIKeyEnvVar returns the environment variable name that supplies the API
// key for a provider. Unknown providers return an empty string.
func APIKeyEnvVar(provider Provider) string {
	return apiKeyEnvVars[provider]
}
