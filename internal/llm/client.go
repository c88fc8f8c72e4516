// Package llm provides the oracle capability consumed by the pipeline: a
// text-generation client abstraction plus interchangeable provider
// implementations. The pipeline treats every provider as untrusted and
// format-unreliable; response recovery lives in the extract package.
package llm

import "context"

// CompletionRequest describes a single oracle invocation.
type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float32
	MaxTokens    int // 0 means provider default
}

// Client is an abstraction over LLM providers.
type Client interface {
	// Complete generates a completion for the request and returns the raw
	// response text. Transport, auth, quota and empty-response failures
	// surface as *APICallError.
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	// Close releases any resources held by the client.
	Close() error
}

// NewClient creates a provider client from configuration.
func NewClient(ctx context.Context, cfg *Config) (Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	switch cfg.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, cfg)
	case ProviderOpenAI, ProviderGroq:
		return NewOpenAIClient(cfg)
	default:
		return nil, &APICallError{
			Provider: string(cfg.Provider),
			Message:  "unknown provider",
		}
	}
}
