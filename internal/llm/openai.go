package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
)

// chatTimeout bounds a single chat completion request.
const chatTimeout = 120 * time.Second

// OpenAIClient implements Client against any OpenAI-compatible chat
// completions endpoint (OpenAI itself, or Groq).
type OpenAIClient struct {
	cfg *Config
	hc  *http.Client
}

// NewOpenAIClient creates a client for an OpenAI-compatible endpoint.
func NewOpenAIClient(cfg *Config) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, &APICallError{
			Provider: string(cfg.Provider),
			Message:  fmt.Sprintf("API key is required (set %s)", APIKeyEnvVar(cfg.Provider)),
		}
	}
	return &OpenAIClient{
		cfg: cfg,
		hc:  &http.Client{Timeout: chatTimeout},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete calls the chat completions endpoint and returns the message
// content. With MaxRetryElapsed configured, requests that fail with a
// retryable status (429 or 5xx) or a transport error are retried with
// exponential backoff; otherwise failures propagate immediately.
func (c *OpenAIClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if c.cfg.MaxRetryElapsed <= 0 {
		return c.completeOnce(ctx, req)
	}

	expo := backoff.NewExponentialBackOff()
	expo.MaxElapsedTime = c.cfg.MaxRetryElapsed

	var content string
	operation := func() error {
		var err error
		content, err = c.completeOnce(ctx, req)
		if err != nil && !isRetryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	if err := backoff.Retry(operation, backoff.WithContext(expo, ctx)); err != nil {
		return "", err
	}
	return content, nil
}

func (c *OpenAIClient) completeOnce(ctx context.Context, req CompletionRequest) (string, error) {
	payload := chatRequest{
		Model:       c.cfg.model(),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages: []chatMessage{
			{Role: "system", Content: req.SystemPrompt},
			{Role: "user", Content: req.UserPrompt},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", &APICallError{Provider: string(c.cfg.Provider), Message: "failed to encode request", Cause: err}
	}

	url := strings.TrimRight(c.cfg.baseURL(), "/") + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", &APICallError{Provider: string(c.cfg.Provider), Message: "failed to build request", Cause: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.hc.Do(httpReq)
	if err != nil {
		return "", &APICallError{Provider: string(c.cfg.Provider), Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", &APICallError{
			Provider:   string(c.cfg.Provider),
			Message:    "failed to read response body",
			StatusCode: resp.StatusCode,
			Cause:      err,
		}
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil && resp.StatusCode == http.StatusOK {
		return "", &APICallError{
			Provider:   string(c.cfg.Provider),
			Message:    "failed to decode response",
			StatusCode: resp.StatusCode,
			Cause:      err,
		}
	}

	if resp.StatusCode != http.StatusOK {
		msg := fmt.Sprintf("unexpected status %s", resp.Status)
		if parsed.Error != nil && parsed.Error.Message != "" {
			msg = parsed.Error.Message
		}
		return "", &APICallError{
			Provider:   string(c.cfg.Provider),
			Message:    msg,
			StatusCode: resp.StatusCode,
		}
	}

	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return "", &APICallError{
			Provider:   string(c.cfg.Provider),
			Message:    "empty completion content",
			StatusCode: resp.StatusCode,
		}
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

// Close implements Client; the HTTP client holds no resources to release.
func (c *OpenAIClient) Close() error {
	return nil
}

// isRetryable reports whether an error is worth retrying: rate limits,
// server errors, and transport failures. Auth and request errors are not.
func isRetryable(err error) bool {
	apiErr, ok := err.(*APICallError)
	if !ok {
		return false
	}
	if apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode >= 500 {
		return true
	}
	// Transport failure before any status was received.
	return apiErr.StatusCode == 0 && apiErr.Cause != nil && apiErr.Message == "request failed"
}
