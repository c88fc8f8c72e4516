package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *OpenAIClient) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewOpenAIClient(&Config{
		Provider: ProviderOpenAI,
		APIKey:   "sk-test",
		BaseURL:  server.URL,
	})
	require.NoError(t, err)
	return server, client
}

func TestOpenAIClientComplete(t *testing.T) {
	var captured chatRequest
	_, client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "  {\"skills\": []}  "}},
			},
		})
	})

	content, err := client.Complete(context.Background(), CompletionRequest{
		SystemPrompt: "system",
		UserPrompt:   "user",
		Temperature:  0.1,
		MaxTokens:    2000,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"skills": []}`, content, "content is trimmed")

	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "user", captured.Messages[1].Role)
	assert.InDelta(t, 0.1, captured.Temperature, 0.001)
	assert.Equal(t, 2000, captured.MaxTokens)
}

func TestOpenAIClientAPIError(t *testing.T) {
	_, client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "invalid api key"},
		})
	})

	_, err := client.Complete(context.Background(), CompletionRequest{UserPrompt: "hi"})
	require.Error(t, err)

	var apiErr *APICallError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "invalid api key")
}

func TestOpenAIClientEmptyCompletion(t *testing.T) {
	_, client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	})

	_, err := client.Complete(context.Background(), CompletionRequest{UserPrompt: "hi"})
	var apiErr *APICallError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Message, "empty completion")
}

func TestOpenAIClientRetryDisabledByDefault(t *testing.T) {
	calls := 0
	_, client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.Complete(context.Background(), CompletionRequest{UserPrompt: "hi"})
	require.Error(t, err)
	assert.Equal(t, 1, calls, "zero-retry baseline: no automatic retry")
}

func TestOpenAIClientRetriesWhenConfigured(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "{}"}},
			},
		})
	}))
	t.Cleanup(server.Close)

	client, err := NewOpenAIClient(&Config{
		Provider:        ProviderGroq,
		APIKey:          "gk-test",
		BaseURL:         server.URL,
		MaxRetryElapsed: 5 * time.Second,
	})
	require.NoError(t, err)

	content, err := client.Complete(context.Background(), CompletionRequest{UserPrompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "{}", content)
	assert.Equal(t, 3, calls)
}

func TestOpenAIClientDoesNotRetryAuthFailures(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(server.Close)

	client, err := NewOpenAIClient(&Config{
		Provider:        ProviderOpenAI,
		APIKey:          "sk-bad",
		BaseURL:         server.URL,
		MaxRetryElapsed: 5 * time.Second,
	})
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), CompletionRequest{UserPrompt: "hi"})
	require.Error(t, err)
	assert.Equal(t, 1, calls, "auth failures are permanent")
}
