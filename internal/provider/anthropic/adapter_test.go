package anthropic_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/devnunnez/Dev/internal/domain"
	"github.com/devnunnez/Dev/internal/provider/anthropic"
)

func newRequest() *domain.ProviderRequest {
	return &domain.ProviderRequest{
		SystemPrompt: "system prompt",
		History:      []domain.Message{{Role: "user", Content: "hi"}, {Role: "assistant", Content: "hello"}},
		Prompt:       "build a counter",
		Temperature:  0.7,
		MaxTokens:    3000,
	}
}

func TestProvider_Generate_MissingAPIKey(t *testing.T) {
	provider, err := anthropic.NewProvider(anthropic.Config{Label: "claude", Model: "claude-3-5-sonnet-latest"})
	require.NoError(t, err)

	_, err = provider.Generate(context.Background(), newRequest())

	require.ErrorIs(t, err, domain.ErrMissingCredential)
}

func TestProvider_Generate_Success(t *testing.T) {
	var captured map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasSuffix(r.URL.Path, "/v1/messages"))
		require.Equal(t, "sk-ant", r.Header.Get("X-Api-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
  "id": "msg_1",
  "type": "message",
  "role": "assistant",
  "model": "claude-3-5-sonnet-latest",
  "content": [{"type": "text", "text": "Counter ready"}],
  "stop_reason": "end_turn",
  "usage": {"input_tokens": 5, "output_tokens": 7}
}`))
	}))
	defer server.Close()

	provider, err := anthropic.NewProvider(anthropic.Config{
		APIKey:  "sk-ant",
		BaseURL: server.URL,
		Model:   "claude-3-5-sonnet-latest",
		Label:   "claude",
	})
	require.NoError(t, err)

	text, err := provider.Generate(context.Background(), newRequest())

	require.NoError(t, err)
	require.Equal(t, "Counter ready", text)
	require.InDelta(t, 3000, captured["max_tokens"], 0.0001)

	messages, ok := captured["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 3)
}

func TestProvider_Generate_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"authentication_error","message":"invalid x-api-key"}}`))
	}))
	defer server.Close()

	provider, err := anthropic.NewProvider(anthropic.Config{
		APIKey:  "bad",
		BaseURL: server.URL,
		Model:   "claude-3-5-sonnet-latest",
		Label:   "claude",
	})
	require.NoError(t, err)

	_, err = provider.Generate(context.Background(), newRequest())

	var providerErr *domain.ProviderError
	require.ErrorAs(t, err, &providerErr)
	require.Equal(t, "claude", providerErr.Provider)
}
