package domain_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/devnunnez/Dev/internal/domain"
)

func TestProjectType_Normalize(t *testing.T) {
	require.Equal(t, domain.ProjectBackend, domain.ProjectBackend.Normalize())
	require.Equal(t, domain.ProjectFullstack, domain.ProjectFullstack.Normalize())
	require.Equal(t, domain.ProjectComponent, domain.ProjectType("").Normalize())
	require.Equal(t, domain.ProjectComponent, domain.ProjectType("mobile").Normalize())
}

func TestGenerationRequest_UnmarshalJSON(t *testing.T) {
	body := `{
		"message": "build a counter",
		"projectType": "frontend",
		"conversationHistory": [
			{"type": "user", "content": "hello"},
			{"type": "assistant", "content": "hi"},
			{"role": "user", "content": "again"},
			{"role": "system", "type": "user", "content": "role wins"},
			null,
			{"type": "assistant", "content": "   "},
			{}
		]
	}`

	var req domain.GenerationRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	require.Equal(t, "build a counter", req.Prompt)
	require.Equal(t, domain.ProjectFrontend, req.ProjectType)
	require.Len(t, req.History, 7)
	require.True(t, req.History[0].IsUser())
	require.False(t, req.History[1].IsUser())
	require.True(t, req.History[2].IsUser())
	require.Equal(t, "system", req.History[3].Role)
	require.False(t, req.History[3].IsUser())
	require.Empty(t, req.History[4].Content)

	history := req.ProviderHistory()
	require.Len(t, history, 4)
	for _, msg := range history {
		require.NotEmpty(t, msg.Content)
	}
	require.Equal(t, "role wins", history[3].Content)
}

func TestProviderError(t *testing.T) {
	err := domain.NewProviderError("openai", "request failed", domain.ErrMissingCredential)

	require.ErrorIs(t, err, domain.ErrMissingCredential)
	require.Equal(t, "provider openai: request failed: provider credential not configured", err.Error())

	var providerErr *domain.ProviderError
	require.True(t, errors.As(error(err), &providerErr))
	require.Equal(t, "openai", providerErr.Provider)

	require.Equal(t, "provider gemini: empty", domain.NewProviderError("gemini", "empty", nil).Error())
}
