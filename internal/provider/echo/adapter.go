// Package echo provides an offline provider that echoes the request back as a
// fenced block. It implements the domain.Provider interface without making
// external API calls, giving deterministic output for local development.
package echo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/devnunnez/Dev/internal/domain"
	"github.com/devnunnez/Dev/internal/observability"
)

const (
	providerName = "echo"
	modelName    = "echo4"
)

// Provider implements the domain.Provider interface for echo testing.
type Provider struct {
	name string
}

// NewProvider creates a new echo provider.
// No configuration is required as this provider operates entirely in-memory.
func NewProvider() *Provider {
	return &Provider{
		name: providerName,
	}
}

// Generate returns an explanation line followed by the conversation in a fenced block.
func (p *Provider) Generate(ctx context.Context, req *domain.ProviderRequest) (string, error) {
	if req == nil {
		return "", domain.NewProviderError(p.name, "invalid request", errors.New("request cannot be nil"))
	}

	if err := ctx.Err(); err != nil {
		return "", domain.NewProviderError(p.name, "request cancelled", err)
	}

	observability.FromContext(ctx).Debug("echoing request",
		observability.Int("history_length", len(req.History)))

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Echo of your request: %s\n\n", firstLine(req.Prompt)))
	builder.WriteString("```text\n")
	builder.WriteString(buildEchoContent(req))
	builder.WriteString("```\n")

	return builder.String(), nil
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return p.name
}

// Model returns the echo model name.
func (p *Provider) Model() string {
	return modelName
}

// buildEchoContent renders the request as one "[role]: content" line per message.
func buildEchoContent(req *domain.ProviderRequest) string {
	var builder strings.Builder
	for _, msg := range req.History {
		builder.WriteString(fmt.Sprintf("[%s]: %s\n", msg.Role, msg.Content))
	}
	builder.WriteString(fmt.Sprintf("[%s]: %s\n", domain.RoleUser, firstLine(req.Prompt)))
	return builder.String()
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}
