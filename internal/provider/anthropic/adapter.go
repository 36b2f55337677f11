// Package anthropic provides an adapter for the Anthropic Messages API.
package anthropic

import (
	"context"
	"errors"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/devnunnez/Dev/internal/domain"
	"github.com/devnunnez/Dev/internal/observability"
)

// Provider implements the domain.Provider interface for Claude models.
type Provider struct {
	client     anthropic.Client
	name       string
	model      string
	configured bool
}

// NewProvider creates a new Anthropic provider.
func NewProvider(config Config) (*Provider, error) {
	if config.Label == "" {
		return nil, errors.New("provider label is required")
	}

	if config.Model == "" {
		return nil, errors.New("provider model is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
		option.WithMaxRetries(0),
	}

	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	return &Provider{
		client:     anthropic.NewClient(opts...),
		name:       config.Label,
		model:      config.Model,
		configured: config.APIKey != "",
	}, nil
}

// Generate sends one Messages request and returns the concatenated text blocks.
func (p *Provider) Generate(ctx context.Context, req *domain.ProviderRequest) (string, error) {
	if req == nil {
		return "", domain.NewProviderError(p.name, "invalid request", errors.New("request cannot be nil"))
	}

	if !p.configured {
		return "", domain.NewProviderError(p.name, "missing API key", domain.ErrMissingCredential)
	}

	observability.FromContext(ctx).Debug("calling messages API", observability.String("model", p.model))

	message, err := p.client.Messages.New(ctx, p.toSDKParams(req))
	if err != nil {
		return "", domain.NewProviderError(p.name, "messages API call failed", err)
	}

	var sb strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	if sb.Len() == 0 {
		return "", domain.NewProviderError(p.name, "no text in response", domain.ErrEmptyResponse)
	}

	return sb.String(), nil
}

// Name returns the provider label.
func (p *Provider) Name() string {
	return p.name
}

// Model returns the Claude model identifier.
func (p *Provider) Model() string {
	return p.model
}

func (p *Provider) toSDKParams(req *domain.ProviderRequest) anthropic.MessageNewParams {
	messages := make([]anthropic.MessageParam, 0, len(req.History)+1)
	for _, msg := range req.History {
		block := anthropic.NewTextBlock(msg.Content)
		if msg.IsUser() {
			messages = append(messages, anthropic.NewUserMessage(block))
		} else {
			messages = append(messages, anthropic.NewAssistantMessage(block))
		}
	}
	messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)))

	//nolint:exhaustruct // SDK struct has many optional fields
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: int64(req.MaxTokens),
		System:    []anthropic.TextBlockParam{{Text: req.SystemPrompt}},
		Messages:  messages,
	}

	if req.Temperature > 0 {
		params.Temperature = anthropic.Float(req.Temperature)
	}

	return params
}
