// Package gemini provides an adapter for Google's Gemini generative API
// using the google.golang.org/genai SDK.
package gemini

import (
	"context"
	"errors"
	"sync"

	"google.golang.org/genai"

	"github.com/devnunnez/Dev/internal/domain"
	"github.com/devnunnez/Dev/internal/observability"
)

// Provider implements the domain.Provider interface for Gemini.
type Provider struct {
	config Config

	// The SDK client is created on first use so that a missing key only
	// fails the call, not process start.
	once      sync.Once
	client    *genai.Client
	clientErr error
}

// NewProvider creates a new Gemini provider.
func NewProvider(config Config) (*Provider, error) {
	if config.Label == "" {
		return nil, errors.New("provider label is required")
	}

	if config.Model == "" {
		return nil, errors.New("provider model is required")
	}

	return &Provider{config: config}, nil
}

// Generate sends one generateContent request and returns the response text.
func (p *Provider) Generate(ctx context.Context, req *domain.ProviderRequest) (string, error) {
	if req == nil {
		return "", domain.NewProviderError(p.Name(), "invalid request", errors.New("request cannot be nil"))
	}

	if p.config.APIKey == "" {
		return "", domain.NewProviderError(p.Name(), "missing API key", domain.ErrMissingCredential)
	}

	client, err := p.getClient(ctx)
	if err != nil {
		return "", domain.NewProviderError(p.Name(), "failed to create client", err)
	}

	logger := observability.FromContext(ctx)
	logger.Debug("calling generateContent API", observability.String("model", p.config.Model))

	resp, err := client.Models.GenerateContent(ctx, p.config.Model, toContents(req), toConfig(req))
	if err != nil {
		return "", domain.NewProviderError(p.Name(), "generate content failed", err)
	}

	text := resp.Text()
	if text == "" {
		return "", domain.NewProviderError(p.Name(), "no content in response", domain.ErrEmptyResponse)
	}

	return text, nil
}

// Name returns the provider label.
func (p *Provider) Name() string {
	return p.config.Label
}

// Model returns the Gemini model identifier.
func (p *Provider) Model() string {
	return p.config.Model
}

func (p *Provider) getClient(ctx context.Context) (*genai.Client, error) {
	p.once.Do(func() {
		cc := &genai.ClientConfig{
			APIKey:  p.config.APIKey,
			Backend: genai.BackendGeminiAPI,
		}
		if p.config.BaseURL != "" {
			cc.HTTPOptions = genai.HTTPOptions{BaseURL: p.config.BaseURL}
		}
		p.client, p.clientErr = genai.NewClient(ctx, cc)
	})

	return p.client, p.clientErr
}

// toContents maps history and prompt to Gemini's user/model roles.
func toContents(req *domain.ProviderRequest) []*genai.Content {
	contents := make([]*genai.Content, 0, len(req.History)+1)

	for _, msg := range req.History {
		role := genai.Role(genai.RoleModel)
		if msg.IsUser() {
			role = genai.RoleUser
		}
		contents = append(contents, genai.NewContentFromText(msg.Content, role))
	}

	return append(contents, genai.NewContentFromText(req.Prompt, genai.RoleUser))
}

func toConfig(req *domain.ProviderRequest) *genai.GenerateContentConfig {
	//nolint:exhaustruct // SDK struct has many optional fields
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.SystemPrompt, genai.RoleUser),
	}

	if req.Temperature > 0 {
		cfg.Temperature = genai.Ptr(float32(req.Temperature))
	}

	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}

	return cfg
}
