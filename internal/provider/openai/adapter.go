// Package openai provides an adapter for OpenAI-protocol chat completion APIs
// using the official SDK. It implements the domain.Provider interface and is
// reused for every vendor that speaks the same protocol behind a different
// base URL.
package openai

import (
	"context"
	"errors"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/devnunnez/Dev/internal/domain"
	"github.com/devnunnez/Dev/internal/observability"
)

// Provider implements the domain.Provider interface for OpenAI-protocol APIs.
type Provider struct {
	client     openai.Client
	name       string
	model      string
	configured bool
}

// NewProvider creates a new OpenAI-protocol provider.
// A missing API key is not an error here; Generate reports it on first use.
func NewProvider(config Config) (*Provider, error) {
	if config.Label == "" {
		return nil, errors.New("provider label is required")
	}

	if config.Model == "" {
		return nil, errors.New("provider model is required")
	}

	// Retries are left to the fallback chain.
	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
		option.WithMaxRetries(0),
	}

	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	return &Provider{
		client:     openai.NewClient(opts...),
		name:       config.Label,
		model:      config.Model,
		configured: config.APIKey != "",
	}, nil
}

// Generate sends one chat completion request and returns the response text.
func (p *Provider) Generate(ctx context.Context, req *domain.ProviderRequest) (string, error) {
	if req == nil {
		return "", domain.NewProviderError(p.name, "invalid request", errors.New("request cannot be nil"))
	}

	if !p.configured {
		return "", domain.NewProviderError(p.name, "missing API key", domain.ErrMissingCredential)
	}

	logger := observability.FromContext(ctx)
	logger.Debug("calling chat completions API", observability.String("model", p.model))

	resp, err := p.client.Chat.Completions.New(ctx, p.toSDKParams(req))
	if err != nil {
		return "", domain.NewProviderError(p.name, "chat completion failed", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", domain.NewProviderError(p.name, "no content in response", domain.ErrEmptyResponse)
	}

	logger.Debug("chat completions API call succeeded",
		observability.Int("prompt_tokens", int(resp.Usage.PromptTokens)),
		observability.Int("completion_tokens", int(resp.Usage.CompletionTokens)),
	)

	return resp.Choices[0].Message.Content, nil
}

// Name returns the provider label.
func (p *Provider) Name() string {
	return p.name
}

// Model returns the chat model identifier.
func (p *Provider) Model() string {
	return p.model
}

// toSDKParams converts a provider request to SDK ChatCompletionNewParams.
func (p *Provider) toSDKParams(req *domain.ProviderRequest) openai.ChatCompletionNewParams {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.History)+2)
	messages = append(messages, openai.SystemMessage(req.SystemPrompt))

	for _, msg := range req.History {
		if msg.IsUser() {
			messages = append(messages, openai.UserMessage(msg.Content))
		} else {
			messages = append(messages, openai.AssistantMessage(msg.Content))
		}
	}

	messages = append(messages, openai.UserMessage(req.Prompt))

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(p.model),
		Messages: messages,
	}

	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}

	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}

	return params
}
