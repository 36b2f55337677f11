package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/devnunnez/Dev/internal/observability"
)

// TemplateModelLabel is the model label of results produced by the template fallback.
const TemplateModelLabel = "template"

// Event types published by the generator.
const (
	EventProviderFailed      = "generation.provider_failed"
	EventGenerationCompleted = "generation.completed"
)

const (
	defaultTemperature = 0.7
	defaultMaxTokens   = 3000
)

// GeneratorOptions tunes the fallback chain.
type GeneratorOptions struct {
	Locale          Locale
	ProviderTimeout time.Duration
	// ChainTimeout bounds all provider calls of one request together.
	// Once spent, remaining providers are skipped and the template answers.
	ChainTimeout time.Duration
	Temperature     float64
	MaxTokens       int
}

// CodeGenerator runs the provider fallback chain: every provider is tried once,
// in registry order, and the template renderer answers when all of them fail.
type CodeGenerator struct {
	registry  ProviderRegistry
	templates TemplateRenderer
	events    EventPublisher
	options   GeneratorOptions
}

// NewCodeGenerator creates a new code generator (DI constructor).
func NewCodeGenerator(
	registry ProviderRegistry,
	templates TemplateRenderer,
	events EventPublisher,
	options GeneratorOptions,
) *CodeGenerator {
	if options.Temperature <= 0 {
		options.Temperature = defaultTemperature
	}
	if options.MaxTokens <= 0 {
		options.MaxTokens = defaultMaxTokens
	}
	if options.Locale.Code == "" {
		options.Locale = LocaleFor(LocaleEnglish)
	}

	return &CodeGenerator{
		registry:  registry,
		templates: templates,
		events:    events,
		options:   options,
	}
}

// Generate produces exactly one result for req. Provider failures are absorbed;
// an error is returned only for invalid input or a cancelled context.
func (g *CodeGenerator) Generate(ctx context.Context, req *GenerationRequest) (*GenerationResult, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	if strings.TrimSpace(req.Prompt) == "" {
		return nil, &ValidationError{Field: "message", Reason: "Message is required"}
	}

	projectType := req.ProjectType.Normalize()
	ctx = observability.WithProjectType(ctx, string(projectType))
	logger := observability.FromContext(ctx)

	providerReq := &ProviderRequest{
		SystemPrompt: SystemPrompt(projectType),
		History:      req.ProviderHistory(),
		Prompt:       g.options.Locale.UserPrompt(req.Prompt),
		Temperature:  g.options.Temperature,
		MaxTokens:    g.options.MaxTokens,
	}

	chainCtx := ctx
	if g.options.ChainTimeout > 0 {
		var cancel context.CancelFunc
		chainCtx, cancel = context.WithTimeout(ctx, g.options.ChainTimeout)
		defer cancel()
	}

	for _, provider := range g.registry.Providers(ctx) {
		if chainCtx.Err() != nil && ctx.Err() == nil {
			logger.Warn("generation budget spent, skipping remaining providers",
				observability.Duration("budget", g.options.ChainTimeout))
			break
		}

		raw, err := g.call(chainCtx, provider, providerReq)
		if err == nil {
			explanation, code := ExtractCode(raw)
			result := &GenerationResult{
				Success:     true,
				Explanation: explanation,
				Code:        code,
				Model:       provider.Name(),
			}
			g.publishCompleted(ctx, result)
			return result, nil
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			logger.Info("generation cancelled", observability.Error(ctxErr))
			return nil, fmt.Errorf("generation cancelled: %w", ctxErr)
		}

		logger.Warn("provider failed, trying next",
			observability.String("provider", provider.Name()),
			observability.Error(err))
		g.publish(ctx, EventProviderFailed, map[string]interface{}{
			"provider": provider.Name(),
			"error":    err.Error(),
		})
	}

	logger.Warn("all providers failed, using template fallback")

	result := &GenerationResult{
		Success:     true,
		Explanation: g.options.Locale.FallbackExplanation(req.Prompt),
		Code:        g.templates.Render(projectType, req.Prompt),
		Model:       TemplateModelLabel,
	}
	g.publishCompleted(ctx, result)

	return result, nil
}

// call invokes one provider under the per-provider timeout.
func (g *CodeGenerator) call(ctx context.Context, provider Provider, req *ProviderRequest) (string, error) {
	if g.options.ProviderTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.options.ProviderTimeout)
		defer cancel()
	}

	ctx = observability.WithProvider(ctx, provider.Name())
	observability.FromContext(ctx).Debug("calling provider",
		observability.String("model", provider.Model()))

	start := time.Now()
	raw, err := provider.Generate(ctx, req)
	if err != nil {
		return "", err
	}

	observability.FromContext(ctx).Debug("provider answered",
		observability.Duration("elapsed", time.Since(start)))

	return raw, nil
}

func (g *CodeGenerator) publishCompleted(ctx context.Context, result *GenerationResult) {
	g.publish(ctx, EventGenerationCompleted, map[string]interface{}{
		"model":      result.Model,
		"code_bytes": len(result.Code),
	})
}

func (g *CodeGenerator) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if g.events == nil {
		return
	}
	g.events.Publish(ctx, eventType, data)
}
