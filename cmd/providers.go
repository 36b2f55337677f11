package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/devnunnez/Dev/internal/config"
	"github.com/devnunnez/Dev/internal/domain"
	"github.com/devnunnez/Dev/internal/metrics"
	"github.com/devnunnez/Dev/internal/observability"
	"github.com/devnunnez/Dev/internal/provider/anthropic"
	"github.com/devnunnez/Dev/internal/provider/echo"
	"github.com/devnunnez/Dev/internal/provider/gemini"
	"github.com/devnunnez/Dev/internal/provider/openai"
	"github.com/devnunnez/Dev/internal/provider/registry"
)

// Provider keys accepted in GENERATION_PROVIDERS.
const (
	providerOpenAI    = "openai"
	providerGemini    = "gemini"
	providerDeepSeek  = "deepseek"
	providerAnthropic = "anthropic"
	providerEcho      = "echo"
)

// buildRegistry registers the configured providers in fallback order.
// Providers without credentials are still registered; they fail on first use.
func buildRegistry(
	generation *config.GenerationConfig,
	providers *config.ProvidersConfig,
) (domain.ProviderRegistry, error) {
	ctx := context.Background()
	reg := registry.NewRegistry()

	for _, key := range generation.Providers {
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			continue
		}

		provider, err := newProvider(key, providers)
		if err != nil {
			return nil, fmt.Errorf("failed to create provider %q: %w", key, err)
		}

		if err := reg.Register(ctx, metrics.InstrumentProvider(provider)); err != nil {
			return nil, fmt.Errorf("failed to register provider %q: %w", key, err)
		}

		observability.FromContext(ctx).Info("provider registered",
			observability.String("provider", provider.Name()),
			observability.String("model", provider.Model()))
	}

	return reg, nil
}

func newProvider(key string, providers *config.ProvidersConfig) (domain.Provider, error) {
	switch key {
	case providerOpenAI:
		return openai.NewProvider(providers.OpenAI)
	case providerDeepSeek:
		return openai.NewProvider(providers.DeepSeek)
	case providerGemini:
		return gemini.NewProvider(providers.Gemini)
	case providerAnthropic:
		return anthropic.NewProvider(providers.Anthropic)
	case providerEcho:
		return echo.NewProvider(), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", key)
	}
}
