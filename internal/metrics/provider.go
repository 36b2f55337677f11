package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/devnunnez/Dev/internal/domain"
)

// InstrumentedProvider records attempts and latency around a provider.
type InstrumentedProvider struct {
	next domain.Provider
}

// InstrumentProvider wraps provider with metrics.
func InstrumentProvider(provider domain.Provider) *InstrumentedProvider {
	return &InstrumentedProvider{next: provider}
}

// Generate calls the wrapped provider.
func (p *InstrumentedProvider) Generate(ctx context.Context, req *domain.ProviderRequest) (string, error) {
	start := time.Now()
	raw, err := p.next.Generate(ctx, req)
	ProviderLatency.WithLabelValues(p.next.Name()).Observe(time.Since(start).Seconds())

	ProviderAttemptsTotal.WithLabelValues(p.next.Name(), outcome(ctx, err)).Inc()

	return raw, err
}

// Name returns the wrapped provider's name.
func (p *InstrumentedProvider) Name() string {
	return p.next.Name()
}

// Model returns the wrapped provider's model.
func (p *InstrumentedProvider) Model() string {
	return p.next.Model()
}

func outcome(ctx context.Context, err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, context.DeadlineExceeded), errors.Is(ctx.Err(), context.DeadlineExceeded):
		return OutcomeTimeout
	default:
		return OutcomeError
	}
}
