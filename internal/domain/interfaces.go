package domain

import "context"

// Provider is one LLM backend in the fallback chain.
type Provider interface {
	// Generate performs a single non-streaming completion and returns the raw text.
	// Any failure is reported as a *ProviderError.
	Generate(ctx context.Context, req *ProviderRequest) (string, error)

	// Name returns the label reported as the result's model.
	Name() string

	// Model returns the upstream model identifier.
	Model() string
}

// ProviderRegistry holds providers in priority order.
type ProviderRegistry interface {
	// Register appends a provider to the end of the chain.
	Register(ctx context.Context, provider Provider) error

	// Get retrieves a provider by name.
	Get(ctx context.Context, providerName string) (Provider, error)

	// List returns provider names in priority order.
	List(ctx context.Context) ([]string, error)

	// Providers returns the providers in priority order.
	Providers(ctx context.Context) []Provider
}

// ConversationLog is an append-only store of generation exchanges.
type ConversationLog interface {
	// Append persists a conversation record.
	Append(ctx context.Context, conversation *Conversation) error

	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]*Conversation, error)
}

// PreviewStore persists preview records.
type PreviewStore interface {
	// SavePreview persists a preview record.
	SavePreview(ctx context.Context, preview *Preview) error

	// GetPreview returns the preview with the given ID or ErrPreviewNotFound.
	GetPreview(ctx context.Context, id string) (*Preview, error)
}

// EventPublisher publishes events for observability.
type EventPublisher interface {
	// Publish publishes an event with the given type and data.
	Publish(ctx context.Context, eventType string, data map[string]interface{})
}

// TemplateRenderer produces the deterministic starter code used when every
// provider has failed.
type TemplateRenderer interface {
	// Render returns starter code for projectType with prompt interpolated.
	Render(projectType ProjectType, prompt string) string
}
