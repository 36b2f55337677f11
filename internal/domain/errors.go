package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCredential indicates a provider has no API key configured.
	ErrMissingCredential = errors.New("provider credential not configured")

	// ErrEmptyResponse indicates a provider answered without any text.
	ErrEmptyResponse = errors.New("provider returned an empty response")

	// ErrPreviewNotFound indicates no preview exists for the given ID.
	ErrPreviewNotFound = errors.New("preview not found")
)

// ProviderError is returned by adapters for any transport, auth, quota or
// decoding failure. The fallback chain treats every ProviderError the same.
type ProviderError struct {
	Provider string
	Message  string
	Err      error
}

// NewProviderError wraps err as a failure of the named provider.
func NewProviderError(provider, message string, err error) *ProviderError {
	return &ProviderError{
		Provider: provider,
		Message:  message,
		Err:      err,
	}
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provider %s: %s: %v", e.Provider, e.Message, e.Err)
	}
	return fmt.Sprintf("provider %s: %s", e.Provider, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}
