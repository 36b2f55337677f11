package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const previewPathPrefix = "/preview/"

// PreviewService stores code snapshots. Nothing is executed or rendered.
type PreviewService struct {
	store PreviewStore
	now   func() time.Time
}

// NewPreviewService creates a new preview service (DI constructor).
func NewPreviewService(store PreviewStore) *PreviewService {
	return &PreviewService{
		store: store,
		now:   time.Now,
	}
}

// Create mints an ID for code and persists the record.
func (s *PreviewService) Create(ctx context.Context, code string) (*Preview, error) {
	if strings.TrimSpace(code) == "" {
		return nil, &ValidationError{Field: "code", Reason: "Code is required"}
	}

	preview := &Preview{
		ID:        uuid.New().String(),
		Code:      code,
		Timestamp: s.now().UTC(),
	}

	if err := s.store.SavePreview(ctx, preview); err != nil {
		return nil, fmt.Errorf("failed to save preview: %w", err)
	}

	return preview, nil
}

// Get returns a stored preview.
func (s *PreviewService) Get(ctx context.Context, id string) (*Preview, error) {
	if id == "" {
		return nil, errors.New("preview id cannot be empty")
	}

	preview, err := s.store.GetPreview(ctx, id)
	if err != nil {
		return nil, err
	}

	return preview, nil
}

// PreviewURL returns the locator of the preview with the given ID.
func PreviewURL(id string) string {
	return previewPathPrefix + id
}
