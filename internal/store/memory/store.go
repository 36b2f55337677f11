// Package memory provides an in-process conversation log and preview store,
// used when no database is configured.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/devnunnez/Dev/internal/domain"
)

const defaultMaxConversations = 1000

// Store implements domain.ConversationLog and domain.PreviewStore in memory.
type Store struct {
	mu               sync.RWMutex
	conversations    []*domain.Conversation
	previews         map[string]*domain.Preview
	maxConversations int
}

// NewStore creates an empty store keeping at most maxConversations records.
// A non-positive limit uses defaultMaxConversations.
func NewStore(maxConversations int) *Store {
	if maxConversations <= 0 {
		maxConversations = defaultMaxConversations
	}

	return &Store{
		mu:               sync.RWMutex{},
		conversations:    make([]*domain.Conversation, 0),
		previews:         make(map[string]*domain.Preview),
		maxConversations: maxConversations,
	}
}

// Append adds a conversation record.
func (s *Store) Append(_ context.Context, conversation *domain.Conversation) error {
	if conversation == nil {
		return errors.New("conversation cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.conversations = append(s.conversations, conversation)
	for len(s.conversations) > s.maxConversations {
		s.conversations[0] = nil
		s.conversations = s.conversations[1:]
	}

	return nil
}

// Recent returns up to limit records, newest first.
func (s *Store) Recent(_ context.Context, limit int) ([]*domain.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.conversations)
	if limit <= 0 || limit > n {
		limit = n
	}

	result := make([]*domain.Conversation, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		result = append(result, s.conversations[i])
	}

	return result, nil
}

// SavePreview stores a preview record.
func (s *Store) SavePreview(_ context.Context, preview *domain.Preview) error {
	if preview == nil {
		return errors.New("preview cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.previews[preview.ID] = preview
	return nil
}

// GetPreview returns the preview with the given ID.
func (s *Store) GetPreview(_ context.Context, id string) (*domain.Preview, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	preview, ok := s.previews[id]
	if !ok {
		return nil, domain.ErrPreviewNotFound
	}

	return preview, nil
}
