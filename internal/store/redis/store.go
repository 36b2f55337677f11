// Package redis persists conversations and previews in Redis.
// Conversations are an append-only list (LPUSH), so LRANGE returns newest first.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/devnunnez/Dev/internal/domain"
	"github.com/devnunnez/Dev/internal/observability"
)

// Store implements domain.ConversationLog and domain.PreviewStore.
type Store struct {
	client           *redis.Client
	namespace        string
	maxConversations int
}

// NewStore connects to the database described by config.
func NewStore(ctx context.Context, config Config) (*Store, error) {
	if config.URL == "" {
		return nil, errors.New("database URL is required")
	}

	opts, err := redis.ParseURL(config.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid database URL: %w", err)
	}

	client := redis.NewClient(opts)
	if pingErr := client.Ping(ctx).Err(); pingErr != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", pingErr)
	}

	return NewStoreWithClient(client, config.Name, config.MaxConversations), nil
}

// NewStoreWithClient wraps an existing client.
func NewStoreWithClient(client *redis.Client, namespace string, maxConversations int) *Store {
	if namespace == "" {
		namespace = "codegen"
	}
	if maxConversations <= 0 {
		maxConversations = DefaultMaxConversations
	}

	return &Store{
		client:           client,
		namespace:        namespace,
		maxConversations: maxConversations,
	}
}

// Append pushes a conversation record onto the log and trims it to the
// configured maximum.
func (s *Store) Append(ctx context.Context, conversation *domain.Conversation) error {
	if conversation == nil {
		return errors.New("conversation cannot be nil")
	}

	data, err := json.Marshal(conversation)
	if err != nil {
		return fmt.Errorf("failed to marshal conversation: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, s.conversationsKey(), data)
		pipe.LTrim(ctx, s.conversationsKey(), 0, int64(s.maxConversations)-1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to append conversation: %w", err)
	}

	return nil
}

// Recent returns up to limit records, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]*domain.Conversation, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit) - 1
	}

	values, err := s.client.LRange(ctx, s.conversationsKey(), 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read conversations: %w", err)
	}

	logger := observability.FromContext(ctx)
	conversations := make([]*domain.Conversation, 0, len(values))
	for _, value := range values {
		var conversation domain.Conversation
		if unmarshalErr := json.Unmarshal([]byte(value), &conversation); unmarshalErr != nil {
			logger.Warn("skipping unreadable conversation record", observability.Error(unmarshalErr))
			continue
		}
		conversations = append(conversations, &conversation)
	}

	return conversations, nil
}

// SavePreview stores a preview record under its ID.
func (s *Store) SavePreview(ctx context.Context, preview *domain.Preview) error {
	if preview == nil {
		return errors.New("preview cannot be nil")
	}

	data, err := json.Marshal(preview)
	if err != nil {
		return fmt.Errorf("failed to marshal preview: %w", err)
	}

	if setErr := s.client.Set(ctx, s.previewKey(preview.ID), data, 0).Err(); setErr != nil {
		return fmt.Errorf("failed to save preview: %w", setErr)
	}

	return nil
}

// GetPreview returns the preview with the given ID.
func (s *Store) GetPreview(ctx context.Context, id string) (*domain.Preview, error) {
	value, err := s.client.Get(ctx, s.previewKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrPreviewNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read preview: %w", err)
	}

	var preview domain.Preview
	if unmarshalErr := json.Unmarshal([]byte(value), &preview); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal preview: %w", unmarshalErr)
	}

	return &preview, nil
}

// Close closes the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) conversationsKey() string {
	return s.namespace + ":conversations"
}

func (s *Store) previewKey(id string) string {
	return s.namespace + ":preview:" + id
}
