package registry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/devnunnez/Dev/internal/domain"
	"github.com/devnunnez/Dev/internal/provider/registry"
)

// stubProvider is a minimal domain.Provider for registry tests.
type stubProvider struct {
	name string
}

func (s *stubProvider) Generate(_ context.Context, _ *domain.ProviderRequest) (string, error) {
	return "", nil
}

func (s *stubProvider) Name() string {
	return s.name
}

func (s *stubProvider) Model() string {
	return s.name + "-model"
}

func TestRegistry_Register(t *testing.T) {
	t.Run("should register provider successfully", func(t *testing.T) {
		reg := registry.NewRegistry()
		ctx := context.Background()

		err := reg.Register(ctx, &stubProvider{name: "test-provider"})
		require.NoError(t, err)

		registered, err := reg.Get(ctx, "test-provider")
		require.NoError(t, err)
		require.Equal(t, "test-provider", registered.Name())
	})

	t.Run("should return error when provider is nil", func(t *testing.T) {
		reg := registry.NewRegistry()

		err := reg.Register(context.Background(), nil)
		require.Error(t, err)
		require.Contains(t, err.Error(), "provider cannot be nil")
	})

	t.Run("should return error when provider name is empty", func(t *testing.T) {
		reg := registry.NewRegistry()

		err := reg.Register(context.Background(), &stubProvider{name: ""})
		require.Error(t, err)
		require.Contains(t, err.Error(), "provider name cannot be empty")
	})

	t.Run("should return error when provider already registered", func(t *testing.T) {
		reg := registry.NewRegistry()
		ctx := context.Background()

		require.NoError(t, reg.Register(ctx, &stubProvider{name: "test-provider"}))

		err := reg.Register(ctx, &stubProvider{name: "test-provider"})
		require.Error(t, err)
		require.Contains(t, err.Error(), "already registered")

		providers, err := reg.List(ctx)
		require.NoError(t, err)
		require.Len(t, providers, 1)
	})
}

func TestRegistry_Get(t *testing.T) {
	t.Run("should return error when provider name is empty", func(t *testing.T) {
		reg := registry.NewRegistry()

		_, err := reg.Get(context.Background(), "")
		require.Error(t, err)
		require.Contains(t, err.Error(), "provider name cannot be empty")
	})

	t.Run("should return error when provider not found", func(t *testing.T) {
		reg := registry.NewRegistry()

		_, err := reg.Get(context.Background(), "nonexistent")
		require.Error(t, err)
		require.Contains(t, err.Error(), "not found")
	})
}

func TestRegistry_Order(t *testing.T) {
	t.Run("should return empty list when no providers registered", func(t *testing.T) {
		reg := registry.NewRegistry()
		ctx := context.Background()

		names, err := reg.List(ctx)
		require.NoError(t, err)
		require.NotNil(t, names)
		require.Empty(t, names)
		require.Empty(t, reg.Providers(ctx))
	})

	t.Run("should keep registration order", func(t *testing.T) {
		reg := registry.NewRegistry()
		ctx := context.Background()

		for _, name := range []string{"openai", "gemini", "deepseek"} {
			require.NoError(t, reg.Register(ctx, &stubProvider{name: name}))
		}

		names, err := reg.List(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"openai", "gemini", "deepseek"}, names)

		providers := reg.Providers(ctx)
		require.Len(t, providers, 3)
		require.Equal(t, "openai", providers[0].Name())
		require.Equal(t, "gemini", providers[1].Name())
		require.Equal(t, "deepseek", providers[2].Name())
	})

	t.Run("should return a copy of the order", func(t *testing.T) {
		reg := registry.NewRegistry()
		ctx := context.Background()

		require.NoError(t, reg.Register(ctx, &stubProvider{name: "a"}))
		require.NoError(t, reg.Register(ctx, &stubProvider{name: "b"}))

		names, err := reg.List(ctx)
		require.NoError(t, err)
		names[0] = "mutated"

		names, err = reg.List(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"a", "b"}, names)
	})
}

func TestRegistry_Concurrent(t *testing.T) {
	t.Run("should handle concurrent registrations safely", func(t *testing.T) {
		reg := registry.NewRegistry()
		ctx := context.Background()

		done := make(chan bool)

		for i := range 10 {
			go func(idx int) {
				provider := &stubProvider{name: string(rune('a' + idx))}
				_ = reg.Register(ctx, provider)
				done <- true
			}(i)
		}

		for range 10 {
			<-done
		}

		names, err := reg.List(ctx)
		require.NoError(t, err)
		require.Len(t, names, 10)
		require.Len(t, reg.Providers(ctx), 10)
	})
}
