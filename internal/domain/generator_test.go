package domain_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/devnunnez/Dev/internal/domain"
	"github.com/devnunnez/Dev/internal/mocks"
	"github.com/devnunnez/Dev/internal/provider/registry"
	"github.com/devnunnez/Dev/internal/scaffold"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []string
}

func (p *recordingPublisher) Publish(_ context.Context, eventType string, _ map[string]interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, eventType)
}

func newProvider(t *testing.T, name string) *mocks.MockProvider {
	t.Helper()

	provider := mocks.NewMockProvider(t)
	provider.EXPECT().Name().Return(name).Maybe()
	provider.EXPECT().Model().Return(name + "-model").Maybe()

	return provider
}

func newRegistry(t *testing.T, providers ...domain.Provider) *registry.Registry {
	t.Helper()

	reg := registry.NewRegistry()
	for _, p := range providers {
		require.NoError(t, reg.Register(context.Background(), p))
	}

	return reg
}

func TestCodeGenerator_FallbackOrder(t *testing.T) {
	var (
		mu    sync.Mutex
		calls []string
	)
	record := func(name string) {
		mu.Lock()
		defer mu.Unlock()
		calls = append(calls, name)
	}

	a := newProvider(t, "a")
	a.EXPECT().Generate(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *domain.ProviderRequest) (string, error) {
			record("a")
			return "", domain.NewProviderError("a", "quota exceeded", nil)
		}).Once()

	b := newProvider(t, "b")
	b.EXPECT().Generate(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *domain.ProviderRequest) (string, error) {
			record("b")
			return "", domain.NewProviderError("b", "unauthorized", nil)
		}).Once()

	c := newProvider(t, "c")
	c.EXPECT().Generate(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *domain.ProviderRequest) (string, error) {
			record("c")
			return "Counter below.\n```jsx\nuseState(0)\n```", nil
		}).Once()

	events := &recordingPublisher{}
	generator := domain.NewCodeGenerator(newRegistry(t, a, b, c), scaffold.NewRenderer(), events, domain.GeneratorOptions{})

	result, err := generator.Generate(context.Background(), &domain.GenerationRequest{
		Prompt:      "build a counter",
		ProjectType: domain.ProjectComponent,
	})
	require.NoError(t, err)

	require.True(t, result.Success)
	require.Equal(t, "c", result.Model)
	require.Equal(t, "Counter below.", result.Explanation)
	require.Equal(t, "useState(0)", result.Code)
	require.Equal(t, []string{"a", "b", "c"}, calls)
	require.Equal(t, []string{
		domain.EventProviderFailed,
		domain.EventProviderFailed,
		domain.EventGenerationCompleted,
	}, events.events)
}

func TestCodeGenerator_StopsAtFirstSuccess(t *testing.T) {
	a := newProvider(t, "a")
	a.EXPECT().Generate(mock.Anything, mock.Anything).Return("plain answer", nil).Once()

	b := newProvider(t, "b")

	generator := domain.NewCodeGenerator(newRegistry(t, a, b), scaffold.NewRenderer(), nil, domain.GeneratorOptions{})

	result, err := generator.Generate(context.Background(), &domain.GenerationRequest{Prompt: "hi"})
	require.NoError(t, err)

	require.Equal(t, "a", result.Model)
	require.Equal(t, "plain answer", result.Explanation)
	require.Equal(t, "plain answer", result.Code)
	b.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestCodeGenerator_Exhaustion_UsesTemplate(t *testing.T) {
	renderer := scaffold.NewRenderer()

	for _, projectType := range []domain.ProjectType{
		domain.ProjectComponent,
		domain.ProjectFullstack,
		domain.ProjectFrontend,
		domain.ProjectBackend,
		"mobile",
		"",
	} {
		t.Run(string(projectType), func(t *testing.T) {
			a := newProvider(t, "a")
			a.EXPECT().Generate(mock.Anything, mock.Anything).
				Return("", domain.NewProviderError("a", "down", errors.New("dial tcp"))).Once()

			b := newProvider(t, "b")
			b.EXPECT().Generate(mock.Anything, mock.Anything).
				Return("", domain.NewProviderError("b", "empty", domain.ErrEmptyResponse)).Once()

			generator := domain.NewCodeGenerator(newRegistry(t, a, b), renderer, nil, domain.GeneratorOptions{})

			result, err := generator.Generate(context.Background(), &domain.GenerationRequest{
				Prompt:      "build a counter",
				ProjectType: projectType,
			})
			require.NoError(t, err)

			require.True(t, result.Success)
			require.Empty(t, result.Error)
			require.Equal(t, domain.TemplateModelLabel, result.Model)
			require.Equal(t, renderer.Render(projectType, "build a counter"), result.Code)
			require.Contains(t, result.Explanation, "counter")
		})
	}
}

func TestCodeGenerator_NoProviders(t *testing.T) {
	generator := domain.NewCodeGenerator(newRegistry(t), scaffold.NewRenderer(), nil, domain.GeneratorOptions{})

	result, err := generator.Generate(context.Background(), &domain.GenerationRequest{Prompt: "build a counter"})
	require.NoError(t, err)

	require.True(t, result.Success)
	require.Equal(t, domain.TemplateModelLabel, result.Model)
	require.Contains(t, result.Code, "useState")
}

func TestCodeGenerator_Validation(t *testing.T) {
	a := newProvider(t, "a")
	generator := domain.NewCodeGenerator(newRegistry(t, a), scaffold.NewRenderer(), nil, domain.GeneratorOptions{})

	_, err := generator.Generate(context.Background(), nil)
	require.Error(t, err)

	for _, prompt := range []string{"", "  \n\t"} {
		_, err = generator.Generate(context.Background(), &domain.GenerationRequest{Prompt: prompt})

		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		require.Equal(t, "message", validationErr.Field)
		require.Equal(t, "Message is required", validationErr.Error())
	}

	a.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestCodeGenerator_ProviderRequest(t *testing.T) {
	history := []domain.Message{
		{Role: domain.RoleUser, Content: "make a list"},
		{Role: domain.RoleAssistant, Content: "done"},
	}

	a := newProvider(t, "a")
	a.EXPECT().Generate(mock.Anything, mock.MatchedBy(func(req *domain.ProviderRequest) bool {
		return req.SystemPrompt == domain.SystemPrompt(domain.ProjectBackend) &&
			strings.HasPrefix(req.Prompt, "add auth") &&
			strings.Contains(req.Prompt, "Please provide:") &&
			strings.Contains(req.Prompt, "pt-BR") &&
			len(req.History) == 2 &&
			req.Temperature == 0.2 &&
			req.MaxTokens == 1000
	})).Return("ok", nil).Once()

	generator := domain.NewCodeGenerator(newRegistry(t, a), scaffold.NewRenderer(), nil, domain.GeneratorOptions{
		Locale:      domain.LocaleFor(domain.LocalePortuguese),
		Temperature: 0.2,
		MaxTokens:   1000,
	})

	_, err := generator.Generate(context.Background(), &domain.GenerationRequest{
		Prompt:      "add auth",
		ProjectType: domain.ProjectBackend,
		History:     history,
	})
	require.NoError(t, err)
}

func TestCodeGenerator_ProviderTimeoutAdvancesChain(t *testing.T) {
	slow := newProvider(t, "slow")
	slow.EXPECT().Generate(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *domain.ProviderRequest) (string, error) {
			<-ctx.Done()
			return "", domain.NewProviderError("slow", "request failed", ctx.Err())
		}).Once()

	fast := newProvider(t, "fast")
	fast.EXPECT().Generate(mock.Anything, mock.Anything).Return("fast answer", nil).Once()

	generator := domain.NewCodeGenerator(newRegistry(t, slow, fast), scaffold.NewRenderer(), nil, domain.GeneratorOptions{
		ProviderTimeout: 20 * time.Millisecond,
	})

	result, err := generator.Generate(context.Background(), &domain.GenerationRequest{Prompt: "hi"})
	require.NoError(t, err)
	require.Equal(t, "fast", result.Model)
}

func TestCodeGenerator_CancellationSkipsTemplate(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	a := newProvider(t, "a")
	a.EXPECT().Generate(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *domain.ProviderRequest) (string, error) {
			cancel()
			return "", domain.NewProviderError("a", "request failed", context.Canceled)
		}).Once()

	b := newProvider(t, "b")

	generator := domain.NewCodeGenerator(newRegistry(t, a, b), scaffold.NewRenderer(), nil, domain.GeneratorOptions{})

	result, err := generator.Generate(ctx, &domain.GenerationRequest{Prompt: "hi"})
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, result)
	b.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestCodeGenerator_ChainBudgetFallsBackToTemplate(t *testing.T) {
	block := func(ctx context.Context, _ *domain.ProviderRequest) (string, error) {
		<-ctx.Done()
		return "", domain.NewProviderError("hang", "request failed", ctx.Err())
	}

	a := newProvider(t, "a")
	a.EXPECT().Generate(mock.Anything, mock.Anything).RunAndReturn(block).Once()
	b := newProvider(t, "b")
	c := newProvider(t, "c")

	generator := domain.NewCodeGenerator(newRegistry(t, a, b, c), scaffold.NewRenderer(), nil, domain.GeneratorOptions{
		ProviderTimeout: time.Minute,
		ChainTimeout:    50 * time.Millisecond,
	})

	start := time.Now()
	result, err := generator.Generate(context.Background(), &domain.GenerationRequest{Prompt: "build a counter"})
	require.NoError(t, err)

	require.Less(t, time.Since(start), 5*time.Second)
	require.True(t, result.Success)
	require.Equal(t, domain.TemplateModelLabel, result.Model)
	b.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	c.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestCodeGenerator_DropsEmptyHistoryEntries(t *testing.T) {
	a := newProvider(t, "a")
	a.EXPECT().Generate(mock.Anything, mock.MatchedBy(func(req *domain.ProviderRequest) bool {
		return len(req.History) == 1 && req.History[0].Content == "make a list"
	})).Return("ok", nil).Once()

	generator := domain.NewCodeGenerator(newRegistry(t, a), scaffold.NewRenderer(), nil, domain.GeneratorOptions{})

	_, err := generator.Generate(context.Background(), &domain.GenerationRequest{
		Prompt: "add sorting",
		History: []domain.Message{
			{},
			{Role: domain.RoleUser, Content: "make a list"},
			{Role: domain.RoleAssistant, Content: " \n"},
		},
	})
	require.NoError(t, err)
}
