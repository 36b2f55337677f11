package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/dig"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/devnunnez/Dev/internal/catalog"
	"github.com/devnunnez/Dev/internal/config"
	"github.com/devnunnez/Dev/internal/domain"
	"github.com/devnunnez/Dev/internal/events"
	"github.com/devnunnez/Dev/internal/http"
	"github.com/devnunnez/Dev/internal/http/middleware"
	"github.com/devnunnez/Dev/internal/observability"
	"github.com/devnunnez/Dev/internal/scaffold"
	"github.com/devnunnez/Dev/internal/store/memory"
	"github.com/devnunnez/Dev/internal/store/redis"
)

func main() {
	container := buildContainer()

	err := container.Invoke(run)
	if err != nil {
		log.Fatalf("Application failed: %v", err)
	}
}

// run serves until SIGINT/SIGTERM, then drains the server and releases resources.
func run(server *http.Server, cfg *config.ServerConfig, logger *zap.Logger, lc *lifecycle) error {
	defer func() {
		if err := lc.close(); err != nil {
			logger.Error("failed to release resources", zap.Error(err))
		}
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(server.Start)

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(),
			time.Duration(cfg.ShutdownTimeout)*time.Second)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// lifecycle collects cleanup functions of resources opened by constructors.
type lifecycle struct {
	closers []func() error
}

func (l *lifecycle) add(fn func() error) {
	l.closers = append(l.closers, fn)
}

func (l *lifecycle) close() error {
	var errs []error
	for i := len(l.closers) - 1; i >= 0; i-- {
		errs = append(errs, l.closers[i]())
	}
	return errors.Join(errs...)
}

// stores exposes one backend under both storage interfaces.
type stores struct {
	dig.Out
	Conversations domain.ConversationLog
	Previews      domain.PreviewStore
}

func provideStores(cfg *redis.Config, lc *lifecycle) (stores, error) {
	if cfg.URL == "" {
		observability.FromContext(context.Background()).Info("no database configured, using in-memory store")
		store := memory.NewStore(cfg.MaxConversations)
		return stores{Conversations: store, Previews: store}, nil
	}

	store, err := redis.NewStore(context.Background(), *cfg)
	if err != nil {
		return stores{}, err
	}
	lc.add(store.Close)

	return stores{Conversations: store, Previews: store}, nil
}

func provideEvents(cfg *events.Config, lc *lifecycle) domain.EventPublisher {
	publisher, closeFn := events.NewPublisher(*cfg)
	lc.add(closeFn)
	return publisher
}

func provideGenerator(
	reg domain.ProviderRegistry,
	templates domain.TemplateRenderer,
	publisher domain.EventPublisher,
	generation *config.GenerationConfig,
) *domain.CodeGenerator {
	return domain.NewCodeGenerator(reg, templates, publisher, generation.GeneratorOptions())
}

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}
	if err := container.Provide(func() *lifecycle { return &lifecycle{} }); err != nil {
		log.Fatalf("Failed to provide lifecycle: %v", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}
	// The logger is installed globally before any other constructor runs.
	if err := container.Invoke(func(*zap.Logger) {}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Provider Registry
	if err := container.Provide(buildRegistry); err != nil {
		log.Fatalf("Failed to provide registry: %v", err)
	}

	// Storage and events
	if err := container.Provide(provideStores); err != nil {
		log.Fatalf("Failed to provide stores: %v", err)
	}
	if err := container.Provide(provideEvents); err != nil {
		log.Fatalf("Failed to provide event publisher: %v", err)
	}

	// Domain Services
	if err := container.Provide(func() domain.TemplateRenderer {
		return scaffold.NewRenderer()
	}); err != nil {
		log.Fatalf("Failed to provide template renderer: %v", err)
	}
	if err := container.Provide(provideGenerator); err != nil {
		log.Fatalf("Failed to provide code generator: %v", err)
	}
	if err := container.Provide(domain.NewPreviewService); err != nil {
		log.Fatalf("Failed to provide preview service: %v", err)
	}
	if err := container.Provide(catalog.Load); err != nil {
		log.Fatalf("Failed to provide template catalog: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(middleware.BuildMiddlewareChain); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(http.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(http.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}
