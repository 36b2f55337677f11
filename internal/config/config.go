package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	"github.com/devnunnez/Dev/internal/domain"
	"github.com/devnunnez/Dev/internal/events"
	"github.com/devnunnez/Dev/internal/observability"
	"github.com/devnunnez/Dev/internal/provider/anthropic"
	"github.com/devnunnez/Dev/internal/provider/gemini"
	"github.com/devnunnez/Dev/internal/provider/openai"
	"github.com/devnunnez/Dev/internal/store/redis"
)

// Config represents the service configuration.
type Config struct {
	Server     ServerConfig
	CORS       CORSConfig
	Log        observability.LogConfig
	Generation GenerationConfig
	Providers  ProvidersConfig
	Store      redis.Config
	Events     events.Config
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int `env:"SERVER_PORT"             envDefault:"8080"`
	ReadTimeout     int `env:"SERVER_READ_TIMEOUT"     envDefault:"30"`
	WriteTimeout    int `env:"SERVER_WRITE_TIMEOUT"    envDefault:"180"`
	ShutdownTimeout int `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"15"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"true"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// GenerationConfig tunes the provider fallback chain.
type GenerationConfig struct {
	Locale          string   `env:"GENERATION_LOCALE"           envDefault:"en"`
	Providers       []string `env:"GENERATION_PROVIDERS"        envDefault:"openai,gemini,deepseek" envSeparator:","`
	ProviderTimeout int      `env:"GENERATION_PROVIDER_TIMEOUT" envDefault:"60"`
	ChainTimeout    int      `env:"GENERATION_CHAIN_TIMEOUT"    envDefault:"150"`
	Temperature     float64  `env:"GENERATION_TEMPERATURE"      envDefault:"0.7"`
	MaxTokens       int      `env:"GENERATION_MAX_TOKENS"       envDefault:"3000"`
}

// GeneratorOptions converts the section into generator options.
func (g *GenerationConfig) GeneratorOptions() domain.GeneratorOptions {
	return domain.GeneratorOptions{
		Locale:          domain.LocaleFor(g.Locale),
		ProviderTimeout: time.Duration(g.ProviderTimeout) * time.Second,
		ChainTimeout:    time.Duration(g.ChainTimeout) * time.Second,
		Temperature:     g.Temperature,
		MaxTokens:       g.MaxTokens,
	}
}

// ProvidersConfig groups the settings of every provider adapter.
type ProvidersConfig struct {
	OpenAI    openai.Config `envPrefix:"OPENAI_"`
	DeepSeek  openai.Config `envPrefix:"DEEPSEEK_"`
	Gemini    gemini.Config
	Anthropic anthropic.Config
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out
	*ServerConfig
	*CORSConfig
	*observability.LogConfig
	*GenerationConfig
	*ProvidersConfig
	Store  *redis.Config
	Events *events.Config
}

// Load loads environment files and parses configuration.
func Load() *Config {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	cfg := defaults()
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	return &cfg
}

// Validate checks that the generation chain always finishes, template
// included, before the server gives up writing the response.
func (c *Config) Validate() error {
	if c.Server.WriteTimeout <= 0 {
		return nil
	}

	budget := c.Generation.ChainTimeout
	if budget <= 0 {
		if len(c.Generation.Providers) > 0 && c.Generation.ProviderTimeout <= 0 {
			return errors.New("GENERATION_CHAIN_TIMEOUT or GENERATION_PROVIDER_TIMEOUT must be set " +
				"when SERVER_WRITE_TIMEOUT is set")
		}
		budget = len(c.Generation.Providers) * c.Generation.ProviderTimeout
	}

	if budget >= c.Server.WriteTimeout {
		return fmt.Errorf("generation chain budget (%ds) must be below SERVER_WRITE_TIMEOUT (%ds)",
			budget, c.Server.WriteTimeout)
	}

	return nil
}

// defaults seeds the fields that share a config type across env prefixes.
// Values are kept unless the matching variable is set.
func defaults() Config {
	return Config{
		Providers: ProvidersConfig{
			OpenAI: openai.Config{
				BaseURL: "https://api.openai.com/v1",
				Model:   "gpt-4-turbo-preview",
				Label:   "gpt-4-turbo",
			},
			DeepSeek: openai.Config{
				BaseURL: "https://api.deepseek.com",
				Model:   "deepseek-chat",
				Label:   "deepseek",
			},
		},
	}
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		Out:              dig.Out{},
		ServerConfig:     &cfg.Server,
		CORSConfig:       &cfg.CORS,
		LogConfig:        &cfg.Log,
		GenerationConfig: &cfg.Generation,
		ProvidersConfig:  &cfg.Providers,
		Store:            &cfg.Store,
		Events:           &cfg.Events,
	}
}
