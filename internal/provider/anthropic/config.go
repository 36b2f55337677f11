package anthropic

// Config contains Anthropic provider configuration.
type Config struct {
	APIKey  string `env:"ANTHROPIC_API_KEY"`
	BaseURL string `env:"ANTHROPIC_BASE_URL"`
	Model   string `env:"ANTHROPIC_MODEL"    envDefault:"claude-3-5-sonnet-latest"`
	Label   string `env:"ANTHROPIC_LABEL"    envDefault:"claude"`
}
