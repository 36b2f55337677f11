package openai

// Config contains configuration for an OpenAI-protocol provider.
// The same shape serves OpenAI itself and compatible vendors such as DeepSeek;
// the owning config section supplies the env prefix and defaults.
//   - APIKey: Maps to option.WithAPIKey()
//   - BaseURL: Maps to option.WithBaseURL()
//   - Model: chat model sent with every request
//   - Label: name reported as the result's model and used in logs
type Config struct {
	APIKey  string `env:"API_KEY"`
	BaseURL string `env:"BASE_URL"`
	Model   string `env:"MODEL"`
	Label   string `env:"LABEL"`
}
