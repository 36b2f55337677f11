package redis

// Config contains database settings.
// URL is a redis:// connection string; Name namespaces every key.
// MaxConversations caps the conversation log; older records are trimmed.
type Config struct {
	URL              string `env:"DATABASE_URL"`
	Name             string `env:"DATABASE_NAME"              envDefault:"codegen"`
	MaxConversations int    `env:"DATABASE_MAX_CONVERSATIONS" envDefault:"1000"`
}

// DefaultMaxConversations is used when MaxConversations is not positive.
const DefaultMaxConversations = 1000
