package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=3000"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// APIBaseURL is the remote directory API every data operation proxies to.
	APIBaseURL string `env:"API_BASE_URL, default=http://localhost:8080/api"`

	// SessionStore selects the credential store backend: "file" or "redis".
	SessionStore string `env:"SESSION_STORE, default=file"`

	// CredentialsFile is the file backend's path. Empty means the default
	// location under the user's config directory.
	CredentialsFile string `env:"CREDENTIALS_FILE"`

	Redis RedisConfig
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
