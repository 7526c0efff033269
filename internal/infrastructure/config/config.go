package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,       default=8080"`
	Env       string        `env:"ENV,        default=development"`
	LogLevel  string        `env:"LOG_LEVEL,  default=info"`
	JWTSecret string        `env:"JWT_SECRET, required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=24h"`

	// STORE_BACKEND selects the product repository: "memory" (default) or
	// "mongo".
	StoreBackend string `env:"STORE_BACKEND, default=memory"`

	Users UsersConfig
	Mongo MongoConfig
	Redis RedisConfig
}

// UsersConfig seeds the credential store. Defaults reproduce the historical
// fixed credential set; override them in any real deployment.
type UsersConfig struct {
	AdminUsername string `env:"ADMIN_USERNAME, default=admin"`
	AdminPassword string `env:"ADMIN_PASSWORD, default=admin123"`
	UserUsername  string `env:"USER_USERNAME,  default=user"`
	UserPassword  string `env:"USER_PASSWORD,  default=user123"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=inventory"`
}

// RedisConfig enables adjustment idempotency when Addr is non-empty.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
