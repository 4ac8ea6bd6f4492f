package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// minSecretBytes enforces a 256-bit HS256 signing key.
const minSecretBytes = 32

type Config struct {
	Port         string `env:"PORT,          default=8080"`
	Env          string `env:"ENV,           default=development"`
	JWTSecret    string `env:"JWT_SECRET"`
	CookieDomain string `env:"COOKIE_DOMAIN, default=.fitlogapp.com"`
	LogLevel     string `env:"LOG_LEVEL,     default=info"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=fitlog"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
// The JWT secret must be at least 32 bytes; the process refuses to start
// with a weaker key.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if len(cfg.JWTSecret) < minSecretBytes {
		return nil, fmt.Errorf("config: JWT_SECRET must be at least %d bytes", minSecretBytes)
	}
	return &cfg, nil
}

// IsDevOrTest reports whether the process runs under a non-production
// profile. It controls CORS and the cookie Domain attribute.
func (c *Config) IsDevOrTest() bool {
	switch c.Env {
	case "development", "dev", "test":
		return true
	default:
		return false
	}
}
