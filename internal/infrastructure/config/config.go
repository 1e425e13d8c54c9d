package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all environment-provided settings. MONGO_URI is the only
// required value: the process refuses to start without it. The teacher
// password and JWT secret carry development defaults that must be overridden
// in production.
type Config struct {
	Port            string `env:"PORT,             default=10000"`
	Env             string `env:"ENV,              default=development"`
	JWTSecret       string `env:"JWT_SECRET,       default=dev-signing-secret"`
	TeacherPassword string `env:"TEACHER_PASSWORD, default=Teach2025"`
	LogLevel        string `env:"LOG_LEVEL,        default=info"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI             string `env:"MONGO_URI, required"`
	Database        string `env:"MONGO_DB,  default=englishLessons"`
	ConnectAttempts int    `env:"MONGO_CONNECT_ATTEMPTS, default=5"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// Production reports whether the process runs with production settings.
func (c *Config) Production() bool {
	return c.Env == "production"
}
