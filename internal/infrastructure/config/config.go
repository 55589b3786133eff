package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// SessionTTL bounds both the JWT expiry and the Redis session key.
	SessionTTL time.Duration `env:"SESSION_TTL, default=24h"`

	// VerifyPasswords enables bcrypt verification at login. Off by default:
	// the portals authenticate against a seeded demo directory.
	VerifyPasswords bool `env:"AUTH_VERIFY_PASSWORDS, default=false"`

	// SeedDemoUsers inserts the demo user directory at startup when set.
	SeedDemoUsers bool `env:"SEED_DEMO_USERS, default=false"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=portal_system"`
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
