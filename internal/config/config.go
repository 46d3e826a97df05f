package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Server struct {
		Port string `env:"PORT" env-default:"8080"`
	}

	DB struct {
		Host     string `env:"DB_HOST" env-default:"localhost"`
		Port     string `env:"DB_PORT" env-default:"5432"`
		User     string `env:"DB_USER" env-default:"progress_user"`
		Password string `env:"DB_PASSWORD" env-default:"secret"`
		Name     string `env:"DB_NAME" env-default:"progress_db"`
	}

	Redis struct {
		Host     string `env:"REDIS_HOST" env-default:""`
		Port     string `env:"REDIS_PORT" env-default:"6379"`
		Password string `env:"REDIS_PASSWORD" env-default:""`
		DB       int    `env:"REDIS_DB" env-default:"0"`
	}

	Upstream struct {
		// Base URL of the nutrition backend the fetchers call.
		BaseURL string        `env:"UPSTREAM_BASE_URL" env-default:"http://localhost:9000/api"`
		Timeout time.Duration `env:"UPSTREAM_TIMEOUT" env-default:"0s"`
	}

	JWT struct {
		Secret   string        `env:"JWT_SECRET" env-default:"dev-only-secret"`
		Issuer   string        `env:"JWT_ISSUER" env-default:"progress-engine"`
		TokenTTL time.Duration `env:"JWT_TOKEN_TTL" env-default:"24h"`
	}

	Cache struct {
		Freshness time.Duration `env:"CACHE_FRESHNESS" env-default:"5m"`
	}
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("config not loaded: %w", err)
	}
	return cfg, nil
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}
