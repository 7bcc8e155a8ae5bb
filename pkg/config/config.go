package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrMissingAPIKey is returned by LoadChat when no completion API key is configured.
var ErrMissingAPIKey = errors.New("OPENAI_API_KEY is not set")

// Server configures the owner directory HTTP service.
type Server struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
}

// Chat configures the interactive completion client.
type Chat struct {
	APIKey   string `env:"OPENAI_API_KEY"`
	BaseURL  string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	Model    string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`
}

// String hides the API key so the config can be logged safely.
func (c Chat) String() string {
	return fmt.Sprintf("Chat{BaseURL:%s Model:%s LogLevel:%s}", c.BaseURL, c.Model, c.LogLevel)
}

// LoadServer reads environment variables, optionally from a .env file if present.
func LoadServer() (Server, error) {
	loadDotEnv()
	cfg, err := env.ParseAs[Server]()
	if err != nil {
		return Server{}, fmt.Errorf("parse server config: %w", err)
	}
	return cfg, nil
}

// LoadChat reads the client configuration. The API key is mandatory.
func LoadChat() (Chat, error) {
	loadDotEnv()
	cfg, err := env.ParseAs[Chat]()
	if err != nil {
		return Chat{}, fmt.Errorf("parse chat config: %w", err)
	}
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	if cfg.APIKey == "" {
		return Chat{}, ErrMissingAPIKey
	}
	return cfg, nil
}

func loadDotEnv() {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()
}
