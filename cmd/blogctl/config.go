package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the agent configuration loaded from environment variables.
type Config struct {
	// Provider selection
	Provider string // groq, openai, anthropic, google
	Model    string // provider-specific model name, empty for default

	// API keys
	GroqKey      string
	OpenAIKey    string
	AnthropicKey string
	GoogleKey    string

	// Post archive (disabled when DSN is empty)
	ArchiveDriver string // sqlite or mysql
	ArchiveDSN    string

	// Prometheus /metrics listen address (disabled when empty)
	MetricsAddr string
}

// LoadConfig loads configuration from environment variables.
// A .env file is loaded first if present (silent fail if not found).
func LoadConfig() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Provider:      getEnvOrDefault("BLOG_PROVIDER", "groq"),
		Model:         os.Getenv("BLOG_MODEL"),
		GroqKey:       os.Getenv("GROQ_API_KEY"),
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		AnthropicKey:  os.Getenv("ANTHROPIC_API_KEY"),
		GoogleKey:     os.Getenv("GOOGLE_API_KEY"),
		ArchiveDriver: getEnvOrDefault("BLOG_ARCHIVE_DRIVER", "sqlite"),
		ArchiveDSN:    os.Getenv("BLOG_ARCHIVE_DSN"),
		MetricsAddr:   os.Getenv("BLOG_METRICS_ADDR"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that required configuration is present. A missing
// API key for the selected provider fails here, before any graph is
// built.
func (c *Config) Validate() error {
	switch c.Provider {
	case "groq":
		if c.GroqKey == "" {
			return fmt.Errorf("GROQ_API_KEY is required for groq provider")
		}
	case "openai":
		if c.OpenAIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for openai provider")
		}
	case "anthropic":
		if c.AnthropicKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required for anthropic provider")
		}
	case "google":
		if c.GoogleKey == "" {
			return fmt.Errorf("GOOGLE_API_KEY is required for google provider")
		}
	default:
		return fmt.Errorf("unknown BLOG_PROVIDER %q (groq, openai, anthropic, or google)", c.Provider)
	}

	switch c.ArchiveDriver {
	case "sqlite", "mysql":
	default:
		return fmt.Errorf("unknown BLOG_ARCHIVE_DRIVER %q (sqlite or mysql)", c.ArchiveDriver)
	}

	return nil
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
