package config

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv      string `env:"APP_ENV" envDefault:"local"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	PostgresDSN string `env:"POSTGRES_DSN,required"`
	APIPort     int    `env:"API_PORT" envDefault:"8000"`
	HealthPort  int    `env:"HEALTH_PORT" envDefault:"8080"`

	JobQueueSize  int           `env:"JOB_QUEUE_SIZE" envDefault:"64"`
	ScrapeTimeout time.Duration `env:"SCRAPE_TIMEOUT" envDefault:"30s"`
	DefaultLimit  int           `env:"DEFAULT_SCRAPE_LIMIT" envDefault:"100"`

	RedditClientID     string `env:"REDDIT_CLIENT_ID"`
	RedditClientSecret string `env:"REDDIT_CLIENT_SECRET"`
	RedditUserAgent    string `env:"REDDIT_USER_AGENT" envDefault:"brandpulse/0.1"`
	TwitterBearerToken string `env:"TWITTER_BEARER_TOKEN"`

	LLMAPIKey string `env:"LLM_API_KEY"`
	LLMModel  string `env:"LLM_MODEL" envDefault:"gpt-4o-mini"`

	// BrandKeywordsJSON is a JSON object mapping a brand to its context
	// keyword set, e.g. {"nike":["shoe","comfort"]}. Brands without an entry
	// pass the context filter on brand mention alone.
	BrandKeywordsJSON string `env:"BRAND_KEYWORDS"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// BrandKeywords parses BrandKeywordsJSON. An empty value yields an empty map,
// leaving callers to fall back to their built-in defaults.
func (c *Config) BrandKeywords() (map[string][]string, error) {
	if c.BrandKeywordsJSON == "" {
		return map[string][]string{}, nil
	}

	out := map[string][]string{}
	if err := json.Unmarshal([]byte(c.BrandKeywordsJSON), &out); err != nil {
		return nil, fmt.Errorf("parse BRAND_KEYWORDS: %w", err)
	}

	return out, nil
}
