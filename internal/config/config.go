package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Aggregation settings
	SourcesConfigPath string
	TotalLimit        int
	MaxConcurrency    int
	Query             string
	FetchTimeout      time.Duration

	// Scraper settings
	ScrapeMaxArticles int // cap of articles to upgrade with full content per run
	ScrapeMinContent  int // merged content shorter than this triggers a scrape

	// AI settings
	GeminiAPIKey   string
	GeminiModel    string
	OpenAIAPIKey   string
	OpenAIModel    string
	AITimeout      time.Duration
	MaxAIRequests  int // total AI calls per day (0 = unlimited)
	AnswerCacheTTL time.Duration

	// Storage settings
	DatabaseURL string // optional Postgres answer/translation cache
	DigestPath  string // file cache of already delivered headlines
	DigestTTL   time.Duration

	// Telegram digest (optional)
	TelegramToken  string
	TelegramChatID string

	// App settings
	Debug bool
}

func Load() (*Config, error) {
	cfg := &Config{
		SourcesConfigPath: "configs/sources.yaml",
		TotalLimit:        50,
		MaxConcurrency:    5,
		FetchTimeout:      10 * time.Second,
		ScrapeMaxArticles: 5,
		ScrapeMinContent:  200,
		GeminiModel:       "gemini-1.5-flash",
		OpenAIModel:       "gpt-4o-mini",
		AITimeout:         8 * time.Second,
		MaxAIRequests:     50,
		AnswerCacheTTL:    6 * time.Hour,
		DigestPath:        "digest_sent.json",
		DigestTTL:         48 * time.Hour,
	}

	if v := os.Getenv("SOURCES_CONFIG_PATH"); v != "" {
		cfg.SourcesConfigPath = v
	}
	cfg.Query = os.Getenv("NEWS_QUERY")

	cfg.TotalLimit = getEnvIntOrDefault("TOTAL_LIMIT", cfg.TotalLimit)
	cfg.MaxConcurrency = getEnvIntOrDefault("MAX_CONCURRENCY", cfg.MaxConcurrency)
	cfg.ScrapeMaxArticles = getEnvIntOrDefault("SCRAPE_MAX_ARTICLES", cfg.ScrapeMaxArticles)
	cfg.MaxAIRequests = getEnvIntOrDefault("MAX_AI_REQUESTS", cfg.MaxAIRequests)

	if v := os.Getenv("FETCH_TIMEOUT_SECONDS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.FetchTimeout = time.Duration(val) * time.Second
		}
	}
	if v := os.Getenv("AI_TIMEOUT_SECONDS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.AITimeout = time.Duration(val) * time.Second
		}
	}
	if v := os.Getenv("ANSWER_CACHE_TTL_HOURS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.AnswerCacheTTL = time.Duration(val) * time.Hour
		}
	}

	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		cfg.GeminiModel = v
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		cfg.OpenAIModel = v
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.DigestPath = getEnvOrDefault("DIGEST_CACHE_PATH", cfg.DigestPath)
	if v := os.Getenv("DIGEST_TTL_HOURS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.DigestTTL = time.Duration(val) * time.Hour
		}
	}

	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	cfg.TelegramChatID = os.Getenv("TELEGRAM_CHAT_ID")

	if os.Getenv("DEBUG") == "true" {
		cfg.Debug = true
	}

	return cfg, cfg.Validate()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks ranges only: the pipeline must stay fully functional with
// zero AI providers configured, so no credential is required.
func (c *Config) Validate() error {
	if c.TotalLimit <= 0 {
		return fmt.Errorf("TOTAL_LIMIT must be positive")
	}
	if c.MaxConcurrency <= 0 {
		return fmt.Errorf("MAX_CONCURRENCY must be positive")
	}
	if c.TelegramToken != "" && c.TelegramChatID == "" {
		return fmt.Errorf("TELEGRAM_CHAT_ID is required when TELEGRAM_TOKEN is set")
	}
	return nil
}
