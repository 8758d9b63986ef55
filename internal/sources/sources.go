// Package sources turns provider-specific payloads (RSS feeds, JSON news
// APIs) into canonical feed.Articles. Adapters never raise: on any
// transport or parse error they log, count the failure and return an empty
// slice.
package sources

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"newsfuse/internal/feed"
)

// Config describes one configured origin.
type Config struct {
	Name       string   `yaml:"name"`
	Type       string   `yaml:"type"` // rss | newsapi | newsdata
	URL        string   `yaml:"url"`
	APIKeyEnv  string   `yaml:"api_key_env,omitempty"`
	Enabled    bool     `yaml:"enabled"`
	Categories []string `yaml:"categories,omitempty"`
}

type sourcesFile struct {
	Sources []Config `yaml:"sources"`
}

// Load reads the source list from a YAML file.
func Load(path string) ([]Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var file sourcesFile
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&file); err != nil {
		return nil, err
	}
	return file.Sources, nil
}

// Adapter fetches articles from one origin. Implementations must be total:
// failures are logged and yield an empty result.
type Adapter interface {
	Name() string
	Fetch(ctx context.Context, query string, maxItems int) []feed.Article
}

// NewAdapter builds the adapter matching cfg.Type.
func NewAdapter(cfg Config, client *http.Client) (Adapter, error) {
	switch cfg.Type {
	case "rss":
		return newRSSAdapter(cfg, client), nil
	case "newsapi":
		return newNewsAPIAdapter(cfg, client), nil
	case "newsdata":
		return newNewsdataAdapter(cfg, client), nil
	default:
		return nil, fmt.Errorf("unknown source type %q for source %q", cfg.Type, cfg.Name)
	}
}

// HTTPClient returns the shared outbound client with the fixed fetch
// deadline.
func HTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

func (c Config) apiKey() string {
	if c.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(c.APIKeyEnv)
}
