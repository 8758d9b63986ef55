package sources

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"newsfuse/internal/feed"
	"newsfuse/internal/logger"
	"newsfuse/internal/metrics"
)

// newsdataAdapter speaks the Newsdata.io wire shape: a JSON object with a
// "results" array.
type newsdataAdapter struct {
	cfg    Config
	client *http.Client
}

type newsdataResponse struct {
	Status  string            `json:"status"`
	Results []newsdataArticle `json:"results"`
}

type newsdataArticle struct {
	Title       string   `json:"title"`
	Link        string   `json:"link"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	PubDate     string   `json:"pubDate"`
	Creator     []string `json:"creator"`
	Category    []string `json:"category"`
	SourceID    string   `json:"source_id"`
	ImageURL    string   `json:"image_url"`
}

func newNewsdataAdapter(cfg Config, client *http.Client) *newsdataAdapter {
	return &newsdataAdapter{cfg: cfg, client: client}
}

func (a *newsdataAdapter) Name() string { return a.cfg.Name }

func (a *newsdataAdapter) Fetch(ctx context.Context, query string, maxItems int) []feed.Article {
	var resp newsdataResponse
	params := url.Values{}
	if query != "" {
		params.Set("q", query)
	}
	if maxItems > 0 {
		params.Set("size", strconv.Itoa(maxItems))
	}
	params.Set("apikey", a.cfg.apiKey())

	if err := fetchJSON(ctx, a.client, a.cfg.URL, params, &resp); err != nil {
		logger.Warn("newsdata fetch failed", "source", a.cfg.Name, "error", err)
		metrics.Global.IncrementSourceFailures()
		return nil
	}

	var articles []feed.Article
	for _, raw := range resp.Results {
		if maxItems > 0 && len(articles) >= maxItems {
			break
		}

		original := map[string]string{}
		if raw.ImageURL != "" {
			original["image"] = raw.ImageURL
		}
		if raw.SourceID != "" {
			original["source_id"] = raw.SourceID
		}

		// Newsdata timestamps come as "2006-01-02 15:04:05" in UTC.
		published, _ := time.Parse("2006-01-02 15:04:05", raw.PubDate)

		categories := raw.Category
		if len(categories) == 0 {
			categories = a.cfg.Categories
		}

		article, ok := buildArticle(a.cfg.Name, raw.Title, raw.Link, strings.Join(raw.Creator, ", "),
			published, categories, original,
			raw.Description, raw.Content)
		if !ok {
			continue
		}
		articles = append(articles, article)
	}

	logger.Debug("newsdata fetch done", "source", a.cfg.Name, "items", len(articles))
	return articles
}
