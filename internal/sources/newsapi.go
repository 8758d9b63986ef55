package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"newsfuse/internal/feed"
	"newsfuse/internal/logger"
	"newsfuse/internal/metrics"
)

// newsAPIAdapter speaks the NewsAPI.org wire shape: a JSON object with an
// "articles" array.
type newsAPIAdapter struct {
	cfg    Config
	client *http.Client
}

type newsAPIResponse struct {
	Status   string           `json:"status"`
	Articles []newsAPIArticle `json:"articles"`
}

type newsAPIArticle struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
	Content     string `json:"content"`
}

func newNewsAPIAdapter(cfg Config, client *http.Client) *newsAPIAdapter {
	return &newsAPIAdapter{cfg: cfg, client: client}
}

func (a *newsAPIAdapter) Name() string { return a.cfg.Name }

func (a *newsAPIAdapter) Fetch(ctx context.Context, query string, maxItems int) []feed.Article {
	var resp newsAPIResponse
	params := url.Values{}
	if query != "" {
		params.Set("q", query)
	}
	if maxItems > 0 {
		params.Set("pageSize", strconv.Itoa(maxItems))
	}
	params.Set("apiKey", a.cfg.apiKey())

	if err := fetchJSON(ctx, a.client, a.cfg.URL, params, &resp); err != nil {
		logger.Warn("newsapi fetch failed", "source", a.cfg.Name, "error", err)
		metrics.Global.IncrementSourceFailures()
		return nil
	}

	var articles []feed.Article
	for _, raw := range resp.Articles {
		if maxItems > 0 && len(articles) >= maxItems {
			break
		}

		original := map[string]string{}
		if raw.URLToImage != "" {
			original["image"] = raw.URLToImage
		}

		published, _ := time.Parse(time.RFC3339, raw.PublishedAt)

		sourceName := a.cfg.Name
		if raw.Source.Name != "" {
			sourceName = raw.Source.Name
		}

		article, ok := buildArticle(sourceName, raw.Title, raw.URL, raw.Author,
			published, a.cfg.Categories, original,
			raw.Description, raw.Content)
		if !ok {
			continue
		}
		articles = append(articles, article)
	}

	logger.Debug("newsapi fetch done", "source", a.cfg.Name, "items", len(articles))
	return articles
}

// fetchJSON runs one GET with the shared client deadline and decodes the
// body into out.
func fetchJSON(ctx context.Context, client *http.Client, baseURL string, params url.Values, out interface{}) error {
	full := baseURL
	if len(params) > 0 {
		full = baseURL + "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, full, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Warn("failed to close response body", "error", closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
