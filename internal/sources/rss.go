package sources

import (
	"context"
	"net/http"

	"github.com/mmcdole/gofeed"

	"newsfuse/internal/feed"
	"newsfuse/internal/logger"
	"newsfuse/internal/metrics"
)

type rssAdapter struct {
	cfg    Config
	parser *gofeed.Parser
}

func newRSSAdapter(cfg Config, client *http.Client) *rssAdapter {
	parser := gofeed.NewParser()
	parser.Client = client
	return &rssAdapter{cfg: cfg, parser: parser}
}

func (a *rssAdapter) Name() string { return a.cfg.Name }

func (a *rssAdapter) Fetch(ctx context.Context, query string, maxItems int) []feed.Article {
	parsed, err := a.parser.ParseURLWithContext(a.cfg.URL, ctx)
	if err != nil {
		logger.Warn("rss fetch failed", "source", a.cfg.Name, "url", a.cfg.URL, "error", err)
		metrics.Global.IncrementSourceFailures()
		return nil
	}

	var articles []feed.Article
	for _, item := range parsed.Items {
		if maxItems > 0 && len(articles) >= maxItems {
			break
		}
		if !matchesQuery(query, item.Title, item.Description) {
			continue
		}

		author := ""
		if item.Author != nil {
			author = item.Author.Name
		}

		original := map[string]string{}
		if item.Image != nil && item.Image.URL != "" {
			original["image"] = item.Image.URL
		}
		if item.GUID != "" {
			original["guid"] = item.GUID
		}

		published := timeOrZero(item.PublishedParsed)
		categories := item.Categories
		if len(categories) == 0 {
			categories = a.cfg.Categories
		}

		// RSS duplicates the body across description, content and the
		// content:encoded extension; MergeContent sorts that out.
		article, ok := buildArticle(a.cfg.Name, item.Title, item.Link, author,
			published, categories, original,
			item.Description, item.Content, encodedContent(item))
		if !ok {
			continue
		}
		articles = append(articles, article)
	}

	logger.Debug("rss fetch done", "source", a.cfg.Name, "items", len(articles))
	return articles
}

// encodedContent digs the content:encoded extension out when gofeed did not
// already surface it as Item.Content.
func encodedContent(item *gofeed.Item) string {
	exts, ok := item.Extensions["content"]
	if !ok {
		return ""
	}
	for _, ext := range exts["encoded"] {
		if ext.Value != "" {
			return ext.Value
		}
	}
	return ""
}
