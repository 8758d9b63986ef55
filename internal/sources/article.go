package sources

import (
	"strings"
	"time"

	"newsfuse/internal/feed"
)

// buildArticle assembles the canonical article from raw provider fields.
// Items missing a title or link never enter the pipeline; the second return
// is false for them.
func buildArticle(sourceName, title, link, author string, published time.Time, categories []string, original map[string]string, textParts ...string) (feed.Article, bool) {
	title = strings.TrimSpace(title)
	link = strings.TrimSpace(link)
	if title == "" || link == "" {
		return feed.Article{}, false
	}

	sanitized := make([]string, 0, len(textParts))
	for _, part := range textParts {
		sanitized = append(sanitized, SanitizeHTML(part))
	}
	content := MergeContent(sanitized...)

	if published.IsZero() {
		published = time.Now()
	}

	return feed.Article{
		Title:       title,
		Link:        link,
		Summary:     Summarize(content),
		Content:     content,
		Author:      strings.TrimSpace(author),
		Source:      sourceName,
		PublishedAt: published.UTC(),
		Categories:  categories,
		Original:    original,
	}, true
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

// matchesQuery is the client-side filter for origins that cannot search
// server-side (plain RSS feeds). An empty query matches everything.
func matchesQuery(query string, texts ...string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, t := range texts {
		if strings.Contains(strings.ToLower(t), query) {
			return true
		}
	}
	return false
}
