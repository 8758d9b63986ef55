// Package scraper upgrades truncated feed snippets with the full article
// body fetched from the original page. Best effort only: a failed scrape
// leaves the merged feed content in place.
package scraper

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"newsfuse/internal/logger"
	"newsfuse/internal/retry"
)

// Result is the full content extracted for one URL.
type Result struct {
	Title   string
	Content string
	URL     string
}

type Scraper struct {
	client *http.Client
}

func New(client *http.Client) *Scraper {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Scraper{client: client}
}

// Content selectors tried in order; most news sites match one of the first
// few.
var contentSelectors = []string{
	"article p",
	".article-body p",
	".article-content p",
	".post-content p",
	".entry-content p",
	".content p",
	"main p",
	"p",
}

var titleSelectors = []string{
	"h1",
	".article-title",
	".headline",
	".entry-title",
	"title",
}

// Extract fetches one page and pulls out the article text. Transient HTTP
// failures get one retry.
func (s *Scraper) Extract(ctx context.Context, url string) (*Result, error) {
	var doc *goquery.Document

	err := retry.WithRetry(ctx, retry.Config{MaxAttempts: 2, Delay: time.Second}, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}

		resp, err := s.client.Do(req)
		if err != nil {
			return fmt.Errorf("error loading page: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("HTTP error: %d", resp.StatusCode)
		}

		doc, err = goquery.NewDocumentFromReader(resp.Body)
		if err != nil {
			return fmt.Errorf("error parsing HTML: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	content := extractContent(doc)
	if content == "" {
		return nil, fmt.Errorf("no article content found")
	}

	return &Result{
		Title:   extractTitle(doc),
		Content: content,
		URL:     url,
	}, nil
}

// ExtractAll scrapes several URLs sequentially with a small pause between
// requests so origin sites are not hammered.
func (s *Scraper) ExtractAll(ctx context.Context, urls []string) map[string]*Result {
	results := make(map[string]*Result)

	for i, url := range urls {
		if i > 0 {
			select {
			case <-ctx.Done():
				return results
			case <-time.After(500 * time.Millisecond):
			}
		}

		result, err := s.Extract(ctx, url)
		if err != nil {
			logger.Warn("scrape failed", "url", url, "error", err)
			continue
		}
		if len(result.Content) > 100 {
			results[url] = result
		}
	}

	return results
}

func extractContent(doc *goquery.Document) string {
	var best []string

	for _, selector := range contentSelectors {
		var paragraphs []string
		doc.Find(selector).Each(func(i int, sel *goquery.Selection) {
			text := strings.TrimSpace(sel.Text())
			if len(text) > 20 && !isJunkLine(text) {
				paragraphs = append(paragraphs, text)
			}
		})
		// Three paragraphs from one selector is a confident match.
		if len(paragraphs) >= 3 {
			return strings.Join(paragraphs, "\n\n")
		}
		if len(paragraphs) > len(best) {
			best = paragraphs
		}
	}

	return strings.Join(best, "\n\n")
}

func extractTitle(doc *goquery.Document) string {
	for _, selector := range titleSelectors {
		title := strings.TrimSpace(doc.Find(selector).First().Text())
		if title != "" {
			return title
		}
	}
	return ""
}

// Boilerplate that shows up inside article containers on most news sites.
var junkIndicators = []string{
	"cookie", "gdpr", "subscribe", "newsletter", "advertisement",
	"read more", "click here", "follow us", "share this", "sign up",
	"log in", "privacy policy", "terms of service",
}

func isJunkLine(line string) bool {
	lower := strings.ToLower(line)
	for _, indicator := range junkIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}
