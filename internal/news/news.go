// Package news is the aggregation coordinator: it fans fetch tasks out
// through the bounded executor, merges and deduplicates the results,
// annotates every article with sentiment, and fronts the AI answer
// orchestrator. Every operation here is total: callers never see an
// unhandled failure, only an empty list or a translation format error.
package news

import (
	"context"
	"time"

	"newsfuse/internal/ai"
	"newsfuse/internal/executor"
	"newsfuse/internal/feed"
	"newsfuse/internal/logger"
	"newsfuse/internal/metrics"
	"newsfuse/internal/scraper"
	"newsfuse/internal/sentiment"
	"newsfuse/internal/sources"
)

type Service struct {
	adapters []sources.Adapter
	ai       *ai.Orchestrator
	scraper  *scraper.Scraper

	scrapeMaxArticles int
	scrapeMinContent  int
}

func NewService(adapters []sources.Adapter, orchestrator *ai.Orchestrator) *Service {
	return &Service{
		adapters:          adapters,
		ai:                orchestrator,
		scrapeMaxArticles: 5,
		scrapeMinContent:  200,
	}
}

// SetScraper enables the full-content upgrade for the top merged articles.
func (s *Service) SetScraper(sc *scraper.Scraper, maxArticles, minContent int) {
	s.scraper = sc
	if maxArticles > 0 {
		s.scrapeMaxArticles = maxArticles
	}
	if minContent > 0 {
		s.scrapeMinContent = minContent
	}
}

// FetchAllNews runs one aggregation pass: one fetch task per enabled source
// with the total limit split evenly across them, bounded fan-out, dedupe by
// canonical URL, newest-first sort, sentiment annotation. A failing source
// contributes zero articles; the call itself never fails.
func (s *Service) FetchAllNews(ctx context.Context, query string, totalLimit, maxConcurrency int) []feed.Article {
	start := time.Now()
	defer func() {
		metrics.Global.RecordAggregationTime(time.Since(start))
		metrics.Global.SetLastRun()
	}()

	if len(s.adapters) == 0 {
		return nil
	}

	perSource := totalLimit / len(s.adapters)
	if perSource < 1 {
		perSource = 1
	}

	tasks := make([]executor.Task, len(s.adapters))
	for i, adapter := range s.adapters {
		a := adapter
		tasks[i] = func(taskCtx context.Context) ([]feed.Article, error) {
			return a.Fetch(taskCtx, query, perSource), nil
		}
	}

	results := executor.RunBounded(ctx, tasks, maxConcurrency)

	batches := make([][]feed.Article, 0, len(results))
	fetched := 0
	for i, r := range results {
		if r.Err != nil {
			// Adapters recover internally, so this is unexpected; keep the
			// run alive regardless.
			logger.Warn("fetch task failed", "source", s.adapters[i].Name(), "error", r.Err)
			metrics.Global.IncrementSourceFailures()
			continue
		}
		batches = append(batches, r.Articles)
		fetched += len(r.Articles)
	}
	metrics.Global.AddArticlesFetched(fetched)

	merged := feed.Merge(batches, totalLimit)

	s.upgradeContent(ctx, merged)

	for i := range merged {
		merged[i].Sentiment = sentiment.Classify(merged[i].Title + " " + merged[i].Content)
	}

	logger.Info("aggregation pass done",
		"sources", len(s.adapters), "fetched", fetched, "merged", len(merged),
		"elapsed", time.Since(start))
	return merged
}

// upgradeContent scrapes the full body for the top articles whose merged
// content is still a stub. Scrape failures keep the existing content.
func (s *Service) upgradeContent(ctx context.Context, articles []feed.Article) {
	if s.scraper == nil {
		return
	}

	var urls []string
	for _, a := range articles {
		if len(urls) >= s.scrapeMaxArticles {
			break
		}
		if len(a.Content) < s.scrapeMinContent {
			urls = append(urls, a.Link)
		}
	}
	if len(urls) == 0 {
		return
	}

	full := s.scraper.ExtractAll(ctx, urls)
	for i := range articles {
		if result, ok := full[articles[i].Link]; ok {
			articles[i].Content = result.Content
			if articles[i].Summary == "" {
				articles[i].Summary = sources.Summarize(result.Content)
			}
		}
	}
}

// GetAIResponse answers a free-text question about an article. Total: even
// with zero providers configured the extractive fallback responds.
func (s *Service) GetAIResponse(ctx context.Context, articleText, question string) ai.Answer {
	return s.ai.GetAnswer(ctx, articleText, question)
}

// Translate produces a structural {title, summary, content} translation or
// an *ai.TranslationFormatError.
func (s *Service) Translate(ctx context.Context, text, targetLanguage string) (*ai.Translation, error) {
	return s.ai.Translate(ctx, text, targetLanguage)
}

// AnalyzeSentiment classifies arbitrary text with the same lexicon used
// during ingestion.
func (s *Service) AnalyzeSentiment(text string) sentiment.Label {
	return sentiment.Classify(text)
}
