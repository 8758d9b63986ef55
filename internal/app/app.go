// Package app wires the pipeline together and runs one aggregation pass.
package app

import (
	"context"
	"fmt"
	"strings"

	"newsfuse/internal/ai"
	"newsfuse/internal/cache"
	"newsfuse/internal/config"
	"newsfuse/internal/feed"
	"newsfuse/internal/logger"
	"newsfuse/internal/news"
	"newsfuse/internal/ratelimit"
	"newsfuse/internal/scraper"
	"newsfuse/internal/sources"
	"newsfuse/internal/storage"
	"newsfuse/internal/telegram"
)

const digestSize = 10

// Run executes one aggregation pass: fetch, merge, annotate, print the
// digest, and optionally deliver it to Telegram.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	service, closeFn, err := BuildService(cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	ctx := context.Background()
	articles := service.FetchAllNews(ctx, cfg.Query, cfg.TotalLimit, cfg.MaxConcurrency)
	logger.Info("articles aggregated", "count", len(articles))

	if len(articles) == 0 {
		logger.Warn("no articles aggregated; every source failed or returned nothing")
		return nil
	}

	top := articles
	if len(top) > digestSize {
		top = top[:digestSize]
	}
	fmt.Print(FormatDigest(top))

	if cfg.TelegramToken != "" {
		if err := notify(cfg, top); err != nil {
			logger.Error("digest notification failed", "error", err)
		}
	}

	return nil
}

// BuildService assembles the coordinator from configuration. The returned
// close function releases the optional Postgres connection.
func BuildService(cfg *config.Config) (*news.Service, func(), error) {
	srcConfigs, err := sources.Load(cfg.SourcesConfigPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load sources config: %w", err)
	}

	client := sources.HTTPClient(cfg.FetchTimeout)

	var adapters []sources.Adapter
	for _, sc := range srcConfigs {
		if !sc.Enabled {
			continue
		}
		adapter, err := sources.NewAdapter(sc, client)
		if err != nil {
			logger.Warn("skipping source", "source", sc.Name, "error", err)
			continue
		}
		adapters = append(adapters, adapter)
	}
	logger.Info("sources configured", "enabled", len(adapters), "total", len(srcConfigs))

	orchestrator := ai.New(
		ai.NewGemini(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.AITimeout),
		ai.NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.AITimeout),
	)
	orchestrator.SetLimiter(ratelimit.New(nil, cfg.MaxAIRequests))
	orchestrator.SetCache(cache.New(), cfg.AnswerCacheTTL)

	closeFn := func() {}
	if cfg.DatabaseURL != "" {
		store, err := storage.NewAICache(cfg.DatabaseURL, cfg.AnswerCacheTTL)
		if err != nil {
			logger.Warn("postgres AI cache unavailable, continuing without it", "error", err)
		} else {
			orchestrator.SetStore(store)
			closeFn = func() {
				if err := store.Close(); err != nil {
					logger.Warn("failed to close AI cache", "error", err)
				}
			}
		}
	}

	service := news.NewService(adapters, orchestrator)
	service.SetScraper(scraper.New(nil), cfg.ScrapeMaxArticles, cfg.ScrapeMinContent)

	return service, closeFn, nil
}

// FormatDigest renders the top articles as a plain-text digest.
func FormatDigest(articles []feed.Article) string {
	var b strings.Builder

	b.WriteString("Top stories\n")
	b.WriteString("-----------\n")
	for i, a := range articles {
		b.WriteString(fmt.Sprintf("%2d. [%s] %s (%s)\n", i+1, a.Sentiment, a.Title, a.Source))
		if a.Summary != "" {
			b.WriteString("    " + a.Summary + "\n")
		}
		b.WriteString("    " + a.Link + "\n")
	}

	return b.String()
}

// notify delivers unseen headlines to Telegram, recording them in the digest
// cache so reruns stay quiet.
func notify(cfg *config.Config, articles []feed.Article) error {
	seen := storage.NewDigestCache(cfg.DigestPath, cfg.DigestTTL)
	if err := seen.Load(); err != nil {
		logger.Warn("could not load digest cache, starting fresh", "error", err)
	}

	var b strings.Builder
	fresh := 0
	for _, a := range articles {
		if seen.WasSent(a.ID) {
			continue
		}
		b.WriteString(fmt.Sprintf("<a href=\"%s\">%s</a> | %s\n\n", a.Link, a.Title, a.Source))
		seen.MarkSent(a.ID, a.Title, a.Link, a.Source)
		fresh++
	}

	if fresh == 0 {
		logger.Info("no new headlines to deliver")
		return nil
	}

	if err := telegram.SendMessage(cfg.TelegramToken, cfg.TelegramChatID, b.String()); err != nil {
		return err
	}
	logger.Info("digest delivered", "headlines", fresh)

	return seen.Save()
}
