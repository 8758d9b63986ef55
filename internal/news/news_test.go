package news

import (
	"context"
	"testing"
	"time"

	"newsfuse/internal/ai"
	"newsfuse/internal/feed"
	"newsfuse/internal/sentiment"
	"newsfuse/internal/sources"
)

// stubAdapter serves a fixed article list and records the limit it was asked for.
type stubAdapter struct {
	name     string
	articles []feed.Article
	gotLimit int
}

func (s *stubAdapter) Name() string { return s.name }

func (s *stubAdapter) Fetch(ctx context.Context, query string, maxItems int) []feed.Article {
	s.gotLimit = maxItems
	return s.articles
}

func article(title, link string, published time.Time) feed.Article {
	return feed.Article{Title: title, Link: link, Source: "stub", PublishedAt: published}
}

func TestFetchAllNews_MergesAndAnnotates(t *testing.T) {
	now := time.Now().UTC()
	a := &stubAdapter{name: "a", articles: []feed.Article{
		article("Company wins prestigious award", "https://example.com/award", now),
	}}
	b := &stubAdapter{name: "b", articles: []feed.Article{
		article("Company wins prestigious award", "https://EXAMPLE.com/award?utm_source=x", now),
		article("Committee holds hearing on policy", "https://example.com/hearing", now.Add(-time.Hour)),
	}}
	svc := NewService([]sources.Adapter{a, b}, ai.New())

	got := svc.FetchAllNews(context.Background(), "", 10, 2)

	if len(got) != 2 {
		t.Fatalf("expected 2 articles after dedup, got %d", len(got))
	}
	if got[0].Title != "Company wins prestigious award" {
		t.Errorf("newest article should come first, got %q", got[0].Title)
	}
	if got[0].Sentiment != sentiment.Positive {
		t.Errorf("award headline should be positive, got %q", got[0].Sentiment)
	}
	if got[1].Sentiment != sentiment.Neutral {
		t.Errorf("hearing headline should be neutral, got %q", got[1].Sentiment)
	}
	for _, a := range got {
		if a.ID == "" {
			t.Errorf("merged articles must carry a canonical id")
		}
	}
}

func TestFetchAllNews_SplitsLimitAcrossSources(t *testing.T) {
	a := &stubAdapter{name: "a"}
	b := &stubAdapter{name: "b"}
	svc := NewService([]sources.Adapter{a, b}, ai.New())

	svc.FetchAllNews(context.Background(), "", 10, 2)

	if a.gotLimit != 5 || b.gotLimit != 5 {
		t.Errorf("per-source limit should be total/len(sources), got %d and %d", a.gotLimit, b.gotLimit)
	}
}

func TestFetchAllNews_PerSourceLimitAtLeastOne(t *testing.T) {
	adapters := make([]sources.Adapter, 5)
	stubs := make([]*stubAdapter, 5)
	for i := range adapters {
		stubs[i] = &stubAdapter{name: "s"}
		adapters[i] = stubs[i]
	}
	svc := NewService(adapters, ai.New())

	svc.FetchAllNews(context.Background(), "", 3, 2)

	for i, s := range stubs {
		if s.gotLimit != 1 {
			t.Errorf("adapter %d got limit %d, want 1", i, s.gotLimit)
		}
	}
}

func TestFetchAllNews_NoAdapters(t *testing.T) {
	svc := NewService(nil, ai.New())
	if got := svc.FetchAllNews(context.Background(), "", 10, 2); len(got) != 0 {
		t.Errorf("no adapters should yield an empty result, got %d", len(got))
	}
}

func TestFetchAllNews_EmptySourcesYieldEmptyResult(t *testing.T) {
	svc := NewService([]sources.Adapter{
		&stubAdapter{name: "empty-a"},
		&stubAdapter{name: "empty-b"},
	}, ai.New())

	if got := svc.FetchAllNews(context.Background(), "", 10, 2); len(got) != 0 {
		t.Errorf("sources with nothing to report should yield an empty list, got %d", len(got))
	}
}

func TestGetAIResponse_Total(t *testing.T) {
	svc := NewService(nil, ai.New())

	answer := svc.GetAIResponse(context.Background(), "Short article body here.", "What happened?")
	if answer.Answer == "" {
		t.Errorf("answer must be non-empty even with no providers configured")
	}
}

func TestAnalyzeSentiment(t *testing.T) {
	svc := NewService(nil, ai.New())
	if got := svc.AnalyzeSentiment("Massacre causes chaos"); got != sentiment.Negative {
		t.Errorf("expected negative, got %q", got)
	}
}
