package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const rssFixture = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>Test Feed</title>
  <link>https://example.com</link>
  <item>
    <title>Solar breakthrough announced</title>
    <link>https://example.com/solar</link>
    <description>Scientists unveiled a new solar panel today. It is far more efficient. Production starts next year.</description>
    <pubDate>Mon, 02 Jan 2006 15:04:05 GMT</pubDate>
    <category>science</category>
  </item>
  <item>
    <title></title>
    <link>https://example.com/missing-title</link>
    <description>This one has no title and must be dropped.</description>
  </item>
</channel>
</rss>`

func TestRSSAdapter_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(rssFixture))
	}))
	defer server.Close()

	adapter := newRSSAdapter(Config{Name: "test-rss", Type: "rss", URL: server.URL}, server.Client())
	articles := adapter.Fetch(context.Background(), "", 10)

	if len(articles) != 1 {
		t.Fatalf("expected 1 article (item without title dropped), got %d", len(articles))
	}

	a := articles[0]
	if a.Title != "Solar breakthrough announced" {
		t.Errorf("wrong title: %q", a.Title)
	}
	if a.Source != "test-rss" {
		t.Errorf("wrong source: %q", a.Source)
	}
	if a.Summary == "" {
		t.Errorf("summary should be derived from the description")
	}
	if a.PublishedAt.IsZero() {
		t.Errorf("publishedAt should be parsed")
	}
	if a.PublishedAt.Location() != time.UTC {
		t.Errorf("publishedAt must be normalized to UTC, got %v", a.PublishedAt.Location())
	}
}

func TestRSSAdapter_QueryFilter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(rssFixture))
	}))
	defer server.Close()

	adapter := newRSSAdapter(Config{Name: "test-rss", URL: server.URL}, server.Client())

	if got := adapter.Fetch(context.Background(), "solar", 10); len(got) != 1 {
		t.Errorf("query matching the item should keep it, got %d articles", len(got))
	}
	if got := adapter.Fetch(context.Background(), "cricket", 10); len(got) != 0 {
		t.Errorf("query not matching any item should filter everything, got %d articles", len(got))
	}
}

func TestRSSAdapter_TransportErrorYieldsEmpty(t *testing.T) {
	adapter := newRSSAdapter(Config{Name: "down", URL: "http://127.0.0.1:1/feed"},
		&http.Client{Timeout: time.Second})

	if got := adapter.Fetch(context.Background(), "", 10); len(got) != 0 {
		t.Errorf("transport failure must yield an empty result, got %d", len(got))
	}
}

const newsAPIFixture = `{
  "status": "ok",
  "articles": [
    {
      "source": {"name": "Example Times"},
      "author": "A. Reporter",
      "title": "Markets rally on earnings",
      "description": "Stocks climbed today.",
      "url": "https://news.example.com/markets",
      "urlToImage": "https://news.example.com/markets.jpg",
      "publishedAt": "2024-05-01T10:30:00Z",
      "content": "Stocks climbed today. Analysts pointed to strong earnings across the sector."
    },
    {
      "source": {"name": "Example Times"},
      "title": "No link on this one",
      "description": "Must be dropped",
      "url": ""
    }
  ]
}`

func TestNewsAPIAdapter_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("apiKey") == "" {
			t.Errorf("apiKey query parameter missing")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(newsAPIFixture))
	}))
	defer server.Close()

	t.Setenv("TEST_NEWSAPI_KEY", "secret")
	adapter := newNewsAPIAdapter(Config{
		Name: "newsapi", URL: server.URL, APIKeyEnv: "TEST_NEWSAPI_KEY",
	}, server.Client())

	articles := adapter.Fetch(context.Background(), "markets", 10)

	if len(articles) != 1 {
		t.Fatalf("expected 1 article (missing url dropped), got %d", len(articles))
	}

	a := articles[0]
	if a.Title != "Markets rally on earnings" {
		t.Errorf("wrong title: %q", a.Title)
	}
	// Provider-level source name wins over the config name.
	if a.Source != "Example Times" {
		t.Errorf("wrong source: %q", a.Source)
	}
	if a.Original["image"] != "https://news.example.com/markets.jpg" {
		t.Errorf("image URL should be retained in originalItem: %v", a.Original)
	}
	// Description is a truncated prefix of content; the merge keeps one copy.
	if !strings.Contains(a.Content, "strong earnings") {
		t.Errorf("content merge lost the complete variant: %q", a.Content)
	}
}

func TestNewsAPIAdapter_ServerErrorYieldsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	adapter := newNewsAPIAdapter(Config{Name: "newsapi", URL: server.URL}, server.Client())

	if got := adapter.Fetch(context.Background(), "", 10); len(got) != 0 {
		t.Errorf("non-2xx must yield an empty result, got %d", len(got))
	}
}

const newsdataFixture = `{
  "status": "success",
  "results": [
    {
      "title": "Storm approaches coast",
      "link": "https://data.example.com/storm",
      "description": "A major storm is approaching the coast tonight.",
      "content": "A major storm is approaching the coast tonight. Residents are advised to stay indoors.",
      "pubDate": "2024-05-01 08:00:00",
      "creator": ["B. Writer"],
      "category": ["weather"],
      "source_id": "exampledata",
      "image_url": "https://data.example.com/storm.jpg"
    }
  ]
}`

func TestNewsdataAdapter_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(newsdataFixture))
	}))
	defer server.Close()

	adapter := newNewsdataAdapter(Config{Name: "newsdata", URL: server.URL}, server.Client())
	articles := adapter.Fetch(context.Background(), "", 10)

	if len(articles) != 1 {
		t.Fatalf("expected 1 article, got %d", len(articles))
	}

	a := articles[0]
	if a.Author != "B. Writer" {
		t.Errorf("wrong author: %q", a.Author)
	}
	if len(a.Categories) != 1 || a.Categories[0] != "weather" {
		t.Errorf("wrong categories: %v", a.Categories)
	}
	if a.PublishedAt.IsZero() {
		t.Errorf("pubDate should be parsed")
	}
}

func TestNewAdapter_UnknownType(t *testing.T) {
	if _, err := NewAdapter(Config{Name: "x", Type: "soap"}, nil); err == nil {
		t.Errorf("expected an error for unknown source type")
	}
}
