package feed

import (
	"testing"
	"time"
)

func TestCanonicalURL_StripsQueryAndFragment(t *testing.T) {
	a := CanonicalURL("https://X.com/a?utm=1#frag")
	b := CanonicalURL("https://x.com/a")
	if a != b {
		t.Errorf("expected same canonical key, got %q and %q", a, b)
	}
}

func TestCanonicalURL_LowercasesSchemeHostPath(t *testing.T) {
	got := CanonicalURL("HTTPS://Example.COM/News/Item")
	want := "https://example.com/news/item"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestArticleID_Stable(t *testing.T) {
	canonical := CanonicalURL("https://example.com/a")
	if ArticleID(canonical) != ArticleID(canonical) {
		t.Errorf("id must be deterministic for the same canonical URL")
	}
}

func TestMerge_DeduplicatesByCanonicalURL(t *testing.T) {
	now := time.Now()
	batchA := []Article{
		{Title: "First copy", Link: "https://example.com/story?src=rss", PublishedAt: now},
	}
	batchB := []Article{
		{Title: "Second copy", Link: "https://EXAMPLE.com/story", PublishedAt: now.Add(-time.Hour)},
	}

	merged := Merge([][]Article{batchA, batchB}, 0)

	if len(merged) != 1 {
		t.Fatalf("expected 1 article after dedupe, got %d", len(merged))
	}
	// First seen wins.
	if merged[0].Title != "First copy" {
		t.Errorf("expected input-order-preserving dedupe, got %q", merged[0].Title)
	}
	if merged[0].ID == "" {
		t.Errorf("merged article must have a recomputed id")
	}
}

func TestMerge_SortsNewestFirst(t *testing.T) {
	now := time.Now()
	batch := []Article{
		{Title: "old", Link: "https://example.com/old", PublishedAt: now.Add(-2 * time.Hour)},
		{Title: "new", Link: "https://example.com/new", PublishedAt: now},
		{Title: "mid", Link: "https://example.com/mid", PublishedAt: now.Add(-time.Hour)},
	}

	merged := Merge([][]Article{batch}, 0)

	wantOrder := []string{"new", "mid", "old"}
	for i, want := range wantOrder {
		if merged[i].Title != want {
			t.Errorf("position %d: got %q, want %q", i, merged[i].Title, want)
		}
	}
}

func TestMerge_TruncatesWithoutReordering(t *testing.T) {
	now := time.Now()
	batch := []Article{
		{Title: "a", Link: "https://example.com/a", PublishedAt: now},
		{Title: "b", Link: "https://example.com/b", PublishedAt: now.Add(-time.Hour)},
		{Title: "c", Link: "https://example.com/c", PublishedAt: now.Add(-2 * time.Hour)},
	}

	merged := Merge([][]Article{batch}, 2)

	if len(merged) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(merged))
	}
	if merged[0].Title != "a" || merged[1].Title != "b" {
		t.Errorf("truncation must keep the newest articles in order")
	}
}

func TestMerge_Idempotent(t *testing.T) {
	now := time.Now()
	input := [][]Article{
		{
			{Title: "one", Link: "https://example.com/one?x=1", PublishedAt: now},
			{Title: "two", Link: "https://example.com/two", PublishedAt: now.Add(-time.Minute)},
		},
		{
			{Title: "one again", Link: "https://example.com/one", PublishedAt: now},
		},
	}

	once := Merge(input, 0)
	twice := Merge([][]Article{once}, 0)

	if len(once) != len(twice) {
		t.Fatalf("second merge changed the set: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID || once[i].Link != twice[i].Link {
			t.Errorf("position %d differs after re-merge", i)
		}
	}
}
