package feed

import (
	"time"

	"newsfuse/internal/sentiment"
)

// Article is the canonical unit flowing through aggregation. Adapters build
// it from raw provider items; the coordinator annotates sentiment before the
// article leaves the pipeline, after which it is read-only.
type Article struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Link        string            `json:"link"`
	Summary     string            `json:"summary"`
	Content     string            `json:"content"`
	Author      string            `json:"author"`
	Source      string            `json:"source"`
	PublishedAt time.Time         `json:"publishedAt"`
	Categories  []string          `json:"categories,omitempty"`
	Sentiment   sentiment.Label   `json:"sentiment"`
	Original    map[string]string `json:"originalItem,omitempty"`
}
