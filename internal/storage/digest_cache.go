package storage

import (
	"encoding/json"
	"os"
	"sync"
	"time"
)

// DigestItem is one headline already delivered by the digest notifier.
type DigestItem struct {
	ID     string    `json:"id"`
	Title  string    `json:"title"`
	Link   string    `json:"link"`
	Source string    `json:"source"`
	SentAt time.Time `json:"sent_at"`
}

// DigestCache is a JSON-file record of delivered headlines, keeping reruns
// from notifying the same article twice within the TTL window.
type DigestCache struct {
	filePath string
	ttl      time.Duration
	items    map[string]DigestItem
	mu       sync.RWMutex
}

func NewDigestCache(filePath string, ttl time.Duration) *DigestCache {
	return &DigestCache{
		filePath: filePath,
		ttl:      ttl,
		items:    make(map[string]DigestItem),
	}
}

// Load reads the cache file; a missing file is a fresh cache, not an error.
func (c *DigestCache) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := os.ReadFile(c.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var items []DigestItem
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}

	cutoff := time.Now().Add(-c.ttl)
	for _, item := range items {
		if item.SentAt.After(cutoff) {
			c.items[item.ID] = item
		}
	}
	return nil
}

// Save writes the current cache back, dropping expired entries.
func (c *DigestCache) Save() error {
	c.mu.RLock()
	cutoff := time.Now().Add(-c.ttl)
	items := make([]DigestItem, 0, len(c.items))
	for _, item := range c.items {
		if item.SentAt.After(cutoff) {
			items = append(items, item)
		}
	}
	c.mu.RUnlock()

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.filePath, data, 0o644)
}

// WasSent reports whether an article id was delivered within the TTL.
func (c *DigestCache) WasSent(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[id]
	if !ok {
		return false
	}
	return item.SentAt.After(time.Now().Add(-c.ttl))
}

// MarkSent records a delivered article.
func (c *DigestCache) MarkSent(id, title, link, source string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[id] = DigestItem{
		ID:     id,
		Title:  title,
		Link:   link,
		Source: source,
		SentAt: time.Now(),
	}
}
