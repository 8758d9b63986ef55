// Package storage holds the optional persistence behind the pipeline: a
// Postgres cache for paid AI results and a JSON file tracking which
// headlines the digest already delivered.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"newsfuse/internal/logger"
)

// AICache persists provider answers and translations so repeated requests
// for the same content skip paid calls across process restarts.
type AICache struct {
	db  *sql.DB
	ttl time.Duration
}

// NewAICache connects and ensures the schema exists.
func NewAICache(connectionString string, ttl time.Duration) (*AICache, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	c := &AICache{db: db, ttl: ttl}
	if err := c.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	logger.Info("postgres AI cache connected")
	return c, nil
}

func (c *AICache) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS ai_cache (
		id SERIAL PRIMARY KEY,
		kind VARCHAR(32) NOT NULL,
		content_hash VARCHAR(64) NOT NULL,
		payload TEXT NOT NULL,
		model VARCHAR(100),
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		last_used_at TIMESTAMP NOT NULL DEFAULT NOW(),
		use_count INTEGER DEFAULT 1,
		UNIQUE (kind, content_hash)
	);

	CREATE INDEX IF NOT EXISTS idx_ai_cache_hash ON ai_cache(kind, content_hash);
	CREATE INDEX IF NOT EXISTS idx_ai_cache_created_at ON ai_cache(created_at);
	`

	if _, err := c.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Get returns the cached payload for (kind, hash) if present and fresh.
func (c *AICache) Get(kind, hash string) (string, bool, error) {
	cutoff := time.Now().Add(-c.ttl)

	var payload string
	query := `
		UPDATE ai_cache
		SET last_used_at = NOW(), use_count = use_count + 1
		WHERE kind = $1 AND content_hash = $2 AND created_at > $3
		RETURNING payload
	`
	err := c.db.QueryRow(query, kind, hash, cutoff).Scan(&payload)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read ai cache: %w", err)
	}

	return payload, true, nil
}

// Set stores or refreshes the payload for (kind, hash).
func (c *AICache) Set(kind, hash, payload, model string) error {
	query := `
		INSERT INTO ai_cache (kind, content_hash, payload, model, created_at, last_used_at, use_count)
		VALUES ($1, $2, $3, $4, NOW(), NOW(), 1)
		ON CONFLICT (kind, content_hash) DO UPDATE SET
			payload = EXCLUDED.payload,
			model = EXCLUDED.model,
			created_at = NOW(),
			last_used_at = NOW(),
			use_count = ai_cache.use_count + 1
	`

	if _, err := c.db.Exec(query, kind, hash, payload, model); err != nil {
		return fmt.Errorf("failed to write ai cache: %w", err)
	}
	return nil
}

// Cleanup removes entries older than the TTL.
func (c *AICache) Cleanup() error {
	cutoff := time.Now().Add(-c.ttl)

	result, err := c.db.Exec(`DELETE FROM ai_cache WHERE created_at < $1`, cutoff)
	if err != nil {
		return fmt.Errorf("failed to cleanup ai cache: %w", err)
	}

	if rows, _ := result.RowsAffected(); rows > 0 {
		logger.Info("cleaned up expired AI cache entries", "rows", rows)
	}
	return nil
}

func (c *AICache) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}
