// Package ai answers free-text questions about an article by trying a chain
// of providers, each under its own timeout, falling back deterministically
// to local extractive summarization. The orchestrator is total: it cannot
// fail for question answering.
package ai

import (
	"context"
	"strings"
	"time"
)

// Provider is one ranked attempt in the fallback chain. Adding or removing
// a provider is a data change in the chain, not a control-flow change.
type Provider interface {
	Name() string
	Model() string
	// Configured reports whether a usable credential is present. An
	// unconfigured provider is skipped, not treated as an error.
	Configured() bool
	Timeout() time.Duration
	Complete(ctx context.Context, prompt string) (string, error)
}

// Placeholder values that ship in .env templates and must not count as a
// real credential.
var placeholderMarkers = []string{
	"your-api-key",
	"your_api_key",
	"api-key-here",
	"api_key_here",
	"changeme",
	"placeholder",
	"xxxx",
}

func credentialConfigured(key string) bool {
	key = strings.TrimSpace(key)
	if key == "" {
		return false
	}
	lower := strings.ToLower(key)
	for _, marker := range placeholderMarkers {
		if strings.Contains(lower, marker) {
			return false
		}
	}
	return true
}
