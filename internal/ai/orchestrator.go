package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"newsfuse/internal/cache"
	"newsfuse/internal/logger"
	"newsfuse/internal/metrics"
	"newsfuse/internal/ratelimit"
)

// Answer is the uniform result of the orchestrator, whichever step produced
// it. Grounded is true only when a real provider call against the article
// text produced the answer.
type Answer struct {
	Answer   string                 `json:"answer"`
	Model    string                 `json:"model"`
	Grounded bool                   `json:"grounded"`
	Meta     map[string]interface{} `json:"meta,omitempty"`
}

// Store persists provider results across runs (optional, Postgres-backed).
type Store interface {
	Get(kind, hash string) (payload string, ok bool, err error)
	Set(kind, hash, payload, model string) error
}

// Orchestrator walks an ordered provider chain until one succeeds, then
// falls back to local extraction. Providers are attempted strictly one at a
// time, never raced, to keep a single coherent answer and avoid
// double-billing paid APIs.
type Orchestrator struct {
	providers []Provider
	limiter   *ratelimit.Limiter
	answers   *cache.Cache
	cacheTTL  time.Duration
	store     Store
}

func New(providers ...Provider) *Orchestrator {
	return &Orchestrator{providers: providers}
}

// SetLimiter installs a per-provider call budget. A capped provider is
// skipped like an unconfigured one.
func (o *Orchestrator) SetLimiter(l *ratelimit.Limiter) { o.limiter = l }

// SetCache installs an in-memory answer cache.
func (o *Orchestrator) SetCache(c *cache.Cache, ttl time.Duration) {
	o.answers = c
	o.cacheTTL = ttl
}

// SetStore installs a persistent answer cache behind the in-memory one.
func (o *Orchestrator) SetStore(s Store) { o.store = s }

// Conversational noise that should not burn a paid AI call.
var greetingPattern = regexp.MustCompile(`(?i)^\s*(hi|hello|hey|yo|howdy|greetings|good\s+(morning|afternoon|evening|day))(\s+there)?\s*[!.?]*\s*$`)

const greetingReply = "Hello! Ask me anything about this article and I'll do my best to answer."

// GetAnswer is total: it returns a non-empty answer for any input, even with
// zero providers configured.
func (o *Orchestrator) GetAnswer(ctx context.Context, articleText, question string) Answer {
	if greetingPattern.MatchString(question) {
		return Answer{
			Answer:   greetingReply,
			Model:    "greeting-handler",
			Grounded: false,
			Meta:     map[string]interface{}{"reason": "greeting"},
		}
	}

	key := cache.Key("answer", articleText, question)
	if cached, ok := o.cachedAnswer(key); ok {
		return cached
	}

	prompt := answerPrompt(articleText, question)
	if text, provider, ok := o.askChain(ctx, prompt); ok {
		answer := Answer{
			Answer:   text,
			Model:    provider.Model(),
			Grounded: true,
			Meta:     map[string]interface{}{"provider": provider.Name()},
		}
		o.storeAnswer(key, answer)
		return answer
	}

	// Guaranteed terminal step: never fails, no network.
	text, evidence := ExtractiveAnswer(articleText, question)
	metrics.Global.IncrementFallbackAnswers()

	meta := map[string]interface{}{"provider": "local"}
	if len(evidence) > 0 {
		meta["evidence"] = evidence
	}
	return Answer{
		Answer:   text,
		Model:    "extractive-fallback",
		Grounded: false,
		Meta:     meta,
	}
}

// askChain tries each configured provider in priority order. Transport
// errors, non-2xx responses and empty completions are soft failures that
// advance the chain.
func (o *Orchestrator) askChain(ctx context.Context, prompt string) (string, Provider, bool) {
	for _, p := range o.providers {
		if !p.Configured() {
			logger.Debug("provider not configured, skipping", "provider", p.Name())
			continue
		}
		if o.limiter != nil && !o.limiter.Allow(p.Name()) {
			continue
		}

		attemptCtx, cancel := context.WithTimeout(ctx, p.Timeout())
		text, err := p.Complete(attemptCtx, prompt)
		cancel()

		if err != nil || strings.TrimSpace(text) == "" {
			logger.Warn("provider attempt failed", "provider", p.Name(), "error", err)
			metrics.Global.IncrementProviderFailures()
			continue
		}

		metrics.Global.IncrementProviderSuccesses()
		return strings.TrimSpace(text), p, true
	}
	return "", nil, false
}

func (o *Orchestrator) cachedAnswer(key string) (Answer, bool) {
	if o.answers != nil {
		if v, ok := o.answers.Get(key); ok {
			if answer, ok := v.(Answer); ok {
				metrics.Global.IncrementCacheHits()
				return answer, true
			}
		}
	}

	if o.store != nil {
		payload, ok, err := o.store.Get("answer", key)
		if err != nil {
			logger.Warn("answer store read failed", "error", err)
		} else if ok {
			var answer Answer
			if err := json.Unmarshal([]byte(payload), &answer); err == nil {
				metrics.Global.IncrementCacheHits()
				if o.answers != nil {
					o.answers.Set(key, answer, o.cacheTTL)
				}
				return answer, true
			}
		}
	}

	return Answer{}, false
}

func (o *Orchestrator) storeAnswer(key string, answer Answer) {
	if o.answers != nil {
		o.answers.Set(key, answer, o.cacheTTL)
	}
	if o.store != nil {
		payload, err := json.Marshal(answer)
		if err == nil {
			if err := o.store.Set("answer", key, string(payload), answer.Model); err != nil {
				logger.Warn("answer store write failed", "error", err)
			}
		}
	}
}

func answerPrompt(articleText, question string) string {
	return fmt.Sprintf(`You are a news assistant. Answer the question using only the article below.
If the article does not contain the answer, say so briefly.

ARTICLE:
%s

QUESTION:
%s

Answer in two to four sentences, plain text.`, articleText, question)
}
