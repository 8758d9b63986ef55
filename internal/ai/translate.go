package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"newsfuse/internal/cache"
	"newsfuse/internal/logger"
	"newsfuse/internal/metrics"
)

// Translation is the structural payload the translation prompt demands.
type Translation struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Content string `json:"content"`
}

// TranslationFormatError reports that no provider produced the required
// {title, summary, content} shape. Unlike question answering there is no
// meaningful extractive substitute for translation, so this error surfaces
// to the caller.
type TranslationFormatError struct {
	Reason string
}

func (e *TranslationFormatError) Error() string {
	return "translation format error: " + e.Reason
}

// Translate reuses the provider chain with a prompt constrained to a JSON
// payload. Code fences around the JSON are tolerated and stripped.
func (o *Orchestrator) Translate(ctx context.Context, text, targetLanguage string) (*Translation, error) {
	key := cache.Key("translate", targetLanguage, text)
	if o.answers != nil {
		if v, ok := o.answers.Get(key); ok {
			if t, ok := v.(*Translation); ok {
				metrics.Global.IncrementCacheHits()
				return t, nil
			}
		}
	}
	if o.store != nil {
		payload, ok, err := o.store.Get("translation", key)
		if err != nil {
			logger.Warn("translation store read failed", "error", err)
		} else if ok {
			var t Translation
			if err := json.Unmarshal([]byte(payload), &t); err == nil {
				metrics.Global.IncrementCacheHits()
				return &t, nil
			}
		}
	}

	raw, provider, ok := o.askChain(ctx, translationPrompt(text, targetLanguage))
	if !ok {
		metrics.Global.IncrementTranslationErrors()
		return nil, &TranslationFormatError{Reason: "no AI provider produced a translation"}
	}

	translation, err := ParseTranslation(raw)
	if err != nil {
		metrics.Global.IncrementTranslationErrors()
		return nil, err
	}

	if o.answers != nil {
		o.answers.Set(key, translation, o.cacheTTL)
	}
	if o.store != nil {
		if payload, err := json.Marshal(translation); err == nil {
			if err := o.store.Set("translation", key, string(payload), provider.Model()); err != nil {
				logger.Warn("translation store write failed", "error", err)
			}
		}
	}

	return translation, nil
}

var codeFencePattern = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// ParseTranslation extracts the JSON object from a provider response and
// validates that title, summary and content are all present.
func ParseTranslation(raw string) (*Translation, error) {
	body := strings.TrimSpace(raw)
	if m := codeFencePattern.FindStringSubmatch(body); m != nil {
		body = m[1]
	}

	start := strings.Index(body, "{")
	end := strings.LastIndex(body, "}")
	if start == -1 || end == -1 || end < start {
		return nil, &TranslationFormatError{Reason: "no JSON object in provider response"}
	}
	body = body[start : end+1]

	var fields map[string]interface{}
	if err := json.Unmarshal([]byte(body), &fields); err != nil {
		return nil, &TranslationFormatError{Reason: "invalid JSON in provider response"}
	}

	translation := &Translation{}
	for key, dst := range map[string]*string{
		"title":   &translation.Title,
		"summary": &translation.Summary,
		"content": &translation.Content,
	} {
		value, present := fields[key]
		if !present {
			return nil, &TranslationFormatError{Reason: fmt.Sprintf("missing %q field", key)}
		}
		s, isString := value.(string)
		if !isString {
			return nil, &TranslationFormatError{Reason: fmt.Sprintf("field %q is not a string", key)}
		}
		*dst = s
	}

	return translation, nil
}

func translationPrompt(text, targetLanguage string) string {
	return fmt.Sprintf(`Translate the following news text to %s.
Keep the meaning, tone and journalistic style of the original.
Do not translate proper names of brands or organizations.

Respond with ONLY a JSON object in exactly this shape, no other text:
{"title": "...", "summary": "...", "content": "..."}

Text to translate:
%s`, targetLanguage, text)
}
