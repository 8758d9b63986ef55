package sources

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// Providers routinely duplicate truncated snippets of the same body across
// description/content/summary fields. MergeContent keeps only the
// semantically-unique variants (compared after normalization) and joins them
// with paragraph breaks, recovering the most complete body available.
func MergeContent(parts ...string) string {
	var kept []string
	var keptNorm []string

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		norm := normalizeForCompare(part)
		if norm == "" {
			continue
		}

		dup := false
		for i, existing := range keptNorm {
			if existing == norm || strings.Contains(existing, norm) {
				dup = true
				break
			}
			// The new variant subsumes a shorter one already kept.
			if strings.Contains(norm, existing) {
				kept[i] = part
				keptNorm[i] = norm
				dup = true
				break
			}
		}
		if dup {
			continue
		}

		kept = append(kept, part)
		keptNorm = append(keptNorm, norm)
	}

	return strings.Join(kept, "\n\n")
}

// normalizeForCompare lowercases and strips punctuation so that re-encoded
// copies of the same snippet compare equal.
func normalizeForCompare(s string) string {
	s = strings.ToLower(s)
	b := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			b = append(b, r)
		} else if unicode.IsSpace(r) {
			b = append(b, ' ')
		}
	}
	return strings.Join(strings.Fields(string(b)), " ")
}

// Summarize returns the first three real sentences of the merged content.
func Summarize(content string) string {
	sentences := splitSentences(content)
	if len(sentences) > 3 {
		sentences = sentences[:3]
	}
	if len(sentences) == 0 {
		return ""
	}
	return strings.Join(sentences, ". ") + "."
}

func splitSentences(text string) []string {
	raw := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	var sentences []string
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if len(s) > 10 {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// Inline and structural tags that survive sanitization; everything else is
// unwrapped to its text content.
var allowedTags = map[string]bool{
	"a": true, "b": true, "strong": true, "i": true, "em": true, "u": true,
	"p": true, "br": true, "ul": true, "ol": true, "li": true,
	"blockquote": true, "h1": true, "h2": true, "h3": true, "h4": true,
}

// Tags whose content is dropped entirely.
var droppedTags = map[string]bool{
	"script": true, "style": true, "iframe": true, "noscript": true,
	"form": true, "object": true, "embed": true,
}

// SanitizeHTML reduces markup to the allow-list above before storage.
func SanitizeHTML(s string) string {
	if !strings.Contains(s, "<") {
		return strings.TrimSpace(s)
	}

	tok := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	skipDepth := 0

	for {
		tt := tok.Next()
		if tt == html.ErrorToken {
			break
		}

		t := tok.Token()
		switch tt {
		case html.StartTagToken:
			if droppedTags[t.Data] {
				skipDepth++
				continue
			}
			if skipDepth > 0 {
				continue
			}
			if allowedTags[t.Data] {
				writeTag(&b, t, false)
			}
		case html.EndTagToken:
			if droppedTags[t.Data] {
				if skipDepth > 0 {
					skipDepth--
				}
				continue
			}
			if skipDepth > 0 {
				continue
			}
			if allowedTags[t.Data] {
				b.WriteString("</" + t.Data + ">")
			}
		case html.SelfClosingTagToken:
			if skipDepth > 0 || droppedTags[t.Data] {
				continue
			}
			if allowedTags[t.Data] {
				writeTag(&b, t, true)
			}
		case html.TextToken:
			if skipDepth > 0 {
				continue
			}
			b.WriteString(t.Data)
		}
	}

	return strings.TrimSpace(b.String())
}

func writeTag(b *strings.Builder, t html.Token, selfClosing bool) {
	b.WriteString("<" + t.Data)
	// href is the only attribute worth keeping; tracking and style
	// attributes are dropped with the rest.
	if t.Data == "a" {
		for _, attr := range t.Attr {
			if attr.Key == "href" {
				b.WriteString(` href="` + html.EscapeString(attr.Val) + `"`)
				break
			}
		}
	}
	if selfClosing {
		b.WriteString("/>")
		return
	}
	b.WriteString(">")
}
