package feed

import (
	"crypto/sha1"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"

	"newsfuse/internal/metrics"
)

// CanonicalURL strips the query string and fragment from a link and
// lowercases scheme, host and path. The result is the deduplication key:
// https://X.com/a?utm=1#frag and https://x.com/a collapse to the same value.
func CanonicalURL(link string) string {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil || u.Host == "" {
		return strings.ToLower(strings.TrimSpace(link))
	}

	u.RawQuery = ""
	u.Fragment = ""
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Path = strings.ToLower(u.Path)

	return u.String()
}

// ArticleID derives a stable identifier from the canonical URL, so repeated
// fetches of the same item converge to the same id regardless of which
// source returned it first.
func ArticleID(canonicalURL string) string {
	h := sha1.New()
	h.Write([]byte(canonicalURL))
	return hex.EncodeToString(h.Sum(nil))
}

// Merge flattens per-source results, deduplicates by canonical URL keeping
// the first article seen, recomputes ids, sorts newest-first and truncates
// to limit (limit <= 0 means no truncation). Running Merge again over its
// own output yields the same set and ids.
func Merge(results [][]Article, limit int) []Article {
	seen := make(map[string]struct{})
	var merged []Article

	for _, batch := range results {
		for _, a := range batch {
			canonical := CanonicalURL(a.Link)
			if _, dup := seen[canonical]; dup {
				metrics.Global.IncrementDuplicatesFiltered()
				continue
			}
			seen[canonical] = struct{}{}

			a.ID = ArticleID(canonical)
			merged = append(merged, a)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].PublishedAt.After(merged[j].PublishedAt)
	})

	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}

	return merged
}
