package ai

import (
	"sort"
	"strings"
)

// Stop words removed from the question before keyword matching.
var stopWords = map[string]bool{
	"a": true, "an": true, "the": true, "is": true, "are": true, "was": true,
	"were": true, "be": true, "been": true, "being": true, "do": true,
	"does": true, "did": true, "have": true, "has": true, "had": true,
	"what": true, "when": true, "where": true, "who": true, "why": true,
	"how": true, "which": true, "whose": true, "can": true, "could": true,
	"will": true, "would": true, "should": true, "shall": true, "may": true,
	"might": true, "about": true, "this": true, "that": true, "these": true,
	"those": true, "there": true, "here": true, "and": true, "or": true,
	"but": true, "for": true, "with": true, "from": true, "into": true,
	"they": true, "them": true, "their": true, "you": true, "your": true,
	"its": true, "his": true, "her": true, "our": true, "not": true,
	"new": true, "tell": true, "please": true, "many": true, "much": true,
}

const (
	keywordScore         = 3
	shortSentencePenalty = 2
	evidenceMaxChars     = 200
)

// ExtractiveAnswer computes a deterministic, network-free answer by scoring
// and selecting sentences from the article. Two-level fallback: if no
// sentence scores above zero, the first two sentences are returned verbatim,
// so the result is non-empty whenever the article has any real sentence.
func ExtractiveAnswer(articleText, question string) (string, []string) {
	sentences := splitSentences(articleText)
	if len(sentences) == 0 {
		text := strings.TrimSpace(articleText)
		if text != "" {
			return text, nil
		}
		return "I could not find enough article text to answer that question.", nil
	}

	keywords := questionKeywords(question)

	type scored struct {
		index int
		text  string
		score int
	}

	ranked := make([]scored, 0, len(sentences))
	for i, sentence := range sentences {
		lower := strings.ToLower(sentence)

		score := 0
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				score += keywordScore
			}
		}

		// Earlier sentences carry the lede.
		if bonus := 5 - i/3; bonus > 0 {
			score += bonus
		}
		if len(sentence) < 30 {
			score -= shortSentencePenalty
		}

		ranked = append(ranked, scored{index: i, text: sentence, score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	top := ranked
	if len(top) > 3 {
		top = top[:3]
	}

	if top[0].score <= 0 {
		// Nothing matched the question; fall back to the opening of the
		// article verbatim.
		picked := sentences
		if len(picked) > 2 {
			picked = picked[:2]
		}
		return strings.Join(picked, ". "), truncateAll(picked)
	}

	answers := make([]string, len(top))
	for i, s := range top {
		answers[i] = s.text
	}
	return strings.Join(answers, ". "), truncateAll(answers)
}

// questionKeywords lowercases the question, splits on whitespace and drops
// stop words and tokens of two characters or fewer.
func questionKeywords(question string) []string {
	var keywords []string
	for _, raw := range strings.Fields(strings.ToLower(question)) {
		token := strings.Trim(raw, ".,!?;:\"'()[]")
		if len(token) <= 2 || stopWords[token] {
			continue
		}
		keywords = append(keywords, token)
	}
	return keywords
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

func truncateAll(sentences []string) []string {
	out := make([]string, len(sentences))
	for i, s := range sentences {
		if len(s) > evidenceMaxChars {
			s = s[:evidenceMaxChars]
		}
		out[i] = s
	}
	return out
}
