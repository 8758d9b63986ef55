// Package sentiment classifies text with a fixed weighted lexicon. The
// scorer is deterministic and side-effect free: it is called once per
// article during aggregation and again ad hoc for arbitrary text.
package sentiment

import "strings"

type Label string

const (
	Positive Label = "positive"
	Negative Label = "negative"
	Neutral  Label = "neutral"
)

// Thresholds are intentionally asymmetric: positive language is weighted
// more conservatively than negative to reduce false positives on neutral
// news writing.
const (
	positiveThreshold = 1.5
	negativeThreshold = -2
)

const punctuation = ".,!?;:\"()[]{}<>«»—"

// Score walks the tokens left to right, summing lexicon weights. A negation
// word flips the sign of the next scored token and is then cleared.
func Score(text string) float64 {
	var total float64
	negated := false

	for _, raw := range strings.Fields(strings.ToLower(text)) {
		token := strings.Trim(raw, punctuation)
		if token == "" {
			continue
		}

		if negations[token] {
			negated = true
			continue
		}

		if weight, ok := lexicon[token]; ok {
			if negated {
				weight = -weight
			}
			total += weight
			negated = false
		}
	}

	return total
}

// Classify maps a score to a label.
func Classify(text string) Label {
	total := Score(text)
	switch {
	case total > positiveThreshold:
		return Positive
	case total < negativeThreshold:
		return Negative
	default:
		return Neutral
	}
}
