package sentiment

import (
	"strings"

	"github.com/grassmudhorses/vader-go/lexicon"
	"github.com/grassmudhorses/vader-go/sentitext"
)

const (
	positiveThreshold = 0.1
	negativeThreshold = -0.1
)

// Classify maps free text to one of the model sentiment labels using the
// VADER compound score. Empty text is neutral.
func Classify(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return "neutral"
	}

	parsed := sentitext.Parse(text, lexicon.DefaultLexicon)
	score := sentitext.PolarityScore(parsed)

	switch {
	case score.Compound > positiveThreshold:
		return "positive"
	case score.Compound < negativeThreshold:
		return "negative"
	default:
		return "neutral"
	}
}
