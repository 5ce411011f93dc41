package model

import "time"

const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

func ValidSentiment(label string) bool {
	switch label {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return true
	}
	return false
}

type NewsSource struct {
	Title string
	URL   string
}

type ContextResult struct {
	Symbol    string
	Sentiment string
	Summary   string
	Sources   []NewsSource
	CreatedAt time.Time
}

type ContextLookup struct {
	ID        int64
	Symbol    string
	Sentiment string
	Summary   string
	Sources   []NewsSource
	CreatedAt time.Time
}
