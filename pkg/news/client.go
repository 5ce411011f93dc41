package news

import (
	"context"
	"time"
)

type Article struct {
	Headline    string
	Detail      string
	URL         string
	Publisher   string
	Source      string
	PublishedAt time.Time
	Symbols     []string
}

type Provider interface {
	CompanyNews(ctx context.Context, symbol string, limit int) ([]Article, error)
	Name() string
}
