package analyzer

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"tickerbrief/internal/model"
	"tickerbrief/pkg/llm"
	"tickerbrief/pkg/news"
	"tickerbrief/pkg/sentiment"
)

const (
	defaultNewsLimit = 10
	maxContextChars  = 4000
	excerptSentences = 3

	noNewsSummary    = "No news found."
	noSummaryMessage = "No summary available."
)

type Resolver interface {
	ResolveSymbol(ctx context.Context, name string) (string, error)
}

type ResultCache interface {
	GetResult(symbol string) (*model.ContextResult, error)
	PutResult(result *model.ContextResult) error
}

type Config struct {
	Primary    news.Provider
	Fallback   news.Provider
	Resolver   Resolver
	Summarizer llm.Summarizer
	Cache      ResultCache
	NewsLimit  int
}

type Analyzer struct {
	cfg Config
}

func New(cfg Config) *Analyzer {
	if cfg.NewsLimit <= 0 {
		cfg.NewsLimit = defaultNewsLimit
	}
	return &Analyzer{cfg: cfg}
}

// Analyze builds the context record for a ticker symbol or company name.
// It never fails: when every upstream is unavailable the caller gets the
// neutral default record.
func (a *Analyzer) Analyze(ctx context.Context, symbolOrName string) *model.ContextResult {
	symbol := a.resolveSymbol(ctx, symbolOrName)

	if a.cfg.Cache != nil {
		cached, err := a.cfg.Cache.GetResult(symbol)
		if err != nil {
			slog.Warn("context cache read failed", "symbol", symbol, "error", err)
		}
		if cached != nil {
			return cached
		}
	}

	result := &model.ContextResult{
		Symbol:    symbol,
		Sources:   []model.NewsSource{},
		CreatedAt: time.Now(),
	}

	articles := a.fetchNews(ctx, symbol)
	if len(articles) == 0 {
		result.Sentiment = model.SentimentNeutral
		result.Summary = noNewsSummary
		return result
	}

	text := buildContextText(articles)
	result.Sentiment = sentiment.Classify(text)
	result.Summary = a.summarize(ctx, symbol, text)

	for _, article := range articles {
		if article.URL == "" {
			continue
		}
		result.Sources = append(result.Sources, model.NewsSource{
			Title: article.Headline,
			URL:   article.URL,
		})
	}

	if a.cfg.Cache != nil {
		if err := a.cfg.Cache.PutResult(result); err != nil {
			slog.Warn("context cache write failed", "symbol", symbol, "error", err)
		}
	}

	return result
}

func (a *Analyzer) resolveSymbol(ctx context.Context, input string) string {
	trimmed := strings.TrimSpace(input)

	if looksLikeSymbol(trimmed) {
		return strings.ToUpper(trimmed)
	}

	if a.cfg.Resolver != nil {
		resolved, err := a.cfg.Resolver.ResolveSymbol(ctx, trimmed)
		if err != nil {
			slog.Warn("symbol resolution failed", "input", trimmed, "error", err)
		} else if resolved != "" {
			return resolved
		}
	}

	return trimmed
}

// fetchNews tries the primary provider first and falls back on error or an
// empty result.
func (a *Analyzer) fetchNews(ctx context.Context, symbol string) []news.Article {
	for _, provider := range []news.Provider{a.cfg.Primary, a.cfg.Fallback} {
		if provider == nil {
			continue
		}

		articles, err := provider.CompanyNews(ctx, symbol, a.cfg.NewsLimit)
		if err != nil {
			slog.Warn("news fetch failed", "provider", provider.Name(), "symbol", symbol, "error", err)
			continue
		}

		if len(articles) > 0 {
			return articles
		}
	}

	return nil
}

func (a *Analyzer) summarize(ctx context.Context, symbol string, text string) string {
	if a.cfg.Summarizer != nil {
		summary, err := a.cfg.Summarizer.Summarize(ctx, symbol, text)
		if err != nil {
			slog.Warn("summarization failed", "symbol", symbol, "error", err)
		} else if summary != "" {
			return summary
		}
	}

	if ex := excerpt(text, excerptSentences); ex != "" {
		return ex
	}
	return noSummaryMessage
}

func looksLikeSymbol(s string) bool {
	if s == "" || len(s) > 5 {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func buildContextText(articles []news.Article) string {
	var sb strings.Builder
	for _, a := range articles {
		if a.Headline == "" {
			continue
		}
		sb.WriteString(a.Headline)
		if a.Detail != "" {
			sb.WriteString(" ")
			sb.WriteString(a.Detail)
		}
		sb.WriteString(" ")
	}

	text := strings.TrimSpace(sb.String())
	if len(text) > maxContextChars {
		cut := maxContextChars
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}
	return text
}

// excerpt returns the first n sentences of text, used when no summarizer is
// configured or the call fails.
func excerpt(text string, n int) string {
	var sb strings.Builder
	count := 0

	for i, r := range text {
		sb.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if i+1 >= len(text) || text[i+1] == ' ' {
				count++
				if count >= n {
					break
				}
			}
		}
	}

	return strings.TrimSpace(sb.String())
}
