package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"tickerbrief/db"
	"tickerbrief/internal/repository"
	"tickerbrief/pkg/analyzer"
	"tickerbrief/pkg/llm"
	"tickerbrief/pkg/news"

	"github.com/joho/godotenv"
)

// warm pre-computes context results for a watchlist of symbols so the API
// serves them from cache. Symbols go through the refresh queue, which other
// processes may also feed.
func main() {
	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	err = db.ConnectRedis()
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer db.CloseRedis()

	var primary, fallback news.Provider
	var resolver analyzer.Resolver

	if key := os.Getenv("STOCKDATA_API_KEY"); key != "" {
		client := news.NewStockDataClient(key)
		primary = client
		resolver = client
	}
	if key := os.Getenv("NEWS_API_KEY"); key != "" {
		fallback = news.NewNewsAPIClient(key)
	}

	if primary == nil && fallback == nil {
		slog.Error("no news source API keys configured")
		return
	}

	var summarizer llm.Summarizer
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		summarizer = llm.NewOpenAIClient(key)
	} else if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		summarizer = llm.NewAnthropicClient(key)
	}

	contextAnalyzer := analyzer.New(analyzer.Config{
		Primary:    primary,
		Fallback:   fallback,
		Resolver:   resolver,
		Summarizer: summarizer,
		Cache:      db.NewContextCache(),
	})

	contextRepo := repository.NewContextRepository(db.DB)

	seeded := 0
	for _, symbol := range strings.Split(os.Getenv("WATCHLIST"), ",") {
		symbol = strings.TrimSpace(symbol)
		if symbol == "" {
			continue
		}

		if err := db.PushToQueue(db.RefreshQueueKey, symbol); err != nil {
			slog.Error("error pushing to refresh queue", "symbol", symbol, "error", err)
			continue
		}
		seeded++
	}

	pending, err := db.GetQueueLength(db.RefreshQueueKey)
	if err != nil {
		slog.Error("error reading refresh queue length", "error", err)
	}

	slog.Info("refresh queue seeded", "seeded", seeded, "pending", pending)

	var warmed, errors int

	for {
		symbol, err := db.PopFromQueue(db.RefreshQueueKey, 2*time.Second)
		if err != nil {
			// Timeout means the queue is drained.
			break
		}

		result := contextAnalyzer.Analyze(context.Background(), symbol)

		if err := contextRepo.SaveLookup(result); err != nil {
			slog.Error("error saving context lookup", "symbol", result.Symbol, "error", err)
			errors++
			continue
		}

		slog.Info("context warmed", "symbol", result.Symbol, "sentiment", result.Sentiment, "sources", len(result.Sources))
		warmed++
	}

	slog.Info("warm complete", "warmed", warmed, "errors", errors)
}
