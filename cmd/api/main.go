package main

import (
	"log"
	"log/slog"
	"os"

	"tickerbrief/db"
	"tickerbrief/internal/handler"
	"tickerbrief/internal/repository"
	"tickerbrief/pkg/analyzer"
	"tickerbrief/pkg/llm"
	"tickerbrief/pkg/news"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	contextRepo := repository.NewContextRepository(db.DB)

	var cache analyzer.ResultCache
	if os.Getenv("REDIS_URL") != "" {
		if err := db.ConnectRedis(); err != nil {
			log.Fatalf("error connecting to Redis: %v", err)
		}
		defer db.CloseRedis()
		cache = db.NewContextCache()
	}

	var primary, fallback, feed news.Provider
	var resolver analyzer.Resolver

	if key := os.Getenv("STOCKDATA_API_KEY"); key != "" {
		client := news.NewStockDataClient(key)
		primary = client
		resolver = client
	}
	if key := os.Getenv("NEWS_API_KEY"); key != "" {
		fallback = news.NewNewsAPIClient(key)
	}

	feed = primary
	if key := os.Getenv("FINNHUB_API_KEY"); key != "" {
		feed = news.NewFinnhubClient(key)
	}

	if primary == nil && fallback == nil {
		log.Fatal("no news source API keys configured")
	}
	if feed == nil {
		feed = fallback
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
		Cache:      cache,
	})

	contextHandler := handler.NewContextHandler(contextAnalyzer, contextRepo)
	newsHandler := handler.NewNewsHandler(feed)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/context/:symbol", contextHandler.GetContext)
	r.GET("/context/:symbol/history", contextHandler.GetHistory)
	r.GET("/context/:symbol/latest", contextHandler.GetLatest)
	r.GET("/news/:symbol", newsHandler.GetNews)
	r.GET("/health", contextHandler.GetHealth)

	err = r.Run(":8080")
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
