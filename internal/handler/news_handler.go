package handler

import (
	"log/slog"
	"net/http"
	"time"

	"tickerbrief/pkg/news"

	"github.com/gin-gonic/gin"
)

type NewsHandler struct {
	provider news.Provider
}

func NewNewsHandler(provider news.Provider) *NewsHandler {
	return &NewsHandler{provider: provider}
}

func (h *NewsHandler) GetNews(c *gin.Context) {
	symbol := c.Param("symbol")
	if !validSymbolParam(symbol) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid symbol"})
		return
	}

	limit := getNewsQueryLimit(c)

	articles, err := h.provider.CompanyNews(c.Request.Context(), symbol, limit)
	if err != nil {
		slog.Error("error fetching news", "provider", h.provider.Name(), "symbol", symbol, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "News provider error"})
		return
	}

	if len(articles) > limit {
		articles = articles[:limit]
	}

	items := make([]NewsItemResponse, 0, len(articles))
	for _, a := range articles {
		items = append(items, NewsItemResponse{
			Headline:    a.Headline,
			Detail:      a.Detail,
			URL:         a.URL,
			Publisher:   a.Publisher,
			Source:      a.Source,
			PublishedAt: a.PublishedAt.Format(time.RFC3339),
			Symbols:     a.Symbols,
		})
	}

	c.JSON(http.StatusOK, NewsFeedResponse{
		Symbol: symbol,
		Items:  items,
		Limit:  limit,
	})
}

func getNewsQueryLimit(c *gin.Context) int {
	const (
		defaultLimit = 5
		maxLimit     = 50
	)

	limit := getQueryInt("limit", defaultLimit, c)
	if limit < 1 {
		slog.Warn("invalid query parameter, using default", "param", "limit", "value", limit, "default", defaultLimit)
		return defaultLimit
	}

	if limit > maxLimit {
		slog.Warn("query parameter exceeds max, clamping", "param", "limit", "value", limit, "max", maxLimit)
		return maxLimit
	}

	return limit
}
