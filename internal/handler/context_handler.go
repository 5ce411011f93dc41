package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"
	"unicode"

	"tickerbrief/internal/model"

	"github.com/gin-gonic/gin"
)

type ContextAnalyzer interface {
	Analyze(ctx context.Context, symbolOrName string) *model.ContextResult
}

type ContextStore interface {
	SaveLookup(result *model.ContextResult) error
	GetHistory(symbol string, limit, offset int) ([]model.ContextLookup, error)
	GetHistoryTotal(symbol string) (int, error)
	GetLookupTotal() (int, error)
	GetLatestBySymbol(symbol string) (*model.ContextLookup, error)
}

type ContextHandler struct {
	analyzer   ContextAnalyzer
	repository ContextStore
}

func NewContextHandler(analyzer ContextAnalyzer, repository ContextStore) *ContextHandler {
	return &ContextHandler{analyzer: analyzer, repository: repository}
}

func (h *ContextHandler) GetContext(c *gin.Context) {
	symbol := c.Param("symbol")
	if !validSymbolParam(symbol) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid symbol"})
		return
	}

	result := h.analyzer.Analyze(c.Request.Context(), symbol)

	// Persistence is best-effort; the lookup result is served regardless.
	if err := h.repository.SaveLookup(result); err != nil {
		slog.Error("error saving context lookup", "symbol", result.Symbol, "error", err)
	}

	c.JSON(http.StatusOK, toContextResponse(result))
}

func (h *ContextHandler) GetHistory(c *gin.Context) {
	symbol := c.Param("symbol")
	if !validSymbolParam(symbol) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid symbol"})
		return
	}

	limit := getQueryLimit(c)
	offset := getQueryOffset(c)

	lookups, err := h.repository.GetHistory(symbol, limit, offset)
	if err != nil {
		slog.Error("error fetching lookup history", "symbol", symbol, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	total, err := h.repository.GetHistoryTotal(symbol)
	if err != nil {
		slog.Error("error fetching lookup history total", "symbol", symbol, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := HistoryResponse{
		Lookups: []LookupResponse{},
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}

	for _, l := range lookups {
		res.Lookups = append(res.Lookups, toLookupResponse(l))
	}

	c.JSON(http.StatusOK, res)
}

func (h *ContextHandler) GetLatest(c *gin.Context) {
	symbol := c.Param("symbol")
	if !validSymbolParam(symbol) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid symbol"})
		return
	}

	lookup, err := h.repository.GetLatestBySymbol(symbol)
	if err != nil {
		slog.Error("error fetching latest lookup", "symbol", symbol, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if lookup == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No lookup recorded for symbol"})
		return
	}

	c.JSON(http.StatusOK, toLookupResponse(*lookup))
}

func (h *ContextHandler) GetHealth(c *gin.Context) {
	_, err := h.repository.GetLookupTotal()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}

func toContextResponse(r *model.ContextResult) ContextResponse {
	return ContextResponse{
		Symbol:    r.Symbol,
		Sentiment: r.Sentiment,
		Summary:   r.Summary,
		Sources:   toSourceResponses(r.Sources),
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}

func toLookupResponse(l model.ContextLookup) LookupResponse {
	return LookupResponse{
		ID:        l.ID,
		Symbol:    l.Symbol,
		Sentiment: l.Sentiment,
		Summary:   l.Summary,
		Sources:   toSourceResponses(l.Sources),
		CreatedAt: l.CreatedAt.Format(time.RFC3339),
	}
}

func toSourceResponses(sources []model.NewsSource) []SourceResponse {
	res := make([]SourceResponse, 0, len(sources))
	for _, s := range sources {
		res = append(res, SourceResponse{Title: s.Title, URL: s.URL})
	}
	return res
}

// validSymbolParam accepts tickers and short company names; it exists to
// reject path garbage before it reaches upstream APIs.
func validSymbolParam(s string) bool {
	if s == "" || len(s) > 50 {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '.' && r != '-' && r != ' ' {
			return false
		}
	}
	return true
}

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	paramValue := c.Query(name)

	if paramValue == "" {
		return defaultValue
	}

	parsedValue, err := strconv.Atoi(paramValue)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", paramValue, "error", err)
		return defaultValue
	}

	return parsedValue
}

func getQueryLimit(c *gin.Context) int {
	const (
		defaultLimit = 10
		maxLimit     = 100
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

func getQueryOffset(c *gin.Context) int {
	offset := getQueryInt("offset", 0, c)
	if offset < 0 {
		slog.Warn("invalid query parameter, using default", "param", "offset", "value", offset, "default", 0)
		return 0
	}
	return offset
}
