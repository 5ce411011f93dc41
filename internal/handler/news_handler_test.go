package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tickerbrief/pkg/news"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

type fakeProvider struct {
	articles  []news.Article
	err       error
	gotSymbol string
	gotLimit  int
}

func (f *fakeProvider) CompanyNews(ctx context.Context, symbol string, limit int) ([]news.Article, error) {
	f.gotSymbol = symbol
	f.gotLimit = limit
	return f.articles, f.err
}

func (f *fakeProvider) Name() string {
	return "Fake"
}

func newTestNewsRouter(provider news.Provider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewNewsHandler(provider)
	r.GET("/news/:symbol", h.GetNews)
	return r
}

func fixtureArticles(n int) []news.Article {
	articles := make([]news.Article, n)
	for i := range articles {
		articles[i] = news.Article{
			Headline:    "Headline",
			Detail:      "Detail",
			URL:         "https://example.com/article",
			Publisher:   "Reuters",
			Source:      "Fake",
			PublishedAt: time.Now(),
			Symbols:     []string{"AAPL"},
		}
	}
	return articles
}

func TestGetNews_ReturnsItems(t *testing.T) {
	provider := &fakeProvider{articles: fixtureArticles(2)}
	r := newTestNewsRouter(provider)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news/aapl?limit=5", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res NewsFeedResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "aapl", res.Symbol)
	assert.Equal(t, 2, len(res.Items))
	assert.Equal(t, "Reuters", res.Items[0].Publisher)
	assert.Equal(t, []string{"AAPL"}, res.Items[0].Symbols)

	assert.Equal(t, "aapl", provider.gotSymbol)
	assert.Equal(t, 5, provider.gotLimit)
}

func TestGetNews_AtMostLimitItems(t *testing.T) {
	provider := &fakeProvider{articles: fixtureArticles(10)}
	r := newTestNewsRouter(provider)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news/AAPL?limit=3", nil)
	r.ServeHTTP(w, req)

	var res NewsFeedResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 3, len(res.Items))
}

func TestGetNews_DefaultLimit(t *testing.T) {
	provider := &fakeProvider{}
	r := newTestNewsRouter(provider)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news/AAPL", nil)
	r.ServeHTTP(w, req)

	var res NewsFeedResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 5, res.Limit)
	assert.Equal(t, 5, provider.gotLimit)
}

func TestGetNews_LimitClamped(t *testing.T) {
	provider := &fakeProvider{}
	r := newTestNewsRouter(provider)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news/AAPL?limit=500", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, 50, provider.gotLimit)
}

func TestGetNews_ProviderError(t *testing.T) {
	provider := &fakeProvider{err: errors.New("upstream down")}
	r := newTestNewsRouter(provider)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news/AAPL", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGetNews_InvalidSymbol(t *testing.T) {
	r := newTestNewsRouter(&fakeProvider{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news/%21%40%23", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
