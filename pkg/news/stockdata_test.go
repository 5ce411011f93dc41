package news

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestStockDataCompanyNews(t *testing.T) {
	payload := map[string]interface{}{
		"data": []map[string]interface{}{
			{
				"title":        "Apple Unveils New Chip Lineup",
				"description":  "Apple announced its next generation of silicon.",
				"url":          "https://example.com/apple-chips",
				"source":       "reuters.com",
				"published_at": "2026-08-28T14:30:00.000000Z",
				"entities": []map[string]interface{}{
					{"symbol": "AAPL"},
				},
			},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := &StockDataClient{
		apiKey:     "test-key",
		httpClient: srv.Client(),
	}
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	articles, err := client.CompanyNews(context.Background(), "AAPL", 3)

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(articles))

	a := articles[0]
	assert.Equal(t, "Apple Unveils New Chip Lineup", a.Headline)
	assert.Equal(t, "Apple announced its next generation of silicon.", a.Detail)
	assert.Equal(t, "https://example.com/apple-chips", a.URL)
	assert.Equal(t, "reuters.com", a.Publisher)
	assert.Equal(t, "StockData", a.Source)
	assert.Equal(t, []string{"AAPL"}, a.Symbols)
	assert.NotEqual(t, time.Time{}, a.PublishedAt)
	assert.Equal(t, 2026, a.PublishedAt.Year())
	assert.Equal(t, time.August, a.PublishedAt.Month())
	assert.Equal(t, 28, a.PublishedAt.Day())
}

func TestStockDataCompanyNewsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := &StockDataClient{
		apiKey:     "test-key",
		httpClient: srv.Client(),
	}
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	articles, err := client.CompanyNews(context.Background(), "AAPL", 3)

	assert.NotEqual(t, nil, err)
	assert.Equal(t, 0, len(articles))
}

func TestStockDataResolveSymbol(t *testing.T) {
	payload := map[string]interface{}{
		"data": []map[string]interface{}{
			{"symbol": "AAPL"},
			{"symbol": "APC.F"},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := &StockDataClient{
		apiKey:     "test-key",
		httpClient: srv.Client(),
	}
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	symbol, err := client.ResolveSymbol(context.Background(), "Apple")

	assert.Equal(t, nil, err)
	assert.Equal(t, "AAPL", symbol)
}

func TestStockDataResolveSymbolNoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"data": []interface{}{}})
	}))
	defer srv.Close()

	client := &StockDataClient{
		apiKey:     "test-key",
		httpClient: srv.Client(),
	}
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	symbol, err := client.ResolveSymbol(context.Background(), "Nonexistent Corp")

	assert.NotEqual(t, nil, err)
	assert.Equal(t, "", symbol)
}

// rewriteTransport redirects all requests to a fixed base URL (test server).
type rewriteTransport struct {
	base  string
	inner http.RoundTripper
}

func (rt *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req2 := req.Clone(req.Context())
	parsed, _ := http.NewRequest("GET", rt.base, nil)
	req2.URL.Host = parsed.URL.Host
	req2.URL.Scheme = parsed.URL.Scheme
	return rt.inner.RoundTrip(req2)
}
