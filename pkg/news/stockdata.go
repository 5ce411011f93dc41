package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type StockDataClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewStockDataClient(apiKey string) *StockDataClient {
	return &StockDataClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *StockDataClient) Name() string {
	return "StockData"
}

func (c *StockDataClient) CompanyNews(ctx context.Context, symbol string, limit int) ([]Article, error) {
	endpoint := fmt.Sprintf(
		"https://api.stockdata.org/v1/news/all?symbols=%s&language=en&limit=%d&api_token=%s",
		url.QueryEscape(symbol), limit, c.apiKey,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("stockdata request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("stockdata fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stockdata status %d", resp.StatusCode)
	}

	var raw stockDataResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("stockdata decode: %w", err)
	}

	articles := make([]Article, 0, len(raw.Data))
	for _, item := range raw.Data {
		publishedAt, err := time.Parse(time.RFC3339, item.PublishedAt)
		if err != nil {
			publishedAt = time.Time{}
		}

		symbols := make([]string, 0, len(item.Entities))
		for _, e := range item.Entities {
			if e.Symbol != "" {
				symbols = append(symbols, e.Symbol)
			}
		}

		articles = append(articles, Article{
			Headline:    item.Title,
			Detail:      item.Description,
			URL:         item.URL,
			Publisher:   item.Source,
			PublishedAt: publishedAt,
			Symbols:     symbols,
			Source:      c.Name(),
		})
	}

	return articles, nil
}

// ResolveSymbol maps a free-form company name to its ticker via the
// StockData entity search endpoint. The first hit wins.
func (c *StockDataClient) ResolveSymbol(ctx context.Context, name string) (string, error) {
	endpoint := fmt.Sprintf(
		"https://api.stockdata.org/v1/entity/search?search=%s&api_token=%s",
		url.QueryEscape(name), c.apiKey,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("stockdata request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("stockdata search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("stockdata status %d", resp.StatusCode)
	}

	var raw stockDataSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return "", fmt.Errorf("stockdata decode: %w", err)
	}

	if len(raw.Data) == 0 || raw.Data[0].Symbol == "" {
		return "", fmt.Errorf("no entity match for %q", name)
	}

	return raw.Data[0].Symbol, nil
}

type stockDataResponse struct {
	Data []stockDataArticle `json:"data"`
}

type stockDataArticle struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	URL         string            `json:"url"`
	Source      string            `json:"source"`
	PublishedAt string            `json:"published_at"`
	Entities    []stockDataEntity `json:"entities"`
}

type stockDataEntity struct {
	Symbol string `json:"symbol"`
}

type stockDataSearchResponse struct {
	Data []stockDataEntity `json:"data"`
}
