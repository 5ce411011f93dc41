package handler

type SourceResponse struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type ContextResponse struct {
	Symbol    string           `json:"symbol"`
	Sentiment string           `json:"sentiment"`
	Summary   string           `json:"summary"`
	Sources   []SourceResponse `json:"sources"`
	CreatedAt string           `json:"created_at"`
}

type LookupResponse struct {
	ID        int64            `json:"id"`
	Symbol    string           `json:"symbol"`
	Sentiment string           `json:"sentiment"`
	Summary   string           `json:"summary"`
	Sources   []SourceResponse `json:"sources"`
	CreatedAt string           `json:"created_at"`
}

type HistoryResponse struct {
	Lookups []LookupResponse `json:"lookups"`
	Total   int              `json:"total"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
}

type NewsItemResponse struct {
	Headline    string   `json:"headline"`
	Detail      string   `json:"detail"`
	URL         string   `json:"url"`
	Publisher   string   `json:"publisher"`
	Source      string   `json:"source"`
	PublishedAt string   `json:"published_at"`
	Symbols     []string `json:"symbols"`
}

type NewsFeedResponse struct {
	Symbol string             `json:"symbol"`
	Items  []NewsItemResponse `json:"items"`
	Limit  int                `json:"limit"`
}
