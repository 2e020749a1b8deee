// Package news wraps the external news-search provider behind explicit result
// types, with an optional Redis-backed response cache in front of it.
package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"newssense/internal/common"
)

// Article is the normalized shape of one provider article. Provider output is
// decoded into this struct at the boundary instead of being passed through as
// raw JSON.
type Article struct {
	Source      Source `json:"source"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
	Content     string `json:"content"`
}

// Source identifies the publisher of an article.
type Source struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SearchResult is the provider's top-level response.
type SearchResult struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
}

// Client calls a NewsAPI-style "everything" search endpoint.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient constructs a provider client. baseURL points at the search
// endpoint itself (e.g. https://newsapi.org/v2/everything).
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Search returns articles matching query. A response without an articles
// array yields an empty slice; transport failures and non-200 statuses yield
// common.ErrUpstream.
func (c *Client) Search(ctx context.Context, query string) ([]Article, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: bad provider url: %v", common.ErrUpstream, err)
	}
	q := u.Query()
	q.Set("q", query)
	q.Set("apiKey", c.apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUpstream, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: provider status %d", common.ErrUpstream, resp.StatusCode)
	}

	var result SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", common.ErrUpstream, err)
	}

	if result.Articles == nil {
		return []Article{}, nil
	}
	return result.Articles, nil
}
