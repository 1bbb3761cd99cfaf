// Package sentiment implements the news/sentiment provider and the
// per-ticker filtering pipeline behind the market sentiment page.
//
// The provider is Alpha Vantage's NEWS_SENTIMENT function. Unlike the
// market-data path, this path degrades to an empty feed on provider
// failure: the page shows "no news found" instead of an error.
package sentiment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"

	"github.com/openfund/fundview/internal/infra"
)

// DefaultBaseURL is the Alpha Vantage query endpoint.
const DefaultBaseURL = "https://www.alphavantage.co/query"

// Client is the news/sentiment provider client.
type Client struct {
	baseURL string
	apiKey  string
}

// New creates a sentiment client. An empty baseURL selects the default
// Alpha Vantage endpoint.
func New(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{baseURL: baseURL, apiKey: apiKey}
}

// Article is one raw feed entry from the provider.
type Article struct {
	Title           string       `json:"title"`
	URL             string       `json:"url"`
	TimePublished   string       `json:"time_published"` // YYYYMMDDTHHMMSS
	TickerSentiment []Annotation `json:"ticker_sentiment"`
}

// Annotation is a provider-assigned per-ticker sentiment entry. Score and
// relevance arrive as decimal strings.
type Annotation struct {
	Ticker    string `json:"ticker"`
	Label     string `json:"ticker_sentiment_label"`
	Score     string `json:"ticker_sentiment_score"`
	Relevance string `json:"relevance_score"`
}

type feedResponse struct {
	Feed []Article `json:"feed"`
}

// Feed fetches the news feed for a ticker. Transport failures and non-200
// responses are swallowed: the result is an empty feed, never an error.
func (c *Client) Feed(ctx context.Context, ticker string) []Article {
	q := url.Values{}
	q.Set("function", "NEWS_SENTIMENT")
	q.Set("tickers", ticker)
	q.Set("apikey", c.apiKey)

	body, _, err := infra.DoGet(ctx, fmt.Sprintf("%s?%s", c.baseURL, q.Encode()), nil)
	if err != nil {
		return nil
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil
	}

	var resp feedResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil
	}
	return resp.Feed
}
