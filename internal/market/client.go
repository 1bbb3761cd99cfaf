// Package market implements the Yahoo Finance market-data provider.
// It wraps Yahoo Finance's public APIs (v8 chart, v10 quoteSummary) used by
// the dashboard aggregators: company info, live quote fields, financial
// statements, and daily price history.
//
// Yahoo Finance is a free, no-API-key provider.
package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/openfund/fundview/internal/infra"
)

// DefaultBaseURL is the Yahoo Finance query host.
const DefaultBaseURL = "https://query1.finance.yahoo.com"

// Client is the market-data provider client. One instance is constructed
// at process start and injected into the aggregators.
type Client struct {
	baseURL string
}

// New creates a market-data client. An empty baseURL selects the default
// Yahoo Finance host.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{baseURL: strings.TrimSuffix(baseURL, "/")}
}

// Ping checks connectivity to the provider.
func (c *Client) Ping(ctx context.Context) error {
	u := fmt.Sprintf("%s/v10/finance/quoteSummary/AAPL?modules=price", c.baseURL)
	body, _, err := infra.DoGet(ctx, u, jsonHeaders())
	if err != nil {
		return fmt.Errorf("market ping: %w", err)
	}
	body.Close()
	return nil
}

// --- Shared helpers ---

func jsonHeaders() map[string]string {
	return map[string]string{"Accept": "application/json"}
}

// fetchJSON performs a GET request and decodes the response into dest.
func (c *Client) fetchJSON(ctx context.Context, u string, dest any) error {
	body, _, err := infra.DoGet(ctx, u, jsonHeaders())
	if err != nil {
		return err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("parse JSON: %w", err)
	}
	return nil
}

// quoteSummaryURL builds a v10 quoteSummary URL for the given modules.
func (c *Client) quoteSummaryURL(ticker string, modules ...string) string {
	return fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=%s",
		c.baseURL, url.PathEscape(ticker), strings.Join(modules, ","))
}
