package market

import (
	"context"
	"fmt"
)

// StockInfo carries the descriptive and live-quote fields of a single
// security, as returned by the provider. Zero values mean the provider
// omitted the field; no substitution happens at this layer.
type StockInfo struct {
	Symbol string

	Name      string
	Sector    string
	Industry  string
	Employees int64
	Summary   string
	Website   string

	CurrentPrice  float64
	DayHigh       float64
	DayLow        float64
	PreviousClose float64
	Open          float64
	ROA           float64
	ROE           float64
}

// infoModules are the quoteSummary modules backing StockInfo.
const infoModules = "price,assetProfile,summaryDetail,financialData"

// Info fetches the combined profile + live quote record for a ticker.
// A response without a result set yields an error; a result without a
// symbol yields a StockInfo with an empty Symbol, which the resolver
// treats as "unknown ticker".
func (c *Client) Info(ctx context.Context, ticker string) (*StockInfo, error) {
	u := c.quoteSummaryURL(ticker, "price", "assetProfile", "summaryDetail", "financialData")

	var resp yfQuoteSummaryResponse
	if err := c.fetchJSON(ctx, u, &resp); err != nil {
		return nil, fmt.Errorf("market info %s: %w", ticker, err)
	}
	if resp.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("market API error: %s", resp.QuoteSummary.Error.Description)
	}
	if len(resp.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("no info for %s", ticker)
	}

	r := resp.QuoteSummary.Result[0]
	info := &StockInfo{}

	if p := r.Price; p != nil {
		info.Symbol = p.Symbol
		info.Name = coalesce(p.LongName, p.ShortName)
	}
	if ap := r.AssetProfile; ap != nil {
		info.Sector = ap.Sector
		info.Industry = ap.Industry
		info.Employees = ap.FullTimeEmployees
		info.Summary = ap.LongBusinessSummary
		info.Website = ap.Website
	}
	if fd := r.FinancialData; fd != nil {
		info.CurrentPrice = fd.CurrentPrice.Raw
		info.ROA = fd.ReturnOnAssets.Raw
		info.ROE = fd.ReturnOnEquity.Raw
	}
	if sd := r.SummaryDetail; sd != nil {
		info.DayHigh = sd.DayHigh.Raw
		info.DayLow = sd.DayLow.Raw
		info.PreviousClose = sd.PreviousClose.Raw
		info.Open = sd.Open.Raw
	}

	return info, nil
}

// coalesce returns the first non-empty string.
func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
