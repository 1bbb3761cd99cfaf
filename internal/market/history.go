package market

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/openfund/fundview/pkg/models"
)

// History fetches the trailing one-year daily closing price series for a
// ticker, ordered by date ascending. Days without a close (holidays,
// halts) are skipped. An empty series is a valid result, not an error.
func (c *Client) History(ctx context.Context, ticker string) ([]models.PricePoint, error) {
	now := time.Now()
	start := now.AddDate(-1, 0, 0)

	u := fmt.Sprintf("%s/v8/finance/chart/%s?period1=%d&period2=%d&interval=1d",
		c.baseURL, url.PathEscape(ticker), start.Unix(), now.Unix())

	var resp yfChartResponse
	if err := c.fetchJSON(ctx, u, &resp); err != nil {
		return nil, fmt.Errorf("market history %s: %w", ticker, err)
	}
	if resp.Chart.Error != nil {
		return nil, fmt.Errorf("market API error: %s", resp.Chart.Error.Description)
	}
	if len(resp.Chart.Result) == 0 {
		return nil, nil
	}

	return parseCloses(resp.Chart.Result[0]), nil
}

// parseCloses converts chart data to a close-price series.
func parseCloses(result yfChartResult) []models.PricePoint {
	if len(result.Indicators.Quote) == 0 {
		return nil
	}

	closes := result.Indicators.Quote[0].Close
	points := make([]models.PricePoint, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue
		}
		points = append(points, models.PricePoint{
			Date:  time.Unix(ts, 0).UTC(),
			Close: *closes[i],
		})
	}
	return points
}
