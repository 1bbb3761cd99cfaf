package market

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const quoteSummaryAAPL = `{
	"quoteSummary": {
		"result": [{
			"price": {"symbol": "AAPL", "longName": "Apple Inc.", "shortName": "Apple"},
			"assetProfile": {
				"sector": "Technology",
				"industry": "Consumer Electronics",
				"fullTimeEmployees": 164000,
				"longBusinessSummary": "Apple Inc. designs, manufactures, and markets smartphones.",
				"website": "https://www.apple.com"
			},
			"financialData": {
				"currentPrice": {"raw": 189.84, "fmt": "189.84"},
				"returnOnAssets": {"raw": 0.21, "fmt": "21.00%"},
				"returnOnEquity": {"raw": 1.56, "fmt": "156.00%"}
			},
			"summaryDetail": {
				"previousClose": {"raw": 188.5, "fmt": "188.50"},
				"open": {"raw": 189.0, "fmt": "189.00"},
				"dayLow": {"raw": 187.9, "fmt": "187.90"},
				"dayHigh": {"raw": 190.2, "fmt": "190.20"}
			}
		}],
		"error": null
	}
}`

func TestInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/v10/finance/quoteSummary/AAPL") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		fmt.Fprint(w, quoteSummaryAAPL)
	}))
	defer srv.Close()

	c := New(srv.URL)
	info, err := c.Info(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("Info: %v", err)
	}

	if info.Symbol != "AAPL" || info.Name != "Apple Inc." {
		t.Errorf("identity = %q / %q", info.Symbol, info.Name)
	}
	if info.Sector != "Technology" || info.Employees != 164000 {
		t.Errorf("profile = %q / %d", info.Sector, info.Employees)
	}
	if info.CurrentPrice != 189.84 || info.DayHigh != 190.2 || info.ROE != 1.56 {
		t.Errorf("quote fields = %+v", info)
	}
}

func TestInfoMissingModules(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"quoteSummary": {"result": [{"price": {"symbol": "XYZ"}}], "error": null}}`)
	}))
	defer srv.Close()

	c := New(srv.URL)
	info, err := c.Info(context.Background(), "XYZ")
	if err != nil {
		t.Fatalf("Info: %v", err)
	}
	if info.Symbol != "XYZ" {
		t.Errorf("Symbol = %q", info.Symbol)
	}
	// Omitted modules leave zero values; substitution happens upstream.
	if info.Sector != "" || info.CurrentPrice != 0 {
		t.Errorf("expected zero values, got %+v", info)
	}
}

func TestInfoProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"quoteSummary": {"result": [], "error": {"code": "Not Found", "description": "No data found"}}}`)
	}))
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.Info(context.Background(), "NOPE"); err == nil {
		t.Fatal("expected error for provider error response")
	}
}

func TestBalanceSheet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"quoteSummary": {
				"result": [{
					"balanceSheetHistory": {
						"balanceSheetStatements": [
							{
								"maxAge": 1,
								"endDate": {"raw": 1695945600, "fmt": "2023-09-30"},
								"totalAssets": {"raw": 352583000000, "fmt": "352.58B"},
								"longTermDebt": {"raw": 95281000000, "fmt": "95.28B"}
							},
							{
								"maxAge": 1,
								"endDate": {"raw": 1664496000, "fmt": "2022-09-30"},
								"totalAssets": {"raw": 352755000000, "fmt": "352.76B"}
							}
						]
					}
				}],
				"error": null
			}
		}`)
	}))
	defer srv.Close()

	c := New(srv.URL)
	stmts, err := c.BalanceSheet(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("BalanceSheet: %v", err)
	}
	if len(stmts) != 2 {
		t.Fatalf("statements = %d", len(stmts))
	}
	if stmts[0].EndDate != "2023-09-30" {
		t.Errorf("EndDate = %q", stmts[0].EndDate)
	}
	if v, ok := stmts[0].Value("totalAssets"); !ok || v != 352583000000 {
		t.Errorf("totalAssets = %v, %v", v, ok)
	}
	if stmts[0].Has("maxAge") || stmts[0].Has("endDate") {
		t.Error("bookkeeping fields leaked into line items")
	}
	if stmts[1].Has("longTermDebt") {
		t.Error("missing line item reported as present")
	}
}

func TestHistory(t *testing.T) {
	now := time.Now().UTC().Truncate(24 * time.Hour)
	ts := []int64{now.AddDate(0, 0, -3).Unix(), now.AddDate(0, 0, -2).Unix(), now.AddDate(0, 0, -1).Unix()}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/v8/finance/chart/AAPL") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		fmt.Fprintf(w, `{
			"chart": {
				"result": [{
					"timestamp": [%d, %d, %d],
					"indicators": {"quote": [{"close": [189.5, null, 191.2]}]}
				}],
				"error": null
			}
		}`, ts[0], ts[1], ts[2])
	}))
	defer srv.Close()

	c := New(srv.URL)
	points, err := c.History(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("points = %d, want 2 (null close skipped)", len(points))
	}
	if points[0].Close != 189.5 || points[1].Close != 191.2 {
		t.Errorf("closes = %v", points)
	}
	if !points[0].Date.Before(points[1].Date) {
		t.Error("series not ascending")
	}
}

func TestHistoryEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart": {"result": [], "error": null}}`)
	}))
	defer srv.Close()

	c := New(srv.URL)
	points, err := c.History(context.Background(), "NEWIPO")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(points) != 0 {
		t.Errorf("expected empty series, got %d points", len(points))
	}
}
