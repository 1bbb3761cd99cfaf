package dashboard

import (
	"context"
	"errors"
	"testing"
)

const balanceJSON = `{
	"quoteSummary": {"result": [{
		"balanceSheetHistory": {"balanceSheetStatements": [
			{
				"endDate": {"raw": 1695945600, "fmt": "2023-09-30"},
				"totalAssets": {"raw": 352583000000},
				"longTermDebt": {"raw": 95281000000},
				"shortLongTermDebt": {"raw": 9822000000},
				"totalStockholderEquity": {"raw": 62146000000}
			},
			{
				"endDate": {"raw": 1664496000, "fmt": "2022-09-30"},
				"totalAssets": {"raw": 352755000000},
				"longTermDebt": {"raw": 98959000000},
				"totalStockholderEquity": {"raw": 50672000000}
			}
		]}
	}], "error": null}
}`

const incomeJSON = `{
	"quoteSummary": {"result": [{
		"incomeStatementHistory": {"incomeStatementHistory": [
			{
				"endDate": {"raw": 1695945600, "fmt": "2023-09-30"},
				"totalRevenue": {"raw": 383285000000},
				"ebit": {"raw": 114301000000},
				"netIncome": {"raw": 96995000000},
				"basicEPS": {"raw": 6.16}
			},
			{
				"endDate": {"raw": 1664496000, "fmt": "2022-09-30"},
				"totalRevenue": {"raw": 394328000000},
				"ebit": {"raw": 119437000000},
				"netIncome": {"raw": 99803000000},
				"basicEPS": {"raw": 6.15}
			}
		]}
	}], "error": null}
}`

const cashJSON = `{
	"quoteSummary": {"result": [{
		"cashflowStatementHistory": {"cashflowStatements": [
			{
				"endDate": {"raw": 1695945600, "fmt": "2023-09-30"},
				"totalCashFromOperatingActivities": {"raw": 110543000000},
				"totalCashflowsFromInvestingActivities": {"raw": 3705000000},
				"totalCashFromFinancingActivities": {"raw": -108488000000},
				"capitalExpenditures": {"raw": -10959000000}
			},
			{
				"endDate": {"raw": 1664496000, "fmt": "2022-09-30"},
				"totalCashFromOperatingActivities": {"raw": 122151000000},
				"totalCashflowsFromInvestingActivities": {"raw": -22354000000},
				"totalCashFromFinancingActivities": {"raw": -110749000000},
				"capitalExpenditures": {"raw": -10708000000}
			}
		]}
	}], "error": null}
}`

var combinedRowOrder = []string{
	"Total Assets", "Total Debt", "Stockholders Equity",
	"Total Revenue", "EBIT", "Net Income", "Basic EPS",
	"Free Cash Flow", "Financing Cash Flow", "Investing Cash Flow", "Operating Cash Flow",
}

func TestFinancialsRowOrder(t *testing.T) {
	svc := newTestService(t, &fakeMarket{balance: balanceJSON, income: incomeJSON, cash: cashJSON})

	table, err := svc.Financials(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("Financials: %v", err)
	}

	if len(table.Rows) != len(combinedRowOrder) {
		t.Fatalf("rows = %d, want %d", len(table.Rows), len(combinedRowOrder))
	}
	for i, want := range combinedRowOrder {
		if table.Rows[i].Label != want {
			t.Errorf("row %d = %q, want %q", i, table.Rows[i].Label, want)
		}
	}

	if len(table.Periods) != 2 || table.Periods[0] != "2023-09-30" || table.Periods[1] != "2022-09-30" {
		t.Errorf("periods = %v", table.Periods)
	}
}

func TestFinancialsDerivedRows(t *testing.T) {
	svc := newTestService(t, &fakeMarket{balance: balanceJSON, income: incomeJSON, cash: cashJSON})

	table, err := svc.Financials(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("Financials: %v", err)
	}

	byLabel := make(map[string][]string)
	for _, row := range table.Rows {
		vals := make([]string, len(row.Values))
		for i, v := range row.Values {
			vals[i] = v.Display()
		}
		byLabel[row.Label] = vals
	}

	// 2023: long-term + short/current; 2022: long-term only.
	if got := byLabel["Total Debt"]; got[0] != "105103000000" || got[1] != "98959000000" {
		t.Errorf("Total Debt = %v", got)
	}
	// No freeCashFlow line item: derived as operating + capex.
	if got := byLabel["Free Cash Flow"]; got[0] != "99584000000" || got[1] != "111443000000" {
		t.Errorf("Free Cash Flow = %v", got)
	}
	if got := byLabel["Basic EPS"]; got[0] != "6.16" {
		t.Errorf("Basic EPS = %v", got)
	}
}

func TestFinancialsMissingRequiredRow(t *testing.T) {
	noEbit := `{
		"quoteSummary": {"result": [{
			"incomeStatementHistory": {"incomeStatementHistory": [
				{
					"endDate": {"raw": 1695945600, "fmt": "2023-09-30"},
					"totalRevenue": {"raw": 383285000000},
					"netIncome": {"raw": 96995000000},
					"basicEPS": {"raw": 6.16}
				}
			]}
		}], "error": null}
	}`
	svc := newTestService(t, &fakeMarket{balance: balanceJSON, income: noEbit, cash: cashJSON})

	_, err := svc.Financials(context.Background(), "AAPL")
	var missing *MissingRowError
	if !errors.As(err, &missing) {
		t.Fatalf("err = %v, want MissingRowError", err)
	}
	if missing.Label != "EBIT" {
		t.Errorf("missing label = %q", missing.Label)
	}
}

func TestFinancialsTotalDebtFallback(t *testing.T) {
	// The short/current debt portion is missing for 2022; the row still
	// resolves from long-term debt alone.
	svc := newTestService(t, &fakeMarket{balance: balanceJSON, income: incomeJSON, cash: cashJSON})

	table, err := svc.Financials(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("Financials: %v", err)
	}
	for _, row := range table.Rows {
		if row.Label != "Total Debt" {
			continue
		}
		if row.Values[1].Display() == "N/A" {
			t.Error("2022 Total Debt should fall back to longTermDebt alone")
		}
	}
}
