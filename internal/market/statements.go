package market

import (
	"context"
	"fmt"
)

// Statement is one reporting period of a financial statement: the period
// end date plus a map of the provider's line items. Map membership is the
// presence signal; values are passed through without unit or currency
// normalization.
type Statement struct {
	EndDate string
	Items   map[string]float64
}

// Has reports whether the provider returned the given line item.
func (s Statement) Has(key string) bool {
	_, ok := s.Items[key]
	return ok
}

// Value returns the line item value and whether it was present.
func (s Statement) Value(key string) (float64, bool) {
	v, ok := s.Items[key]
	return v, ok
}

// BalanceSheet fetches the annual balance sheet history, most recent
// period first.
func (c *Client) BalanceSheet(ctx context.Context, ticker string) ([]Statement, error) {
	r, err := c.statements(ctx, ticker, "balanceSheetHistory")
	if err != nil {
		return nil, err
	}
	if r.BalanceSheetHistory == nil {
		return nil, nil
	}
	return convertStatements(r.BalanceSheetHistory.Statements), nil
}

// IncomeStatement fetches the annual income statement history, most
// recent period first.
func (c *Client) IncomeStatement(ctx context.Context, ticker string) ([]Statement, error) {
	r, err := c.statements(ctx, ticker, "incomeStatementHistory")
	if err != nil {
		return nil, err
	}
	if r.IncomeStatementHistory == nil {
		return nil, nil
	}
	return convertStatements(r.IncomeStatementHistory.Statements), nil
}

// CashFlow fetches the annual cash flow statement history, most recent
// period first.
func (c *Client) CashFlow(ctx context.Context, ticker string) ([]Statement, error) {
	r, err := c.statements(ctx, ticker, "cashflowStatementHistory")
	if err != nil {
		return nil, err
	}
	if r.CashflowStatementHistory == nil {
		return nil, nil
	}
	return convertStatements(r.CashflowStatementHistory.Statements), nil
}

func (c *Client) statements(ctx context.Context, ticker, module string) (*yfQuoteSummaryResult, error) {
	u := c.quoteSummaryURL(ticker, module)

	var resp yfQuoteSummaryResponse
	if err := c.fetchJSON(ctx, u, &resp); err != nil {
		return nil, fmt.Errorf("market %s %s: %w", module, ticker, err)
	}
	if resp.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("market API error: %s", resp.QuoteSummary.Error.Description)
	}
	if len(resp.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("no %s data for %s", module, ticker)
	}
	return &resp.QuoteSummary.Result[0], nil
}

// convertStatements flattens raw statement maps, splitting out the period
// end date and dropping bookkeeping fields.
func convertStatements(raw []yfStatement) []Statement {
	stmts := make([]Statement, 0, len(raw))
	for _, m := range raw {
		s := Statement{Items: make(map[string]float64, len(m))}
		for k, v := range m {
			switch k {
			case "endDate":
				s.EndDate = v.Fmt
			case "maxAge":
				// metadata, not a line item
			default:
				s.Items[k] = v.Raw
			}
		}
		stmts = append(stmts, s)
	}
	return stmts
}
