package dashboard

import (
	"context"
	"strconv"

	"github.com/openfund/fundview/internal/market"
	"github.com/openfund/fundview/pkg/models"
)

// rowSpec maps one display row to the provider line items that can back
// it. keys are tried in order; derive, when set, computes the value from
// a statement instead (used for summed and fallback rows).
type rowSpec struct {
	label  string
	keys   []string
	derive func(market.Statement) (float64, bool)
}

// The fixed display rows of the combined statement table, in order:
// balance sheet, then income statement, then cash flow.
var (
	balanceSheetRows = []rowSpec{
		{label: "Total Assets", keys: []string{"totalAssets"}},
		{label: "Total Debt", derive: totalDebt},
		{label: "Stockholders Equity", keys: []string{"totalStockholderEquity"}},
	}
	incomeRows = []rowSpec{
		{label: "Total Revenue", keys: []string{"totalRevenue"}},
		{label: "EBIT", keys: []string{"ebit"}},
		{label: "Net Income", keys: []string{"netIncome"}},
		{label: "Basic EPS", keys: []string{"basicEPS", "basicEps"}},
	}
	cashFlowRows = []rowSpec{
		{label: "Free Cash Flow", derive: freeCashFlow},
		{label: "Financing Cash Flow", keys: []string{"totalCashFromFinancingActivities"}},
		{label: "Investing Cash Flow", keys: []string{"totalCashflowsFromInvestingActivities"}},
		{label: "Operating Cash Flow", keys: []string{"totalCashFromOperatingActivities"}},
	}
)

// totalDebt sums long-term debt and the short/current portion. Present
// when either component is.
func totalDebt(s market.Statement) (float64, bool) {
	long, okLong := s.Value("longTermDebt")
	short, okShort := s.Value("shortLongTermDebt")
	if !okLong && !okShort {
		return 0, false
	}
	return long + short, true
}

// freeCashFlow prefers the provider's precomputed figure and falls back
// to operating cash flow plus capital expenditures (capex is negative).
func freeCashFlow(s market.Statement) (float64, bool) {
	if v, ok := s.Value("freeCashFlow"); ok {
		return v, true
	}
	op, okOp := s.Value("totalCashFromOperatingActivities")
	capex, okCapex := s.Value("capitalExpenditures")
	if !okOp || !okCapex {
		return 0, false
	}
	return op + capex, true
}

// Financials builds the combined statement table: the balance sheet,
// income statement, and cash flow row subsets vertically concatenated,
// periods most recent first. A required row absent from every period of
// its statement is a structural fault and fails the whole table.
func (s *Service) Financials(ctx context.Context, ticker string) (models.FinancialTable, error) {
	balance, err := s.market.BalanceSheet(ctx, ticker)
	if err != nil {
		return models.FinancialTable{}, err
	}
	income, err := s.market.IncomeStatement(ctx, ticker)
	if err != nil {
		return models.FinancialTable{}, err
	}
	cash, err := s.market.CashFlow(ctx, ticker)
	if err != nil {
		return models.FinancialTable{}, err
	}

	periods := periodUnion(balance, income, cash)

	table := models.FinancialTable{Ticker: ticker, Periods: periods}
	for _, part := range []struct {
		name  string
		stmts []market.Statement
		rows  []rowSpec
	}{
		{"balance sheet", balance, balanceSheetRows},
		{"income", income, incomeRows},
		{"cash flow", cash, cashFlowRows},
	} {
		for _, spec := range part.rows {
			row, err := buildRow(part.name, spec, part.stmts, periods)
			if err != nil {
				return models.FinancialTable{}, err
			}
			table.Rows = append(table.Rows, row)
		}
	}
	return table, nil
}

// periodUnion collects the period columns of all statements in
// first-seen order, which keeps the provider's most-recent-first
// ordering.
func periodUnion(statementSets ...[]market.Statement) []string {
	var periods []string
	seen := make(map[string]bool)
	for _, set := range statementSets {
		for _, st := range set {
			if st.EndDate == "" || seen[st.EndDate] {
				continue
			}
			seen[st.EndDate] = true
			periods = append(periods, st.EndDate)
		}
	}
	return periods
}

// buildRow extracts one display row across all periods. The row must be
// present in at least one period of its source statement; a cell absent
// from an individual period renders as "N/A".
func buildRow(statement string, spec rowSpec, stmts []market.Statement, periods []string) (models.FinancialRow, error) {
	byPeriod := make(map[string]models.Field, len(stmts))
	found := false
	for _, st := range stmts {
		v, ok := rowValue(spec, st)
		if !ok {
			continue
		}
		found = true
		// Presence comes from the statement itself; a literal zero is a
		// real value here, unlike quote fields.
		byPeriod[st.EndDate] = models.Field{
			Value:   strconv.FormatFloat(v, 'f', -1, 64),
			Present: true,
		}
	}
	if !found {
		return models.FinancialRow{}, &MissingRowError{Statement: statement, Label: spec.label}
	}

	row := models.FinancialRow{Label: spec.label, Values: make([]models.Field, len(periods))}
	for i, p := range periods {
		row.Values[i] = byPeriod[p]
	}
	return row, nil
}

func rowValue(spec rowSpec, st market.Statement) (float64, bool) {
	if spec.derive != nil {
		return spec.derive(st)
	}
	for _, k := range spec.keys {
		if v, ok := st.Value(k); ok {
			return v, true
		}
	}
	return 0, false
}
