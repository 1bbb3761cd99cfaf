package market

import "encoding/json"

// --- Yahoo Finance API response types ---

// yfValue is Yahoo's {raw, fmt} wrapper. A few fields (maxAge, some
// timestamps) arrive as bare numbers instead, so unmarshalling accepts both.
type yfValue struct {
	Raw float64 `json:"raw"`
	Fmt string  `json:"fmt"`
}

func (v *yfValue) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == "{}" {
		return nil
	}
	if s[0] == '{' {
		type alias yfValue
		var a alias
		if err := json.Unmarshal(data, &a); err != nil {
			return err
		}
		*v = yfValue(a)
		return nil
	}
	return json.Unmarshal(data, &v.Raw)
}

// yfQuoteSummaryResponse wraps the v10 quoteSummary API response.
type yfQuoteSummaryResponse struct {
	QuoteSummary struct {
		Result []yfQuoteSummaryResult `json:"result"`
		Error  *yfError               `json:"error"`
	} `json:"quoteSummary"`
}

type yfQuoteSummaryResult struct {
	Price        *yfPrice        `json:"price"`
	AssetProfile *yfAssetProfile `json:"assetProfile"`
	FinancialData *yfFinancialData `json:"financialData"`
	SummaryDetail *yfSummaryDetail `json:"summaryDetail"`

	BalanceSheetHistory      *yfBalanceSheetContainer `json:"balanceSheetHistory"`
	IncomeStatementHistory   *yfIncomeContainer       `json:"incomeStatementHistory"`
	CashflowStatementHistory *yfCashflowContainer     `json:"cashflowStatementHistory"`
}

// yfPrice is the price module: identity fields plus the live price.
type yfPrice struct {
	Symbol             string  `json:"symbol"`
	LongName           string  `json:"longName"`
	ShortName          string  `json:"shortName"`
	Currency           string  `json:"currency"`
	RegularMarketPrice yfValue `json:"regularMarketPrice"`
}

type yfAssetProfile struct {
	Sector              string `json:"sector"`
	Industry            string `json:"industry"`
	FullTimeEmployees   int64  `json:"fullTimeEmployees"`
	LongBusinessSummary string `json:"longBusinessSummary"`
	Website             string `json:"website"`
}

type yfFinancialData struct {
	CurrentPrice   yfValue `json:"currentPrice"`
	ReturnOnAssets yfValue `json:"returnOnAssets"`
	ReturnOnEquity yfValue `json:"returnOnEquity"`
}

type yfSummaryDetail struct {
	PreviousClose yfValue `json:"previousClose"`
	Open          yfValue `json:"open"`
	DayLow        yfValue `json:"dayLow"`
	DayHigh       yfValue `json:"dayHigh"`
}

// Statement containers. Yahoo nests the statement list under a
// container-specific key.

type yfBalanceSheetContainer struct {
	Statements []yfStatement `json:"balanceSheetStatements"`
}

type yfIncomeContainer struct {
	Statements []yfStatement `json:"incomeStatementHistory"`
}

type yfCashflowContainer struct {
	Statements []yfStatement `json:"cashflowStatements"`
}

// yfStatement is one reporting period: a free-form map of line items.
type yfStatement map[string]yfValue

// yfChartResponse wraps the v8 chart API response.
type yfChartResponse struct {
	Chart struct {
		Result []yfChartResult `json:"result"`
		Error  *yfError        `json:"error"`
	} `json:"chart"`
}

type yfChartResult struct {
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []yfQuoteIndicator `json:"quote"`
	} `json:"indicators"`
}

type yfQuoteIndicator struct {
	Close []*float64 `json:"close"`
}

type yfError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}
