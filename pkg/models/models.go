// Package models defines the core data structures used throughout FundView.
package models

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Field is an optional scalar read from a provider. Providers omit fields
// freely, so presence is tracked explicitly and only the presentation layer
// decides how an absent value is displayed.
type Field struct {
	Value   string `json:"value,omitempty"`
	Present bool   `json:"present"`
}

// StringField returns a present Field holding s, or an absent Field if s is empty.
func StringField(s string) Field {
	if s == "" {
		return Field{}
	}
	return Field{Value: s, Present: true}
}

// NumberField returns a present Field holding v. A zero value from Yahoo's
// quote payloads means the field was omitted, so zero maps to absent.
func NumberField(v float64) Field {
	if v == 0 {
		return Field{}
	}
	return Field{Value: strconv.FormatFloat(v, 'f', -1, 64), Present: true}
}

// IntField returns a present Field holding v, absent when v is zero.
func IntField(v int64) Field {
	if v == 0 {
		return Field{}
	}
	return Field{Value: strconv.FormatInt(v, 10), Present: true}
}

// Display returns the field value, or "N/A" when absent.
func (f Field) Display() string {
	if !f.Present {
		return "N/A"
	}
	return f.Value
}

// Float parses the field as a float64. Returns 0, false when absent or
// not numeric.
func (f Field) Float() (float64, bool) {
	if !f.Present {
		return 0, false
	}
	v, err := strconv.ParseFloat(f.Value, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// LabeledField is one row of a fixed-schema attribute table.
type LabeledField struct {
	Label string `json:"label"`
	Value Field  `json:"value"`
}

// CompanyProfile holds the descriptive company attributes shown on the
// introduction page, in fixed display order.
type CompanyProfile struct {
	Ticker string         `json:"ticker"`
	Name   Field          `json:"name"`
	Rows   []LabeledField `json:"rows"`
}

// QuoteSnapshot holds the price and profitability attributes shown on the
// stock info page, in fixed display order.
type QuoteSnapshot struct {
	Ticker string         `json:"ticker"`
	Name   Field          `json:"name"`
	Rows   []LabeledField `json:"rows"`
}

// FinancialRow is one line item of a financial statement table.
type FinancialRow struct {
	Label  string  `json:"label"`
	Values []Field `json:"values"` // aligned with FinancialTable.Periods
}

// FinancialTable is a row-indexed statement table. Periods are reporting
// dates, most recent first, as returned by the provider.
type FinancialTable struct {
	Ticker  string         `json:"ticker"`
	Periods []string       `json:"periods"`
	Rows    []FinancialRow `json:"rows"`
}

// PricePoint is a single (date, closing price) observation.
type PricePoint struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}

// NewsItem is one (article, ticker) sentiment observation. An article
// carrying several annotations for the same ticker yields several items;
// the feed's multiplicity is preserved.
type NewsItem struct {
	Title       string    `json:"title"`
	PublishedAt time.Time `json:"published_at"`
	URL         string    `json:"url"`
	Label       string    `json:"label"`     // provider sentiment label, e.g. "Bullish"
	Score       float64   `json:"score"`     // sentiment score in [-1, 1]
	Relevance   float64   `json:"relevance"` // relevance score in [0, 1]
}

// Headline is a single RSS news headline shown on the main page.
type Headline struct {
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	Summary     string    `json:"summary,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}

// Investment is the result of the investment calculator.
type Investment struct {
	Amount      decimal.Decimal `json:"amount"`
	Quantity    decimal.Decimal `json:"quantity"` // rounded to 2 decimal places
	CompanyName Field           `json:"company_name"`
	Price       float64         `json:"price"`
}
