// Package dashboard aggregates provider data into the page-level views:
// ticker resolution, company profile, combined financial statements,
// quote snapshot, price chart, news sentiment, Q&A, and the investment
// calculator. Each page view calls its providers sequentially; failure
// policy is per aggregator (optional fields degrade to "N/A", the news
// feed degrades to empty, statement rows and the Q&A provider fail the
// request).
package dashboard

import (
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/openfund/fundview/internal/headlines"
	"github.com/openfund/fundview/internal/llm"
	"github.com/openfund/fundview/internal/market"
	"github.com/openfund/fundview/internal/report"
	"github.com/openfund/fundview/internal/sentiment"
	"github.com/openfund/fundview/pkg/models"
)

// Service wires the provider clients behind the page aggregators. All
// dependencies are injected once at construction; there are no globals.
type Service struct {
	market    *market.Client
	news      *sentiment.Client
	headlines *headlines.Fetcher
	llm       llm.TextProvider
}

// New creates a dashboard service. llm may be nil when no generative
// provider is configured; the Q&A page then fails with llm.ErrNoAPIKey.
func New(m *market.Client, n *sentiment.Client, h *headlines.Fetcher, p llm.TextProvider) *Service {
	return &Service{market: m, news: n, headlines: h, llm: p}
}

// Resolve validates a raw user-entered ticker against the market-data
// provider. The input is uppercased; a lookup that fails or returns no
// symbol yields ErrInvalidTicker. Network failure and "not found" are
// indistinguishable here.
func (s *Service) Resolve(ctx context.Context, raw string) (string, error) {
	ticker := strings.ToUpper(strings.TrimSpace(raw))
	if ticker == "" {
		return "", ErrInvalidTicker
	}
	info, err := s.market.Info(ctx, ticker)
	if err != nil || info.Symbol == "" {
		return "", ErrInvalidTicker
	}
	return ticker, nil
}

// summaryLimit is the maximum number of summary characters shown.
const summaryLimit = 200

// Profile builds the company introduction table: seven fixed rows, each
// substituted with "N/A" when the provider omits the field.
func (s *Service) Profile(ctx context.Context, ticker string) (models.CompanyProfile, error) {
	info, err := s.market.Info(ctx, ticker)
	if err != nil {
		return models.CompanyProfile{}, err
	}

	name := models.StringField(info.Name)
	return models.CompanyProfile{
		Ticker: ticker,
		Name:   name,
		Rows: []models.LabeledField{
			{Label: "Stock Code", Value: models.StringField(ticker)},
			{Label: "Company Name", Value: name},
			{Label: "Sector", Value: models.StringField(info.Sector)},
			{Label: "Industry", Value: models.StringField(info.Industry)},
			{Label: "Employees", Value: models.IntField(info.Employees)},
			{Label: "Company Summary", Value: summaryField(info.Summary)},
			{Label: "Website", Value: models.StringField(info.Website)},
		},
	}, nil
}

// summaryField truncates a business summary to its first 200 characters
// and appends an ellipsis. The ellipsis is appended even when the text
// is already short; re-truncating a truncated summary changes it again.
func summaryField(summary string) models.Field {
	if summary == "" {
		return models.Field{}
	}
	r := []rune(summary)
	if len(r) > summaryLimit {
		r = r[:summaryLimit]
	}
	return models.StringField(string(r) + "...")
}

// Quote builds the stock info table: eight fixed rows, each an
// independent optional field.
func (s *Service) Quote(ctx context.Context, ticker string) (models.QuoteSnapshot, error) {
	info, err := s.market.Info(ctx, ticker)
	if err != nil {
		return models.QuoteSnapshot{}, err
	}

	return models.QuoteSnapshot{
		Ticker: ticker,
		Name:   models.StringField(info.Name),
		Rows: []models.LabeledField{
			{Label: "Sector", Value: models.StringField(info.Sector)},
			{Label: "Market Price", Value: models.NumberField(info.CurrentPrice)},
			{Label: "Day High", Value: models.NumberField(info.DayHigh)},
			{Label: "Day Low", Value: models.NumberField(info.DayLow)},
			{Label: "Last Close Price", Value: models.NumberField(info.PreviousClose)},
			{Label: "Open Price", Value: models.NumberField(info.Open)},
			{Label: "ROA", Value: models.NumberField(info.ROA)},
			{Label: "ROE", Value: models.NumberField(info.ROE)},
		},
	}, nil
}

// PriceChart renders the trailing one-year closing-price chart as a
// data URI. ok is false when the provider has no history for the
// ticker; the page then renders without an image.
func (s *Service) PriceChart(ctx context.Context, ticker string) (uri string, ok bool, err error) {
	points, err := s.market.History(ctx, ticker)
	if err != nil {
		return "", false, err
	}
	if len(points) == 0 {
		return "", false, nil
	}

	cfg := report.DefaultChartConfig()
	cfg.Title = fmt.Sprintf("%s Stock Price (Last 1 Year)", ticker)
	svg := report.PriceLineChart(points, fmt.Sprintf("%s Closing Price", ticker), cfg)
	return report.DataURI(svg), true, nil
}

// Headlines fetches recent RSS headlines for the main page. Failures
// degrade to an empty list; the page renders without them.
func (s *Service) Headlines(ctx context.Context, ticker string, limit int) []models.Headline {
	if s.headlines == nil {
		return nil
	}
	items, err := s.headlines.Fetch(ctx, ticker, limit)
	if err != nil {
		return nil
	}
	return items
}

// Answer forwards a free-text question to the generative provider and
// converts the markdown answer to HTML. Provider errors propagate; the
// page fails rather than degrading.
func (s *Service) Answer(ctx context.Context, question string) (template.HTML, error) {
	if s.llm == nil {
		return "", llm.ErrNoAPIKey
	}
	text, err := s.llm.Generate(ctx, question)
	if err != nil {
		return "", err
	}
	return report.RenderMarkdown(text)
}
