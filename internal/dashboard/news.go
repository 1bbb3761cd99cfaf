package dashboard

import (
	"context"
	"fmt"

	"github.com/openfund/fundview/internal/report"
	"github.com/openfund/fundview/internal/sentiment"
	"github.com/openfund/fundview/pkg/models"
)

// NewsPage is the sentiment view for one ticker: the raw item list for
// the table plus the scatter chart. Empty is set when the feed had no
// annotations for the ticker; the page then shows a "no news" notice
// and no chart.
type NewsPage struct {
	Ticker   string
	Items    []models.NewsItem
	ChartURI string
	Empty    bool
}

// Sentiment score / relevance axis domains for the scatter plot.
var sentimentDomain = report.ScatterDomain{XMin: -0.5, XMax: 0.5, YMin: 0, YMax: 1}

// News assembles the sentiment page. Provider outages have already been
// swallowed into an empty feed by the client; a malformed feed entry
// (bad timestamp or non-numeric score) still fails the request.
func (s *Service) News(ctx context.Context, ticker string) (NewsPage, error) {
	feed := s.news.Feed(ctx, ticker)
	items, err := sentiment.Filter(feed, ticker)
	if err != nil {
		return NewsPage{}, err
	}
	if len(items) == 0 {
		return NewsPage{Ticker: ticker, Empty: true}, nil
	}

	pts := make([]report.ScatterPoint, len(items))
	for i, it := range items {
		pts[i] = report.ScatterPoint{
			X:     it.Score,
			Y:     it.Relevance,
			Color: sentiment.Classify(it.Score, it.Relevance),
		}
	}

	cfg := report.DefaultChartConfig()
	cfg.Title = fmt.Sprintf("%s Sentiment vs Relevance", ticker)
	svg := report.ScatterChart(pts, sentimentDomain, "Sentiment Score", "Relevance Score", cfg)

	return NewsPage{
		Ticker:   ticker,
		Items:    items,
		ChartURI: report.DataURI(svg),
	}, nil
}
