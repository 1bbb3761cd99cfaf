package sentiment

import (
	"fmt"
	"strconv"
	"time"

	"github.com/openfund/fundview/pkg/models"
)

// timeLayout is the provider's publish-timestamp format.
const timeLayout = "20060102T150405"

// Filter extracts the NewsItem rows for a ticker from a raw feed. For
// every annotation whose ticker equals the requested ticker
// (case-sensitive), one item is emitted in feed order. Articles may carry
// duplicate annotations for the same ticker; multiplicity is preserved as
// observed — the provider does not document whether duplicates can occur.
func Filter(feed []Article, ticker string) ([]models.NewsItem, error) {
	var items []models.NewsItem
	for _, article := range feed {
		published, err := time.Parse(timeLayout, article.TimePublished)
		if err != nil {
			return nil, fmt.Errorf("parse publish time %q: %w", article.TimePublished, err)
		}
		for _, ann := range article.TickerSentiment {
			if ann.Ticker != ticker {
				continue
			}
			score, err := strconv.ParseFloat(ann.Score, 64)
			if err != nil {
				return nil, fmt.Errorf("parse sentiment score %q: %w", ann.Score, err)
			}
			relevance, err := strconv.ParseFloat(ann.Relevance, 64)
			if err != nil {
				return nil, fmt.Errorf("parse relevance score %q: %w", ann.Relevance, err)
			}
			items = append(items, models.NewsItem{
				Title:       article.Title,
				PublishedAt: published,
				URL:         article.URL,
				Label:       ann.Label,
				Score:       score,
				Relevance:   relevance,
			})
		}
	}
	return items, nil
}

// Point colors for the sentiment scatter plot.
const (
	ColorDarkRed   = "#8B0000" // negative and relevant
	ColorDarkBlue  = "#023859" // positive and relevant
	ColorLightRed  = "#FF6F6F" // non-positive, low relevance
	ColorLightBlue = "#7EC8E3" // positive, low relevance
)

// Classify maps a (score, relevance) pair to its plot color. Boundaries
// follow the page's quadrant convention: relevance above 0.5 makes a
// point "relevant", score zero counts as negative.
func Classify(score, relevance float64) string {
	switch {
	case score < 0 && relevance > 0.5:
		return ColorDarkRed
	case score > 0 && relevance > 0.5:
		return ColorDarkBlue
	case score <= 0 && relevance <= 0.5:
		return ColorLightRed
	default:
		return ColorLightBlue
	}
}
