// Package headlines fetches per-ticker news headlines from Yahoo
// Finance's RSS feed for the main page. Failures are non-critical: the
// page renders without headlines.
package headlines

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"github.com/openfund/fundview/pkg/models"
)

// DefaultFeedURL is the Yahoo Finance headline RSS endpoint. %s is the
// ticker.
const DefaultFeedURL = "https://feeds.finance.yahoo.com/rss/2.0/headline?s=%s&region=US&lang=en-US"

// Fetcher retrieves recent headlines for a ticker.
type Fetcher struct {
	feedURL string
	parser  *gofeed.Parser
}

// New creates a headline fetcher. An empty feedURL selects the default
// Yahoo Finance feed.
func New(feedURL string) *Fetcher {
	if feedURL == "" {
		feedURL = DefaultFeedURL
	}
	return &Fetcher{
		feedURL: feedURL,
		parser:  gofeed.NewParser(),
	}
}

// Fetch returns up to limit recent headlines for a ticker, in feed order.
func (f *Fetcher) Fetch(ctx context.Context, ticker string, limit int) ([]models.Headline, error) {
	feed, err := f.parser.ParseURLWithContext(fmt.Sprintf(f.feedURL, ticker), ctx)
	if err != nil {
		return nil, fmt.Errorf("parse headline feed for %s: %w", ticker, err)
	}

	headlines := make([]models.Headline, 0, len(feed.Items))
	for _, item := range feed.Items {
		h := models.Headline{
			Title:   item.Title,
			URL:     item.Link,
			Source:  feed.Title,
			Summary: cleanHTML(item.Description),
		}
		if item.PublishedParsed != nil {
			h.PublishedAt = *item.PublishedParsed
		}
		headlines = append(headlines, h)
	}

	if limit > 0 && len(headlines) > limit {
		headlines = headlines[:limit]
	}
	return headlines, nil
}

// cleanHTML strips HTML tags from a string using goquery.
func cleanHTML(s string) string {
	if s == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<body>" + s + "</body>"))
	if err != nil {
		return s
	}
	return strings.TrimSpace(doc.Text())
}
