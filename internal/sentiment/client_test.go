package sentiment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFeedParsesArticles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("function") != "NEWS_SENTIMENT" {
			t.Errorf("function = %q", q.Get("function"))
		}
		if q.Get("tickers") != "AAPL" {
			t.Errorf("tickers = %q", q.Get("tickers"))
		}
		if q.Get("apikey") != "demo" {
			t.Errorf("apikey = %q", q.Get("apikey"))
		}
		w.Write([]byte(`{
			"feed": [
				{
					"title": "Apple hits new high",
					"url": "https://example.com/1",
					"time_published": "20240105T093000",
					"ticker_sentiment": [
						{"ticker": "AAPL", "ticker_sentiment_label": "Bullish",
						 "ticker_sentiment_score": "0.42", "relevance_score": "0.9"}
					]
				}
			]
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "demo")
	feed := c.Feed(context.Background(), "AAPL")
	if len(feed) != 1 {
		t.Fatalf("expected 1 article, got %d", len(feed))
	}
	if feed[0].Title != "Apple hits new high" {
		t.Errorf("Title = %q", feed[0].Title)
	}
	if len(feed[0].TickerSentiment) != 1 || feed[0].TickerSentiment[0].Score != "0.42" {
		t.Errorf("annotations = %+v", feed[0].TickerSentiment)
	}
}

func TestFeedSwallowsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, "demo")
	if feed := c.Feed(context.Background(), "AAPL"); feed != nil {
		t.Errorf("expected empty feed on 500, got %+v", feed)
	}
}

func TestFeedSwallowsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := New(srv.URL, "demo")
	if feed := c.Feed(context.Background(), "AAPL"); feed != nil {
		t.Errorf("expected empty feed on transport failure, got %+v", feed)
	}
}

func TestFeedSwallowsMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"feed": [`))
	}))
	defer srv.Close()

	c := New(srv.URL, "demo")
	if feed := c.Feed(context.Background(), "AAPL"); feed != nil {
		t.Errorf("expected empty feed on bad JSON, got %+v", feed)
	}
}
