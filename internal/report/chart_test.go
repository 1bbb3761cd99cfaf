package report

import (
	"strings"
	"testing"
	"time"

	"github.com/openfund/fundview/pkg/models"
)

func pricePoints(n int) []models.PricePoint {
	points := make([]models.PricePoint, n)
	base := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	for i := range points {
		points[i] = models.PricePoint{
			Date:  base.AddDate(0, 0, i),
			Close: 100 + float64(i),
		}
	}
	return points
}

func TestPriceLineChart(t *testing.T) {
	cfg := DefaultChartConfig()
	cfg.Title = "AAPL Stock Price (Last 1 Year)"
	svg := PriceLineChart(pricePoints(90), "AAPL Closing Price", cfg)

	if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("not a complete SVG document")
	}
	if !strings.Contains(svg, "AAPL Stock Price (Last 1 Year)") {
		t.Error("missing title")
	}
	if !strings.Contains(svg, "AAPL Closing Price") {
		t.Error("missing legend entry")
	}
	if !strings.Contains(svg, priceLineColor) {
		t.Error("missing series line color")
	}
	if !strings.Contains(svg, `transform="rotate(-45,`) {
		t.Error("x tick labels not rotated")
	}
	// 90 days spanning Jan-Apr: one monthly label per month
	for _, label := range []string{"2024-01", "2024-02", "2024-03", "2024-04"} {
		if !strings.Contains(svg, label) {
			t.Errorf("missing monthly tick label %s", label)
		}
	}
}

func TestPriceLineChartEmpty(t *testing.T) {
	svg := PriceLineChart(nil, "X Closing Price", DefaultChartConfig())
	if !strings.Contains(svg, "No data") {
		t.Error("empty series should render the placeholder")
	}
}

func TestPriceLineChartEscapesTitle(t *testing.T) {
	cfg := DefaultChartConfig()
	cfg.Title = `<script>"&`
	svg := PriceLineChart(pricePoints(5), "s", cfg)
	if strings.Contains(svg, "<script>") {
		t.Error("title not escaped")
	}
	if !strings.Contains(svg, "&lt;script&gt;&quot;&amp;") {
		t.Error("expected escaped title text")
	}
}

func TestScatterChart(t *testing.T) {
	pts := []ScatterPoint{
		{X: -0.3, Y: 0.8, Color: "#8B0000"},
		{X: 0.3, Y: 0.8, Color: "#023859"},
		{X: 0.1, Y: 0.2, Color: "#7EC8E3"},
	}
	domain := ScatterDomain{XMin: -0.5, XMax: 0.5, YMin: 0, YMax: 1}
	cfg := DefaultChartConfig()
	cfg.Title = "AAPL Sentiment vs Relevance"
	svg := ScatterChart(pts, domain, "Sentiment Score", "Relevance Score", cfg)

	for _, color := range []string{"#8B0000", "#023859", "#7EC8E3"} {
		if !strings.Contains(svg, `fill="`+color+`"`) {
			t.Errorf("missing point color %s", color)
		}
	}
	if got := strings.Count(svg, "<circle"); got != 3 {
		t.Errorf("circle count = %d, want 3", got)
	}
	// reference lines at x=0 and y=0.5
	if got := strings.Count(svg, `stroke-dasharray="5,5"`); got != 2 {
		t.Errorf("dashed reference line count = %d, want 2", got)
	}
	if !strings.Contains(svg, "Sentiment Score") || !strings.Contains(svg, "Relevance Score") {
		t.Error("missing axis titles")
	}
}

func TestScatterChartClampsOutOfDomain(t *testing.T) {
	pts := []ScatterPoint{{X: 0.9, Y: 1.5, Color: "#023859"}}
	domain := ScatterDomain{XMin: -0.5, XMax: 0.5, YMin: 0, YMax: 1}
	svg := ScatterChart(pts, domain, "x", "y", DefaultChartConfig())
	if !strings.Contains(svg, "<circle") {
		t.Error("out-of-domain point dropped instead of clamped")
	}
}

func TestDataURI(t *testing.T) {
	uri := DataURI(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`)
	if !strings.HasPrefix(uri, "data:image/svg+xml;base64,") {
		t.Errorf("unexpected prefix: %s", uri[:40])
	}
}
