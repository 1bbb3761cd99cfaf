// Package report renders the presentation artifacts handed to the
// templates: inline SVG charts, HTML table fragments, and converted
// markdown. Charts are generated as pure-Go SVG and embedded as data
// URIs; no image library is involved.
package report

import (
	"encoding/base64"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/openfund/fundview/pkg/models"
)

// ChartConfig holds rendering parameters for SVG charts.
type ChartConfig struct {
	Width        int    // SVG width in pixels
	Height       int    // SVG height in pixels
	MarginTop    int
	MarginRight  int
	MarginBottom int
	MarginLeft   int
	BgColor      string
	GridColor    string
	TextColor    string
	FontSize     int
	Title        string
}

// DefaultChartConfig returns sensible defaults for chart rendering.
func DefaultChartConfig() ChartConfig {
	return ChartConfig{
		Width:        800,
		Height:       400,
		MarginTop:    40,
		MarginRight:  40,
		MarginBottom: 60,
		MarginLeft:   70,
		BgColor:      "#ffffff",
		GridColor:    "#e8e8e8",
		TextColor:    "#333333",
		FontSize:     11,
	}
}

// plotArea returns the usable drawing area dimensions.
func (c ChartConfig) plotArea() (x, y, w, h int) {
	return c.MarginLeft, c.MarginTop,
		c.Width - c.MarginLeft - c.MarginRight,
		c.Height - c.MarginTop - c.MarginBottom
}

// priceLineColor matches the page's house style for the closing-price line.
const priceLineColor = "#5f130f"

// PriceLineChart generates an SVG line chart of a daily closing-price
// series: dates on the x-axis with monthly tick labels rotated 45°, price
// on the y-axis, grid enabled, one legend entry for the series.
func PriceLineChart(points []models.PricePoint, seriesName string, cfg ChartConfig) string {
	if len(points) == 0 {
		return emptySVG(cfg, "No data")
	}

	if cfg.Width == 0 {
		cfg = DefaultChartConfig()
	}

	px, py, pw, ph := cfg.plotArea()

	minVal, maxVal := points[0].Close, points[0].Close
	for _, p := range points {
		if p.Close < minVal {
			minVal = p.Close
		}
		if p.Close > maxVal {
			maxVal = p.Close
		}
	}
	vRange := maxVal - minVal
	if vRange < 0.001 {
		vRange = 1
	}
	minVal -= vRange * 0.05
	maxVal += vRange * 0.05
	vRange = maxVal - minVal

	n := len(points)
	xAt := func(i int) float64 {
		if n == 1 {
			return float64(px)
		}
		return float64(px) + float64(i)*float64(pw)/float64(n-1)
	}
	yAt := func(v float64) float64 {
		return float64(py+ph) - (v-minVal)/vRange*float64(ph)
	}

	var sb strings.Builder
	sb.WriteString(svgHeader(cfg))
	sb.WriteString(fmt.Sprintf(`<rect x="0" y="0" width="%d" height="%d" fill="%s"/>`,
		cfg.Width, cfg.Height, cfg.BgColor))
	sb.WriteString(fmt.Sprintf(`<text x="%d" y="20" font-size="14" font-weight="bold" fill="%s" text-anchor="middle">%s</text>`,
		cfg.Width/2, cfg.TextColor, escapeXML(cfg.Title)))

	// Y-axis grid and labels
	gridLines := 5
	for i := 0; i <= gridLines; i++ {
		val := minVal + vRange*float64(i)/float64(gridLines)
		y := py + ph - int(float64(ph)*float64(i)/float64(gridLines))
		sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-dasharray="3,3"/>`,
			px, y, px+pw, y, cfg.GridColor))
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" font-size="%d" fill="%s" text-anchor="end">%.2f</text>`,
			px-5, y+4, cfg.FontSize, cfg.TextColor, val))
	}

	// Monthly x-axis ticks, rotated 45°
	var lastMonth time.Month
	var lastYear int
	for i, p := range points {
		if i > 0 && p.Date.Month() == lastMonth && p.Date.Year() == lastYear {
			continue
		}
		lastMonth, lastYear = p.Date.Month(), p.Date.Year()
		cx := xAt(i)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%d" x2="%.1f" y2="%d" stroke="%s" stroke-dasharray="3,3"/>`,
			cx, py, cx, py+ph, cfg.GridColor))
		label := p.Date.Format("2006-01")
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%d" font-size="%d" fill="%s" text-anchor="end" transform="rotate(-45,%.1f,%d)">%s</text>`,
			cx, py+ph+15, cfg.FontSize, cfg.TextColor, cx, py+ph+15, label))
	}

	// Price path
	var pathParts []string
	for i, p := range points {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		pathParts = append(pathParts, fmt.Sprintf("%s%.1f,%.1f", cmd, xAt(i), yAt(p.Close)))
	}
	sb.WriteString(fmt.Sprintf(`<path d="%s" fill="none" stroke="%s" stroke-width="1.5"/>`,
		strings.Join(pathParts, " "), priceLineColor))

	// Legend
	ly := py + 12
	sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="2"/>`,
		px+10, ly, px+30, ly, priceLineColor))
	sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" font-size="10" fill="%s">%s</text>`,
		px+35, ly+4, cfg.TextColor, escapeXML(seriesName)))

	sb.WriteString("</svg>")
	return sb.String()
}

// ScatterPoint is a single pre-colored point of a scatter plot.
type ScatterPoint struct {
	X     float64
	Y     float64
	Color string
}

// ScatterDomain fixes the axis ranges of a scatter plot.
type ScatterDomain struct {
	XMin, XMax float64
	YMin, YMax float64
}

// ScatterChart generates an SVG scatter plot with fixed axis domains,
// dashed reference lines at x=0 and y=0.5, and only the left and bottom
// plot borders drawn.
func ScatterChart(pts []ScatterPoint, domain ScatterDomain, xLabel, yLabel string, cfg ChartConfig) string {
	if len(pts) == 0 {
		return emptySVG(cfg, "No data")
	}

	if cfg.Width == 0 {
		cfg = DefaultChartConfig()
	}

	px, py, pw, ph := cfg.plotArea()

	xRange := domain.XMax - domain.XMin
	yRange := domain.YMax - domain.YMin
	xAt := func(v float64) float64 {
		return float64(px) + (v-domain.XMin)/xRange*float64(pw)
	}
	yAt := func(v float64) float64 {
		return float64(py+ph) - (v-domain.YMin)/yRange*float64(ph)
	}

	var sb strings.Builder
	sb.WriteString(svgHeader(cfg))
	sb.WriteString(fmt.Sprintf(`<rect x="0" y="0" width="%d" height="%d" fill="%s"/>`,
		cfg.Width, cfg.Height, cfg.BgColor))
	sb.WriteString(fmt.Sprintf(`<text x="%d" y="20" font-size="14" font-weight="bold" fill="%s" text-anchor="middle">%s</text>`,
		cfg.Width/2, cfg.TextColor, escapeXML(cfg.Title)))

	// Axis ticks and labels
	ticks := 5
	for i := 0; i <= ticks; i++ {
		xv := domain.XMin + xRange*float64(i)/float64(ticks)
		x := xAt(xv)
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%d" font-size="%d" fill="%s" text-anchor="middle">%.1f</text>`,
			x, py+ph+18, cfg.FontSize, cfg.TextColor, xv))

		yv := domain.YMin + yRange*float64(i)/float64(ticks)
		y := yAt(yv)
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%.1f" font-size="%d" fill="%s" text-anchor="end">%.1f</text>`,
			px-8, y+4, cfg.FontSize, cfg.TextColor, yv))
	}

	// Left and bottom borders only; top and right stay hidden.
	sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="1"/>`,
		px, py, px, py+ph, cfg.TextColor))
	sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="1"/>`,
		px, py+ph, px+pw, py+ph, cfg.TextColor))

	// Dashed reference lines at x=0 and y=0.5
	if domain.XMin < 0 && domain.XMax > 0 {
		zx := xAt(0)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%d" x2="%.1f" y2="%d" stroke="black" stroke-width="1" stroke-dasharray="5,5"/>`,
			zx, py, zx, py+ph))
	}
	if domain.YMin < 0.5 && domain.YMax > 0.5 {
		zy := yAt(0.5)
		sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%.1f" x2="%d" y2="%.1f" stroke="black" stroke-width="1" stroke-dasharray="5,5"/>`,
			px, zy, px+pw, zy))
	}

	// Points. Values outside the fixed domain are clamped to the border.
	for _, p := range pts {
		cx := xAt(clamp(p.X, domain.XMin, domain.XMax))
		cy := yAt(clamp(p.Y, domain.YMin, domain.YMax))
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="5" fill="%s"/>`, cx, cy, p.Color))
	}

	// Axis titles
	sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" font-size="12" fill="%s" text-anchor="middle">%s</text>`,
		px+pw/2, cfg.Height-8, cfg.TextColor, escapeXML(xLabel)))
	sb.WriteString(fmt.Sprintf(`<text x="15" y="%d" font-size="12" fill="%s" text-anchor="middle" transform="rotate(-90,15,%d)">%s</text>`,
		py+ph/2, cfg.TextColor, py+ph/2, escapeXML(yLabel)))

	sb.WriteString("</svg>")
	return sb.String()
}

// DataURI encodes an SVG document for inline embedding in an <img> tag.
func DataURI(svg string) string {
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}

// ── SVG helpers ──

func svgHeader(cfg ChartConfig) string {
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="sans-serif">`,
		cfg.Width, cfg.Height, cfg.Width, cfg.Height)
}

func emptySVG(cfg ChartConfig, msg string) string {
	if cfg.Width == 0 {
		cfg.Width = 400
	}
	if cfg.Height == 0 {
		cfg.Height = 200
	}
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d"><rect width="%d" height="%d" fill="#f5f5f5"/><text x="%d" y="%d" text-anchor="middle" fill="#999" font-size="14">%s</text></svg>`,
		cfg.Width, cfg.Height, cfg.Width, cfg.Height, cfg.Width/2, cfg.Height/2, escapeXML(msg))
}

func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	return s
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
