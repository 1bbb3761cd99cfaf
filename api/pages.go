package api

import (
	"errors"
	"html/template"
	"log"
	"net/http"
	"strings"

	"github.com/openfund/fundview/internal/dashboard"
	"github.com/openfund/fundview/internal/report"
	"github.com/openfund/fundview/internal/session"
	"github.com/openfund/fundview/pkg/models"
)

// headlineLimit caps the RSS headlines shown on the main page.
const headlineLimit = 10

// ── Session helpers ──

// currentSession returns the request's session, or nil when the cookie
// is absent, tampered with, or references an expired server session.
func (s *Server) currentSession(r *http.Request) *session.Session {
	id, ok := s.codec.ReadCookie(r)
	if !ok {
		return nil
	}
	return s.sessions.Get(id)
}

// ensureSession returns the request's session, creating one and setting
// the signed cookie when needed.
func (s *Server) ensureSession(w http.ResponseWriter, r *http.Request) *session.Session {
	if sess := s.currentSession(r); sess != nil {
		return sess
	}
	sess := s.sessions.Create()
	s.codec.SetCookie(w, sess.ID)
	return sess
}

// sessionTicker reads the resolved ticker from the request's session.
func (s *Server) sessionTicker(r *http.Request) (string, bool) {
	sess := s.currentSession(r)
	if sess == nil {
		return "", false
	}
	return s.sessions.Value(sess.ID, session.TickerKey)
}

// requireTicker fetches the session ticker or redirects to the entry
// form. The bool reports whether the caller may proceed.
func (s *Server) requireTicker(w http.ResponseWriter, r *http.Request) (string, bool) {
	ticker, ok := s.sessionTicker(r)
	if !ok || ticker == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return "", false
	}
	return ticker, true
}

// render executes a named page template. Template faults are server
// errors; by then part of the page may already be written, so just log.
func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("render %s: %v", name, err)
	}
}

// ── Page data ──

type indexData struct {
	Title string
	Error string
}

type mainData struct {
	Title     string
	Ticker    string
	Headlines []models.Headline
}

type tableData struct {
	Title  string
	Ticker string
	Name   string
	Rows   []models.LabeledField
}

type financialsData struct {
	Title  string
	Ticker string
	Table  template.HTML
}

type stockInfoData struct {
	Title    string
	Ticker   string
	Name     string
	Rows     []models.LabeledField
	ChartURI string
	HasChart bool
}

type newsData struct {
	Title    string
	Ticker   string
	Items    []models.NewsItem
	ChartURI string
	Empty    bool
}

type qaData struct {
	Title    string
	Ticker   string
	Question string
	Answer   template.HTML
}

type investmentData struct {
	Title  string
	Ticker string
	Error  string
}

type investmentResultData struct {
	Title    string
	Ticker   string
	Company  string
	Amount   string
	Quantity string
	Price    float64
}

// ── Handlers ──

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, "index", indexData{Title: "FundView"})
}

// handleResolve validates the submitted ticker and stores it in the
// session. An invalid ticker re-renders the form with an inline error
// and leaves any previously stored ticker untouched.
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	raw := r.FormValue("q")

	ticker, err := s.svc.Resolve(r.Context(), raw)
	if err != nil {
		s.render(w, "index", indexData{
			Title: "FundView",
			Error: "Invalid ticker: " + strings.TrimSpace(raw),
		})
		return
	}

	sess := s.ensureSession(w, r)
	s.sessions.Set(sess.ID, session.TickerKey, ticker)
	http.Redirect(w, r, "/main", http.StatusSeeOther)
}

func (s *Server) handleMain(w http.ResponseWriter, r *http.Request) {
	ticker, ok := s.requireTicker(w, r)
	if !ok {
		return
	}
	s.render(w, "main", mainData{
		Title:     ticker + " - FundView",
		Ticker:    ticker,
		Headlines: s.svc.Headlines(r.Context(), ticker, headlineLimit),
	})
}

func (s *Server) handleIntroduction(w http.ResponseWriter, r *http.Request) {
	ticker, ok := s.requireTicker(w, r)
	if !ok {
		return
	}
	profile, err := s.svc.Profile(r.Context(), ticker)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.render(w, "introduction", tableData{
		Title:  ticker + " - Introduction",
		Ticker: ticker,
		Name:   profile.Name.Display(),
		Rows:   profile.Rows,
	})
}

func (s *Server) handleFinancialInfo(w http.ResponseWriter, r *http.Request) {
	ticker, ok := s.requireTicker(w, r)
	if !ok {
		return
	}
	table, err := s.svc.Financials(r.Context(), ticker)
	if err != nil {
		// A missing required statement row is a structural fault; the
		// page does not render partially.
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.render(w, "financial_info", financialsData{
		Title:  ticker + " - Financials",
		Ticker: ticker,
		Table:  report.FinancialTableHTML(table),
	})
}

func (s *Server) handleStockInfo(w http.ResponseWriter, r *http.Request) {
	ticker, ok := s.requireTicker(w, r)
	if !ok {
		return
	}
	quote, err := s.svc.Quote(r.Context(), ticker)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	uri, hasChart, err := s.svc.PriceChart(r.Context(), ticker)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.render(w, "stock_info", stockInfoData{
		Title:    ticker + " - Stock Info",
		Ticker:   ticker,
		Name:     quote.Name.Display(),
		Rows:     quote.Rows,
		ChartURI: uri,
		HasChart: hasChart,
	})
}

// handleMarketSentiment serves the news sentiment page. The form field
// "ticker" overrides the session ticker for this request only.
func (s *Server) handleMarketSentiment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	ticker := strings.ToUpper(strings.TrimSpace(r.FormValue("ticker")))
	if ticker == "" {
		var ok bool
		ticker, ok = s.requireTicker(w, r)
		if !ok {
			return
		}
	}

	page, err := s.svc.News(r.Context(), ticker)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.render(w, "ms", newsData{
		Title:    ticker + " - Market Sentiment",
		Ticker:   ticker,
		Items:    page.Items,
		ChartURI: page.ChartURI,
		Empty:    page.Empty,
	})
}

func (s *Server) handleGenAI(w http.ResponseWriter, r *http.Request) {
	ticker, _ := s.sessionTicker(r)
	s.render(w, "genai", qaData{Title: "Ask AI - FundView", Ticker: ticker})
}

// handleGenAIResult forwards the question verbatim to the generative
// provider. A provider error fails the request; there is no retry.
func (s *Server) handleGenAIResult(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	question := r.FormValue("q")

	answer, err := s.svc.Answer(r.Context(), question)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	ticker, _ := s.sessionTicker(r)
	s.render(w, "genai_result", qaData{
		Title:    "Answer - FundView",
		Ticker:   ticker,
		Question: question,
		Answer:   answer,
	})
}

func (s *Server) handleInvestment(w http.ResponseWriter, r *http.Request) {
	ticker, ok := s.requireTicker(w, r)
	if !ok {
		return
	}
	s.render(w, "investment", investmentData{
		Title:  ticker + " - Investment",
		Ticker: ticker,
	})
}

func (s *Server) handleInvestmentResult(w http.ResponseWriter, r *http.Request) {
	ticker, ok := s.requireTicker(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	amount := r.FormValue("q")

	result, err := s.svc.Invest(r.Context(), ticker, amount)
	switch {
	case errors.Is(err, dashboard.ErrBadAmount):
		w.WriteHeader(http.StatusBadRequest)
		s.render(w, "investment", investmentData{
			Title:  ticker + " - Investment",
			Ticker: ticker,
			Error:  "Enter a positive dollar amount.",
		})
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.render(w, "investment_result", investmentResultData{
		Title:    ticker + " - Investment Result",
		Ticker:   ticker,
		Company:  result.CompanyName.Display(),
		Amount:   result.Amount.String(),
		Quantity: result.Quantity.String(),
		Price:    result.Price,
	})
}
