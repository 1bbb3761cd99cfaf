// Package api provides the HTTP server for FundView.
//
// It serves the research pages: ticker entry, main menu, company
// introduction, combined financials, stock info with the price chart,
// news sentiment, AI Q&A, and the investment calculator.
package api

import (
	"context"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/openfund/fundview/internal/config"
	"github.com/openfund/fundview/internal/dashboard"
	"github.com/openfund/fundview/internal/headlines"
	"github.com/openfund/fundview/internal/llm"
	"github.com/openfund/fundview/internal/market"
	"github.com/openfund/fundview/internal/sentiment"
	"github.com/openfund/fundview/internal/session"
	"github.com/openfund/fundview/web"
)

// Server is the FundView HTTP server.
type Server struct {
	router   chi.Router
	cfg      *config.Config
	svc      *dashboard.Service
	sessions *session.Store
	codec    *session.Codec
	tmpl     *template.Template
}

// NewServer creates a configured server with all routes and middleware.
// Provider clients are built once here and injected into the dashboard
// service.
func NewServer(cfg *config.Config) (*Server, error) {
	marketClient := market.New(cfg.Market.BaseURL)
	newsClient := sentiment.New(cfg.News.BaseURL, cfg.News.APIKey)
	headlineFetcher := headlines.New(cfg.Market.HeadlineFeed)

	var provider llm.TextProvider
	if cfg.LLM.GeminiKey != "" {
		gemini, err := llm.NewGemini(cfg.LLM.GeminiKey, llm.WithGeminiModel(cfg.LLM.Model))
		if err != nil {
			return nil, fmt.Errorf("LLM setup failed: %w", err)
		}
		provider = gemini
	}

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("template setup failed: %w", err)
	}

	srv := &Server{
		cfg:      cfg,
		svc:      dashboard.New(marketClient, newsClient, headlineFetcher, provider),
		sessions: session.NewStore(),
		codec:    session.NewCodec(cfg.Server.SessionSecret),
		tmpl:     tmpl,
	}
	srv.router = srv.buildRouter()
	return srv, nil
}

// Router returns the chi router for testing.
func (s *Server) Router() chi.Router {
	return s.router
}

// ListenAndServe starts the HTTP server with graceful shutdown.
func (s *Server) ListenAndServe(addr string) error {
	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	<-done
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	return httpSrv.Shutdown(ctx)
}

// buildRouter configures all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(120 * time.Second))

	origins := []string{"*"}
	if len(s.cfg.Server.CORSOrigins) > 0 {
		origins = s.cfg.Server.CORSOrigins
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", s.handleHealth)

	r.Get("/", s.handleIndex)
	r.Post("/", s.handleResolve)
	r.Get("/main", s.handleMain)

	// The research pages accept GET and POST alike; the originating
	// menu submits forms, deep links use GET.
	for _, route := range []struct {
		pattern string
		handler http.HandlerFunc
	}{
		{"/introduction", s.handleIntroduction},
		{"/financial_info", s.handleFinancialInfo},
		{"/stock_info", s.handleStockInfo},
		{"/ms", s.handleMarketSentiment},
		{"/genAI", s.handleGenAI},
		{"/investment", s.handleInvestment},
	} {
		r.Get(route.pattern, route.handler)
		r.Post(route.pattern, route.handler)
	}

	r.Post("/genAI_result", s.handleGenAIResult)
	r.Post("/investment_result", s.handleInvestmentResult)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}
