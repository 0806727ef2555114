// Package api provides the HTTP REST API server for riskcore.
//
// It exposes endpoints for instrument risk assessment, portfolio
// analysis, suitability verdicts, stress testing, the instrument
// catalog, news, report generation, and WebSocket event streaming.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/seenimoa/riskcore/internal/advisor"
	"github.com/seenimoa/riskcore/internal/config"
	"github.com/seenimoa/riskcore/internal/report"
	"github.com/seenimoa/riskcore/internal/store"
	"github.com/seenimoa/riskcore/internal/suitability"
	"github.com/seenimoa/riskcore/pkg/models"
	"github.com/seenimoa/riskcore/pkg/utils"
	"github.com/seenimoa/riskcore/web"
)

// Server is the HTTP API server.
type Server struct {
	router  chi.Router
	cfg     *config.Config
	svc     *advisor.Service
	wsHub   *WSHub
	serveUI bool // when true, serve the embedded dashboard at /
}

// NewServer creates a configured API server with all routes and middleware.
func NewServer(cfg *config.Config) *Server {
	return NewServerWithService(cfg, advisor.NewService(cfg))
}

// NewServerWithService creates a server around a pre-wired advisor
// service. Used when the caller wants to supply its own data sources.
func NewServerWithService(cfg *config.Config, svc *advisor.Service) *Server {
	srv := &Server{
		cfg:     cfg,
		svc:     svc,
		wsHub:   NewWSHub(),
		serveUI: true, // serve embedded dashboard by default
	}

	srv.router = srv.buildRouter()
	return srv
}

// SetServeUI controls whether the embedded dashboard is served.
// Must be called before ListenAndServe.
func (s *Server) SetServeUI(enabled bool) {
	s.serveUI = enabled
	s.router = s.buildRouter()
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
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start WebSocket hub
	go s.wsHub.Run()

	// Graceful shutdown
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

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	origins := []string{"*"}
	if len(s.cfg.API.CORSOrigins) > 0 {
		origins = s.cfg.API.CORSOrigins
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", s.handleHealth)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Health (also available at /health)
		r.Get("/health", s.handleHealth)

		// Assessment
		r.Post("/assess", s.handleAssess)
		r.Post("/assess/batch", s.handleAssessBatch)

		// Portfolio
		r.Post("/portfolio/analyze", s.handleAnalyzePortfolio)

		// Suitability & stress
		r.Post("/suitability", s.handleSuitability)
		r.Post("/stress", s.handleStress)

		// Tier policies
		r.Get("/tiers", s.handleTiers)

		// Instrument catalog
		r.Get("/instruments", s.handleInstruments)
		r.Get("/instruments/{ticker}", s.handleInstrumentByTicker)

		// News
		r.Get("/news", s.handleNews)

		// Reports
		r.Post("/reports/generate", s.handleGenerateReport)

		// Configuration
		r.Get("/config", s.handleGetConfig)
		r.Put("/config", s.handleUpdateConfig)
		r.Get("/config/keys", s.handleGetConfigKeys)

		// WebSocket
		r.Get("/ws", s.handleWebSocket)
	})

	// Serve embedded dashboard (SPA with fallback to index.html)
	if s.serveUI {
		s.mountSPA(r, web.DistFS())
	}

	return r
}

// mountSPA serves the embedded dashboard as a single-page app. Known
// files are served directly; all other paths fall back to index.html.
func (s *Server) mountSPA(r chi.Router, distFS fs.FS) {
	fileServer := http.FileServerFS(distFS)

	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		rPath := strings.TrimPrefix(r.URL.Path, "/")
		if rPath == "" {
			rPath = "index.html"
		}

		// Try to open the requested file from the embedded FS
		f, err := distFS.Open(rPath)
		if err != nil {
			// File not found — serve index.html for client-side routing
			serveIndexHTML(w, r, distFS)
			return
		}
		f.Close()

		if rPath == "index.html" || strings.HasSuffix(rPath, ".html") {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		}

		fileServer.ServeHTTP(w, r)
	})
}

// serveIndexHTML reads and serves the embedded index.html for SPA fallback.
func serveIndexHTML(w http.ResponseWriter, r *http.Request, distFS fs.FS) {
	data, err := fs.ReadFile(distFS, "index.html")
	if err != nil {
		http.Error(w, "dashboard not available", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(http.StatusOK)
	w.Write(data) //nolint:errcheck
}

// ============================================================
// Request / Response types
// ============================================================

// APIResponse is the standard JSON envelope.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// DocumentationPayload states which compliance documents accompany a
// request.
type DocumentationPayload struct {
	HasRationale      bool `json:"has_rationale,omitempty"`
	HasAcknowledgment bool `json:"has_acknowledgment,omitempty"`
}

func (d *DocumentationPayload) toInput() suitability.DocumentationInput {
	if d == nil {
		return suitability.DocumentationInput{}
	}
	return suitability.DocumentationInput{
		HasRationale:      d.HasRationale,
		HasAcknowledgment: d.HasAcknowledgment,
	}
}

// AssessRequest is the body for POST /api/v1/assess and /api/v1/suitability.
type AssessRequest struct {
	Ticker        string                `json:"ticker"`
	Profile       *models.ClientProfile `json:"client_profile,omitempty"`
	Documentation *DocumentationPayload `json:"documentation,omitempty"`
}

// BatchAssessRequest is the body for POST /api/v1/assess/batch.
type BatchAssessRequest struct {
	Tickers []string              `json:"tickers"`
	Profile *models.ClientProfile `json:"client_profile,omitempty"`
}

// PortfolioRequest is the body for POST /api/v1/portfolio/analyze.
type PortfolioRequest struct {
	Holdings []models.Holding      `json:"holdings"`
	Profile  *models.ClientProfile `json:"client_profile,omitempty"`
}

// StressRequest is the body for POST /api/v1/stress.
type StressRequest struct {
	Ticker string `json:"ticker"`
}

// SuitabilityResponse is the trimmed verdict surface returned by
// POST /api/v1/suitability.
type SuitabilityResponse struct {
	Ticker      string                    `json:"ticker"`
	RiskScore   int                       `json:"risk_score"`
	Suitability models.SuitabilityVerdict `json:"suitability"`
	Compliance  models.ComplianceReview   `json:"compliance"`
}

// ReportRequest is the body for POST /api/v1/reports/generate.
type ReportRequest struct {
	Type     string                `json:"type"`   // "instrument" or "portfolio"
	Format   string                `json:"format"` // "text" or "html" (default html)
	Title    string                `json:"title,omitempty"`
	Ticker   string                `json:"ticker,omitempty"`
	Holdings []models.Holding      `json:"holdings,omitempty"`
	Profile  *models.ClientProfile `json:"client_profile,omitempty"`
}

// ReportResponse carries a rendered report.
type ReportResponse struct {
	Type    string `json:"type"`
	Format  string `json:"format"`
	Content string `json:"content"`
}

// ============================================================
// Handlers
// ============================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"status":        "ok",
			"version":       "dev",
			"market_status": utils.MarketStatus(),
			"time_et":       utils.FormatDateTimeEastern(utils.NowEastern()),
		},
	})
}

func (s *Server) handleAssess(w http.ResponseWriter, r *http.Request) {
	var req AssessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Ticker == "" {
		writeError(w, http.StatusBadRequest, "ticker is required")
		return
	}

	ticker := utils.NormalizeTicker(req.Ticker)
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	review, err := s.svc.AssessInstrumentWithDocs(ctx, ticker, profileOrDefault(req.Profile), req.Documentation.toInput())
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	// Broadcast to WebSocket clients
	s.wsHub.Broadcast(WSMessage{
		Type: "assessment_complete",
		Data: map[string]interface{}{
			"ticker":     review.Instrument.Ticker,
			"risk_score": review.Assessment.RiskScore,
			"suitable":   review.Suitability.Suitable,
		},
	})

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    review,
	})
}

func (s *Server) handleAssessBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchAssessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Tickers) == 0 {
		writeError(w, http.StatusBadRequest, "tickers are required")
		return
	}

	tickers := make([]string, len(req.Tickers))
	for i, t := range req.Tickers {
		tickers[i] = utils.NormalizeTicker(t)
	}

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	result := s.svc.AssessBatch(ctx, tickers, profileOrDefault(req.Profile))

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    result,
	})
}

func (s *Server) handleAnalyzePortfolio(w http.ResponseWriter, r *http.Request) {
	var req PortfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Holdings) == 0 {
		writeError(w, http.StatusBadRequest, "Portfolio holdings required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	review, err := s.svc.AnalyzePortfolio(ctx, req.Holdings, profileOrDefault(req.Profile))
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	s.wsHub.Broadcast(WSMessage{
		Type: "portfolio_analyzed",
		Data: map[string]interface{}{
			"total_value":  review.Analysis.TotalValue,
			"health_score": review.Analysis.HealthScore,
			"suitable":     review.Suitability.Suitable,
		},
	})

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    review,
	})
}

func (s *Server) handleSuitability(w http.ResponseWriter, r *http.Request) {
	var req AssessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Ticker == "" {
		writeError(w, http.StatusBadRequest, "ticker is required")
		return
	}

	ticker := utils.NormalizeTicker(req.Ticker)
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	review, err := s.svc.AssessInstrumentWithDocs(ctx, ticker, profileOrDefault(req.Profile), req.Documentation.toInput())
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: SuitabilityResponse{
			Ticker:      review.Instrument.Ticker,
			RiskScore:   review.Assessment.RiskScore,
			Suitability: review.Suitability,
			Compliance:  review.Compliance,
		},
	})
}

func (s *Server) handleStress(w http.ResponseWriter, r *http.Request) {
	var req StressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Ticker == "" {
		writeError(w, http.StatusBadRequest, "ticker is required")
		return
	}

	ticker := utils.NormalizeTicker(req.Ticker)
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := s.svc.StressTest(ctx, ticker)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    result,
	})
}

func (s *Server) handleTiers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    suitability.Policies(),
	})
}

func (s *Server) handleInstruments(w http.ResponseWriter, r *http.Request) {
	catalog := s.svc.Catalog()

	var instruments []models.Instrument
	if q := r.URL.Query().Get("q"); q != "" {
		instruments = catalog.Search(q)
	} else {
		instruments = catalog.List()
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    instruments,
	})
}

func (s *Server) handleInstrumentByTicker(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")
	if ticker == "" {
		writeError(w, http.StatusBadRequest, "ticker is required")
		return
	}

	inst, err := s.svc.Catalog().Get(utils.NormalizeTicker(ticker))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    inst,
	})
}

func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	ticker := r.URL.Query().Get("ticker")
	if ticker != "" {
		ticker = utils.NormalizeTicker(ticker)
	}

	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	articles, err := s.svc.News(ctx, ticker, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    articles,
	})
}

func (s *Server) handleGenerateReport(w http.ResponseWriter, r *http.Request) {
	var req ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cfg := report.DefaultReportConfig()
	cfg.Title = req.Title
	format := report.FormatHTML
	if strings.EqualFold(req.Format, string(report.FormatText)) {
		format = report.FormatText
	}
	cfg.Format = format

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	var (
		content string
		err     error
	)
	switch req.Type {
	case "instrument":
		if req.Ticker == "" {
			writeError(w, http.StatusBadRequest, "ticker is required for instrument reports")
			return
		}
		var review *models.InstrumentReview
		review, err = s.svc.AssessInstrument(ctx, utils.NormalizeTicker(req.Ticker), profileOrDefault(req.Profile))
		if err == nil {
			if format == report.FormatText {
				content, err = report.GenerateInstrumentText(review, cfg)
			} else {
				content, err = report.GenerateInstrumentHTML(review, cfg)
			}
		}
	case "portfolio":
		if len(req.Holdings) == 0 {
			writeError(w, http.StatusBadRequest, "Portfolio holdings required")
			return
		}
		var review *models.PortfolioReview
		review, err = s.svc.AnalyzePortfolio(ctx, req.Holdings, profileOrDefault(req.Profile))
		if err == nil {
			if format == report.FormatText {
				content, err = report.GeneratePortfolioText(review, cfg)
			} else {
				content, err = report.GeneratePortfolioHTML(review, cfg)
			}
		}
	default:
		writeError(w, http.StatusBadRequest, "type must be \"instrument\" or \"portfolio\"")
		return
	}
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: ReportResponse{
			Type:    req.Type,
			Format:  string(format),
			Content: content,
		},
	})
}

// ============================================================
// Helpers
// ============================================================

// profileOrDefault substitutes the default client profile when a request
// omits one.
func profileOrDefault(p *models.ClientProfile) models.ClientProfile {
	if p == nil {
		return models.DefaultClientProfile()
	}
	return *p
}

// statusForError maps engine errors to HTTP status codes: validation and
// policy errors are the caller's fault, unknown tickers are 404, anything
// else is a server error.
func statusForError(err error) int {
	var validation *models.ValidationError
	var policy *models.PolicyResolutionError
	switch {
	case errors.As(err, &validation), errors.As(err, &policy):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, APIResponse{
		Success: false,
		Error:   msg,
	})
}
