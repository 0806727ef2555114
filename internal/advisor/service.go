// Package advisor composes the instrument catalog, the live data sources,
// and the risk, portfolio, and suitability engines into the review
// operations the API and CLI expose. Reviews are assembled per call and
// timestamped here; the engine components themselves stay pure.
package advisor

import (
	"context"
	"log"
	"time"

	"github.com/seenimoa/riskcore/internal/config"
	"github.com/seenimoa/riskcore/internal/correlation"
	"github.com/seenimoa/riskcore/internal/datasource"
	"github.com/seenimoa/riskcore/internal/portfolio"
	"github.com/seenimoa/riskcore/internal/risk"
	"github.com/seenimoa/riskcore/internal/store"
	"github.com/seenimoa/riskcore/internal/suitability"
	"github.com/seenimoa/riskcore/pkg/models"
)

// Fetcher supplies live instrument data and news. *datasource.Aggregator
// implements it; the service treats every fetch as best-effort.
type Fetcher interface {
	FetchInstrument(ctx context.Context, ticker string) (*models.Instrument, error)
	FetchNews(ctx context.Context, ticker string, limit int) ([]models.NewsArticle, error)
}

// Service composes the catalog, live data sources, and analysis engines.
// Safe for concurrent use.
type Service struct {
	catalog     *store.Catalog
	fetcher     Fetcher
	calc        *risk.Calculator
	corr        *correlation.Engine
	analyzer    *portfolio.Analyzer
	concurrency int
}

// NewService wires a service from configuration. A nil config selects the
// defaults, including the seeded instrument universe.
func NewService(cfg *config.Config) *Service {
	return NewServiceWithFetcher(cfg, datasource.NewAggregator(cfg))
}

// NewServiceWithFetcher wires a service with a caller-supplied live-data
// fetcher. A nil fetcher disables live refresh; assessments run entirely
// from the catalog.
func NewServiceWithFetcher(cfg *config.Config, fetcher Fetcher) *Service {
	concurrency := 5
	if cfg != nil && cfg.Engine.ConcurrentFetches > 0 {
		concurrency = cfg.Engine.ConcurrentFetches
	}

	corr := correlation.NewEngine()
	return &Service{
		catalog:     store.NewSeededCatalog(),
		fetcher:     fetcher,
		calc:        risk.NewCalculator(),
		corr:        corr,
		analyzer:    portfolio.NewAnalyzer(corr),
		concurrency: concurrency,
	}
}

// Catalog returns the instrument catalog for direct access.
func (s *Service) Catalog() *store.Catalog { return s.catalog }

// AssessInstrument runs the full review for one ticker with no
// documentation on file.
func (s *Service) AssessInstrument(ctx context.Context, ticker string, profile models.ClientProfile) (*models.InstrumentReview, error) {
	return s.AssessInstrumentWithDocs(ctx, ticker, profile, suitability.DocumentationInput{})
}

// AssessInstrumentWithDocs runs the full review for one ticker with the
// supplied documentation state: live-refreshed instrument, risk
// assessment, suitability verdict, and compliance review.
func (s *Service) AssessInstrumentWithDocs(ctx context.Context, ticker string, profile models.ClientProfile, docs suitability.DocumentationInput) (*models.InstrumentReview, error) {
	inst, err := s.instrument(ctx, ticker)
	if err != nil {
		return nil, err
	}

	assessment := s.assess(inst)
	verdict := suitability.EvaluateInvestment(assessment, inst, profile)
	compliance := suitability.Review(verdict, nil, assessment.RiskScore, inst.Sector, docs)

	return &models.InstrumentReview{
		Instrument:  inst,
		Assessment:  assessment,
		Suitability: verdict,
		Compliance:  compliance,
		Mitigation:  risk.MitigationSuggestions(assessment.RiskScore, assessment.RiskFactors),
		Monitoring:  risk.MonitoringRecommendations(),
		Timestamp:   time.Now().UTC(),
	}, nil
}

// AnalyzePortfolio analyzes a holding set and renders the portfolio
// suitability verdict and compliance review for the client. Validation
// errors from the analyzer are fatal for the call.
func (s *Service) AnalyzePortfolio(ctx context.Context, holdings []models.Holding, profile models.ClientProfile) (*models.PortfolioReview, error) {
	analysis, err := s.analyzer.Analyze(holdings)
	if err != nil {
		return nil, err
	}

	verdict := suitability.EvaluatePortfolio(analysis, profile)
	// Per-instrument disclosure triggers do not apply at portfolio scale,
	// so the compliance review carries no risk score or sector.
	compliance := suitability.Review(verdict, concentrationChecks(verdict), 0, "", suitability.DocumentationInput{})

	return &models.PortfolioReview{
		Analysis:    analysis,
		Suitability: verdict,
		Compliance:  compliance,
		ActionItems: analysis.ActionItems,
		Timestamp:   time.Now().UTC(),
	}, nil
}

// StressTest runs the VaR and scenario analysis for one ticker.
func (s *Service) StressTest(ctx context.Context, ticker string) (*models.StressReview, error) {
	inst, err := s.instrument(ctx, ticker)
	if err != nil {
		return nil, err
	}

	metrics := s.calc.Metrics(inst)
	return &models.StressReview{
		Ticker:      inst.Ticker,
		VaR:         risk.VaRAnalysis(inst, metrics.VolatilityIndicator),
		StressTests: risk.StressTest(inst),
		Timestamp:   time.Now().UTC(),
	}, nil
}

// News returns recent market news, or instrument news for a non-empty
// ticker.
func (s *Service) News(ctx context.Context, ticker string, limit int) ([]models.NewsArticle, error) {
	if s.fetcher == nil {
		return nil, nil
	}
	return s.fetcher.FetchNews(ctx, ticker, limit)
}

// assess computes the full risk assessment for an instrument.
func (s *Service) assess(inst *models.Instrument) *models.RiskAssessment {
	metrics := s.calc.Metrics(inst)
	factors := risk.QualitativeFactors(inst)
	score := s.calc.Score(metrics, factors)

	return &models.RiskAssessment{
		Ticker:      inst.Ticker,
		RiskScore:   score,
		RiskLevel:   risk.Level(score),
		Metrics:     metrics,
		RiskFactors: factors,
		VaR:         risk.VaRAnalysis(inst, metrics.VolatilityIndicator),
		StressTests: risk.StressTest(inst),
		Correlation: s.corr.InstrumentSummary(inst),
	}
}

// instrument returns the assessment input for a ticker: the catalog record
// refreshed with whatever the live sources can supply. A live-fetch failure
// degrades to the stored record; only an unknown ticker with no live data
// is an error.
func (s *Service) instrument(ctx context.Context, ticker string) (*models.Instrument, error) {
	stored, storeErr := s.catalog.Get(ticker)

	if s.fetcher != nil {
		live, err := s.fetcher.FetchInstrument(ctx, ticker)
		if err == nil {
			if merged, mergeErr := s.catalog.Merge(*live); mergeErr == nil {
				return &merged, nil
			}
		} else {
			log.Printf("advisor: live refresh failed for %s: %v", ticker, err)
		}
	}

	if storeErr != nil {
		return nil, storeErr
	}
	return &stored, nil
}

// concentrationChecks pulls the exposure comparisons out of a portfolio
// verdict for the compliance review.
func concentrationChecks(verdict models.SuitabilityVerdict) []models.SuitabilityCheck {
	var checks []models.SuitabilityCheck
	for _, c := range verdict.Checks {
		switch c.Name {
		case "single_security", "sector_concentration", "asset_class_concentration":
			checks = append(checks, c)
		}
	}
	return checks
}
