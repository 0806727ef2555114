package advisor

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/seenimoa/riskcore/internal/correlation"
	"github.com/seenimoa/riskcore/internal/portfolio"
	"github.com/seenimoa/riskcore/internal/risk"
	"github.com/seenimoa/riskcore/internal/store"
	"github.com/seenimoa/riskcore/internal/suitability"
	"github.com/seenimoa/riskcore/pkg/models"
)

// fakeFetcher is a canned Fetcher for tests. Safe for concurrent use.
type fakeFetcher struct {
	mu    sync.Mutex
	inst  *models.Instrument
	err   error
	news  []models.NewsArticle
	calls int
}

func (f *fakeFetcher) FetchInstrument(_ context.Context, _ string) (*models.Instrument, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	inst := *f.inst
	return &inst, nil
}

func (f *fakeFetcher) FetchNews(_ context.Context, _ string, _ int) ([]models.NewsArticle, error) {
	return f.news, f.err
}

var errSourcesDown = errors.New("sources down")

func testService(fetcher Fetcher) *Service {
	corr := correlation.NewEngine()
	return &Service{
		catalog:     store.NewSeededCatalog(),
		fetcher:     fetcher,
		calc:        risk.NewCalculator(),
		corr:        corr,
		analyzer:    portfolio.NewAnalyzer(corr),
		concurrency: 2,
	}
}

func TestAssessInstrumentFromCatalog(t *testing.T) {
	svc := testService(&fakeFetcher{err: errSourcesDown})

	review, err := svc.AssessInstrument(context.Background(), "AAPL", models.DefaultClientProfile())
	if err != nil {
		t.Fatalf("AssessInstrument failed: %v", err)
	}

	if review.Instrument.Ticker != "AAPL" {
		t.Errorf("Ticker = %q", review.Instrument.Ticker)
	}
	// Beta 1.2 adds nothing, D/E 1.73 adds one: 5 + 1 = 6.
	if review.Assessment.RiskScore != 6 {
		t.Errorf("RiskScore = %d, want 6", review.Assessment.RiskScore)
	}
	if review.Assessment.RiskLevel != models.RiskModerate {
		t.Errorf("RiskLevel = %q", review.Assessment.RiskLevel)
	}
	if review.Assessment.Metrics.VolatilityIndicator != 1.56 {
		t.Errorf("VolatilityIndicator = %g, want 1.2 x 1.3", review.Assessment.Metrics.VolatilityIndicator)
	}

	// Seeds carry no trade price, so the metrics flag the default.
	m := review.Assessment.Metrics
	if !m.Degraded || len(m.DegradedFields) != 1 || m.DegradedFields[0] != "last_price" {
		t.Errorf("degraded flags = %v/%v", m.Degraded, m.DegradedFields)
	}

	if !review.Suitability.Suitable {
		t.Errorf("AAPL should suit the default moderate profile: %+v", review.Suitability)
	}
	if !review.Compliance.OverallSuitable {
		t.Error("OverallSuitable should follow the verdict")
	}
	// No rationale or acknowledgment on file yet.
	if !review.Compliance.RequiresManualReview {
		t.Error("missing documentation should require manual review")
	}

	if len(review.Mitigation) != 5 || review.Mitigation[0] != "Maintain moderate position sizing" {
		t.Errorf("Mitigation = %v", review.Mitigation)
	}
	if len(review.Monitoring) != 5 {
		t.Errorf("Monitoring = %v", review.Monitoring)
	}
	if review.Timestamp.IsZero() {
		t.Error("Timestamp not attached")
	}
}

func TestAssessInstrumentLiveRefresh(t *testing.T) {
	fetcher := &fakeFetcher{inst: &models.Instrument{
		Ticker:     "AAPL",
		LastPrice:  189.5,
		LastVolume: 52_000_000,
	}}
	svc := testService(fetcher)

	review, err := svc.AssessInstrument(context.Background(), "AAPL", models.DefaultClientProfile())
	if err != nil {
		t.Fatalf("AssessInstrument failed: %v", err)
	}

	// The live price merges in without clobbering seeded fundamentals.
	if review.Instrument.LastPrice != 189.5 || review.Instrument.PE != 28.5 {
		t.Errorf("merged price/PE = %g/%g", review.Instrument.LastPrice, review.Instrument.PE)
	}
	if review.Assessment.Metrics.Degraded {
		t.Errorf("nothing should degrade with a live price: %v", review.Assessment.Metrics.DegradedFields)
	}
	// VaR now scales from the real price: 189.5 x 0.016 x 1.56 x 1.65.
	if review.Assessment.VaR.VaR951Day != 7.8 {
		t.Errorf("VaR951Day = %g, want 7.8", review.Assessment.VaR.VaR951Day)
	}

	// The refresh persists in the catalog.
	stored, err := svc.Catalog().Get("AAPL")
	if err != nil {
		t.Fatalf("catalog get: %v", err)
	}
	if stored.LastPrice != 189.5 {
		t.Errorf("catalog price = %g, want refreshed 189.5", stored.LastPrice)
	}
}

func TestAssessInstrumentLiveInsertsNew(t *testing.T) {
	fetcher := &fakeFetcher{inst: &models.Instrument{
		Ticker:    "NVDA",
		Name:      "NVIDIA Corporation",
		MarketCap: 3_000_000_000_000,
		Beta:      1.7,
		PE:        55.0,
	}}
	svc := testService(fetcher)

	review, err := svc.AssessInstrument(context.Background(), "NVDA", models.DefaultClientProfile())
	if err != nil {
		t.Fatalf("AssessInstrument failed: %v", err)
	}

	// Beta above 1.5 adds two: 5 + 2 = 7.
	if review.Assessment.RiskScore != 7 {
		t.Errorf("RiskScore = %d, want 7", review.Assessment.RiskScore)
	}
	if _, err := svc.Catalog().Get("NVDA"); err != nil {
		t.Errorf("live instrument should land in the catalog: %v", err)
	}
}

func TestAssessInstrumentUnknownTicker(t *testing.T) {
	svc := testService(&fakeFetcher{err: errSourcesDown})

	_, err := svc.AssessInstrument(context.Background(), "ZZZZ", models.DefaultClientProfile())
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestAssessInstrumentWithDocs(t *testing.T) {
	svc := testService(&fakeFetcher{err: errSourcesDown})

	review, err := svc.AssessInstrumentWithDocs(context.Background(), "AAPL",
		models.DefaultClientProfile(),
		suitability.DocumentationInput{HasRationale: true, HasAcknowledgment: true})
	if err != nil {
		t.Fatalf("AssessInstrumentWithDocs failed: %v", err)
	}

	if len(review.Compliance.MissingDocuments) != 0 {
		t.Errorf("MissingDocuments = %v", review.Compliance.MissingDocuments)
	}
	if review.Compliance.RequiresManualReview {
		t.Error("complete documentation and a clean verdict should not need review")
	}
	if len(review.Compliance.Recommendations) == 0 ||
		review.Compliance.Recommendations[0] != "All compliance checks passed" {
		t.Errorf("Recommendations = %v", review.Compliance.Recommendations)
	}
}

func TestAnalyzePortfolio(t *testing.T) {
	svc := testService(&fakeFetcher{err: errSourcesDown})

	aapl, _ := svc.catalog.Get("AAPL")
	jpm, _ := svc.catalog.Get("JPM")
	jnj, _ := svc.catalog.Get("JNJ")
	holdings := []models.Holding{
		{Instrument: aapl, Value: 50_000},
		{Instrument: jpm, Value: 30_000},
		{Instrument: jnj, Value: 20_000},
	}

	review, err := svc.AnalyzePortfolio(context.Background(), holdings, models.DefaultClientProfile())
	if err != nil {
		t.Fatalf("AnalyzePortfolio failed: %v", err)
	}

	a := review.Analysis
	if a.TotalValue != 100_000 || a.NumberOfPositions != 3 {
		t.Errorf("total/positions = %g/%d", a.TotalValue, a.NumberOfPositions)
	}
	if a.PortfolioBeta != 1.04 {
		t.Errorf("PortfolioBeta = %g, want 1.04", a.PortfolioBeta)
	}
	if a.ConcentrationRatio != 0.5 || a.RiskConcentration != models.FactorHigh {
		t.Errorf("concentration = %g/%q", a.ConcentrationRatio, a.RiskConcentration)
	}

	// Half the portfolio in one position breaks the moderate limits.
	if review.Suitability.Suitable {
		t.Error("50% single position should not suit a moderate profile")
	}
	if review.Suitability.Reasoning != "Single security exposure 50.0% vs limit 35.0%" {
		t.Errorf("Reasoning = %q", review.Suitability.Reasoning)
	}

	if len(review.Compliance.ConcentrationChecks) != 2 {
		t.Errorf("ConcentrationChecks = %+v", review.Compliance.ConcentrationChecks)
	}
	if review.Compliance.OverallSuitable {
		t.Error("failed concentration checks should gate overall suitability")
	}
	if len(review.Compliance.Recommendations) == 0 ||
		review.Compliance.Recommendations[0] != "COMPLIANCE REVIEW REQUIRED before proceeding" {
		t.Errorf("Recommendations = %v", review.Compliance.Recommendations)
	}

	if len(review.ActionItems) != len(a.ActionItems) {
		t.Errorf("ActionItems should mirror the analysis: %v", review.ActionItems)
	}
	if review.Timestamp.IsZero() {
		t.Error("Timestamp not attached")
	}
}

func TestAnalyzePortfolioEmptyHoldings(t *testing.T) {
	svc := testService(&fakeFetcher{err: errSourcesDown})

	_, err := svc.AnalyzePortfolio(context.Background(), nil, models.DefaultClientProfile())
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if verr.Field != "holdings" {
		t.Errorf("Field = %q", verr.Field)
	}
}

func TestStressTestDefaultPrice(t *testing.T) {
	svc := testService(&fakeFetcher{err: errSourcesDown})

	review, err := svc.StressTest(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("StressTest failed: %v", err)
	}

	if review.Ticker != "AAPL" {
		t.Errorf("Ticker = %q", review.Ticker)
	}
	// 100 x 0.016 x 1.56 x 1.65 = 4.12 on the default price.
	if review.VaR.VaR951Day != 4.12 {
		t.Errorf("VaR951Day = %g, want 4.12", review.VaR.VaR951Day)
	}
	if len(review.StressTests.Scenarios) != 4 {
		t.Fatalf("scenarios = %d, want 4", len(review.StressTests.Scenarios))
	}
	if review.StressTests.Scenarios[0].Name != "market_crash_20" {
		t.Errorf("first scenario = %q", review.StressTests.Scenarios[0].Name)
	}
}

func TestNewsPassthrough(t *testing.T) {
	fetcher := &fakeFetcher{news: []models.NewsArticle{{Title: "Fed holds rates"}}}
	svc := testService(fetcher)

	articles, err := svc.News(context.Background(), "", 5)
	if err != nil {
		t.Fatalf("News failed: %v", err)
	}
	if len(articles) != 1 || articles[0].Title != "Fed holds rates" {
		t.Errorf("articles = %+v", articles)
	}

	bare := testService(nil)
	if articles, err := bare.News(context.Background(), "", 5); err != nil || articles != nil {
		t.Errorf("nil fetcher should return nothing, got %v/%v", articles, err)
	}
}
