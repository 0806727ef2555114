package datasource

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/seenimoa/riskcore/pkg/models"
	"github.com/seenimoa/riskcore/pkg/utils"
)

const defaultScrapeBaseURL = "https://stockanalysis.com/stocks"

// StockAnalysis implements the DataSource interface by scraping the
// statistics page of stockanalysis.com. It is the fundamentals refresh
// path; quote data comes from the quote API instead.
type StockAnalysis struct {
	baseURL string
	cache   *Cache
	limiter *RateLimiter
}

// NewStockAnalysis creates a new statistics scraper. An empty baseURL
// selects the public site.
func NewStockAnalysis(baseURL string) *StockAnalysis {
	if baseURL == "" {
		baseURL = defaultScrapeBaseURL
	}
	return &StockAnalysis{
		baseURL: strings.TrimRight(baseURL, "/"),
		cache:   NewCache(30 * time.Minute),
		limiter: NewRateLimiter(1, time.Second), // conservative: 1 req/s
	}
}

// Name returns the data source name.
func (s *StockAnalysis) Name() string { return "StockAnalysis" }

// --- Public methods ---

// GetFundamentals returns fundamentals scraped from the statistics page.
// Values the page does not carry stay unset.
func (s *StockAnalysis) GetFundamentals(ctx context.Context, ticker string) (*models.Instrument, error) {
	symbol := utils.NormalizeTicker(ticker)

	cacheKey := "sa:stats:" + symbol
	if cached, ok := s.cache.Get(cacheKey); ok {
		return cached.(*models.Instrument), nil
	}

	doc, err := s.fetchStatistics(ctx, symbol)
	if err != nil {
		return nil, err
	}

	inst := parseStatisticsDoc(doc)
	inst.Ticker = symbol

	s.cache.SetWithTTL(cacheKey, inst, 1*time.Hour)
	return inst, nil
}

// GetQuote is not supported by the statistics scraper.
func (s *StockAnalysis) GetQuote(_ context.Context, _ string) (*models.Quote, error) {
	return nil, ErrNotSupported
}

// GetNews is not supported by the statistics scraper.
func (s *StockAnalysis) GetNews(_ context.Context, _ string, _ int) ([]models.NewsArticle, error) {
	return nil, ErrNotSupported
}

// --- Internal helpers ---

// fetchStatistics downloads and parses the statistics page for a symbol.
func (s *StockAnalysis) fetchStatistics(ctx context.Context, symbol string) (*goquery.Document, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s/statistics/", s.baseURL, strings.ToLower(symbol))
	body, _, err := doGet(ctx, url, map[string]string{
		"Accept": "text/html",
	})
	if err != nil {
		return nil, fmt.Errorf("stockanalysis %s: %w", symbol, err)
	}
	defer body.Close()

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("parse statistics HTML: %w", err)
	}
	return doc, nil
}

// parseStatisticsDoc maps the label/value rows of the statistics tables
// onto instrument fields.
func parseStatisticsDoc(doc *goquery.Document) *models.Instrument {
	inst := &models.Instrument{}

	doc.Find("table tbody tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}
		name := strings.TrimSpace(cells.First().Text())
		val := parseStatNumber(strings.TrimSpace(cells.Last().Text()))

		switch {
		case strings.Contains(name, "Forward"), strings.Contains(name, "Growth"):
			// forward multiples and growth rates are not used
		case strings.Contains(name, "Market Cap"):
			inst.MarketCap = val
		case strings.Contains(name, "PE Ratio"):
			inst.PE = val
		case strings.Contains(name, "PB Ratio"), strings.Contains(name, "Price / Book"):
			inst.PB = val
		case strings.Contains(name, "Beta"):
			inst.Beta = val
		case strings.Contains(name, "Debt / Equity"), strings.Contains(name, "Debt to Equity"):
			inst.DebtToEquity = val
		case strings.Contains(name, "Return on Equity"):
			inst.ROE = val
		case strings.Contains(name, "Profit Margin"):
			inst.ProfitMargin = val / 100 // page shows percent, model stores a fraction
		case strings.Contains(name, "Dividend Yield"):
			inst.DividendYield = val
		}
	})

	// Page heading carries the company name, e.g. "Apple Inc. (AAPL) Statistics".
	if h1 := strings.TrimSpace(doc.Find("h1").First().Text()); h1 != "" {
		if i := strings.Index(h1, " ("); i > 0 {
			inst.Name = h1[:i]
		}
	}

	return inst
}

// parseStatNumber parses a statistics-page number: commas, a leading $,
// a trailing %, and K/M/B/T scale suffixes are handled; placeholders
// parse to 0.
func parseStatNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" || s == "—" || strings.EqualFold(s, "n/a") {
		return 0
	}

	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimSpace(s)

	multiplier := 1.0
	switch {
	case strings.HasSuffix(s, "T"):
		multiplier = 1e12
		s = strings.TrimSuffix(s, "T")
	case strings.HasSuffix(s, "B"):
		multiplier = 1e9
		s = strings.TrimSuffix(s, "B")
	case strings.HasSuffix(s, "M"):
		multiplier = 1e6
		s = strings.TrimSuffix(s, "M")
	case strings.HasSuffix(s, "K"):
		multiplier = 1e3
		s = strings.TrimSuffix(s, "K")
	}

	val, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return val * multiplier
}
