package datasource

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/seenimoa/riskcore/internal/config"
	"github.com/seenimoa/riskcore/pkg/models"
	"github.com/seenimoa/riskcore/pkg/utils"
)

// Aggregator fetches and merges live instrument data from multiple sources
// concurrently. Individual source failures degrade the snapshot instead of
// failing the fetch; only a total miss is an error.
type Aggregator struct {
	quotes  *QuoteAPI
	scraper *StockAnalysis
	news    *News
	cache   *Cache
}

// NewAggregator creates a data source aggregator wired from configuration.
// A nil config selects the built-in defaults.
func NewAggregator(cfg *config.Config) *Aggregator {
	var (
		apiKey    string
		scrapeURL string
		feeds     []string
	)
	cacheTTL := 5 * time.Minute

	if cfg != nil {
		apiKey = cfg.Data.QuoteAPIKey
		scrapeURL = cfg.Data.ScrapeBaseURL
		feeds = cfg.Data.NewsFeeds
		if cfg.Engine.CacheTTL > 0 {
			cacheTTL = time.Duration(cfg.Engine.CacheTTL) * time.Second
		}
	}

	return &Aggregator{
		quotes:  NewQuoteAPI(apiKey),
		scraper: NewStockAnalysis(scrapeURL),
		news:    NewNewsWithFeeds(feeds),
		cache:   NewCache(cacheTTL),
	}
}

// Sources returns all registered data sources.
func (a *Aggregator) Sources() []DataSource {
	return []DataSource{a.quotes, a.scraper, a.news}
}

// Quotes returns the quote API source for direct access.
func (a *Aggregator) Quotes() *QuoteAPI { return a.quotes }

// Scraper returns the statistics scraper for direct access.
func (a *Aggregator) Scraper() *StockAnalysis { return a.scraper }

// NewsSource returns the news source for direct access.
func (a *Aggregator) NewsSource() *News { return a.news }

// FetchInstrument fetches a live instrument snapshot by querying the quote
// API and the statistics scraper concurrently. Failed sources are skipped;
// an error is returned only when every source fails.
func (a *Aggregator) FetchInstrument(ctx context.Context, ticker string) (*models.Instrument, error) {
	symbol := utils.NormalizeTicker(ticker)

	cacheKey := "agg:inst:" + symbol
	if cached, ok := a.cache.Get(cacheKey); ok {
		return cached.(*models.Instrument), nil
	}

	var mu sync.Mutex
	var errs []error
	var quoted, scraped *models.Instrument

	g, gctx := errgroup.WithContext(ctx)

	// 1. Quote API: price and volume, plus whatever fundamentals ride along.
	g.Go(func() error {
		inst, err := a.quotes.GetFundamentals(gctx, symbol)
		if err != nil {
			mu.Lock()
			errs = append(errs, fmt.Errorf("quote: %w", err))
			mu.Unlock()
			return nil // non-fatal
		}
		mu.Lock()
		quoted = inst
		mu.Unlock()
		return nil
	})

	// 2. Statistics scraper: the richer fundamentals source.
	g.Go(func() error {
		inst, err := a.scraper.GetFundamentals(gctx, symbol)
		if err != nil {
			mu.Lock()
			errs = append(errs, fmt.Errorf("statistics: %w", err))
			mu.Unlock()
			return nil
		}
		mu.Lock()
		scraped = inst
		mu.Unlock()
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if quoted == nil && scraped == nil {
		return nil, fmt.Errorf("all sources failed for %s: %w", symbol, errors.Join(errs...))
	}

	snapshot := mergeSnapshots(symbol, quoted, scraped)
	a.cache.Set(cacheKey, snapshot)
	return snapshot, nil
}

// FetchNews returns recent news, market-wide for an empty ticker.
func (a *Aggregator) FetchNews(ctx context.Context, ticker string, limit int) ([]models.NewsArticle, error) {
	return a.news.GetNews(ctx, ticker, limit)
}

// mergeSnapshots overlays partial snapshots in order, later sources
// winning per field. Zero values never overwrite supplied ones, so the
// scraper's fundamentals and the quote's price coexist.
func mergeSnapshots(symbol string, partials ...*models.Instrument) *models.Instrument {
	out := &models.Instrument{Ticker: symbol}
	for _, src := range partials {
		if src == nil {
			continue
		}
		if src.Name != "" {
			out.Name = src.Name
		}
		if src.MarketCap != 0 {
			out.MarketCap = src.MarketCap
		}
		if src.PE != 0 {
			out.PE = src.PE
		}
		if src.PB != 0 {
			out.PB = src.PB
		}
		if src.Beta != 0 {
			out.Beta = src.Beta
		}
		if src.DebtToEquity != 0 {
			out.DebtToEquity = src.DebtToEquity
		}
		if src.ROE != 0 {
			out.ROE = src.ROE
		}
		if src.ProfitMargin != 0 {
			out.ProfitMargin = src.ProfitMargin
		}
		if src.DividendYield != 0 {
			out.DividendYield = src.DividendYield
		}
		if src.LastPrice != 0 {
			out.LastPrice = src.LastPrice
		}
		if src.LastVolume != 0 {
			out.LastVolume = src.LastVolume
		}
	}
	return out
}
