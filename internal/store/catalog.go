// Package store holds the in-memory instrument catalog. The catalog is the
// first stop for instrument lookups; live data sources refresh it through
// Merge, which never overwrites a stored field with an unsupplied zero.
package store

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/seenimoa/riskcore/pkg/models"
	"github.com/seenimoa/riskcore/pkg/utils"
)

// ErrNotFound is returned when a ticker is not in the catalog.
var ErrNotFound = fmt.Errorf("instrument not found in catalog")

// Catalog is an in-memory instrument store keyed by normalized ticker.
// Safe for concurrent use.
type Catalog struct {
	mu          sync.RWMutex
	instruments map[string]models.Instrument
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{instruments: make(map[string]models.Instrument)}
}

// NewSeededCatalog returns a catalog pre-loaded with the built-in US
// large-cap universe.
func NewSeededCatalog() *Catalog {
	c := NewCatalog()
	for _, inst := range seedInstruments {
		c.instruments[inst.Ticker] = inst
	}
	return c
}

// Get returns the instrument for the given ticker. Lookup normalizes
// case, whitespace, and company-name aliases.
func (c *Catalog) Get(ticker string) (models.Instrument, error) {
	normalized := utils.NormalizeTicker(ticker)

	c.mu.RLock()
	defer c.mu.RUnlock()

	inst, ok := c.instruments[normalized]
	if !ok {
		return models.Instrument{}, fmt.Errorf("%w: %s", ErrNotFound, normalized)
	}
	return inst, nil
}

// List returns every instrument ordered by ticker.
func (c *Catalog) List() []models.Instrument {
	c.mu.RLock()
	out := make([]models.Instrument, 0, len(c.instruments))
	for _, inst := range c.instruments {
		out = append(out, inst)
	}
	c.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Ticker < out[j].Ticker })
	return out
}

// Upsert inserts or replaces the instrument keyed by its normalized ticker.
func (c *Catalog) Upsert(inst models.Instrument) error {
	ticker := utils.NormalizeTicker(inst.Ticker)
	if ticker == "" {
		return &models.ValidationError{Field: "ticker", Reason: "ticker is required"}
	}
	inst.Ticker = ticker

	c.mu.Lock()
	defer c.mu.Unlock()

	c.instruments[ticker] = inst
	return nil
}

// Merge folds the update's supplied fields into the stored instrument,
// inserting a new entry when absent, and returns the merged snapshot.
// Zero-valued fields never overwrite stored data, so a price-only quote
// refresh cannot clobber seeded fundamentals.
func (c *Catalog) Merge(update models.Instrument) (models.Instrument, error) {
	ticker := utils.NormalizeTicker(update.Ticker)
	if ticker == "" {
		return models.Instrument{}, &models.ValidationError{Field: "ticker", Reason: "ticker is required"}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	merged, ok := c.instruments[ticker]
	if !ok {
		merged = models.Instrument{Ticker: ticker}
	}

	if update.Name != "" {
		merged.Name = update.Name
	}
	if update.Exchange != "" {
		merged.Exchange = update.Exchange
	}
	if update.Sector != "" {
		merged.Sector = update.Sector
	}
	if update.Industry != "" {
		merged.Industry = update.Industry
	}
	if update.Description != "" {
		merged.Description = update.Description
	}
	if update.MarketCap != 0 {
		merged.MarketCap = update.MarketCap
	}
	if update.PE != 0 {
		merged.PE = update.PE
	}
	if update.PB != 0 {
		merged.PB = update.PB
	}
	if update.Beta != 0 {
		merged.Beta = update.Beta
	}
	if update.DebtToEquity != 0 {
		merged.DebtToEquity = update.DebtToEquity
	}
	if update.ROE != 0 {
		merged.ROE = update.ROE
	}
	if update.ProfitMargin != 0 {
		merged.ProfitMargin = update.ProfitMargin
	}
	if update.DividendYield != 0 {
		merged.DividendYield = update.DividendYield
	}
	if update.LastPrice != 0 {
		merged.LastPrice = update.LastPrice
	}
	if update.LastVolume != 0 {
		merged.LastVolume = update.LastVolume
	}
	if len(update.RiskFactors) > 0 {
		merged.RiskFactors = update.RiskFactors
	}

	c.instruments[ticker] = merged
	return merged, nil
}

// Search returns instruments whose ticker starts with the query or whose
// name, sector, or industry contains it, case-insensitive, ordered by
// ticker. An empty query returns the full catalog.
func (c *Catalog) Search(query string) []models.Instrument {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return c.List()
	}

	c.mu.RLock()
	var out []models.Instrument
	for _, inst := range c.instruments {
		if matchesQuery(inst, query) {
			out = append(out, inst)
		}
	}
	c.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Ticker < out[j].Ticker })
	return out
}

func matchesQuery(inst models.Instrument, query string) bool {
	if strings.HasPrefix(strings.ToLower(inst.Ticker), query) {
		return true
	}
	return strings.Contains(strings.ToLower(inst.Name), query) ||
		strings.Contains(strings.ToLower(inst.Sector), query) ||
		strings.Contains(strings.ToLower(inst.Industry), query)
}
