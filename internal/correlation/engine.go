// Package correlation estimates co-movement between instruments and across a
// portfolio from a fixed sector correlation matrix. Beta stands in for market
// correlation at the single-instrument level; pairwise sector correlations
// drive the portfolio-level average.
package correlation

import (
	"fmt"
	"math"

	"github.com/seenimoa/riskcore/pkg/models"
)

// defaultPairCorrelation applies when either sector is absent from the
// matrix, including the empty "Unknown" sector.
const defaultPairCorrelation = 0.3

// sectorMatrix is symmetric with unit diagonal. Treat as read-only.
var sectorMatrix = map[string]map[string]float64{
	"Technology": {
		"Technology": 1.0, "Healthcare": 0.3, "Financial Services": 0.4,
		"Consumer Discretionary": 0.6, "Consumer Staples": 0.1, "Energy": 0.2,
	},
	"Healthcare": {
		"Technology": 0.3, "Healthcare": 1.0, "Financial Services": 0.2,
		"Consumer Discretionary": 0.3, "Consumer Staples": 0.4, "Energy": 0.1,
	},
	"Financial Services": {
		"Technology": 0.4, "Healthcare": 0.2, "Financial Services": 1.0,
		"Consumer Discretionary": 0.5, "Consumer Staples": 0.3, "Energy": 0.6,
	},
	"Consumer Discretionary": {
		"Technology": 0.6, "Healthcare": 0.3, "Financial Services": 0.5,
		"Consumer Discretionary": 1.0, "Consumer Staples": 0.4, "Energy": 0.3,
	},
	"Consumer Staples": {
		"Technology": 0.1, "Healthcare": 0.4, "Financial Services": 0.3,
		"Consumer Discretionary": 0.4, "Consumer Staples": 1.0, "Energy": 0.2,
	},
	"Energy": {
		"Technology": 0.2, "Healthcare": 0.1, "Financial Services": 0.6,
		"Consumer Discretionary": 0.3, "Consumer Staples": 0.2, "Energy": 1.0,
	},
}

// Engine answers sector correlation queries against the fixed matrix.
type Engine struct {
	matrix map[string]map[string]float64
}

func NewEngine() *Engine {
	return &Engine{matrix: sectorMatrix}
}

// Pair returns the correlation between two sectors, or the default when
// either sector is outside the matrix.
func (e *Engine) Pair(sector1, sector2 string) float64 {
	row, ok := e.matrix[sector1]
	if !ok {
		return defaultPairCorrelation
	}
	c, ok := row[sector2]
	if !ok {
		return defaultPairCorrelation
	}
	return c
}

// SectorCorrelations returns the matrix row for a sector, or nil when the
// sector is not covered.
func (e *Engine) SectorCorrelations(sector string) map[string]float64 {
	return e.matrix[sector]
}

// InstrumentSummary describes how one instrument co-moves with the market
// and with the covered sectors. Beta proxies market correlation, so a
// defensive low-beta name earns a High diversification benefit.
func (e *Engine) InstrumentSummary(inst *models.Instrument) models.CorrelationSummary {
	sector := inst.Sector
	if sector == "" {
		sector = "Unknown"
	}
	beta := inst.BetaOrDefault()

	benefit := models.FactorLow
	descriptor := "high"
	switch {
	case beta < 0.8:
		benefit = models.FactorHigh
		descriptor = "low"
	case beta < 1.2:
		benefit = models.FactorModerate
		descriptor = "moderate"
	}

	return models.CorrelationSummary{
		MarketCorrelation:      beta,
		Sector:                 sector,
		SectorCorrelations:     e.SectorCorrelations(sector),
		DiversificationBenefit: benefit,
		Analysis:               fmt.Sprintf("Beta of %g indicates %s correlation with market movements", beta, descriptor),
	}
}

// Portfolio computes the value-weighted average pairwise sector correlation
// over all holding pairs. A single holding has no pairs and reports zero.
func (e *Engine) Portfolio(holdings []models.Holding) models.PortfolioCorrelation {
	total := models.TotalValue(holdings)

	var weightedSum float64
	pairCount := 0
	if total > 0 {
		for i := range holdings {
			for j := i + 1; j < len(holdings); j++ {
				s1 := sectorOrUnknown(holdings[i].Instrument.Sector)
				s2 := sectorOrUnknown(holdings[j].Instrument.Sector)
				w1 := holdings[i].Value / total
				w2 := holdings[j].Value / total
				weightedSum += e.Pair(s1, s2) * w1 * w2
				pairCount++
			}
		}
	}

	avg := weightedSum / math.Max(float64(pairCount), 1)
	avg = math.Round(avg*1000) / 1000

	risk := models.FactorLow
	descriptor := "low"
	switch {
	case avg > 0.6:
		risk = models.FactorHigh
		descriptor = "high"
	case avg > 0.3:
		risk = models.FactorModerate
		descriptor = "moderate"
	}

	return models.PortfolioCorrelation{
		AverageCorrelation: avg,
		CorrelationRisk:    risk,
		Analysis:           fmt.Sprintf("Average portfolio correlation of %.3f indicates %s interconnectedness", avg, descriptor),
	}
}

func sectorOrUnknown(sector string) string {
	if sector == "" {
		return "Unknown"
	}
	return sector
}
