// Package risk implements the quantitative risk engine: per-instrument
// metrics, composite 1-10 scoring, parametric VaR, and scenario stress
// tests. Everything here is pure computation over instrument fundamentals;
// missing optional fields degrade to documented defaults instead of
// failing, so one sparse instrument never aborts a batch.
package risk

import (
	"strings"

	"github.com/seenimoa/riskcore/pkg/models"
)

// SectorMultiplier pairs a sector-name fragment with a volatility
// adjustment. Matching is ordered and case-insensitive: the first fragment
// contained in the sector name wins.
type SectorMultiplier struct {
	Fragment   string
	Multiplier float64
}

// DefaultSectorMultipliers is the standard sector volatility table.
var DefaultSectorMultipliers = []SectorMultiplier{
	{"technology", 1.3},
	{"energy", 1.4},
	{"financial", 1.2},
	{"healthcare", 0.9},
	{"utilities", 0.7},
	{"consumer staples", 0.8},
}

// Calculator derives quantitative risk metrics from instrument
// fundamentals. It holds only immutable configuration and no per-call
// state, so a single instance is safe for concurrent use.
type Calculator struct {
	multipliers []SectorMultiplier
}

// NewCalculator returns a Calculator with the default sector multipliers.
func NewCalculator() *Calculator {
	return &Calculator{multipliers: DefaultSectorMultipliers}
}

// Metrics computes the quantitative risk metrics for an instrument.
// Each missing optional fundamental is substituted with its documented
// default and recorded in DegradedFields rather than raising an error.
func (c *Calculator) Metrics(inst *models.Instrument) models.QuantMetrics {
	m := models.QuantMetrics{
		Beta:                   inst.BetaOrDefault(),
		VolatilityIndicator:    c.VolatilityIndicator(inst),
		FinancialLeverage:      inst.DebtToEquity,
		LiquidityRisk:          liquidityRisk(inst.MarketCap),
		ValuationRisk:          valuationRisk(inst.PE, inst.PB),
		ProfitabilityStability: profitabilityStability(inst.ProfitMargin, inst.ROE),
	}

	// Fixed field order keeps identical input producing identical output.
	absent := []struct {
		field   string
		missing bool
	}{
		{"beta", inst.Beta == 0},
		{"last_price", inst.LastPrice == 0},
		{"pe_ratio", inst.PE == 0},
		{"price_to_book", inst.PB == 0},
		{"debt_to_equity", inst.DebtToEquity == 0},
		{"roe", inst.ROE == 0},
		{"profit_margin", inst.ProfitMargin == 0},
		{"market_cap", inst.MarketCap == 0},
	}
	for _, a := range absent {
		if a.missing {
			m.Degraded = true
			m.DegradedFields = append(m.DegradedFields, a.field)
		}
	}

	return m
}

// VolatilityIndicator returns beta scaled by the sector multiplier,
// rounded to 2 decimal places.
func (c *Calculator) VolatilityIndicator(inst *models.Instrument) float64 {
	beta := inst.BetaOrDefault()
	sector := strings.ToLower(inst.Sector)

	multiplier := 1.0
	for _, sm := range c.multipliers {
		if strings.Contains(sector, sm.Fragment) {
			multiplier = sm.Multiplier
			break
		}
	}

	return round2(beta * multiplier)
}

// Score computes the composite 1-10 risk score from quantitative metrics
// and qualitative factors: base 5, adjusted for beta, leverage, and the
// count of high-severity qualitative factors, then truncated and clamped.
func (c *Calculator) Score(m models.QuantMetrics, factors []models.RiskFactor) int {
	score := 5.0

	switch {
	case m.Beta > 1.5:
		score += 2
	case m.Beta > 1.2:
		score += 1
	case m.Beta < 0.8:
		score -= 1
	}

	if m.FinancialLeverage > 1.0 {
		score += 1
	} else if m.FinancialLeverage > 0.5 {
		score += 0.5
	}

	for _, f := range factors {
		if strings.EqualFold(f.Severity, "high") {
			score += 0.5
		}
	}

	s := int(score) // truncate, not round
	if s < 1 {
		s = 1
	}
	if s > 10 {
		s = 10
	}
	return s
}

// Level maps a 1-10 risk score onto its label.
func Level(score int) models.RiskLevel {
	switch {
	case score <= 3:
		return models.RiskLow
	case score <= 6:
		return models.RiskModerate
	case score <= 8:
		return models.RiskHigh
	default:
		return models.RiskVeryHigh
	}
}

// --- factor tiers ---

// liquidityRisk grades liquidity risk from market cap: mega caps trade
// easily (Low risk), small caps do not (High risk).
func liquidityRisk(marketCap float64) models.FactorTier {
	switch {
	case marketCap > 10_000_000_000: // > $10B
		return models.FactorLow
	case marketCap > 2_000_000_000: // > $2B
		return models.FactorModerate
	default:
		return models.FactorHigh
	}
}

// valuationRisk grades valuation risk from PE and PB ratios. An absent
// ratio skips its branch rather than counting as zero.
func valuationRisk(pe, pb float64) models.FactorTier {
	switch {
	case pe != 0 && pe > 30:
		return models.FactorHigh
	case pb != 0 && pb > 5:
		return models.FactorHigh
	case pe != 0 && pe < 15:
		return models.FactorLow
	default:
		return models.FactorModerate
	}
}

// profitabilityStability grades earnings stability from profit margin and
// ROE. Thresholds apply to stored values as-is: margin is a fraction, ROE
// a percent, so any instrument with a recorded ROE clears the ROE leg.
func profitabilityStability(margin, roe float64) models.StabilityTier {
	switch {
	case margin > 0.15 && roe > 0.15:
		return models.StabilityStable
	case margin > 0.05:
		return models.StabilityModerate
	default:
		return models.StabilityUnstable
	}
}
