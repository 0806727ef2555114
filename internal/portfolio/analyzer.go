// Package portfolio analyzes a holding set: weighted risk metrics,
// concentration, sector diversification, correlation, parametric VaR, and a
// 1-100 health score with prioritized action items. Analysis is pure and
// recomputed in full on every call; identical holdings yield identical output.
package portfolio

import (
	"math"

	"github.com/seenimoa/riskcore/internal/correlation"
	"github.com/seenimoa/riskcore/pkg/models"
)

// Defaults substituted when a holding's fundamentals are not supplied.
const (
	defaultBeta         = 1.0
	defaultPE           = 20.0
	defaultDebtToEquity = 0.5
)

const (
	maxActionItems      = 5
	maxOptimizationRecs = 5
)

// Analyzer computes portfolio-level risk from a holding set.
type Analyzer struct {
	correlations *correlation.Engine
}

func NewAnalyzer(correlations *correlation.Engine) *Analyzer {
	return &Analyzer{correlations: correlations}
}

// Analyze computes the full portfolio picture. Empty holding sets and
// holdings with no aggregate value are rejected, never defaulted.
func (a *Analyzer) Analyze(holdings []models.Holding) (*models.PortfolioAnalysis, error) {
	if len(holdings) == 0 {
		return nil, &models.ValidationError{Field: "holdings", Reason: "portfolio holdings are required"}
	}
	total := models.TotalValue(holdings)
	if total <= 0 {
		return nil, &models.ValidationError{Field: "holdings", Reason: "portfolio has no value"}
	}

	var weightedBeta, weightedPE, weightedDE float64
	var largest float64
	for _, h := range holdings {
		weight := h.Value / total
		weightedBeta += weight * orDefault(h.Instrument.Beta, defaultBeta)
		weightedPE += weight * orDefault(h.Instrument.PE, defaultPE)
		weightedDE += weight * orDefault(h.Instrument.DebtToEquity, defaultDebtToEquity)
		if h.Value > largest {
			largest = h.Value
		}
	}
	concentration := largest / total

	portfolioBeta := round3(weightedBeta)
	concentrationR := round3(concentration)

	div := Diversification(holdings)

	analysis := &models.PortfolioAnalysis{
		TotalValue:           total,
		NumberOfPositions:    len(holdings),
		AveragePositionSize:  round2(total / float64(len(holdings))),
		PortfolioBeta:        portfolioBeta,
		WeightedPE:           round2(weightedPE),
		WeightedDebtToEquity: round2(weightedDE),
		ConcentrationRatio:   concentrationR,
		RiskConcentration:    concentrationTier(concentration),
		Diversification:      div,
		Correlation:          a.correlations.Portfolio(holdings),
		VaR:                  portfolioVaR(total, portfolioBeta),
		HealthScore:          healthScore(portfolioBeta, concentrationR, div.Score),
		ActionItems:          actionItems(concentrationR, div.Score),
		OptimizationRecs:     optimizationRecommendations(portfolioBeta, concentrationR, div.Score),
	}
	return analysis, nil
}

func concentrationTier(ratio float64) models.FactorTier {
	switch {
	case ratio > 0.3:
		return models.FactorHigh
	case ratio > 0.15:
		return models.FactorModerate
	default:
		return models.FactorLow
	}
}

func portfolioVaR(totalValue, portfolioBeta float64) models.PortfolioVaR {
	daily := totalValue * 0.016 * portfolioBeta * 1.65
	return models.PortfolioVaR{
		VaR951Day:      round2(daily),
		VaR951DayPct:   round2(daily / totalValue * 100),
		PortfolioValue: totalValue,
		Methodology:    "Simplified parametric VaR",
	}
}

// healthScore grades the portfolio 1-100 from its diversification,
// concentration, and beta. 60 is the neutral starting point.
func healthScore(portfolioBeta, concentration float64, diversificationScore int) int {
	score := 60

	score += (diversificationScore - 5) * 3

	switch {
	case concentration < 0.15:
		score += 10
	case concentration < 0.25:
		score += 5
	case concentration > 0.4:
		score -= 15
	case concentration > 0.3:
		score -= 10
	}

	switch {
	case portfolioBeta >= 0.8 && portfolioBeta <= 1.2:
		score += 10
	case portfolioBeta >= 0.6 && portfolioBeta <= 1.4:
		score += 5
	default:
		score -= 5
	}

	if score < 1 {
		return 1
	}
	if score > 100 {
		return 100
	}
	return score
}

func actionItems(concentration float64, diversificationScore int) []string {
	items := make([]string, 0, maxActionItems)

	if concentration > 0.3 {
		items = append(items, "PRIORITY: Reduce largest position to under 20% of portfolio")
	}
	if diversificationScore < 4 {
		items = append(items, "PRIORITY: Add positions in at least 2 additional sectors")
	}

	items = append(items,
		"Review and rebalance portfolio quarterly",
		"Monitor sector allocations monthly",
		"Assess correlation changes during market volatility",
	)

	if len(items) > maxActionItems {
		items = items[:maxActionItems]
	}
	return items
}

func optimizationRecommendations(portfolioBeta, concentration float64, diversificationScore int) []string {
	recs := make([]string, 0, maxOptimizationRecs+1)

	if concentration > 0.3 {
		recs = append(recs, "Reduce concentration risk by limiting individual positions to <20% of portfolio")
	}
	if diversificationScore < 5 {
		recs = append(recs, "Improve diversification by adding positions in underrepresented sectors")
	}
	if portfolioBeta > 1.3 {
		recs = append(recs, "Consider adding defensive positions to reduce portfolio beta")
	} else if portfolioBeta < 0.7 {
		recs = append(recs, "Portfolio may be too conservative - consider adding growth positions")
	}

	recs = append(recs,
		"Rebalance portfolio quarterly to maintain target allocations",
		"Monitor correlation changes during market stress periods",
	)

	if len(recs) > maxOptimizationRecs {
		recs = recs[:maxOptimizationRecs]
	}
	return recs
}

func orDefault(v, fallback float64) float64 {
	if v == 0 {
		return fallback
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
