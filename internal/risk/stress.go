package risk

import (
	"math"

	"github.com/seenimoa/riskcore/pkg/models"
)

// defaultPrice substitutes for instruments with no recorded trade price.
const defaultPrice = 100

// VaRAnalysis computes the simplified parametric VaR report for one
// instrument: 1-day 95% VaR = price × 0.016 × volatility × 1.65, with the
// 10-day figure scaled by √10.
func VaRAnalysis(inst *models.Instrument, volatilityIndicator float64) models.VaRReport {
	price := inst.PriceOrDefault(defaultPrice)

	var1Day := price * 0.016 * volatilityIndicator * 1.65 // 1.65 = 95% z-score
	var10Day := var1Day * math.Sqrt(10)

	return models.VaRReport{
		VaR951Day:        round2(var1Day),
		VaR9510Day:       round2(var10Day),
		VaR951DayPercent: round2(var1Day / price * 100),
		ConfidenceLevel:  "95%",
		TimeHorizon:      "1-10 days",
		Methodology:      "Parametric VaR (simplified)",
		Assumptions:      "Normal distribution, constant volatility",
	}
}

// StressTest applies the four standard shocks to an instrument and
// projects the price impact of each. Scenario order is fixed.
func StressTest(inst *models.Instrument) models.StressTestReport {
	price := inst.PriceOrDefault(defaultPrice)
	beta := inst.BetaOrDefault()

	scenarios := []models.StressScenario{
		{
			Name:         "market_crash_20",
			Description:  "20% market decline",
			MarketImpact: -20,
			StockImpact:  -20 * beta,
			Probability:  "Low (5-10%)",
		},
		{
			Name:         "sector_decline_15",
			Description:  "15% sector decline",
			MarketImpact: -5,
			StockImpact:  -15, // sector shock hits regardless of beta
			Probability:  "Medium (15-25%)",
		},
		{
			Name:         "interest_rate_shock",
			Description:  "Interest rates rise 2%",
			MarketImpact: -10,
			StockImpact:  -10 * math.Min(beta, 1.5),
			Probability:  "Medium (20-30%)",
		},
		{
			Name:         "recession_scenario",
			Description:  "Economic recession",
			MarketImpact: -30,
			StockImpact:  -30 * beta,
			Probability:  "Low (10-15%)",
		},
	}

	for i := range scenarios {
		projected := price * (1 + scenarios[i].StockImpact/100)
		scenarios[i].ProjectedPrice = round2(projected)
		scenarios[i].DollarLoss = round2(price - projected)
	}

	return models.StressTestReport{
		Scenarios:    scenarios,
		CurrentPrice: price,
		Methodology:  "Scenario-based stress testing",
		Assumptions:  "Historical correlation patterns hold",
	}
}

// round2 rounds to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
