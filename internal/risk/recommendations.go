package risk

import "github.com/seenimoa/riskcore/pkg/models"

// maxMitigationSuggestions caps the mitigation list.
const maxMitigationSuggestions = 5

// MitigationSuggestions proposes risk controls scaled to the composite
// score, plus hedging and diversification extras when market or sector
// risk factors are present. Capped at five.
func MitigationSuggestions(riskScore int, factors []models.RiskFactor) []string {
	var suggestions []string

	switch {
	case riskScore >= 8:
		suggestions = append(suggestions,
			"Consider reducing position size due to high risk level",
			"Implement strict stop-loss orders",
			"Monitor investment closely with daily check-ins",
		)
	case riskScore >= 6:
		suggestions = append(suggestions,
			"Maintain moderate position sizing",
			"Set trailing stop-loss orders",
			"Review investment monthly",
		)
	default:
		suggestions = append(suggestions,
			"Standard position sizing acceptable",
			"Monitor quarterly earnings and key metrics",
			"Review investment quarterly",
		)
	}

	if hasCategory(factors, "Market Risk") {
		suggestions = append(suggestions, "Consider hedging against market downturns")
	}
	if hasCategory(factors, "Sector Risk") {
		suggestions = append(suggestions, "Diversify across multiple sectors")
	}

	if len(suggestions) > maxMitigationSuggestions {
		suggestions = suggestions[:maxMitigationSuggestions]
	}
	return suggestions
}

// MonitoringRecommendations returns the standing watch list for any
// assessed instrument.
func MonitoringRecommendations() []string {
	return []string{
		"Track quarterly earnings reports and guidance",
		"Monitor sector performance and trends",
		"Watch for changes in market sentiment",
		"Review analyst upgrades/downgrades",
		"Track key business metrics and KPIs",
	}
}

func hasCategory(factors []models.RiskFactor, category string) bool {
	for _, f := range factors {
		if f.Category == category {
			return true
		}
	}
	return false
}
