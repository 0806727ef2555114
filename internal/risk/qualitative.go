package risk

import "github.com/seenimoa/riskcore/pkg/models"

// standingFactors apply to every instrument regardless of its profile.
var standingFactors = []models.RiskFactor{
	{
		Category:    "Market Risk",
		Description: "Exposure to overall market volatility and economic cycles",
		Severity:    "Medium",
		Likelihood:  "High",
	},
	{
		Category:    "Sector Risk",
		Description: "Risks specific to the company's industry sector",
		Severity:    "Medium",
		Likelihood:  "Medium",
	},
	{
		Category:    "Company-Specific Risk",
		Description: "Risks unique to the individual company's operations",
		Severity:    "Medium",
		Likelihood:  "Medium",
	},
}

// maxRiskFactors caps the qualitative factor list.
const maxRiskFactors = 8

// QualitativeFactors builds the qualitative risk factor list for an
// instrument: its known business risks first, then the standing market,
// sector, and company-specific factors, capped at eight.
func QualitativeFactors(inst *models.Instrument) []models.RiskFactor {
	factors := make([]models.RiskFactor, 0, len(inst.RiskFactors)+len(standingFactors))

	for _, r := range inst.RiskFactors {
		factors = append(factors, models.RiskFactor{
			Category:    "Business Risk",
			Description: r,
			Severity:    "Medium",
			Likelihood:  "Medium",
		})
	}

	factors = append(factors, standingFactors...)

	if len(factors) > maxRiskFactors {
		factors = factors[:maxRiskFactors]
	}
	return factors
}
