package suitability

import (
	"fmt"
	"sort"
	"strings"

	"github.com/seenimoa/riskcore/pkg/models"
)

// The engine scores fundamentals, not entry timing, so every recommendation
// carries a medium-term horizon.
const investmentHorizon = models.HorizonMediumTerm

// horizonCompatibility lists the investment horizons acceptable for each
// client horizon. A longer client horizon accepts everything shorter.
var horizonCompatibility = map[models.TimeHorizon][]models.TimeHorizon{
	models.HorizonShortTerm:  {models.HorizonShortTerm},
	models.HorizonMediumTerm: {models.HorizonShortTerm, models.HorizonMediumTerm},
	models.HorizonLongTerm:   {models.HorizonShortTerm, models.HorizonMediumTerm, models.HorizonLongTerm},
}

// Ordinal scores follow the risk-tier ordering, Low=1 through High=3.
// Unrecognized values score 2.
func liquidityRiskScore(tier models.FactorTier) int {
	switch tier {
	case models.FactorLow:
		return 1
	case models.FactorHigh:
		return 3
	default:
		return 2
	}
}

func liquidityNeedScore(needs models.LiquidityNeeds) int {
	switch needs {
	case models.LiquidityNeedLow:
		return 1
	case models.LiquidityNeedHigh:
		return 3
	default:
		return 2
	}
}

func experienceLevel(exp models.ExperienceLevel) int {
	switch exp {
	case models.ExperienceBeginner:
		return 1
	case models.ExperienceAdvanced:
		return 3
	default:
		return 2
	}
}

func complexityRequirement(complexity string) int {
	switch complexity {
	case "low":
		return 1
	case "high":
		return 3
	default:
		return 2
	}
}

// PortfolioExposure carries the share figures compared against the tier's
// concentration limits. Shares are fractions of total portfolio value; a
// zero share means unknown and skips that check.
type PortfolioExposure struct {
	SinglePositionShare float64 `json:"single_position_share,omitempty"`
	LargestSector       string  `json:"largest_sector,omitempty"`
	LargestSectorShare  float64 `json:"largest_sector_share,omitempty"`
	AssetClass          string  `json:"asset_class,omitempty"`
	AssetClassShare     float64 `json:"asset_class_share,omitempty"`
}

// EvaluateInvestment renders the suitability verdict for one scored
// instrument against the client's tier policy. Single-investment evaluation
// allows one point of slack above the tier's risk ceiling; the extended
// profile checks run only for fields the profile supplies.
func EvaluateInvestment(assessment *models.RiskAssessment, inst *models.Instrument, profile models.ClientProfile) models.SuitabilityVerdict {
	if assessment == nil || inst == nil {
		return manualReviewVerdict()
	}
	policy, err := ResolvePolicy(profile.RiskTolerance)
	if err != nil {
		return manualReviewVerdict()
	}

	maxRisk := policy.MaxRiskScore + 1 // slack for a single position
	beta := assessment.Metrics.Beta

	checks := []models.SuitabilityCheck{
		{
			Name:   "risk_score",
			Passed: assessment.RiskScore <= maxRisk,
			Notes:  fmt.Sprintf("Investment risk score %d vs client max %d", assessment.RiskScore, maxRisk),
		},
		{
			Name:   "volatility",
			Passed: beta <= policy.MaxVolatility,
			Notes:  fmt.Sprintf("Investment beta %g vs client max %g", beta, policy.MaxVolatility),
		},
	}

	if profile.TimeHorizon != "" {
		compatible := horizonsCompatible(profile.TimeHorizon, investmentHorizon)
		notes := "Time horizons compatible"
		if !compatible {
			notes = "Time horizons incompatible"
		}
		checks = append(checks, models.SuitabilityCheck{Name: "time_horizon", Passed: compatible, Notes: notes})
	}

	if profile.LiquidityNeeds != "" {
		ok := liquidityRiskScore(assessment.Metrics.LiquidityRisk) >= liquidityNeedScore(profile.LiquidityNeeds)
		notes := "Liquidity suitable"
		if !ok {
			notes = "Liquidity unsuitable"
		}
		checks = append(checks, models.SuitabilityCheck{Name: "liquidity", Passed: ok, Notes: notes})
	}

	complexity := investmentComplexity(inst)
	if profile.InvestmentExperience != "" {
		ok := experienceLevel(profile.InvestmentExperience) >= complexityRequirement(complexity)
		notes := "Experience level adequate for complexity"
		if !ok {
			notes = "Experience level inadequate for complexity"
		}
		checks = append(checks, models.SuitabilityCheck{Name: "experience", Passed: ok, Notes: notes})
	}

	verdict := models.SuitabilityVerdict{
		Suitable:       allPassed(checks),
		Checks:         checks,
		ViolatedLimits: failedNames(checks),
	}

	switch {
	case verdict.Suitable:
		verdict.Reasoning = fmt.Sprintf("Investment risk level (%d/10) aligns with client's %s risk profile.",
			assessment.RiskScore, policy.Tier)
	case !checks[0].Passed:
		verdict.Reasoning = fmt.Sprintf("Investment risk level (%d/10) exceeds client's %s risk tolerance.",
			assessment.RiskScore, policy.Tier)
	default:
		verdict.Reasoning = firstFailed(checks).Notes
	}

	if assessment.Metrics.LiquidityRisk == models.FactorHigh {
		verdict.Warnings = append(verdict.Warnings, "This investment may have limited liquidity")
	}
	if complexity == "high" {
		verdict.Warnings = append(verdict.Warnings, "This is a complex investment product")
	}

	return verdict
}

// EvaluatePortfolio checks portfolio-level exposure against the tier
// policy. Portfolio checks carry no risk-score slack.
func EvaluatePortfolio(analysis *models.PortfolioAnalysis, profile models.ClientProfile) models.SuitabilityVerdict {
	if analysis == nil {
		return manualReviewVerdict()
	}
	policy, err := ResolvePolicy(profile.RiskTolerance)
	if err != nil {
		return manualReviewVerdict()
	}

	sector, sectorPct := largestSector(analysis.Diversification.SectorAllocation)

	checks := []models.SuitabilityCheck{
		{
			Name:   "portfolio_beta",
			Passed: analysis.PortfolioBeta <= policy.MaxVolatility,
			Notes:  fmt.Sprintf("Portfolio beta %g vs client max %g", analysis.PortfolioBeta, policy.MaxVolatility),
		},
	}
	checks = append(checks, CheckExposure(PortfolioExposure{
		SinglePositionShare: analysis.ConcentrationRatio,
		LargestSector:       sector,
		LargestSectorShare:  sectorPct / 100,
	}, policy)...)

	verdict := models.SuitabilityVerdict{
		Suitable:       allPassed(checks),
		Checks:         checks,
		ViolatedLimits: failedNames(checks),
	}
	if verdict.Suitable {
		verdict.Reasoning = fmt.Sprintf("Portfolio risk profile aligns with client's %s risk tolerance.", policy.Tier)
	} else {
		verdict.Reasoning = firstFailed(checks).Notes
	}
	return verdict
}

// CheckExposure compares supplied exposure shares against the tier's
// concentration limits, skipping shares the caller did not provide.
func CheckExposure(exposure PortfolioExposure, policy models.TierPolicy) []models.SuitabilityCheck {
	var checks []models.SuitabilityCheck

	if exposure.SinglePositionShare > 0 {
		checks = append(checks, models.SuitabilityCheck{
			Name:   "single_security",
			Passed: exposure.SinglePositionShare <= policy.MaxSingleSecurityShare,
			Notes: fmt.Sprintf("Single security exposure %.1f%% vs limit %.1f%%",
				exposure.SinglePositionShare*100, policy.MaxSingleSecurityShare*100),
		})
	}

	if exposure.LargestSectorShare > 0 {
		sector := exposure.LargestSector
		if sector == "" {
			sector = "Unknown"
		}
		checks = append(checks, models.SuitabilityCheck{
			Name:   "sector_concentration",
			Passed: exposure.LargestSectorShare <= policy.MaxSectorShare,
			Notes: fmt.Sprintf("%s sector exposure %.1f%% vs limit %.1f%%",
				sector, exposure.LargestSectorShare*100, policy.MaxSectorShare*100),
		})
	}

	if exposure.AssetClassShare > 0 {
		class := exposure.AssetClass
		if class == "" {
			class = "Equity"
		}
		checks = append(checks, models.SuitabilityCheck{
			Name:   "asset_class_concentration",
			Passed: exposure.AssetClassShare <= policy.MaxAssetClassShare,
			Notes: fmt.Sprintf("%s exposure %.1f%% vs limit %.1f%%",
				class, exposure.AssetClassShare*100, policy.MaxAssetClassShare*100),
		})
	}

	return checks
}

// investmentComplexity derives a low/moderate/high complexity grade from
// keywords in the instrument description.
func investmentComplexity(inst *models.Instrument) string {
	desc := strings.ToLower(inst.Description)
	for _, kw := range []string{"derivative", "option", "complex"} {
		if strings.Contains(desc, kw) {
			return "high"
		}
	}
	for _, kw := range []string{"etf", "index", "blue chip"} {
		if strings.Contains(desc, kw) {
			return "low"
		}
	}
	return "moderate"
}

func horizonsCompatible(client, investment models.TimeHorizon) bool {
	for _, h := range horizonCompatibility[client] {
		if h == investment {
			return true
		}
	}
	return false
}

// largestSector picks the heaviest sector allocation, breaking percentage
// ties by name so repeated runs agree.
func largestSector(allocation map[string]float64) (string, float64) {
	names := make([]string, 0, len(allocation))
	for name := range allocation {
		names = append(names, name)
	}
	sort.Strings(names)

	var largest string
	var pct float64
	for _, name := range names {
		if allocation[name] > pct {
			largest = name
			pct = allocation[name]
		}
	}
	return largest, pct
}

func allPassed(checks []models.SuitabilityCheck) bool {
	for _, c := range checks {
		if !c.Passed {
			return false
		}
	}
	return true
}

func failedNames(checks []models.SuitabilityCheck) []string {
	var names []string
	for _, c := range checks {
		if !c.Passed {
			names = append(names, c.Name)
		}
	}
	return names
}

func firstFailed(checks []models.SuitabilityCheck) models.SuitabilityCheck {
	for _, c := range checks {
		if !c.Passed {
			return c
		}
	}
	return models.SuitabilityCheck{}
}

func manualReviewVerdict() models.SuitabilityVerdict {
	return models.SuitabilityVerdict{
		Suitable:  false,
		Reasoning: "Unable to assess suitability due to insufficient data",
		Warnings:  []string{"Suitability assessment failed - manual review required"},
	}
}
