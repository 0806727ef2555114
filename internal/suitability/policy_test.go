package suitability

import (
	"errors"
	"testing"

	"github.com/seenimoa/riskcore/pkg/models"
)

func sampleAssessment(score int, beta float64, liquidity models.FactorTier) *models.RiskAssessment {
	return &models.RiskAssessment{
		Ticker:    "AAPL",
		RiskScore: score,
		Metrics: models.QuantMetrics{
			Beta:          beta,
			LiquidityRisk: liquidity,
		},
	}
}

func profileWithTier(tier models.RiskToleranceTier) models.ClientProfile {
	p := models.DefaultClientProfile()
	p.RiskTolerance = tier
	return p
}

// ── Tier resolution ──

func TestResolvePolicy(t *testing.T) {
	tests := []struct {
		tier        models.RiskToleranceTier
		wantMaxRisk int
		wantMaxVol  float64
	}{
		{models.TierConservative, 4, 1.2},
		{models.TierModerate, 7, 1.5},
		{models.TierAggressive, 10, 2.0},
		{"Moderate", 7, 1.5},      // case-insensitive
		{" aggressive ", 10, 2.0}, // whitespace tolerated
	}

	for _, tt := range tests {
		policy, err := ResolvePolicy(tt.tier)
		if err != nil {
			t.Errorf("ResolvePolicy(%q) failed: %v", tt.tier, err)
			continue
		}
		if policy.MaxRiskScore != tt.wantMaxRisk {
			t.Errorf("%q MaxRiskScore = %d, want %d", tt.tier, policy.MaxRiskScore, tt.wantMaxRisk)
		}
		if policy.MaxVolatility != tt.wantMaxVol {
			t.Errorf("%q MaxVolatility = %g, want %g", tt.tier, policy.MaxVolatility, tt.wantMaxVol)
		}
		if policy.MaxSingleSecurityShare != 0.20 || policy.MaxSectorShare != 0.35 || policy.MaxAssetClassShare != 0.80 {
			t.Errorf("%q concentration limits = %g/%g/%g, want 0.20/0.35/0.80",
				tt.tier, policy.MaxSingleSecurityShare, policy.MaxSectorShare, policy.MaxAssetClassShare)
		}
	}
}

func TestResolvePolicyUnknownTier(t *testing.T) {
	_, err := ResolvePolicy("speculative")
	if err == nil {
		t.Fatal("expected error for unknown tier")
	}
	var perr *models.PolicyResolutionError
	if !errors.As(err, &perr) {
		t.Errorf("expected PolicyResolutionError, got %T", err)
	}
	if perr.Tier != "speculative" {
		t.Errorf("error tier = %q, want speculative", perr.Tier)
	}
}

func TestPoliciesOrdered(t *testing.T) {
	policies := Policies()
	if len(policies) != 3 {
		t.Fatalf("expected 3 policies, got %d", len(policies))
	}
	want := []models.RiskToleranceTier{models.TierConservative, models.TierModerate, models.TierAggressive}
	for i, tier := range want {
		if policies[i].Tier != tier {
			t.Errorf("policies[%d] = %s, want %s", i, policies[i].Tier, tier)
		}
	}
}

// ── Single-investment evaluation ──

func TestEvaluateInvestmentRiskExceedsConservative(t *testing.T) {
	// Conservative max 4 with +1 slack = 5; score 6 fails.
	assessment := sampleAssessment(6, 1.0, models.FactorLow)
	verdict := EvaluateInvestment(assessment, &models.Instrument{Ticker: "AAPL"}, profileWithTier(models.TierConservative))

	if verdict.Suitable {
		t.Error("score 6 should not suit a conservative client")
	}
	want := "Investment risk level (6/10) exceeds client's conservative risk tolerance."
	if verdict.Reasoning != want {
		t.Errorf("Reasoning = %q, want %q", verdict.Reasoning, want)
	}
	if len(verdict.ViolatedLimits) == 0 || verdict.ViolatedLimits[0] != "risk_score" {
		t.Errorf("ViolatedLimits = %v, want risk_score first", verdict.ViolatedLimits)
	}
}

func TestEvaluateInvestmentSlackAllowsOnePoint(t *testing.T) {
	// Score 5 = conservative max 4 + 1 slack: the risk check passes.
	assessment := sampleAssessment(5, 1.0, models.FactorLow)
	verdict := EvaluateInvestment(assessment, &models.Instrument{Ticker: "JNJ"}, profileWithTier(models.TierConservative))

	if !verdict.Suitable {
		t.Errorf("score 5 should suit conservative with slack; reasoning: %s", verdict.Reasoning)
	}
	if verdict.Checks[0].Notes != "Investment risk score 5 vs client max 5" {
		t.Errorf("risk check notes = %q", verdict.Checks[0].Notes)
	}
}

func TestEvaluateInvestmentSuitable(t *testing.T) {
	assessment := sampleAssessment(6, 1.2, models.FactorLow)
	verdict := EvaluateInvestment(assessment, &models.Instrument{Ticker: "AAPL"}, profileWithTier(models.TierModerate))

	if !verdict.Suitable {
		t.Fatalf("expected suitable verdict, got reasoning: %s", verdict.Reasoning)
	}
	want := "Investment risk level (6/10) aligns with client's moderate risk profile."
	if verdict.Reasoning != want {
		t.Errorf("Reasoning = %q, want %q", verdict.Reasoning, want)
	}
	if len(verdict.ViolatedLimits) != 0 {
		t.Errorf("ViolatedLimits = %v, want none", verdict.ViolatedLimits)
	}
	// Default profile engages all five checks.
	if len(verdict.Checks) != 5 {
		t.Errorf("expected 5 checks with a full profile, got %d", len(verdict.Checks))
	}
}

func TestEvaluateInvestmentBetaCeiling(t *testing.T) {
	assessment := sampleAssessment(5, 2.1, models.FactorLow)
	verdict := EvaluateInvestment(assessment, &models.Instrument{Ticker: "TSLA"}, profileWithTier(models.TierModerate))

	if verdict.Suitable {
		t.Error("beta 2.1 should fail the moderate volatility ceiling")
	}
	if verdict.Reasoning != "Investment beta 2.1 vs client max 1.5" {
		t.Errorf("Reasoning = %q", verdict.Reasoning)
	}
}

func TestEvaluateInvestmentTimeHorizon(t *testing.T) {
	assessment := sampleAssessment(5, 1.0, models.FactorLow)

	short := profileWithTier(models.TierModerate)
	short.TimeHorizon = models.HorizonShortTerm
	verdict := EvaluateInvestment(assessment, &models.Instrument{Ticker: "V"}, short)
	if verdict.Suitable {
		t.Error("medium-term investment should not suit a short-term client")
	}
	if verdict.Reasoning != "Time horizons incompatible" {
		t.Errorf("Reasoning = %q", verdict.Reasoning)
	}

	long := profileWithTier(models.TierModerate)
	long.TimeHorizon = models.HorizonLongTerm
	if v := EvaluateInvestment(assessment, &models.Instrument{Ticker: "V"}, long); !v.Suitable {
		t.Errorf("long-term client should accept a medium-term investment: %s", v.Reasoning)
	}
}

func TestEvaluateInvestmentLiquidityOrdering(t *testing.T) {
	inst := &models.Instrument{Ticker: "AAPL"}

	// The check compares risk-tier ordinals: a Low liquidity-risk tier
	// scores 1, below a high-needs client's 3.
	highNeeds := profileWithTier(models.TierModerate)
	highNeeds.LiquidityNeeds = models.LiquidityNeedHigh
	verdict := EvaluateInvestment(sampleAssessment(5, 1.0, models.FactorLow), inst, highNeeds)
	if verdict.Suitable {
		t.Error("expected liquidity check to fail for high-needs client vs Low risk tier")
	}
	if verdict.Reasoning != "Liquidity unsuitable" {
		t.Errorf("Reasoning = %q", verdict.Reasoning)
	}

	verdict = EvaluateInvestment(sampleAssessment(5, 1.0, models.FactorHigh), inst, highNeeds)
	for _, c := range verdict.Checks {
		if c.Name == "liquidity" && !c.Passed {
			t.Error("High risk tier (ordinal 3) should satisfy high needs (3)")
		}
	}
}

func TestEvaluateInvestmentComplexity(t *testing.T) {
	assessment := sampleAssessment(5, 1.0, models.FactorLow)

	beginner := profileWithTier(models.TierModerate)
	beginner.InvestmentExperience = models.ExperienceBeginner

	plain := &models.Instrument{Ticker: "KO", Description: "Beverage company"}
	if v := EvaluateInvestment(assessment, plain, beginner); v.Suitable {
		t.Error("beginner should fail moderate-complexity products")
	}

	simple := &models.Instrument{Ticker: "SPY", Description: "Broad market index fund"}
	if v := EvaluateInvestment(assessment, simple, beginner); !v.Suitable {
		t.Errorf("beginner should pass low-complexity products: %s", v.Reasoning)
	}

	advanced := profileWithTier(models.TierAggressive)
	advanced.InvestmentExperience = models.ExperienceAdvanced
	exotic := &models.Instrument{Ticker: "XYZ", Description: "Structured product with embedded derivative exposure"}
	v := EvaluateInvestment(assessment, exotic, advanced)
	if !v.Suitable {
		t.Errorf("advanced client should pass high complexity: %s", v.Reasoning)
	}
	found := false
	for _, w := range v.Warnings {
		if w == "This is a complex investment product" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected complexity warning, got %v", v.Warnings)
	}
}

func TestEvaluateInvestmentLiquidityWarning(t *testing.T) {
	assessment := sampleAssessment(5, 1.0, models.FactorHigh)
	verdict := EvaluateInvestment(assessment, &models.Instrument{Ticker: "XYZ"}, profileWithTier(models.TierAggressive))

	found := false
	for _, w := range verdict.Warnings {
		if w == "This investment may have limited liquidity" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected limited-liquidity warning, got %v", verdict.Warnings)
	}
}

func TestEvaluateInvestmentManualReviewFallback(t *testing.T) {
	verdicts := []models.SuitabilityVerdict{
		EvaluateInvestment(nil, &models.Instrument{Ticker: "AAPL"}, profileWithTier(models.TierModerate)),
		EvaluateInvestment(sampleAssessment(5, 1.0, models.FactorLow), nil, profileWithTier(models.TierModerate)),
		EvaluateInvestment(sampleAssessment(5, 1.0, models.FactorLow), &models.Instrument{Ticker: "AAPL"}, models.ClientProfile{RiskTolerance: "reckless"}),
	}

	for i, v := range verdicts {
		if v.Suitable {
			t.Errorf("case %d: fault should yield unsuitable verdict", i)
		}
		if v.Reasoning != "Unable to assess suitability due to insufficient data" {
			t.Errorf("case %d: Reasoning = %q", i, v.Reasoning)
		}
		if len(v.Warnings) == 0 || v.Warnings[0] != "Suitability assessment failed - manual review required" {
			t.Errorf("case %d: Warnings = %v", i, v.Warnings)
		}
	}
}

// ── Portfolio evaluation ──

func TestEvaluatePortfolioConcentrationLimits(t *testing.T) {
	analysis := &models.PortfolioAnalysis{
		PortfolioBeta:      1.1,
		ConcentrationRatio: 0.45,
		Diversification: models.DiversificationReport{
			SectorAllocation: map[string]float64{"Technology": 55, "Healthcare": 45},
		},
	}

	verdict := EvaluatePortfolio(analysis, profileWithTier(models.TierModerate))
	if verdict.Suitable {
		t.Error("concentrated portfolio should fail")
	}
	wantViolated := []string{"single_security", "sector_concentration"}
	if len(verdict.ViolatedLimits) != len(wantViolated) {
		t.Fatalf("ViolatedLimits = %v, want %v", verdict.ViolatedLimits, wantViolated)
	}
	for i, name := range wantViolated {
		if verdict.ViolatedLimits[i] != name {
			t.Errorf("ViolatedLimits[%d] = %q, want %q", i, verdict.ViolatedLimits[i], name)
		}
	}
	if verdict.Reasoning != "Single security exposure 45.0% vs limit 20.0%" {
		t.Errorf("Reasoning = %q", verdict.Reasoning)
	}
}

func TestEvaluatePortfolioNoSlack(t *testing.T) {
	// 21% single-position share sits within +1-style tolerance ideas but
	// portfolio checks apply the 20% limit exactly.
	analysis := &models.PortfolioAnalysis{
		PortfolioBeta:      1.0,
		ConcentrationRatio: 0.21,
		Diversification: models.DiversificationReport{
			SectorAllocation: map[string]float64{"Technology": 30, "Healthcare": 35, "Financial Services": 35},
		},
	}

	verdict := EvaluatePortfolio(analysis, profileWithTier(models.TierAggressive))
	if verdict.Suitable {
		t.Error("21% single-security share should fail the 20% limit for every tier")
	}
}

func TestEvaluatePortfolioSuitable(t *testing.T) {
	analysis := &models.PortfolioAnalysis{
		PortfolioBeta:      1.0,
		ConcentrationRatio: 0.15,
		Diversification: models.DiversificationReport{
			SectorAllocation: map[string]float64{"Technology": 30, "Healthcare": 35, "Financial Services": 35},
		},
	}

	verdict := EvaluatePortfolio(analysis, profileWithTier(models.TierModerate))
	if !verdict.Suitable {
		t.Fatalf("balanced portfolio should pass: %s", verdict.Reasoning)
	}
	if verdict.Reasoning != "Portfolio risk profile aligns with client's moderate risk tolerance." {
		t.Errorf("Reasoning = %q", verdict.Reasoning)
	}
}

func TestEvaluatePortfolioManualReviewFallback(t *testing.T) {
	v := EvaluatePortfolio(nil, profileWithTier(models.TierModerate))
	if v.Suitable || v.Reasoning != "Unable to assess suitability due to insufficient data" {
		t.Errorf("nil analysis should yield manual-review verdict, got %+v", v)
	}
}

// ── Exposure checks ──

func TestCheckExposureAssetClass(t *testing.T) {
	policy, err := ResolvePolicy(models.TierModerate)
	if err != nil {
		t.Fatalf("ResolvePolicy failed: %v", err)
	}

	checks := CheckExposure(PortfolioExposure{AssetClassShare: 0.9}, policy)
	if len(checks) != 1 {
		t.Fatalf("expected 1 check, got %d", len(checks))
	}
	if checks[0].Passed {
		t.Error("90% asset-class share should exceed the 80% limit")
	}
	if checks[0].Notes != "Equity exposure 90.0% vs limit 80.0%" {
		t.Errorf("Notes = %q", checks[0].Notes)
	}

	checks = CheckExposure(PortfolioExposure{AssetClass: "Fixed Income", AssetClassShare: 0.75}, policy)
	if !checks[0].Passed {
		t.Error("75% asset-class share should pass the 80% limit")
	}
}

func TestCheckExposureSkipsUnknownShares(t *testing.T) {
	policy, err := ResolvePolicy(models.TierConservative)
	if err != nil {
		t.Fatalf("ResolvePolicy failed: %v", err)
	}
	if checks := CheckExposure(PortfolioExposure{}, policy); len(checks) != 0 {
		t.Errorf("expected no checks for empty exposure, got %v", checks)
	}
}

func TestInvestmentComplexityKeywords(t *testing.T) {
	tests := []struct {
		description string
		want        string
	}{
		{"Options and derivative strategies", "high"},
		{"Complex structured notes", "high"},
		{"S&P 500 index tracking", "low"},
		{"Blue chip industrial conglomerate", "low"},
		{"Consumer electronics maker", "moderate"},
		{"", "moderate"},
	}
	for _, tt := range tests {
		inst := &models.Instrument{Description: tt.description}
		if got := investmentComplexity(inst); got != tt.want {
			t.Errorf("investmentComplexity(%q) = %q, want %q", tt.description, got, tt.want)
		}
	}
}
