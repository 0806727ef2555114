package models

// TimeHorizon is a client's or investment's intended holding period.
type TimeHorizon string

const (
	HorizonShortTerm  TimeHorizon = "short_term"
	HorizonMediumTerm TimeHorizon = "medium_term"
	HorizonLongTerm   TimeHorizon = "long_term"
)

// ExperienceLevel grades a client's investment experience.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

// LiquidityNeeds grades how quickly a client may need to convert
// positions to cash.
type LiquidityNeeds string

const (
	LiquidityNeedLow      LiquidityNeeds = "low"
	LiquidityNeedModerate LiquidityNeeds = "moderate"
	LiquidityNeedHigh     LiquidityNeeds = "high"
)

// ClientProfile describes the client an assessment is evaluated for. Only
// RiskTolerance is required; the remaining fields enable the extended
// suitability checks when supplied.
type ClientProfile struct {
	RiskTolerance        RiskToleranceTier `json:"risk_tolerance"`
	InvestmentExperience ExperienceLevel   `json:"investment_experience,omitempty"`
	TimeHorizon          TimeHorizon       `json:"time_horizon,omitempty"`
	LiquidityNeeds       LiquidityNeeds    `json:"liquidity_needs,omitempty"`
	IncomeRequirements   string            `json:"income_requirements,omitempty"`
	InvestmentObjectives []string          `json:"investment_objectives,omitempty"`
	FinancialSituation   string            `json:"financial_situation,omitempty"`
	AgeRange             string            `json:"age_range,omitempty"`
	NetWorthCategory     string            `json:"net_worth_category,omitempty"`
}

// DefaultClientProfile returns the profile used when a request supplies
// none: a moderate-tolerance, intermediate-experience, long-term investor.
func DefaultClientProfile() ClientProfile {
	return ClientProfile{
		RiskTolerance:        TierModerate,
		InvestmentExperience: ExperienceIntermediate,
		TimeHorizon:          HorizonLongTerm,
		LiquidityNeeds:       LiquidityNeedLow,
		IncomeRequirements:   "moderate",
		InvestmentObjectives: []string{"growth", "income"},
		FinancialSituation:   "stable",
		AgeRange:             "35-55",
		NetWorthCategory:     "moderate",
	}
}
