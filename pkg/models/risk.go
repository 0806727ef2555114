package models

// RiskLevel classifies a composite 1-10 risk score.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"       // score ≤ 3
	RiskModerate RiskLevel = "Moderate"  // score ≤ 6
	RiskHigh     RiskLevel = "High"      // score ≤ 8
	RiskVeryHigh RiskLevel = "Very High" // score 9-10
)

// FactorTier grades a single risk dimension (liquidity, valuation,
// correlation, concentration). Tier names describe the RISK, not the
// underlying quality: a mega-cap has Low liquidity risk.
type FactorTier string

const (
	FactorLow      FactorTier = "Low"
	FactorModerate FactorTier = "Moderate"
	FactorHigh     FactorTier = "High"
)

// StabilityTier grades profitability stability.
type StabilityTier string

const (
	StabilityStable   StabilityTier = "Stable"
	StabilityModerate StabilityTier = "Moderate"
	StabilityUnstable StabilityTier = "Unstable"
)

// QuantMetrics holds the per-instrument quantitative risk factors derived
// from static fundamentals. When optional inputs were missing, the engine
// substitutes documented defaults and records the affected fields in
// DegradedFields rather than failing the calculation.
type QuantMetrics struct {
	Beta                   float64       `json:"beta"`
	VolatilityIndicator    float64       `json:"volatility_indicator"`
	FinancialLeverage      float64       `json:"financial_leverage"` // debt-to-equity
	LiquidityRisk          FactorTier    `json:"liquidity_risk"`
	ValuationRisk          FactorTier    `json:"valuation_risk"`
	ProfitabilityStability StabilityTier `json:"profitability_stability"`
	Degraded               bool          `json:"degraded,omitempty"`
	DegradedFields         []string      `json:"degraded_fields,omitempty"`
}

// RiskFactor is one qualitative risk consideration for an instrument.
type RiskFactor struct {
	Category    string `json:"category"`    // e.g., "Market Risk"
	Description string `json:"description"`
	Severity    string `json:"severity"`    // "Low", "Medium", "High"
	Likelihood  string `json:"likelihood"`  // "Low", "Medium", "High"
}

// VaRReport is a simplified parametric Value-at-Risk estimate for one
// instrument at the 95% confidence level.
type VaRReport struct {
	VaR951Day        float64 `json:"var_95_1_day"`         // USD
	VaR9510Day       float64 `json:"var_95_10_day"`        // USD, √10 scaling
	VaR951DayPercent float64 `json:"var_95_1_day_percent"` // percent of price
	ConfidenceLevel  string  `json:"confidence_level"`     // "95%"
	TimeHorizon      string  `json:"time_horizon"`         // "1-10 days"
	Methodology      string  `json:"methodology"`
	Assumptions      string  `json:"assumptions"`
}

// StressScenario is the outcome of one named deterministic shock.
type StressScenario struct {
	Name           string  `json:"name"`            // e.g., "market_crash_20"
	Description    string  `json:"description"`     // e.g., "20% market decline"
	MarketImpact   float64 `json:"market_impact"`   // percent
	StockImpact    float64 `json:"stock_impact"`    // percent, beta-scaled
	ProjectedPrice float64 `json:"projected_price"` // USD
	DollarLoss     float64 `json:"dollar_loss"`     // USD per share
	Probability    string  `json:"probability"`     // e.g., "Low (5-10%)"
}

// StressTestReport collects all scenario outcomes for an instrument.
type StressTestReport struct {
	Scenarios    []StressScenario `json:"scenarios"`
	CurrentPrice float64          `json:"current_price"`
	Methodology  string           `json:"methodology"`
	Assumptions  string           `json:"assumptions"`
}

// CorrelationSummary describes how an instrument co-moves with the market
// and with other sectors. Beta serves as the market-correlation proxy.
type CorrelationSummary struct {
	MarketCorrelation      float64            `json:"market_correlation"`
	Sector                 string             `json:"sector"`
	SectorCorrelations     map[string]float64 `json:"sector_correlations,omitempty"`
	DiversificationBenefit FactorTier         `json:"diversification_benefit"`
	Analysis               string             `json:"analysis"`
}

// RiskAssessment is the full per-instrument risk picture. Created per
// analysis request, never persisted by the engine; the caller owns it once
// returned. Timestamps are attached by the service layer, not here.
type RiskAssessment struct {
	Ticker      string             `json:"ticker"`
	RiskScore   int                `json:"risk_score"` // 1-10
	RiskLevel   RiskLevel          `json:"risk_level"`
	Metrics     QuantMetrics       `json:"quantitative_metrics"`
	RiskFactors []RiskFactor       `json:"qualitative_factors,omitempty"`
	VaR         VaRReport          `json:"var_analysis"`
	StressTests StressTestReport   `json:"stress_tests"`
	Correlation CorrelationSummary `json:"correlation_analysis"`
}
