package models

// DiversificationLevel labels a 1-10 diversification score.
type DiversificationLevel string

const (
	DiversificationExcellent DiversificationLevel = "Excellent" // score ≥ 8
	DiversificationGood      DiversificationLevel = "Good"      // score ≥ 6
	DiversificationFair      DiversificationLevel = "Fair"      // score ≥ 4
	DiversificationPoor      DiversificationLevel = "Poor"      // score < 4
)

// DiversificationReport scores how well portfolio value is spread across
// sectors. SectorAllocation percentages sum to 100 within rounding.
type DiversificationReport struct {
	Score            int                  `json:"score"` // 1-10
	Level            DiversificationLevel `json:"level"`
	SectorAllocation map[string]float64   `json:"sector_allocation"` // sector → percent
	Recommendations  []string             `json:"recommendations,omitempty"`
}

// PortfolioCorrelation is the value-weighted average pairwise sector
// correlation across all holdings.
type PortfolioCorrelation struct {
	AverageCorrelation float64    `json:"average_correlation"`
	CorrelationRisk    FactorTier `json:"correlation_risk"`
	Analysis           string     `json:"analysis"`
}

// PortfolioVaR is the parametric VaR estimate at portfolio scale.
type PortfolioVaR struct {
	VaR951Day      float64 `json:"portfolio_var_95_1day"`         // USD
	VaR951DayPct   float64 `json:"portfolio_var_95_1day_percent"` // percent of value
	PortfolioValue float64 `json:"portfolio_value"`
	Methodology    string  `json:"methodology"`
}

// PortfolioAnalysis is the full output of the portfolio analyzer. It is
// derived solely from the holding set passed in and recomputed fully on
// every call; identical input yields identical output.
type PortfolioAnalysis struct {
	TotalValue           float64               `json:"total_value"`
	NumberOfPositions    int                   `json:"number_of_positions"`
	AveragePositionSize  float64               `json:"average_position_size"`
	PortfolioBeta        float64               `json:"portfolio_beta"`
	WeightedPE           float64               `json:"weighted_pe"`
	WeightedDebtToEquity float64               `json:"weighted_debt_to_equity"`
	ConcentrationRatio   float64               `json:"concentration_ratio"` // [0,1]
	RiskConcentration    FactorTier            `json:"risk_concentration"`
	Diversification      DiversificationReport `json:"diversification"`
	Correlation          PortfolioCorrelation  `json:"correlation"`
	VaR                  PortfolioVaR          `json:"var"`
	HealthScore          int                   `json:"health_score"` // 1-100
	ActionItems          []string              `json:"action_items"`
	OptimizationRecs     []string              `json:"optimization_recommendations,omitempty"`
}
