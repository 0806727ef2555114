package models

import "time"

// InstrumentReview is the complete output of a single-instrument
// assessment: the instrument as analyzed, its risk assessment, the
// suitability verdict for the client, and the compliance review around
// it. Timestamps are attached by the service layer.
type InstrumentReview struct {
	Instrument  *Instrument        `json:"instrument"`
	Assessment  *RiskAssessment    `json:"risk_assessment"`
	Suitability SuitabilityVerdict `json:"suitability"`
	Compliance  ComplianceReview   `json:"compliance"`
	Mitigation  []string           `json:"mitigation_suggestions,omitempty"`
	Monitoring  []string           `json:"monitoring_recommendations,omitempty"`
	Timestamp   time.Time          `json:"timestamp"`
}

// PortfolioReview is the complete output of a portfolio analysis.
type PortfolioReview struct {
	Analysis    *PortfolioAnalysis `json:"portfolio_analysis"`
	Suitability SuitabilityVerdict `json:"suitability"`
	Compliance  ComplianceReview   `json:"compliance"`
	ActionItems []string           `json:"action_items,omitempty"`
	Timestamp   time.Time          `json:"timestamp"`
}

// StressReview is the stress-test slice of an assessment, served without
// the suitability machinery.
type StressReview struct {
	Ticker      string           `json:"ticker"`
	VaR         VaRReport        `json:"var_analysis"`
	StressTests StressTestReport `json:"stress_tests"`
	Timestamp   time.Time        `json:"timestamp"`
}
