package models

// RiskToleranceTier names one of the three fixed client risk-tolerance
// policies. Tiers are process-wide constants: never created or destroyed,
// only referenced.
type RiskToleranceTier string

const (
	TierConservative RiskToleranceTier = "conservative"
	TierModerate     RiskToleranceTier = "moderate"
	TierAggressive   RiskToleranceTier = "aggressive"
)

// TierPolicy is the resolved numeric threshold set for one tier.
type TierPolicy struct {
	Tier                   RiskToleranceTier `json:"tier"`
	MaxRiskScore           int               `json:"max_risk_score"`            // 1-10 scale
	MaxVolatility          float64           `json:"max_volatility"`            // beta ceiling
	MaxSingleSecurityShare float64           `json:"max_single_security_share"` // fraction of portfolio
	MaxSectorShare         float64           `json:"max_sector_share"`          // fraction of portfolio
	MaxAssetClassShare     float64           `json:"max_asset_class_share"`     // fraction of portfolio
}

// SuitabilityCheck records one pass/fail policy comparison with the
// numeric comparison spelled out in Notes.
type SuitabilityCheck struct {
	Name   string `json:"name"`   // e.g., "risk_score"
	Passed bool   `json:"passed"`
	Notes  string `json:"notes"`  // e.g., "Investment risk score 6 vs client max 5"
}

// SuitabilityVerdict is the pass/fail outcome of evaluating an investment
// or portfolio against a client's tier policy. Overall suitability is the
// AND of all applicable checks; documentation completeness never gates it.
type SuitabilityVerdict struct {
	Suitable       bool               `json:"suitable"`
	Reasoning      string             `json:"reasoning"`
	Checks         []SuitabilityCheck `json:"checks,omitempty"`
	Warnings       []string           `json:"warnings,omitempty"`
	ViolatedLimits []string           `json:"violated_limits,omitempty"`
}

// DocumentationStatus tracks one required compliance document.
type DocumentationStatus struct {
	Document string `json:"document"` // e.g., "investment_rationale"
	Present  bool   `json:"present"`
	Notes    string `json:"notes"`    // e.g., "✓ Investment Rationale"
}

// ComplianceReview bundles the suitability verdict with documentation
// status, disclosures, regulations, and review recommendations. Missing
// documentation adds warnings and recommendations but does not flip
// OverallSuitable.
type ComplianceReview struct {
	OverallSuitable      bool                  `json:"overall_suitable"`
	RequiresManualReview bool                  `json:"requires_manual_review,omitempty"`
	Suitability          SuitabilityVerdict    `json:"suitability"`
	ConcentrationChecks  []SuitabilityCheck    `json:"concentration_checks,omitempty"`
	Documentation        []DocumentationStatus `json:"documentation,omitempty"`
	MissingDocuments     []string              `json:"missing_documents,omitempty"`
	RequiredDisclosures  []string              `json:"required_disclosures,omitempty"`
	Regulations          []string              `json:"applicable_regulations,omitempty"`
	Recommendations      []string              `json:"recommendations,omitempty"`
}
