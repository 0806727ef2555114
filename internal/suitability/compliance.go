package suitability

import (
	"fmt"
	"strings"

	"github.com/seenimoa/riskcore/pkg/models"
)

// Required documents, verified in this order. Display names match the
// ✓/✗ notes rendered for each.
var requiredDocuments = []struct {
	key     string
	display string
}{
	{"investment_rationale", "Investment Rationale"},
	{"risk_assessment", "Risk Assessment"},
	{"suitability_analysis", "Suitability Analysis"},
	{"client_acknowledgment", "Client Acknowledgment"},
}

var baseDisclosures = []string{
	"Material investment risks including potential loss of principal",
	"Past performance does not guarantee future results",
	"Fees and expenses associated with the investment",
	"Conflicts of interest, if any",
}

// DocumentationInput states which caller-supplied documents accompany a
// request. The risk assessment and suitability analysis are produced by
// the engine itself and counted automatically.
type DocumentationInput struct {
	HasRationale      bool
	HasAcknowledgment bool
}

// Review assembles the full compliance picture around a suitability
// verdict. Missing documentation adds warnings and recommendations but
// never flips the suitability boolean.
func Review(verdict models.SuitabilityVerdict, concentration []models.SuitabilityCheck,
	riskScore int, sector string, docs DocumentationInput) models.ComplianceReview {

	documentation, missing := VerifyDocumentation(docs)
	recommendations := ComplianceRecommendations(verdict, concentration, missing)

	return models.ComplianceReview{
		OverallSuitable:      verdict.Suitable && allPassed(concentration),
		RequiresManualReview: hasComplianceIssues(verdict, concentration, missing),
		Suitability:          verdict,
		ConcentrationChecks:  concentration,
		Documentation:        documentation,
		MissingDocuments:     missing,
		RequiredDisclosures:  RequiredDisclosures(riskScore, sector),
		Regulations:          ApplicableRegulations(),
		Recommendations:      recommendations,
	}
}

// VerifyDocumentation reports the presence of each required document and
// lists the missing ones.
func VerifyDocumentation(docs DocumentationInput) ([]models.DocumentationStatus, []string) {
	statuses := make([]models.DocumentationStatus, 0, len(requiredDocuments))
	var missing []string

	for _, doc := range requiredDocuments {
		var present bool
		switch doc.key {
		case "investment_rationale":
			present = docs.HasRationale
		case "risk_assessment", "suitability_analysis":
			present = true // produced by this engine
		case "client_acknowledgment":
			present = docs.HasAcknowledgment
		}

		mark := "✗"
		if present {
			mark = "✓"
		}
		statuses = append(statuses, models.DocumentationStatus{
			Document: doc.key,
			Present:  present,
			Notes:    fmt.Sprintf("%s %s", mark, doc.display),
		})
		if !present {
			missing = append(missing, doc.key)
		}
	}

	return statuses, missing
}

// RequiredDisclosures returns the disclosures owed for an investment:
// four standing items plus risk- and sector-specific additions.
func RequiredDisclosures(riskScore int, sector string) []string {
	disclosures := make([]string, len(baseDisclosures))
	copy(disclosures, baseDisclosures)

	if riskScore >= 7 {
		disclosures = append(disclosures, "HIGH RISK: Investment carries elevated risk of loss")
	}
	if strings.EqualFold(sector, "technology") {
		disclosures = append(disclosures, "Technology sector investments may be subject to rapid changes and volatility")
	}
	return disclosures
}

// ApplicableRegulations lists the regulatory requirements every review
// is conducted under.
func ApplicableRegulations() []string {
	return []string{
		"FINRA Rule 2111 (Suitability)",
		"SEC Investment Advisers Act Rule 206(4)-7",
		"SEC Regulation Best Interest (Reg BI)",
		"FINRA Rule 3110 (Supervision)",
		"SOC2 Security and Privacy Controls",
	}
}

// ComplianceRecommendations turns failed checks and missing documents into
// actionable items. Any issue prepends the review-required flag; a clean
// pass yields the standard follow-up trio.
func ComplianceRecommendations(verdict models.SuitabilityVerdict,
	concentration []models.SuitabilityCheck, missingDocs []string) []string {

	var recs []string

	for _, check := range verdict.Checks {
		if !check.Passed {
			recs = append(recs, "SUITABILITY CONCERN: "+check.Notes)
		}
	}
	for _, check := range concentration {
		if !check.Passed {
			recs = append(recs, "CONCENTRATION LIMIT EXCEEDED: "+check.Notes)
		}
	}
	if len(missingDocs) > 0 {
		recs = append(recs, "MISSING DOCUMENTATION: "+strings.Join(missingDocs, ", "))
	}

	if len(recs) == 0 {
		return []string{
			"All compliance checks passed",
			"Ensure client acknowledgment is obtained before execution",
			"Schedule follow-up review in 30 days",
		}
	}
	return append([]string{"COMPLIANCE REVIEW REQUIRED before proceeding"}, recs...)
}

func hasComplianceIssues(verdict models.SuitabilityVerdict,
	concentration []models.SuitabilityCheck, missingDocs []string) bool {
	return !verdict.Suitable || !allPassed(concentration) || len(missingDocs) > 0
}
