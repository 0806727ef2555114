// Package suitability evaluates investments and portfolios against client
// risk-tolerance policies and assembles the compliance review around the
// verdict. Evaluation is total: an internal fault becomes suitable=false
// with a manual-review warning, never an error past this boundary.
package suitability

import (
	"strings"

	"github.com/seenimoa/riskcore/pkg/models"
)

// Concentration limits are shared by all tiers.
const (
	maxSingleSecurityShare = 0.20
	maxSectorShare         = 0.35
	maxAssetClassShare     = 0.80
)

var tierPolicies = map[models.RiskToleranceTier]models.TierPolicy{
	models.TierConservative: {
		Tier:                   models.TierConservative,
		MaxRiskScore:           4,
		MaxVolatility:          1.2,
		MaxSingleSecurityShare: maxSingleSecurityShare,
		MaxSectorShare:         maxSectorShare,
		MaxAssetClassShare:     maxAssetClassShare,
	},
	models.TierModerate: {
		Tier:                   models.TierModerate,
		MaxRiskScore:           7,
		MaxVolatility:          1.5,
		MaxSingleSecurityShare: maxSingleSecurityShare,
		MaxSectorShare:         maxSectorShare,
		MaxAssetClassShare:     maxAssetClassShare,
	},
	models.TierAggressive: {
		Tier:                   models.TierAggressive,
		MaxRiskScore:           10,
		MaxVolatility:          2.0,
		MaxSingleSecurityShare: maxSingleSecurityShare,
		MaxSectorShare:         maxSectorShare,
		MaxAssetClassShare:     maxAssetClassShare,
	},
}

var tierOrder = []models.RiskToleranceTier{
	models.TierConservative,
	models.TierModerate,
	models.TierAggressive,
}

// ResolvePolicy maps a tier name to its numeric thresholds. Case and
// surrounding whitespace are normalized; anything else is an error.
func ResolvePolicy(tier models.RiskToleranceTier) (models.TierPolicy, error) {
	normalized := models.RiskToleranceTier(strings.ToLower(strings.TrimSpace(string(tier))))
	policy, ok := tierPolicies[normalized]
	if !ok {
		return models.TierPolicy{}, &models.PolicyResolutionError{Tier: string(tier)}
	}
	return policy, nil
}

// Policies lists the three fixed tier policies, conservative first.
func Policies() []models.TierPolicy {
	out := make([]models.TierPolicy, 0, len(tierOrder))
	for _, tier := range tierOrder {
		out = append(out, tierPolicies[tier])
	}
	return out
}
