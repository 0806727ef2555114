package portfolio

import (
	"fmt"

	"github.com/seenimoa/riskcore/pkg/models"
)

// majorSectors are flagged in recommendations when a portfolio has no
// exposure to them, checked in this order.
var majorSectors = []string{
	"Technology",
	"Healthcare",
	"Financial Services",
	"Consumer Discretionary",
}

const maxDiversificationRecs = 3

// Diversification scores how portfolio value spreads across sectors.
// Holdings without a sector are grouped under "Unknown". Allocation
// percentages sum to 100 within rounding.
func Diversification(holdings []models.Holding) models.DiversificationReport {
	total := models.TotalValue(holdings)

	byValue := make(map[string]float64)
	var order []string // sectors in first-seen holding order
	for _, h := range holdings {
		sector := h.Instrument.Sector
		if sector == "" {
			sector = "Unknown"
		}
		if _, seen := byValue[sector]; !seen {
			order = append(order, sector)
		}
		byValue[sector] += h.Value
	}

	allocation := make(map[string]float64, len(byValue))
	var largest float64
	for sector, value := range byValue {
		pct := round2(value / total * 100)
		allocation[sector] = pct
		if pct > largest {
			largest = pct
		}
	}

	score := diversificationScore(len(byValue), largest)

	return models.DiversificationReport{
		Score:            score,
		Level:            diversificationLevel(score),
		SectorAllocation: allocation,
		Recommendations:  diversificationRecommendations(allocation, order),
	}
}

// diversificationScore starts at 5 and adjusts for sector count and the
// largest single-sector share, clamped to [1,10].
func diversificationScore(numSectors int, largestAllocation float64) int {
	score := 5

	switch {
	case numSectors >= 8:
		score += 2
	case numSectors >= 5:
		score++
	case numSectors <= 2:
		score -= 2
	}

	switch {
	case largestAllocation > 50:
		score -= 3
	case largestAllocation > 30:
		score -= 2
	case largestAllocation > 20:
		score--
	case largestAllocation < 15:
		score++
	}

	if score < 1 {
		return 1
	}
	if score > 10 {
		return 10
	}
	return score
}

func diversificationLevel(score int) models.DiversificationLevel {
	switch {
	case score >= 8:
		return models.DiversificationExcellent
	case score >= 6:
		return models.DiversificationGood
	case score >= 4:
		return models.DiversificationFair
	default:
		return models.DiversificationPoor
	}
}

func diversificationRecommendations(allocation map[string]float64, order []string) []string {
	recs := make([]string, 0, maxDiversificationRecs)

	for _, sector := range order {
		if allocation[sector] > 40 {
			recs = append(recs, fmt.Sprintf("Consider reducing %s allocation (currently %g%%)", sector, allocation[sector]))
		}
	}

	for _, sector := range majorSectors {
		if _, present := allocation[sector]; !present {
			recs = append(recs, fmt.Sprintf("Consider adding exposure to %s sector", sector))
		}
	}

	if len(recs) > maxDiversificationRecs {
		recs = recs[:maxDiversificationRecs]
	}
	return recs
}
