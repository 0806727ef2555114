package portfolio

import (
	"fmt"
	"testing"

	"github.com/seenimoa/riskcore/pkg/models"
)

func TestDiversificationSingleSector(t *testing.T) {
	holdings := []models.Holding{
		{Instrument: models.Instrument{Ticker: "AAPL", Sector: "Technology"}, Value: 10000},
	}

	// 5 (base) − 2 (≤2 sectors) − 3 (largest share > 50) = 0, clamped to 1
	report := Diversification(holdings)
	if report.Score != 1 {
		t.Errorf("Score = %d, want 1", report.Score)
	}
	if report.Level != models.DiversificationPoor {
		t.Errorf("Level = %s, want Poor", report.Level)
	}
	if report.SectorAllocation["Technology"] != 100 {
		t.Errorf("Technology allocation = %.2f, want 100", report.SectorAllocation["Technology"])
	}
}

func TestDiversificationEightEqualSectors(t *testing.T) {
	sectors := []string{
		"Technology", "Healthcare", "Financial Services", "Consumer Discretionary",
		"Consumer Staples", "Energy", "Utilities", "Real Estate",
	}
	holdings := make([]models.Holding, 0, len(sectors))
	for i, s := range sectors {
		holdings = append(holdings, models.Holding{
			Instrument: models.Instrument{Ticker: fmt.Sprintf("T%d", i), Sector: s},
			Value:      1250,
		})
	}

	// 5 (base) + 2 (≥8 sectors) + 1 (largest 12.5% < 15) = 8 → Excellent
	report := Diversification(holdings)
	if report.Score != 8 {
		t.Errorf("Score = %d, want 8", report.Score)
	}
	if report.Level != models.DiversificationExcellent {
		t.Errorf("Level = %s, want Excellent (score 8 is the boundary)", report.Level)
	}
	for _, s := range sectors {
		if report.SectorAllocation[s] != 12.5 {
			t.Errorf("%s allocation = %.2f, want 12.5", s, report.SectorAllocation[s])
		}
	}
}

func TestDiversificationMissingSectorDefaultsToUnknown(t *testing.T) {
	holdings := []models.Holding{
		{Instrument: models.Instrument{Ticker: "XX"}, Value: 5000},
		{Instrument: models.Instrument{Ticker: "AAPL", Sector: "Technology"}, Value: 5000},
	}

	report := Diversification(holdings)
	if report.SectorAllocation["Unknown"] != 50 {
		t.Errorf("Unknown allocation = %.2f, want 50", report.SectorAllocation["Unknown"])
	}
}

func TestDiversificationScoreBands(t *testing.T) {
	tests := []struct {
		name       string
		numSectors int
		largest    float64
		want       int
	}{
		{"concentrated single sector", 1, 100, 1}, // 5−2−3 = 0 → 1
		{"two heavy sectors", 2, 60, 1},           // 5−2−3 = 0 → 1
		{"three with heavy top", 3, 33.4, 3},      // no sector adj, >30 → −2
		{"five sectors moderate", 5, 25, 5},       // +1, >20 → −1
		{"eight spread", 8, 12.5, 8},              // +2, <15 → +1
		{"ten thin", 10, 10, 8},                   // +2, <15 → +1
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := diversificationScore(tt.numSectors, tt.largest); got != tt.want {
				t.Errorf("diversificationScore(%d, %.1f) = %d, want %d", tt.numSectors, tt.largest, got, tt.want)
			}
		})
	}
}

func TestDiversificationLevelBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  models.DiversificationLevel
	}{
		{10, models.DiversificationExcellent},
		{8, models.DiversificationExcellent},
		{7, models.DiversificationGood},
		{6, models.DiversificationGood},
		{5, models.DiversificationFair},
		{4, models.DiversificationFair},
		{3, models.DiversificationPoor},
		{1, models.DiversificationPoor},
	}
	for _, tt := range tests {
		if got := diversificationLevel(tt.score); got != tt.want {
			t.Errorf("diversificationLevel(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestDiversificationRecommendations(t *testing.T) {
	holdings := []models.Holding{
		{Instrument: models.Instrument{Ticker: "AAPL", Sector: "Technology"}, Value: 6000},
		{Instrument: models.Instrument{Ticker: "MSFT", Sector: "Technology"}, Value: 2000},
		{Instrument: models.Instrument{Ticker: "JNJ", Sector: "Healthcare"}, Value: 2000},
	}

	report := Diversification(holdings)
	if len(report.Recommendations) != 3 {
		t.Fatalf("expected 3 recommendations (capped), got %v", report.Recommendations)
	}
	if report.Recommendations[0] != "Consider reducing Technology allocation (currently 80%)" {
		t.Errorf("recommendations[0] = %q", report.Recommendations[0])
	}
	// Missing majors follow, in fixed order.
	if report.Recommendations[1] != "Consider adding exposure to Financial Services sector" {
		t.Errorf("recommendations[1] = %q", report.Recommendations[1])
	}
	if report.Recommendations[2] != "Consider adding exposure to Consumer Discretionary sector" {
		t.Errorf("recommendations[2] = %q", report.Recommendations[2])
	}
}

func TestDiversificationNoRecommendationsWhenBalanced(t *testing.T) {
	holdings := []models.Holding{
		{Instrument: models.Instrument{Ticker: "AAPL", Sector: "Technology"}, Value: 2500},
		{Instrument: models.Instrument{Ticker: "JNJ", Sector: "Healthcare"}, Value: 2500},
		{Instrument: models.Instrument{Ticker: "JPM", Sector: "Financial Services"}, Value: 2500},
		{Instrument: models.Instrument{Ticker: "AMZN", Sector: "Consumer Discretionary"}, Value: 2500},
	}

	report := Diversification(holdings)
	if len(report.Recommendations) != 0 {
		t.Errorf("expected no recommendations, got %v", report.Recommendations)
	}
}
