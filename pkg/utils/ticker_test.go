package utils

import "testing"

func TestNormalizeTicker(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"AAPL", "AAPL"},
		{"aapl", "AAPL"},
		{"apple", "AAPL"},
		{"$TSLA", "TSLA"},
		{" jpm ", "JPM"},
		{"goog", "GOOGL"},
		{"alphabet", "GOOGL"},
		{"procter & gamble", "PG"},
		{"home depot", "HD"},
		{"UNKNOWN", "UNKNOWN"}, // passthrough for unlisted tickers
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := NormalizeTicker(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeTicker(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNormalizeIndexTickers(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"spx", "S&P 500"},
		{"SP500", "S&P 500"},
		{"dow", "DOW JONES"},
		{"nasdaq", "NASDAQ COMPOSITE"},
		{"vix", "VIX"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := NormalizeTicker(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeTicker(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestToQuoteSymbol(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"AAPL", "AAPL"},
		{"apple", "AAPL"},
		{"SPX", "^GSPC"},
		{"DOW", "^DJI"},
		{"NASDAQ", "^IXIC"},
		{"VIX", "^VIX"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ToQuoteSymbol(tt.input)
			if result != tt.expected {
				t.Errorf("ToQuoteSymbol(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFromQuoteSymbol(t *testing.T) {
	if got := FromQuoteSymbol("^GSPC"); got != "S&P 500" {
		t.Errorf("FromQuoteSymbol(^GSPC) = %q, want S&P 500", got)
	}
	if got := FromQuoteSymbol("AAPL"); got != "AAPL" {
		t.Errorf("FromQuoteSymbol(AAPL) = %q, want AAPL", got)
	}
}

func TestIsIndex(t *testing.T) {
	if !IsIndex("VIX") {
		t.Error("VIX should be an index")
	}
	if !IsIndex("spx") {
		t.Error("spx should resolve to an index")
	}
	if !IsIndex("S&P 500") {
		t.Error("S&P 500 should be an index")
	}
	if IsIndex("AAPL") {
		t.Error("AAPL should not be an index")
	}
}
