package utils

import "testing"

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{0, "$0.00"},
		{100, "$100.00"},
		{1000, "$1,000.00"},
		{12345, "$12,345.00"},
		{1234567, "$1,234,567.00"},
		{2847.50, "$2,847.50"},
		{-1234.56, "-$1,234.56"},
		{100000, "$100,000.00"},
		{10000000, "$10,000,000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := FormatUSD(tt.input)
			if result != tt.expected {
				t.Errorf("FormatUSD(%f) = %s, want %s", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFormatUSDCompact(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{500, "$500.00"},
		{1500, "$1.5K"},
		{1927345, "$1.93M"},
		{2500000000, "$2.5B"},
		{3000000000000, "$3T"},
		{-1500000, "-$1.5M"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := FormatUSDCompact(tt.input)
			if result != tt.expected {
				t.Errorf("FormatUSDCompact(%f) = %s, want %s", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFormatPct(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{2.45, "+2.45%"},
		{-1.23, "-1.23%"},
		{0.0, "+0.00%"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := FormatPct(tt.input)
			if result != tt.expected {
				t.Errorf("FormatPct(%f) = %s, want %s", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFormatVolume(t *testing.T) {
	tests := []struct {
		input    int64
		expected string
	}{
		{999, "999"},
		{1500, "1.50K"},
		{1500000, "1.50M"},
		{25000000000, "25.00B"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := FormatVolume(tt.input)
			if result != tt.expected {
				t.Errorf("FormatVolume(%d) = %s, want %s", tt.input, result, tt.expected)
			}
		})
	}
}

func TestRounding(t *testing.T) {
	if got := Round2(4.1184); got != 4.12 {
		t.Errorf("Round2(4.1184) = %f, want 4.12", got)
	}
	if got := Round2(2847.456); got != 2847.46 {
		t.Errorf("Round2(2847.456) = %f, want 2847.46", got)
	}
	if got := Round3(0.34567); got != 0.346 {
		t.Errorf("Round3(0.34567) = %f, want 0.346", got)
	}
}
