package utils

import (
	"strings"
)

// Common US ticker aliases and normalizations.
var tickerAliases = map[string]string{
	"AAPL":              "AAPL",
	"APPLE":             "AAPL",
	"MSFT":              "MSFT",
	"MICROSOFT":         "MSFT",
	"GOOGL":             "GOOGL",
	"GOOG":              "GOOGL",
	"GOOGLE":            "GOOGL",
	"ALPHABET":          "GOOGL",
	"AMZN":              "AMZN",
	"AMAZON":            "AMZN",
	"TSLA":              "TSLA",
	"TESLA":             "TSLA",
	"JPM":               "JPM",
	"JPMORGAN":          "JPM",
	"JP MORGAN":         "JPM",
	"JNJ":               "JNJ",
	"JOHNSON & JOHNSON": "JNJ",
	"V":                 "V",
	"VISA":              "V",
	"HD":                "HD",
	"HOME DEPOT":        "HD",
	"PG":                "PG",
	"PROCTER & GAMBLE":  "PG",
	"P&G":               "PG",
	"NVDA":              "NVDA",
	"NVIDIA":            "NVDA",
	"META":              "META",
	"FACEBOOK":          "META",
	"NFLX":              "NFLX",
	"NETFLIX":           "NFLX",
	"DIS":               "DIS",
	"DISNEY":            "DIS",
	"WMT":               "WMT",
	"WALMART":           "WMT",
	"XOM":               "XOM",
	"EXXON":             "XOM",
	"CVX":               "CVX",
	"CHEVRON":           "CVX",
	"KO":                "KO",
	"COCA-COLA":         "KO",
	"COCA COLA":         "KO",
	"PFE":               "PFE",
	"PFIZER":            "PFE",
	"UNH":               "UNH",
	"UNITEDHEALTH":      "UNH",
	"BAC":               "BAC",
	"BANK OF AMERICA":   "BAC",
	"GS":                "GS",
	"GOLDMAN":           "GS",
	"GOLDMAN SACHS":     "GS",
}

// US index tickers.
var indexTickers = map[string]string{
	"SPX":     "S&P 500",
	"SP500":   "S&P 500",
	"S&P 500": "S&P 500",
	"S&P500":  "S&P 500",
	"DJI":     "DOW JONES",
	"DJIA":    "DOW JONES",
	"DOW":     "DOW JONES",
	"IXIC":    "NASDAQ COMPOSITE",
	"NASDAQ":  "NASDAQ COMPOSITE",
	"VIX":     "VIX",
}

// NormalizeTicker normalizes a user-input ticker to its canonical form.
// It handles company-name aliases, uppercasing, and whitespace.
func NormalizeTicker(ticker string) string {
	ticker = strings.TrimSpace(strings.ToUpper(ticker))

	// Remove $ prefix if present (common in chat)
	ticker = strings.TrimPrefix(ticker, "$")

	// Check if it's an index
	if idx, ok := indexTickers[ticker]; ok {
		return idx
	}

	// Check aliases
	if canonical, ok := tickerAliases[ticker]; ok {
		return canonical
	}

	// Already normalized — return as-is
	return ticker
}

// ToQuoteSymbol converts a normalized ticker to the symbol form used by
// the quote APIs. Index names map to their caret symbols; equities pass
// through unchanged.
func ToQuoteSymbol(ticker string) string {
	ticker = NormalizeTicker(ticker)

	switch ticker {
	case "S&P 500":
		return "^GSPC"
	case "DOW JONES":
		return "^DJI"
	case "NASDAQ COMPOSITE":
		return "^IXIC"
	case "VIX":
		return "^VIX"
	}

	return ticker
}

// FromQuoteSymbol strips the caret prefix from an index symbol.
func FromQuoteSymbol(symbol string) string {
	switch symbol {
	case "^GSPC":
		return "S&P 500"
	case "^DJI":
		return "DOW JONES"
	case "^IXIC":
		return "NASDAQ COMPOSITE"
	case "^VIX":
		return "VIX"
	}
	return strings.TrimPrefix(symbol, "^")
}

// IsIndex checks if the ticker is an index (not a stock).
func IsIndex(ticker string) bool {
	ticker = NormalizeTicker(ticker)
	_, ok := indexTickers[ticker]
	if ok {
		return true
	}
	// Also check if it was already resolved to an index name
	for _, v := range indexTickers {
		if v == ticker {
			return true
		}
	}
	return false
}
