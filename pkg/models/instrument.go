// Package models defines the core data structures used throughout riskcore.
package models

// Instrument is an immutable fundamentals snapshot for a single security,
// supplied by the catalog or a live data source. The engine never mutates it.
//
// Optional numeric fields use 0 to mean "not supplied"; data sources must
// leave unknown values unset rather than writing a measured zero, so that
// the documented defaults apply at computation time.
type Instrument struct {
	Ticker        string   `json:"ticker"`                    // e.g., "AAPL"
	Name          string   `json:"name,omitempty"`            // e.g., "Apple Inc."
	Exchange      string   `json:"exchange,omitempty"`        // "NASDAQ" or "NYSE"
	Sector        string   `json:"sector,omitempty"`          // e.g., "Technology"
	Industry      string   `json:"industry,omitempty"`        // e.g., "Consumer Electronics"
	Description   string   `json:"description,omitempty"`
	MarketCap     float64  `json:"market_cap,omitempty"`      // USD, raw value
	PE            float64  `json:"pe_ratio,omitempty"`        // trailing P/E
	PB            float64  `json:"price_to_book,omitempty"`
	Beta          float64  `json:"beta,omitempty"`
	DebtToEquity  float64  `json:"debt_to_equity,omitempty"`
	ROE           float64  `json:"roe,omitempty"`             // percent, e.g., 25.0
	ProfitMargin  float64  `json:"profit_margin,omitempty"`   // fraction, e.g., 0.266
	DividendYield float64  `json:"dividend_yield,omitempty"`  // percent
	LastPrice     float64  `json:"last_price,omitempty"`      // USD
	LastVolume    int64    `json:"last_volume,omitempty"`
	RiskFactors   []string `json:"risk_factors,omitempty"`    // known business risks
}

// BetaOrDefault returns the instrument's beta, or 1.0 when not supplied.
func (i Instrument) BetaOrDefault() float64 {
	if i.Beta == 0 {
		return 1.0
	}
	return i.Beta
}

// PriceOrDefault returns the latest trade price, or the given fallback when
// no price is available.
func (i Instrument) PriceOrDefault(fallback float64) float64 {
	if i.LastPrice == 0 {
		return fallback
	}
	return i.LastPrice
}

// Holding ties an instrument snapshot to a position value within a portfolio.
// Values are non-negative; total portfolio value is the sum over holdings.
type Holding struct {
	Instrument Instrument `json:"instrument"`
	Value      float64    `json:"value"` // position value in USD
}

// TotalValue sums the position values of a holding set.
func TotalValue(holdings []Holding) float64 {
	var total float64
	for _, h := range holdings {
		total += h.Value
	}
	return total
}
