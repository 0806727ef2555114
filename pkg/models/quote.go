package models

import "time"

// Quote is a point-in-time price observation for a single ticker, as
// returned by the live quote source. Fundamental fields are populated
// only when the source supplies them.
type Quote struct {
	Ticker        string    `json:"ticker"`
	Name          string    `json:"name,omitempty"`
	LastPrice     float64   `json:"last_price"`
	Change        float64   `json:"change"`
	ChangePct     float64   `json:"change_pct"`
	Open          float64   `json:"open,omitempty"`
	High          float64   `json:"high,omitempty"`
	Low           float64   `json:"low,omitempty"`
	PrevClose     float64   `json:"prev_close,omitempty"`
	Volume        int64     `json:"volume,omitempty"`
	WeekHigh52    float64   `json:"week_high_52,omitempty"`
	WeekLow52     float64   `json:"week_low_52,omitempty"`
	MarketCap     float64   `json:"market_cap,omitempty"`
	PE            float64   `json:"pe,omitempty"`
	PB            float64   `json:"pb,omitempty"`
	DividendYield float64   `json:"dividend_yield,omitempty"` // percent
	Timestamp     time.Time `json:"timestamp"`
}

// NewsArticle represents a single market news article.
type NewsArticle struct {
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	Summary     string    `json:"summary,omitempty"`
	PublishedAt time.Time `json:"published_at"`
	Tickers     []string  `json:"tickers,omitempty"` // related tickers
}
