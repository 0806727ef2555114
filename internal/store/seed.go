package store

import "github.com/seenimoa/riskcore/pkg/models"

// seedInstruments is the built-in US large-cap universe with full
// fundamentals. Prices are deliberately unset; they arrive from live
// sources so catalog-only assessments fall back to the documented
// price default.
var seedInstruments = []models.Instrument{
	{
		Ticker:        "AAPL",
		Name:          "Apple Inc.",
		Exchange:      "NASDAQ",
		Sector:        "Technology",
		Industry:      "Consumer Electronics",
		Description:   "Technology giant focused on consumer electronics",
		MarketCap:     3_000_000_000_000,
		PE:            28.5,
		PB:            45.2,
		Beta:          1.2,
		DebtToEquity:  1.73,
		ROE:           25.0,
		ProfitMargin:  0.266,
		DividendYield: 0.5,
	},
	{
		Ticker:        "MSFT",
		Name:          "Microsoft Corporation",
		Exchange:      "NASDAQ",
		Sector:        "Technology",
		Industry:      "Software",
		Description:   "Leading software and cloud computing company",
		MarketCap:     2_800_000_000_000,
		PE:            32.1,
		PB:            12.8,
		Beta:          0.9,
		DebtToEquity:  0.35,
		ROE:           38.0,
		ProfitMargin:  0.367,
		DividendYield: 0.7,
	},
	{
		Ticker:       "GOOGL",
		Name:         "Alphabet Inc.",
		Exchange:     "NASDAQ",
		Sector:       "Technology",
		Industry:     "Internet Services",
		Description:  "Search engine and digital advertising leader",
		MarketCap:    1_700_000_000_000,
		PE:           24.2,
		PB:           5.2,
		Beta:         1.1,
		DebtToEquity: 0.13,
		ROE:          20.0,
		ProfitMargin: 0.274,
	},
	{
		Ticker:       "AMZN",
		Name:         "Amazon.com Inc.",
		Exchange:     "NASDAQ",
		Sector:       "Consumer Discretionary",
		Industry:     "E-commerce",
		Description:  "E-commerce and cloud computing giant",
		MarketCap:    1_500_000_000_000,
		PE:           50.5,
		PB:           8.1,
		Beta:         1.3,
		DebtToEquity: 0.34,
		ROE:          13.0,
		ProfitMargin: 0.076,
	},
	{
		Ticker:       "TSLA",
		Name:         "Tesla Inc.",
		Exchange:     "NASDAQ",
		Sector:       "Consumer Discretionary",
		Industry:     "Electric Vehicles",
		Description:  "Electric vehicle and clean energy company",
		MarketCap:    800_000_000_000,
		PE:           65.2,
		PB:           12.4,
		Beta:         2.1,
		DebtToEquity: 0.17,
		ROE:          19.0,
		ProfitMargin: 0.096,
	},
	{
		Ticker:        "JPM",
		Name:          "JPMorgan Chase & Co.",
		Exchange:      "NYSE",
		Sector:        "Financial Services",
		Industry:      "Banking",
		Description:   "Major investment bank and financial services firm",
		MarketCap:     450_000_000_000,
		PE:            12.5,
		PB:            1.8,
		Beta:          1.0,
		DebtToEquity:  1.34,
		ROE:           15.0,
		ProfitMargin:  0.32,
		DividendYield: 2.5,
	},
	{
		Ticker:        "JNJ",
		Name:          "Johnson & Johnson",
		Exchange:      "NYSE",
		Sector:        "Healthcare",
		Industry:      "Pharmaceuticals",
		Description:   "Diversified healthcare and pharmaceutical company",
		MarketCap:     400_000_000_000,
		PE:            15.8,
		PB:            5.9,
		Beta:          0.7,
		DebtToEquity:  0.46,
		ROE:           25.0,
		ProfitMargin:  0.224,
		DividendYield: 2.7,
	},
	{
		Ticker:        "V",
		Name:          "Visa Inc.",
		Exchange:      "NYSE",
		Sector:        "Financial Services",
		Industry:      "Payment Processing",
		Description:   "Global payment technology company",
		MarketCap:     500_000_000_000,
		PE:            35.2,
		PB:            14.2,
		Beta:          0.8,
		DebtToEquity:  0.25,
		ROE:           38.0,
		ProfitMargin:  0.538,
		DividendYield: 0.6,
	},
	{
		Ticker:        "HD",
		Name:          "The Home Depot Inc.",
		Exchange:      "NYSE",
		Sector:        "Consumer Discretionary",
		Industry:      "Home Improvement",
		Description:   "Home improvement retail chain",
		MarketCap:     350_000_000_000,
		PE:            22.1,
		PB:            1340.5,
		Beta:          1.0,
		DebtToEquity:  2.56,
		ROE:           45.0,
		ProfitMargin:  0.106,
		DividendYield: 2.4,
	},
	{
		Ticker:        "PG",
		Name:          "Procter & Gamble Co.",
		Exchange:      "NYSE",
		Sector:        "Consumer Staples",
		Industry:      "Household Products",
		Description:   "Consumer goods and household products",
		MarketCap:     380_000_000_000,
		PE:            25.8,
		PB:            7.8,
		Beta:          0.6,
		DebtToEquity:  0.49,
		ROE:           25.0,
		ProfitMargin:  0.217,
		DividendYield: 2.4,
	},
}
