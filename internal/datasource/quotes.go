package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/seenimoa/riskcore/pkg/models"
	"github.com/seenimoa/riskcore/pkg/utils"
)

const defaultQuoteBaseURL = "https://query1.finance.yahoo.com/v7/finance/quote"

// QuoteAPI implements the DataSource interface against a Yahoo-compatible
// quote JSON endpoint. Most deployments need no API key; when one is
// configured it is attached to every request.
type QuoteAPI struct {
	baseURL string
	apiKey  string
	cache   *Cache
	limiter *RateLimiter
}

// NewQuoteAPI creates a new quote API data source. The apiKey is optional.
func NewQuoteAPI(apiKey string) *QuoteAPI {
	return &QuoteAPI{
		baseURL: defaultQuoteBaseURL,
		apiKey:  apiKey,
		cache:   NewCache(5 * time.Minute),
		limiter: NewRateLimiter(5, time.Second), // 5 req/s
	}
}

// Name returns the data source name.
func (q *QuoteAPI) Name() string { return "Quote API" }

// --- Quote endpoint response types ---

type quoteResponse struct {
	QuoteResponse struct {
		Result []quoteResult `json:"result"`
		Error  *apiError     `json:"error"`
	} `json:"quoteResponse"`
}

type quoteResult struct {
	Symbol                     string  `json:"symbol"`
	ShortName                  string  `json:"shortName"`
	LongName                   string  `json:"longName"`
	RegularMarketPrice         float64 `json:"regularMarketPrice"`
	RegularMarketChange        float64 `json:"regularMarketChange"`
	RegularMarketChangePercent float64 `json:"regularMarketChangePercent"`
	RegularMarketOpen          float64 `json:"regularMarketOpen"`
	RegularMarketDayHigh       float64 `json:"regularMarketDayHigh"`
	RegularMarketDayLow        float64 `json:"regularMarketDayLow"`
	RegularMarketPreviousClose float64 `json:"regularMarketPreviousClose"`
	RegularMarketVolume        int64   `json:"regularMarketVolume"`
	MarketCap                  float64 `json:"marketCap"`
	FiftyTwoWeekHigh           float64 `json:"fiftyTwoWeekHigh"`
	FiftyTwoWeekLow            float64 `json:"fiftyTwoWeekLow"`
	TrailingPE                 float64 `json:"trailingPE"`
	PriceToBook                float64 `json:"priceToBook"`
	DividendYield              float64 `json:"dividendYield"`
	RegularMarketTime          int64   `json:"regularMarketTime"`
}

type apiError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// --- Public methods ---

// GetQuote returns a near-real-time quote from the quote API.
func (q *QuoteAPI) GetQuote(ctx context.Context, ticker string) (*models.Quote, error) {
	symbol := utils.ToQuoteSymbol(ticker)

	cacheKey := "quote:" + symbol
	if cached, ok := q.cache.Get(cacheKey); ok {
		return cached.(*models.Quote), nil
	}

	if err := q.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	reqURL := fmt.Sprintf("%s?symbols=%s", q.baseURL, url.QueryEscape(symbol))
	headers := map[string]string{"Accept": "application/json"}
	if q.apiKey != "" {
		headers["X-Api-Key"] = q.apiKey
	}

	body, _, err := doGet(ctx, reqURL, headers)
	if err != nil {
		return nil, fmt.Errorf("quote %s: %w", symbol, err)
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var resp quoteResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("parse quote: %w", err)
	}

	if resp.QuoteResponse.Error != nil {
		return nil, fmt.Errorf("quote API error: %s", resp.QuoteResponse.Error.Description)
	}
	if len(resp.QuoteResponse.Result) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrTickerNotFound, ticker)
	}

	quote := quoteFromResult(resp.QuoteResponse.Result[0])
	q.cache.Set(cacheKey, quote)
	return quote, nil
}

// GetFundamentals maps the quote's fundamental fields into a partial
// instrument snapshot. Fields the endpoint did not supply stay unset.
func (q *QuoteAPI) GetFundamentals(ctx context.Context, ticker string) (*models.Instrument, error) {
	quote, err := q.GetQuote(ctx, ticker)
	if err != nil {
		return nil, err
	}

	return &models.Instrument{
		Ticker:        utils.NormalizeTicker(ticker),
		Name:          quote.Name,
		MarketCap:     quote.MarketCap,
		PE:            quote.PE,
		PB:            quote.PB,
		DividendYield: quote.DividendYield,
		LastPrice:     quote.LastPrice,
		LastVolume:    quote.Volume,
	}, nil
}

// GetNews is not supported by the quote API source.
func (q *QuoteAPI) GetNews(_ context.Context, _ string, _ int) ([]models.NewsArticle, error) {
	return nil, ErrNotSupported
}

// --- Helpers ---

func quoteFromResult(r quoteResult) *models.Quote {
	return &models.Quote{
		Ticker:        utils.FromQuoteSymbol(r.Symbol),
		Name:          coalesce(r.LongName, r.ShortName),
		LastPrice:     r.RegularMarketPrice,
		Change:        r.RegularMarketChange,
		ChangePct:     r.RegularMarketChangePercent,
		Open:          r.RegularMarketOpen,
		High:          r.RegularMarketDayHigh,
		Low:           r.RegularMarketDayLow,
		PrevClose:     r.RegularMarketPreviousClose,
		Volume:        r.RegularMarketVolume,
		WeekHigh52:    r.FiftyTwoWeekHigh,
		WeekLow52:     r.FiftyTwoWeekLow,
		MarketCap:     r.MarketCap,
		PE:            r.TrailingPE,
		PB:            r.PriceToBook,
		DividendYield: r.DividendYield * 100, // convert from ratio to percentage
		Timestamp:     time.Unix(r.RegularMarketTime, 0),
	}
}

func coalesce(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
