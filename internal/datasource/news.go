package datasource

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"github.com/seenimoa/riskcore/pkg/models"
	"github.com/seenimoa/riskcore/pkg/utils"
)

// NewsSource represents a financial news feed configuration.
type NewsSource struct {
	Name    string
	RSSURL  string
	BaseURL string
}

// DefaultNewsSources lists the configured US financial news RSS feeds.
var DefaultNewsSources = []NewsSource{
	{
		Name:    "CNBC Markets",
		RSSURL:  "https://www.cnbc.com/id/20910258/device/rss/rss.html",
		BaseURL: "https://www.cnbc.com",
	},
	{
		Name:    "MarketWatch",
		RSSURL:  "https://feeds.content.dowjones.io/public/rss/mw_topstories",
		BaseURL: "https://www.marketwatch.com",
	},
	{
		Name:    "Yahoo Finance",
		RSSURL:  "https://finance.yahoo.com/news/rssindex",
		BaseURL: "https://finance.yahoo.com",
	},
	{
		Name:    "Seeking Alpha",
		RSSURL:  "https://seekingalpha.com/market_currents.xml",
		BaseURL: "https://seekingalpha.com",
	},
}

// News implements financial news fetching from US market feeds.
type News struct {
	sources []NewsSource
	cache   *Cache
	limiter *RateLimiter
	parser  *gofeed.Parser
}

// NewNews creates a news data source with the default US feeds.
func NewNews() *News {
	return NewNewsWithSources(DefaultNewsSources)
}

// NewNewsWithSources creates a news data source with custom sources.
func NewNewsWithSources(sources []NewsSource) *News {
	return &News{
		sources: sources,
		cache:   NewCache(10 * time.Minute),
		limiter: NewRateLimiter(2, time.Second), // conservative: 2 req/s
		parser:  gofeed.NewParser(),
	}
}

// NewNewsWithFeeds creates a news data source from plain feed URLs, as
// configured under data.news_feeds. Source names derive from the host.
func NewNewsWithFeeds(feeds []string) *News {
	if len(feeds) == 0 {
		return NewNews()
	}
	sources := make([]NewsSource, 0, len(feeds))
	for _, feed := range feeds {
		sources = append(sources, NewsSource{
			Name:   feedHost(feed),
			RSSURL: feed,
		})
	}
	return NewNewsWithSources(sources)
}

// Name returns the data source name.
func (n *News) Name() string { return "Market News" }

// --- Public methods ---

// GetMarketNews returns recent market news from all configured sources.
func (n *News) GetMarketNews(ctx context.Context, limit int) ([]models.NewsArticle, error) {
	cacheKey := fmt.Sprintf("news:market:%d", limit)
	if cached, ok := n.cache.Get(cacheKey); ok {
		return cached.([]models.NewsArticle), nil
	}

	var allArticles []models.NewsArticle
	for _, src := range n.sources {
		articles, err := n.fetchRSS(ctx, src)
		if err != nil {
			// Non-critical: skip failed sources.
			continue
		}
		allArticles = append(allArticles, articles...)
	}

	sortArticlesByDate(allArticles)

	if limit > 0 && len(allArticles) > limit {
		allArticles = allArticles[:limit]
	}

	n.cache.Set(cacheKey, allArticles)
	return allArticles, nil
}

// GetInstrumentNews returns news articles related to a specific ticker.
func (n *News) GetInstrumentNews(ctx context.Context, ticker string, limit int) ([]models.NewsArticle, error) {
	symbol := utils.NormalizeTicker(ticker)

	cacheKey := fmt.Sprintf("news:ticker:%s:%d", symbol, limit)
	if cached, ok := n.cache.Get(cacheKey); ok {
		return cached.([]models.NewsArticle), nil
	}

	// First get all market news, then filter by ticker mention.
	allNews, err := n.GetMarketNews(ctx, 0)
	if err != nil {
		return nil, err
	}

	filtered := filterArticles(allNews, tickerKeywords(symbol))

	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}

	n.cache.Set(cacheKey, filtered)
	return filtered, nil
}

// GetSectorNews returns news related to a market sector.
func (n *News) GetSectorNews(ctx context.Context, sector string, limit int) ([]models.NewsArticle, error) {
	cacheKey := fmt.Sprintf("news:sector:%s:%d", sector, limit)
	if cached, ok := n.cache.Get(cacheKey); ok {
		return cached.([]models.NewsArticle), nil
	}

	allNews, err := n.GetMarketNews(ctx, 0)
	if err != nil {
		return nil, err
	}

	filtered := filterArticles(allNews, []string{strings.ToLower(sector)})

	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}

	n.cache.Set(cacheKey, filtered)
	return filtered, nil
}

// --- DataSource interface (partial) ---

// GetQuote is not supported by the news source.
func (n *News) GetQuote(_ context.Context, _ string) (*models.Quote, error) {
	return nil, ErrNotSupported
}

// GetFundamentals is not supported by the news source.
func (n *News) GetFundamentals(_ context.Context, _ string) (*models.Instrument, error) {
	return nil, ErrNotSupported
}

// GetNews returns market news for an empty ticker, instrument news otherwise.
func (n *News) GetNews(ctx context.Context, ticker string, limit int) ([]models.NewsArticle, error) {
	if ticker == "" {
		return n.GetMarketNews(ctx, limit)
	}
	return n.GetInstrumentNews(ctx, ticker, limit)
}

// --- Internal helpers ---

// fetchRSS parses an RSS feed and returns articles.
func (n *News) fetchRSS(ctx context.Context, src NewsSource) ([]models.NewsArticle, error) {
	if err := n.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	feed, err := n.parser.ParseURLWithContext(src.RSSURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse RSS %s: %w", src.Name, err)
	}

	articles := make([]models.NewsArticle, 0, len(feed.Items))
	for _, item := range feed.Items {
		a := models.NewsArticle{
			Title:   item.Title,
			URL:     item.Link,
			Source:  src.Name,
			Summary: cleanHTML(item.Description),
		}
		if item.PublishedParsed != nil {
			a.PublishedAt = *item.PublishedParsed
		}
		articles = append(articles, a)
	}

	return articles, nil
}

// cleanHTML strips HTML tags from a string using goquery.
func cleanHTML(s string) string {
	if s == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<body>" + s + "</body>"))
	if err != nil {
		return s
	}
	return strings.TrimSpace(doc.Text())
}

// feedHost extracts a display name from a feed URL.
func feedHost(feed string) string {
	u, err := url.Parse(feed)
	if err != nil || u.Host == "" {
		return feed
	}
	return strings.TrimPrefix(u.Host, "www.")
}

// tickerKeywords returns search keywords for a ticker.
// For example, "AAPL" → ["aapl", "apple"].
func tickerKeywords(ticker string) []string {
	t := strings.ToLower(ticker)

	var keywords []string
	// Single-letter tickers like V match almost anything as substrings;
	// rely on the company-name keywords only.
	if len(t) >= 2 {
		keywords = append(keywords, t)
	}

	nameMap := map[string][]string{
		"aapl":  {"apple"},
		"msft":  {"microsoft"},
		"googl": {"alphabet", "google"},
		"amzn":  {"amazon"},
		"tsla":  {"tesla", "elon musk"},
		"jpm":   {"jpmorgan", "jp morgan"},
		"jnj":   {"johnson & johnson"},
		"v":     {"visa"},
		"hd":    {"home depot"},
		"pg":    {"procter & gamble"},
		"nvda":  {"nvidia"},
		"meta":  {"meta platforms", "facebook"},
		"nflx":  {"netflix"},
		"dis":   {"disney"},
		"wmt":   {"walmart"},
		"xom":   {"exxon"},
		"ko":    {"coca-cola", "coca cola"},
		"pfe":   {"pfizer"},
		"bac":   {"bank of america"},
		"gs":    {"goldman sachs"},
	}

	if extra, ok := nameMap[t]; ok {
		keywords = append(keywords, extra...)
	}

	return keywords
}

// filterArticles keeps articles whose title or summary mentions any keyword.
func filterArticles(articles []models.NewsArticle, keywords []string) []models.NewsArticle {
	var filtered []models.NewsArticle
	for _, a := range articles {
		if matchesAny(a.Title+" "+a.Summary, keywords) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// matchesAny checks if text contains any of the keywords (case-insensitive).
func matchesAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// sortArticlesByDate sorts articles by published date (newest first).
// Simple insertion sort — fine for small slices.
func sortArticlesByDate(articles []models.NewsArticle) {
	for i := 1; i < len(articles); i++ {
		key := articles[i]
		j := i - 1
		for j >= 0 && articles[j].PublishedAt.Before(key.PublishedAt) {
			articles[j+1] = articles[j]
			j--
		}
		articles[j+1] = key
	}
}
