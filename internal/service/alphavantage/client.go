package alphavantage

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"StockScope/internal/domain/models"
	xhttp "StockScope/pkg/http"
	"StockScope/pkg/util"
)

const (
	DefaultBaseURL = "https://www.alphavantage.co/query"

	dailySeriesDays = 30
	newsFetchLimit  = 50
)

// Client talks to the Alpha Vantage HTTP API and translates its responses
// into domain models.
type Client struct {
	apiKey  string
	baseURL string
	http    *xhttp.Client
}

func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		http:    xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

func (c *Client) query(ctx context.Context, params map[string]string, dest interface{}) error {
	params["apikey"] = c.apiKey
	return c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:      "GET",
		URL:         c.baseURL,
		QueryParams: params,
	}, dest)
}

// DailyPrices returns the last 30 daily closes for symbol, oldest first.
func (c *Client) DailyPrices(ctx context.Context, symbol string) ([]models.PricePoint, error) {
	var resp dailyResponse
	err := c.query(ctx, map[string]string{
		"function": "TIME_SERIES_DAILY",
		"symbol":   symbol,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if err := upstreamError(resp.Note, resp.ErrMsg); err != nil {
		return nil, err
	}
	if len(resp.TimeSeries) == 0 {
		return nil, fmt.Errorf("no daily series for %s", symbol)
	}

	points := seriesToPoints(resp.TimeSeries)
	if len(points) > dailySeriesDays {
		points = points[len(points)-dailySeriesDays:]
	}
	out := make([]models.PricePoint, len(points))
	for i, p := range points {
		out[i] = models.PricePoint{Date: p.Date, Close: p.Value}
	}
	return out, nil
}

// HistoricalSeries returns chart points for symbol over the given timeframe.
// Longer timeframes use coarser upstream series to keep point counts sane.
func (c *Client) HistoricalSeries(ctx context.Context, symbol, timeframe string) ([]models.ChartDataPoint, error) {
	var (
		series map[string]timeSeriesEntry
		note   string
		errMsg string
	)

	switch timeframe {
	case "5y", "max":
		var resp monthlyResponse
		if err := c.query(ctx, map[string]string{
			"function": "TIME_SERIES_MONTHLY",
			"symbol":   symbol,
		}, &resp); err != nil {
			return nil, err
		}
		series, note, errMsg = resp.TimeSeries, resp.Note, resp.ErrMsg
	case "1y", "2y":
		var resp weeklyResponse
		if err := c.query(ctx, map[string]string{
			"function": "TIME_SERIES_WEEKLY",
			"symbol":   symbol,
		}, &resp); err != nil {
			return nil, err
		}
		series, note, errMsg = resp.TimeSeries, resp.Note, resp.ErrMsg
	default:
		var resp dailyResponse
		if err := c.query(ctx, map[string]string{
			"function":   "TIME_SERIES_DAILY",
			"symbol":     symbol,
			"outputsize": "full",
		}, &resp); err != nil {
			return nil, err
		}
		series, note, errMsg = resp.TimeSeries, resp.Note, resp.ErrMsg
	}

	if err := upstreamError(note, errMsg); err != nil {
		return nil, err
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("no historical series for %s", symbol)
	}

	points := seriesToPoints(series)
	cutoff := util.ISODate(lookbackStart(time.Now(), timeframe))
	filtered := points[:0]
	for _, p := range points {
		if p.Date >= cutoff {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// Overview fetches the company overview for symbol.
func (c *Client) Overview(ctx context.Context, symbol string) (models.StockOverview, error) {
	var resp overviewResponse
	err := c.query(ctx, map[string]string{
		"function": "OVERVIEW",
		"symbol":   symbol,
	}, &resp)
	if err != nil {
		return models.StockOverview{}, err
	}
	if err := upstreamError(resp.Note, ""); err != nil {
		return models.StockOverview{}, err
	}
	if resp.Symbol == "" {
		return models.StockOverview{}, fmt.Errorf("no overview for %s", symbol)
	}
	return models.StockOverview{
		Symbol:               resp.Symbol,
		AssetType:            resp.AssetType,
		Name:                 resp.Name,
		Description:          resp.Description,
		Exchange:             resp.Exchange,
		Currency:             resp.Currency,
		Country:              resp.Country,
		Sector:               resp.Sector,
		Industry:             resp.Industry,
		Address:              resp.Address,
		OfficialSite:         resp.OfficialSite,
		MarketCapitalization: resp.MarketCapitalization,
		PERatio:              resp.PERatio,
		DividendYield:        resp.DividendYield,
		EPS:                  resp.EPS,
		Beta:                 resp.Beta,
		Week52High:           resp.Week52High,
		Week52Low:            resp.Week52Low,
	}, nil
}

// News fetches recent news items mentioning symbol.
func (c *Client) News(ctx context.Context, symbol string) ([]models.NewsItem, error) {
	var resp newsResponse
	err := c.query(ctx, map[string]string{
		"function": "NEWS_SENTIMENT",
		"tickers":  symbol,
		"limit":    strconv.Itoa(newsFetchLimit),
	}, &resp)
	if err != nil {
		return nil, err
	}
	if err := upstreamError(resp.Note, ""); err != nil {
		return nil, err
	}

	items := make([]models.NewsItem, 0, len(resp.Feed))
	for _, f := range resp.Feed {
		items = append(items, models.NewsItem{
			Title:            f.Title,
			URL:              f.URL,
			TimePublished:    f.TimePublished,
			Summary:          f.Summary,
			Source:           f.Source,
			BannerImage:      f.BannerImage,
			OverallSentiment: f.OverallSentiment,
		})
	}
	return items, nil
}

// Search runs a symbol search for keyword.
func (c *Client) Search(ctx context.Context, keyword string) ([]models.SymbolMatch, error) {
	var resp searchResponse
	err := c.query(ctx, map[string]string{
		"function": "SYMBOL_SEARCH",
		"keywords": keyword,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if err := upstreamError(resp.Note, ""); err != nil {
		return nil, err
	}

	matches := make([]models.SymbolMatch, 0, len(resp.BestMatches))
	for _, m := range resp.BestMatches {
		matches = append(matches, models.SymbolMatch{
			Symbol:      m.Symbol,
			Name:        m.Name,
			AssetType:   m.Type,
			Region:      m.Region,
			MarketOpen:  m.MarketOpen,
			MarketClose: m.MarketClose,
			TimeZone:    m.TimeZone,
			Currency:    m.Currency,
			MatchScore:  m.MatchScore,
		})
	}
	return matches, nil
}

// upstreamError maps the provider's in-body failure signals: "Note" means the
// API key hit its rate limit, "Error Message" means a bad request upstream.
func upstreamError(note, errMsg string) error {
	if note != "" {
		return xhttp.TooManyRequestsError("Upstream rate limit reached. Try again later.").
			WithError(fmt.Errorf("%s", note))
	}
	if errMsg != "" {
		return fmt.Errorf("upstream error: %s", errMsg)
	}
	return nil
}

// seriesToPoints flattens a date-keyed series into chronological chart points.
func seriesToPoints(series map[string]timeSeriesEntry) []models.ChartDataPoint {
	points := make([]models.ChartDataPoint, 0, len(series))
	for date, entry := range series {
		close, err := strconv.ParseFloat(entry.Close, 64)
		if err != nil {
			continue
		}
		points = append(points, models.ChartDataPoint{Date: date, Value: close})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}

func lookbackStart(now time.Time, timeframe string) time.Time {
	switch timeframe {
	case "1m":
		return now.AddDate(0, -1, 0)
	case "3m":
		return now.AddDate(0, -3, 0)
	case "6m":
		return now.AddDate(0, -6, 0)
	case "1y":
		return now.AddDate(-1, 0, 0)
	case "2y":
		return now.AddDate(-2, 0, 0)
	case "5y":
		return now.AddDate(-5, 0, 0)
	case "max":
		return now.AddDate(-10, 0, 0)
	default:
		return now.AddDate(0, -1, 0)
	}
}
