package models

// PricePoint is a single daily closing price.
type PricePoint struct {
	Date  string  `json:"date"`
	Close float64 `json:"close"`
}

// SymbolPrices is the per-symbol entry of a batch price response. Error is set
// and Prices left empty when that symbol failed; other entries are unaffected.
type SymbolPrices struct {
	Symbol string       `json:"symbol"`
	Prices []PricePoint `json:"prices"`
	Error  string       `json:"error,omitempty"`
}

// ChartDataPoint is a single point of a historical chart series.
type ChartDataPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// HistoricalSeries is the historical chart response for one symbol.
type HistoricalSeries struct {
	Symbol    string           `json:"symbol"`
	Timeframe string           `json:"timeframe"`
	Data      []ChartDataPoint `json:"data"`
}

// StockOverview holds company descriptive and financial-snapshot fields.
// JSON tags preserve the upstream provider's field names.
type StockOverview struct {
	Symbol               string `json:"Symbol"`
	AssetType            string `json:"AssetType"`
	Name                 string `json:"Name"`
	Description          string `json:"Description"`
	Exchange             string `json:"Exchange"`
	Currency             string `json:"Currency"`
	Country              string `json:"Country"`
	Sector               string `json:"Sector"`
	Industry             string `json:"Industry"`
	Address              string `json:"Address"`
	OfficialSite         string `json:"OfficialSite"`
	MarketCapitalization string `json:"MarketCapitalization,omitempty"`
	PERatio              string `json:"PERatio,omitempty"`
	DividendYield        string `json:"DividendYield,omitempty"`
	EPS                  string `json:"EPS,omitempty"`
	Beta                 string `json:"Beta,omitempty"`
	Week52High           string `json:"52WeekHigh,omitempty"`
	Week52Low            string `json:"52WeekLow,omitempty"`
}

// NewsItem is a single news article.
type NewsItem struct {
	Title            string `json:"title"`
	URL              string `json:"url"`
	TimePublished    string `json:"timePublished"`
	Summary          string `json:"summary"`
	Source           string `json:"source"`
	BannerImage      string `json:"bannerImage"`
	OverallSentiment string `json:"overallSentiment"`
}

// OverviewResponse combines a company overview with a page of news.
type OverviewResponse struct {
	Overview       StockOverview `json:"overview"`
	News           []NewsItem    `json:"news"`
	HasMoreNews    bool          `json:"hasMoreNews"`
	TotalNewsCount int           `json:"totalNewsCount"`
}

// SymbolMatch is a single symbol-search result with a match-confidence score.
type SymbolMatch struct {
	Symbol      string `json:"symbol"`
	Name        string `json:"name"`
	AssetType   string `json:"assetType"`
	Region      string `json:"region"`
	MarketOpen  string `json:"marketOpen"`
	MarketClose string `json:"marketClose"`
	TimeZone    string `json:"timeZone"`
	Currency    string `json:"currency"`
	MatchScore  string `json:"matchScore"`
}

// FilterOptions are the filter facets derived from a search result set.
type FilterOptions struct {
	Types      []string `json:"types"`
	Regions    []string `json:"regions"`
	Currencies []string `json:"currencies"`
}

// SearchResponse is the symbol-search response.
type SearchResponse struct {
	SearchResults []SymbolMatch `json:"searchResults"`
	FilterOptions FilterOptions `json:"filterOptions"`
	Error         string        `json:"error,omitempty"`
}
