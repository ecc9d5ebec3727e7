package alphavantage

// Upstream response shapes. Field names follow the provider's wire format;
// they are translated into domain models at this boundary and go no further.

type timeSeriesEntry struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}

type dailyResponse struct {
	TimeSeries map[string]timeSeriesEntry `json:"Time Series (Daily)"`
	Note       string                     `json:"Note"`
	ErrMsg     string                     `json:"Error Message"`
}

type weeklyResponse struct {
	TimeSeries map[string]timeSeriesEntry `json:"Weekly Time Series"`
	Note       string                     `json:"Note"`
	ErrMsg     string                     `json:"Error Message"`
}

type monthlyResponse struct {
	TimeSeries map[string]timeSeriesEntry `json:"Monthly Time Series"`
	Note       string                     `json:"Note"`
	ErrMsg     string                     `json:"Error Message"`
}

type overviewResponse struct {
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
	MarketCapitalization string `json:"MarketCapitalization"`
	PERatio              string `json:"PERatio"`
	DividendYield        string `json:"DividendYield"`
	EPS                  string `json:"EPS"`
	Beta                 string `json:"Beta"`
	Week52High           string `json:"52WeekHigh"`
	Week52Low            string `json:"52WeekLow"`
	Note                 string `json:"Note"`
}

type newsResponse struct {
	Feed []newsFeedItem `json:"feed"`
	Note string         `json:"Note"`
}

type newsFeedItem struct {
	Title            string `json:"title"`
	URL              string `json:"url"`
	TimePublished    string `json:"time_published"`
	Summary          string `json:"summary"`
	BannerImage      string `json:"banner_image"`
	Source           string `json:"source"`
	OverallSentiment string `json:"overall_sentiment_label"`
}

type searchResponse struct {
	BestMatches []bestMatch `json:"bestMatches"`
	Note        string      `json:"Note"`
}

type bestMatch struct {
	Symbol      string `json:"1. symbol"`
	Name        string `json:"2. name"`
	Type        string `json:"3. type"`
	Region      string `json:"4. region"`
	MarketOpen  string `json:"5. marketOpen"`
	MarketClose string `json:"6. marketClose"`
	TimeZone    string `json:"7. timezone"`
	Currency    string `json:"8. currency"`
	MatchScore  string `json:"9. matchScore"`
}
