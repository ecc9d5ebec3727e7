package catalog

import (
	"strings"
	"sync"

	"StockScope/internal/domain/models"
)

// companyPlaceholder is the phrase replaced with the resolved company name
// when customizing pooled articles for a symbol.
const companyPlaceholder = "The company"

// NewsCatalog serves the pooled mock articles, customized per symbol. The
// customized list is computed once per symbol on first request and kept for
// the process lifetime.
type NewsCatalog struct {
	mu        sync.Mutex
	pool      []models.NewsItem
	bySymbol  map[string][]models.NewsItem
	overviews *OverviewCatalog
}

// NewNewsCatalog builds the news catalog over the static article pool.
func NewNewsCatalog(overviews *OverviewCatalog) *NewsCatalog {
	return &NewsCatalog{
		pool:      newsPool(),
		bySymbol:  make(map[string][]models.NewsItem),
		overviews: overviews,
	}
}

// NewsPage is one page of news for a symbol.
type NewsPage struct {
	Items      []models.NewsItem
	HasMore    bool
	TotalCount int
}

// Page returns the requested page of customized news for symbol.
// start = (page-1)*limit; hasMore = start+limit < total.
func (n *NewsCatalog) Page(symbol string, page, limit int) NewsPage {
	items := n.forSymbol(symbol)
	total := len(items)

	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return NewsPage{
		Items:      items[start:end],
		HasMore:    start+limit < total,
		TotalCount: total,
	}
}

// Reset clears the per-symbol memoization. Used by tests.
func (n *NewsCatalog) Reset() {
	n.mu.Lock()
	n.bySymbol = make(map[string][]models.NewsItem)
	n.mu.Unlock()
}

func (n *NewsCatalog) forSymbol(symbol string) []models.NewsItem {
	n.mu.Lock()
	defer n.mu.Unlock()

	if items, ok := n.bySymbol[symbol]; ok {
		return items
	}

	name := n.overviews.Resolve(symbol).Name
	items := make([]models.NewsItem, len(n.pool))
	for i, article := range n.pool {
		article.Title = strings.Replace(article.Title, companyPlaceholder, name, 1)
		article.Summary = strings.Replace(article.Summary, companyPlaceholder, name, 1)
		items[i] = article
	}
	n.bySymbol[symbol] = items
	return items
}

func newsPool() []models.NewsItem {
	return []models.NewsItem{
		{
			Title:            "Q1 Earnings Exceed Analyst Expectations",
			URL:              "https://example.com/news/1",
			TimePublished:    "20250505T130000",
			Summary:          "The company reported strong first quarter results, with revenue increasing by 15% year-over-year and earnings per share coming in at $2.35, exceeding analyst estimates of $2.10.",
			Source:           "Financial Times",
			BannerImage:      "https://placehold.co/600x400?text=Q1+Earnings",
			OverallSentiment: "Bullish",
		},
		{
			Title:            "New Product Line Announcement Shows Promise",
			URL:              "https://example.com/news/2",
			TimePublished:    "20250504T094500",
			Summary:          "The company unveiled its new product line yesterday, showcasing innovative features that analysts believe could capture significant market share in the coming quarters.",
			Source:           "Tech Insider",
			BannerImage:      "https://placehold.co/600x400?text=New+Products",
			OverallSentiment: "Somewhat-Bullish",
		},
		{
			Title:            "Industry Competition Intensifies with New Market Entrant",
			URL:              "https://example.com/news/3",
			TimePublished:    "20250503T143020",
			Summary:          "A new competitor has entered the market with a potentially disruptive business model, causing some analysts to reassess their growth projections for established players in the sector.",
			Source:           "Market Watch",
			BannerImage:      "https://placehold.co/600x400?text=Competition",
			OverallSentiment: "Neutral",
		},
		{
			Title:            "Company Announces Expansion into New Markets",
			URL:              "https://example.com/news/4",
			TimePublished:    "20250502T091530",
			Summary:          "The company has announced plans to expand into several new markets in the coming year, with initial investments already underway in key strategic locations.",
			Source:           "Business Insider",
			BannerImage:      "https://placehold.co/600x400?text=Market+Expansion",
			OverallSentiment: "Somewhat-Bullish",
		},
		{
			Title:            "Quarterly Dividend Announcement Falls Short of Expectations",
			URL:              "https://example.com/news/5",
			TimePublished:    "20250501T163000",
			Summary:          "The company's latest dividend announcement came in slightly below analyst expectations, raising questions about cash flow management strategies going forward.",
			Source:           "Wall Street Journal",
			BannerImage:      "https://placehold.co/600x400?text=Dividend+News",
			OverallSentiment: "Somewhat-Bearish",
		},
		{
			Title:            "Strategic Partnership Announced with Tech Giant",
			URL:              "https://example.com/news/6",
			TimePublished:    "20250430T103045",
			Summary:          "The company has formed a strategic partnership with a major technology provider, which is expected to enhance product capabilities and provide access to new distribution channels.",
			Source:           "Reuters",
			BannerImage:      "https://placehold.co/600x400?text=Partnership",
			OverallSentiment: "Bullish",
		},
		{
			Title:            "Supply Chain Disruptions Could Impact Q2 Results",
			URL:              "https://example.com/news/7",
			TimePublished:    "20250429T143215",
			Summary:          "Industry analysts have expressed concerns about ongoing supply chain challenges that could potentially impact the company's second quarter performance and inventory levels.",
			Source:           "Bloomberg",
			BannerImage:      "https://placehold.co/600x400?text=Supply+Chain",
			OverallSentiment: "Somewhat-Bearish",
		},
		{
			Title:            "New CEO Appointment Announced",
			URL:              "https://example.com/news/8",
			TimePublished:    "20250428T083000",
			Summary:          "The board of directors has announced the appointment of a new CEO effective next month, bringing expertise from a competitor and signaling a potential shift in strategic direction.",
			Source:           "CNBC",
			BannerImage:      "https://placehold.co/600x400?text=CEO+Appointment",
			OverallSentiment: "Neutral",
		},
		{
			Title:            "Regulatory Approval Received for Key Product",
			URL:              "https://example.com/news/9",
			TimePublished:    "20250427T121530",
			Summary:          "The company has received regulatory approval for its flagship product in a major market, paving the way for commercial launch in the third quarter of this year.",
			Source:           "Industry Today",
			BannerImage:      "https://placehold.co/600x400?text=Regulatory+Approval",
			OverallSentiment: "Bullish",
		},
		{
			Title:            "Insider Trading Investigation Launched",
			URL:              "https://example.com/news/10",
			TimePublished:    "20250426T153045",
			Summary:          "Regulators have initiated an investigation into potential insider trading related to recent stock movements prior to a major announcement. The company has stated it is fully cooperating.",
			Source:           "Financial Post",
			BannerImage:      "https://placehold.co/600x400?text=Investigation",
			OverallSentiment: "Bearish",
		},
		{
			Title:            "Sustainability Initiative Gains Recognition",
			URL:              "https://example.com/news/11",
			TimePublished:    "20250425T091520",
			Summary:          "The company's sustainability efforts have been recognized with a prestigious industry award, highlighting its commitment to environmental stewardship and responsible business practices.",
			Source:           "Green Business Journal",
			BannerImage:      "https://placehold.co/600x400?text=Sustainability",
			OverallSentiment: "Somewhat-Bullish",
		},
		{
			Title:            "Patent Litigation Settlement Reached",
			URL:              "https://example.com/news/12",
			TimePublished:    "20250424T142250",
			Summary:          "A settlement has been reached in the ongoing patent litigation case, with the company agreeing to license certain technologies and pay a one-time fee that analysts consider reasonable.",
			Source:           "Legal Times",
			BannerImage:      "https://placehold.co/600x400?text=Patent+Settlement",
			OverallSentiment: "Neutral",
		},
		{
			Title:            "Major Share Buyback Program Announced",
			URL:              "https://example.com/news/13",
			TimePublished:    "20250423T102540",
			Summary:          "The board has approved a substantial share buyback program over the next 18 months, signaling confidence in the company's financial position and future prospects.",
			Source:           "Investor Daily",
			BannerImage:      "https://placehold.co/600x400?text=Buyback+Program",
			OverallSentiment: "Bullish",
		},
		{
			Title:            "Data Breach Incident Reported",
			URL:              "https://example.com/news/14",
			TimePublished:    "20250422T163010",
			Summary:          "The company has disclosed a data security incident affecting a limited number of customers. An investigation is underway, and affected individuals have been notified.",
			Source:           "Cybersecurity Today",
			BannerImage:      "https://placehold.co/600x400?text=Data+Breach",
			OverallSentiment: "Bearish",
		},
		{
			Title:            "International Expansion Plans Accelerated",
			URL:              "https://example.com/news/15",
			TimePublished:    "20250421T093520",
			Summary:          "Following strong results in test markets, the company has announced an acceleration of its international expansion strategy, with five new country launches planned this year.",
			Source:           "Global Business Review",
			BannerImage:      "https://placehold.co/600x400?text=Global+Expansion",
			OverallSentiment: "Bullish",
		},
	}
}
