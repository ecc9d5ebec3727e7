package models

// Requests for the stock HTTP endpoints. Defined in domain for consistency and reuse.

type HistoricalRequest struct {
	Symbol    string `query:"symbol" json:"symbol" validate:"required"`
	Timeframe string `query:"timeframe" json:"timeframe" default:"1y"`
}

// PricesRequest is the batch price request body. Size bounds are checked at the
// handler so each violation carries its own message.
type PricesRequest struct {
	Symbols []string `json:"symbols"`
}

type OverviewRequest struct {
	Symbol   string `query:"symbol" json:"symbol" validate:"required"`
	Page     int    `query:"page" json:"page" default:"1" validate:"gte=1"`
	Limit    int    `query:"limit" json:"limit" default:"5" validate:"gte=1,lte=50"`
	NewsOnly bool   `query:"newsOnly" json:"newsOnly"`
}

type SearchRequest struct {
	Keyword string `query:"keyword" json:"keyword" validate:"required"`
}
