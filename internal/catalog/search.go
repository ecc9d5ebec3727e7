package catalog

import "StockScope/internal/domain/models"

// SearchCatalog serves the fixed symbol-search result set. The keyword is not
// used to filter: the catalog always answers with the same matches, mirroring
// the stubbed upstream search.
type SearchCatalog struct {
	matches []models.SymbolMatch
}

// NewSearchCatalog builds the static search catalog.
func NewSearchCatalog() *SearchCatalog {
	return &SearchCatalog{matches: searchMatches()}
}

// Matches returns the fixed result set, ordered by descending match score.
func (c *SearchCatalog) Matches() []models.SymbolMatch {
	out := make([]models.SymbolMatch, len(c.matches))
	copy(out, c.matches)
	return out
}

// Facets derives the distinct type/region/currency values from the result
// set, preserving first-seen order.
func (c *SearchCatalog) Facets() models.FilterOptions {
	return DeriveFacets(c.matches)
}

// DeriveFacets computes filter facets for an arbitrary match set.
func DeriveFacets(matches []models.SymbolMatch) models.FilterOptions {
	opts := models.FilterOptions{
		Types:      []string{},
		Regions:    []string{},
		Currencies: []string{},
	}
	seenType := make(map[string]bool)
	seenRegion := make(map[string]bool)
	seenCurrency := make(map[string]bool)

	for _, m := range matches {
		if !seenType[m.AssetType] {
			seenType[m.AssetType] = true
			opts.Types = append(opts.Types, m.AssetType)
		}
		if !seenRegion[m.Region] {
			seenRegion[m.Region] = true
			opts.Regions = append(opts.Regions, m.Region)
		}
		if !seenCurrency[m.Currency] {
			seenCurrency[m.Currency] = true
			opts.Currencies = append(opts.Currencies, m.Currency)
		}
	}
	return opts
}

func searchMatches() []models.SymbolMatch {
	return []models.SymbolMatch{
		{Symbol: "MLGO", Name: "MicroAlgo Inc", AssetType: "Equity", Region: "United States", MarketOpen: "09:30", MarketClose: "16:00", TimeZone: "UTC-04", Currency: "USD", MatchScore: "0.5556"},
		{Symbol: "MBOT", Name: "Microbot Medical Inc", AssetType: "Equity", Region: "United States", MarketOpen: "09:30", MarketClose: "16:00", TimeZone: "UTC-04", Currency: "USD", MatchScore: "0.4444"},
		{Symbol: "MCHP", Name: "Microchip Technology Inc", AssetType: "Equity", Region: "United States", MarketOpen: "09:30", MarketClose: "16:00", TimeZone: "UTC-04", Currency: "USD", MatchScore: "0.4444"},
		{Symbol: "CY9D.FRK", Name: "Microbot Medical Inc", AssetType: "Equity", Region: "Frankfurt", MarketOpen: "08:00", MarketClose: "20:00", TimeZone: "UTC+02", Currency: "EUR", MatchScore: "0.4000"},
		{Symbol: "MCHPP", Name: "Microchip Technology Inc", AssetType: "Equity", Region: "United States", MarketOpen: "09:30", MarketClose: "16:00", TimeZone: "UTC-04", Currency: "USD", MatchScore: "0.4000"},
		{Symbol: "MBX.TRT", Name: "Microbix Biosystems Inc.", AssetType: "Equity", Region: "Toronto", MarketOpen: "09:30", MarketClose: "16:00", TimeZone: "UTC-05", Currency: "CAD", MatchScore: "0.3636"},
		{Symbol: "MALG", Name: "Microalliance Group Inc", AssetType: "Equity", Region: "United States", MarketOpen: "09:30", MarketClose: "16:00", TimeZone: "UTC-04", Currency: "USD", MatchScore: "0.3571"},
		{Symbol: "MBXBF", Name: "Microbix Biosystems Inc", AssetType: "Equity", Region: "United States", MarketOpen: "09:30", MarketClose: "16:00", TimeZone: "UTC-04", Currency: "USD", MatchScore: "0.3571"},
		{Symbol: "0K19.LON", Name: "Microchip Technology Inc.", AssetType: "Equity", Region: "United Kingdom", MarketOpen: "08:00", MarketClose: "16:30", TimeZone: "UTC+01", Currency: "USD", MatchScore: "0.3333"},
		{Symbol: "VENAF", Name: "MicroAlgo Inc - Warrants (30/04/2027)", AssetType: "Equity", Region: "United States", MarketOpen: "09:30", MarketClose: "16:00", TimeZone: "UTC-04", Currency: "USD", MatchScore: "0.2381"},
	}
}
