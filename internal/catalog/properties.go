package catalog

// SymbolProperties describe the simulated behavior of one symbol.
type SymbolProperties struct {
	BasePrice  float64
	Volatility float64
}

// PropertyTable is a symbol-keyed lookup with an explicit fallback entry for
// unknown symbols.
type PropertyTable struct {
	entries  map[string]SymbolProperties
	fallback SymbolProperties
}

// NewPropertyTable creates a table over entries with the given fallback.
func NewPropertyTable(entries map[string]SymbolProperties, fallback SymbolProperties) *PropertyTable {
	return &PropertyTable{entries: entries, fallback: fallback}
}

// Resolve returns the properties for symbol, or the fallback when unknown.
func (t *PropertyTable) Resolve(symbol string) SymbolProperties {
	if p, ok := t.entries[symbol]; ok {
		return p
	}
	return t.fallback
}

// Known reports whether symbol has a dedicated entry.
func (t *PropertyTable) Known(symbol string) bool {
	_, ok := t.entries[symbol]
	return ok
}

// DailyProperties is the table used by the 30-day daily-close generator.
// Volatility is the fraction of the base price a single day can move.
func DailyProperties() *PropertyTable {
	return NewPropertyTable(map[string]SymbolProperties{
		"MLGO":     {BasePrice: 4.38, Volatility: 0.15},
		"MBOT":     {BasePrice: 12.50, Volatility: 0.08},
		"MCHP":     {BasePrice: 87.45, Volatility: 0.05},
		"CY9D.FRK": {BasePrice: 8.30, Volatility: 0.07},
		"MCHPP":    {BasePrice: 86.75, Volatility: 0.05},
		"MBX.TRT":  {BasePrice: 2.15, Volatility: 0.10},
		"MALG":     {BasePrice: 5.65, Volatility: 0.12},
		"MBXBF":    {BasePrice: 1.12, Volatility: 0.10},
		"0K19.LON": {BasePrice: 68.50, Volatility: 0.05},
		"VENAF":    {BasePrice: 0.85, Volatility: 0.20},
	}, SymbolProperties{BasePrice: 10.0, Volatility: 0.10})
}

// HistoricalProperties is the table used by the historical chart generator.
// Values differ from the daily table on purpose; the two generators simulate
// different horizons.
func HistoricalProperties() *PropertyTable {
	return NewPropertyTable(map[string]SymbolProperties{
		"MLGO":     {BasePrice: 2.25, Volatility: 0.04},
		"MBOT":     {BasePrice: 1.75, Volatility: 0.05},
		"MCHP":     {BasePrice: 80.50, Volatility: 0.015},
		"CY9D.FRK": {BasePrice: 1.65, Volatility: 0.045},
		"MCHPP":    {BasePrice: 85.25, Volatility: 0.012},
		"MBX.TRT":  {BasePrice: 0.42, Volatility: 0.035},
		"MALG":     {BasePrice: 19.75, Volatility: 0.02},
		"MBXBF":    {BasePrice: 0.32, Volatility: 0.04},
		"0K19.LON": {BasePrice: 81.20, Volatility: 0.016},
		"VENAF":    {BasePrice: 0.75, Volatility: 0.08},
	}, SymbolProperties{BasePrice: 50.0, Volatility: 0.02})
}
