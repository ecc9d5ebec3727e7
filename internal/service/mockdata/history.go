package mockdata

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"StockScope/internal/catalog"
	"StockScope/internal/domain/models"
	"StockScope/pkg/util"
)

// HistoryGenerator produces simulated historical chart series: a random walk
// with a per-symbol trend bias and a seasonal component.
type HistoryGenerator struct {
	props  *catalog.PropertyTable
	randFn func() float64
	now    func() time.Time
}

// NewHistoryGenerator creates a chart-series generator over the given property table.
func NewHistoryGenerator(props *catalog.PropertyTable, opts ...GeneratorOption) *HistoryGenerator {
	cfg := &generatorConfig{randFn: rand.Float64, now: time.Now}
	for _, opt := range opts {
		opt(cfg)
	}
	return &HistoryGenerator{props: props, randFn: cfg.randFn, now: cfg.now}
}

// Series generates the chart series for symbol over the requested timeframe,
// using the symbol's base price and volatility from the property table.
func (g *HistoryGenerator) Series(symbol, timeframe string) []models.ChartDataPoint {
	p := g.props.Resolve(symbol)
	return g.Generate(symbol, timeframe, p.BasePrice, p.Volatility)
}

// Generate runs the walk: for each point, a uniform step scaled by volatility
// and the current price, plus a trend proportional to the current price. A
// non-positive price resets to a tenth of the base so the walk can recover.
func (g *HistoryGenerator) Generate(symbol, timeframe string, basePrice, volatility float64) []models.ChartDataPoint {
	s := lookupSpan(timeframe)
	startDate := g.now().AddDate(-s.years, -s.months, 0)

	trendFactor := TrendFactor(symbol)

	result := make([]models.ChartDataPoint, 0, s.points)
	price := basePrice

	for i := 0; i < s.points; i++ {
		date := startDate.AddDate(0, 0, i*s.spacing)

		randomChange := (g.randFn() - 0.5) * 2 * volatility * price
		trend := price * trendFactor
		price = price + randomChange + trend

		// Floor-recovery: keep the walk positive and able to move again.
		if price <= 0 {
			price = basePrice * 0.1
		}

		// Seasonality for a bit more realism.
		seasonality := math.Sin(float64(i)/(float64(s.points)/4)) * volatility * price * 0.2
		price += seasonality

		result = append(result, models.ChartDataPoint{
			Date:  util.ISODate(date),
			Value: round(price, 2),
		})
	}

	sort.Slice(result, func(a, b int) bool {
		return result[a].Date < result[b].Date
	})

	return result
}

// TrendFactor derives a stable per-symbol drift in [-0.05, 0.05] from the
// symbol's first character, giving each symbol a personality without seeding.
func TrendFactor(symbol string) float64 {
	if symbol == "" {
		return 0
	}
	return float64(int(symbol[0])%10-5) / 100
}
