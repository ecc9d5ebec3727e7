package mockdata

import (
	"math"
	"math/rand"
	"time"

	"StockScope/internal/catalog"
	"StockScope/internal/domain/models"
	"StockScope/pkg/util"
)

const dailySeriesDays = 30

// PriceGenerator produces simulated daily closing prices: a uniform draw
// scaled by the symbol's volatility plus a mild deterministic trend.
type PriceGenerator struct {
	props  *catalog.PropertyTable
	randFn func() float64
	now    func() time.Time
}

// GeneratorOption configures a generator.
type GeneratorOption func(*generatorConfig)

type generatorConfig struct {
	randFn func() float64
	now    func() time.Time
}

// WithRand injects the uniform [0,1) source. Used by tests.
func WithRand(fn func() float64) GeneratorOption {
	return func(c *generatorConfig) { c.randFn = fn }
}

// WithNow injects the clock. Used by tests.
func WithNow(fn func() time.Time) GeneratorOption {
	return func(c *generatorConfig) { c.now = fn }
}

// NewPriceGenerator creates a daily-close generator over the given property table.
func NewPriceGenerator(props *catalog.PropertyTable, opts ...GeneratorOption) *PriceGenerator {
	cfg := &generatorConfig{randFn: rand.Float64, now: time.Now}
	for _, opt := range opts {
		opt(cfg)
	}
	return &PriceGenerator{props: props, randFn: cfg.randFn, now: cfg.now}
}

// DailyClose simulates the closing price for one day. dayIndex counts back
// from today (0 = today, 29 = oldest). The result is intentionally not
// clamped; the historical generator is the one with a price floor.
func (g *PriceGenerator) DailyClose(symbol string, basePrice float64, dayIndex int) float64 {
	volatility := g.props.Resolve(symbol).Volatility

	randomFactor := (g.randFn() - 0.5) * 2 // -1 to 1
	percentChange := randomFactor * volatility

	// Slight downward drift toward recent days.
	trend := -0.002 * float64(dailySeriesDays-dayIndex)

	return basePrice * (1 + percentChange + trend)
}

// DailySeries simulates 30 days of closing prices ending today, in
// chronological (oldest-first) order.
func (g *PriceGenerator) DailySeries(symbol string) []models.PricePoint {
	basePrice := g.props.Resolve(symbol).BasePrice
	today := g.now()

	prices := make([]models.PricePoint, 0, dailySeriesDays)
	for i := 0; i < dailySeriesDays; i++ {
		date := today.AddDate(0, 0, -i)
		prices = append(prices, models.PricePoint{
			Date:  util.ISODate(date),
			Close: round(g.DailyClose(symbol, basePrice, i), 4),
		})
	}

	// Generation walks backwards from today; reverse to chronological order.
	for i, j := 0, len(prices)-1; i < j; i, j = i+1, j-1 {
		prices[i], prices[j] = prices[j], prices[i]
	}

	return prices
}

func round(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}
