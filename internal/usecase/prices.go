package usecase

import (
	"context"
	"fmt"
	"strings"

	"StockScope/internal/domain/models"
	"StockScope/internal/service/metrics"
	"StockScope/internal/service/mockdata"
	"StockScope/internal/service/seriescache"
	"StockScope/pkg/logger"
)

// PriceProvider fetches daily closing prices from a real upstream. Nil when
// running against generated data.
type PriceProvider interface {
	DailyPrices(ctx context.Context, symbol string) ([]models.PricePoint, error)
}

// PricesUsecase serves batch daily-price requests from the series cache,
// filling misses from the generator or the upstream provider.
type PricesUsecase struct {
	cache    *seriescache.Cache
	gen      *mockdata.PriceGenerator
	provider PriceProvider
	recorder *metrics.Recorder
	log      *logger.Logger
}

func NewPricesUsecase(
	cache *seriescache.Cache,
	gen *mockdata.PriceGenerator,
	provider PriceProvider,
	recorder *metrics.Recorder,
	log *logger.Logger,
) *PricesUsecase {
	return &PricesUsecase{
		cache:    cache,
		gen:      gen,
		provider: provider,
		recorder: recorder,
		log:      log,
	}
}

// Batch resolves prices for each symbol in caller order. A failure on one
// symbol is recorded in that symbol's entry and does not abort the rest.
func (u *PricesUsecase) Batch(ctx context.Context, symbols []string) []models.SymbolPrices {
	results := make([]models.SymbolPrices, 0, len(symbols))

	for i, raw := range symbols {
		symbol := strings.TrimSpace(raw)
		if symbol == "" {
			results = append(results, models.SymbolPrices{
				Symbol: symbol,
				Prices: []models.PricePoint{},
				Error:  fmt.Sprintf("Invalid symbol at position %d", i),
			})
			continue
		}

		prices, err := u.fetch(ctx, symbol)
		if err != nil {
			u.recorder.ProviderError("daily_prices")
			u.log.Error("fetch daily prices failed",
				logger.String("symbol", symbol),
				logger.Error(err))
			results = append(results, models.SymbolPrices{
				Symbol: symbol,
				Prices: []models.PricePoint{},
				Error:  err.Error(),
			})
			continue
		}

		results = append(results, models.SymbolPrices{Symbol: symbol, Prices: prices})
	}

	return results
}

func (u *PricesUsecase) fetch(ctx context.Context, symbol string) ([]models.PricePoint, error) {
	computed := false
	prices, err := u.cache.GetOrCompute(symbol, func(s string) ([]models.PricePoint, error) {
		computed = true
		if u.provider != nil {
			return u.provider.DailyPrices(ctx, s)
		}
		series := u.gen.DailySeries(s)
		u.recorder.PointsGenerated("daily", len(series))
		return series, nil
	})
	if err != nil {
		return nil, err
	}

	if computed {
		u.recorder.CacheMiss("series")
	} else {
		u.recorder.CacheHit("series")
		u.log.Debug("serving cached price series", logger.String("symbol", symbol))
	}
	return prices, nil
}
