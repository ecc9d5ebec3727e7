package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"StockScope/internal/domain/models"
	"StockScope/internal/service/metrics"
	"StockScope/internal/service/mockdata"
	"StockScope/pkg/cache"
	"StockScope/pkg/logger"
)

// HistoryProvider fetches historical chart data from a real upstream.
type HistoryProvider interface {
	HistoricalSeries(ctx context.Context, symbol, timeframe string) ([]models.ChartDataPoint, error)
}

// HistoricalUsecase serves historical chart requests through a TTL response
// cache keyed by symbol and timeframe.
type HistoricalUsecase struct {
	cache    cache.Service
	ttl      time.Duration
	gen      *mockdata.HistoryGenerator
	provider HistoryProvider
	recorder *metrics.Recorder
	log      *logger.Logger
}

func NewHistoricalUsecase(
	c cache.Service,
	ttl time.Duration,
	gen *mockdata.HistoryGenerator,
	provider HistoryProvider,
	recorder *metrics.Recorder,
	log *logger.Logger,
) *HistoricalUsecase {
	return &HistoricalUsecase{
		cache:    c,
		ttl:      ttl,
		gen:      gen,
		provider: provider,
		recorder: recorder,
		log:      log,
	}
}

// Series returns the chart series for symbol over timeframe. An unknown
// timeframe falls back to the shortest lookback rather than failing.
func (u *HistoricalUsecase) Series(ctx context.Context, symbol, timeframe string) (models.HistoricalSeries, error) {
	symbol = strings.TrimSpace(symbol)
	if timeframe == "" {
		timeframe = mockdata.DefaultTimeframe()
	}

	key := fmt.Sprintf("hist:%s:%s", symbol, timeframe)

	var data []models.ChartDataPoint
	err := u.cache.Get(ctx, key, &data)
	if err == nil {
		u.recorder.CacheHit("historical")
		return models.HistoricalSeries{Symbol: symbol, Timeframe: timeframe, Data: data}, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		u.log.Warn("historical cache read failed",
			logger.String("key", key),
			logger.Error(err))
	}
	u.recorder.CacheMiss("historical")

	if u.provider != nil {
		data, err = u.provider.HistoricalSeries(ctx, symbol, timeframe)
		if err != nil {
			u.recorder.ProviderError("historical")
			return models.HistoricalSeries{}, wrapProviderError(err, "Failed to fetch historical data")
		}
	} else {
		data = u.gen.Series(symbol, timeframe)
		u.recorder.PointsGenerated("historical", len(data))
	}

	if err := u.cache.Set(ctx, key, data, u.ttl); err != nil {
		u.log.Warn("historical cache write failed",
			logger.String("key", key),
			logger.Error(err))
	}

	return models.HistoricalSeries{Symbol: symbol, Timeframe: timeframe, Data: data}, nil
}
