package di

import (
	"fmt"

	"StockScope/internal/catalog"
	"StockScope/internal/handler/api"
	"StockScope/internal/service/alphavantage"
	"StockScope/internal/service/metrics"
	"StockScope/internal/service/mockdata"
	"StockScope/internal/service/seriescache"
	"StockScope/internal/service/throttle"
	"StockScope/internal/usecase"
	"StockScope/pkg/cache"
	"StockScope/pkg/config"
	xhttp "StockScope/pkg/http"
	applogger "StockScope/pkg/logger"
	"StockScope/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetricsRecorder creates the Prometheus metrics recorder.
func ProvideMetricsRecorder() *metrics.Recorder {
	return metrics.New()
}

// ProvideThrottleGuard creates the shared throttle map. Search and price
// throttling use distinct key prefixes over the same guard.
func ProvideThrottleGuard() *throttle.Guard {
	return throttle.NewGuard()
}

// ProvideSeriesCache creates the in-process daily price series cache.
func ProvideSeriesCache(cfg *config.Config) *seriescache.Cache {
	return seriescache.New(cfg.Cache.SeriesTTL)
}

// ProvideResponseCache creates the historical response cache: Redis when
// configured, in-process memory otherwise.
func ProvideResponseCache(cfg *config.Config) (cache.Service, error) {
	if cfg.Cache.Redis.Enabled {
		rc, err := cache.NewRedisCache(
			cache.WithRedisHost(cfg.Cache.Redis.Host),
			cache.WithRedisPort(cfg.Cache.Redis.Port),
			cache.WithRedisPassword(cfg.Cache.Redis.Password),
			cache.WithRedisDB(cfg.Cache.Redis.DB),
			cache.WithRedisPrefix(cfg.Cache.Redis.Prefix),
		)
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		return rc, nil
	}
	return cache.NewMemoryCache(), nil
}

// ProvideAlphaVantageClient creates the upstream client, or nil when the
// service runs on generated data.
func ProvideAlphaVantageClient(cfg *config.Config) *alphavantage.Client {
	if cfg.Provider.Mode != "alphavantage" {
		return nil
	}
	return alphavantage.NewClient(cfg.Provider.APIKey, cfg.Provider.BaseURL, cfg.Provider.Timeout)
}

// The per-concern provider bindings return untyped nil in mock mode so the
// usecases' nil checks see a truly absent provider.

func ProvidePriceProvider(av *alphavantage.Client) usecase.PriceProvider {
	if av == nil {
		return nil
	}
	return av
}

func ProvideHistoryProvider(av *alphavantage.Client) usecase.HistoryProvider {
	if av == nil {
		return nil
	}
	return av
}

func ProvideOverviewProvider(av *alphavantage.Client) usecase.OverviewProvider {
	if av == nil {
		return nil
	}
	return av
}

func ProvideSearchProvider(av *alphavantage.Client) usecase.SearchProvider {
	if av == nil {
		return nil
	}
	return av
}

// ProvideOverviewCatalog creates the static company-overview tables.
func ProvideOverviewCatalog() *catalog.OverviewCatalog {
	return catalog.NewOverviewCatalog()
}

// ProvideNewsCatalog creates the per-symbol news memoizer.
func ProvideNewsCatalog(overviews *catalog.OverviewCatalog) *catalog.NewsCatalog {
	return catalog.NewNewsCatalog(overviews)
}

// ProvideSearchCatalog creates the fixed symbol-search result set.
func ProvideSearchCatalog() *catalog.SearchCatalog {
	return catalog.NewSearchCatalog()
}

// ProvidePricesUsecase creates the batch price use case.
func ProvidePricesUsecase(
	sc *seriescache.Cache,
	provider usecase.PriceProvider,
	recorder *metrics.Recorder,
	log *applogger.Logger,
) *usecase.PricesUsecase {
	gen := mockdata.NewPriceGenerator(catalog.DailyProperties())
	return usecase.NewPricesUsecase(sc, gen, provider, recorder, log)
}

// ProvideHistoricalUsecase creates the historical chart use case.
func ProvideHistoricalUsecase(
	cfg *config.Config,
	respCache cache.Service,
	provider usecase.HistoryProvider,
	recorder *metrics.Recorder,
	log *applogger.Logger,
) *usecase.HistoricalUsecase {
	gen := mockdata.NewHistoryGenerator(catalog.HistoricalProperties())
	return usecase.NewHistoricalUsecase(respCache, cfg.Cache.HistoricalTTL, gen, provider, recorder, log)
}

// ProvideOverviewUsecase creates the overview-plus-news use case.
func ProvideOverviewUsecase(
	overviews *catalog.OverviewCatalog,
	news *catalog.NewsCatalog,
	provider usecase.OverviewProvider,
	recorder *metrics.Recorder,
	log *applogger.Logger,
) *usecase.OverviewUsecase {
	return usecase.NewOverviewUsecase(overviews, news, provider, recorder, log)
}

// ProvideSearchUsecase creates the throttled symbol-search use case.
func ProvideSearchUsecase(
	cfg *config.Config,
	guard *throttle.Guard,
	cat *catalog.SearchCatalog,
	provider usecase.SearchProvider,
	recorder *metrics.Recorder,
	log *applogger.Logger,
) *usecase.SearchUsecase {
	return usecase.NewSearchUsecase(guard, cfg.Throttle.SearchWindow, cat, provider, recorder, log)
}

// ProvideStocksHandler creates the HTTP handler. The price throttle only
// applies when requests hit the real upstream.
func ProvideStocksHandler(
	cfg *config.Config,
	prices *usecase.PricesUsecase,
	historical *usecase.HistoricalUsecase,
	overview *usecase.OverviewUsecase,
	search *usecase.SearchUsecase,
	guard *throttle.Guard,
	recorder *metrics.Recorder,
	log *applogger.Logger,
) *api.StocksHandler {
	var opts []api.Option
	if cfg.Provider.Mode == "alphavantage" {
		opts = append(opts, api.WithPriceThrottle(cfg.Throttle.PriceWindow))
	}
	return api.NewStocksHandler(prices, historical, overview, search, guard, recorder, log, opts...)
}

// ProvideHTTPHandler binds the concrete handler to the server interface.
func ProvideHTTPHandler(h *api.StocksHandler) xhttp.Handler {
	return h
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	handler xhttp.Handler,
	respCache cache.Service,
	log *applogger.Logger,
) *server.App {
	return server.New(cfg, handler, respCache, log)
}
