//go:build wireinject
// +build wireinject

package di

import (
	"StockScope/pkg/config"
	"StockScope/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient services
		ProvideLogger,
		ProvideMetricsRecorder,
		ProvideThrottleGuard,

		// Caches
		ProvideSeriesCache,
		ProvideResponseCache,

		// Upstream provider
		ProvideAlphaVantageClient,
		ProvidePriceProvider,
		ProvideHistoryProvider,
		ProvideOverviewProvider,
		ProvideSearchProvider,

		// Static catalogs
		ProvideOverviewCatalog,
		ProvideNewsCatalog,
		ProvideSearchCatalog,

		// Use cases
		ProvidePricesUsecase,
		ProvideHistoricalUsecase,
		ProvideOverviewUsecase,
		ProvideSearchUsecase,

		// HTTP surface
		ProvideStocksHandler,
		ProvideHTTPHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
