package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"StockScope/internal/catalog"
	"StockScope/internal/domain/models"
	"StockScope/internal/service/metrics"
	"StockScope/internal/service/throttle"
	"StockScope/pkg/logger"
)

// SearchProvider runs symbol searches against a real upstream.
type SearchProvider interface {
	Search(ctx context.Context, keyword string) ([]models.SymbolMatch, error)
}

// SearchUsecase serves throttled symbol-search requests.
type SearchUsecase struct {
	guard    *throttle.Guard
	window   time.Duration
	catalog  *catalog.SearchCatalog
	provider SearchProvider
	recorder *metrics.Recorder
	log      *logger.Logger
}

func NewSearchUsecase(
	guard *throttle.Guard,
	window time.Duration,
	cat *catalog.SearchCatalog,
	provider SearchProvider,
	recorder *metrics.Recorder,
	log *logger.Logger,
) *SearchUsecase {
	return &SearchUsecase{
		guard:    guard,
		window:   window,
		catalog:  cat,
		provider: provider,
		recorder: recorder,
		log:      log,
	}
}

// ThrottleCheck gates one accepted search per window per caller key. The
// returned message is non-empty when the caller must wait.
func (u *SearchUsecase) ThrottleCheck(key string) (string, bool) {
	res := u.guard.Check(key, u.window)
	if !res.Throttled {
		return "", false
	}
	u.recorder.Throttled("symbol_search")
	seconds := int(math.Ceil(res.RetryAfter.Seconds()))
	return fmt.Sprintf("Too many requests. Try again in %d seconds.", seconds), true
}

// Search returns matches and their filter facets for keyword.
func (u *SearchUsecase) Search(ctx context.Context, keyword string) (models.SearchResponse, error) {
	if u.provider != nil {
		matches, err := u.provider.Search(ctx, keyword)
		if err != nil {
			u.recorder.ProviderError("symbol_search")
			return models.SearchResponse{}, wrapProviderError(err, "Failed to fetch data from Alpha Vantage API")
		}
		return models.SearchResponse{
			SearchResults: matches,
			FilterOptions: catalog.DeriveFacets(matches),
		}, nil
	}

	// The fixed result set ignores the keyword. It exists so the search UI
	// can be exercised without burning upstream quota.
	u.log.Debug("serving fixed search results", logger.String("keyword", keyword))
	return models.SearchResponse{
		SearchResults: u.catalog.Matches(),
		FilterOptions: u.catalog.Facets(),
	}, nil
}
