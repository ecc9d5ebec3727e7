package usecase

import (
	"context"
	"strings"

	"StockScope/internal/catalog"
	"StockScope/internal/domain/models"
	"StockScope/internal/service/metrics"
	"StockScope/pkg/logger"
)

// OverviewProvider fetches company overviews and news from a real upstream.
type OverviewProvider interface {
	Overview(ctx context.Context, symbol string) (models.StockOverview, error)
	News(ctx context.Context, symbol string) ([]models.NewsItem, error)
}

// OverviewUsecase assembles the overview-plus-news response for one symbol.
type OverviewUsecase struct {
	overviews *catalog.OverviewCatalog
	news      *catalog.NewsCatalog
	provider  OverviewProvider
	recorder  *metrics.Recorder
	log       *logger.Logger
}

func NewOverviewUsecase(
	overviews *catalog.OverviewCatalog,
	news *catalog.NewsCatalog,
	provider OverviewProvider,
	recorder *metrics.Recorder,
	log *logger.Logger,
) *OverviewUsecase {
	return &OverviewUsecase{
		overviews: overviews,
		news:      news,
		provider:  provider,
		recorder:  recorder,
		log:       log,
	}
}

// Get returns the overview and the requested news page for symbol. With
// newsOnly set the overview fields are blanked so pollers fetching fresh news
// pages do not re-transfer the company description.
func (u *OverviewUsecase) Get(ctx context.Context, symbol string, page, limit int, newsOnly bool) (models.OverviewResponse, error) {
	symbol = strings.TrimSpace(symbol)

	if u.provider != nil {
		return u.fromProvider(ctx, symbol, page, limit, newsOnly)
	}

	overview := u.overviews.Resolve(symbol)
	newsPage := u.news.Page(symbol, page, limit)

	if newsOnly {
		overview = catalog.EmptyOverview()
	}

	return models.OverviewResponse{
		Overview:       overview,
		News:           newsPage.Items,
		HasMoreNews:    newsPage.HasMore,
		TotalNewsCount: newsPage.TotalCount,
	}, nil
}

func (u *OverviewUsecase) fromProvider(ctx context.Context, symbol string, page, limit int, newsOnly bool) (models.OverviewResponse, error) {
	overview := catalog.EmptyOverview()
	if !newsOnly {
		var err error
		overview, err = u.provider.Overview(ctx, symbol)
		if err != nil {
			u.recorder.ProviderError("overview")
			return models.OverviewResponse{}, wrapProviderError(err, "Failed to fetch stock data")
		}
	}

	items, err := u.provider.News(ctx, symbol)
	if err != nil {
		u.recorder.ProviderError("news")
		u.log.Warn("news fetch failed, returning overview without news",
			logger.String("symbol", symbol),
			logger.Error(err))
		items = []models.NewsItem{}
	}

	start := (page - 1) * limit
	end := start + limit
	total := len(items)
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return models.OverviewResponse{
		Overview:       overview,
		News:           items[start:end],
		HasMoreNews:    start+limit < total,
		TotalNewsCount: total,
	}, nil
}
