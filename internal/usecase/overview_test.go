package usecase

import (
	"context"
	"testing"

	"StockScope/internal/catalog"
	"StockScope/internal/service/metrics"
)

func newMockOverviewUsecase(t *testing.T) *OverviewUsecase {
	t.Helper()
	overviews := catalog.NewOverviewCatalog()
	news := catalog.NewNewsCatalog(overviews)
	return NewOverviewUsecase(overviews, news, nil, metrics.New(), testLogger(t))
}

func TestGetOverviewWithNews(t *testing.T) {
	u := newMockOverviewUsecase(t)

	res, err := u.Get(context.Background(), "MLGO", 1, 5, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Overview.Symbol != "MLGO" {
		t.Fatalf("unexpected overview symbol %s", res.Overview.Symbol)
	}
	if len(res.News) != 5 {
		t.Fatalf("expected 5 news items, got %d", len(res.News))
	}
	if !res.HasMoreNews {
		t.Fatalf("first page of 15 should have more")
	}
	if res.TotalNewsCount != 15 {
		t.Fatalf("unexpected total %d", res.TotalNewsCount)
	}
}

func TestGetNewsOnlyBlanksOverview(t *testing.T) {
	u := newMockOverviewUsecase(t)

	res, err := u.Get(context.Background(), "MLGO", 2, 5, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Overview.Symbol != "" || res.Overview.Name != "" {
		t.Fatalf("newsOnly should blank the overview: %+v", res.Overview)
	}
	if len(res.News) != 5 {
		t.Fatalf("expected 5 news items, got %d", len(res.News))
	}
}

func TestGetLastPage(t *testing.T) {
	u := newMockOverviewUsecase(t)

	res, err := u.Get(context.Background(), "AAPL", 3, 5, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.HasMoreNews {
		t.Fatalf("page 3 of 15 should be the last page")
	}
	if len(res.News) != 5 {
		t.Fatalf("expected 5 news items, got %d", len(res.News))
	}
}

func TestGetUnknownSymbolFallsBack(t *testing.T) {
	u := newMockOverviewUsecase(t)

	res, err := u.Get(context.Background(), "ZZZZ", 1, 5, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Overview.Name != "Demo Company" {
		t.Fatalf("unexpected fallback %s", res.Overview.Name)
	}
}
