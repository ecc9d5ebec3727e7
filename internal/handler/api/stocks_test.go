package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"StockScope/internal/catalog"
	"StockScope/internal/domain/models"
	"StockScope/internal/service/metrics"
	"StockScope/internal/service/mockdata"
	"StockScope/internal/service/seriescache"
	"StockScope/internal/service/throttle"
	"StockScope/internal/usecase"
	"StockScope/pkg/cache"
	"StockScope/pkg/logger"

	"github.com/labstack/echo/v4"
)

func newTestServer(t *testing.T, opts ...Option) *echo.Echo {
	t.Helper()

	log, err := logger.New(&logger.Config{Level: "error", Format: "console", Output: "stdout"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	recorder := metrics.New()
	guard := throttle.NewGuard()

	prices := usecase.NewPricesUsecase(
		seriescache.New(time.Hour),
		mockdata.NewPriceGenerator(catalog.DailyProperties()),
		nil, recorder, log)
	historical := usecase.NewHistoricalUsecase(
		cache.NewMemoryCache(), time.Hour,
		mockdata.NewHistoryGenerator(catalog.HistoricalProperties()),
		nil, recorder, log)
	overviews := catalog.NewOverviewCatalog()
	overview := usecase.NewOverviewUsecase(
		overviews, catalog.NewNewsCatalog(overviews), nil, recorder, log)
	search := usecase.NewSearchUsecase(
		guard, 15*time.Second, catalog.NewSearchCatalog(), nil, recorder, log)

	h := NewStocksHandler(prices, historical, overview, search, guard, recorder, log, opts...)

	e := echo.New()
	h.RegisterRoutes(e)
	return e
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad error body %q: %v", rec.Body.String(), err)
	}
	return body["error"]
}

func TestPricesBatch(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/stock-prices", `{"symbols":["MLGO","MBOT"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}

	var results []models.SymbolPrices
	if err := json.Unmarshal(rec.Body.Bytes(), &results); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(results))
	}
	if results[0].Symbol != "MLGO" || results[1].Symbol != "MBOT" {
		t.Fatalf("order not preserved: %+v", results)
	}
	if len(results[0].Prices) != 30 {
		t.Fatalf("expected 30 points, got %d", len(results[0].Prices))
	}
}

func TestPricesValidation(t *testing.T) {
	e := newTestServer(t)

	cases := []struct {
		body string
		want string
	}{
		{`{}`, "Symbols array is required"},
		{`{"symbols":["A","B","C","D","E","F"]}`, "Maximum 5 symbols allowed"},
		{`{"symbols":[]}`, "At least one symbol is required"},
	}
	for _, tc := range cases {
		rec := doJSON(e, http.MethodPost, "/api/stock-prices", tc.body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: unexpected status %d", tc.body, rec.Code)
		}
		if got := errorBody(t, rec); got != tc.want {
			t.Fatalf("body %s: unexpected error %q, want %q", tc.body, got, tc.want)
		}
	}
}

func TestPricesBoundaryFiveSymbols(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/stock-prices", `{"symbols":["A","B","C","D","E"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("five symbols should be accepted, got %d", rec.Code)
	}
}

func TestPricesThrottleWhenEnabled(t *testing.T) {
	e := newTestServer(t, WithPriceThrottle(time.Minute))

	first := doJSON(e, http.MethodPost, "/api/stock-prices", `{"symbols":["MLGO"]}`)
	if first.Code != http.StatusOK {
		t.Fatalf("first call should pass, got %d", first.Code)
	}
	second := doJSON(e, http.MethodPost, "/api/stock-prices", `{"symbols":["MLGO"]}`)
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("second call should be throttled, got %d", second.Code)
	}
	if got := errorBody(t, second); !strings.HasPrefix(got, "Too many requests.") {
		t.Fatalf("unexpected throttle message %q", got)
	}
}

func TestHistorical(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/stock-historical?symbol=MCHP&timeframe=1m", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}

	var res models.HistoricalSeries
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if res.Symbol != "MCHP" || res.Timeframe != "1m" {
		t.Fatalf("unexpected envelope %s/%s", res.Symbol, res.Timeframe)
	}
	if len(res.Data) != 22 {
		t.Fatalf("expected 22 points, got %d", len(res.Data))
	}
}

func TestHistoricalMissingSymbol(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/stock-historical", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	if got := errorBody(t, rec); got != "Symbol parameter is required" {
		t.Fatalf("unexpected error %q", got)
	}
}

func TestOverview(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/stock-overview?symbol=MLGO", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}

	var res models.OverviewResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if res.Overview.Symbol != "MLGO" {
		t.Fatalf("unexpected overview %s", res.Overview.Symbol)
	}
	if len(res.News) != 5 || !res.HasMoreNews || res.TotalNewsCount != 15 {
		t.Fatalf("unexpected news page: %d items, hasMore=%v, total=%d",
			len(res.News), res.HasMoreNews, res.TotalNewsCount)
	}
}

func TestOverviewNewsOnly(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/stock-overview?symbol=MLGO&newsOnly=true&page=2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}

	var res models.OverviewResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if res.Overview.Symbol != "" {
		t.Fatalf("newsOnly should blank the overview")
	}
	if len(res.News) != 5 {
		t.Fatalf("expected 5 news items, got %d", len(res.News))
	}
}

func TestSearch(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/symbol-search?keyword=micro", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}

	var res models.SearchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(res.SearchResults) != 10 {
		t.Fatalf("expected 10 results, got %d", len(res.SearchResults))
	}
	if len(res.FilterOptions.Currencies) == 0 {
		t.Fatalf("expected derived facets")
	}
}

func TestSearchThrottled(t *testing.T) {
	e := newTestServer(t)

	first := doJSON(e, http.MethodGet, "/api/symbol-search?keyword=micro", "")
	if first.Code != http.StatusOK {
		t.Fatalf("first call should pass, got %d", first.Code)
	}

	second := doJSON(e, http.MethodGet, "/api/symbol-search?keyword=micro", "")
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("second call should be throttled, got %d", second.Code)
	}

	var res models.SearchResponse
	if err := json.Unmarshal(second.Body.Bytes(), &res); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if !strings.HasPrefix(res.Error, "Too many requests.") {
		t.Fatalf("unexpected error %q", res.Error)
	}
	if res.SearchResults == nil || res.FilterOptions.Types == nil {
		t.Fatalf("throttled body should carry empty arrays, not null")
	}
	if len(res.SearchResults) != 0 {
		t.Fatalf("throttled body should have no results")
	}
}

func TestSearchCallersThrottledIndependently(t *testing.T) {
	e := newTestServer(t)

	a := httptest.NewRequest(http.MethodGet, "/api/symbol-search?keyword=micro", nil)
	a.Header.Set("X-Forwarded-For", "10.0.0.1")
	recA := httptest.NewRecorder()
	e.ServeHTTP(recA, a)

	b := httptest.NewRequest(http.MethodGet, "/api/symbol-search?keyword=micro", nil)
	b.Header.Set("X-Forwarded-For", "10.0.0.2")
	recB := httptest.NewRecorder()
	e.ServeHTTP(recB, b)

	if recA.Code != http.StatusOK || recB.Code != http.StatusOK {
		t.Fatalf("distinct callers should not share a throttle window: %d/%d", recA.Code, recB.Code)
	}
}

func TestSearchMissingKeyword(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/symbol-search", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", rec.Code)
	}

	var res models.SearchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if res.Error != "Keyword parameter is required" {
		t.Fatalf("unexpected error %q", res.Error)
	}
}

func TestHealth(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
}
