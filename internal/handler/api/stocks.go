package api

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"StockScope/internal/domain/models"
	"StockScope/internal/service/metrics"
	"StockScope/internal/service/throttle"
	"StockScope/internal/usecase"
	xhttp "StockScope/pkg/http"
	xlogger "StockScope/pkg/logger"

	"github.com/labstack/echo/v4"
)

const (
	maxBatchSymbols = 5

	callerKeyFallback = "global"
)

// StocksHandler implements the Echo HTTP handlers for the stock endpoints.
type StocksHandler struct {
	prices     *usecase.PricesUsecase
	historical *usecase.HistoricalUsecase
	overview   *usecase.OverviewUsecase
	search     *usecase.SearchUsecase

	guard          *throttle.Guard
	priceWindow    time.Duration
	throttlePrices bool

	recorder *metrics.Recorder
	logger   *xlogger.Logger
}

// Option configures StocksHandler.
type Option func(*StocksHandler)

// WithPriceThrottle enables the batch-price throttle window. It is only
// applied when requests hit a real upstream; generated data is free.
func WithPriceThrottle(window time.Duration) Option {
	return func(h *StocksHandler) {
		h.priceWindow = window
		h.throttlePrices = true
	}
}

func NewStocksHandler(
	prices *usecase.PricesUsecase,
	historical *usecase.HistoricalUsecase,
	overview *usecase.OverviewUsecase,
	search *usecase.SearchUsecase,
	guard *throttle.Guard,
	recorder *metrics.Recorder,
	logger *xlogger.Logger,
	opts ...Option,
) *StocksHandler {
	h := &StocksHandler{
		prices:     prices,
		historical: historical,
		overview:   overview,
		search:     search,
		guard:      guard,
		recorder:   recorder,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *StocksHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/stock-prices", h.Prices)
	g.GET("/stock-historical", h.Historical)
	g.GET("/stock-overview", h.Overview)
	g.GET("/symbol-search", h.Search)
	e.GET("/healthz", h.Health)
}

// Prices handles the batch daily-price request.
func (h *StocksHandler) Prices(c echo.Context) error {
	if h.throttlePrices {
		key := "price-" + callerKey(c)
		if res := h.guard.Check(key, h.priceWindow); res.Throttled {
			h.recorder.Throttled("stock_prices")
			seconds := int(math.Ceil(res.RetryAfter.Seconds()))
			return xhttp.TooManyRequestsResponse(c,
				fmt.Sprintf("Too many requests. Try again in %d seconds.", seconds))
		}
	}

	req := &models.PricesRequest{}
	if err := c.Bind(req); err != nil {
		return xhttp.BadRequestResponse(c, "Symbols array is required")
	}

	if req.Symbols == nil {
		return xhttp.BadRequestResponse(c, "Symbols array is required")
	}
	if len(req.Symbols) > maxBatchSymbols {
		return xhttp.BadRequestResponse(c, "Maximum 5 symbols allowed")
	}
	if len(req.Symbols) == 0 {
		return xhttp.BadRequestResponse(c, "At least one symbol is required")
	}

	results := h.prices.Batch(c.Request().Context(), req.Symbols)
	return xhttp.SuccessResponse(c, results)
}

// Historical handles the historical chart request.
func (h *StocksHandler) Historical(c echo.Context) error {
	req := &models.HistoricalRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, xhttp.ValidationMessage(verr))
	}

	res, err := h.historical.Series(c.Request().Context(), req.Symbol, req.Timeframe)
	if err != nil {
		h.logger.Error("historical usecase error",
			xlogger.String("symbol", req.Symbol),
			xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

// Overview handles the company overview plus news-page request.
func (h *StocksHandler) Overview(c echo.Context) error {
	req := &models.OverviewRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, xhttp.ValidationMessage(verr))
	}

	res, err := h.overview.Get(c.Request().Context(), req.Symbol, req.Page, req.Limit, req.NewsOnly)
	if err != nil {
		h.logger.Error("overview usecase error",
			xlogger.String("symbol", req.Symbol),
			xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

// Search handles the symbol-search request. The throttle runs before keyword
// validation so a misbehaving caller still burns its window.
func (h *StocksHandler) Search(c echo.Context) error {
	if msg, throttled := h.search.ThrottleCheck(callerKey(c)); throttled {
		return c.JSON(http.StatusTooManyRequests, emptySearchResponse(msg))
	}

	req := &models.SearchRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return c.JSON(http.StatusBadRequest, emptySearchResponse(xhttp.ValidationMessage(verr)))
	}

	res, err := h.search.Search(c.Request().Context(), req.Keyword)
	if err != nil {
		h.logger.Error("search usecase error",
			xlogger.String("keyword", req.Keyword),
			xlogger.Error(err))
		status, msg := http.StatusInternalServerError, "Failed to fetch data from Alpha Vantage API"
		var appErr *xhttp.AppError
		if errors.As(err, &appErr) {
			status, msg = appErr.Status, appErr.Message
		}
		return c.JSON(status, emptySearchResponse(msg))
	}
	return xhttp.SuccessResponse(c, res)
}

// Health is the liveness probe.
func (h *StocksHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// callerKey identifies the requester for throttling. Proxied deployments set
// X-Forwarded-For; everything else shares one bucket.
func callerKey(c echo.Context) string {
	if v := strings.TrimSpace(c.Request().Header.Get("X-Forwarded-For")); v != "" {
		return v
	}
	return callerKeyFallback
}

// emptySearchResponse is the error shape of the search endpoint: the result
// arrays are present but empty so clients can render without nil checks.
func emptySearchResponse(msg string) models.SearchResponse {
	return models.SearchResponse{
		SearchResults: []models.SymbolMatch{},
		FilterOptions: models.FilterOptions{
			Types:      []string{},
			Regions:    []string{},
			Currencies: []string{},
		},
		Error: msg,
	}
}
