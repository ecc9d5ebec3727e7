package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"StockScope/pkg/cache"
	"StockScope/pkg/config"
	xhttp "StockScope/pkg/http"
	applogger "StockScope/pkg/logger"
)

// App encapsulates the application lifecycle: HTTP server plus the caches
// that need closing on shutdown.
type App struct {
	cfg        *config.Config
	handler    xhttp.Handler
	respCache  cache.Service
	log        *applogger.Logger
	httpServer *xhttp.Server
}

// New creates the application with all dependencies injected.
func New(cfg *config.Config, handler xhttp.Handler, respCache cache.Service, log *applogger.Logger) *App {
	return &App{
		cfg:       cfg,
		handler:   handler,
		respCache: respCache,
		log:       log,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	metricsPath := ""
	if a.cfg.Metrics.Enabled {
		metricsPath = a.cfg.Metrics.Path
	}
	a.httpServer = xhttp.NewServer(a.handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithMetricsPath(metricsPath),
	)

	if err := a.httpServer.Start(); err != nil {
		a.log.Error("http server start error", applogger.Error(err))
		return err
	}
	a.log.Info("server started",
		applogger.Int("port", a.cfg.Server.Port),
		applogger.String("provider", a.cfg.Provider.Mode))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.log.Info("shutdown signal received")
	return a.shutdown()
}

func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(ctx); err != nil {
		a.log.Error("http server stop error", applogger.Error(err))
	}

	if a.respCache != nil {
		if err := a.respCache.Close(); err != nil {
			a.log.Error("cache close error", applogger.Error(err))
		}
	}

	a.log.Info("shutdown complete")
	return nil
}
