package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder exposes domain counters over Prometheus.
type Recorder struct {
	cacheHits       *prometheus.CounterVec
	cacheMisses     *prometheus.CounterVec
	throttledTotal  *prometheus.CounterVec
	pointsGenerated *prometheus.CounterVec
	providerErrors  *prometheus.CounterVec
}

var (
	newOnce  sync.Once
	instance *Recorder
)

// New returns the process-wide Prometheus metrics recorder. Counters live on
// the default registry, so only one set is ever created.
func New() *Recorder {
	newOnce.Do(func() {
		instance = newRecorder()
	})
	return instance
}

func newRecorder() *Recorder {
	return &Recorder{
		cacheHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockscope_cache_hits_total",
				Help: "Total number of cache hits",
			},
			[]string{"cache"},
		),
		cacheMisses: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockscope_cache_misses_total",
				Help: "Total number of cache misses",
			},
			[]string{"cache"},
		),
		throttledTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockscope_throttled_requests_total",
				Help: "Total number of throttled requests",
			},
			[]string{"endpoint"},
		),
		pointsGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockscope_points_generated_total",
				Help: "Total number of simulated data points generated",
			},
			[]string{"kind"},
		),
		providerErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockscope_provider_errors_total",
				Help: "Total number of upstream provider errors",
			},
			[]string{"operation"},
		),
	}
}

func (r *Recorder) CacheHit(cache string)  { r.cacheHits.WithLabelValues(cache).Inc() }
func (r *Recorder) CacheMiss(cache string) { r.cacheMisses.WithLabelValues(cache).Inc() }

func (r *Recorder) Throttled(endpoint string) { r.throttledTotal.WithLabelValues(endpoint).Inc() }

func (r *Recorder) PointsGenerated(kind string, n int) {
	r.pointsGenerated.WithLabelValues(kind).Add(float64(n))
}

func (r *Recorder) ProviderError(operation string) {
	r.providerErrors.WithLabelValues(operation).Inc()
}
