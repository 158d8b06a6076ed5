package metrics

import (
	"net/http"
	"thumbd/internal/core/port"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "thumbd"

// Prometheus implements port.Recorder on top of a prometheus registry.
type Prometheus struct {
	registry *prometheus.Registry
	lookups  *prometheus.CounterVec
	failures *prometheus.CounterVec
	resize   prometheus.Histogram
}

var _ port.Recorder = (*Prometheus)(nil)

func NewPrometheus() *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Thumbnail cache lookups by result.",
		}, []string{"result"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "failures_total",
			Help:      "Thumbnail resolutions that failed, by reason.",
		}, []string{"reason"}),
		resize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "resize_duration_seconds",
			Help:      "Time spent reading, resizing and storing a thumbnail.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	p.registry.MustRegister(p.lookups, p.failures, p.resize)

	return p
}

func (p *Prometheus) CacheHit() {
	p.lookups.WithLabelValues("hit").Inc()
}

func (p *Prometheus) CacheMiss() {
	p.lookups.WithLabelValues("miss").Inc()
}

func (p *Prometheus) Failure(reason string) {
	p.failures.WithLabelValues(reason).Inc()
}

func (p *Prometheus) ObserveResize(d time.Duration) {
	p.resize.Observe(d.Seconds())
}

// Handler exposes the registry in the prometheus text format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}
