package prometheus

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/asynchandler"
)

// DefaultNamespace prefixes metric names when WithNamespace is not used.
const DefaultNamespace = "asynchandler"

// Collector records finished invocations. It implements asynchandler.Observer.
type Collector struct {
	registerer  prometheus.Registerer
	invocations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// Option configures a Collector.
type Option func(*config)

type config struct {
	namespace  string
	registerer prometheus.Registerer
	buckets    []float64
}

// WithNamespace sets the metric name prefix.
func WithNamespace(ns string) Option {
	return func(c *config) {
		if ns != "" {
			c.namespace = ns
		}
	}
}

// WithRegisterer registers metrics on r instead of prometheus.DefaultRegisterer.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(c *config) {
		if r != nil {
			c.registerer = r
		}
	}
}

// WithBuckets sets the duration histogram buckets (seconds).
func WithBuckets(buckets ...float64) Option {
	return func(c *config) {
		if len(buckets) > 0 {
			c.buckets = buckets
		}
	}
}

// New creates a Collector and registers its metrics.
// It panics if the metrics are already registered, like prometheus.MustRegister.
func New(opts ...Option) *Collector {
	cfg := &config{
		namespace:  DefaultNamespace,
		registerer: prometheus.DefaultRegisterer,
		buckets:    prometheus.DefBuckets,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	c := &Collector{
		registerer: cfg.registerer,
		invocations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.namespace,
				Name:      "invocations_total",
				Help:      "Total wrapped function invocations by outcome",
			},
			[]string{"name", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.namespace,
				Name:      "invocation_duration_seconds",
				Help:      "Wrapped function invocation duration in seconds",
				Buckets:   cfg.buckets,
			},
			[]string{"name", "outcome"},
		),
	}

	cfg.registerer.MustRegister(c.invocations, c.duration)

	return c
}

// Observe implements asynchandler.Observer.
func (c *Collector) Observe(_ context.Context, inv asynchandler.Invocation) {
	outcome := inv.Outcome.String()
	c.invocations.WithLabelValues(inv.Name, outcome).Inc()
	c.duration.WithLabelValues(inv.Name, outcome).Observe(inv.Duration.Seconds())
}

// Handler returns an HTTP handler exposing the registry the collector was registered on.
func (c *Collector) Handler() http.Handler {
	if g, ok := c.registerer.(prometheus.Gatherer); ok {
		return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
	}
	return promhttp.Handler()
}

var _ asynchandler.Observer = (*Collector)(nil)
