// Package metrics exports reducer and HTTP events to Prometheus.
//
// A [Collector] implements both [observability.ReducerHooks] and
// [observability.HTTPHooks]; register it once at startup and expose the
// registry with [Collector.Handler]:
//
//	c := metrics.New(prometheus.NewRegistry())
//	observability.SetReducerHooks(c)
//	observability.SetHTTPHooks(c)
//	router.Handle("/metrics", c.Handler())
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matzehuels/gramod/pkg/observability"
)

const namespace = "gramod"

// Collector records reductions and requests.
type Collector struct {
	registry *prometheus.Registry

	reductions      *prometheus.CounterVec
	reduceDuration  prometheus.Histogram
	reduceLevels    prometheus.Histogram
	inflight        prometheus.Gauge
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New creates a Collector and registers its metrics with reg.
func New(reg *prometheus.Registry) *Collector {
	c := &Collector{
		registry: reg,
		reductions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reducer",
			Name:      "reductions_total",
			Help:      "Number of completed reductions by outcome.",
		}, []string{"outcome"}),
		reduceDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "reducer",
			Name:      "duration_seconds",
			Help:      "Time spent reducing a tower.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		reduceLevels: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "reducer",
			Name:      "levels",
			Help:      "Number of levels walked before convergence.",
			Buckets:   prometheus.LinearBuckets(0, 2, 12),
		}),
		inflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "reducer",
			Name:      "inflight",
			Help:      "Reductions currently running.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Served HTTP requests by method and status code.",
		}, []string{"method", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency of served HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}

	reg.MustRegister(
		c.reductions,
		c.reduceDuration,
		c.reduceLevels,
		c.inflight,
		c.requests,
		c.requestDuration,
	)
	return c
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// OnReduceStart implements observability.ReducerHooks.
func (c *Collector) OnReduceStart(context.Context, int, int) {
	c.inflight.Inc()
}

// OnReduceComplete implements observability.ReducerHooks.
func (c *Collector) OnReduceComplete(_ context.Context, _, _, levels int, d time.Duration, err error) {
	c.inflight.Dec()
	if err != nil {
		c.reductions.WithLabelValues("error").Inc()
		return
	}
	c.reductions.WithLabelValues("ok").Inc()
	c.reduceDuration.Observe(d.Seconds())
	c.reduceLevels.Observe(float64(levels))
}

// OnRequest implements observability.HTTPHooks.
func (c *Collector) OnRequest(context.Context, string, string) {}

// OnResponse implements observability.HTTPHooks.
func (c *Collector) OnResponse(_ context.Context, method, _ string, status int, d time.Duration) {
	c.requests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	c.requestDuration.WithLabelValues(method).Observe(d.Seconds())
}

var (
	_ observability.ReducerHooks = (*Collector)(nil)
	_ observability.HTTPHooks    = (*Collector)(nil)
)
