package observability

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusHooks records pipeline and HTTP events as Prometheus metrics in
// a registry of its own, so several instances can coexist in one process.
type PrometheusHooks struct {
	registry *prometheus.Registry

	stageTotal    *prometheus.CounterVec
	stageDuration *prometheus.HistogramVec
	courses       prometheus.Histogram
	inFlight      prometheus.Gauge
	requestTotal  *prometheus.CounterVec
	requestTime   *prometheus.HistogramVec
}

// NewPrometheusHooks creates the hooks and registers their collectors
// together with the Go runtime and process collectors.
func NewPrometheusHooks() *PrometheusHooks {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	f := promauto.With(reg)

	return &PrometheusHooks{
		registry: reg,
		stageTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "curricula_stage_total",
			Help: "Pipeline stages run, by stage and outcome",
		}, []string{"stage", "status"}),
		stageDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "curricula_stage_duration_seconds",
			Help:    "Duration of pipeline stages",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 10),
		}, []string{"stage"}),
		courses: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "curricula_analyzed_courses",
			Help:    "Number of courses per analyzed curriculum",
			Buckets: []float64{10, 25, 50, 100, 200, 400, 800},
		}),
		inFlight: f.NewGauge(prometheus.GaugeOpts{
			Name: "curricula_http_requests_in_flight",
			Help: "HTTP requests currently being served",
		}),
		requestTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "curricula_http_requests_total",
			Help: "HTTP requests served, by method, route and status code",
		}, []string{"method", "route", "code"}),
		requestTime: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "curricula_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// Registry returns the registry holding the hooks' collectors.
func (h *PrometheusHooks) Registry() *prometheus.Registry { return h.registry }

// Handler serves the registry in the Prometheus exposition format.
func (h *PrometheusHooks) Handler() http.Handler {
	return promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{Registry: h.registry})
}

func (h *PrometheusHooks) OnStageStart(context.Context, string) {}

func (h *PrometheusHooks) OnStageComplete(_ context.Context, stage string, count int, d time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	h.stageTotal.WithLabelValues(stage, status).Inc()
	h.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
	if stage == StageLoad && err == nil {
		h.courses.Observe(float64(count))
	}
}

func (h *PrometheusHooks) OnRequest(context.Context, string, string) {
	h.inFlight.Inc()
}

func (h *PrometheusHooks) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	h.inFlight.Dec()
	h.requestTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	h.requestTime.WithLabelValues(method, route).Observe(d.Seconds())
}
