package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/anupks5942/portfolio/internal/relay"
)

// Metrics holds the Prometheus instruments for the site.
type Metrics struct {
	registry        *prometheus.Registry
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	uiEvents        *prometheus.CounterVec
	relaySubmission *prometheus.CounterVec
	relayDuration   prometheus.Histogram
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_http_requests_total",
			Help: "Total number of HTTP requests completed",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "portfolio_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		uiEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_ui_events_total",
			Help: "Navbar events reduced, by event and whether the navbar changed",
		}, []string{"event", "result"}),
		relaySubmission: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_contact_relay_total",
			Help: "Contact form submissions by outcome",
		}, []string{"outcome"}),
		relayDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "portfolio_contact_relay_duration_seconds",
			Help:    "Time spent relaying one contact submission",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 15, 30},
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.uiEvents,
		m.relaySubmission,
		m.relayDuration,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) observeRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) observeUIEvent(event, result string) {
	m.uiEvents.WithLabelValues(event, result).Inc()
}

// ObserveRelay implements relay.Recorder.
func (m *Metrics) ObserveRelay(outcome relay.Outcome, elapsed time.Duration) {
	m.relaySubmission.WithLabelValues(string(outcome)).Inc()
	if outcome != relay.OutcomeInvalid {
		m.relayDuration.Observe(elapsed.Seconds())
	}
}
