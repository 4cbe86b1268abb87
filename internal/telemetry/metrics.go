// Metrics registration and collection
//
// Prometheus metrics setup:
// - Counter definitions
// - Histogram definitions
// - Gauge definitions
// - Label schemas
// - Metrics initialization
package telemetry

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics defines the interface for metrics collection
type Metrics interface {
	// Counter operations
	IncCounter(name string)
	IncCounterBy(name string, value int)

	// Gauge operations
	SetGauge(name string, value float64)
	IncGauge(name string)
	DecGauge(name string)

	// Histogram operations
	ObserveHistogram(name string, value float64)

	// Duration operations
	ObserveRequestDuration(path string, duration time.Duration)
	ObserveOriginDuration(host string, duration time.Duration)
}

// promMetrics is a Metrics implementation backed by
// github.com/prometheus/client_golang. Counters, gauges, and histograms
// are created lazily per name and registered against a dedicated
// registry, so callers never have to pre-declare a label schema.
type promMetrics struct {
	registry *prometheus.Registry

	mu         sync.Mutex
	counters   map[string]prometheus.Counter
	gauges     map[string]prometheus.Gauge
	histograms map[string]prometheus.Histogram
}

// NewMetrics creates a new metrics collector with its own registry.
func NewMetrics() Metrics {
	return &promMetrics{
		registry:   prometheus.NewRegistry(),
		counters:   make(map[string]prometheus.Counter),
		gauges:     make(map[string]prometheus.Gauge),
		histograms: make(map[string]prometheus.Histogram),
	}
}

// Registry exposes the underlying prometheus.Registry so a caller can
// serve it over /metrics. It is not part of the Metrics interface, and
// cmd/hlsparse does not serve it.
func (m *promMetrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *promMetrics) counter(name string) prometheus.Counter {
	m.mu.Lock()
	defer m.mu.Unlock()

	if c, ok := m.counters[name]; ok {
		return c
	}
	c := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hlsparse_" + name + "_total",
		Help: "Counter for " + name,
	})
	m.registry.MustRegister(c)
	m.counters[name] = c
	return c
}

func (m *promMetrics) gauge(name string) prometheus.Gauge {
	m.mu.Lock()
	defer m.mu.Unlock()

	if g, ok := m.gauges[name]; ok {
		return g
	}
	g := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "hlsparse_" + name,
		Help: "Gauge for " + name,
	})
	m.registry.MustRegister(g)
	m.gauges[name] = g
	return g
}

func (m *promMetrics) histogram(name string) prometheus.Histogram {
	m.mu.Lock()
	defer m.mu.Unlock()

	if h, ok := m.histograms[name]; ok {
		return h
	}
	h := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "hlsparse_" + name,
		Help:    "Histogram for " + name,
		Buckets: prometheus.DefBuckets,
	})
	m.registry.MustRegister(h)
	m.histograms[name] = h
	return h
}

// IncCounter increments a counter
func (m *promMetrics) IncCounter(name string) {
	m.counter(name).Inc()
}

// IncCounterBy increments a counter by a value
func (m *promMetrics) IncCounterBy(name string, value int) {
	m.counter(name).Add(float64(value))
}

// SetGauge sets a gauge value
func (m *promMetrics) SetGauge(name string, value float64) {
	m.gauge(name).Set(value)
}

// IncGauge increments a gauge
func (m *promMetrics) IncGauge(name string) {
	m.gauge(name).Inc()
}

// DecGauge decrements a gauge
func (m *promMetrics) DecGauge(name string) {
	m.gauge(name).Dec()
}

// ObserveHistogram records a histogram observation
func (m *promMetrics) ObserveHistogram(name string, value float64) {
	m.histogram(name).Observe(value)
}

// ObserveRequestDuration records the duration of a parse request
func (m *promMetrics) ObserveRequestDuration(path string, duration time.Duration) {
	m.histogram("request_duration_" + sanitizeLabel(path)).Observe(duration.Seconds())
}

// ObserveOriginDuration records the duration of a cache-origin round trip
// (a parse that actually ran, as opposed to a cache hit).
func (m *promMetrics) ObserveOriginDuration(host string, duration time.Duration) {
	m.histogram("origin_duration_" + sanitizeLabel(host)).Observe(duration.Seconds())
}

// sanitizeLabel makes a free-form string safe to use as a metric name
// suffix, since Prometheus metric names are restricted to [a-zA-Z0-9_:].
func sanitizeLabel(s string) string {
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			b[i] = c
		default:
			b[i] = '_'
		}
	}
	return string(b)
}
