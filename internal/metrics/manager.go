// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "allblack"

type Manager struct {
	// counters
	CounterRequests    *prometheus.CounterVec
	CounterTestRecords *prometheus.CounterVec
	CounterPrefWrites  *prometheus.CounterVec
	CounterToolCalls   *prometheus.CounterVec

	// gauges
	GaugeRequests    prometheus.Gauge
	GaugeTestRecords prometheus.Gauge

	// histograms
	HistRequestDuration *prometheus.HistogramVec
}

// NewRegistry returns a private registry with the Go runtime and process
// collectors already registered.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func NewTestManager() *Manager {
	return NewManager(prometheus.NewRegistry())
}

func NewManager(reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	return &Manager{
		CounterRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "The total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		CounterTestRecords: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "test_records_total",
			Help:      "Test record mutations by operation",
		}, []string{"op"}),
		CounterPrefWrites: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pref_writes_total",
			Help:      "Preference writes by result",
		}, []string{"result"}),
		CounterToolCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mcp_tool_calls_total",
			Help:      "MCP tool calls by tool and result",
		}, []string{"tool", "result"}),
		GaugeRequests: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Current number of requests served",
		}),
		GaugeTestRecords: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "test_records",
			Help:      "Number of stored test records",
		}),
		HistRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"route"}),
	}
}

// PrefWriteResult records the outcome of a preference write.
func (m *Manager) PrefWriteResult(err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.CounterPrefWrites.WithLabelValues("error").Inc()
		return
	}
	m.CounterPrefWrites.WithLabelValues("ok").Inc()
}
