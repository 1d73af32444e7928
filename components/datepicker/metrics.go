package datepicker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts handled events and tracks stored instances.
type Metrics struct {
	Events    *prometheus.CounterVec
	Instances prometheus.Gauge
}

// NewMetrics registers the component collectors with reg. A nil reg uses
// the default registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		Events: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "uikit_datepicker_events_total",
				Help: "Total number of date picker events handled",
			},
			[]string{"action"},
		),
		Instances: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "uikit_datepicker_instances",
				Help: "Number of stored date picker instances",
			},
		),
	}
}

func (m *Metrics) observeEvent(action string) {
	if m == nil || m.Events == nil {
		return
	}
	m.Events.WithLabelValues(action).Inc()
}

func (m *Metrics) setInstances(n int) {
	if m == nil || m.Instances == nil {
		return
	}
	m.Instances.Set(float64(n))
}
