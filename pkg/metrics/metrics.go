package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry bundles the service's prometheus collectors.
type Registry struct {
	reg              *prometheus.Registry
	PreviewRecompute prometheus.Counter
	BillsGenerated   prometheus.Counter
	PersistFailures  prometheus.Counter
	Prints           *prometheus.CounterVec
	ActiveSessions   prometheus.Gauge
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	preview := prometheus.NewCounter(prometheus.CounterOpts{Name: "medbill_preview_recompute_total"})
	generated := prometheus.NewCounter(prometheus.CounterOpts{Name: "medbill_bills_generated_total"})
	persistFailures := prometheus.NewCounter(prometheus.CounterOpts{Name: "medbill_store_details_persist_failures_total"})
	prints := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "medbill_prints_total"}, []string{"kind"})
	sessions := prometheus.NewGauge(prometheus.GaugeOpts{Name: "medbill_active_sessions"})

	r.MustRegister(preview, generated, persistFailures, prints, sessions)
	return &Registry{
		reg:              r,
		PreviewRecompute: preview,
		BillsGenerated:   generated,
		PersistFailures:  persistFailures,
		Prints:           prints,
		ActiveSessions:   sessions,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
