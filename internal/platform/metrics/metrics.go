// Package metrics records registry activity as Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

// Purchase failure reasons used as label values.
const (
	ReasonInsufficientCapacity = "insufficient_capacity"
	ReasonInvalidQuantity      = "invalid_quantity"
	ReasonNotConfigured        = "not_configured"
)

// Recorder receives registry activity.
type Recorder interface {
	EventAdded()
	EventRejected(rules []string)
	TicketsSold(quantity int, total decimal.Decimal)
	PurchaseFailed(reason string)
}

// Nop returns a Recorder that discards everything.
func Nop() Recorder {
	return nopRecorder{}
}

type nopRecorder struct{}

func (nopRecorder) EventAdded()                      {}
func (nopRecorder) EventRejected([]string)           {}
func (nopRecorder) TicketsSold(int, decimal.Decimal) {}
func (nopRecorder) PurchaseFailed(string)            {}

// PrometheusRecorder implements Recorder on a private prometheus.Registry,
// so several recorders can coexist in one process (and in tests).
type PrometheusRecorder struct {
	registry *prometheus.Registry

	eventsAdded     prometheus.Counter
	eventsRejected  *prometheus.CounterVec
	ticketsSold     prometheus.Counter
	revenue         prometheus.Counter
	purchaseFailure *prometheus.CounterVec
}

// NewPrometheusRecorder creates and registers the registry collectors under namespace.
func NewPrometheusRecorder(namespace string) *PrometheusRecorder {
	r := &PrometheusRecorder{
		registry: prometheus.NewRegistry(),
		eventsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "registry",
			Name:      "events_added_total",
			Help:      "Total number of events accepted into the registry",
		}),
		eventsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "registry",
			Name:      "events_rejected_total",
			Help:      "Total number of rule rejections, by rule",
		}, []string{"rule"}),
		ticketsSold: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tickets",
			Name:      "sold_total",
			Help:      "Total number of tickets sold",
		}),
		revenue: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tickets",
			Name:      "revenue_total",
			Help:      "Total amount charged for tickets",
		}),
		purchaseFailure: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tickets",
			Name:      "purchase_failures_total",
			Help:      "Total number of failed ticket purchases, by reason",
		}, []string{"reason"}),
	}

	r.registry.MustRegister(r.eventsAdded, r.eventsRejected, r.ticketsSold, r.revenue, r.purchaseFailure)
	return r
}

// Registry returns the prometheus registry holding the collectors.
func (r *PrometheusRecorder) Registry() *prometheus.Registry {
	return r.registry
}

// EventAdded implements Recorder.
func (r *PrometheusRecorder) EventAdded() {
	r.eventsAdded.Inc()
}

// EventRejected implements Recorder.
func (r *PrometheusRecorder) EventRejected(rules []string) {
	for _, name := range rules {
		r.eventsRejected.WithLabelValues(name).Inc()
	}
}

// TicketsSold implements Recorder.
func (r *PrometheusRecorder) TicketsSold(quantity int, total decimal.Decimal) {
	r.ticketsSold.Add(float64(quantity))
	r.revenue.Add(total.InexactFloat64())
}

// PurchaseFailed implements Recorder.
func (r *PrometheusRecorder) PurchaseFailed(reason string) {
	r.purchaseFailure.WithLabelValues(reason).Inc()
}
