// Package metrics exports prometheus counters for list operations.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricNamespace = "llist"

// Failure kinds.
const (
	KindInvalidArgument = "invalid_argument"
	KindOutOfRange      = "out_of_range"
	KindAllocation      = "allocation"
	KindStaleIterator   = "stale_iterator"
	KindExhausted       = "exhausted"
	KindUnknown         = "unknown"
)

// Metrics holds the collectors shared by every list configured with it.
// A nil *Metrics records nothing.
type Metrics struct {
	operations *prometheus.CounterVec
	failures   *prometheus.CounterVec
	nodes      *prometheus.GaugeVec
}

// New creates the collectors and registers them with reg. A nil reg
// leaves them unregistered.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:      "operations_total",
			Help:      "Total number of list operations.",
			Namespace: metricNamespace,
		}, []string{"list", "op"}),

		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:      "failures_total",
			Help:      "Total number of failed list operations by error kind.",
			Namespace: metricNamespace,
		}, []string{"list", "op", "kind"}),

		nodes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:      "nodes",
			Help:      "Number of live nodes.",
			Namespace: metricNamespace,
		}, []string{"list"}),
	}

	if reg != nil {
		reg.MustRegister(m.operations, m.failures, m.nodes)
	}

	return m
}

// Op counts one operation on list.
func (m *Metrics) Op(list, op string) {
	if m == nil {
		return
	}

	m.operations.WithLabelValues(list, op).Inc()
}

// Failure counts one failed operation.
func (m *Metrics) Failure(list, op, kind string) {
	if m == nil {
		return
	}

	m.failures.WithLabelValues(list, op, kind).Inc()
}

// AddNodes moves the live node gauge of list by delta.
func (m *Metrics) AddNodes(list string, delta int) {
	if m == nil || delta == 0 {
		return
	}

	m.nodes.WithLabelValues(list).Add(float64(delta))
}

// Forget drops every series of list.
func (m *Metrics) Forget(list string) {
	if m == nil {
		return
	}

	m.operations.DeletePartialMatch(prometheus.Labels{"list": list})
	m.failures.DeletePartialMatch(prometheus.Labels{"list": list})
	m.nodes.DeleteLabelValues(list)
}
