// Package monitoring exposes Prometheus counters for classification
// traffic. All record methods are nil-safe so the engine can run without
// a metrics sink.
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/partdetect/partclass/taxonomy"
)

// Metrics holds the engine's Prometheus collectors.
type Metrics struct {
	ClassifyTotal    *prometheus.CounterVec
	ExtractTotal     *prometheus.CounterVec
	ReplacementTotal *prometheus.CounterVec
}

// New creates the collectors and registers them with reg. Pass
// prometheus.DefaultRegisterer for the process-global registry, or a
// private registry in tests.
func New(namespace string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ClassifyTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "classify_total",
				Help:      "Classification queries by requested kind and outcome",
			},
			[]string{"kind", "matched"},
		),
		ExtractTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "extract_total",
				Help:      "Series and package extractions by operation and outcome",
			},
			[]string{"op", "hit"},
		),
		ReplacementTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "replacement_total",
				Help:      "Replacement checks by outcome",
			},
			[]string{"compatible"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.ClassifyTotal, m.ExtractTotal, m.ReplacementTotal)
	}
	return m
}

// RecordClassify counts one classification query.
func (m *Metrics) RecordClassify(kind taxonomy.Kind, matched bool) {
	if m == nil {
		return
	}
	m.ClassifyTotal.WithLabelValues(kind.String(), boolLabel(matched)).Inc()
}

// RecordExtract counts one series or package extraction.
func (m *Metrics) RecordExtract(op string, hit bool) {
	if m == nil {
		return
	}
	m.ExtractTotal.WithLabelValues(op, boolLabel(hit)).Inc()
}

// RecordReplacement counts one replacement check.
func (m *Metrics) RecordReplacement(compatible bool) {
	if m == nil {
		return
	}
	m.ReplacementTotal.WithLabelValues(boolLabel(compatible)).Inc()
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
