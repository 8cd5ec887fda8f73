package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestGenerationMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewGenerationMetrics(reg)
	m.ObserveGeneration("ok", 1.2)
	m.ObserveGeneration("missing_credential", 0.0)
}

func TestRecordMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewRecordMetrics(reg)
	m.ObserveMutation("patients", "add")
	m.ObserveMutation("appointments", "delete")
}

func TestMetricsNilSafe(t *testing.T) {
	var g *GenerationMetrics
	g.ObserveGeneration("ok", 0.1)

	var r *RecordMetrics
	r.ObserveMutation("patients", "update")
}
