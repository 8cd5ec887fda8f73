package metrics

import "github.com/prometheus/client_golang/prometheus"

// GenerationMetrics exposes counters/histograms for the dashboard generation flow.
type GenerationMetrics struct {
	generateTotal   *prometheus.CounterVec
	generateLatency *prometheus.HistogramVec
}

func NewGenerationMetrics(reg prometheus.Registerer) *GenerationMetrics {
	m := &GenerationMetrics{
		generateTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "medicpro",
			Subsystem: "generation",
			Name:      "generate_total",
			Help:      "Total dashboard generation calls by outcome",
		}, []string{"outcome"}),
		generateLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "medicpro",
			Subsystem: "generation",
			Name:      "generate_latency_seconds",
			Help:      "Latency of dashboard generation calls",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.generateTotal, m.generateLatency)
	return m
}

// ObserveGeneration records one generation call. Outcome is "ok" or the
// fallback reason (missing_credential, transport_failure, malformed_response,
// schema_mismatch).
func (m *GenerationMetrics) ObserveGeneration(outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.generateTotal.WithLabelValues(outcome).Inc()
	m.generateLatency.WithLabelValues(outcome).Observe(seconds)
}

// RecordMetrics counts mutations against the in-memory record stores.
type RecordMetrics struct {
	mutationsTotal *prometheus.CounterVec
}

func NewRecordMetrics(reg prometheus.Registerer) *RecordMetrics {
	m := &RecordMetrics{
		mutationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "medicpro",
			Subsystem: "records",
			Name:      "mutations_total",
			Help:      "Total record store mutations",
		}, []string{"collection", "op"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.mutationsTotal)
	return m
}

func (m *RecordMetrics) ObserveMutation(collection, op string) {
	if m == nil {
		return
	}
	m.mutationsTotal.WithLabelValues(collection, op).Inc()
}
