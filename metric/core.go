package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains the library-level metrics for the PTIL encoder.
type Metrics struct {
	EncodeTotal        *prometheus.CounterVec
	EncodeDuration     *prometheus.HistogramVec
	DegradationsTotal  *prometheus.CounterVec
	CSCsEmitted        prometheus.Counter
	ActiveParsers      *prometheus.GaugeVec
	TokenizerMismatches *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance with every PTIL metric
// registered under the "ptil" namespace.
func NewMetrics() *Metrics {
	return &Metrics{
		EncodeTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ptil",
				Subsystem: "encoder",
				Name:      "encode_total",
				Help:      "Total number of Encode calls, by language and outcome",
			},
			[]string{"language", "outcome"},
		),

		EncodeDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "ptil",
				Subsystem: "encoder",
				Name:      "encode_duration_seconds",
				Help:      "Wall time spent in a single Encode call",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"language"},
		),

		DegradationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ptil",
				Subsystem: "encoder",
				Name:      "degradations_total",
				Help:      "Total number of recovered internal degradations, by component",
			},
			[]string{"component"},
		),

		CSCsEmitted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "ptil",
				Subsystem: "encoder",
				Name:      "cscs_emitted_total",
				Help:      "Total number of CSC records emitted across all Encode calls",
			},
		),

		ActiveParsers: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "ptil",
				Subsystem: "lingua",
				Name:      "active_parsers",
				Help:      "Number of Analyzer instances currently checked out of a pool",
			},
			[]string{"language"},
		),

		TokenizerMismatches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ptil",
				Subsystem: "serialize",
				Name:      "tokenizer_mismatches_total",
				Help:      "Total number of tokenizer-compatibility check failures, by tokenizer family",
			},
			[]string{"family"},
		),
	}
}

// RecordEncode records the outcome of a single Encode call.
func (m *Metrics) RecordEncode(language, outcome string, duration time.Duration) {
	m.EncodeTotal.WithLabelValues(language, outcome).Inc()
	m.EncodeDuration.WithLabelValues(language).Observe(duration.Seconds())
}

// RecordDegradation increments the degradation counter for component.
func (m *Metrics) RecordDegradation(component string) {
	m.DegradationsTotal.WithLabelValues(component).Inc()
}

// RecordCSCsEmitted adds n to the total CSC count.
func (m *Metrics) RecordCSCsEmitted(n int) {
	m.CSCsEmitted.Add(float64(n))
}

// SetActiveParsers sets the current checked-out count for language.
func (m *Metrics) SetActiveParsers(language string, n int) {
	m.ActiveParsers.WithLabelValues(language).Set(float64(n))
}

// RecordTokenizerMismatch increments the mismatch counter for a tokenizer
// family ("bpe", "unigram", "wordpiece").
func (m *Metrics) RecordTokenizerMismatch(family string) {
	m.TokenizerMismatches.WithLabelValues(family).Inc()
}
