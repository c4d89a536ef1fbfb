package encoder

import (
	"github.com/c360/ptil/lingua"
	"github.com/c360/ptil/metric"
)

// Option configures an Encoder at construction time.
type Option func(*Encoder)

// WithAnalyzer overrides the default per-language lingua.RuleParser with
// analyzer. Use this to install a lingua.Pooled wrapper, or any other
// Analyzer, without changing call sites.
func WithAnalyzer(analyzer lingua.Analyzer) Option {
	return func(e *Encoder) {
		e.analyzer = analyzer
	}
}

// WithMetrics attaches m so Encode* calls record outcome counters,
// durations, and degradation counts.
func WithMetrics(m *metric.Metrics) Option {
	return func(e *Encoder) {
		e.metrics = m
	}
}

// WithDiagnosticSink registers sink to be called once per Diagnostic an
// Encode call produces, in addition to the diagnostics returned directly
// from Encode. sink must not block; it is called synchronously from the
// encoding goroutine.
func WithDiagnosticSink(sink func(Diagnostic)) Option {
	return func(e *Encoder) {
		e.diagnosticSink = sink
	}
}
