// Package metric provides Prometheus instrumentation for the PTIL encoder:
// Encode call counts and latency, recovered-degradation counts per
// component, CSC throughput, pooled-parser utilization, and tokenizer
// compatibility check outcomes.
//
// MetricsRegistry owns a private prometheus.Registry (never the global
// default one, so multiple Encoders can coexist in a process without
// colliding) and additionally exposes RegisterCounter/RegisterGauge/... for
// callers that want to attach their own metrics under the same registry.
package metric
