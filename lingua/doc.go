// Package lingua is the Linguistic Analyzer (C1): it turns raw text into
// the tokens/POS/dependency/marker structure every downstream component
// consumes, behind a capability interface so the rest of the pipeline never
// depends on a specific parsing library.
//
// RuleParser is the default, dependency-free Analyzer: a closed-class POS
// lookup plus a small set of projective attachment rules anchored on the
// sentence's finite verb. It ships because the module must build and run
// without a model-download step; a production deployment is free to wire
// in a different Analyzer (a CGo binding to a real dependency parser, a
// subprocess-based one, …) through the same interface.
//
// Pooled adapts any Analyzer that is not safe for concurrent use into one
// that is, by checking instances in and out of a fixed-size pool.
package lingua
