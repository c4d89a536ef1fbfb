// Package ptilerr provides standardized error handling for the PTIL encoder.
// It classifies errors into three causes — invalid input, an unavailable
// parser, or an internal degradation that was recovered from — and supplies
// helpers for consistent wrapping and classification across components.
//
// # Classes
//
//   - InvalidInput: the caller gave the pipeline something it cannot process
//     (empty text, an unsupported language, malformed configuration).
//   - ParserUnavailable: the configured Analyzer could not be constructed or
//     reached (model load failure, pool exhaustion).
//   - InternalDegradation: a component hit a case it could not resolve
//     cleanly and fell back to a safe default (unmapped predicate, dropped
//     incompatible role) rather than failing the whole encode.
//
// InternalDegradation is not returned to callers by itself — it is recorded
// on a diagnostics channel (see package encoder) and the encode proceeds.
// The other two classes always terminate the call that produced them.
//
// # Usage
//
//	if text == "" {
//	    return nil, ptilerr.WrapInvalid(errors.New("empty text"), "Encoder", "Encode", "text must be non-empty")
//	}
//
//	if ptilerr.IsDegraded(err) {
//	    diagnostics = append(diagnostics, err)
//	    continue // degraded but not fatal
//	}
package ptilerr
