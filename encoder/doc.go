// Package encoder is the public facade (spec §4.8): it wires the Analyzer
// (C1), ROOT Mapper (C2), OPS Extractor (C3), ROLES Binder (C4), META
// Detector (C5), CSC Assembler (C6), and Serializer (C7) into the three
// operations a host service calls — Encode, EncodeAndSerialize, and
// EncodeForTraining.
//
// The facade is pure and stateless after construction: one Encoder may be
// shared across any number of concurrent callers. If the wrapped Analyzer
// is not itself safe for concurrent use, wrap it in lingua.Pooled before
// passing it to WithAnalyzer — the facade never serializes access on the
// caller's behalf.
//
// Per spec §7, only construction-time failures and InvalidInput (unknown
// format or format_type) ever return an error from this package's
// exported operations. Everything else — an empty dependency parse, an
// unmapped predicate, an inadmissible role — is a recovered
// InternalDegradation: Encode falls back to the documented default and
// reports what happened on the diagnostic slice it returns, without
// altering the serialized output.
package encoder
