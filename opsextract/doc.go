// Package opsextract is the OPS Extractor (C3): it walks a predicate's
// clause left-to-right by token index and emits the ordered, non-
// commutative operator sequence spec §4.3 defines, reading cues out of the
// marker tables a lingua.Analysis carries rather than re-deriving them.
package opsextract
