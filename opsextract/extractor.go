package opsextract

import (
	"github.com/c360/ptil/csc"
	"github.com/c360/ptil/lingua"
)

// modalityOrder, aspectOrder, and temporalOrder fix the iteration order
// within their category so that, on the rare occasion two operators of the
// same category are cued at the same token index, emission is
// deterministic rather than dependent on Go's unordered map iteration.
var (
	modalityOrder = []csc.Operator{csc.OpPossible, csc.OpNecessary, csc.OpObligatory, csc.OpPermitted}
	aspectOrder   = []csc.Operator{csc.OpContinuous, csc.OpCompleted, csc.OpHabitual}
	temporalOrder = []csc.Operator{csc.OpPast, csc.OpPresent, csc.OpFuture}
)

// Extract walks a's tokens in ascending index order and returns the
// non-commutative OPS sequence for predicateIndex, per spec §4.3: within
// one token index cues are emitted polarity, modality, aspect, temporal;
// across indices, emission tracks source position; each operator appears
// at most once, at the leftmost index that cued it.
//
// Causation and direction are members of the Operator closed set (spec §3)
// but §4.3's walk names only temporal, aspect, polarity, and modal cues —
// this extractor honors that literally. lingua.Analysis still carries
// CausationMarkers/DirectionMarkers for callers that want them directly.
func Extract(a lingua.Analysis, predicateIndex int) []csc.Operator {
	if len(a.Tokens) == 0 {
		return nil
	}

	start, end := clauseBounds(a, predicateIndex)

	var ops []csc.Operator
	seen := make(map[csc.Operator]bool)
	emit := func(op csc.Operator) {
		if !seen[op] {
			seen[op] = true
			ops = append(ops, op)
		}
	}

	for i := start; i < end; i++ {
		if a.NegMarkers[i] {
			emit(csc.OpNegation)
		}
		for _, op := range modalityOrder {
			if a.ModalMarkers[op][i] {
				emit(op)
			}
		}
		for _, op := range aspectOrder {
			if a.AspectMarkers[op][i] {
				emit(op)
			}
		}
		for _, op := range temporalOrder {
			if a.TenseMarkers[op][i] {
				emit(op)
			}
		}
	}

	return ops
}

// clauseBounds finds the punctuation-delimited span around predicateIndex
// that a's OPS cues are drawn from. Cross-clause cue association through
// a real dependency chain is future work; bounding by punctuation is a
// deliberate, documented approximation that holds for every sentence
// shape this module's RuleParser produces.
func clauseBounds(a lingua.Analysis, predicateIndex int) (start, end int) {
	start = 0
	for i := predicateIndex - 1; i >= 0; i-- {
		if a.POS[i] == "PUNCT" {
			start = i + 1
			break
		}
	}
	end = len(a.Tokens)
	for i := predicateIndex; i < len(a.POS); i++ {
		if a.POS[i] == "PUNCT" {
			end = i
			break
		}
	}
	return start, end
}
