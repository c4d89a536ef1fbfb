package lingua

import "github.com/c360/ptil/csc"

// DepArc is one edge of a dependency tree: dependent is governed by head
// under relation. Arcs reference token indices, not token objects, so an
// Analysis is an acyclic value with no back-references into parser state.
type DepArc struct {
	Head      int
	Relation  string
	Dependent int
}

// Analysis is the output of C1: tokens, aligned POS tags, a dependency
// arc set, and the marker index sets every non-commutative operator and
// role is ultimately read from. A zero-value Analysis (as produced by
// analyzing empty text) has no tokens and satisfies every downstream
// component without special-casing.
type Analysis struct {
	Tokens []string
	POS    []string
	Deps   []DepArc

	// NegMarkers holds the token indices whose POS/lemma/dependency label
	// matches a language-specific negation list.
	NegMarkers map[int]bool

	// TenseMarkers maps csc.OpPast/OpPresent/OpFuture to the token index
	// that determines that predicate's tense (an auxiliary if one
	// governs the predicate, otherwise the verb token itself).
	TenseMarkers map[csc.Operator]map[int]bool

	// AspectMarkers maps csc.OpContinuous/OpCompleted/OpHabitual to
	// token indices.
	AspectMarkers map[csc.Operator]map[int]bool

	// ModalMarkers maps csc.OpPossible/OpNecessary/OpObligatory/OpPermitted
	// to token indices.
	ModalMarkers map[csc.Operator]map[int]bool

	// CausationMarkers maps csc.OpCausative/OpSelfInitiated/OpForced to the
	// token indices of the causative verb that cued them.
	CausationMarkers map[csc.Operator]map[int]bool
	// DirectionMarkers maps csc.OpDirectionIn/OpDirectionOut/OpToward/OpAway
	// to the token indices of the directional preposition that cued them.
	DirectionMarkers map[csc.Operator]map[int]bool

	// Predicates lists the token index of every detected predicate, in
	// textual occurrence order. The OPS Extractor and ROLES Binder are
	// invoked once per entry.
	Predicates []int

	// Interrogative is true when the sentence is a yes/no question
	// (terminal "?" or a do-support inversion).
	Interrogative bool
	// Imperative is true when the sentence opens with a bare verb and no
	// overt subject.
	Imperative bool
	// EpistemicHedge is true when a hedge token ("maybe", "perhaps", …)
	// was found.
	EpistemicHedge bool
	// Evidential is true when an evidential marker ("apparently", …) was
	// found.
	Evidential bool
	// Emotive is true when an emotive adverb ("unfortunately", …) was found.
	Emotive bool
	// Ironic is true when more than one of the language's ironic-tone
	// markers appears in the sentence (per original_source's heuristic: a
	// single "obviously" is assertive, two is a tell).
	Ironic bool
}

// NewAnalysis returns a zero-value Analysis with every map initialized, so
// callers never need a nil check before indexing into it.
func NewAnalysis() Analysis {
	return Analysis{
		NegMarkers:       make(map[int]bool),
		TenseMarkers:     make(map[csc.Operator]map[int]bool),
		AspectMarkers:    make(map[csc.Operator]map[int]bool),
		ModalMarkers:     make(map[csc.Operator]map[int]bool),
		CausationMarkers: make(map[csc.Operator]map[int]bool),
		DirectionMarkers: make(map[csc.Operator]map[int]bool),
	}
}

// IncomingEdge returns the dependency arc whose Dependent is idx, if any.
// Spec §3: "every non-root token has exactly one incoming edge" — so at
// most one arc ever matches.
func (a Analysis) IncomingEdge(idx int) (DepArc, bool) {
	for _, arc := range a.Deps {
		if arc.Dependent == idx {
			return arc, true
		}
	}
	return DepArc{}, false
}

// OutgoingEdges returns every dependency arc headed at idx, in the order
// they were recorded. RuleParser records a predicate's iobj/dobj arcs after
// its prep_/tmod arcs, so the order is not always ascending by dependent
// index.
func (a Analysis) OutgoingEdges(idx int) []DepArc {
	var out []DepArc
	for _, arc := range a.Deps {
		if arc.Head == idx {
			out = append(out, arc)
		}
	}
	return out
}

// markAt adds idx to set[op], creating the inner set if needed.
func markAt(set map[csc.Operator]map[int]bool, op csc.Operator, idx int) {
	if set[op] == nil {
		set[op] = make(map[int]bool)
	}
	set[op][idx] = true
}
