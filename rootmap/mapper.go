package rootmap

import "github.com/c360/ptil/csc"

// actionRoots, stateRoots, and transitiveRoots are the three disambiguation
// buckets from §4.2, ported verbatim from root_mapper.py's _disambiguate.
var (
	actionRoots = map[csc.Root]bool{
		csc.RootMotion: true, csc.RootTransfer: true, csc.RootCommunication: true,
		csc.RootCreation: true, csc.RootDestruction: true, csc.RootChange: true,
	}
	stateRoots = map[csc.Root]bool{
		csc.RootExistence: true, csc.RootPossession: true, csc.RootCognition: true,
	}
	transitiveRoots = map[csc.Root]bool{
		csc.RootTransfer: true, csc.RootCreation: true, csc.RootDestruction: true,
		csc.RootPerception: true, csc.RootCommunication: true,
	}
)

// PredicateContext is the disambiguation input §4.2 needs when a lemma has
// more than one ROOT candidate: the predicate's own POS tag and whether its
// clause carries a direct object.
type PredicateContext struct {
	POS          string // "VERB" or "NOUN"; any other value skips POS-based disambiguation
	HasDirectObject bool
}

// Map resolves a surface lemma to its ROOT. A lemma with a single
// dictionary candidate returns it directly. A lemma with several
// candidates is disambiguated by ctx, falling back to the lexicographically
// smallest candidate when context settles nothing. An unknown lemma falls back by
// POS: VERB defaults to CHANGE (the most general action ROOT), anything
// else to csc.FallbackRoot.
func Map(lemma string, ctx PredicateContext) csc.Root {
	candidates, ok := predicateDictionary[lemma]
	if !ok {
		return unknownFallback(ctx)
	}
	if len(candidates) == 1 {
		return candidates[0]
	}
	return disambiguate(candidates, ctx)
}

// IsKnown reports whether lemma has a dictionary entry.
func IsKnown(lemma string) bool {
	_, ok := predicateDictionary[lemma]
	return ok
}

// PredicatesForRoot returns every lemma mapping to root, for diagnostics
// and tests; order is not significant.
func PredicatesForRoot(root csc.Root) []string {
	var out []string
	for lemma, candidates := range predicateDictionary {
		for _, c := range candidates {
			if c == root {
				out = append(out, lemma)
				break
			}
		}
	}
	return out
}

func disambiguate(candidates []csc.Root, ctx PredicateContext) csc.Root {
	if ctx.POS == "VERB" {
		if r, ok := firstIn(candidates, actionRoots); ok {
			return r
		}
	} else if ctx.POS == "NOUN" {
		if r, ok := firstIn(candidates, stateRoots); ok {
			return r
		}
	}
	if ctx.HasDirectObject {
		if r, ok := firstIn(candidates, transitiveRoots); ok {
			return r
		}
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c < best {
			best = c
		}
	}
	return best
}

func unknownFallback(ctx PredicateContext) csc.Root {
	switch ctx.POS {
	case "VERB":
		return csc.RootChange
	case "NOUN":
		return csc.FallbackRoot
	default:
		return csc.FallbackRoot
	}
}

func firstIn(candidates []csc.Root, bucket map[csc.Root]bool) (csc.Root, bool) {
	for _, c := range candidates {
		if bucket[c] {
			return c, true
		}
	}
	return csc.Root(""), false
}
