package rootmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/c360/ptil/csc"
	"github.com/c360/ptil/rootmap"
)

func TestSingleCandidateLemma(t *testing.T) {
	assert.Equal(t, csc.RootMotion, rootmap.Map("go", rootmap.PredicateContext{POS: "VERB"}))
	assert.Equal(t, csc.RootTransfer, rootmap.Map("give", rootmap.PredicateContext{POS: "VERB"}))
}

func TestAmbiguousLemmaResolvesByActionPreference(t *testing.T) {
	assert.Equal(t, csc.RootChange, rootmap.Map("develop", rootmap.PredicateContext{POS: "VERB"}))
}

func TestAmbiguousLemmaResolvesByStatePreference(t *testing.T) {
	assert.Equal(t, csc.RootCognition, rootmap.Map("plan", rootmap.PredicateContext{POS: "NOUN"}))
}

func TestAmbiguousLemmaFallsBackToLexicographicallySmallest(t *testing.T) {
	assert.Equal(t, csc.RootIntention, rootmap.Map("want", rootmap.PredicateContext{POS: "ADJ"}))
}

func TestUnknownVerbFallsBackToChange(t *testing.T) {
	assert.Equal(t, csc.RootChange, rootmap.Map("frobnicate", rootmap.PredicateContext{POS: "VERB"}))
}

func TestUnknownNonVerbFallsBackToExistence(t *testing.T) {
	assert.Equal(t, csc.FallbackRoot, rootmap.Map("frobnicate", rootmap.PredicateContext{POS: "NOUN"}))
}

func TestSynonymGroupsMapToSameRoot(t *testing.T) {
	for _, group := range rootmap.SynonymGroups {
		var want csc.Root
		for i, lemma := range group {
			got := rootmap.Map(lemma, rootmap.PredicateContext{POS: "VERB"})
			if i == 0 {
				want = got
				continue
			}
			assert.Equal(t, want, got, "lemma %q should share ROOT with %q", lemma, group[0])
		}
	}
}

func TestIsKnown(t *testing.T) {
	assert.True(t, rootmap.IsKnown("sleep"))
	assert.False(t, rootmap.IsKnown("frobnicate"))
}

func TestCrossLingualMotionLemmas(t *testing.T) {
	for _, lemma := range []string{"go", "correr", "courir", "laufen", "correre"} {
		assert.Equal(t, csc.RootMotion, rootmap.Map(lemma, rootmap.PredicateContext{POS: "VERB"}))
	}
}
