package lingua_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/ptil/csc"
	"github.com/c360/ptil/lingua"
)

func analyze(t *testing.T, lang, text string) lingua.Analysis {
	t.Helper()
	p := lingua.NewRuleParser(lang)
	a, err := p.Analyze(context.Background(), text)
	require.NoError(t, err)
	return a
}

func tokenAt(a lingua.Analysis, idx int) string {
	if idx < 0 || idx >= len(a.Tokens) {
		return ""
	}
	return a.Tokens[idx]
}

func depRelation(a lingua.Analysis, relation string) (lingua.DepArc, bool) {
	for _, arc := range a.Deps {
		if arc.Relation == relation {
			return arc, true
		}
	}
	return lingua.DepArc{}, false
}

func TestFutureNegationGoal(t *testing.T) {
	a := analyze(t, "en", "The boy will not go to school tomorrow.")
	require.Len(t, a.Predicates, 1)
	assert.Equal(t, "go", tokenAt(a, a.Predicates[0]))

	nsubj, ok := depRelation(a, "nsubj")
	require.True(t, ok)
	assert.Equal(t, "boy", tokenAt(a, nsubj.Dependent))

	prepTo, ok := depRelation(a, "prep_to")
	require.True(t, ok)
	assert.Equal(t, "school", tokenAt(a, prepTo.Dependent))

	tmod, ok := depRelation(a, "tmod")
	require.True(t, ok)
	assert.Equal(t, "tomorrow", tokenAt(a, tmod.Dependent))

	assert.NotEmpty(t, a.TenseMarkers[csc.OpFuture])
	assert.Empty(t, a.TenseMarkers[csc.OpPresent])
	assert.NotEmpty(t, a.NegMarkers)
	assert.False(t, a.Interrogative)
	assert.False(t, a.Imperative)
}

func TestPastDoubleObject(t *testing.T) {
	a := analyze(t, "en", "She gave him a book.")
	require.Len(t, a.Predicates, 1)
	assert.Equal(t, "gave", tokenAt(a, a.Predicates[0]))

	nsubj, ok := depRelation(a, "nsubj")
	require.True(t, ok)
	assert.Equal(t, "She", tokenAt(a, nsubj.Dependent))

	iobj, ok := depRelation(a, "iobj")
	require.True(t, ok)
	assert.Equal(t, "him", tokenAt(a, iobj.Dependent))

	dobj, ok := depRelation(a, "dobj")
	require.True(t, ok)
	assert.Equal(t, "book", tokenAt(a, dobj.Dependent))

	assert.NotEmpty(t, a.TenseMarkers[csc.OpPast])
}

func TestDoSupportQuestionSuppressesDefaultTense(t *testing.T) {
	a := analyze(t, "en", "Did the cat sleep?")
	require.Len(t, a.Predicates, 1)
	assert.Equal(t, "sleep", tokenAt(a, a.Predicates[0]))
	assert.True(t, a.Interrogative)

	nsubj, ok := depRelation(a, "nsubj")
	require.True(t, ok)
	assert.Equal(t, "cat", tokenAt(a, nsubj.Dependent))

	assert.NotEmpty(t, a.TenseMarkers[csc.OpPast])
	assert.Empty(t, a.TenseMarkers[csc.OpPresent])
	_, hasDobj := depRelation(a, "dobj")
	assert.False(t, hasDobj)
}

func TestSpanishPresentSubject(t *testing.T) {
	a := analyze(t, "es", "El niño corre.")
	require.Len(t, a.Predicates, 1)
	assert.Equal(t, "corre", tokenAt(a, a.Predicates[0]))

	nsubj, ok := depRelation(a, "nsubj")
	require.True(t, ok)
	assert.Equal(t, "niño", tokenAt(a, nsubj.Dependent))
	assert.NotEmpty(t, a.TenseMarkers[csc.OpPresent])
}

func TestImperativeBareVerb(t *testing.T) {
	a := analyze(t, "en", "Run!")
	require.Len(t, a.Predicates, 1)
	assert.True(t, a.Imperative)
	assert.False(t, a.Interrogative)
	_, hasSubj := depRelation(a, "nsubj")
	assert.False(t, hasSubj)
}

func TestEmptyTextYieldsZeroAnalysis(t *testing.T) {
	a := analyze(t, "en", "")
	assert.Empty(t, a.Tokens)
	assert.Empty(t, a.Predicates)
}

func TestUnknownLanguageFallsBackToEnglish(t *testing.T) {
	p := lingua.NewRuleParser("xx")
	assert.Equal(t, "en", p.Language())
}
