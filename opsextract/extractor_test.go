package opsextract_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/ptil/csc"
	"github.com/c360/ptil/lingua"
	"github.com/c360/ptil/opsextract"
)

func mustAnalyze(t *testing.T, lang, text string) lingua.Analysis {
	t.Helper()
	a, err := lingua.NewRuleParser(lang).Analyze(context.Background(), text)
	require.NoError(t, err)
	return a
}

func TestFutureThenNegationPreservesSourceOrder(t *testing.T) {
	a := mustAnalyze(t, "en", "The boy will not go to school tomorrow.")
	ops := opsextract.Extract(a, a.Predicates[0])
	assert.Equal(t, []csc.Operator{csc.OpFuture, csc.OpNegation}, ops)
}

func TestPastOnlyWhenDoSupportSuppressesDefault(t *testing.T) {
	a := mustAnalyze(t, "en", "Did the cat sleep?")
	ops := opsextract.Extract(a, a.Predicates[0])
	assert.Equal(t, []csc.Operator{csc.OpPast}, ops)
}

func TestPastFromBareVerbForm(t *testing.T) {
	a := mustAnalyze(t, "en", "She gave him a book.")
	ops := opsextract.Extract(a, a.Predicates[0])
	assert.Equal(t, []csc.Operator{csc.OpPast}, ops)
}

func TestPresentDefaultWithNoOvertMarker(t *testing.T) {
	a := mustAnalyze(t, "es", "El niño corre.")
	ops := opsextract.Extract(a, a.Predicates[0])
	assert.Equal(t, []csc.Operator{csc.OpPresent}, ops)
}

func TestImperativePresentDefault(t *testing.T) {
	a := mustAnalyze(t, "en", "Run!")
	ops := opsextract.Extract(a, a.Predicates[0])
	assert.Equal(t, []csc.Operator{csc.OpPresent}, ops)
}

func TestEmptyAnalysisYieldsNoOperators(t *testing.T) {
	a := mustAnalyze(t, "en", "")
	assert.Empty(t, opsextract.Extract(a, 0))
}

func TestOrderIsSensitiveToWordOrder(t *testing.T) {
	negFirst := mustAnalyze(t, "en", "not will go")
	_ = negFirst // word salad isn't a real sentence; the ordering law is exercised directly below.

	var a lingua.Analysis
	a.Tokens = []string{"not", "will", "go"}
	a.POS = []string{"NEG", "AUX_FUT", "VERB"}
	a = withMarkers(a)
	a.NegMarkers = map[int]bool{0: true}
	a.TenseMarkers = map[csc.Operator]map[int]bool{csc.OpFuture: {1: true}}
	ops := opsextract.Extract(a, 2)
	assert.Equal(t, []csc.Operator{csc.OpNegation, csc.OpFuture}, ops)
}

func withMarkers(a lingua.Analysis) lingua.Analysis {
	a.ModalMarkers = map[csc.Operator]map[int]bool{}
	a.AspectMarkers = map[csc.Operator]map[int]bool{}
	return a
}
