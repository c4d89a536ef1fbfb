package encoder_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/ptil/csc"
	"github.com/c360/ptil/encoder"
	"github.com/c360/ptil/lingua"
	"github.com/c360/ptil/serialize"
)

// fakeAnalyzer returns a fixed Analysis, bypassing real parsing so tests
// can exercise encoder recovery paths that depend on rootmap state the
// built-in English verb lexicon never actually produces (every lexicon
// entry happens to have a dictionary mapping).
type fakeAnalyzer struct{ analysis lingua.Analysis }

func (f fakeAnalyzer) Analyze(ctx context.Context, text string) (lingua.Analysis, error) {
	return f.analysis, nil
}

func newEncoder(t *testing.T, lang string) *encoder.Encoder {
	t.Helper()
	e, err := encoder.New(lang)
	require.NoError(t, err)
	return e
}

// Scenario 1: spec §8.1, also the §4.7 canonical test vector.
func TestScenarioFutureNegationGoal(t *testing.T) {
	e := newEncoder(t, "en")
	cscs, diags, err := e.Encode(context.Background(), "The boy will not go to school tomorrow.")
	require.NoError(t, err)
	require.Empty(t, diags)
	require.Len(t, cscs, 1)

	c := cscs[0]
	assert.Equal(t, csc.RootMotion, c.Root)
	assert.Equal(t, []csc.Operator{csc.OpFuture, csc.OpNegation}, c.Ops)
	assert.Equal(t, csc.NewEntity("boy"), c.Roles[csc.RoleAgent])
	assert.Equal(t, csc.NewEntity("school"), c.Roles[csc.RoleGoal])
	assert.Equal(t, csc.NewEntity("tomorrow"), c.Roles[csc.RoleTime])
	require.NotNil(t, c.Meta)
	assert.Equal(t, csc.MetaAssertive, *c.Meta)

	out, err := e.EncodeAndSerialize(context.Background(), "The boy will not go to school tomorrow.", serialize.Verbose)
	require.NoError(t, err)
	assert.Equal(t,
		"<ROOT=MOTION> <OPS=FUTURE|NEGATION> <AGENT=BOY> <GOAL=SCHOOL> <TIME=TOMORROW> <META=ASSERTIVE>",
		out)
}

// Scenario 2: spec §8.2.
func TestScenarioPastDoubleObject(t *testing.T) {
	e := newEncoder(t, "en")
	cscs, _, err := e.Encode(context.Background(), "She gave him a book.")
	require.NoError(t, err)
	require.Len(t, cscs, 1)

	c := cscs[0]
	assert.Equal(t, csc.RootTransfer, c.Root)
	assert.Equal(t, []csc.Operator{csc.OpPast}, c.Ops)
	assert.Equal(t, csc.NewEntity("she"), c.Roles[csc.RoleAgent])
	assert.Equal(t, csc.NewEntity("him"), c.Roles[csc.RoleGoal])
	assert.Equal(t, csc.NewEntity("book"), c.Roles[csc.RoleTheme])
	require.NotNil(t, c.Meta)
	assert.Equal(t, csc.MetaAssertive, *c.Meta)
}

// Scenario 3: spec §8.3 — "sleep" resolves to EXISTENCE per rootmap's
// documented dictionary choice.
func TestScenarioQuestionPastExistence(t *testing.T) {
	e := newEncoder(t, "en")
	cscs, _, err := e.Encode(context.Background(), "Did the cat sleep?")
	require.NoError(t, err)
	require.Len(t, cscs, 1)

	c := cscs[0]
	assert.Equal(t, csc.RootExistence, c.Root)
	assert.Equal(t, []csc.Operator{csc.OpPast}, c.Ops)
	assert.Equal(t, csc.NewEntity("cat"), c.Roles[csc.RoleAgent])
	require.NotNil(t, c.Meta)
	assert.Equal(t, csc.MetaQuestion, *c.Meta)
}

// Scenario 4: spec §8.4 — cross-lingual ROOT equality (P9) against
// "The boy runs."
func TestScenarioSpanishMotionMatchesEnglish(t *testing.T) {
	es := newEncoder(t, "es")
	cscsES, _, err := es.Encode(context.Background(), "El niño corre.")
	require.NoError(t, err)
	require.Len(t, cscsES, 1)

	en := newEncoder(t, "en")
	cscsEN, _, err := en.Encode(context.Background(), "The boy runs.")
	require.NoError(t, err)
	require.Len(t, cscsEN, 1)

	assert.Equal(t, cscsEN[0].Root, cscsES[0].Root)
	assert.Equal(t, csc.RootMotion, cscsES[0].Root)
	assert.Equal(t, []csc.Operator{csc.OpPresent}, cscsES[0].Ops)
	assert.Equal(t, csc.NewEntity("niño"), cscsES[0].Roles[csc.RoleAgent])
}

// Scenario 5: spec §8.5 — imperative with no invented AGENT.
func TestScenarioImperativeNoAgentInvented(t *testing.T) {
	e := newEncoder(t, "en")
	cscs, _, err := e.Encode(context.Background(), "Run!")
	require.NoError(t, err)
	require.Len(t, cscs, 1)

	c := cscs[0]
	assert.Equal(t, csc.RootMotion, c.Root)
	assert.Equal(t, []csc.Operator{csc.OpPresent}, c.Ops)
	assert.Empty(t, c.Roles)
	require.NotNil(t, c.Meta)
	assert.Equal(t, csc.MetaCommand, *c.Meta)
}

// Scenario 6: spec §8.6 — empty text produces an empty list and an empty
// serialization, without error.
func TestScenarioEmptyTextProducesNoCSCs(t *testing.T) {
	e := newEncoder(t, "en")
	cscs, diags, err := e.Encode(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, diags)
	assert.Empty(t, cscs)

	out, err := e.EncodeAndSerialize(context.Background(), "", serialize.Verbose)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

// Idempotence law (spec §8, closing paragraph): encoding the same text
// twice yields byte-identical serializations under every format.
func TestEncodeAndSerializeIsIdempotent(t *testing.T) {
	e := newEncoder(t, "en")
	text := "The boy will not go to school tomorrow."
	for _, format := range []serialize.Format{serialize.Verbose, serialize.Compact, serialize.Ultra} {
		first, err := e.EncodeAndSerialize(context.Background(), text, format)
		require.NoError(t, err)
		second, err := e.EncodeAndSerialize(context.Background(), text, format)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestEncodeAndSerializeRejectsUnknownFormat(t *testing.T) {
	e := newEncoder(t, "en")
	_, err := e.EncodeAndSerialize(context.Background(), "The boy runs.", serialize.Format("xml"))
	require.Error(t, err)
}

func TestNewRejectsEmptyLanguage(t *testing.T) {
	_, err := encoder.New("")
	require.Error(t, err)
}

func TestDiagnosticSinkReceivesUnmappedPredicateDegradation(t *testing.T) {
	analysis := lingua.NewAnalysis()
	analysis.Tokens = []string{"zorblax"}
	analysis.POS = []string{"VERB"}
	analysis.Predicates = []int{0}

	var sunk []encoder.Diagnostic
	e, err := encoder.New("en",
		encoder.WithAnalyzer(fakeAnalyzer{analysis: analysis}),
		encoder.WithDiagnosticSink(func(d encoder.Diagnostic) {
			sunk = append(sunk, d)
		}))
	require.NoError(t, err)

	cscs, diags, err := e.Encode(context.Background(), "zorblax")
	require.NoError(t, err)
	require.Len(t, cscs, 1)
	assert.Equal(t, csc.RootChange, cscs[0].Root)
	require.NotEmpty(t, diags)
	assert.Equal(t, "rootmap", diags[0].Component)
	assert.NotEmpty(t, sunk)
}
