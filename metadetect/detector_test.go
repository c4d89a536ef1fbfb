package metadetect_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/ptil/csc"
	"github.com/c360/ptil/lingua"
	"github.com/c360/ptil/metadetect"
)

func mustAnalyze(t *testing.T, text string) lingua.Analysis {
	t.Helper()
	a, err := lingua.NewRuleParser("en").Analyze(context.Background(), text)
	require.NoError(t, err)
	return a
}

func TestQuestionTakesPriority(t *testing.T) {
	meta, ok := metadetect.Detect(mustAnalyze(t, "Did the cat sleep?"))
	require.True(t, ok)
	assert.Equal(t, csc.MetaQuestion, meta)
}

func TestCommandForImperative(t *testing.T) {
	meta, ok := metadetect.Detect(mustAnalyze(t, "Run!"))
	require.True(t, ok)
	assert.Equal(t, csc.MetaCommand, meta)
}

func TestUncertainForHedge(t *testing.T) {
	meta, ok := metadetect.Detect(mustAnalyze(t, "Maybe she will go."))
	require.True(t, ok)
	assert.Equal(t, csc.MetaUncertain, meta)
}

func TestEvidentialForMarker(t *testing.T) {
	meta, ok := metadetect.Detect(mustAnalyze(t, "Apparently she will go."))
	require.True(t, ok)
	assert.Equal(t, csc.MetaEvidential, meta)
}

func TestAssertiveIsDefault(t *testing.T) {
	meta, ok := metadetect.Detect(mustAnalyze(t, "The boy will not go to school tomorrow."))
	require.True(t, ok)
	assert.Equal(t, csc.MetaAssertive, meta)
}

func TestEmptyTextYieldsNoMeta(t *testing.T) {
	_, ok := metadetect.Detect(mustAnalyze(t, ""))
	assert.False(t, ok)
}

func TestEmotiveAndIronicAreNeverEmitted(t *testing.T) {
	meta, ok := metadetect.Detect(mustAnalyze(t, "Unfortunately she will go."))
	require.True(t, ok)
	assert.Equal(t, csc.MetaAssertive, meta)

	meta, ok = metadetect.Detect(mustAnalyze(t, "Obviously she will clearly go."))
	require.True(t, ok)
	assert.Equal(t, csc.MetaAssertive, meta)
}
