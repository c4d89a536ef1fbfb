package encoder_test

import (
	"context"
	"math/rand"
	"reflect"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/ptil/csc"
	"github.com/c360/ptil/serialize"
	"github.com/c360/ptil/testutil"
)

// sampleIndex picks a random testutil.SampleSentences entry. It implements
// quick.Generator so testing/quick drives the property tests below from the
// curated sentence pool instead of arbitrary byte strings, which mostly
// fail to parse into any predicate and would exercise nothing.
type sampleIndex int

func (sampleIndex) Generate(r *rand.Rand, size int) reflect.Value {
	return reflect.ValueOf(sampleIndex(r.Intn(len(testutil.SampleSentences))))
}

// TestMandatorinessAndDeterminismAcrossSamples checks, for a random sample
// of the sentence pool, that every produced CSC has a non-empty ROOT and
// only admissible roles (mandatoriness), and that encoding the same text
// twice yields byte-identical serializations (determinism).
func TestMandatorinessAndDeterminismAcrossSamples(t *testing.T) {
	e := newEncoder(t, "en")

	property := func(idx sampleIndex) bool {
		text := testutil.SampleSentences[idx]

		cscs, _, err := e.Encode(context.Background(), text)
		if err != nil {
			return false
		}
		for _, c := range cscs {
			if c.Root == "" {
				return false
			}
			for role := range c.Roles {
				if !csc.IsAdmissible(c.Root, role) {
					return false
				}
			}
		}

		first, err := e.EncodeAndSerialize(context.Background(), text, serialize.Compact)
		if err != nil {
			return false
		}
		second, err := e.EncodeAndSerialize(context.Background(), text, serialize.Compact)
		if err != nil {
			return false
		}
		return first == second
	}

	require.NoError(t, quick.Check(property, &quick.Config{MaxCount: 100}))
}

// TestCrossLingualRootEqualityAcrossTable walks the full parallel-sentence
// table rather than sampling it, so every curated pair is checked at least
// once regardless of quick's random draw.
func TestCrossLingualRootEqualityAcrossTable(t *testing.T) {
	en := newEncoder(t, "en")

	for _, pair := range testutil.ParallelSentenceTable {
		t.Run(pair.Lang, func(t *testing.T) {
			enCSCs, _, err := en.Encode(context.Background(), pair.English)
			require.NoError(t, err)
			require.Len(t, enCSCs, 1)

			other := newEncoder(t, pair.Lang)
			otherCSCs, _, err := other.Encode(context.Background(), pair.Text)
			require.NoError(t, err)
			require.Len(t, otherCSCs, 1)

			assert.Equal(t, enCSCs[0].Root, otherCSCs[0].Root)
			assert.Equal(t, csc.RootMotion, otherCSCs[0].Root)
		})
	}
}
