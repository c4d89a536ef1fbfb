package encoder_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/ptil/config"
	"github.com/c360/ptil/encoder"
	"github.com/c360/ptil/serialize"
)

func TestEncodeForTrainingStandardLayout(t *testing.T) {
	e := newEncoder(t, "en")
	cfg := encoder.DefaultTrainingConfig()
	cfg.Format = serialize.Verbose

	out, err := e.EncodeForTraining(context.Background(), "She gave him a book.", cfg)
	require.NoError(t, err)
	assert.Equal(t,
		"[CSC] <ROOT=TRANSFER> <OPS=PAST> <AGENT=SHE> <THEME=BOOK> <GOAL=HIM> <META=ASSERTIVE> [TEXT] She gave him a book.",
		out)
}

func TestEncodeForTrainingStandardLayoutWithoutBrackets(t *testing.T) {
	e := newEncoder(t, "en")
	cfg := encoder.DefaultTrainingConfig()
	cfg.Format = serialize.Compact
	cfg.IncludeBrackets = false
	cfg.Separator = " || "

	out, err := e.EncodeForTraining(context.Background(), "She gave him a book.", cfg)
	require.NoError(t, err)
	assert.Equal(t, "R:TRANSFER O:PAST A:SHE T:BOOK G:HIM M:ASSERTIVE || She gave him a book.", out)
}

func TestEncodeForTrainingCSCOnlyLayout(t *testing.T) {
	e := newEncoder(t, "en")
	cfg := encoder.DefaultTrainingConfig()
	cfg.FormatType = config.LayoutCSCOnly
	cfg.Format = serialize.Ultra

	out, err := e.EncodeForTraining(context.Background(), "She gave him a book.", cfg)
	require.NoError(t, err)
	assert.NotContains(t, out, "[CSC]")
	assert.NotContains(t, out, "She gave")
}

func TestEncodeForTrainingMixedLayoutRepeatsByWeight(t *testing.T) {
	e := newEncoder(t, "en")
	cfg := encoder.DefaultTrainingConfig()
	cfg.FormatType = config.LayoutMixed
	cfg.Format = serialize.Compact
	cfg.CSCWeight = 2
	cfg.OriginalWeight = 1
	cfg.Separator = " "

	out, err := e.EncodeForTraining(context.Background(), "She gave him a book.", cfg)
	require.NoError(t, err)
	want := "[CSC] R:TRANSFER O:PAST A:SHE T:BOOK G:HIM M:ASSERTIVE " +
		"[CSC] R:TRANSFER O:PAST A:SHE T:BOOK G:HIM M:ASSERTIVE " +
		"[TEXT] She gave him a book."
	assert.Equal(t, want, out)
}

func TestEncodeForTrainingRejectsUnknownFormatType(t *testing.T) {
	e := newEncoder(t, "en")
	cfg := encoder.DefaultTrainingConfig()
	cfg.FormatType = "bespoke"

	_, err := e.EncodeForTraining(context.Background(), "She gave him a book.", cfg)
	require.Error(t, err)
}

func TestEncodeForTrainingOnEmptyTextStillEmitsOriginalSection(t *testing.T) {
	e := newEncoder(t, "en")
	cfg := encoder.DefaultTrainingConfig()
	cfg.Format = serialize.Verbose

	out, err := e.EncodeForTraining(context.Background(), "", cfg)
	require.NoError(t, err)
	assert.Equal(t, "[CSC]  [TEXT] ", out)
}
