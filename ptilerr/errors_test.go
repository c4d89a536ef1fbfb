package ptilerr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/ptil/ptilerr"
)

func TestWrapInvalid(t *testing.T) {
	base := errors.New("text must be non-empty")
	err := ptilerr.WrapInvalid(base, "Encoder", "Encode", "validate text")
	require.Error(t, err)
	assert.True(t, ptilerr.IsInvalid(err))
	assert.False(t, ptilerr.IsDegraded(err))
	assert.ErrorIs(t, err, base)
}

func TestWrapParserUnavailable(t *testing.T) {
	err := ptilerr.WrapParserUnavailable(ptilerr.ErrParserNotConfigured, "Encoder", "New", "load analyzer")
	assert.True(t, ptilerr.IsParserUnavailable(err))
	assert.False(t, ptilerr.IsInvalid(err))
}

func TestWrapDegraded(t *testing.T) {
	err := ptilerr.WrapDegraded(ptilerr.ErrUnmappedPredicate, "ROOTMapper", "Map", "fallback to EXISTENCE")
	assert.True(t, ptilerr.IsDegraded(err))
	assert.False(t, ptilerr.IsParserUnavailable(err))
}

func TestWrapNilReturnsNil(t *testing.T) {
	assert.NoError(t, ptilerr.WrapInvalid(nil, "x", "y", "z"))
	assert.NoError(t, ptilerr.WrapParserUnavailable(nil, "x", "y", "z"))
	assert.NoError(t, ptilerr.WrapDegraded(nil, "x", "y", "z"))
}

func TestClassifyUnwrapped(t *testing.T) {
	assert.True(t, ptilerr.IsParserUnavailable(ptilerr.ErrParserPoolExhausted))
	assert.True(t, ptilerr.IsDegraded(ptilerr.ErrIncompatibleRoleDropped))
	assert.True(t, ptilerr.IsInvalid(ptilerr.ErrEmptyText))
}
