package serialize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/ptil/csc"
	"github.com/c360/ptil/serialize"
)

func canonicalCSC() csc.CSC {
	meta := csc.MetaAssertive
	return csc.CSC{
		Root: csc.RootMotion,
		Ops:  []csc.Operator{csc.OpFuture, csc.OpNegation},
		Roles: map[csc.Role]csc.Entity{
			csc.RoleAgent: csc.NewEntity("boy"),
			csc.RoleGoal:  csc.NewEntity("school"),
			csc.RoleTime:  csc.NewEntity("tomorrow"),
		},
		Meta: &meta,
	}
}

func TestCanonicalVerboseVector(t *testing.T) {
	out, err := serialize.One(canonicalCSC(), serialize.Verbose)
	require.NoError(t, err)
	assert.Equal(t,
		"<ROOT=MOTION> <OPS=FUTURE|NEGATION> <AGENT=BOY> <GOAL=SCHOOL> <TIME=TOMORROW> <META=ASSERTIVE>",
		out)
}

func TestCanonicalCompactVector(t *testing.T) {
	out, err := serialize.One(canonicalCSC(), serialize.Compact)
	require.NoError(t, err)
	assert.Equal(t,
		"R:MOTION O:FUTURE|NEGATION A:BOY G:SCHOOL W:TOMORROW M:ASSERTIVE",
		out)
}

func TestCanonicalUltraVector(t *testing.T) {
	out, err := serialize.One(canonicalCSC(), serialize.Ultra)
	require.NoError(t, err)
	assert.Equal(t, "A|cg|A:BOY|G:SCHOOL|W:TOMORROW|Z", out)
}

func TestVerboseOmitsAbsentOpsAndMeta(t *testing.T) {
	c := csc.CSC{
		Root:  csc.RootExistence,
		Ops:   nil,
		Roles: map[csc.Role]csc.Entity{csc.RoleAgent: csc.NewEntity("it")},
	}
	out, err := serialize.One(c, serialize.Verbose)
	require.NoError(t, err)
	assert.Equal(t, "<ROOT=EXISTENCE> <AGENT=IT>", out)
	assert.NotContains(t, out, "OPS")
	assert.NotContains(t, out, "META")
}

func TestCompactAndUltraAlsoOmitAbsentFields(t *testing.T) {
	c := csc.CSC{Root: csc.RootExistence, Roles: map[csc.Role]csc.Entity{}}
	compact, err := serialize.One(c, serialize.Compact)
	require.NoError(t, err)
	assert.Equal(t, "R:EXISTENCE", compact)

	ultra, err := serialize.One(c, serialize.Ultra)
	require.NoError(t, err)
	assert.Equal(t, "K", ultra)
}

func TestUnknownFormatIsInvalidInput(t *testing.T) {
	_, err := serialize.One(canonicalCSC(), serialize.Format("json"))
	require.Error(t, err)
}

func TestAllJoinsMultiplePredicatesWithSpace(t *testing.T) {
	meta := csc.MetaAssertive
	first := csc.CSC{Root: csc.RootMotion, Roles: map[csc.Role]csc.Entity{csc.RoleAgent: csc.NewEntity("she")}, Meta: &meta}
	second := csc.CSC{Root: csc.RootCommunication, Roles: map[csc.Role]csc.Entity{csc.RoleAgent: csc.NewEntity("he")}, Meta: &meta}

	out, err := serialize.All([]csc.CSC{first, second}, serialize.Verbose)
	require.NoError(t, err)
	assert.Equal(t,
		"<ROOT=MOTION> <AGENT=SHE> <META=ASSERTIVE> <ROOT=COMMUNICATION> <AGENT=HE> <META=ASSERTIVE>",
		out)
}

func TestAllOfEmptyListIsEmptyString(t *testing.T) {
	out, err := serialize.All(nil, serialize.Verbose)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestRoleOrderIsCanonicalRegardlessOfMapIteration(t *testing.T) {
	c := csc.CSC{
		Root: csc.RootTransfer,
		Roles: map[csc.Role]csc.Entity{
			csc.RoleTime:   csc.NewEntity("today"),
			csc.RoleAgent:  csc.NewEntity("she"),
			csc.RoleGoal:   csc.NewEntity("him"),
			csc.RoleSource: csc.NewEntity("the store"),
		},
	}
	out, err := serialize.One(c, serialize.Verbose)
	require.NoError(t, err)
	assert.Equal(t,
		"<ROOT=TRANSFER> <AGENT=SHE> <GOAL=HIM> <SOURCE=THE_STORE> <TIME=TODAY>",
		out)
}
