package rolesbind_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/ptil/csc"
	"github.com/c360/ptil/lingua"
	"github.com/c360/ptil/rolesbind"
)

func mustAnalyze(t *testing.T, lang, text string) lingua.Analysis {
	t.Helper()
	a, err := lingua.NewRuleParser(lang).Analyze(context.Background(), text)
	require.NoError(t, err)
	return a
}

func TestMotionGoalAndTime(t *testing.T) {
	a := mustAnalyze(t, "en", "The boy will not go to school tomorrow.")
	roles := rolesbind.Bind(a, a.Predicates[0], csc.RootMotion, "en")
	require.Contains(t, roles, csc.RoleAgent)
	assert.Equal(t, "boy", roles[csc.RoleAgent].Text)
	require.Contains(t, roles, csc.RoleGoal)
	assert.Equal(t, "school", roles[csc.RoleGoal].Text)
	require.Contains(t, roles, csc.RoleTime)
	assert.Equal(t, "tomorrow", roles[csc.RoleTime].Text)
	assert.NotContains(t, roles, csc.RolePatient)
}

func TestTransferGoalAndTheme(t *testing.T) {
	a := mustAnalyze(t, "en", "She gave him a book.")
	roles := rolesbind.Bind(a, a.Predicates[0], csc.RootTransfer, "en")
	require.Contains(t, roles, csc.RoleAgent)
	assert.Equal(t, "she", roles[csc.RoleAgent].Text)
	require.Contains(t, roles, csc.RoleGoal)
	assert.Equal(t, "him", roles[csc.RoleGoal].Text)
	require.Contains(t, roles, csc.RoleTheme)
	assert.Equal(t, "book", roles[csc.RoleTheme].Text)
	assert.NotContains(t, roles, csc.RolePatient)
}

func TestExistenceAgentOnly(t *testing.T) {
	a := mustAnalyze(t, "en", "Did the cat sleep?")
	roles := rolesbind.Bind(a, a.Predicates[0], csc.RootExistence, "en")
	assert.Equal(t, map[csc.Role]csc.Entity{
		csc.RoleAgent: csc.NewEntity("cat"),
	}, roles)
}

func TestSpanishSubjectNormalizesDiacritic(t *testing.T) {
	a := mustAnalyze(t, "es", "El niño corre.")
	roles := rolesbind.Bind(a, a.Predicates[0], csc.RootMotion, "es")
	require.Contains(t, roles, csc.RoleAgent)
	assert.Equal(t, "NIÑO", roles[csc.RoleAgent].Normalized)
}

func TestImperativeYieldsNoAgent(t *testing.T) {
	a := mustAnalyze(t, "en", "Run!")
	roles := rolesbind.Bind(a, a.Predicates[0], csc.RootMotion, "en")
	assert.Empty(t, roles)
}

func TestIncompatibleRoleIsDropped(t *testing.T) {
	a := mustAnalyze(t, "en", "She gave him a book.")
	// COGNITION does not admit GOAL; the iobj candidate must be dropped
	// rather than leaking an inadmissible role.
	roles := rolesbind.Bind(a, a.Predicates[0], csc.RootCognition, "en")
	assert.NotContains(t, roles, csc.RoleGoal)
}
