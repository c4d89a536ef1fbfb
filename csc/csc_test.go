package csc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/c360/ptil/csc"
)

func TestRootsAreValid(t *testing.T) {
	for _, r := range csc.Roots {
		assert.True(t, r.Valid(), "root %s should be valid", r)
	}
	assert.False(t, csc.Root("NOT_A_ROOT").Valid())
}

func TestFallbackRootIsExistence(t *testing.T) {
	assert.Equal(t, csc.RootExistence, csc.FallbackRoot)
}

func TestCanonicalRoleOrder(t *testing.T) {
	assert.Equal(t, []csc.Role{
		csc.RoleAgent, csc.RolePatient, csc.RoleTheme, csc.RoleGoal,
		csc.RoleSource, csc.RoleInstrument, csc.RoleLocation, csc.RoleTime,
	}, csc.CanonicalRoleOrder)
}

func TestAdmissibleRolesMotion(t *testing.T) {
	roles := csc.AdmissibleRoles(csc.RootMotion)
	assert.Contains(t, roles, csc.RoleAgent)
	assert.Contains(t, roles, csc.RoleGoal)
	assert.NotContains(t, roles, csc.RolePatient)
}

func TestIsAdmissible(t *testing.T) {
	assert.True(t, csc.IsAdmissible(csc.RootCommunication, csc.RolePatient))
	assert.False(t, csc.IsAdmissible(csc.RootCognition, csc.RolePatient))
}

func TestOperatorCategoryTieBreakOrder(t *testing.T) {
	// spec §4.3: within one token index, priority is polarity, modality,
	// aspect, temporal.
	polarity, _ := csc.OpNegation.Category()
	modality, _ := csc.OpNecessary.Category()
	aspect, _ := csc.OpContinuous.Category()
	temporal, _ := csc.OpFuture.Category()
	assert.Less(t, int(polarity), int(modality))
	assert.Less(t, int(modality), int(aspect))
	assert.Less(t, int(aspect), int(temporal))
}

func TestEntityNormalizationPreservesDiacritics(t *testing.T) {
	e := csc.NewEntity("niño")
	assert.Equal(t, "niño", e.Text)
	assert.Equal(t, "NIÑO", e.Normalized)
}

func TestEntityNormalizationCollapsesWhitespace(t *testing.T) {
	e := csc.NewEntity("  a   book ")
	assert.Equal(t, "a book", e.Text)
	assert.Equal(t, "A_BOOK", e.Normalized)
}

func TestMetaValid(t *testing.T) {
	assert.True(t, csc.MetaAssertive.Valid())
	assert.False(t, csc.Meta("").Valid())
}
