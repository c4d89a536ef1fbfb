package csc

// Role is a symbol from the closed set argument spans bind to.
type Role string

const (
	RoleAgent      Role = "AGENT"
	RolePatient    Role = "PATIENT"
	RoleTheme      Role = "THEME"
	RoleGoal       Role = "GOAL"
	RoleSource     Role = "SOURCE"
	RoleInstrument Role = "INSTRUMENT"
	RoleLocation   Role = "LOCATION"
	RoleTime       Role = "TIME"
)

// CanonicalRoleOrder is the fixed emission order every serializer walks:
// AGENT, PATIENT, THEME, GOAL, SOURCE, INSTRUMENT, LOCATION, TIME.
var CanonicalRoleOrder = []Role{
	RoleAgent, RolePatient, RoleTheme, RoleGoal, RoleSource, RoleInstrument, RoleLocation, RoleTime,
}

// Valid reports whether r is a member of the closed role set.
func (r Role) Valid() bool {
	switch r {
	case RoleAgent, RolePatient, RoleTheme, RoleGoal, RoleSource, RoleInstrument, RoleLocation, RoleTime:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}
