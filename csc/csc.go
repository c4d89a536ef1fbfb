package csc

// CSC is a Compressed Semantic Code record: one ROOT, an ordered operator
// sequence, a mapping of Role to Entity with each Role present at most
// once, and an optional META tag. A CSC owns its Ops slice and Roles map;
// no CSC shares a reference with another.
type CSC struct {
	Root  Root
	Ops   []Operator
	Roles map[Role]Entity
	Meta  *Meta
}

// New builds an empty CSC for root, with Roles initialized so callers can
// assign without a nil check; Ops starts nil, which append accepts.
func New(root Root) *CSC {
	return &CSC{
		Root:  root,
		Ops:   nil,
		Roles: make(map[Role]Entity),
	}
}

// compatibility is the total function from Root to its admissible Role
// set (spec §3's ROOT×ROLE compatibility matrix). It is built once at
// package init and never mutated.
var compatibility = map[Root]map[Role]bool{
	RootMotion: rolesSet(RoleAgent, RoleTheme, RoleSource, RoleGoal, RoleLocation, RoleTime),
	RootTransfer: rolesSet(RoleAgent, RoleTheme, RoleSource, RoleGoal, RoleTime),
	RootCommunication: rolesSet(RoleAgent, RolePatient, RoleTheme, RoleInstrument, RoleTime),
	RootCognition: rolesSet(RoleAgent, RoleTheme, RoleTime),
	RootPerception: rolesSet(RoleAgent, RoleTheme, RoleInstrument, RoleTime),
	RootCreation: rolesSet(RoleAgent, RolePatient, RoleTheme, RoleInstrument, RoleLocation, RoleTime),
	RootDestruction: rolesSet(RoleAgent, RolePatient, RoleInstrument, RoleLocation, RoleTime),
	RootChange: rolesSet(RoleAgent, RolePatient, RoleTheme, RoleLocation, RoleTime),
	RootPossession: rolesSet(RoleAgent, RolePatient, RoleTheme, RoleSource, RoleTime),
	RootIntention: rolesSet(RoleAgent, RoleTheme, RoleGoal, RoleTime),
	RootExistence: rolesSet(RoleAgent, RoleTheme, RoleLocation, RoleTime),
}

func rolesSet(roles ...Role) map[Role]bool {
	set := make(map[Role]bool, len(roles))
	for _, r := range roles {
		set[r] = true
	}
	return set
}

// AdmissibleRoles returns the admissible Role set for root. The returned
// slice is freshly allocated and safe for the caller to mutate.
func AdmissibleRoles(root Root) []Role {
	set := compatibility[root]
	out := make([]Role, 0, len(set))
	for _, r := range CanonicalRoleOrder {
		if set[r] {
			out = append(out, r)
		}
	}
	return out
}

// IsAdmissible reports whether role is admissible under root.
func IsAdmissible(root Root, role Role) bool {
	return compatibility[root][role]
}
