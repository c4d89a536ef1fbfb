package serialize

import (
	"strings"

	"github.com/c360/ptil/csc"
)

// renderCompact implements spec §4.7's compact format: the same field
// order and full symbol names as verbose, but with the angle-bracket/
// equals-sign tags replaced by a one-letter key and a colon.
// Keys: R for ROOT, O for OPS, a single letter per rolePrefixes entry for
// each bound role, M for META.
//
//	R:MOTION O:FUTURE|NEGATION A:BOY G:SCHOOL W:TOMORROW M:ASSERTIVE
func renderCompact(c csc.CSC) string {
	var fields []string

	fields = append(fields, "R:"+string(c.Root))

	if len(c.Ops) > 0 {
		names := make([]string, len(c.Ops))
		for i, op := range c.Ops {
			names[i] = string(op)
		}
		fields = append(fields, "O:"+strings.Join(names, "|"))
	}

	for _, role := range csc.CanonicalRoleOrder {
		if entity, ok := c.Roles[role]; ok {
			fields = append(fields, rolePrefixes[role]+":"+entity.Normalized)
		}
	}

	if c.Meta != nil {
		fields = append(fields, "M:"+string(*c.Meta))
	}

	return strings.Join(fields, " ")
}
