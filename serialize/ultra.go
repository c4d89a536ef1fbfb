package serialize

import (
	"strings"

	"github.com/c360/ptil/csc"
)

// renderUltra implements spec §4.7's ultra-compact format: every field is
// reduced to its frozen single-character code (rootUltraCodes,
// opUltraCodes, metaUltraCodes) except role values, which stay as full
// normalized entity text behind their rolePrefixes letter — entity text
// has no closed alphabet to abbreviate against, and spec §4.7 requires the
// format to round-trip-check, which a lossy entity compression (as the
// ported Python prototype used) cannot support. Fields are joined by "|",
// in the same ROOT/OPS/ROLES/META order as the other two formats; OPS and
// META are omitted entirely when absent, exactly as in verbose and
// compact.
func renderUltra(c csc.CSC) string {
	fields := []string{rootUltraCodes[c.Root]}

	if len(c.Ops) > 0 {
		var ops strings.Builder
		for _, op := range c.Ops {
			ops.WriteString(opUltraCodes[op])
		}
		fields = append(fields, ops.String())
	}

	for _, role := range csc.CanonicalRoleOrder {
		if entity, ok := c.Roles[role]; ok {
			fields = append(fields, rolePrefixes[role]+":"+entity.Normalized)
		}
	}

	if c.Meta != nil {
		fields = append(fields, metaUltraCodes[*c.Meta])
	}

	return strings.Join(fields, "|")
}
