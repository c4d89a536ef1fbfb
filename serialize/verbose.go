package serialize

import (
	"strings"

	"github.com/c360/ptil/csc"
)

// renderVerbose implements spec §4.7's verbose grammar:
//
//	<ROOT=X> [<OPS=O1|O2|…>] <ROLE_NAME=ENTITY_NORMALIZED>… [<META=V>]
//
// The OPS tag is omitted entirely when ops is empty, and the META tag is
// omitted entirely when meta is absent — neither renders as an empty tag.
func renderVerbose(c csc.CSC) string {
	var fields []string

	fields = append(fields, "<ROOT="+string(c.Root)+">")

	if len(c.Ops) > 0 {
		names := make([]string, len(c.Ops))
		for i, op := range c.Ops {
			names[i] = string(op)
		}
		fields = append(fields, "<OPS="+strings.Join(names, "|")+">")
	}

	for _, role := range csc.CanonicalRoleOrder {
		if entity, ok := c.Roles[role]; ok {
			fields = append(fields, "<"+string(role)+"="+entity.Normalized+">")
		}
	}

	if c.Meta != nil {
		fields = append(fields, "<META="+string(*c.Meta)+">")
	}

	return strings.Join(fields, " ")
}
