package cscassembler

import (
	"fmt"

	"github.com/c360/ptil/csc"
)

// Diagnostic records one recovery the Assembler performed silently — an
// incompatible role dropped, or (defensively) an operator outside the
// closed set dropped. They do not change the assembled CSC; encoder.Encode
// returns them among its Diagnostics and passes each to the sink set with
// encoder.WithDiagnosticSink.
type Diagnostic struct {
	Component string
	Message   string
}

// PredicateAssembly is the per-predicate input to AssembleAll: one
// predicate's ROOT, OPS, and ROLES. META is sentence-scoped (spec §4.5)
// and supplied once to AssembleAll rather than per predicate.
type PredicateAssembly struct {
	Root  csc.Root
	Ops   []csc.Operator
	Roles map[csc.Role]csc.Entity
}

// Assemble validates and assembles one predicate's CSC: every Role key
// must be admissible under root (an inadmissible one is dropped, not an
// error — spec §4.6: "this is a recovery, not a failure") and every
// Operator must belong to the closed set.
func Assemble(root csc.Root, ops []csc.Operator, roles map[csc.Role]csc.Entity, meta *csc.Meta) (*csc.CSC, []Diagnostic) {
	result := csc.New(root)
	result.Meta = meta

	var diagnostics []Diagnostic
	validOps := make([]csc.Operator, 0, len(ops))
	for _, op := range ops {
		if op.Valid() {
			validOps = append(validOps, op)
		} else {
			diagnostics = append(diagnostics, Diagnostic{
				Component: "cscassembler",
				Message:   fmt.Sprintf("dropped operator %q outside the closed Operator set", string(op)),
			})
		}
	}
	result.Ops = validOps

	for role, entity := range roles {
		if csc.IsAdmissible(root, role) {
			result.Roles[role] = entity
		} else {
			diagnostics = append(diagnostics, Diagnostic{
				Component: "cscassembler",
				Message:   fmt.Sprintf("dropped role %s (%s) — not admissible under ROOT %s", role, entity.Normalized, root),
			})
		}
	}

	return result, diagnostics
}

// ValidateCompleteness reports whether c carries its two mandatory
// components: a non-empty ROOT and a non-nil Ops slice. Roles may
// legitimately be empty (a predicate with no bound arguments) and META
// is always optional, so neither is checked.
func ValidateCompleteness(c csc.CSC) bool {
	return c.Root != "" && c.Ops != nil
}

// AssembleAll assembles one CSC per predicate, in the order predicates
// were given, sharing the single sentence-scoped meta across all of them.
func AssembleAll(predicates []PredicateAssembly, meta *csc.Meta) ([]csc.CSC, []Diagnostic) {
	cscs := make([]csc.CSC, 0, len(predicates))
	var diagnostics []Diagnostic
	for _, p := range predicates {
		c, diags := Assemble(p.Root, p.Ops, p.Roles, meta)
		cscs = append(cscs, *c)
		diagnostics = append(diagnostics, diags...)
	}
	return cscs, diagnostics
}
