package serialize

import "github.com/c360/ptil/csc"

// rolePrefixes gives every Role a single, stable letter used by both the
// compact and ultra formats. TIME is assigned "W" (for "when") rather than
// the more mnemonic "M" ("tiMe") a reader might expect, because compact's
// META field already owns the literal key "M:" — picking a distinct
// letter for TIME keeps every field in a serialized string lexically
// unambiguous, not just positionally unambiguous. THEME keeps "T" as
// spec §4.7 requires ("TIME must not collide with THEME").
var rolePrefixes = map[csc.Role]string{
	csc.RoleAgent:      "A",
	csc.RolePatient:    "P",
	csc.RoleTheme:      "T",
	csc.RoleGoal:       "G",
	csc.RoleSource:     "S",
	csc.RoleInstrument: "I",
	csc.RoleLocation:   "L",
	csc.RoleTime:       "W",
}

// rootUltraCodes is the frozen ROOT abbreviation table for the ultra
// format: one uppercase letter per ROOT, assigned in csc.Roots
// declaration order. Frozen means exactly that — changing an assignment
// here changes the meaning of every ultra string ever emitted.
var rootUltraCodes = map[csc.Root]string{
	csc.RootMotion:        "A",
	csc.RootTransfer:      "B",
	csc.RootCommunication: "C",
	csc.RootCognition:     "D",
	csc.RootPerception:    "E",
	csc.RootCreation:      "F",
	csc.RootDestruction:   "G",
	csc.RootChange:        "H",
	csc.RootPossession:    "I",
	csc.RootIntention:     "J",
	csc.RootExistence:     "K",
}

// ultraCodeToRoot is rootUltraCodes inverted, built once at init. Nothing
// in the package decodes with it; the ultra round-trip test decodes through
// codes rendered by One.
var ultraCodeToRoot = invert(rootUltraCodes)

// opUltraCodes is the frozen OPS abbreviation table for the ultra format:
// one lowercase letter per Operator, assigned in the declaration order
// csc/operator.go lists them (temporal, aspect, polarity, modality,
// causation, direction).
var opUltraCodes = map[csc.Operator]string{
	csc.OpPast:    "a",
	csc.OpPresent: "b",
	csc.OpFuture:  "c",

	csc.OpContinuous: "d",
	csc.OpCompleted:  "e",
	csc.OpHabitual:   "f",

	csc.OpNegation:    "g",
	csc.OpAffirmation: "h",

	csc.OpPossible:   "i",
	csc.OpNecessary:  "j",
	csc.OpObligatory: "k",
	csc.OpPermitted:  "l",

	csc.OpCausative:     "m",
	csc.OpSelfInitiated: "n",
	csc.OpForced:        "o",

	csc.OpDirectionIn:  "p",
	csc.OpDirectionOut: "q",
	csc.OpToward:       "r",
	csc.OpAway:         "s",
}

var ultraCodeToOp = invert(opUltraCodes)

// metaUltraCodes is the frozen META abbreviation table for the ultra
// format. Letters are drawn from the unused tail of the alphabet to stay
// visually distinct from rootUltraCodes and opUltraCodes at a glance,
// though only positional order actually disambiguates a parsed string.
var metaUltraCodes = map[csc.Meta]string{
	csc.MetaAssertive:  "Z",
	csc.MetaQuestion:   "Y",
	csc.MetaCommand:    "X",
	csc.MetaUncertain:  "W",
	csc.MetaEvidential: "V",
	csc.MetaEmotive:    "U",
	csc.MetaIronic:     "Q",
}

var ultraCodeToMeta = invert(metaUltraCodes)

func invert[K comparable](m map[K]string) map[string]K {
	out := make(map[string]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}
