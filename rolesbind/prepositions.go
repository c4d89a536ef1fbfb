package rolesbind

import "github.com/c360/ptil/csc"

// prepositionRoles is the closed preposition→role mapping spec §4.4 names
// (to/into/onto→GOAL; from/out/of→SOURCE; with/using/by→INSTRUMENT;
// in/near→LOCATION; during/before/after→TIME), one table per supported
// language. "at" and "on" are spec's two genuinely ambiguous prepositions
// — LOCATION when their object is spatial, TIME when it is temporal — and
// are resolved dynamically in ambiguousLocationTime rather than listed
// here.
var prepositionRoles = map[string]map[string]csc.Role{
	"en": {
		"to": csc.RoleGoal, "into": csc.RoleGoal, "onto": csc.RoleGoal,
		"from": csc.RoleSource, "out": csc.RoleSource, "of": csc.RoleSource,
		"with": csc.RoleInstrument, "using": csc.RoleInstrument, "by": csc.RoleInstrument,
		"in": csc.RoleLocation, "near": csc.RoleLocation,
		"during": csc.RoleTime, "before": csc.RoleTime, "after": csc.RoleTime,
	},
	"es": {
		"a": csc.RoleGoal, "hacia": csc.RoleGoal,
		"desde": csc.RoleSource,
		"con":   csc.RoleInstrument, "por": csc.RoleInstrument,
		"en":      csc.RoleLocation,
		"durante": csc.RoleTime,
	},
	"fr": {
		"à": csc.RoleGoal, "vers": csc.RoleGoal,
		"de":   csc.RoleSource,
		"avec": csc.RoleInstrument,
		"dans": csc.RoleLocation, "sur": csc.RoleLocation,
		"pendant": csc.RoleTime,
	},
	"de": {
		"zu": csc.RoleGoal, "nach": csc.RoleGoal,
		"von": csc.RoleSource,
		"mit": csc.RoleInstrument,
		"in":  csc.RoleLocation, "an": csc.RoleLocation,
		"während": csc.RoleTime,
	},
	"it": {
		"a": csc.RoleGoal, "verso": csc.RoleGoal,
		"da":  csc.RoleSource,
		"con": csc.RoleInstrument,
		"in":  csc.RoleLocation, "su": csc.RoleLocation,
		"durante": csc.RoleTime,
	},
}

// ambiguousLocationTime lists, per language, the prepositions spec §4.4
// assigns to both LOCATION and TIME depending on whether their object is
// spatial or temporal.
var ambiguousLocationTime = map[string]map[string]bool{
	"en": {"at": true, "on": true},
	"es": {},
	"fr": {},
	"de": {},
	"it": {},
}

// roleForPreposition resolves lemma (already lowercased) to a Role for
// language lang, consulting isTemporalObject only for the languages'
// genuinely ambiguous prepositions. ok is false when lemma has no entry —
// the ROLES Binder simply drops that prepositional phrase.
func roleForPreposition(lang, lemma string, isTemporalObject bool) (csc.Role, bool) {
	if ambiguousLocationTime[lang][lemma] {
		if isTemporalObject {
			return csc.RoleTime, true
		}
		return csc.RoleLocation, true
	}
	table, ok := prepositionRoles[lang]
	if !ok {
		table = prepositionRoles["en"]
	}
	role, ok := table[lemma]
	return role, ok
}
