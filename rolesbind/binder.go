package rolesbind

import (
	"strings"

	"github.com/c360/ptil/csc"
	"github.com/c360/ptil/lingua"
)

// candidate is one Role assignment still competing for its slot; sourceIdx
// is the dependent token's index, used for step 4's leftmost-wins rule.
type candidate struct {
	role      csc.Role
	entity    csc.Entity
	sourceIdx int
}

// Bind resolves the Role→Entity mapping for the predicate at
// predicateIndex under root, per spec §4.4: gather syntactic arguments,
// map each to a candidate role, drop roles root does not admit, and keep
// the leftmost entity when two candidates compete for one role. lang
// selects the preposition→role table; an unrecognized lang falls back to
// English's.
func Bind(a lingua.Analysis, predicateIndex int, root csc.Root, lang string) map[csc.Role]csc.Entity {
	result := make(map[csc.Role]csc.Entity)
	if len(a.Tokens) == 0 {
		return result
	}

	tbl, ok := lingua.Tables[lang]
	if !ok {
		lang = "en"
		tbl = lingua.Tables["en"]
	}

	var candidates []candidate
	for _, arc := range a.Deps {
		if arc.Head != predicateIndex {
			continue
		}
		switch {
		case arc.Relation == "nsubj":
			candidates = append(candidates, candidate{csc.RoleAgent, entitySpan(a, arc.Dependent), arc.Dependent})
		case arc.Relation == "nsubjpass":
			role := csc.RolePatient
			if root == csc.RootMotion || root == csc.RootTransfer {
				role = csc.RoleTheme
			}
			candidates = append(candidates, candidate{role, entitySpan(a, arc.Dependent), arc.Dependent})
		case arc.Relation == "agent":
			candidates = append(candidates, candidate{csc.RoleAgent, entitySpan(a, arc.Dependent), arc.Dependent})
		case arc.Relation == "dobj":
			role := csc.RoleTheme
			if csc.IsAdmissible(root, csc.RolePatient) {
				role = csc.RolePatient
			}
			candidates = append(candidates, candidate{role, entitySpan(a, arc.Dependent), arc.Dependent})
		case arc.Relation == "iobj":
			candidates = append(candidates, candidate{csc.RoleGoal, entitySpan(a, arc.Dependent), arc.Dependent})
		case arc.Relation == "tmod":
			candidates = append(candidates, candidate{csc.RoleTime, entitySpan(a, arc.Dependent), arc.Dependent})
		case strings.HasPrefix(arc.Relation, "prep_"):
			lemma := strings.TrimPrefix(arc.Relation, "prep_")
			isTemporal := tbl.TemporalWords[strings.ToLower(a.Tokens[arc.Dependent])]
			if role, ok := roleForPreposition(lang, lemma, isTemporal); ok {
				candidates = append(candidates, candidate{role, entitySpan(a, arc.Dependent), arc.Dependent})
			}
		}
	}

	best := make(map[csc.Role]candidate)
	for _, c := range candidates {
		if !csc.IsAdmissible(root, c.role) {
			continue
		}
		existing, exists := best[c.role]
		if !exists || c.sourceIdx < existing.sourceIdx {
			best[c.role] = c
		}
	}

	for role, c := range best {
		result[role] = c.entity
	}
	return result
}

// entitySpan builds the Entity for the single token at idx. Determiners
// are not part of the entity — spec §4.7's canonical vector normalizes
// "The boy" to AGENT=BOY, not AGENT=THE_BOY — so the span is just the
// dependent token itself; findSubject/bindObjects already point idx at
// the noun head, skipping any leading determiner.
func entitySpan(a lingua.Analysis, idx int) csc.Entity {
	return csc.NewEntity(a.Tokens[idx])
}
