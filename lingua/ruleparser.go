package lingua

import (
	"context"
	"regexp"
	"strings"

	"github.com/c360/ptil/csc"
	"github.com/c360/ptil/ptilerr"
)

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}]+(?:'[\p{L}]+)?|[.!?,;:]`)

// RuleParser is the default Analyzer (spec §4.1): a closed-class lookup
// tagger plus a handful of projective attachment rules anchored on the
// sentence's finite verb. It needs no model file and no external process,
// at the cost of coverage a trained dependency parser would have — nested
// clauses, coordination, and long-distance attachment are out of scope.
type RuleParser struct {
	language string
	table    LanguageTable
}

// NewRuleParser returns a RuleParser for language (an ISO 639-1 code). An
// unrecognized language falls back to the English table rather than
// erroring, since the closed-class tags degrade gracefully to NOUN.
func NewRuleParser(language string) *RuleParser {
	tbl, ok := Tables[language]
	if !ok {
		language, tbl = "en", Tables["en"]
	}
	return &RuleParser{language: language, table: tbl}
}

// Language reports the language this parser was constructed for.
func (p *RuleParser) Language() string { return p.language }

func (p *RuleParser) Analyze(ctx context.Context, text string) (Analysis, error) {
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return NewAnalysis(), nil
	}

	raw := tokenPattern.FindAllString(trimmed, -1)
	if len(raw) == 0 {
		return Analysis{}, ptilerr.WrapInvalid(ptilerr.ErrEmptyText, "lingua", "Analyze", "no tokens recovered from input")
	}

	a := NewAnalysis()
	a.Tokens = raw
	a.POS = make([]string, len(raw))
	lowers := make([]string, len(raw))
	defaultTense := make(map[int]csc.Operator)
	ironicHits := 0

	tbl := p.table
	for i, tok := range raw {
		lower := strings.ToLower(tok)
		lowers[i] = lower
		a.POS[i] = p.tag(tbl, lower, tok)

		switch {
		case isPunct(tok):
		case tbl.Negations[lower]:
			a.NegMarkers[i] = true
		case tbl.FutureAux[lower]:
			markAt(a.TenseMarkers, csc.OpFuture, i)
		case tbl.DoSupportAux[lower] != "":
			markAt(a.TenseMarkers, tbl.DoSupportAux[lower], i)
		case tbl.PerfectAux[lower]:
			markAt(a.AspectMarkers, csc.OpCompleted, i)
		case tbl.ContinuousAux[lower]:
			markAt(a.AspectMarkers, csc.OpContinuous, i)
		case tbl.HabitualWords[lower]:
			markAt(a.AspectMarkers, csc.OpHabitual, i)
		case tbl.ModalWords[lower] != "":
			markAt(a.ModalMarkers, tbl.ModalWords[lower], i)
		case tbl.HedgeWords[lower]:
			a.EpistemicHedge = true
		case tbl.EvidentialWords[lower]:
			a.Evidential = true
		case tbl.EmotiveWords[lower]:
			a.Emotive = true
		case tbl.IronicWords[lower]:
			ironicHits++
		}

		if op, ok := tbl.CausationWords[lower]; ok {
			markAt(a.CausationMarkers, op, i)
		}
		if op, ok := tbl.DirectionWords[lower]; ok {
			markAt(a.DirectionMarkers, op, i)
		}

		if ve, ok := tbl.Verbs[lower]; ok {
			defaultTense[i] = ve.tense
		}
	}

	a.Ironic = ironicHits > 1

	for i, pos := range a.POS {
		if pos == "VERB" {
			a.Predicates = append(a.Predicates, i)
		}
	}

	a.Interrogative = strings.HasSuffix(trimmed, "?") || (len(a.POS) > 0 && a.POS[0] == "AUX_DO")

	if len(a.Predicates) > 0 {
		hasOvertTense := len(a.TenseMarkers) > 0
		if !hasOvertTense {
			pred := a.Predicates[0]
			if tense, ok := defaultTense[pred]; ok {
				markAt(a.TenseMarkers, tense, pred)
			} else {
				markAt(a.TenseMarkers, csc.OpPresent, pred)
			}
		}
	}

	for _, pred := range a.Predicates {
		subj := findSubject(a.POS, pred)
		if subj >= 0 {
			a.Deps = append(a.Deps, DepArc{Head: pred, Relation: "nsubj", Dependent: subj})
		}
		bindObjects(a.Tokens, lowers, a.POS, pred, &a)
	}

	if len(a.Predicates) > 0 && !a.Interrogative {
		first := a.Predicates[0]
		if findSubject(a.POS, first) < 0 {
			a.Imperative = true
		}
	}

	return a, nil
}

// tag assigns one closed-class or open-class POS label to a single token,
// consulting the language table in the fixed priority order spec §4.1
// describes: punctuation, then closed classes, then the verb lexicon, with
// everything else falling through to NOUN. The order matters because a
// handful of forms (Spanish/French "va") are ambiguous between an
// auxiliary and a full verb reading and the table lookup order is what
// resolves them.
func (p *RuleParser) tag(tbl LanguageTable, lower, original string) string {
	switch {
	case isPunct(original):
		return "PUNCT"
	case tbl.Determiners[lower]:
		return "DET"
	case tbl.Pronouns[lower]:
		return "PRON"
	case tbl.Prepositions[lower]:
		return "ADP"
	case tbl.Conjunctions[lower]:
		return "CONJ"
	case tbl.Negations[lower]:
		return "NEG"
	case tbl.FutureAux[lower]:
		return "AUX_FUT"
	case tbl.DoSupportAux[lower] != "":
		return "AUX_DO"
	case tbl.PerfectAux[lower]:
		return "AUX_PERF"
	case tbl.ContinuousAux[lower]:
		return "AUX_CONT"
	case tbl.HabitualWords[lower]:
		return "ADV_HAB"
	case tbl.ModalWords[lower] != "":
		return "MODAL"
	case tbl.TemporalWords[lower]:
		return "ADV_TIME"
	case tbl.HedgeWords[lower]:
		return "ADV_HEDGE"
	case tbl.EvidentialWords[lower]:
		return "ADV_EVID"
	case func() bool { _, ok := tbl.Verbs[lower]; return ok }():
		return "VERB"
	default:
		return "NOUN"
	}
}

func isPunct(tok string) bool {
	switch tok {
	case ".", "!", "?", ",", ";", ":":
		return true
	default:
		return false
	}
}

// findSubject looks left from predIdx, within the current clause (bounded
// by the nearest preceding punctuation token), for the nearest PRON or
// NOUN. It returns -1 when none is found, which RuleParser reads as either
// a missing subject (imperative) or a question-inversion subject that sits
// to the predicate's right — callers that need the latter case walk the
// AUX_DO/VERB gap directly rather than relying on findSubject.
func findSubject(pos []string, predIdx int) int {
	start := 0
	for i := predIdx - 1; i >= 0; i-- {
		if pos[i] == "PUNCT" {
			start = i + 1
			break
		}
	}
	for i := predIdx - 1; i >= start; i-- {
		if pos[i] == "NOUN" || pos[i] == "PRON" {
			return i
		}
	}
	return -1
}

// bindObjects walks the clause to the right of a predicate and records
// nsubj's counterpart arcs: a single bare noun phrase is a direct object, two
// bare noun phrases are the indirect/direct pair of a double-object
// construction ("gave him a book"), a preposition-led chunk is a
// prep_<lemma> arc, and a bare temporal adverb is a tmod arc. The ROLES
// Binder (spec §4.4) turns these dependency labels into CSC roles; C1 itself
// carries no role vocabulary.
func bindObjects(tokens, lowers, pos []string, predIdx int, a *Analysis) {
	end := len(pos)
	for i := predIdx + 1; i < len(pos); i++ {
		if pos[i] == "PUNCT" {
			end = i
			break
		}
	}

	var bareChunks [][2]int
	for i := predIdx + 1; i < end; {
		switch pos[i] {
		case "ADP":
			j := i + 1
			for j < end && pos[j] == "DET" {
				j++
			}
			if j < end && (pos[j] == "NOUN" || pos[j] == "PRON" || pos[j] == "ADV_TIME") {
				a.Deps = append(a.Deps, DepArc{Head: predIdx, Relation: "prep_" + lowers[i], Dependent: j})
				i = j + 1
			} else {
				i++
			}
		case "DET":
			j := i + 1
			for j < end && pos[j] == "DET" {
				j++
			}
			if j < end && pos[j] == "NOUN" {
				bareChunks = append(bareChunks, [2]int{i, j})
				i = j + 1
			} else {
				i++
			}
		case "NOUN", "PRON":
			bareChunks = append(bareChunks, [2]int{i, i})
			i++
		case "ADV_TIME":
			a.Deps = append(a.Deps, DepArc{Head: predIdx, Relation: "tmod", Dependent: i})
			i++
		default:
			i++
		}
	}

	switch len(bareChunks) {
	case 0:
	case 1:
		a.Deps = append(a.Deps, DepArc{Head: predIdx, Relation: "dobj", Dependent: bareChunks[0][1]})
	default:
		a.Deps = append(a.Deps, DepArc{Head: predIdx, Relation: "iobj", Dependent: bareChunks[0][1]})
		a.Deps = append(a.Deps, DepArc{Head: predIdx, Relation: "dobj", Dependent: bareChunks[len(bareChunks)-1][1]})
	}
}
