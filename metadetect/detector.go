package metadetect

import (
	"github.com/c360/ptil/csc"
	"github.com/c360/ptil/lingua"
)

// Detect applies spec §4.5's priority-ordered rules to a whole sentence's
// Analysis: QUESTION, then COMMAND, then UNCERTAIN, then EVIDENTIAL,
// defaulting to ASSERTIVE. It returns false only for empty input, which
// has no sentence to tag.
func Detect(a lingua.Analysis) (csc.Meta, bool) {
	if len(a.Tokens) == 0 {
		return "", false
	}
	switch {
	case a.Interrogative:
		return csc.MetaQuestion, true
	case a.Imperative:
		return csc.MetaCommand, true
	case a.EpistemicHedge:
		return csc.MetaUncertain, true
	case a.Evidential:
		return csc.MetaEvidential, true
	default:
		return csc.MetaAssertive, true
	}
}
