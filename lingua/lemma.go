package lingua

import "strings"

// Lemma returns the dictionary form of surface in language lang, using
// that language's verb lexicon. Tokens not in the lexicon are returned
// lowercased unchanged — spec §4.2's ROOT Mapper treats an unrecognized
// lemma the same way whether it's a real word or a lowercased surface
// form, so no special "unknown" marker is needed here.
func Lemma(lang, surface string) string {
	lower := strings.ToLower(surface)
	tbl, ok := Tables[lang]
	if !ok {
		tbl = Tables["en"]
	}
	if entry, ok := tbl.Verbs[lower]; ok {
		return entry.lemma
	}
	return lower
}
