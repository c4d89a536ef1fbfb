package lingua

import "github.com/c360/ptil/csc"

// verbEntry is one verb lexicon entry: its lemma and the tense the surface
// form itself carries, when that tense is not overridden by an auxiliary.
type verbEntry struct {
	lemma string
	tense csc.Operator // csc.OpPast or csc.OpPresent; never OpFuture (future is always marked by an auxiliary)
}

// LanguageTable is the closed-class vocabulary RuleParser needs for one
// language: determiners, pronouns, auxiliaries, negation/tense/aspect/
// modality marker words, a small verb lexicon, and the bare temporal
// adverbs spec §4.4 resolves to TIME without a preposition. Every table is
// declared as a package-level literal and never mutated after init,
// per spec §9 ("tables as immutable data").
type LanguageTable struct {
	Determiners   map[string]bool
	Pronouns      map[string]bool
	Prepositions  map[string]bool
	Conjunctions  map[string]bool
	Negations     map[string]bool
	FutureAux     map[string]bool
	DoSupportAux  map[string]csc.Operator // do-support auxiliary -> tense it carries
	PerfectAux    map[string]bool         // has/have/had -> COMPLETED
	ContinuousAux map[string]bool         // is/are/was/were/am -> CONTINUOUS
	HabitualWords map[string]bool
	ModalWords    map[string]csc.Operator
	TemporalWords map[string]bool
	HedgeWords    map[string]bool
	EvidentialWords map[string]bool
	EmotiveWords  map[string]bool
	IronicWords   map[string]bool
	CausationWords map[string]csc.Operator
	DirectionWords map[string]csc.Operator
	Verbs         map[string]verbEntry
}

// Tables holds the LanguageTable for every language the default RuleParser
// supports. Additional languages are a documented extension point, not
// required for this release (SPEC_FULL §4.1).
var Tables = map[string]LanguageTable{
	"en": {
		Determiners:  set("a", "an", "the"),
		Pronouns:     set("i", "you", "he", "she", "it", "we", "they", "him", "her", "them", "us", "me"),
		Prepositions: set("to", "into", "onto", "from", "out", "of", "with", "using", "in", "on", "at", "near", "during", "before", "after", "by"),
		Conjunctions: set("and", "or", "but"),
		Negations:    set("not", "n't", "never", "no"),
		FutureAux:    set("will", "shall", "'ll"),
		DoSupportAux: map[string]csc.Operator{"do": csc.OpPresent, "does": csc.OpPresent, "did": csc.OpPast},
		PerfectAux:   set("has", "have", "had"),
		ContinuousAux: set("is", "are", "am", "was", "were", "be", "being", "been"),
		HabitualWords: set("always", "usually", "often", "normally", "typically", "every"),
		ModalWords: map[string]csc.Operator{
			"can": csc.OpPossible, "could": csc.OpPossible, "might": csc.OpPossible, "may": csc.OpPermitted,
			"must": csc.OpNecessary, "should": csc.OpObligatory,
		},
		TemporalWords: set("tomorrow", "today", "yesterday", "now", "soon", "tonight", "later"),
		HedgeWords:    set("maybe", "perhaps", "possibly"),
		EvidentialWords: set("apparently", "reportedly", "seemingly"),
		EmotiveWords: set("unfortunately", "sadly", "luckily", "thankfully", "hopefully"),
		IronicWords:  set("obviously", "clearly", "definitely", "totally", "really"),
		CausationWords: map[string]csc.Operator{"make": csc.OpCausative, "cause": csc.OpCausative, "force": csc.OpForced, "compel": csc.OpForced, "decide": csc.OpSelfInitiated, "choose": csc.OpSelfInitiated},
		DirectionWords: map[string]csc.Operator{"into": csc.OpDirectionIn, "in": csc.OpDirectionIn, "out": csc.OpDirectionOut, "toward": csc.OpToward, "towards": csc.OpToward, "to": csc.OpToward, "away": csc.OpAway, "from": csc.OpAway},
		Verbs: map[string]verbEntry{
			"go": {"go", csc.OpPresent}, "goes": {"go", csc.OpPresent}, "went": {"go", csc.OpPast}, "gone": {"go", csc.OpPast},
			"run": {"run", csc.OpPresent}, "runs": {"run", csc.OpPresent}, "ran": {"run", csc.OpPast},
			"give": {"give", csc.OpPresent}, "gives": {"give", csc.OpPresent}, "gave": {"give", csc.OpPast}, "given": {"give", csc.OpPast},
			"sleep": {"sleep", csc.OpPresent}, "sleeps": {"sleep", csc.OpPresent}, "slept": {"sleep", csc.OpPast},
			"say": {"say", csc.OpPresent}, "says": {"say", csc.OpPresent}, "said": {"say", csc.OpPast},
			"think": {"think", csc.OpPresent}, "thinks": {"think", csc.OpPresent}, "thought": {"think", csc.OpPast},
			"see": {"see", csc.OpPresent}, "sees": {"see", csc.OpPresent}, "saw": {"see", csc.OpPast}, "seen": {"see", csc.OpPast},
			"hear": {"hear", csc.OpPresent}, "hears": {"hear", csc.OpPresent}, "heard": {"hear", csc.OpPast},
			"make": {"make", csc.OpPresent}, "makes": {"make", csc.OpPresent}, "made": {"make", csc.OpPast},
			"break": {"break", csc.OpPresent}, "breaks": {"break", csc.OpPresent}, "broke": {"break", csc.OpPast}, "broken": {"break", csc.OpPast},
			"have": {"have", csc.OpPresent}, "has": {"have", csc.OpPresent}, "had": {"have", csc.OpPast},
			"want": {"want", csc.OpPresent}, "wants": {"want", csc.OpPresent}, "wanted": {"want", csc.OpPast},
			"be": {"be", csc.OpPresent}, "is": {"be", csc.OpPresent}, "are": {"be", csc.OpPresent}, "was": {"be", csc.OpPast}, "were": {"be", csc.OpPast},
		},
	},
	"es": {
		Determiners:  set("el", "la", "los", "las", "un", "una"),
		Pronouns:     set("yo", "tú", "él", "ella", "nosotros", "ellos", "ellas"),
		Prepositions: set("a", "hacia", "desde", "con", "en", "por", "durante"),
		Conjunctions: set("y", "o", "pero"),
		Negations:    set("no", "nunca", "jamás"),
		FutureAux:    set("va"),
		DoSupportAux: map[string]csc.Operator{},
		PerfectAux:   set("ha", "han", "había"),
		ContinuousAux: set("está", "están", "estaba"),
		HabitualWords: set("siempre", "normalmente"),
		ModalWords: map[string]csc.Operator{
			"puede": csc.OpPossible, "podría": csc.OpPossible, "debe": csc.OpNecessary,
		},
		TemporalWords: set("mañana", "hoy", "ayer", "ahora"),
		HedgeWords:    set("quizás", "tal vez"),
		EvidentialWords: set("aparentemente"),
		EmotiveWords: set("desgraciadamente", "afortunadamente"),
		IronicWords:  set("obviamente", "claramente"),
		CausationWords: map[string]csc.Operator{"hacer": csc.OpCausative, "obligar": csc.OpForced},
		DirectionWords: map[string]csc.Operator{"hacia": csc.OpToward, "desde": csc.OpAway},
		Verbs: map[string]verbEntry{
			"corre": {"correr", csc.OpPresent}, "corrió": {"correr", csc.OpPast}, "correr": {"correr", csc.OpPresent},
			"va": {"ir", csc.OpPresent}, "fue": {"ir", csc.OpPast}, "ir": {"ir", csc.OpPresent},
			"da": {"dar", csc.OpPresent}, "dio": {"dar", csc.OpPast}, "dar": {"dar", csc.OpPresent},
			"duerme": {"dormir", csc.OpPresent}, "durmió": {"dormir", csc.OpPast},
		},
	},
	"fr": {
		Determiners:  set("le", "la", "les", "un", "une"),
		Pronouns:     set("je", "tu", "il", "elle", "nous", "ils", "elles"),
		Prepositions: set("à", "vers", "de", "avec", "dans", "sur", "pendant"),
		Conjunctions: set("et", "ou", "mais"),
		Negations:    set("ne", "pas", "jamais", "non"),
		FutureAux:    set("va"),
		DoSupportAux: map[string]csc.Operator{},
		PerfectAux:   set("a", "ont", "avait"),
		ContinuousAux: set("est", "sont", "était"),
		HabitualWords: set("toujours", "souvent"),
		ModalWords: map[string]csc.Operator{
			"peut": csc.OpPossible, "pourrait": csc.OpPossible, "doit": csc.OpNecessary,
		},
		TemporalWords: set("demain", "aujourd'hui", "hier", "maintenant"),
		HedgeWords:    set("peut-être"),
		EvidentialWords: set("apparemment"),
		EmotiveWords: set("malheureusement", "heureusement"),
		IronicWords:  set("évidemment", "clairement"),
		CausationWords: map[string]csc.Operator{"faire": csc.OpCausative, "forcer": csc.OpForced},
		DirectionWords: map[string]csc.Operator{"vers": csc.OpToward, "de": csc.OpAway},
		Verbs: map[string]verbEntry{
			"court": {"courir", csc.OpPresent}, "courut": {"courir", csc.OpPast}, "courir": {"courir", csc.OpPresent},
			"va": {"aller", csc.OpPresent}, "alla": {"aller", csc.OpPast},
			"donne": {"donner", csc.OpPresent}, "donna": {"donner", csc.OpPast},
			"dort": {"dormir", csc.OpPresent}, "dormit": {"dormir", csc.OpPast},
		},
	},
	"de": {
		Determiners:  set("der", "die", "das", "ein", "eine"),
		Pronouns:     set("ich", "du", "er", "sie", "wir", "sie"),
		Prepositions: set("zu", "nach", "von", "mit", "in", "an", "während"),
		Conjunctions: set("und", "oder", "aber"),
		Negations:    set("nicht", "nie", "kein"),
		FutureAux:    set("wird"),
		DoSupportAux: map[string]csc.Operator{},
		PerfectAux:   set("hat", "haben", "hatte"),
		ContinuousAux: set("ist", "sind", "war"),
		HabitualWords: set("immer", "oft"),
		ModalWords: map[string]csc.Operator{
			"kann": csc.OpPossible, "könnte": csc.OpPossible, "muss": csc.OpNecessary,
		},
		TemporalWords: set("morgen", "heute", "gestern", "jetzt"),
		HedgeWords:    set("vielleicht"),
		EvidentialWords: set("angeblich"),
		EmotiveWords: set("leider", "glücklicherweise"),
		IronicWords:  set("offensichtlich", "klar"),
		CausationWords: map[string]csc.Operator{"machen": csc.OpCausative, "zwingen": csc.OpForced},
		DirectionWords: map[string]csc.Operator{"zu": csc.OpToward, "von": csc.OpAway},
		Verbs: map[string]verbEntry{
			"läuft": {"laufen", csc.OpPresent}, "lief": {"laufen", csc.OpPast}, "laufen": {"laufen", csc.OpPresent},
			"geht": {"gehen", csc.OpPresent}, "ging": {"gehen", csc.OpPast},
			"gibt": {"geben", csc.OpPresent}, "gab": {"geben", csc.OpPast},
			"schläft": {"schlafen", csc.OpPresent}, "schlief": {"schlafen", csc.OpPast},
		},
	},
	"it": {
		Determiners:  set("il", "la", "i", "le", "un", "una"),
		Pronouns:     set("io", "tu", "lui", "lei", "noi", "loro"),
		Prepositions: set("a", "verso", "da", "con", "in", "su", "durante"),
		Conjunctions: set("e", "o", "ma"),
		Negations:    set("non", "mai", "no"),
		FutureAux:    set("andrà"),
		DoSupportAux: map[string]csc.Operator{},
		PerfectAux:   set("ha", "hanno", "aveva"),
		ContinuousAux: set("è", "sono", "era"),
		HabitualWords: set("sempre", "spesso"),
		ModalWords: map[string]csc.Operator{
			"può": csc.OpPossible, "potrebbe": csc.OpPossible, "deve": csc.OpNecessary,
		},
		TemporalWords: set("domani", "oggi", "ieri", "adesso"),
		HedgeWords:    set("forse"),
		EvidentialWords: set("apparentemente"),
		EmotiveWords: set("sfortunatamente", "fortunatamente"),
		IronicWords:  set("ovviamente", "chiaramente"),
		CausationWords: map[string]csc.Operator{"fare": csc.OpCausative, "costringere": csc.OpForced},
		DirectionWords: map[string]csc.Operator{"verso": csc.OpToward, "da": csc.OpAway},
		Verbs: map[string]verbEntry{
			"corre": {"correre", csc.OpPresent}, "corse": {"correre", csc.OpPast}, "correre": {"correre", csc.OpPresent},
			"va": {"andare", csc.OpPresent}, "andò": {"andare", csc.OpPast},
			"dà": {"dare", csc.OpPresent}, "diede": {"dare", csc.OpPast},
			"dorme": {"dormire", csc.OpPresent}, "dormì": {"dormire", csc.OpPast},
		},
	},
}

func set(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}
