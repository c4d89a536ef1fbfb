package testutil

// SampleSentences spans the grammatical shapes the encoder is expected to
// handle: negation, future/past tense, questions, imperatives, double
// objects, and bare existence predicates. Property tests sample from this
// pool rather than generating arbitrary strings, since arbitrary token
// sequences mostly fail to parse into any predicate at all and would tell a
// randomized test nothing about the encoder's real behavior.
var SampleSentences = []string{
	"The boy will not go to school tomorrow.",
	"She gave him a book.",
	"Did the cat sleep?",
	"Run!",
	"The dog runs.",
	"He sent her a letter yesterday.",
	"They will build a house.",
	"The man does not think about it.",
	"We saw the bird.",
	"I will not go.",
	"He gave the teacher a gift.",
	"The children played in the park.",
	"She said nothing.",
	"Will you help me tomorrow?",
	"Stop!",
}

// ParallelSentencePair names one English sentence and its translation in
// another supported language, both expected to encode to the same ROOT
// (cross-lingual ROOT equality).
type ParallelSentencePair struct {
	English string
	Lang    string
	Text    string
}

// ParallelSentenceTable curates one motion-verb pair per supported
// non-English language, grounded in rootmap's predicateDictionary entries
// for "correr"/"ir"/"courir"/"laufen"/"correre" and lingua's per-language
// Verbs tables (markers.go), so every row is guaranteed to parse to a
// MOTION predicate on both sides.
var ParallelSentenceTable = []ParallelSentencePair{
	{English: "The boy runs.", Lang: "es", Text: "El niño corre."},
	{English: "The boy runs.", Lang: "fr", Text: "Le garçon court."},
	{English: "The boy runs.", Lang: "de", Text: "Der Junge läuft."},
	{English: "The boy runs.", Lang: "it", Text: "Il ragazzo corre."},
}
