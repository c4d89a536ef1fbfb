// Package rootmap is the ROOT Mapper (C2): it maps a predicate's lemma to
// one of the closed `csc.Root` primitives, using a static predicate
// dictionary, POS/dependency disambiguation for lemmas with more than one
// candidate ROOT, and a fallback for lemmas the dictionary has never seen.
package rootmap
