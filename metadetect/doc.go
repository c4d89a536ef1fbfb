// Package metadetect is the META Detector (C5): a sentence-scoped,
// priority-ordered rule list that decides at most one META tag per
// sentence — QUESTION and COMMAND first (primary speech acts), then the
// epistemic markers UNCERTAIN and EVIDENTIAL, defaulting to ASSERTIVE.
//
// EMOTIVE and IRONIC are reserved members of the META closed set; this
// detector never emits them. lingua.Analysis still carries the emotive/
// ironic marker signals a richer detector could use later, but wiring
// them into META output is explicitly out of scope for this release.
package metadetect
