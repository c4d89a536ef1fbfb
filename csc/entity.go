package csc

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// normalizer performs the Unicode-correct uppercasing Entity normalization
// needs: golang.org/x/text/cases.Upper with language.Und, so diacritics
// survive (e.g. "niño" → "NIÑO") in a way strings.ToUpper's ASCII-biased
// mapping does not guarantee across every script.
var normalizer = cases.Upper(language.Und)

// Entity is a surface span bound to a Role, carried as both its lowercased
// surface text and its normalized serialization form. Entities are
// request-scoped: they do not outlive the CSC that contains them.
type Entity struct {
	// Text is the span joined by single spaces and lowercased.
	Text string
	// Normalized is Text uppercased with internal whitespace collapsed to
	// a single underscore, for use in serialization.
	Normalized string
}

// NewEntity builds an Entity from a raw surface span, applying the
// normalization spec §4.4 leaves to the implementer: join on single
// spaces, lowercase for Text, then uppercase with whitespace collapsed to
// underscore for Normalized.
func NewEntity(span string) Entity {
	joined := strings.Join(strings.Fields(span), " ")
	text := strings.ToLower(joined)
	normalized := strings.ReplaceAll(normalizer.String(joined), " ", "_")
	return Entity{Text: text, Normalized: normalized}
}
