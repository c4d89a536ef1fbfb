package serialize

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// TokenizerFamily names one of the three stand-in tokenizers the
// compatibility check runs a serialized string through (spec §4.7).
type TokenizerFamily string

const (
	TokenizerBPE       TokenizerFamily = "bpe"
	TokenizerUnigram   TokenizerFamily = "unigram"
	TokenizerWordPiece TokenizerFamily = "wordpiece"
)

var allTokenizerFamilies = []TokenizerFamily{TokenizerBPE, TokenizerUnigram, TokenizerWordPiece}

// CompatibilityResult is one tokenizer family's verdict on a serialized
// string.
type CompatibilityResult struct {
	Family     TokenizerFamily
	Compatible bool
	TokenCount int
	Issues     []string
}

var (
	controlChars = regexp.MustCompile(`[\x00-\x1f\x7f-\x9f]`)
	unsafeChar   = regexp.MustCompile(`[^\w\s<>=|:.-]`)
	taggedToken  = regexp.MustCompile(`^<[^>]*>$`)
)

// CheckTokenizerCompatibility runs serialized through BPE-like, Unigram-
// like, and WordPiece-like tokenizer stubs and reports, per family,
// whether it is free of control characters, non-ASCII bytes outside
// Entity normalization, and malformed tags, and whether the resulting
// token count does not exceed rawTokenCount (spec §4.7's "≤
// token_count(raw_input)" requirement, P10).
func CheckTokenizerCompatibility(serialized string, rawTokenCount int) []CompatibilityResult {
	results := make([]CompatibilityResult, 0, len(allTokenizerFamilies))
	for _, family := range allTokenizerFamilies {
		results = append(results, checkOne(serialized, rawTokenCount, family))
	}
	return results
}

func checkOne(serialized string, rawTokenCount int, family TokenizerFamily) CompatibilityResult {
	var issues []string

	if controlChars.MatchString(serialized) {
		issues = append(issues, "contains control characters")
	}
	if strings.Count(serialized, "<") != strings.Count(serialized, ">") {
		issues = append(issues, "unbalanced angle brackets")
	}
	if strings.Contains(serialized, "<>") || strings.Contains(serialized, "<=>") {
		issues = append(issues, "contains an empty tag")
	}
	if strings.ContainsAny(serialized, "\n\r") {
		issues = append(issues, "contains a newline")
	}
	if loc := unsafeChar.FindString(stripUnicodeLetters(serialized)); loc != "" {
		issues = append(issues, fmt.Sprintf("contains disallowed character %q", loc))
	}

	switch family {
	case TokenizerBPE:
		if strings.Contains(serialized, "@@") {
			issues = append(issues, "contains BPE merge marker @@")
		}
	case TokenizerUnigram:
		if strings.Contains(serialized, "▁") {
			issues = append(issues, "contains SentencePiece marker")
		}
	case TokenizerWordPiece:
		if strings.Contains(serialized, "##") {
			issues = append(issues, "contains WordPiece continuation marker ##")
		}
	}

	tokens := simulate(serialized, family)
	if rawTokenCount > 0 && len(tokens) > rawTokenCount {
		issues = append(issues, fmt.Sprintf(
			"produced %d tokens, exceeding raw input's %d", len(tokens), rawTokenCount))
	}
	for _, tok := range tokens {
		if tok == "" {
			issues = append(issues, "produced an empty token")
			break
		}
	}

	return CompatibilityResult{
		Family:     family,
		Compatible: len(issues) == 0,
		TokenCount: len(tokens),
		Issues:     issues,
	}
}

// simulate is a deliberately crude stand-in subword splitter: it keeps
// whole "<...>" tags as single tokens (a real BPE/Unigram/WordPiece
// vocabulary would too, once trained on this format) and chunks every
// other whitespace-delimited word into family-specific fixed windows, so
// longer compact/ultra entity spans exercise the same multi-token path a
// trained tokenizer would take.
func simulate(serialized string, family TokenizerFamily) []string {
	trimmed := strings.TrimSpace(serialized)
	if trimmed == "" {
		return nil
	}

	window := 3
	continuation := ""
	switch family {
	case TokenizerUnigram:
		window = 4
	case TokenizerWordPiece:
		continuation = "##"
	}

	var tokens []string
	for _, word := range strings.Fields(trimmed) {
		if taggedToken.MatchString(word) {
			tokens = append(tokens, word)
			continue
		}
		if len(word) <= window+1 {
			tokens = append(tokens, word)
			continue
		}
		for i := 0; i < len(word); i += window {
			end := i + window
			if end > len(word) {
				end = len(word)
			}
			piece := word[i:end]
			if i > 0 {
				piece = continuation + piece
			}
			tokens = append(tokens, piece)
		}
	}
	return tokens
}

// stripUnicodeLetters drops every Unicode letter and digit rune so
// unsafeChar can flag stray punctuation without tripping on the accented
// or non-Latin letters Entity normalization is allowed to carry.
func stripUnicodeLetters(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// AllCompatible reports whether every result in results is compatible.
func AllCompatible(results []CompatibilityResult) bool {
	for _, r := range results {
		if !r.Compatible {
			return false
		}
	}
	return true
}
