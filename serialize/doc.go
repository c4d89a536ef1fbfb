// Package serialize is the Serializer (C7): it renders a csc.CSC to a
// tokenizer-friendly symbolic string in one of three formats (verbose,
// compact, ultra), and checks that rendering against stand-in BPE-like,
// Unigram-like, and WordPiece-like tokenizers.
//
// All three formats share the same field order — ROOT, then OPS in stored
// order, then ROLES in csc.CanonicalRoleOrder, then META if present — and
// differ only in how densely each field is spelled out. Verbose spells
// every symbol in full inside "<KEY=VALUE>" tags; compact drops the
// brackets and equals signs for single-letter keys but keeps full symbol
// names; ultra additionally abbreviates ROOT, OPS, and META to frozen
// single-character codes and joins every field with "|".
package serialize
