package lingua

import "context"

// Analyzer is the capability interface C1 exposes to the rest of the
// pipeline: given text, it returns the Analysis structure defined in
// spec §3. Implementations are free to choose any parsing strategy; the
// only contract is determinism — the same text must always yield the same
// Analysis (P3).
type Analyzer interface {
	Analyze(ctx context.Context, text string) (Analysis, error)
}
