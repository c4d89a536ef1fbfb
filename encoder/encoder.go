package encoder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/c360/ptil/csc"
	"github.com/c360/ptil/cscassembler"
	"github.com/c360/ptil/lingua"
	"github.com/c360/ptil/metadetect"
	"github.com/c360/ptil/metric"
	"github.com/c360/ptil/opsextract"
	"github.com/c360/ptil/ptilerr"
	"github.com/c360/ptil/rolesbind"
	"github.com/c360/ptil/rootmap"
	"github.com/c360/ptil/serialize"
)

// Encoder is the end-to-end C1-C7 facade for one language.
type Encoder struct {
	language       string
	analyzer       lingua.Analyzer
	metrics        *metric.Metrics
	diagnosticSink func(Diagnostic)
}

// New constructs an Encoder for language, defaulting to an unpooled
// lingua.RuleParser. Construction never fails on an unrecognized language
// code — lingua.NewRuleParser falls back to "en", per spec §6's "one
// parser per supported language" contract, which names a closed set of
// language codes but does not require rejecting others outright; callers
// who need hard validation should check the code against their own
// supported-language list before calling New.
func New(language string, opts ...Option) (*Encoder, error) {
	if language == "" {
		return nil, ptilerr.WrapInvalid(ptilerr.ErrUnsupportedLanguage, "encoder", "New", "language must be non-empty")
	}

	e := &Encoder{
		language: language,
		analyzer: lingua.NewRuleParser(language),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.analyzer == nil {
		return nil, ptilerr.WrapParserUnavailable(ptilerr.ErrNilAnalyzer, "encoder", "New", "resolved analyzer is nil")
	}
	return e, nil
}

// Language reports the language code this Encoder was constructed for.
func (e *Encoder) Language() string { return e.language }

// Encode runs C1-C6 on text and returns the ordered CSC list plus every
// Diagnostic recorded along the way. Per spec §7's propagation policy,
// Encode never fails on malformed or low-information input — an empty
// string returns (nil, nil, nil); a sentence with no identifiable
// predicate returns an empty (not nil-erroring) CSC list.
func (e *Encoder) Encode(ctx context.Context, text string) ([]csc.CSC, []Diagnostic, error) {
	correlationID := uuid.NewString()
	start := time.Now()
	outcome := "ok"
	defer func() {
		if e.metrics != nil {
			e.metrics.RecordEncode(e.language, outcome, time.Since(start))
		}
	}()

	if text == "" {
		return nil, nil, nil
	}

	analysis, err := e.analyzer.Analyze(ctx, text)
	if err != nil {
		outcome = "degraded"
		diag := degraded("lingua", fmt.Sprintf("[%s] analyzer error, returning empty CSC list: %v", correlationID, err))
		e.emit(diag)
		return nil, []Diagnostic{diag}, nil
	}

	if len(analysis.Predicates) == 0 {
		return nil, nil, nil
	}

	meta, hasMeta := metadetect.Detect(analysis)

	assemblies := make([]cscassembler.PredicateAssembly, len(analysis.Predicates))
	perPredicateDiags := make([][]Diagnostic, len(analysis.Predicates))

	group, _ := errgroup.WithContext(ctx)
	for i, predIdx := range analysis.Predicates {
		i, predIdx := i, predIdx
		group.Go(func() error {
			assembly, diags := e.analyzePredicate(analysis, predIdx)
			assemblies[i] = assembly
			perPredicateDiags[i] = diags
			return nil
		})
	}
	_ = group.Wait() // analyzePredicate never returns an error; nothing to propagate.

	var metaPtr *csc.Meta
	if hasMeta {
		metaPtr = &meta
	}

	cscs, assembleDiags := cscassembler.AssembleAll(assemblies, metaPtr)

	var diagnostics []Diagnostic
	for _, ds := range perPredicateDiags {
		for _, d := range ds {
			diagnostics = append(diagnostics, d)
			e.emit(d)
		}
	}
	for _, d := range assembleDiags {
		diag := degraded("cscassembler", fmt.Sprintf("[%s] %s: %s", correlationID, d.Component, d.Message))
		diagnostics = append(diagnostics, diag)
		e.emit(diag)
	}
	if len(diagnostics) > 0 {
		outcome = "degraded"
	}
	if e.metrics != nil {
		e.metrics.RecordCSCsEmitted(len(cscs))
		for _, d := range diagnostics {
			e.metrics.RecordDegradation(d.Component)
		}
	}

	return cscs, diagnostics, nil
}

// analyzePredicate runs C2-C4 for a single predicate token index. It never
// returns an error: an unknown lemma recovers to rootmap's documented
// fallback (spec §7's InternalDegradation) rather than aborting the
// sentence's other predicates.
func (e *Encoder) analyzePredicate(a lingua.Analysis, predIdx int) (cscassembler.PredicateAssembly, []Diagnostic) {
	var diags []Diagnostic

	lemma := lingua.Lemma(e.language, a.Tokens[predIdx])
	if !rootmap.IsKnown(lemma) {
		diags = append(diags, degraded("rootmap", fmt.Sprintf("unmapped predicate %q, falling back by POS", lemma)))
	}

	root := rootmap.Map(lemma, rootmap.PredicateContext{
		POS:             a.POS[predIdx],
		HasDirectObject: hasDirectObject(a, predIdx),
	})

	ops := opsextract.Extract(a, predIdx)
	roles := rolesbind.Bind(a, predIdx, root, e.language)

	return cscassembler.PredicateAssembly{Root: root, Ops: ops, Roles: roles}, diags
}

func hasDirectObject(a lingua.Analysis, predIdx int) bool {
	for _, arc := range a.OutgoingEdges(predIdx) {
		if arc.Relation == "dobj" {
			return true
		}
	}
	return false
}

func (e *Encoder) emit(d Diagnostic) {
	if e.diagnosticSink != nil {
		e.diagnosticSink(d)
	}
}

// EncodeAndSerialize runs Encode and renders every resulting CSC in
// format, joined in predicate occurrence order. An unsupported format
// name is InvalidInput and is the only error this method returns.
func (e *Encoder) EncodeAndSerialize(ctx context.Context, text string, format serialize.Format) (string, error) {
	cscs, _, err := e.Encode(ctx, text)
	if err != nil {
		return "", err
	}
	return serialize.All(cscs, format)
}
