package csc

// Operator is a symbol modifying a CSC's ROOT: tense, aspect, polarity,
// modality, causation, or direction. OPS is an ordered sequence of
// Operators, not a set — order is significant (spec §3, §4.3) and two
// sequences differing only in order must serialize differently.
type Operator string

// OperatorCategory groups operators for OPS Extractor tie-breaking: when two
// cues land on the same token index, emission follows fixed category
// priority (polarity, modality, aspect, temporal), per spec §4.3. Causation
// and direction are not part of that tie-break list in the spec text; they
// are appended after the four named categories at the same index, in
// declaration order, to keep Operator a fully covered (not partial) sum
// type without inventing an explicit priority the spec never assigns them.
type OperatorCategory int

const (
	CategoryPolarity OperatorCategory = iota
	CategoryModality
	CategoryAspect
	CategoryTemporal
	CategoryCausation
	CategoryDirection
)

const (
	// Temporal
	OpPast    Operator = "PAST"
	OpPresent Operator = "PRESENT"
	OpFuture  Operator = "FUTURE"

	// Aspect
	OpContinuous Operator = "CONTINUOUS"
	OpCompleted  Operator = "COMPLETED"
	OpHabitual   Operator = "HABITUAL"

	// Polarity
	OpNegation    Operator = "NEGATION"
	OpAffirmation Operator = "AFFIRMATION"

	// Modality
	OpPossible   Operator = "POSSIBLE"
	OpNecessary  Operator = "NECESSARY"
	OpObligatory Operator = "OBLIGATORY"
	OpPermitted  Operator = "PERMITTED"

	// Causation
	OpCausative     Operator = "CAUSATIVE"
	OpSelfInitiated Operator = "SELF_INITIATED"
	OpForced        Operator = "FORCED"

	// Direction
	OpDirectionIn  Operator = "DIRECTION_IN"
	OpDirectionOut Operator = "DIRECTION_OUT"
	OpToward       Operator = "TOWARD"
	OpAway         Operator = "AWAY"
)

// operatorCategories maps every Operator to its OperatorCategory for the
// OPS Extractor's same-index tie-break rule.
var operatorCategories = map[Operator]OperatorCategory{
	OpPast: CategoryTemporal, OpPresent: CategoryTemporal, OpFuture: CategoryTemporal,

	OpContinuous: CategoryAspect, OpCompleted: CategoryAspect, OpHabitual: CategoryAspect,

	OpNegation: CategoryPolarity, OpAffirmation: CategoryPolarity,

	OpPossible: CategoryModality, OpNecessary: CategoryModality,
	OpObligatory: CategoryModality, OpPermitted: CategoryModality,

	OpCausative: CategoryCausation, OpSelfInitiated: CategoryCausation, OpForced: CategoryCausation,

	OpDirectionIn: CategoryDirection, OpDirectionOut: CategoryDirection,
	OpToward: CategoryDirection, OpAway: CategoryDirection,
}

// Category returns op's OperatorCategory and whether op is a known operator.
func (op Operator) Category() (OperatorCategory, bool) {
	cat, ok := operatorCategories[op]
	return cat, ok
}

// Valid reports whether op is a member of the closed operator set.
func (op Operator) Valid() bool {
	_, ok := operatorCategories[op]
	return ok
}

// String implements fmt.Stringer.
func (op Operator) String() string {
	return string(op)
}
