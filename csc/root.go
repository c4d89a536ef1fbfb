package csc

// Root is a semantic primitive anchoring a CSC record. Every CSC carries
// exactly one.
type Root string

// RootSetVersion gates the frozen size of the ROOT set. Spec §9 leaves the
// eventual set size open between 300 and 800; this release treats the
// documented minimum subset as the complete set and versions it so a future
// release can grow the vocabulary without silently changing the meaning of
// RootSetVersion 1 inputs.
const RootSetVersion = 1

const (
	RootMotion        Root = "MOTION"
	RootTransfer      Root = "TRANSFER"
	RootCommunication Root = "COMMUNICATION"
	RootCognition     Root = "COGNITION"
	RootPerception    Root = "PERCEPTION"
	RootCreation      Root = "CREATION"
	RootDestruction   Root = "DESTRUCTION"
	RootChange        Root = "CHANGE"
	RootPossession    Root = "POSSESSION"
	RootIntention     Root = "INTENTION"
	RootExistence     Root = "EXISTENCE"
)

// FallbackRoot is returned by the ROOT Mapper when a predicate cannot be
// resolved by dictionary lookup or disambiguation.
const FallbackRoot = RootExistence

// Roots lists every Root in RootSetVersion 1, in declaration order. Used by
// tests exercising P2 (finiteness) and by tooling that needs to enumerate
// the alphabet.
var Roots = []Root{
	RootMotion, RootTransfer, RootCommunication, RootCognition, RootPerception,
	RootCreation, RootDestruction, RootChange, RootPossession, RootIntention,
	RootExistence,
}

// Valid reports whether r is a member of RootSetVersion 1's closed set.
func (r Root) Valid() bool {
	switch r {
	case RootMotion, RootTransfer, RootCommunication, RootCognition, RootPerception,
		RootCreation, RootDestruction, RootChange, RootPossession, RootIntention,
		RootExistence:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (r Root) String() string {
	return string(r)
}
