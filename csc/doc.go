// Package csc defines the Compressed Semantic Code data model: the four
// closed enumerations (ROOT, Operator, Role, META) a CSC record is built
// from, the Entity value roles are bound to, the CSC record itself, and the
// ROOT×ROLE compatibility matrix every assembled CSC must satisfy.
//
// Every enumeration here is a closed string-backed type with a Valid()
// method, never an open string: a CSC that fails to round-trip through Valid() is a
// bug in the component that produced it, not a configuration error. The
// enumerations, the canonical role order, and the compatibility matrix are
// package-level immutable values, built once and never mutated, so the
// whole package is safe to share across concurrently encoding goroutines.
package csc
