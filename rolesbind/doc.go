// Package rolesbind is the ROLES Binder (C4): it turns a predicate's
// dependency arcs into the Role→Entity mapping spec §4.4 defines —
// subject, object, and prepositional-complement rules, filtered against
// the ROOT's admissible role set and resolved leftmost-wins on collision.
package rolesbind
