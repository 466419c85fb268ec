// Package model defines the SBOL3 entity kinds: Identified, TopLevel,
// Sequence, Feature/SubComponent, and Component.
//
// Objects are assembled bottom-up: Sequences and sub-Components must exist
// before a containing Component references them. Local invariants (display
// ID shape, entity-type conflicts, topology placement, encoding presence)
// are checked eagerly on every constructor and mutating method. Graph-level
// invariants (composition acyclicity, provenance acyclicity, sequence
// mapping consistency) span multiple objects and are checked by the
// document package over an assembled design.
//
// Once attached to a published document a model object must be treated as
// immutable; edits create new versions rather than mutating shared objects.
// Published object graphs are safe for concurrent reads.
package model
