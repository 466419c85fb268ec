// Package vocabulary provides the URI-valued ontology terms used to
// classify SBOL3 entities.
//
// Each term domain (entity type, topology, role, orientation, encoding) is
// a typed string whose value is the canonical absolute URI of the term.
// Built-in terms come from the SBOL3 specification tables (SBO, SO, CHEBI,
// GO, and EDAM ontologies); every domain also has an external escape
// constructor accepting any absolute URI.
//
// Term resolution is pure: built-in terms always carry a valid URI, and
// external terms are validated once at construction. Placement rules (which
// term may classify which entity) are enforced by the model package, not
// here.
//
// Import this package to auto-register the SBOL predicates:
//
//	import _ "github.com/c360studio/sbol3/vocabulary"
package vocabulary
