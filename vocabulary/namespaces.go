package vocabulary

// Ontology namespace prefixes. Built-in terms are formed by appending a
// per-term suffix to one of these.
const (
	// SBONamespace is the Systems Biology Ontology prefix (entity types).
	SBONamespace = "https://identifiers.org/SBO:"

	// SONamespace is the Sequence Ontology prefix (topology, roles,
	// orientation).
	SONamespace = "https://identifiers.org/SO:"

	// CHEBINamespace is the Chemical Entities of Biological Interest prefix.
	CHEBINamespace = "https://identifiers.org/CHEBI:"

	// GONamespace is the Gene Ontology prefix.
	GONamespace = "https://identifiers.org/GO:"

	// EDAMNamespace is the EDAM ontology prefix (sequence encodings).
	EDAMNamespace = "https://identifiers.org/edam:"

	// SBOL3Namespace is the SBOL version 3 vocabulary namespace.
	SBOL3Namespace = "https://sbols.org/v3#"

	// ProvNamespace is the W3C PROV-O namespace (provenance links).
	ProvNamespace = "http://www.w3.org/ns/prov#"

	// OMNamespace is the Ontology of Units of Measure namespace (measures).
	OMNamespace = "http://www.ontology-of-units-of-measure.org/resource/om-2/"
)
