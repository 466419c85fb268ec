package vocabulary

// EntityType classifies the category of biochemical or physical entity a
// Component represents. Built-in terms come from the physical entity
// representation branch of the Systems Biology Ontology (SBOL3 spec,
// section 6.4, table 2).
type EntityType string

const (
	// TypeDNA is a deoxyribonucleic acid entity.
	TypeDNA EntityType = SBONamespace + "0000251"

	// TypeRNA is a ribonucleic acid entity.
	TypeRNA EntityType = SBONamespace + "0000250"

	// TypeProtein is a polypeptide chain entity.
	TypeProtein EntityType = SBONamespace + "0000252"

	// TypeSimpleChemical is a simple chemical entity.
	TypeSimpleChemical EntityType = SBONamespace + "0000249"

	// TypeNonCovalentComplex is a non-covalent molecular complex.
	TypeNonCovalentComplex EntityType = SBONamespace + "0000253"

	// TypeFunctionalEntity is an abstract functional grouping.
	TypeFunctionalEntity EntityType = SBONamespace + "0000241"
)

// builtinEntityTypes enumerates the closed entity-type domain. The built-in
// categories are mutually exclusive: a Component may carry at most one.
var builtinEntityTypes = map[EntityType]bool{
	TypeDNA:                true,
	TypeRNA:                true,
	TypeProtein:            true,
	TypeSimpleChemical:     true,
	TypeNonCovalentComplex: true,
	TypeFunctionalEntity:   true,
}

// ExternalEntityType wraps an arbitrary ontology URI as an entity-type
// term. Returns ErrInvalidURI unless uri is a valid absolute URI.
func ExternalEntityType(uri string) (EntityType, error) {
	if err := ValidateURI(uri); err != nil {
		return "", err
	}
	return EntityType(uri), nil
}

// URI returns the canonical URI of the term.
func (t EntityType) URI() string { return string(t) }

// String returns the canonical URI of the term.
func (t EntityType) String() string { return string(t) }

// IsBuiltin reports whether the term is one of the closed SBO entity types.
func (t EntityType) IsBuiltin() bool { return builtinEntityTypes[t] }

// IsNucleicAcid reports whether the term is DNA or RNA. Topology and
// strandedness terms may only classify nucleic-acid components.
func (t EntityType) IsNucleicAcid() bool { return t == TypeDNA || t == TypeRNA }

// ConflictsWith reports whether two entity-type terms must not classify the
// same Component. Distinct built-in categories conflict (DNA vs Protein,
// DNA vs RNA, ...); external terms never conflict at the term level.
func (t EntityType) ConflictsWith(other EntityType) bool {
	return t != other && t.IsBuiltin() && other.IsBuiltin()
}

// Topology describes nucleic-acid topology (linear/circular) and
// strandedness (single/double). Terms come from the topology and strand
// attribute branches of the Sequence Ontology.
type Topology string

const (
	// TopologyLinear marks a linear nucleic-acid sequence.
	TopologyLinear Topology = SONamespace + "0000987"

	// TopologyCircular marks a circular sequence: the begin/end position is
	// arbitrary and features may span the junction.
	TopologyCircular Topology = SONamespace + "0000988"

	// TopologySingleStranded marks a single-stranded molecule.
	TopologySingleStranded Topology = SONamespace + "0000984"

	// TopologyDoubleStranded marks a double-stranded molecule: searches
	// apply to both the sequence and its reverse complement.
	TopologyDoubleStranded Topology = SONamespace + "0000985"
)

var builtinTopologies = map[Topology]bool{
	TopologyLinear:         true,
	TopologyCircular:       true,
	TopologySingleStranded: true,
	TopologyDoubleStranded: true,
}

// ExternalTopology wraps an arbitrary ontology URI as a topology term.
func ExternalTopology(uri string) (Topology, error) {
	if err := ValidateURI(uri); err != nil {
		return "", err
	}
	return Topology(uri), nil
}

// URI returns the canonical URI of the term.
func (t Topology) URI() string { return string(t) }

// String returns the canonical URI of the term.
func (t Topology) String() string { return string(t) }

// IsBuiltin reports whether the term is one of the closed SO topology terms.
func (t Topology) IsBuiltin() bool { return builtinTopologies[t] }

// Role identifies terms consistent with a Component's entity type: sequence
// feature terms (SO) for DNA/RNA, molecular function terms (GO) for
// proteins, and role terms (CHEBI) for small molecules. Roles may also be
// abstract ("inverter", "AND gate").
type Role string

const (
	// RolePromoter is a DNA promoter region.
	RolePromoter Role = SONamespace + "0000167"

	// RoleRBS is a ribosome binding site.
	RoleRBS Role = SONamespace + "0000139"

	// RoleCDS is a coding sequence.
	RoleCDS Role = SONamespace + "0000316"

	// RoleTerminator is a transcription terminator.
	RoleTerminator Role = SONamespace + "0000141"

	// RoleGene is a gene region.
	RoleGene Role = SONamespace + "0000704"

	// RoleOperator is an operator site.
	RoleOperator Role = SONamespace + "0000057"

	// RoleEngineeredRegion is an engineered DNA region.
	RoleEngineeredRegion Role = SONamespace + "0000804"

	// RoleMessengerRNA is an mRNA region.
	RoleMessengerRNA Role = SONamespace + "0000234"

	// RoleEffector is a small-molecule effector.
	RoleEffector Role = CHEBINamespace + "35224"

	// RoleTranscriptionFactor is a DNA-binding transcription factor.
	RoleTranscriptionFactor Role = GONamespace + "0003700"
)

// ExternalRole wraps an arbitrary ontology URI as a role term.
func ExternalRole(uri string) (Role, error) {
	if err := ValidateURI(uri); err != nil {
		return "", err
	}
	return Role(uri), nil
}

// URI returns the canonical URI of the term.
func (r Role) URI() string { return string(r) }

// String returns the canonical URI of the term.
func (r Role) String() string { return string(r) }
