package vocabulary

import "github.com/c360studio/semstreams/vocabulary"

// Class IRIs for the SBOL3 entity kinds.
const (
	// ClassComponent is an SBOL3 Component.
	ClassComponent = SBOL3Namespace + "Component"

	// ClassSequence is an SBOL3 Sequence.
	ClassSequence = SBOL3Namespace + "Sequence"

	// ClassSubComponent is an SBOL3 SubComponent feature.
	ClassSubComponent = SBOL3Namespace + "SubComponent"

	// ClassRange is an SBOL3 Range location.
	ClassRange = SBOL3Namespace + "Range"
)

// Property IRIs shared by all Identified and TopLevel objects.
const (
	// PropDisplayID is the intermediate between URI and name.
	PropDisplayID = SBOL3Namespace + "displayId"

	// PropName is the human-readable name.
	PropName = SBOL3Namespace + "name"

	// PropDescription is the thorough text description.
	PropDescription = SBOL3Namespace + "description"

	// PropHasNamespace defines the namespace portion of an object's URI.
	PropHasNamespace = SBOL3Namespace + "hasNamespace"

	// PropHasAttachment links a TopLevel to Attachment objects.
	PropHasAttachment = SBOL3Namespace + "hasAttachment"

	// PropHasMeasure links an object to om:Measure objects.
	PropHasMeasure = SBOL3Namespace + "hasMeasure"

	// PropWasDerivedFrom is the PROV-O derivation link.
	PropWasDerivedFrom = ProvNamespace + "wasDerivedFrom"

	// PropWasGeneratedBy is the PROV-O generating-activity link.
	PropWasGeneratedBy = ProvNamespace + "wasGeneratedBy"
)

// Property IRIs for Component, Sequence, and Feature objects.
const (
	// PropType classifies a Component (entity type and topology terms).
	PropType = SBOL3Namespace + "type"

	// PropRole identifies terms consistent with the type property.
	PropRole = SBOL3Namespace + "role"

	// PropHasSequence links a Component to its Sequence objects.
	PropHasSequence = SBOL3Namespace + "hasSequence"

	// PropHasFeature links a Component to its Feature objects.
	PropHasFeature = SBOL3Namespace + "hasFeature"

	// PropHasConstraint links a Component to Constraint objects.
	PropHasConstraint = SBOL3Namespace + "hasConstraint"

	// PropHasInteraction links a Component to Interaction objects.
	PropHasInteraction = SBOL3Namespace + "hasInteraction"

	// PropHasInterface links a Component to its Interface object.
	PropHasInterface = SBOL3Namespace + "hasInterface"

	// PropHasModel links a Component to Model objects.
	PropHasModel = SBOL3Namespace + "hasModel"

	// PropElements is the character string of a Sequence.
	PropElements = SBOL3Namespace + "elements"

	// PropEncoding indicates how Sequence elements are interpreted.
	PropEncoding = SBOL3Namespace + "encoding"

	// PropInstanceOf links a SubComponent to the Component it instantiates.
	PropInstanceOf = SBOL3Namespace + "instanceOf"

	// PropOrientation orients a Feature on its Sequence.
	PropOrientation = SBOL3Namespace + "orientation"

	// PropHasLocation links a Feature to its Range.
	PropHasLocation = SBOL3Namespace + "hasLocation"

	// PropStart is the 1-based inclusive range start.
	PropStart = SBOL3Namespace + "start"

	// PropEnd is the 1-based inclusive range end.
	PropEnd = SBOL3Namespace + "end"
)

// Dotted predicate names for the semstreams registry. Internal code uses
// dotted notation; the registered IRI is used at RDF export boundaries.
const (
	// PredicateComponentType is the Component type classification.
	PredicateComponentType = "sbol.component.type"

	// PredicateComponentRole is the Component role classification.
	PredicateComponentRole = "sbol.component.role"

	// PredicateComponentSequence links a Component to a Sequence.
	PredicateComponentSequence = "sbol.component.has_sequence"

	// PredicateComponentFeature links a Component to a Feature.
	PredicateComponentFeature = "sbol.component.has_feature"

	// PredicateSequenceElements is the Sequence character string.
	PredicateSequenceElements = "sbol.sequence.elements"

	// PredicateSequenceEncoding is the Sequence encoding term.
	PredicateSequenceEncoding = "sbol.sequence.encoding"

	// PredicateFeatureInstanceOf links a SubComponent to its Component.
	PredicateFeatureInstanceOf = "sbol.feature.instance_of"

	// PredicateFeatureOrientation orients a Feature on its Sequence.
	PredicateFeatureOrientation = "sbol.feature.orientation"

	// PredicateDerivedFrom is the provenance derivation link.
	PredicateDerivedFrom = "sbol.identified.derived_from"

	// PredicateGeneratedBy is the provenance generation link.
	PredicateGeneratedBy = "sbol.identified.generated_by"
)

func init() {
	vocabulary.Register(PredicateComponentType,
		vocabulary.WithDescription("Category of biochemical or physical entity (SBO physical entity branch, plus SO topology terms for nucleic acids)"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropType))

	vocabulary.Register(PredicateComponentRole,
		vocabulary.WithDescription("Terms consistent with the component type: SO sequence features, GO molecular functions, CHEBI roles"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropRole))

	vocabulary.Register(PredicateComponentSequence,
		vocabulary.WithDescription("Primary structure of the component"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropHasSequence))

	vocabulary.Register(PredicateComponentFeature,
		vocabulary.WithDescription("Occurrence of a part or subsystem within the component; the feature graph must be acyclic"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropHasFeature))

	vocabulary.Register(PredicateSequenceElements,
		vocabulary.WithDescription("Constituent characters of a molecule; absent means not yet determined"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropElements))

	vocabulary.Register(PredicateSequenceEncoding,
		vocabulary.WithDescription("EDAM textual format term; required whenever elements is present"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropEncoding))

	vocabulary.Register(PredicateFeatureInstanceOf,
		vocabulary.WithDescription("Component a SubComponent instantiates"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropInstanceOf))

	vocabulary.Register(PredicateFeatureOrientation,
		vocabulary.WithDescription("Inline or reverse-complement mapping onto the sequence elements"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropOrientation))

	vocabulary.Register(PredicateDerivedFrom,
		vocabulary.WithDescription("Resources this object was derived from; must not form reference cycles"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropWasDerivedFrom))

	vocabulary.Register(PredicateGeneratedBy,
		vocabulary.WithDescription("Activities that generated this object; must not form reference cycles"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropWasGeneratedBy))
}
