package manifest

import (
	"github.com/c360studio/sbol3/vocabulary"
)

// Friendly-name tables for vocabulary terms. Anything not listed must be a
// full absolute URI and goes through the external-term constructors, which
// validate it.

var entityTypeNames = map[string]vocabulary.EntityType{
	"dna":                  vocabulary.TypeDNA,
	"rna":                  vocabulary.TypeRNA,
	"protein":              vocabulary.TypeProtein,
	"simple-chemical":      vocabulary.TypeSimpleChemical,
	"non-covalent-complex": vocabulary.TypeNonCovalentComplex,
	"functional-entity":    vocabulary.TypeFunctionalEntity,
}

var topologyNames = map[string]vocabulary.Topology{
	"linear":          vocabulary.TopologyLinear,
	"circular":        vocabulary.TopologyCircular,
	"single-stranded": vocabulary.TopologySingleStranded,
	"double-stranded": vocabulary.TopologyDoubleStranded,
}

var roleNames = map[string]vocabulary.Role{
	"promoter":             vocabulary.RolePromoter,
	"rbs":                  vocabulary.RoleRBS,
	"cds":                  vocabulary.RoleCDS,
	"terminator":           vocabulary.RoleTerminator,
	"gene":                 vocabulary.RoleGene,
	"operator":             vocabulary.RoleOperator,
	"engineered-region":    vocabulary.RoleEngineeredRegion,
	"mrna":                 vocabulary.RoleMessengerRNA,
	"effector":             vocabulary.RoleEffector,
	"transcription-factor": vocabulary.RoleTranscriptionFactor,
}

var orientationNames = map[string]vocabulary.Orientation{
	"inline":             vocabulary.OrientationInline,
	"reverse-complement": vocabulary.OrientationReverseComplement,
}

var encodingNames = map[string]vocabulary.Encoding{
	"nucleic-acid": vocabulary.EncodingNucleicAcid,
	"protein":      vocabulary.EncodingProtein,
	"inchi":        vocabulary.EncodingInChI,
	"smiles":       vocabulary.EncodingSMILES,
}

func resolveEntityType(name string) (vocabulary.EntityType, error) {
	if t, ok := entityTypeNames[name]; ok {
		return t, nil
	}
	return vocabulary.ExternalEntityType(name)
}

func resolveTopology(name string) (vocabulary.Topology, error) {
	if t, ok := topologyNames[name]; ok {
		return t, nil
	}
	return vocabulary.ExternalTopology(name)
}

func resolveRole(name string) (vocabulary.Role, error) {
	if r, ok := roleNames[name]; ok {
		return r, nil
	}
	return vocabulary.ExternalRole(name)
}

func resolveOrientation(name string) (vocabulary.Orientation, error) {
	if o, ok := orientationNames[name]; ok {
		return o, nil
	}
	return vocabulary.ExternalOrientation(name)
}

func resolveEncoding(name string) (vocabulary.Encoding, error) {
	if e, ok := encodingNames[name]; ok {
		return e, nil
	}
	return vocabulary.ExternalEncoding(name)
}
