package vocabulary

// Orientation specifies how a Feature maps onto the elements of a Sequence.
// There are exactly two meanings — inline and reverse complement — each
// reachable through two synonym URIs: a Sequence Ontology term and an
// SBOL-namespace term. Downstream logic must compare meaning, not literal
// URI; use Equivalent or Canonical rather than ==.
type Orientation string

const (
	// OrientationInline maps the region directly onto the elements.
	OrientationInline Orientation = SONamespace + "0001030"

	// OrientationReverseComplement maps the region onto the reverse
	// complement of the elements. The exact nature of the mapping depends
	// on the Sequence encoding.
	OrientationReverseComplement Orientation = SONamespace + "0001031"

	// OrientationInlineAlt is the SBOL-namespace synonym for inline.
	OrientationInlineAlt Orientation = SBOL3Namespace + "inline"

	// OrientationReverseComplementAlt is the SBOL-namespace synonym for
	// reverse complement.
	OrientationReverseComplementAlt Orientation = SBOL3Namespace + "reverseComplement"
)

// ExternalOrientation wraps an arbitrary URI as an orientation term.
func ExternalOrientation(uri string) (Orientation, error) {
	if err := ValidateURI(uri); err != nil {
		return "", err
	}
	return Orientation(uri), nil
}

// URI returns the canonical URI of the term.
func (o Orientation) URI() string { return string(o) }

// String returns the canonical URI of the term.
func (o Orientation) String() string { return string(o) }

// Canonical maps the SBOL-namespace synonyms to their Sequence Ontology
// forms. Terms outside the closed domain are returned unchanged.
func (o Orientation) Canonical() Orientation {
	switch o {
	case OrientationInlineAlt:
		return OrientationInline
	case OrientationReverseComplementAlt:
		return OrientationReverseComplement
	}
	return o
}

// Equivalent reports whether two orientation terms carry the same meaning,
// treating each synonym pair as equal.
func (o Orientation) Equivalent(other Orientation) bool {
	return o.Canonical() == other.Canonical()
}

// IsReverseComplement reports whether the term means reverse complement,
// under either synonym URI.
func (o Orientation) IsReverseComplement() bool {
	return o.Canonical() == OrientationReverseComplement
}

// IsInline reports whether the term means inline, under either synonym URI.
func (o Orientation) IsInline() bool {
	return o.Canonical() == OrientationInline
}
