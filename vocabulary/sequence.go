package vocabulary

// Encoding indicates how the elements of a Sequence are formed and
// interpreted. Built-in terms come from the textual format branch of the
// EDAM ontology (SBOL3 spec, section 6.3, table 1).
type Encoding string

const (
	// EncodingNucleicAcid is the IUPAC DNA/RNA single-letter alphabet.
	EncodingNucleicAcid Encoding = EDAMNamespace + "format_1207"

	// EncodingProtein is the IUPAC amino acid single-letter alphabet.
	EncodingProtein Encoding = EDAMNamespace + "format_1208"

	// EncodingInChI is the IUPAC International Chemical Identifier.
	EncodingInChI Encoding = EDAMNamespace + "format_1197"

	// EncodingSMILES encodes the atoms and bonds of a small molecule.
	EncodingSMILES Encoding = EDAMNamespace + "format_1196"
)

var builtinEncodings = map[Encoding]bool{
	EncodingNucleicAcid: true,
	EncodingProtein:     true,
	EncodingInChI:       true,
	EncodingSMILES:      true,
}

// ExternalEncoding wraps an arbitrary ontology URI as an encoding term.
func ExternalEncoding(uri string) (Encoding, error) {
	if err := ValidateURI(uri); err != nil {
		return "", err
	}
	return Encoding(uri), nil
}

// URI returns the canonical URI of the term.
func (e Encoding) URI() string { return string(e) }

// String returns the canonical URI of the term.
func (e Encoding) String() string { return string(e) }

// IsBuiltin reports whether the term is one of the closed EDAM encodings.
func (e Encoding) IsBuiltin() bool { return builtinEncodings[e] }

// IsNucleicAcid reports whether the encoding is the IUPAC DNA/RNA alphabet.
// Reverse-complement mappings are only meaningful for this encoding.
func (e Encoding) IsNucleicAcid() bool { return e == EncodingNucleicAcid }
