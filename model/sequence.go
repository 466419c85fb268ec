package model

import (
	"errors"
	"strings"

	"github.com/c360studio/sbol3/vocabulary"
)

// ErrMissingEncoding indicates elements were supplied without an encoding.
// The encoding is required whenever elements are present.
var ErrMissingEncoding = errors.New("sequence elements require an encoding")

// Sequence represents the primary structure of a Component and the manner
// in which it is encoded. The elements characters may stand for nucleotide
// bases, amino acid residues, or the atoms and bonds of a small molecule.
//
// Absent elements mean the particulars of the sequence have not yet been
// determined — distinct from an empty string. Alphabet conformance with the
// declared encoding is advisory and never enforced: SMILES and InChI use
// alphabets disjoint from the IUPAC ones and the model does not special-case
// them.
type Sequence struct {
	TopLevel
	elements *string
	encoding vocabulary.Encoding
}

// NewSequence creates a Sequence with unspecified elements.
func NewSequence(namespace, displayID string) (*Sequence, error) {
	base, err := newTopLevel(namespace, displayID)
	if err != nil {
		return nil, err
	}
	return &Sequence{TopLevel: base}, nil
}

// SetElements sets the character string and its encoding. The encoding must
// be non-empty: "unspecified" is expressed by never calling SetElements.
func (s *Sequence) SetElements(elements string, encoding vocabulary.Encoding) error {
	if encoding == "" {
		return ErrMissingEncoding
	}
	s.elements = &elements
	s.encoding = encoding
	return nil
}

// Elements returns the character string and whether it has been specified.
// An empty string with ok=true is a deliberately empty sequence.
func (s *Sequence) Elements() (string, bool) {
	if s.elements == nil {
		return "", false
	}
	return *s.elements, true
}

// Encoding returns the encoding term and whether one has been set.
func (s *Sequence) Encoding() (vocabulary.Encoding, bool) {
	return s.encoding, s.encoding != ""
}

// nucleotide complements for the IUPAC DNA/RNA alphabet, including
// ambiguity codes. U complements to A; characters outside the alphabet are
// passed through unchanged.
var complements = map[rune]rune{
	'A': 'T', 'T': 'A', 'U': 'A', 'G': 'C', 'C': 'G',
	'R': 'Y', 'Y': 'R', 'S': 'S', 'W': 'W', 'K': 'M', 'M': 'K',
	'B': 'V', 'V': 'B', 'D': 'H', 'H': 'D', 'N': 'N',
	'a': 't', 't': 'a', 'u': 'a', 'g': 'c', 'c': 'g',
	'r': 'y', 'y': 'r', 's': 's', 'w': 'w', 'k': 'm', 'm': 'k',
	'b': 'v', 'v': 'b', 'd': 'h', 'h': 'd', 'n': 'n',
}

// ReverseComplement returns the reverse complement of a nucleic-acid
// element string under the IUPAC alphabet. Case is preserved.
func ReverseComplement(elements string) string {
	runes := []rune(elements)
	var sb strings.Builder
	sb.Grow(len(runes))
	for i := len(runes) - 1; i >= 0; i-- {
		if c, ok := complements[runes[i]]; ok {
			sb.WriteRune(c)
		} else {
			sb.WriteRune(runes[i])
		}
	}
	return sb.String()
}
