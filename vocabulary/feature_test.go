package vocabulary_test

import (
	"testing"

	"github.com/c360studio/sbol3/vocabulary"
)

func TestOrientationURIs(t *testing.T) {
	tests := []struct {
		name string
		term vocabulary.Orientation
		uri  string
	}{
		{"Inline", vocabulary.OrientationInline, "https://identifiers.org/SO:0001030"},
		{"ReverseComplement", vocabulary.OrientationReverseComplement, "https://identifiers.org/SO:0001031"},
		{"InlineAlt", vocabulary.OrientationInlineAlt, "https://sbols.org/v3#inline"},
		{"ReverseComplementAlt", vocabulary.OrientationReverseComplementAlt, "https://sbols.org/v3#reverseComplement"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.term.URI() != tc.uri {
				t.Errorf("got %q, want %q", tc.term.URI(), tc.uri)
			}
		})
	}
}

func TestOrientationEquivalence(t *testing.T) {
	tests := []struct {
		name       string
		a, b       vocabulary.Orientation
		equivalent bool
	}{
		{"inline synonyms", vocabulary.OrientationInline, vocabulary.OrientationInlineAlt, true},
		{"reverse synonyms", vocabulary.OrientationReverseComplement, vocabulary.OrientationReverseComplementAlt, true},
		{"inline vs reverse", vocabulary.OrientationInline, vocabulary.OrientationReverseComplement, false},
		{"alt inline vs alt reverse", vocabulary.OrientationInlineAlt, vocabulary.OrientationReverseComplementAlt, false},
		{"same literal", vocabulary.OrientationInline, vocabulary.OrientationInline, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Equivalent(tc.b); got != tc.equivalent {
				t.Errorf("Equivalent = %v, want %v", got, tc.equivalent)
			}
		})
	}
}

func TestOrientationMeaning(t *testing.T) {
	if !vocabulary.OrientationInline.IsInline() || !vocabulary.OrientationInlineAlt.IsInline() {
		t.Error("both inline synonyms must report IsInline")
	}
	if !vocabulary.OrientationReverseComplement.IsReverseComplement() ||
		!vocabulary.OrientationReverseComplementAlt.IsReverseComplement() {
		t.Error("both reverse-complement synonyms must report IsReverseComplement")
	}
	if vocabulary.OrientationInline.IsReverseComplement() {
		t.Error("inline must not report IsReverseComplement")
	}
	if got := vocabulary.OrientationInlineAlt.Canonical(); got != vocabulary.OrientationInline {
		t.Errorf("Canonical = %q, want the SO inline term", got)
	}
}
