package model_test

import (
	"errors"
	"testing"

	"github.com/c360studio/sbol3/model"
	"github.com/c360studio/sbol3/vocabulary"
)

const ns = "https://example.org/designs"

func TestSequenceElementsUnspecified(t *testing.T) {
	seq, err := model.NewSequence(ns, "seq1")
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := seq.Elements(); ok {
		t.Error("fresh sequence must report unspecified elements")
	}
	if _, ok := seq.Encoding(); ok {
		t.Error("fresh sequence must report no encoding")
	}
}

func TestSequenceSetElements(t *testing.T) {
	seq, err := model.NewSequence(ns, "seq1")
	if err != nil {
		t.Fatal(err)
	}

	if err := seq.SetElements("gattaca", vocabulary.EncodingNucleicAcid); err != nil {
		t.Fatalf("SetElements failed: %v", err)
	}

	elements, ok := seq.Elements()
	if !ok || elements != "gattaca" {
		t.Errorf("Elements = %q, %v", elements, ok)
	}
	enc, ok := seq.Encoding()
	if !ok || enc != vocabulary.EncodingNucleicAcid {
		t.Errorf("Encoding = %q, %v", enc, ok)
	}
}

func TestSequenceEncodingRequired(t *testing.T) {
	seq, err := model.NewSequence(ns, "seq1")
	if err != nil {
		t.Fatal(err)
	}

	if err := seq.SetElements("gattaca", ""); !errors.Is(err, model.ErrMissingEncoding) {
		t.Errorf("got %v, want ErrMissingEncoding", err)
	}
	if _, ok := seq.Elements(); ok {
		t.Error("failed SetElements must not leave a partially set sequence")
	}
}

func TestSequenceEmptyElementsAreSpecified(t *testing.T) {
	seq, err := model.NewSequence(ns, "seq1")
	if err != nil {
		t.Fatal(err)
	}

	// An empty string is a deliberately empty sequence, not "unspecified".
	if err := seq.SetElements("", vocabulary.EncodingNucleicAcid); err != nil {
		t.Fatal(err)
	}
	elements, ok := seq.Elements()
	if !ok || elements != "" {
		t.Errorf("Elements = %q, %v; want specified empty string", elements, ok)
	}
}

func TestReverseComplement(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "gatta", "taatc"},
		{"gattaca", "gattaca", "tgtaatc"},
		{"uppercase", "GATTACA", "TGTAATC"},
		{"rna uracil maps to dna alphabet", "gauu", "aatc"},
		{"ambiguity codes", "acgtrykm", "kmryacgt"},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := model.ReverseComplement(tc.in); got != tc.want {
				t.Errorf("ReverseComplement(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
