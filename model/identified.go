package model

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/c360studio/sbol3/vocabulary"
)

// ErrInvalidDisplayID indicates a display ID that is not an alphanumeric or
// underscore identifier, or that begins with a digit.
var ErrInvalidDisplayID = errors.New("invalid display id")

var displayIDPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateDisplayID checks the display ID shape. The empty string is valid:
// display IDs are optional.
func ValidateDisplayID(id string) error {
	if id == "" {
		return nil
	}
	if !displayIDPattern.MatchString(id) {
		return fmt.Errorf("%w: %q", ErrInvalidDisplayID, id)
	}
	return nil
}

// Identified is the base attribute set shared by every SBOL object. It
// carries the identity intermediates (display ID, name, description) and
// the provenance and measurement links.
//
// The derived-from and generated-by relations, taken as directed graphs
// over all Identified objects in a design, must each be acyclic: no object
// may reach itself along same-relation edges, directly or transitively.
// That is a design-graph invariant checked by document.CheckProvenance;
// this type only exposes the edges.
type Identified struct {
	displayID   string
	name        string
	description string
	derivedFrom []string
	generatedBy []string
	measures    []string
}

func newIdentified(displayID string) (Identified, error) {
	if err := ValidateDisplayID(displayID); err != nil {
		return Identified{}, err
	}
	return Identified{displayID: displayID}, nil
}

// DisplayID returns the display ID, or "" when unset.
func (i *Identified) DisplayID() string { return i.displayID }

// Name returns the human-readable name, or "" when unset.
func (i *Identified) Name() string { return i.name }

// SetName sets the human-readable name.
func (i *Identified) SetName(name string) { i.name = name }

// Description returns the text description, or "" when unset.
func (i *Identified) Description() string { return i.description }

// SetDescription sets the text description.
func (i *Identified) SetDescription(description string) { i.description = description }

// DerivedFrom returns the URIs of the resources this object was derived
// from (PROV-O wasDerivedFrom).
func (i *Identified) DerivedFrom() []string { return copyStrings(i.derivedFrom) }

// AddDerivedFrom records a derivation link. The URI must be absolute.
func (i *Identified) AddDerivedFrom(uri string) error {
	if err := vocabulary.ValidateURI(uri); err != nil {
		return err
	}
	i.derivedFrom = append(i.derivedFrom, uri)
	return nil
}

// GeneratedBy returns the URIs of the activities that generated this object
// (PROV-O wasGeneratedBy).
func (i *Identified) GeneratedBy() []string { return copyStrings(i.generatedBy) }

// AddGeneratedBy records a generating activity. The URI must be absolute.
func (i *Identified) AddGeneratedBy(uri string) error {
	if err := vocabulary.ValidateURI(uri); err != nil {
		return err
	}
	i.generatedBy = append(i.generatedBy, uri)
	return nil
}

// Measures returns the URIs of om:Measure objects describing measured
// parameters of this object.
func (i *Identified) Measures() []string { return copyStrings(i.measures) }

// AddMeasure records a measure link. The URI must be absolute.
func (i *Identified) AddMeasure(uri string) error {
	if err := vocabulary.ValidateURI(uri); err != nil {
		return err
	}
	i.measures = append(i.measures, uri)
	return nil
}

func copyStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
