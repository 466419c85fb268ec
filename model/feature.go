package model

import (
	"errors"
	"fmt"

	"github.com/c360studio/sbol3/vocabulary"
)

// Feature is an occurrence of a part, subsystem, or other notable aspect
// within a design. Features compose Components into a structural or
// functional hierarchy; the relation between Features and Components must
// be strictly acyclic (checked by document.CheckComposition).
type Feature interface {
	// Roles describes the purpose of the occurrence in the context of its
	// parent Component. May be empty.
	Roles() []vocabulary.Role

	// Orientations orients the occurrence on its parent's elements. May be
	// empty.
	Orientations() []vocabulary.Orientation
}

// ErrNilReference indicates a feature was built without the Component it
// instantiates.
var ErrNilReference = errors.New("subcomponent requires a component to instantiate")

// ErrInvalidRange indicates a Range with a start below 1 or an end before
// the start.
var ErrInvalidRange = errors.New("invalid range")

// Location positions a Feature on a Sequence: a 1-based inclusive character
// range plus an orientation deciding forward or reverse-complement mapping.
type Location struct {
	sequence    *Sequence
	start, end  int
	orientation vocabulary.Orientation
}

// NewLocation creates a Location on seq covering [start, end], 1-based
// inclusive.
func NewLocation(seq *Sequence, start, end int, orientation vocabulary.Orientation) (*Location, error) {
	if seq == nil {
		return nil, fmt.Errorf("%w: nil sequence", ErrInvalidRange)
	}
	if start < 1 || end < start {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, start, end)
	}
	return &Location{sequence: seq, start: start, end: end, orientation: orientation}, nil
}

// Sequence returns the Sequence this location addresses.
func (l *Location) Sequence() *Sequence { return l.sequence }

// Start returns the 1-based inclusive range start.
func (l *Location) Start() int { return l.start }

// End returns the 1-based inclusive range end.
func (l *Location) End() int { return l.end }

// Orientation returns the declared orientation term.
func (l *Location) Orientation() vocabulary.Orientation { return l.orientation }

// Slice maps the location onto elements: the substring at [start, end],
// reverse-complemented when the orientation means reverse complement.
// Positions count characters, not bytes; alphabet conformance is advisory,
// so elements may contain multi-byte characters. Fails when the range
// exceeds the elements.
func (l *Location) Slice(elements string) (string, error) {
	runes := []rune(elements)
	if l.end > len(runes) {
		return "", fmt.Errorf("%w: [%d, %d] exceeds %d elements", ErrInvalidRange, l.start, l.end, len(runes))
	}
	region := string(runes[l.start-1 : l.end])
	if l.orientation.IsReverseComplement() {
		return ReverseComplement(region), nil
	}
	return region, nil
}

// SubComponent is the Feature subclass used to specify structural
// hierarchy: the occurrence of one Component inside another. A gene
// Component might contain four SubComponents — promoter, RBS, CDS,
// terminator — each linked to the Component providing the full definition.
type SubComponent struct {
	Identified
	instanceOf   *Component
	roles        []vocabulary.Role
	orientations []vocabulary.Orientation
	location     *Location
}

// NewSubComponent creates an occurrence of instanceOf.
func NewSubComponent(displayID string, instanceOf *Component) (*SubComponent, error) {
	if instanceOf == nil {
		return nil, ErrNilReference
	}
	base, err := newIdentified(displayID)
	if err != nil {
		return nil, err
	}
	return &SubComponent{Identified: base, instanceOf: instanceOf}, nil
}

// InstanceOf returns the Component this SubComponent instantiates.
func (s *SubComponent) InstanceOf() *Component { return s.instanceOf }

// Roles returns the SubComponent's own role terms. May be empty; see
// RoleIntegration for the effective roles.
func (s *SubComponent) Roles() []vocabulary.Role {
	out := make([]vocabulary.Role, len(s.roles))
	copy(out, s.roles)
	return out
}

// AddRole declares a role for this occurrence.
func (s *SubComponent) AddRole(role vocabulary.Role) {
	s.roles = append(s.roles, role)
}

// Orientations returns the declared orientation terms.
func (s *SubComponent) Orientations() []vocabulary.Orientation {
	out := make([]vocabulary.Orientation, len(s.orientations))
	copy(out, s.orientations)
	return out
}

// AddOrientation declares an orientation for this occurrence.
func (s *SubComponent) AddOrientation(o vocabulary.Orientation) {
	s.orientations = append(s.orientations, o)
}

// Location returns where this occurrence maps onto a Sequence, or nil when
// unpositioned.
func (s *SubComponent) Location() *Location { return s.location }

// SetLocation positions this occurrence on a Sequence.
func (s *SubComponent) SetLocation(loc *Location) { s.location = loc }

// RoleIntegration reconciles the SubComponent's own roles with the roles of
// the instantiated Component: the own role set wins when nonempty,
// otherwise the roles are inherited from the referenced Component.
func (s *SubComponent) RoleIntegration() []vocabulary.Role {
	if len(s.roles) > 0 {
		return s.Roles()
	}
	return s.instanceOf.Roles()
}
