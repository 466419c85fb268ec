package model

import (
	"errors"
	"fmt"

	"github.com/c360studio/sbol3/vocabulary"
)

// ErrNoEntityType indicates a Component built without any entity-type term.
var ErrNoEntityType = errors.New("component requires at least one entity type")

// ErrTypeConflict indicates mutually exclusive entity-type terms on one
// Component, such as DNA together with Protein.
var ErrTypeConflict = errors.New("conflicting entity types")

// ErrInvalidTopologyPlacement indicates a topology or strandedness term on
// a Component that carries no nucleic-acid entity type.
var ErrInvalidTopologyPlacement = errors.New("topology term on non-nucleic-acid component")

// Component represents a structural and/or functional entity of a
// biological design: a designed DNA, RNA, or protein sequence, a simple
// chemical, a molecular complex, a strain, or an abstract functional
// grouping of other entities.
//
// Sequences, features, and constraints carry the structural information;
// interactions, interfaces, and models carry the functional information.
type Component struct {
	TopLevel
	types        []vocabulary.EntityType
	topologies   []vocabulary.Topology
	roles        []vocabulary.Role
	sequences    []*Sequence
	features     []Feature
	constraints  []string
	interactions []string
	interfaces   []string
	models       []string
}

// NewComponent creates a Component classified by one or more entity-type
// terms. At least one term is required; distinct built-in categories must
// not co-occur.
func NewComponent(namespace, displayID string, types ...vocabulary.EntityType) (*Component, error) {
	if len(types) == 0 {
		return nil, ErrNoEntityType
	}
	base, err := newTopLevel(namespace, displayID)
	if err != nil {
		return nil, err
	}
	c := &Component{TopLevel: base}
	for _, t := range types {
		if err := c.AddType(t); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Types returns the entity-type terms.
func (c *Component) Types() []vocabulary.EntityType {
	out := make([]vocabulary.EntityType, len(c.types))
	copy(out, c.types)
	return out
}

// AddType adds an entity-type term, rejecting terms that conflict with one
// already declared.
func (c *Component) AddType(t vocabulary.EntityType) error {
	for _, existing := range c.types {
		if existing == t {
			return nil
		}
		if existing.ConflictsWith(t) {
			return fmt.Errorf("%w: %s vs %s", ErrTypeConflict, existing, t)
		}
	}
	c.types = append(c.types, t)
	return nil
}

// IsNucleicAcid reports whether any declared entity type is DNA or RNA.
func (c *Component) IsNucleicAcid() bool {
	for _, t := range c.types {
		if t.IsNucleicAcid() {
			return true
		}
	}
	return false
}

// Topologies returns the topology and strandedness terms.
func (c *Component) Topologies() []vocabulary.Topology {
	out := make([]vocabulary.Topology, len(c.topologies))
	copy(out, c.topologies)
	return out
}

// AddTopology adds a topology or strandedness term. Such terms may only
// classify components carrying a DNA or RNA entity type.
func (c *Component) AddTopology(t vocabulary.Topology) error {
	if !c.IsNucleicAcid() {
		return fmt.Errorf("%w: %s", ErrInvalidTopologyPlacement, t)
	}
	c.topologies = append(c.topologies, t)
	return nil
}

// Type returns the full type property for serialization: the entity-type
// URIs followed by any topology URIs, all in one set.
func (c *Component) Type() []string {
	out := make([]string, 0, len(c.types)+len(c.topologies))
	for _, t := range c.types {
		out = append(out, t.URI())
	}
	for _, t := range c.topologies {
		out = append(out, t.URI())
	}
	return out
}

// Roles returns the role terms.
func (c *Component) Roles() []vocabulary.Role {
	out := make([]vocabulary.Role, len(c.roles))
	copy(out, c.roles)
	return out
}

// AddRole declares a role term. Role/type consistency is advisory; the
// model does not reject a GO role on a DNA component.
func (c *Component) AddRole(role vocabulary.Role) {
	c.roles = append(c.roles, role)
}

// Sequences returns the owned Sequence objects defining the primary
// structure. Sharing a Sequence between Components is by reference; a
// shared Sequence must not be mutated once published.
func (c *Component) Sequences() []*Sequence {
	out := make([]*Sequence, len(c.sequences))
	copy(out, c.sequences)
	return out
}

// AddSequence attaches a Sequence to this Component.
func (c *Component) AddSequence(seq *Sequence) error {
	if seq == nil {
		return fmt.Errorf("%w: nil sequence", ErrNilReference)
	}
	c.sequences = append(c.sequences, seq)
	return nil
}

// OwnsSequence reports whether seq is among this Component's sequences.
func (c *Component) OwnsSequence(seq *Sequence) bool {
	for _, s := range c.sequences {
		if s == seq {
			return true
		}
	}
	return false
}

// Features returns the Feature occurrences contained by this Component.
func (c *Component) Features() []Feature {
	out := make([]Feature, len(c.features))
	copy(out, c.features)
	return out
}

// AddFeature attaches a Feature occurrence. Acyclicity of the resulting
// Component/Feature graph is a design-level invariant checked by the
// document validation pass, not here: a cycle can span components that are
// not yet all reachable from this one.
func (c *Component) AddFeature(f Feature) error {
	if f == nil {
		return fmt.Errorf("%w: nil feature", ErrNilReference)
	}
	c.features = append(c.features, f)
	return nil
}

// Constraints returns the URIs of Constraint objects restricting feature
// placement.
func (c *Component) Constraints() []string { return copyStrings(c.constraints) }

// AddConstraint records a constraint link. The URI must be absolute.
func (c *Component) AddConstraint(uri string) error {
	if err := vocabulary.ValidateURI(uri); err != nil {
		return err
	}
	c.constraints = append(c.constraints, uri)
	return nil
}

// Interactions returns the URIs of Interaction objects.
func (c *Component) Interactions() []string { return copyStrings(c.interactions) }

// AddInteraction records an interaction link. The URI must be absolute.
func (c *Component) AddInteraction(uri string) error {
	if err := vocabulary.ValidateURI(uri); err != nil {
		return err
	}
	c.interactions = append(c.interactions, uri)
	return nil
}

// Interfaces returns the URIs of Interface objects.
func (c *Component) Interfaces() []string { return copyStrings(c.interfaces) }

// AddInterface records an interface link. The URI must be absolute.
func (c *Component) AddInterface(uri string) error {
	if err := vocabulary.ValidateURI(uri); err != nil {
		return err
	}
	c.interfaces = append(c.interfaces, uri)
	return nil
}

// Models returns the URIs of Model objects.
func (c *Component) Models() []string { return copyStrings(c.models) }

// AddModel records a model link. The URI must be absolute.
func (c *Component) AddModel(uri string) error {
	if err := vocabulary.ValidateURI(uri); err != nil {
		return err
	}
	c.models = append(c.models, uri)
	return nil
}
