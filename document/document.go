// Package document assembles SBOL3 objects into a design document and runs
// the graph-level validation passes over the assembled snapshot.
//
// A Document is a flat registry of TopLevel objects keyed by URI. Assembly
// is single-threaded; once a document is published (fully assembled and
// validated) its object graph is immutable and safe for concurrent reads.
package document

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/c360studio/sbol3/model"
	"github.com/c360studio/sbol3/vocabulary"
)

// ErrDuplicateIdentity indicates two TopLevel objects resolving to the same
// URI within one document.
var ErrDuplicateIdentity = errors.New("duplicate identity")

// Document is a design document: the set of independently addressable
// TopLevel objects plus an index over their identities.
type Document struct {
	namespace  string
	components []*model.Component
	sequences  []*model.Sequence
	index      map[string]model.Object
}

// New creates an empty document whose objects default to the given
// namespace.
func New(namespace string) (*Document, error) {
	if err := vocabulary.ValidateURI(namespace); err != nil {
		return nil, err
	}
	return &Document{
		namespace: namespace,
		index:     make(map[string]model.Object),
	}, nil
}

// Namespace returns the document's default namespace URI.
func (d *Document) Namespace() string { return d.namespace }

// NewComponent creates a Component in the document namespace and attaches
// it. An empty displayID gets a minted one, since a URL-identified TopLevel
// must carry a display ID.
func (d *Document) NewComponent(displayID string, types ...vocabulary.EntityType) (*model.Component, error) {
	if displayID == "" {
		displayID = mintDisplayID()
	}
	c, err := model.NewComponent(d.namespace, displayID, types...)
	if err != nil {
		return nil, err
	}
	if err := d.AddComponent(c); err != nil {
		return nil, err
	}
	return c, nil
}

// NewSequence creates a Sequence in the document namespace and attaches it.
func (d *Document) NewSequence(displayID string) (*model.Sequence, error) {
	if displayID == "" {
		displayID = mintDisplayID()
	}
	s, err := model.NewSequence(d.namespace, displayID)
	if err != nil {
		return nil, err
	}
	if err := d.AddSequence(s); err != nil {
		return nil, err
	}
	return s, nil
}

// AddComponent attaches an externally built Component.
func (d *Document) AddComponent(c *model.Component) error {
	if err := d.register(c); err != nil {
		return err
	}
	d.components = append(d.components, c)
	return nil
}

// AddSequence attaches an externally built Sequence.
func (d *Document) AddSequence(s *model.Sequence) error {
	if err := d.register(s); err != nil {
		return err
	}
	d.sequences = append(d.sequences, s)
	return nil
}

func (d *Document) register(obj model.Object) error {
	uri := obj.URI()
	if _, exists := d.Lookup(uri); exists {
		return fmt.Errorf("%w: %s", ErrDuplicateIdentity, uri)
	}
	d.index[uri] = obj
	return nil
}

// Components returns the document's Components.
func (d *Document) Components() []*model.Component {
	out := make([]*model.Component, len(d.components))
	copy(out, d.components)
	return out
}

// Sequences returns the document's Sequences.
func (d *Document) Sequences() []*model.Sequence {
	out := make([]*model.Sequence, len(d.sequences))
	copy(out, d.sequences)
	return out
}

// Lookup resolves a URI to the attached object, if any. References to URIs
// outside the document are permitted and simply do not resolve. Resolution
// is structural: a reference that differs lexically from the registered
// identity (percent-encoding, say) still resolves when the URIs are
// component-wise equal.
func (d *Document) Lookup(uri string) (model.Object, bool) {
	if obj, ok := d.index[uri]; ok {
		return obj, true
	}
	for key, obj := range d.index {
		if vocabulary.URIEqual(key, uri) {
			return obj, true
		}
	}
	return nil, false
}

// mintDisplayID generates a display ID for objects created without one.
// UUIDs contain hyphens, which the display ID grammar forbids.
func mintDisplayID() string {
	return "id_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
