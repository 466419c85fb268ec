package model

import (
	"strings"

	"github.com/c360studio/sbol3/vocabulary"
)

// Object is implemented by every independently addressable SBOL object.
// Everything that is not an Object is reached only by navigating from one.
type Object interface {
	// URI returns the object's resolvable identity: the namespace joined
	// with the display ID.
	URI() string

	// DisplayID returns the display ID, or "" when unset.
	DisplayID() string

	// DerivedFrom returns the provenance derivation edges.
	DerivedFrom() []string

	// GeneratedBy returns the provenance generation edges.
	GeneratedBy() []string
}

// TopLevel extends Identified for objects found at the top level of an SBOL
// document. TopLevel objects are never nested inside another object;
// subordinate TopLevels are referred to by URI.
type TopLevel struct {
	Identified
	namespace   string
	attachments []string
}

func newTopLevel(namespace, displayID string) (TopLevel, error) {
	if err := vocabulary.ValidateURI(namespace); err != nil {
		return TopLevel{}, err
	}
	base, err := newIdentified(displayID)
	if err != nil {
		return TopLevel{}, err
	}
	return TopLevel{Identified: base, namespace: namespace}, nil
}

// Namespace returns the URI defining the namespace portion of this object's
// identity.
func (t *TopLevel) Namespace() string { return t.namespace }

// Attachments returns the URIs of attached Attachment objects.
func (t *TopLevel) Attachments() []string { return copyStrings(t.attachments) }

// AddAttachment records an attachment link. The URI must be absolute.
func (t *TopLevel) AddAttachment(uri string) error {
	if err := vocabulary.ValidateURI(uri); err != nil {
		return err
	}
	t.attachments = append(t.attachments, uri)
	return nil
}

// URI returns the namespace joined with the display ID. When the display ID
// is unset the namespace itself is the identity.
func (t *TopLevel) URI() string {
	if t.displayID == "" {
		return t.namespace
	}
	if strings.HasSuffix(t.namespace, "/") || strings.HasSuffix(t.namespace, "#") {
		return t.namespace + t.displayID
	}
	return t.namespace + "/" + t.displayID
}
