// Package manifest reads YAML design manifests and assembles them into
// documents. A manifest is the human-authored description of a design:
// sequences with their elements, components with their types and roles, and
// the features composing components into larger structures. Vocabulary terms
// may be written as friendly names (dna, promoter, inline) or as full URIs
// for terms outside the built-in tables.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/sbol3/document"
	"github.com/c360studio/sbol3/model"
	"github.com/c360studio/sbol3/vocabulary"
)

// Manifest is the top-level YAML document describing one design.
type Manifest struct {
	// Namespace is the URI prefix under which every object in the design
	// is identified.
	Namespace string `yaml:"namespace"`

	Sequences  []SequenceEntry  `yaml:"sequences"`
	Components []ComponentEntry `yaml:"components"`
}

// SequenceEntry declares one Sequence. Elements is a pointer so that an
// absent key stays distinct from an explicitly empty string.
type SequenceEntry struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Elements    *string `yaml:"elements"`
	Encoding    string  `yaml:"encoding"`
}

// ComponentEntry declares one Component with its vocabulary terms, owned
// sequences (by manifest ID), and features.
type ComponentEntry struct {
	ID          string         `yaml:"id"`
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Types       []string       `yaml:"types"`
	Topology    string         `yaml:"topology"`
	Roles       []string       `yaml:"roles"`
	Sequences   []string       `yaml:"sequences"`
	Features    []FeatureEntry `yaml:"features"`
}

// FeatureEntry declares one SubComponent inside a component. InstanceOf
// names another component entry by ID.
type FeatureEntry struct {
	ID          string         `yaml:"id"`
	InstanceOf  string         `yaml:"instance_of"`
	Roles       []string       `yaml:"roles"`
	Orientation string         `yaml:"orientation"`
	Location    *LocationEntry `yaml:"location"`
}

// LocationEntry positions a feature on a sequence (by manifest ID) using
// 1-based inclusive coordinates.
type LocationEntry struct {
	Sequence    string `yaml:"sequence"`
	Start       int    `yaml:"start"`
	End         int    `yaml:"end"`
	Orientation string `yaml:"orientation"`
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Parse(data)
}

// Parse parses manifest YAML.
func Parse(data []byte) (*Manifest, error) {
	m := &Manifest{}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return m, nil
}

// Build assembles the manifest into a document. When the manifest declares
// no namespace, defaultNamespace is used. Objects are created in two passes
// so features can reference components and sequences declared in any order.
func (m *Manifest) Build(defaultNamespace string) (*document.Document, error) {
	namespace := m.Namespace
	if namespace == "" {
		namespace = defaultNamespace
	}
	doc, err := document.New(namespace)
	if err != nil {
		return nil, err
	}

	sequences := make(map[string]*model.Sequence)
	components := make(map[string]*model.Component)
	built := make([]*model.Component, 0, len(m.Components))

	for _, entry := range m.Sequences {
		seq, err := doc.NewSequence(entry.ID)
		if err != nil {
			return nil, fmt.Errorf("sequence %q: %w", entry.ID, err)
		}
		seq.SetName(entry.Name)
		seq.SetDescription(entry.Description)
		if entry.Elements != nil {
			var encoding vocabulary.Encoding
			if entry.Encoding != "" {
				encoding, err = resolveEncoding(entry.Encoding)
				if err != nil {
					return nil, fmt.Errorf("sequence %q: %w", entry.ID, err)
				}
			}
			if err := seq.SetElements(*entry.Elements, encoding); err != nil {
				return nil, fmt.Errorf("sequence %q: %w", entry.ID, err)
			}
		}
		if entry.ID != "" {
			sequences[entry.ID] = seq
		}
	}

	for _, entry := range m.Components {
		types := make([]vocabulary.EntityType, 0, len(entry.Types))
		for _, name := range entry.Types {
			t, err := resolveEntityType(name)
			if err != nil {
				return nil, fmt.Errorf("component %q: %w", entry.ID, err)
			}
			types = append(types, t)
		}
		c, err := doc.NewComponent(entry.ID, types...)
		if err != nil {
			return nil, fmt.Errorf("component %q: %w", entry.ID, err)
		}
		c.SetName(entry.Name)
		c.SetDescription(entry.Description)
		if entry.Topology != "" {
			topology, err := resolveTopology(entry.Topology)
			if err != nil {
				return nil, fmt.Errorf("component %q: %w", entry.ID, err)
			}
			if err := c.AddTopology(topology); err != nil {
				return nil, fmt.Errorf("component %q: %w", entry.ID, err)
			}
		}
		for _, name := range entry.Roles {
			role, err := resolveRole(name)
			if err != nil {
				return nil, fmt.Errorf("component %q: %w", entry.ID, err)
			}
			c.AddRole(role)
		}
		for _, seqID := range entry.Sequences {
			seq, ok := sequences[seqID]
			if !ok {
				return nil, fmt.Errorf("component %q: unknown sequence %q", entry.ID, seqID)
			}
			if err := c.AddSequence(seq); err != nil {
				return nil, fmt.Errorf("component %q: %w", entry.ID, err)
			}
		}
		built = append(built, c)
		if entry.ID != "" {
			components[entry.ID] = c
		}
	}

	// Second pass: features reference components and sequences by ID
	// regardless of declaration order.
	for i, entry := range m.Components {
		if len(entry.Features) == 0 {
			continue
		}
		parent := built[i]
		for _, fe := range entry.Features {
			if err := buildFeature(parent, fe, components, sequences); err != nil {
				return nil, fmt.Errorf("component %q feature %q: %w", entry.ID, fe.ID, err)
			}
		}
	}

	return doc, nil
}

func buildFeature(parent *model.Component, fe FeatureEntry, components map[string]*model.Component, sequences map[string]*model.Sequence) error {
	target, ok := components[fe.InstanceOf]
	if !ok {
		return fmt.Errorf("unknown component %q", fe.InstanceOf)
	}
	sub, err := model.NewSubComponent(fe.ID, target)
	if err != nil {
		return err
	}
	for _, name := range fe.Roles {
		role, err := resolveRole(name)
		if err != nil {
			return err
		}
		sub.AddRole(role)
	}
	if fe.Orientation != "" {
		orientation, err := resolveOrientation(fe.Orientation)
		if err != nil {
			return err
		}
		sub.AddOrientation(orientation)
	}
	if fe.Location != nil {
		seq, ok := sequences[fe.Location.Sequence]
		if !ok {
			return fmt.Errorf("unknown sequence %q", fe.Location.Sequence)
		}
		orientation := vocabulary.OrientationInline
		if fe.Location.Orientation != "" {
			orientation, err = resolveOrientation(fe.Location.Orientation)
			if err != nil {
				return err
			}
		}
		loc, err := model.NewLocation(seq, fe.Location.Start, fe.Location.End, orientation)
		if err != nil {
			return err
		}
		sub.SetLocation(loc)
	}
	return parent.AddFeature(sub)
}
