package document

import (
	"errors"
	"fmt"
	"strings"

	"github.com/c360studio/sbol3/model"
)

// ErrCompositionCycle indicates a Component reachable from itself via
// repeated Feature instantiation.
var ErrCompositionCycle = errors.New("component composition cycle")

// ErrProvenanceCycle indicates an object reachable from itself along
// derived-from or generated-by edges.
var ErrProvenanceCycle = errors.New("provenance cycle")

// ErrSequenceMappingConflict indicates a Feature whose mapped sequence
// slice disagrees with the Component it instantiates.
var ErrSequenceMappingConflict = errors.New("sequence mapping conflict")

// CycleError reports one composition cycle, naming every Component on it.
type CycleError struct {
	// Cycle holds the URIs of the components forming the cycle, in
	// traversal order.
	Cycle []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("%v: %s", ErrCompositionCycle, strings.Join(e.Cycle, " -> "))
}

func (e *CycleError) Unwrap() error { return ErrCompositionCycle }

// ProvenanceError reports one cycle in a provenance relation.
type ProvenanceError struct {
	// Relation is "derived_from" or "generated_by".
	Relation string

	// Cycle holds the URIs of the objects forming the cycle.
	Cycle []string
}

func (e *ProvenanceError) Error() string {
	return fmt.Sprintf("%v: %s: %s", ErrProvenanceCycle, e.Relation, strings.Join(e.Cycle, " -> "))
}

func (e *ProvenanceError) Unwrap() error { return ErrProvenanceCycle }

// MappingError reports one sequence-mapping inconsistency between a parent
// Component and a Feature it contains.
type MappingError struct {
	// Parent is the URI of the containing Component.
	Parent string

	// Child is the URI of the instantiated Component.
	Child string

	// Detail describes the disagreement.
	Detail string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("%v: %s contains %s: %s", ErrSequenceMappingConflict, e.Parent, e.Child, e.Detail)
}

func (e *MappingError) Unwrap() error { return ErrSequenceMappingConflict }

// Validate runs every graph-level validation pass over the assembled
// document and returns all problems found, never just the first.
func Validate(doc *Document) []error {
	var errs []error
	errs = append(errs, CheckComposition(doc)...)
	errs = append(errs, CheckProvenance(doc)...)
	errs = append(errs, CheckSequenceMappings(doc)...)
	return errs
}

// traversal colors for the cycle checks.
const (
	unvisited = iota
	onStack
	done
)

// CheckComposition verifies that the Component -> Feature -> instantiated
// Component relation is acyclic across the whole document: no Component may
// be reachable from itself via repeated Feature instantiation. Depth-first
// walk from every Component with an on-stack marker set; revisiting a
// marked node signals a cycle naming the offending components.
func CheckComposition(doc *Document) []error {
	var errs []error
	state := make(map[*model.Component]int)
	reported := make(map[*model.Component]bool)

	var path []*model.Component
	var walk func(c *model.Component)
	walk = func(c *model.Component) {
		state[c] = onStack
		path = append(path, c)
		for _, f := range c.Features() {
			sub, ok := f.(*model.SubComponent)
			if !ok {
				continue
			}
			next := sub.InstanceOf()
			switch state[next] {
			case unvisited:
				walk(next)
			case onStack:
				if !reported[next] {
					reported[next] = true
					errs = append(errs, &CycleError{Cycle: extractCycle(path, next)})
				}
			}
		}
		path = path[:len(path)-1]
		state[c] = done
	}

	for _, c := range doc.components {
		if state[c] == unvisited {
			walk(c)
		}
	}
	return errs
}

// extractCycle returns the URIs of the path suffix starting at the first
// occurrence of head.
func extractCycle(path []*model.Component, head *model.Component) []string {
	start := 0
	for i, c := range path {
		if c == head {
			start = i
			break
		}
	}
	cycle := make([]string, 0, len(path)-start)
	for _, c := range path[start:] {
		cycle = append(cycle, c.URI())
	}
	return cycle
}

// CheckProvenance verifies that the derived-from and generated-by
// relations, each taken independently over the document's objects, are
// acyclic. Edges pointing outside the document terminate the walk.
func CheckProvenance(doc *Document) []error {
	var errs []error
	errs = append(errs, checkProvenanceRelation(doc, "derived_from", model.Object.DerivedFrom)...)
	errs = append(errs, checkProvenanceRelation(doc, "generated_by", model.Object.GeneratedBy)...)
	return errs
}

func checkProvenanceRelation(doc *Document, relation string, edges func(model.Object) []string) []error {
	var errs []error
	state := make(map[string]int)
	reported := make(map[string]bool)

	var path []string
	var walk func(uri string, obj model.Object)
	walk = func(uri string, obj model.Object) {
		state[uri] = onStack
		path = append(path, uri)
		for _, target := range edges(obj) {
			next, inDoc := doc.Lookup(target)
			if !inDoc {
				continue
			}
			targetURI := next.URI()
			switch state[targetURI] {
			case unvisited:
				walk(targetURI, next)
			case onStack:
				if !reported[targetURI] {
					reported[targetURI] = true
					errs = append(errs, &ProvenanceError{
						Relation: relation,
						Cycle:    extractProvenanceCycle(path, targetURI),
					})
				}
			}
		}
		path = path[:len(path)-1]
		state[uri] = done
	}

	for uri, obj := range doc.index {
		if state[uri] == unvisited {
			walk(uri, obj)
		}
	}
	return errs
}

func extractProvenanceCycle(path []string, head string) []string {
	start := 0
	for i, uri := range path {
		if uri == head {
			start = i
			break
		}
	}
	cycle := make([]string, len(path)-start)
	copy(cycle, path[start:])
	return cycle
}

// CheckSequenceMappings verifies that every positioned Feature agrees with
// the Component it instantiates: the slice of the parent's elements at the
// declared range (reverse-complemented when the orientation says so) must
// equal the child's elements under the same encoding.
func CheckSequenceMappings(doc *Document) []error {
	var errs []error
	for _, parent := range doc.components {
		for _, f := range parent.Features() {
			sub, ok := f.(*model.SubComponent)
			if !ok || sub.Location() == nil {
				continue
			}
			if err := checkMapping(parent, sub); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errs
}

func checkMapping(parent *model.Component, sub *model.SubComponent) error {
	loc := sub.Location()
	child := sub.InstanceOf()

	// A located feature's sequence must be among the parent's sequences.
	if !parent.OwnsSequence(loc.Sequence()) {
		return &MappingError{
			Parent: parent.URI(),
			Child:  child.URI(),
			Detail: fmt.Sprintf("location targets sequence %s not owned by the component", loc.Sequence().URI()),
		}
	}

	parentElements, ok := loc.Sequence().Elements()
	if !ok {
		return nil // unspecified parent elements, nothing to compare
	}
	want, err := loc.Slice(parentElements)
	if err != nil {
		return &MappingError{
			Parent: parent.URI(),
			Child:  child.URI(),
			Detail: err.Error(),
		}
	}

	parentEncoding, _ := loc.Sequence().Encoding()
	for _, childSeq := range child.Sequences() {
		childEncoding, hasEncoding := childSeq.Encoding()
		if !hasEncoding || childEncoding != parentEncoding {
			continue
		}
		got, specified := childSeq.Elements()
		if !specified {
			continue
		}
		if got != want {
			return &MappingError{
				Parent: parent.URI(),
				Child:  child.URI(),
				Detail: fmt.Sprintf("range [%d, %d] maps to %q but the instantiated component declares %q", loc.Start(), loc.End(), want, got),
			}
		}
	}
	return nil
}
