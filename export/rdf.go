// Package export serializes an assembled design document to RDF. It
// implements the serializer shape SBOL3 requires of Turtle, N-Triples, and
// JSON-LD encodings: TopLevel URIs are the namespace joined with the
// display ID, every vocabulary term is exactly one absolute URI, and an
// unspecified Sequence elements property is omitted rather than written as
// an empty string. Set-valued properties are emitted sorted, for
// reproducibility only; readers must not attach meaning to the order.
package export

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/c360studio/sbol3/document"
	"github.com/c360studio/sbol3/model"
	"github.com/c360studio/sbol3/vocabulary"
)

// property is one predicate with its (possibly multiple) object values.
type property struct {
	predicate string
	objects   []any
}

// node is one RDF subject with its type assertions and properties.
type node struct {
	id    string
	types []string
	props []property
}

// Exporter serializes a Document to a chosen RDF format.
type Exporter struct {
	doc      *document.Document
	prefixes map[string]string
}

// NewExporter creates an exporter over doc.
func NewExporter(doc *document.Document) *Exporter {
	return &Exporter{
		doc:      doc,
		prefixes: defaultPrefixes(),
	}
}

// defaultPrefixes returns the standard namespace prefixes for SBOL export.
func defaultPrefixes() map[string]string {
	return map[string]string{
		"rdf":  "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
		"sbol": vocabulary.SBOL3Namespace,
		"prov": vocabulary.ProvNamespace,
		"om":   vocabulary.OMNamespace,
		"SBO":  vocabulary.SBONamespace,
		"SO":   vocabulary.SONamespace,
		"edam": vocabulary.EDAMNamespace,
	}
}

// SetPrefix adds or overrides a namespace prefix.
func (e *Exporter) SetPrefix(prefix, iri string) {
	e.prefixes[prefix] = iri
}

// Export serializes the document to the specified format.
func (e *Exporter) Export(format Format) (string, error) {
	nodes := e.collect()
	switch format {
	case FormatTurtle:
		return e.toTurtle(nodes), nil
	case FormatNTriples:
		return e.toNTriples(nodes), nil
	case FormatJSONLD:
		return e.toJSONLD(nodes), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// collect flattens the document into RDF nodes: one per Sequence, one per
// Component, plus child nodes for features and their ranges.
func (e *Exporter) collect() []node {
	var nodes []node
	for _, seq := range e.doc.Sequences() {
		nodes = append(nodes, sequenceNode(seq))
	}
	for _, c := range e.doc.Components() {
		nodes = append(nodes, componentNodes(c)...)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].id < nodes[j].id })
	return nodes
}

// identifiedProps renders the attribute set shared by all objects.
func identifiedProps(displayID, name, description string, derivedFrom, generatedBy, measures []string) []property {
	var props []property
	if displayID != "" {
		props = append(props, property{vocabulary.PropDisplayID, []any{displayID}})
	}
	if name != "" {
		props = append(props, property{vocabulary.PropName, []any{name}})
	}
	if description != "" {
		props = append(props, property{vocabulary.PropDescription, []any{description}})
	}
	if p, ok := refSet(vocabulary.PropWasDerivedFrom, derivedFrom); ok {
		props = append(props, p)
	}
	if p, ok := refSet(vocabulary.PropWasGeneratedBy, generatedBy); ok {
		props = append(props, p)
	}
	if p, ok := refSet(vocabulary.PropHasMeasure, measures); ok {
		props = append(props, p)
	}
	return props
}

// refSet renders an unordered URI set as a sorted reference property.
func refSet(predicate string, uris []string) (property, bool) {
	if len(uris) == 0 {
		return property{}, false
	}
	sorted := make([]string, len(uris))
	copy(sorted, uris)
	sort.Strings(sorted)
	objects := make([]any, len(sorted))
	for i, uri := range sorted {
		objects[i] = ref(uri)
	}
	return property{predicate, objects}, true
}

func sequenceNode(seq *model.Sequence) node {
	n := node{
		id:    seq.URI(),
		types: []string{vocabulary.ClassSequence},
	}
	n.props = append(n.props, identifiedProps(
		seq.DisplayID(), seq.Name(), seq.Description(),
		seq.DerivedFrom(), seq.GeneratedBy(), seq.Measures())...)
	n.props = append(n.props, property{vocabulary.PropHasNamespace, []any{ref(seq.Namespace())}})
	if p, ok := refSet(vocabulary.PropHasAttachment, seq.Attachments()); ok {
		n.props = append(n.props, p)
	}
	// Unspecified elements are omitted entirely: absent and empty string
	// are semantically distinct.
	if elements, ok := seq.Elements(); ok {
		n.props = append(n.props, property{vocabulary.PropElements, []any{elements}})
	}
	if encoding, ok := seq.Encoding(); ok {
		n.props = append(n.props, property{vocabulary.PropEncoding, []any{ref(encoding.URI())}})
	}
	return n
}

func componentNodes(c *model.Component) []node {
	n := node{
		id:    c.URI(),
		types: []string{vocabulary.ClassComponent},
	}
	n.props = append(n.props, identifiedProps(
		c.DisplayID(), c.Name(), c.Description(),
		c.DerivedFrom(), c.GeneratedBy(), c.Measures())...)
	n.props = append(n.props, property{vocabulary.PropHasNamespace, []any{ref(c.Namespace())}})
	if p, ok := refSet(vocabulary.PropHasAttachment, c.Attachments()); ok {
		n.props = append(n.props, p)
	}

	if p, ok := refSet(vocabulary.PropType, c.Type()); ok {
		n.props = append(n.props, p)
	}
	roles := c.Roles()
	roleURIs := make([]string, len(roles))
	for i, r := range roles {
		roleURIs[i] = r.URI()
	}
	if p, ok := refSet(vocabulary.PropRole, roleURIs); ok {
		n.props = append(n.props, p)
	}

	sequences := c.Sequences()
	seqURIs := make([]string, len(sequences))
	for i, s := range sequences {
		seqURIs[i] = s.URI()
	}
	if p, ok := refSet(vocabulary.PropHasSequence, seqURIs); ok {
		n.props = append(n.props, p)
	}

	if p, ok := refSet(vocabulary.PropHasConstraint, c.Constraints()); ok {
		n.props = append(n.props, p)
	}
	if p, ok := refSet(vocabulary.PropHasInteraction, c.Interactions()); ok {
		n.props = append(n.props, p)
	}
	if p, ok := refSet(vocabulary.PropHasInterface, c.Interfaces()); ok {
		n.props = append(n.props, p)
	}
	if p, ok := refSet(vocabulary.PropHasModel, c.Models()); ok {
		n.props = append(n.props, p)
	}

	nodes := []node{n}
	var featureRefs []string
	for i, f := range c.Features() {
		sub, ok := f.(*model.SubComponent)
		if !ok {
			continue
		}
		children := featureNodes(c.URI(), i, sub)
		featureRefs = append(featureRefs, children[0].id)
		nodes = append(nodes, children...)
	}
	if p, ok := refSet(vocabulary.PropHasFeature, featureRefs); ok {
		nodes[0].props = append(nodes[0].props, p)
	}
	return nodes
}

// featureNodes renders a SubComponent and, when positioned, its Range as
// child subjects beneath the parent component URI.
func featureNodes(parentURI string, index int, sub *model.SubComponent) []node {
	displayID := sub.DisplayID()
	if displayID == "" {
		displayID = fmt.Sprintf("feature_%d", index+1)
	}
	n := node{
		id:    parentURI + "/" + displayID,
		types: []string{vocabulary.ClassSubComponent},
	}
	n.props = append(n.props, identifiedProps(
		sub.DisplayID(), sub.Name(), sub.Description(),
		sub.DerivedFrom(), sub.GeneratedBy(), sub.Measures())...)
	n.props = append(n.props, property{vocabulary.PropInstanceOf, []any{ref(sub.InstanceOf().URI())}})

	roles := sub.Roles()
	roleURIs := make([]string, len(roles))
	for i, r := range roles {
		roleURIs[i] = r.URI()
	}
	if p, ok := refSet(vocabulary.PropRole, roleURIs); ok {
		n.props = append(n.props, p)
	}
	orientations := sub.Orientations()
	orientationURIs := make([]string, len(orientations))
	for i, o := range orientations {
		orientationURIs[i] = o.URI()
	}
	if p, ok := refSet(vocabulary.PropOrientation, orientationURIs); ok {
		n.props = append(n.props, p)
	}

	nodes := []node{n}
	if loc := sub.Location(); loc != nil {
		rangeNode := node{
			id:    n.id + "/range",
			types: []string{vocabulary.ClassRange},
			props: []property{
				{vocabulary.PropHasSequence, []any{ref(loc.Sequence().URI())}},
				{vocabulary.PropStart, []any{loc.Start()}},
				{vocabulary.PropEnd, []any{loc.End()}},
				{vocabulary.PropOrientation, []any{ref(loc.Orientation().URI())}},
			},
		}
		nodes[0].props = append(nodes[0].props, property{vocabulary.PropHasLocation, []any{ref(rangeNode.id)}})
		nodes = append(nodes, rangeNode)
	}
	return nodes
}

// toTurtle serializes to Turtle format.
func (e *Exporter) toTurtle(nodes []node) string {
	var sb strings.Builder

	prefixKeys := make([]string, 0, len(e.prefixes))
	for k := range e.prefixes {
		prefixKeys = append(prefixKeys, k)
	}
	sort.Strings(prefixKeys)
	for _, prefix := range prefixKeys {
		sb.WriteString(fmt.Sprintf("@prefix %s: <%s> .\n", prefix, e.prefixes[prefix]))
	}
	sb.WriteString("\n")

	for _, n := range nodes {
		sb.WriteString(fmt.Sprintf("<%s>\n", n.id))
		statements := len(n.types)
		for _, p := range n.props {
			statements += len(p.objects)
		}
		written := 0
		for _, typeIRI := range n.types {
			written++
			sb.WriteString(fmt.Sprintf("    a <%s>%s\n", typeIRI, turtleTerminator(written, statements)))
		}
		for _, p := range n.props {
			for _, obj := range p.objects {
				written++
				sb.WriteString(fmt.Sprintf("    <%s> %s%s\n", p.predicate, formatObjectTurtle(obj), turtleTerminator(written, statements)))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func turtleTerminator(written, total int) string {
	if written == total {
		return " ."
	}
	return " ;"
}

// toNTriples serializes to N-Triples format.
func (e *Exporter) toNTriples(nodes []node) string {
	const rdfType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
	var sb strings.Builder
	for _, n := range nodes {
		for _, typeIRI := range n.types {
			sb.WriteString(fmt.Sprintf("<%s> <%s> <%s> .\n", n.id, rdfType, typeIRI))
		}
		for _, p := range n.props {
			for _, obj := range p.objects {
				sb.WriteString(fmt.Sprintf("<%s> <%s> %s .\n", n.id, p.predicate, formatObjectNTriples(obj)))
			}
		}
	}
	return sb.String()
}

// toJSONLD serializes to JSON-LD format.
func (e *Exporter) toJSONLD(nodes []node) string {
	graph := make([]map[string]any, 0, len(nodes))
	for _, n := range nodes {
		entry := map[string]any{
			"@id":   n.id,
			"@type": n.types,
		}
		for _, p := range n.props {
			values := make([]any, len(p.objects))
			for i, obj := range p.objects {
				values[i] = formatObjectJSONLD(obj)
			}
			if len(values) == 1 {
				entry[p.predicate] = values[0]
			} else {
				entry[p.predicate] = values
			}
		}
		graph = append(graph, entry)
	}

	context := make(map[string]any, len(e.prefixes))
	for k, v := range e.prefixes {
		context[k] = v
	}
	data, err := json.MarshalIndent(map[string]any{
		"@context": context,
		"@graph":   graph,
	}, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}
