package export_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/sbol3/document"
	"github.com/c360studio/sbol3/export"
	"github.com/c360studio/sbol3/model"
	"github.com/c360studio/sbol3/vocabulary"
)

const ns = "https://example.org/designs"

// buildDesign assembles a small but complete design: a DNA component with a
// sequence, a promoter subcomponent positioned at [1, 5], and a sequence
// whose elements were never specified.
func buildDesign(t *testing.T) *document.Document {
	t.Helper()
	doc, err := document.New(ns)
	require.NoError(t, err)

	seq, err := doc.NewSequence("plasmid_seq")
	require.NoError(t, err)
	require.NoError(t, seq.SetElements("gattaca", vocabulary.EncodingNucleicAcid))

	unspecified, err := doc.NewSequence("draft_seq")
	require.NoError(t, err)
	unspecified.SetName("draft")

	plasmid, err := doc.NewComponent("plasmid", vocabulary.TypeDNA)
	require.NoError(t, err)
	require.NoError(t, plasmid.AddTopology(vocabulary.TopologyCircular))
	plasmid.AddRole(vocabulary.RoleEngineeredRegion)
	require.NoError(t, plasmid.AddSequence(seq))

	promoter, err := doc.NewComponent("pTac", vocabulary.TypeDNA)
	require.NoError(t, err)
	promoter.AddRole(vocabulary.RolePromoter)

	sub, err := model.NewSubComponent("pTac_instance", promoter)
	require.NoError(t, err)
	sub.AddOrientation(vocabulary.OrientationInline)
	loc, err := model.NewLocation(seq, 1, 5, vocabulary.OrientationInline)
	require.NoError(t, err)
	sub.SetLocation(loc)
	require.NoError(t, plasmid.AddFeature(sub))

	return doc
}

func TestExportTurtle(t *testing.T) {
	doc := buildDesign(t)
	out, err := export.NewExporter(doc).Export(export.FormatTurtle)
	require.NoError(t, err)

	assert.Contains(t, out, "@prefix sbol: <https://sbols.org/v3#>")
	assert.Contains(t, out, "@prefix prov: <http://www.w3.org/ns/prov#>")

	assert.Contains(t, out, "<"+ns+"/plasmid>")
	assert.Contains(t, out, "a <"+vocabulary.ClassComponent+">")
	assert.Contains(t, out, "<"+vocabulary.PropType+"> <"+vocabulary.TypeDNA.URI()+">")
	assert.Contains(t, out, "<"+vocabulary.PropType+"> <"+vocabulary.TopologyCircular.URI()+">")
	assert.Contains(t, out, "<"+vocabulary.PropRole+"> <"+vocabulary.RolePromoter.URI()+">")
	assert.Contains(t, out, "<"+vocabulary.PropHasSequence+"> <"+ns+"/plasmid_seq>")

	assert.Contains(t, out, "<"+vocabulary.PropElements+"> \"gattaca\"")
	assert.Contains(t, out, "<"+vocabulary.PropEncoding+"> <"+vocabulary.EncodingNucleicAcid.URI()+">")
}

func TestExportTurtleFeatureAndRange(t *testing.T) {
	doc := buildDesign(t)
	out, err := export.NewExporter(doc).Export(export.FormatTurtle)
	require.NoError(t, err)

	featureURI := ns + "/plasmid/pTac_instance"
	assert.Contains(t, out, "<"+featureURI+">")
	assert.Contains(t, out, "a <"+vocabulary.ClassSubComponent+">")
	assert.Contains(t, out, "<"+vocabulary.PropInstanceOf+"> <"+ns+"/pTac>")
	assert.Contains(t, out, "<"+vocabulary.PropHasFeature+"> <"+featureURI+">")

	rangeURI := featureURI + "/range"
	assert.Contains(t, out, "<"+rangeURI+">")
	assert.Contains(t, out, "a <"+vocabulary.ClassRange+">")
	assert.Contains(t, out, "<"+vocabulary.PropStart+"> 1")
	assert.Contains(t, out, "<"+vocabulary.PropEnd+"> 5")
	assert.Contains(t, out, "<"+vocabulary.PropHasLocation+"> <"+rangeURI+">")
}

func TestExportOmitsUnspecifiedElements(t *testing.T) {
	doc := buildDesign(t)
	out, err := export.NewExporter(doc).Export(export.FormatTurtle)
	require.NoError(t, err)

	// draft_seq has no elements: the property must be absent, not an empty
	// literal.
	section := out[strings.Index(out, "<"+ns+"/draft_seq>"):]
	section = section[:strings.Index(section, "\n\n")]
	assert.NotContains(t, section, vocabulary.PropElements)
	assert.NotContains(t, section, vocabulary.PropEncoding)
	assert.Contains(t, section, "\"draft\"")
}

func TestExportNTriples(t *testing.T) {
	doc := buildDesign(t)
	out, err := export.NewExporter(doc).Export(export.FormatNTriples)
	require.NoError(t, err)

	assert.Contains(t, out, "<"+ns+"/plasmid> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <"+vocabulary.ClassComponent+"> .")
	assert.Contains(t, out, "\"1\"^^<http://www.w3.org/2001/XMLSchema#integer>")
	assert.Contains(t, out, "\"5\"^^<http://www.w3.org/2001/XMLSchema#integer>")

	// Every line is a complete triple.
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		assert.True(t, strings.HasSuffix(line, " ."), "line %q missing terminator", line)
	}
}

func TestExportJSONLD(t *testing.T) {
	doc := buildDesign(t)
	out, err := export.NewExporter(doc).Export(export.FormatJSONLD)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))

	context, ok := parsed["@context"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, vocabulary.SBOL3Namespace, context["sbol"])

	graph, ok := parsed["@graph"].([]any)
	require.True(t, ok)
	// Two sequences, two components, one feature, one range.
	assert.Len(t, graph, 6)

	ids := make(map[string]bool)
	for _, entry := range graph {
		m := entry.(map[string]any)
		ids[m["@id"].(string)] = true
	}
	assert.True(t, ids[ns+"/plasmid"])
	assert.True(t, ids[ns+"/plasmid_seq"])
	assert.True(t, ids[ns+"/plasmid/pTac_instance"])
	assert.True(t, ids[ns+"/plasmid/pTac_instance/range"])
}

func TestExportUnsupportedFormat(t *testing.T) {
	doc := buildDesign(t)
	_, err := export.NewExporter(doc).Export(export.Format("rdfxml"))
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want export.Format
	}{
		{"canonical turtle", "turtle", export.FormatTurtle},
		{"ttl extension", ".ttl", export.FormatTurtle},
		{"ntriples alias", "nt", export.FormatNTriples},
		{"hyphenated", "n-triples", export.FormatNTriples},
		{"jsonld", "jsonld", export.FormatJSONLD},
		{"case insensitive", "JSON-LD", export.FormatJSONLD},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := export.ParseFormat(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := export.ParseFormat("rdfxml")
	assert.Error(t, err)
}

func TestFormatRegistry(t *testing.T) {
	info, ok := export.GetFormatInfo(export.FormatTurtle)
	require.True(t, ok)
	assert.Equal(t, "text/turtle", info.MIMEType)
	assert.Equal(t, ".ttl", info.Extension)

	_, ok = export.GetFormatInfo(export.Format("rdfxml"))
	assert.False(t, ok)
}
