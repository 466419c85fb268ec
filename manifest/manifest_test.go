package manifest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/sbol3/document"
	"github.com/c360studio/sbol3/manifest"
	"github.com/c360studio/sbol3/model"
	"github.com/c360studio/sbol3/vocabulary"
)

const design = `
namespace: https://example.org/designs

sequences:
  - id: plasmid_seq
    elements: gattaca
    encoding: nucleic-acid
  - id: promoter_seq
    elements: gatta
    encoding: nucleic-acid
  - id: draft_seq
    name: draft

components:
  - id: plasmid
    types: [dna]
    topology: circular
    roles: [engineered-region]
    sequences: [plasmid_seq]
    features:
      - id: pTac_instance
        instance_of: pTac
        orientation: inline
        location:
          sequence: plasmid_seq
          start: 1
          end: 5
  - id: pTac
    types: [dna]
    roles: [promoter]
    sequences: [promoter_seq]
`

func TestParseAndBuild(t *testing.T) {
	m, err := manifest.Parse([]byte(design))
	require.NoError(t, err)
	assert.Equal(t, "https://example.org/designs", m.Namespace)
	require.Len(t, m.Sequences, 3)
	require.Len(t, m.Components, 2)

	doc, err := m.Build("")
	require.NoError(t, err)
	assert.Len(t, doc.Components(), 2)
	assert.Len(t, doc.Sequences(), 3)

	obj, ok := doc.Lookup("https://example.org/designs/plasmid")
	require.True(t, ok)
	plasmid := obj.(*model.Component)
	assert.Contains(t, plasmid.Type(), vocabulary.TypeDNA.URI())
	assert.Contains(t, plasmid.Type(), vocabulary.TopologyCircular.URI())
	require.Len(t, plasmid.Features(), 1)

	sub := plasmid.Features()[0].(*model.SubComponent)
	assert.Equal(t, "pTac_instance", sub.DisplayID())
	assert.Equal(t, "https://example.org/designs/pTac", sub.InstanceOf().URI())
	require.NotNil(t, sub.Location())
	assert.Equal(t, 1, sub.Location().Start())
	assert.Equal(t, 5, sub.Location().End())

	// The built design is internally consistent.
	assert.Empty(t, document.Validate(doc))
}

func TestBuildAbsentElementsStayUnspecified(t *testing.T) {
	m, err := manifest.Parse([]byte(design))
	require.NoError(t, err)
	doc, err := m.Build("")
	require.NoError(t, err)

	obj, ok := doc.Lookup("https://example.org/designs/draft_seq")
	require.True(t, ok)
	seq := obj.(*model.Sequence)
	_, specified := seq.Elements()
	assert.False(t, specified)
	assert.Equal(t, "draft", seq.Name())
}

func TestBuildUsesDefaultNamespace(t *testing.T) {
	m, err := manifest.Parse([]byte("components:\n  - id: c\n    types: [dna]\n"))
	require.NoError(t, err)

	doc, err := m.Build("https://fallback.example.org")
	require.NoError(t, err)
	assert.Equal(t, "https://fallback.example.org", doc.Namespace())
}

func TestBuildExternalTermURIs(t *testing.T) {
	src := `
namespace: https://example.org/designs
components:
  - id: widget
    types: ["https://identifiers.org/SBO:0000247"]
    roles: ["https://identifiers.org/SO:0000110"]
`
	m, err := manifest.Parse([]byte(src))
	require.NoError(t, err)
	doc, err := m.Build("")
	require.NoError(t, err)
	assert.Contains(t, doc.Components()[0].Type(), "https://identifiers.org/SBO:0000247")
}

func TestBuildRejectsUnknownTerm(t *testing.T) {
	src := `
namespace: https://example.org/designs
components:
  - id: widget
    types: [plasmid-dna]
`
	m, err := manifest.Parse([]byte(src))
	require.NoError(t, err)
	_, err = m.Build("")
	require.Error(t, err)
	assert.ErrorIs(t, err, vocabulary.ErrInvalidURI)
}

func TestBuildRejectsDanglingReferences(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			name: "unknown owned sequence",
			src: `
namespace: https://example.org/designs
components:
  - id: c
    types: [dna]
    sequences: [missing]
`,
		},
		{
			name: "unknown instance_of",
			src: `
namespace: https://example.org/designs
components:
  - id: c
    types: [dna]
    features:
      - id: f
        instance_of: missing
`,
		},
		{
			name: "unknown location sequence",
			src: `
namespace: https://example.org/designs
components:
  - id: c
    types: [dna]
    features:
      - id: f
        instance_of: c
        location: {sequence: missing, start: 1, end: 2}
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := manifest.Parse([]byte(tt.src))
			require.NoError(t, err)
			_, err = m.Build("")
			assert.Error(t, err)
		})
	}
}

func TestBuildRejectsElementsWithoutEncoding(t *testing.T) {
	src := `
namespace: https://example.org/designs
sequences:
  - id: s
    elements: gattaca
`
	m, err := manifest.Parse([]byte(src))
	require.NoError(t, err)
	_, err = m.Build("")
	assert.ErrorIs(t, err, model.ErrMissingEncoding)
}

func TestBuildRejectsTopologyOnProtein(t *testing.T) {
	src := `
namespace: https://example.org/designs
components:
  - id: enzyme
    types: [protein]
    topology: linear
`
	m, err := manifest.Parse([]byte(src))
	require.NoError(t, err)
	_, err = m.Build("")
	assert.ErrorIs(t, err, model.ErrInvalidTopologyPlacement)
}
