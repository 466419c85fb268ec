package export

import (
	"fmt"
	"strings"
)

// Format specifies the output serialization format.
type Format string

const (
	// FormatTurtle produces Turtle (.ttl) output.
	FormatTurtle Format = "turtle"

	// FormatNTriples produces N-Triples (.nt) output.
	FormatNTriples Format = "ntriples"

	// FormatJSONLD produces JSON-LD (.jsonld) output.
	FormatJSONLD Format = "jsonld"
)

// FormatInfo provides metadata about an export format.
type FormatInfo struct {
	// Name is the format identifier.
	Name Format

	// MIMEType is the standard MIME type.
	MIMEType string

	// Extension is the file extension (with dot).
	Extension string

	// Description describes the format.
	Description string
}

// FormatRegistry contains metadata for all supported formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatTurtle: {
		Name:        FormatTurtle,
		MIMEType:    "text/turtle",
		Extension:   ".ttl",
		Description: "Turtle - Terse RDF Triple Language",
	},
	FormatNTriples: {
		Name:        FormatNTriples,
		MIMEType:    "application/n-triples",
		Extension:   ".nt",
		Description: "N-Triples - Line-based RDF format",
	},
	FormatJSONLD: {
		Name:        FormatJSONLD,
		MIMEType:    "application/ld+json",
		Extension:   ".jsonld",
		Description: "JSON-LD - JSON for Linked Data",
	},
}

// GetFormatInfo returns metadata for a format.
func GetFormatInfo(format Format) (FormatInfo, bool) {
	info, ok := FormatRegistry[format]
	return info, ok
}

// ParseFormat resolves a format name, accepting the common file extensions
// as aliases.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "turtle", "ttl":
		return FormatTurtle, nil
	case "ntriples", "nt", "n-triples":
		return FormatNTriples, nil
	case "jsonld", "json-ld":
		return FormatJSONLD, nil
	}
	return "", fmt.Errorf("unsupported format: %s", name)
}

// ref marks an object value as an IRI reference rather than a literal.
type ref string

// formatObjectTurtle renders an object value for Turtle output.
func formatObjectTurtle(object any) string {
	switch v := object.(type) {
	case ref:
		return fmt.Sprintf("<%s>", string(v))
	case int:
		return fmt.Sprintf("%d", v)
	default:
		return fmt.Sprintf("%q", fmt.Sprintf("%v", v))
	}
}

// formatObjectNTriples renders an object value for N-Triples output.
// Integers carry an explicit xsd:integer datatype.
func formatObjectNTriples(object any) string {
	switch v := object.(type) {
	case ref:
		return fmt.Sprintf("<%s>", string(v))
	case int:
		return fmt.Sprintf("%q^^<http://www.w3.org/2001/XMLSchema#integer>", fmt.Sprintf("%d", v))
	default:
		return fmt.Sprintf("%q", fmt.Sprintf("%v", v))
	}
}

// formatObjectJSONLD renders an object value for JSON-LD output.
func formatObjectJSONLD(object any) any {
	switch v := object.(type) {
	case ref:
		return map[string]any{"@id": string(v)}
	default:
		return v
	}
}
