// Package metaschema generates a JSON Schema describing the schema
// artifact format, so artifact authors get editor validation.
package metaschema

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/invopop/jsonschema"

	"github.com/termtools/termlint/pkg/schema"
)

const (
	schemaURI = "https://json-schema.org/draft/2020-12/schema"
	title     = "termlint schema artifact"
	filename  = "artifact.schema.json"
)

// Generate produces a JSON Schema from the artifact types.
func Generate() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		ExpandedStruct: true,
	}

	s := r.Reflect(&schema.Artifact{})
	s.Version = schemaURI
	s.Title = title

	return s
}

// GenerateJSON produces the JSON Schema as bytes. When indent is true, the
// output is pretty-printed.
func GenerateJSON(indent bool) ([]byte, error) {
	s := Generate()

	var (
		data []byte
		err  error
	)

	if indent {
		data, err = json.MarshalIndent(s, "", "  ")
	} else {
		data, err = json.Marshal(s)
	}

	if err != nil {
		return nil, errors.Wrap(err, "marshaling schema to JSON")
	}

	// Append trailing newline for file output.
	return append(data, '\n'), nil
}

// Filename returns the canonical output file name.
func Filename() string {
	return filename
}
