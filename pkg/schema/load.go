package schema

import (
	_ "embed"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

//go:embed artifacts/ghostty.json
var defaultArtifact []byte

// ErrUnreadableArtifact is returned when the artifact file cannot be read.
var ErrUnreadableArtifact = errors.New("unreadable schema artifact")

// LoadFile loads a schema artifact from disk. JSON is assumed unless the
// file has a .yaml or .yml extension.
//
// The returned schema is never nil: on any failure it is the empty schema,
// alongside the error, so callers that ignore the error still degrade
// gracefully instead of crashing.
func LoadFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Empty(), errors.Wrapf(ErrUnreadableArtifact, "%s: %v", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseJSON(data)
	}
}

// ParseJSON parses a JSON schema artifact. The returned schema is never
// nil.
func ParseJSON(data []byte) (*Schema, error) {
	var artifact Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return Empty(), errors.Wrap(err, "parsing schema artifact")
	}

	return Compile(&artifact)
}

// ParseYAML parses a YAML schema artifact. The returned schema is never
// nil.
func ParseYAML(data []byte) (*Schema, error) {
	var artifact Artifact
	if err := yaml.Unmarshal(data, &artifact); err != nil {
		return Empty(), errors.Wrap(err, "parsing schema artifact")
	}

	return Compile(&artifact)
}

// defaultSchema caches the embedded catalogue. The write happens at most
// once; concurrent first reads converge on one instance.
var defaultSchema = sync.OnceValue(func() *Schema {
	s, err := ParseJSON(defaultArtifact)
	if err != nil {
		// The embedded artifact is validated by tests; degrade anyway.
		return Empty()
	}

	return s
})

// Default returns the process-wide cached schema compiled from the
// embedded catalogue. Repeated calls return the same instance without
// re-parsing. Use LoadFile to bypass the cache with an explicit artifact.
func Default() *Schema {
	return defaultSchema()
}
