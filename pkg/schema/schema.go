package schema

import (
	"regexp"
	"sort"

	"github.com/Masterminds/semver/v3"
	"github.com/cockroachdb/errors"
)

// SupportedMajor is the newest artifact major version this package
// understands.
const SupportedMajor = 1

var (
	// ErrUnsupportedVersion is returned when the artifact's major version
	// is newer than SupportedMajor.
	ErrUnsupportedVersion = errors.New("unsupported schema version")

	// ErrInvalidVersion is returned when the artifact version is not valid
	// semver.
	ErrInvalidVersion = errors.New("invalid schema version")

	// ErrInvalidPattern is returned when a custom type declares a pattern
	// that does not compile.
	ErrInvalidPattern = errors.New("invalid type pattern")
)

// Schema is the compiled, read-only option catalogue. A Schema is safe for
// concurrent use: it is never mutated after construction.
type Schema struct {
	version     *semver.Version
	description string
	options     map[string]Option
	repeatable  map[string]struct{}
	patterns    map[string]*regexp.Regexp
	typeDefs    map[string]TypeDef
	keys        []string
}

// Empty returns a valid schema with no options. Lookups miss, nothing is
// repeatable, and no diagnostics are raised against it.
func Empty() *Schema {
	return &Schema{
		options:    map[string]Option{},
		repeatable: map[string]struct{}{},
		patterns:   map[string]*regexp.Regexp{},
		typeDefs:   map[string]TypeDef{},
	}
}

// Compile builds a Schema from an artifact. Custom type patterns are
// compiled eagerly so validation never compiles regexps per call.
func Compile(artifact *Artifact) (*Schema, error) {
	s := Empty()
	if artifact == nil {
		return s, nil
	}

	if artifact.Version != "" {
		v, err := semver.NewVersion(artifact.Version)
		if err != nil {
			return Empty(), errors.Wrapf(ErrInvalidVersion, "%q", artifact.Version)
		}

		if v.Major() > SupportedMajor {
			return Empty(), errors.Wrapf(
				ErrUnsupportedVersion,
				"artifact declares %s, supported major is %d",
				artifact.Version,
				SupportedMajor,
			)
		}

		s.version = v
	}

	s.description = artifact.Description

	for name, def := range artifact.Types {
		s.typeDefs[name] = def

		if def.Pattern == "" {
			continue
		}

		re, err := regexp.Compile(anchored(def.Pattern))
		if err != nil {
			return Empty(), errors.Wrapf(ErrInvalidPattern, "type %q: %v", name, err)
		}

		s.patterns[name] = re
	}

	for key, opt := range artifact.Options {
		s.options[key] = opt
	}

	for _, key := range artifact.RepeatableKeys {
		s.repeatable[key] = struct{}{}
	}

	s.keys = make([]string, 0, len(s.options))
	for key := range s.options {
		s.keys = append(s.keys, key)
	}

	sort.Strings(s.keys)

	return s, nil
}

// anchored wraps a pattern so it must match the whole value.
func anchored(pattern string) string {
	return "^(?:" + pattern + ")$"
}

// Lookup returns the option info for a key.
func (s *Schema) Lookup(key string) (Option, bool) {
	opt, ok := s.options[key]
	return opt, ok
}

// IsRepeatable reports whether a key may appear multiple times in one
// document. A key is repeatable if its option is flagged repeatable or if
// it is listed in the artifact's repeatableKeys; either is sufficient.
func (s *Schema) IsRepeatable(key string) bool {
	if _, ok := s.repeatable[key]; ok {
		return true
	}

	opt, ok := s.options[key]

	return ok && opt.Repeatable
}

// Keys returns all known key names in sorted order. The returned slice is
// shared and must not be modified.
func (s *Schema) Keys() []string {
	return s.keys
}

// Len returns the number of options in the catalogue.
func (s *Schema) Len() int {
	return len(s.options)
}

// Version returns the artifact version, or "" when none was declared.
func (s *Schema) Version() string {
	if s.version == nil {
		return ""
	}

	return s.version.String()
}

// Description returns the artifact description.
func (s *Schema) Description() string {
	return s.description
}

// TypePattern returns the compiled pattern for a custom type name.
func (s *Schema) TypePattern(name string) (*regexp.Regexp, bool) {
	re, ok := s.patterns[name]
	return re, ok
}

// TypeDef returns the custom type definition for a type name.
func (s *Schema) TypeDef(name string) (TypeDef, bool) {
	def, ok := s.typeDefs[name]
	return def, ok
}
