// Package schema provides the declarative catalogue of valid terminal
// configuration keys, loaded from a schema artifact.
package schema

// Artifact is the on-disk schema document. It is the authoring format:
// consumers work with the compiled Schema instead.
type Artifact struct {
	// Version is the artifact format version (semver). Artifacts with a
	// newer major version than SupportedMajor are rejected.
	Version string `json:"version,omitempty"         yaml:"version,omitempty"`

	// Description describes the catalogue.
	Description string `json:"description,omitempty"     yaml:"description,omitempty"`

	// Options maps key names to their declared option info.
	Options map[string]Option `json:"options"                   yaml:"options"`

	// Types declares custom pattern-backed value types referenced by
	// Option.Type.
	Types map[string]TypeDef `json:"types,omitempty"           yaml:"types,omitempty"`

	// RepeatableKeys lists keys that may appear multiple times in one
	// document, in addition to per-option Repeatable flags.
	RepeatableKeys []string `json:"repeatableKeys,omitempty"  yaml:"repeatableKeys,omitempty"`
}

// Option describes a single configuration key.
type Option struct {
	// Type is the declared value type: one of the built-in types
	// (boolean, integer, float, string, enum, color, duration, font-list,
	// keybind, palette) or the name of an entry in Artifact.Types.
	Type string `json:"type"                  yaml:"type"`

	// Description documents the option for hover and completion.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Default is the value applied when the key is absent or reset.
	Default string `json:"default,omitempty"     yaml:"default,omitempty"`

	// Values enumerates the allowed values for enum-typed options.
	Values []string `json:"values,omitempty"      yaml:"values,omitempty"`

	// Minimum and Maximum bound numeric options when set.
	Minimum *float64 `json:"minimum,omitempty"     yaml:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty"     yaml:"maximum,omitempty"`

	// Deprecated marks the key as scheduled for removal.
	Deprecated bool `json:"deprecated,omitempty"  yaml:"deprecated,omitempty"`

	// Platforms restricts the key to the named platform tags. Empty means
	// the key applies everywhere.
	Platforms []string `json:"platforms,omitempty"   yaml:"platforms,omitempty"`

	// Repeatable allows the key to appear multiple times.
	Repeatable bool `json:"repeatable,omitempty"  yaml:"repeatable,omitempty"`

	// Severity downgrades value-check findings for this option
	// ("warning", "info", "hint"). Empty means the check's own default.
	Severity string `json:"severity,omitempty"    yaml:"severity,omitempty"`
}

// TypeDef declares a custom value type validated by a regular expression.
type TypeDef struct {
	// Pattern is an anchored RE2 pattern the whole value must match.
	Pattern string `json:"pattern,omitempty"     yaml:"pattern,omitempty"`

	// Description names the expected shape in diagnostics.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}
