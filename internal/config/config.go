// Package config provides layered configuration loading for the CLI:
// defaults, then config files, then TERMLINT_* environment variables, then
// CLI flags.
package config

import (
	"github.com/termtools/termlint/internal/engine"
	"github.com/termtools/termlint/internal/platform"
	"github.com/termtools/termlint/pkg/diag"
)

// Config is the resolved CLI configuration.
type Config struct {
	Diagnostics DiagnosticsConfig `koanf:"diagnostics"`
	Schema      SchemaConfig      `koanf:"schema"`
	Output      OutputConfig      `koanf:"output"`
}

// DiagnosticsConfig carries the engine toggles.
type DiagnosticsConfig struct {
	// Enabled turns diagnostics off entirely when false.
	Enabled bool `koanf:"enabled"`

	// PlatformHints toggles platform-mismatch diagnostics.
	PlatformHints bool `koanf:"platform_hints"`

	// UnknownKeySeverity is the severity for unknown-key diagnostics.
	UnknownKeySeverity diag.Severity `koanf:"unknown_key_severity"`

	// Platform overrides host platform detection when set to a known tag.
	Platform string `koanf:"platform"`
}

// SchemaConfig locates the schema artifact.
type SchemaConfig struct {
	// Path points at a JSON or YAML artifact. Empty uses the embedded
	// catalogue.
	Path string `koanf:"path"`
}

// OutputConfig controls CLI rendering.
type OutputConfig struct {
	// NoColor disables ANSI styling.
	NoColor bool `koanf:"no_color"`
}

// EngineOptions translates the config into engine options.
func (c *Config) EngineOptions() engine.Options {
	opts := engine.DefaultOptions()
	opts.EnableDiagnostics = c.Diagnostics.Enabled
	opts.ShowPlatformHints = c.Diagnostics.PlatformHints
	opts.UnknownKeySeverity = c.Diagnostics.UnknownKeySeverity.OrDefault(diag.SeverityWarning)

	if c.Diagnostics.Platform != "" {
		opts.Platform = platform.Parse(c.Diagnostics.Platform)
	}

	return opts
}

// defaultsToMap returns the lowest-precedence configuration layer.
func defaultsToMap() map[string]any {
	return map[string]any{
		"diagnostics.enabled":              true,
		"diagnostics.platform_hints":       true,
		"diagnostics.unknown_key_severity": "warning",
		"diagnostics.platform":             "",
		"schema.path":                      "",
		"output.no_color":                  false,
	}
}
