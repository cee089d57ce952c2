// Package engine orchestrates the line parser, schema model, and value
// validator into a full diagnostic pass over one document.
package engine

import (
	"fmt"
	"strings"

	"github.com/termtools/termlint/internal/platform"
	"github.com/termtools/termlint/internal/validator"
	"github.com/termtools/termlint/pkg/diag"
	"github.com/termtools/termlint/pkg/logger"
	"github.com/termtools/termlint/pkg/parser"
	"github.com/termtools/termlint/pkg/schema"
)

// invalidLineMessage is the fixed message for unclassifiable lines.
const invalidLineMessage = `invalid line: expected "key = value" or "# comment"`

// Options carries the per-pass engine toggles.
type Options struct {
	// EnableDiagnostics short-circuits the pass to empty output when
	// false.
	EnableDiagnostics bool

	// ShowPlatformHints suppresses platform-mismatch diagnostics when
	// false.
	ShowPlatformHints bool

	// UnknownKeySeverity is the severity of the unknown-key diagnostic
	// specifically. Unset means warning.
	UnknownKeySeverity diag.Severity

	// Platform is the current platform tag. Unknown skips platform checks
	// entirely.
	Platform platform.Platform
}

// DefaultOptions returns the documented defaults, detecting the host
// platform.
func DefaultOptions() Options {
	return Options{
		EnableDiagnostics:  true,
		ShowPlatformHints:  true,
		UnknownKeySeverity: diag.SeverityWarning,
		Platform:           platform.Detect(),
	}
}

// Engine validates documents against one schema. It holds no per-document
// state: concurrent passes over different documents are independent.
type Engine struct {
	schema *schema.Schema
	logger logger.Logger
}

// New creates an Engine. A nil logger is replaced with a no-op logger.
func New(sch *schema.Schema, log logger.Logger) *Engine {
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	return &Engine{schema: sch, logger: log}
}

// ValidateDocument runs a full diagnostic pass over text with default
// options. See Engine.ValidateDocument.
func ValidateDocument(sch *schema.Schema, text string, opts Options) []diag.Diagnostic {
	return New(sch, nil).ValidateDocument(text, opts)
}

// ValidateDocument produces the ordered diagnostic sequence for one
// document: per-line checks in line order, then the whole-document
// duplicate-key pass. It always returns a (possibly empty) sequence and
// never fails for well-formed input.
func (e *Engine) ValidateDocument(text string, opts Options) []diag.Diagnostic {
	if !opts.EnableDiagnostics {
		return nil
	}

	// A failed artifact load degrades to the empty schema; with no
	// catalogue to check against, the pass raises nothing.
	if e.schema.Len() == 0 {
		return nil
	}

	lines := parser.ParseDocument(text)
	diags := make([]diag.Diagnostic, 0)

	for _, line := range lines {
		diags = append(diags, e.checkLine(line, opts)...)
	}

	diags = append(diags, e.checkDuplicates(lines)...)

	e.logger.Debug("validated document",
		"lines", len(lines),
		"diagnostics", len(diags),
	)

	return diags
}

// checkLine runs the per-line checks in their fixed order: invalid line,
// unknown key, deprecated key, platform mismatch, value validation.
func (e *Engine) checkLine(line parser.Line, opts Options) []diag.Diagnostic {
	switch line.Type {
	case parser.LineComment, parser.LineEmpty:
		return nil

	case parser.LineInvalid:
		return []diag.Diagnostic{{
			Line:     line.Number,
			Range:    line.WholeLine(),
			Message:  invalidLineMessage,
			Severity: diag.SeverityError,
		}}

	case parser.LineKeyValue:
	}

	opt, known := e.schema.Lookup(line.Key)
	if !known {
		// Unknown key stops further checks for the line: there is no
		// declared type to validate against.
		return []diag.Diagnostic{{
			Line:     line.Number,
			Range:    keySpan(line),
			Message:  fmt.Sprintf("unknown configuration key %q", line.Key),
			Severity: opts.UnknownKeySeverity.OrDefault(diag.SeverityWarning),
		}}
	}

	var diags []diag.Diagnostic

	if opt.Deprecated {
		diags = append(diags, diag.Diagnostic{
			Line:     line.Number,
			Range:    keySpan(line),
			Message:  fmt.Sprintf("%q is deprecated", line.Key),
			Severity: diag.SeverityHint,
		})
	}

	if d, mismatch := e.checkPlatform(line, opt, opts); mismatch {
		diags = append(diags, d)
	}

	if d, bad := e.checkValue(line); bad {
		diags = append(diags, d)
	}

	return diags
}

func (e *Engine) checkPlatform(
	line parser.Line,
	opt schema.Option,
	opts Options,
) (diag.Diagnostic, bool) {
	if len(opt.Platforms) == 0 || !opts.ShowPlatformHints || !opts.Platform.Known() {
		return diag.Diagnostic{}, false
	}

	for _, tag := range opt.Platforms {
		if platform.Platform(tag) == opts.Platform {
			return diag.Diagnostic{}, false
		}
	}

	return diag.Diagnostic{
		Line:  line.Number,
		Range: keySpan(line),
		Message: fmt.Sprintf(
			"%q only applies to %s (current platform is %s)",
			line.Key,
			strings.Join(opt.Platforms, ", "),
			opts.Platform,
		),
		Severity: diag.SeverityInfo,
	}, true
}

func (e *Engine) checkValue(line parser.Line) (diag.Diagnostic, bool) {
	// Empty values reset the option to its default and are always valid.
	if strings.TrimSpace(line.Value) == "" {
		return diag.Diagnostic{}, false
	}

	result := validator.ValidateValue(e.schema, line.Key, line.Value)
	if result.Valid {
		return diag.Diagnostic{}, false
	}

	return diag.Diagnostic{
		Line:     line.Number,
		Range:    valueSpan(line),
		Message:  result.Message,
		Severity: result.Severity.OrDefault(diag.SeverityWarning),
	}, true
}

// checkDuplicates groups keyValue lines by key in first-seen order and
// flags every occurrence after the first, unless the key is repeatable.
func (e *Engine) checkDuplicates(lines []parser.Line) []diag.Diagnostic {
	groups := make(map[string][]parser.Line)
	order := make([]string, 0)

	for _, line := range lines {
		if line.Type != parser.LineKeyValue {
			continue
		}

		if _, seen := groups[line.Key]; !seen {
			order = append(order, line.Key)
		}

		groups[line.Key] = append(groups[line.Key], line)
	}

	var diags []diag.Diagnostic

	for _, key := range order {
		group := groups[key]
		if len(group) < 2 || e.schema.IsRepeatable(key) {
			continue
		}

		first := group[0]

		for _, line := range group[1:] {
			diags = append(diags, diag.Diagnostic{
				Line:  line.Number,
				Range: keySpan(line),
				Message: fmt.Sprintf(
					"duplicate key %q; first defined on line %d",
					key,
					first.Number+1,
				),
				Severity: diag.SeverityWarning,
			})
		}
	}

	return diags
}

// keySpan returns the key range, falling back to the whole line when the
// parser recorded none.
func keySpan(line parser.Line) diag.Range {
	if line.KeyRange != nil {
		return *line.KeyRange
	}

	return line.WholeLine()
}

// valueSpan returns the value range, falling back to the whole line.
func valueSpan(line parser.Line) diag.Range {
	if line.ValueRange != nil {
		return *line.ValueRange
	}

	return line.WholeLine()
}
