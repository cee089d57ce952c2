// Package diag defines the diagnostic types shared between the lint engine
// and its hosts (CLI, editor integrations).
package diag

import "fmt"

// Range is a half-open character-offset interval [Start, End) within a
// single line of the document.
type Range struct {
	// Start is the inclusive start offset.
	Start int

	// End is the exclusive end offset.
	End int
}

// NewRange creates a Range from start and end offsets.
func NewRange(start, end int) Range {
	return Range{Start: start, End: end}
}

// Len returns the number of characters covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Empty returns true if the range covers no characters.
func (r Range) Empty() bool {
	return r.Start >= r.End
}

// String returns the range in start-end form.
func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// Diagnostic is one located problem report over a document. Diagnostics are
// produced by the engine and never mutated afterwards.
type Diagnostic struct {
	// Line is the zero-based line index the diagnostic applies to.
	Line int

	// Range is the character span within the line to underline.
	Range Range

	// Message is the human-readable problem description.
	Message string

	// Severity is the importance of the diagnostic.
	Severity Severity
}

// String returns the diagnostic in line:start-end form for logs and tests.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%s %s: %s", d.Line, d.Range, d.Severity, d.Message)
}

// Count holds per-severity totals for a diagnostic sequence.
type Count struct {
	Errors   int
	Warnings int
	Infos    int
	Hints    int
}

// CountBySeverity tallies diagnostics per severity.
func CountBySeverity(diags []Diagnostic) Count {
	var c Count

	for _, d := range diags {
		switch d.Severity {
		case SeverityError:
			c.Errors++
		case SeverityWarning:
			c.Warnings++
		case SeverityInfo:
			c.Infos++
		case SeverityHint:
			c.Hints++
		case SeverityUnknown:
		}
	}

	return c
}
