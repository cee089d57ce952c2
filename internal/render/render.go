// Package render prints diagnostics for the CLI: one location line per
// diagnostic, the offending source line, and a caret underline under the
// reported span.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/termtools/termlint/pkg/diag"
	"github.com/termtools/termlint/pkg/parser"
)

// ColorEnabled reports whether ANSI styling should be used.
//
// Color is disabled when any of:
//   - NO_COLOR env is set (any value, per https://no-color.org)
//   - CLICOLOR=0
//   - TERM=dumb
//   - noColorFlag is true (--no-color CLI flag)
func ColorEnabled(noColorFlag bool) bool {
	if noColorFlag {
		return false
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	if os.Getenv("CLICOLOR") == "0" {
		return false
	}

	if os.Getenv("TERM") == "dumb" {
		return false
	}

	return true
}

// TerminalWidth returns the width of the terminal attached to f, or
// fallback when f is not a terminal.
func TerminalWidth(f *os.File, fallback int) int {
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}

	return width
}

// Theme holds lipgloss styles for diagnostic output.
type Theme struct {
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Info     lipgloss.Style
	Hint     lipgloss.Style
	Location lipgloss.Style
	Source   lipgloss.Style
	Caret    lipgloss.Style
}

// NewTheme creates a Theme. When color is false, all styles are empty (no
// ANSI codes).
func NewTheme(color bool) Theme {
	if !color {
		return Theme{}
	}

	return Theme{
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Info:     lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Hint:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Location: lipgloss.NewStyle().Bold(true),
		Source:   lipgloss.NewStyle(),
		Caret:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

// severityStyle picks the style for a severity.
func (t Theme) severityStyle(s diag.Severity) lipgloss.Style {
	switch s {
	case diag.SeverityError:
		return t.Error
	case diag.SeverityInfo:
		return t.Info
	case diag.SeverityHint:
		return t.Hint
	case diag.SeverityWarning, diag.SeverityUnknown:
		return t.Warning
	default:
		return t.Warning
	}
}

// Renderer prints diagnostics to a writer.
type Renderer struct {
	w     io.Writer
	theme Theme
	width int
}

// NewRenderer creates a Renderer. Echoed source lines are clipped to
// width display columns; width <= 0 disables clipping.
func NewRenderer(w io.Writer, theme Theme, width int) *Renderer {
	return &Renderer{w: w, theme: theme, width: width}
}

// Print writes all diagnostics for one document. The document's parsed
// lines supply the source text echoed under each finding.
func (r *Renderer) Print(path string, lines []parser.Line, diags []diag.Diagnostic) {
	for _, d := range diags {
		r.printOne(path, lines, d)
	}
}

func (r *Renderer) printOne(path string, lines []parser.Line, d diag.Diagnostic) {
	location := fmt.Sprintf("%s:%d:%d", path, d.Line+1, d.Range.Start+1)

	fmt.Fprintf(r.w, "%s: %s: %s\n",
		r.theme.Location.Render(location),
		r.theme.severityStyle(d.Severity).Render(d.Severity.String()),
		d.Message,
	)

	if d.Line < 0 || d.Line >= len(lines) {
		return
	}

	raw := lines[d.Line].Raw
	fmt.Fprintf(r.w, "  %s\n", r.theme.Source.Render(r.clip(raw, sourceEllipsis)))
	fmt.Fprintf(r.w, "  %s\n", r.theme.Caret.Render(r.clip(underline(raw, d.Range), "")))
}

const (
	sourceEllipsis = "…"
	indentWidth    = 2
)

// clip truncates s to the renderer width, leaving room for the two-column
// indent the source echo is printed under.
func (r *Renderer) clip(s, tail string) string {
	if r.width <= indentWidth {
		return s
	}

	return runewidth.Truncate(s, r.width-indentWidth, tail)
}

// underline builds the caret line for a span, using display widths so the
// carets line up under wide runes.
func underline(raw string, span diag.Range) string {
	start := clamp(span.Start, 0, len(raw))
	end := clamp(span.End, start, len(raw))

	pad := runewidth.StringWidth(raw[:start])

	width := runewidth.StringWidth(raw[start:end])
	if width < 1 {
		width = 1
	}

	return strings.Repeat(" ", pad) + strings.Repeat("^", width)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}

// Summary returns the closing count line, e.g. "2 errors, 1 warning".
func Summary(c diag.Count) string {
	parts := make([]string, 0, 4)

	if c.Errors > 0 {
		parts = append(parts, plural(c.Errors, "error"))
	}

	if c.Warnings > 0 {
		parts = append(parts, plural(c.Warnings, "warning"))
	}

	if c.Infos > 0 {
		// "info" does not pluralize.
		parts = append(parts, fmt.Sprintf("%d info", c.Infos))
	}

	if c.Hints > 0 {
		parts = append(parts, plural(c.Hints, "hint"))
	}

	if len(parts) == 0 {
		return "no problems"
	}

	return strings.Join(parts, ", ")
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}

	return fmt.Sprintf("%d %ss", n, noun)
}
