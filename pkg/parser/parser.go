// Package parser turns raw terminal config text into classified lines with
// precise source spans. It performs no schema lookups and never fails:
// every input line gets exactly one classification.
package parser

import (
	"strings"

	"github.com/termtools/termlint/pkg/diag"
)

// LineType classifies a single physical line.
type LineType string

const (
	// LineKeyValue is a "key = value" assignment.
	LineKeyValue LineType = "key_value"

	// LineComment is a "#"-prefixed comment line.
	LineComment LineType = "comment"

	// LineEmpty is a blank or whitespace-only line.
	LineEmpty LineType = "empty"

	// LineInvalid is a line that is neither of the above, e.g. missing the
	// "=" separator or missing the key.
	LineInvalid LineType = "invalid"
)

// Line is one parsed physical line of the document.
type Line struct {
	// Number is the zero-based line index.
	Number int

	// Raw is the original line text with the line terminator stripped.
	Raw string

	// Type is the line classification.
	Type LineType

	// Key is the trimmed key name. Set only for LineKeyValue, never empty.
	Key string

	// Value is the raw substring after the separator, untrimmed. Set only
	// for LineKeyValue.
	Value string

	// KeyRange spans the trimmed key within Raw. Nil when unknown;
	// consumers fall back to the whole-line span.
	KeyRange *diag.Range

	// ValueRange spans the raw value within Raw, including any whitespace
	// the user typed. Nil when unknown.
	ValueRange *diag.Range
}

// WholeLine returns the span covering the entire raw line.
func (l Line) WholeLine() diag.Range {
	return diag.NewRange(0, len(l.Raw))
}

// ParseDocument splits text into lines and classifies each one. It returns
// exactly one Line per physical line, in order, preserving zero-based line
// numbering. Windows line terminators are stripped before any offsets are
// computed, so spans always index into the normalized line.
func ParseDocument(text string) []Line {
	raw := strings.Split(text, "\n")

	// A trailing newline produces a phantom empty element; real editors
	// still treat the text as ending at the last terminator.
	if n := len(raw); n > 1 && raw[n-1] == "" && strings.HasSuffix(text, "\n") {
		raw = raw[:n-1]
	}

	lines := make([]Line, 0, len(raw))
	for i, r := range raw {
		lines = append(lines, parseLine(i, strings.TrimSuffix(r, "\r")))
	}

	return lines
}

func parseLine(number int, raw string) Line {
	line := Line{Number: number, Raw: raw}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		line.Type = LineEmpty
		return line
	}

	if strings.HasPrefix(trimmed, "#") {
		line.Type = LineComment
		return line
	}

	sep := indexSeparator(raw)
	if sep < 0 {
		line.Type = LineInvalid
		return line
	}

	key := strings.TrimSpace(raw[:sep])
	if key == "" {
		// A separator with no key must never reach key lookups.
		line.Type = LineInvalid
		return line
	}

	keyStart := strings.Index(raw, key)

	line.Type = LineKeyValue
	line.Key = key
	line.Value = raw[sep+1:]
	line.KeyRange = rangePtr(keyStart, keyStart+len(key))
	line.ValueRange = rangePtr(sep+1, len(raw))

	return line
}

// indexSeparator finds the first unescaped "=" in the line, or -1.
func indexSeparator(raw string) int {
	for i := 0; i < len(raw); i++ {
		if raw[i] != '=' {
			continue
		}

		if i > 0 && raw[i-1] == '\\' {
			continue
		}

		return i
	}

	return -1
}

func rangePtr(start, end int) *diag.Range {
	r := diag.NewRange(start, end)
	return &r
}
