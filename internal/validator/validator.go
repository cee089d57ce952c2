package validator

import (
	"strconv"
	"strings"
	"time"

	"github.com/termtools/termlint/pkg/diag"
	"github.com/termtools/termlint/pkg/schema"
)

// Built-in value types understood without a custom pattern.
const (
	TypeBoolean  = "boolean"
	TypeInteger  = "integer"
	TypeFloat    = "float"
	TypeString   = "string"
	TypeEnum     = "enum"
	TypeColor    = "color"
	TypeDuration = "duration"
	TypeFontList = "font-list"
	TypeKeybind  = "keybind"
	TypePalette  = "palette"
)

const paletteMaxIndex = 255

// ValidateValue checks a raw value against the declared type of key in the
// schema. The engine only calls this for keys it has already confirmed
// exist; calling it with an unknown key is a contract violation and is
// reported as an error-severity failure rather than a crash. Empty or
// whitespace-only values mean "reset to default" and always pass.
func ValidateValue(sch *schema.Schema, key, rawValue string) *Result {
	opt, ok := sch.Lookup(key)
	if !ok {
		return Fail("%q is not in the schema", key)
	}

	value := strings.TrimSpace(rawValue)
	if value == "" {
		return Pass()
	}

	result := checkType(sch, opt, value)
	if !result.Valid && opt.Severity != "" {
		return FailWith(diag.ParseSeverity(opt.Severity), "%s", result.Message)
	}

	return result
}

func checkType(sch *schema.Schema, opt schema.Option, value string) *Result {
	switch opt.Type {
	case TypeBoolean:
		return checkBoolean(value)
	case TypeInteger:
		return checkInteger(opt, value)
	case TypeFloat:
		return checkFloat(opt, value)
	case TypeEnum:
		return checkEnum(opt, value)
	case TypeColor:
		return checkColor(value)
	case TypeDuration:
		return checkDuration(value)
	case TypeFontList:
		return checkFontList(value)
	case TypeKeybind:
		return checkKeybind(value)
	case TypePalette:
		return checkPalette(value)
	case TypeString, "":
		return Pass()
	default:
		return checkCustom(sch, opt.Type, value)
	}
}

func checkBoolean(value string) *Result {
	if value == "true" || value == "false" {
		return Pass()
	}

	return Fail("expected \"true\" or \"false\", got %q", value)
}

func checkInteger(opt schema.Option, value string) *Result {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return Fail("expected an integer, got %q", value)
	}

	return checkBounds(opt, float64(n), value)
}

func checkFloat(opt schema.Option, value string) *Result {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return Fail("expected a number, got %q", value)
	}

	return checkBounds(opt, f, value)
}

func checkBounds(opt schema.Option, f float64, value string) *Result {
	if opt.Minimum != nil && f < *opt.Minimum {
		return Fail("%s is below the minimum of %s", value, formatBound(*opt.Minimum))
	}

	if opt.Maximum != nil && f > *opt.Maximum {
		return Fail("%s is above the maximum of %s", value, formatBound(*opt.Maximum))
	}

	return Pass()
}

func formatBound(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func checkEnum(opt schema.Option, value string) *Result {
	for _, allowed := range opt.Values {
		if value == allowed {
			return Pass()
		}
	}

	return Fail("expected one of %s, got %q", quoteList(opt.Values), value)
}

func quoteList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = strconv.Quote(v)
	}

	return strings.Join(quoted, ", ")
}

// checkColor accepts #rgb / #rrggbb hex (the "#" is optional) or a named
// color made of letters and spaces.
func checkColor(value string) *Result {
	if isHexColor(value) || isNamedColor(value) {
		return Pass()
	}

	return Fail("expected a color like \"#1d2021\" or a named color, got %q", value)
}

func isHexColor(value string) bool {
	hex := strings.TrimPrefix(value, "#")
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}

	for i := 0; i < len(hex); i++ {
		if !isHexDigit(hex[i]) {
			return false
		}
	}

	return true
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isNamedColor(value string) bool {
	if value == "" {
		return false
	}

	for _, r := range value {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && r != ' ' {
			return false
		}
	}

	return true
}

func checkDuration(value string) *Result {
	if _, err := time.ParseDuration(value); err != nil {
		return Fail("expected a duration like \"750ms\" or \"2s\", got %q", value)
	}

	return Pass()
}

func checkFontList(value string) *Result {
	for _, entry := range strings.Split(value, ",") {
		if strings.TrimSpace(entry) == "" {
			return Fail("font list contains an empty entry")
		}
	}

	return Pass()
}

// checkKeybind validates trigger=action form. The action may itself
// contain "=" (e.g. text:x=y), so only the first separator splits.
func checkKeybind(value string) *Result {
	sep := strings.Index(value, "=")
	if sep < 0 {
		return Fail("expected a keybind like \"ctrl+shift+t=new_tab\", got %q", value)
	}

	trigger := strings.TrimSpace(value[:sep])
	action := strings.TrimSpace(value[sep+1:])

	if trigger == "" {
		return Fail("keybind is missing a trigger before \"=\"")
	}

	if action == "" {
		return Fail("keybind is missing an action after \"=\"")
	}

	for _, chord := range strings.Split(trigger, ">") {
		for _, k := range strings.Split(chord, "+") {
			if strings.TrimSpace(k) == "" {
				return Fail("keybind trigger %q contains an empty key", trigger)
			}
		}
	}

	return Pass()
}

// checkPalette validates N=COLOR palette entries.
func checkPalette(value string) *Result {
	sep := strings.Index(value, "=")
	if sep < 0 {
		return Fail("expected a palette entry like \"1=#ff0000\", got %q", value)
	}

	index := strings.TrimSpace(value[:sep])

	n, err := strconv.Atoi(index)
	if err != nil || n < 0 || n > paletteMaxIndex {
		return Fail("palette index must be between 0 and %d, got %q", paletteMaxIndex, index)
	}

	color := strings.TrimSpace(value[sep+1:])
	if res := checkColor(color); !res.Valid {
		return Fail("palette entry %d: %s", n, res.Message)
	}

	return Pass()
}

// checkCustom validates against a pattern-backed type from the artifact.
// A declared type with neither a built-in rule nor a pattern is accepted:
// an over-declared schema must not flag values it cannot judge.
func checkCustom(sch *schema.Schema, typeName, value string) *Result {
	re, ok := sch.TypePattern(typeName)
	if !ok {
		return Pass()
	}

	if re.MatchString(value) {
		return Pass()
	}

	if def, found := sch.TypeDef(typeName); found && def.Description != "" {
		return Fail("expected %s, got %q", def.Description, value)
	}

	return Fail("%q does not match the %s format", value, typeName)
}
