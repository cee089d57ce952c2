// Package assist provides the editor-facing query capabilities over a
// schema: key completion and hover documentation. Both are stateless free
// functions; the host owns the schema handle.
package assist

import (
	"fmt"
	"strings"

	"github.com/termtools/termlint/pkg/schema"
)

// Completion is one completion item for a key prefix.
type Completion struct {
	// Key is the configuration key to insert.
	Key string

	// Detail is the declared type, shown next to the key.
	Detail string

	// Documentation is the option description.
	Documentation string

	// Deprecated marks entries the host should render struck through.
	Deprecated bool
}

// Complete returns completion items for every known key matching prefix,
// in sorted key order. An empty prefix returns the whole catalogue.
func Complete(sch *schema.Schema, prefix string) []Completion {
	items := make([]Completion, 0)

	for _, key := range sch.Keys() {
		if !strings.HasPrefix(key, prefix) {
			continue
		}

		opt, _ := sch.Lookup(key)

		items = append(items, Completion{
			Key:           key,
			Detail:        opt.Type,
			Documentation: opt.Description,
			Deprecated:    opt.Deprecated,
		})
	}

	return items
}

// Hover returns markdown documentation for a key, or false when the key is
// not in the schema.
func Hover(sch *schema.Schema, key string) (string, bool) {
	opt, ok := sch.Lookup(key)
	if !ok {
		return "", false
	}

	var b strings.Builder

	fmt.Fprintf(&b, "**%s** `%s`\n", key, opt.Type)

	if opt.Deprecated {
		b.WriteString("\n*Deprecated.*\n")
	}

	if opt.Description != "" {
		b.WriteString("\n" + opt.Description + "\n")
	}

	if len(opt.Values) > 0 {
		fmt.Fprintf(&b, "\nAllowed values: `%s`\n", strings.Join(opt.Values, "`, `"))
	}

	if opt.Default != "" {
		fmt.Fprintf(&b, "\nDefault: `%s`\n", opt.Default)
	}

	if len(opt.Platforms) > 0 {
		fmt.Fprintf(&b, "\nPlatforms: %s\n", strings.Join(opt.Platforms, ", "))
	}

	if sch.IsRepeatable(key) {
		b.WriteString("\nThis key may be repeated.\n")
	}

	return b.String(), true
}
