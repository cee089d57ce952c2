package assist_test

import (
	"sort"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/termtools/termlint/internal/assist"
	"github.com/termtools/termlint/pkg/schema"
)

func testSchema() *schema.Schema {
	sch, err := schema.Compile(&schema.Artifact{
		Version: "1.0.0",
		Options: map[string]schema.Option{
			"font-size": {
				Type:        "float",
				Description: "Font size in points.",
				Default:     "13",
			},
			"font-family": {
				Type:       "string",
				Repeatable: true,
			},
			"cursor-style": {
				Type:   "enum",
				Values: []string{"block", "bar", "underline"},
			},
			"bold-is-bright": {
				Type:       "boolean",
				Deprecated: true,
			},
			"macos-titlebar-style": {
				Type:      "string",
				Platforms: []string{"macos"},
			},
		},
	})
	Expect(err).NotTo(HaveOccurred())

	return sch
}

var _ = Describe("Complete", func() {
	var sch *schema.Schema

	BeforeEach(func() {
		sch = testSchema()
	})

	It("returns the whole catalogue for an empty prefix", func() {
		items := assist.Complete(sch, "")
		Expect(items).To(HaveLen(sch.Len()))
	})

	It("filters by key prefix", func() {
		items := assist.Complete(sch, "font-")

		keys := make([]string, 0, len(items))
		for _, item := range items {
			keys = append(keys, item.Key)
		}

		Expect(keys).To(Equal([]string{"font-family", "font-size"}))
	})

	It("returns items in sorted key order", func() {
		items := assist.Complete(sch, "")

		Expect(sort.SliceIsSorted(items, func(i, j int) bool {
			return items[i].Key < items[j].Key
		})).To(BeTrue())
	})

	It("carries type, documentation, and deprecation", func() {
		items := assist.Complete(sch, "font-size")
		Expect(items).To(HaveLen(1))
		Expect(items[0].Detail).To(Equal("float"))
		Expect(items[0].Documentation).To(Equal("Font size in points."))
		Expect(items[0].Deprecated).To(BeFalse())

		items = assist.Complete(sch, "bold-is-bright")
		Expect(items).To(HaveLen(1))
		Expect(items[0].Deprecated).To(BeTrue())
	})

	It("returns an empty slice, not nil, when nothing matches", func() {
		Expect(assist.Complete(sch, "zzz")).To(BeEmpty())
		Expect(assist.Complete(sch, "zzz")).NotTo(BeNil())
	})
})

var _ = Describe("Hover", func() {
	var sch *schema.Schema

	BeforeEach(func() {
		sch = testSchema()
	})

	It("reports false for unknown keys", func() {
		_, ok := assist.Hover(sch, "no-such-key")
		Expect(ok).To(BeFalse())
	})

	It("renders the key, type, description, and default", func() {
		doc, ok := assist.Hover(sch, "font-size")
		Expect(ok).To(BeTrue())
		Expect(doc).To(ContainSubstring("**font-size** `float`"))
		Expect(doc).To(ContainSubstring("Font size in points."))
		Expect(doc).To(ContainSubstring("Default: `13`"))
	})

	It("lists allowed values for enums", func() {
		doc, ok := assist.Hover(sch, "cursor-style")
		Expect(ok).To(BeTrue())
		Expect(doc).To(ContainSubstring("`block`, `bar`, `underline`"))
	})

	It("marks deprecated options", func() {
		doc, ok := assist.Hover(sch, "bold-is-bright")
		Expect(ok).To(BeTrue())
		Expect(doc).To(ContainSubstring("Deprecated"))
	})

	It("names platform restrictions", func() {
		doc, ok := assist.Hover(sch, "macos-titlebar-style")
		Expect(ok).To(BeTrue())
		Expect(doc).To(ContainSubstring("Platforms: macos"))
	})

	It("notes repeatable keys", func() {
		doc, ok := assist.Hover(sch, "font-family")
		Expect(ok).To(BeTrue())
		Expect(doc).To(ContainSubstring("may be repeated"))
	})
})
