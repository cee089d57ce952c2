package schema_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/termtools/termlint/pkg/schema"
)

var _ = Describe("Compile", func() {
	It("compiles an empty artifact into a valid empty schema", func() {
		sch, err := schema.Compile(&schema.Artifact{})
		Expect(err).NotTo(HaveOccurred())
		Expect(sch.Len()).To(BeZero())
		Expect(sch.IsRepeatable("anything")).To(BeFalse())
	})

	It("tolerates a nil artifact", func() {
		sch, err := schema.Compile(nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(sch.Len()).To(BeZero())
	})

	It("rejects a newer major version", func() {
		_, err := schema.Compile(&schema.Artifact{Version: "2.0.0"})
		Expect(err).To(MatchError(schema.ErrUnsupportedVersion))
	})

	It("rejects a malformed version", func() {
		_, err := schema.Compile(&schema.Artifact{Version: "one"})
		Expect(err).To(MatchError(schema.ErrInvalidVersion))
	})

	It("rejects a custom type with a broken pattern", func() {
		_, err := schema.Compile(&schema.Artifact{
			Types: map[string]schema.TypeDef{"bad": {Pattern: "("}},
		})
		Expect(err).To(MatchError(schema.ErrInvalidPattern))
	})

	It("anchors custom type patterns to the whole value", func() {
		sch, err := schema.Compile(&schema.Artifact{
			Types: map[string]schema.TypeDef{"digits": {Pattern: "[0-9]+"}},
		})
		Expect(err).NotTo(HaveOccurred())

		re, ok := sch.TypePattern("digits")
		Expect(ok).To(BeTrue())
		Expect(re.MatchString("123")).To(BeTrue())
		Expect(re.MatchString("a123b")).To(BeFalse())
	})
})

var _ = Describe("Schema lookups", func() {
	var sch *schema.Schema

	BeforeEach(func() {
		var err error

		sch, err = schema.Compile(&schema.Artifact{
			Options: map[string]schema.Option{
				"font-size":   {Type: "float"},
				"font-family": {Type: "font-list", Repeatable: true},
				"keybind":     {Type: "keybind"},
			},
			RepeatableKeys: []string{"keybind"},
		})
		Expect(err).NotTo(HaveOccurred())
	})

	It("finds declared options", func() {
		opt, ok := sch.Lookup("font-size")
		Expect(ok).To(BeTrue())
		Expect(opt.Type).To(Equal("float"))
	})

	It("misses undeclared options", func() {
		_, ok := sch.Lookup("bogus")
		Expect(ok).To(BeFalse())
	})

	Describe("IsRepeatable", func() {
		It("honors the per-option flag", func() {
			Expect(sch.IsRepeatable("font-family")).To(BeTrue())
		})

		It("honors the repeatableKeys list", func() {
			Expect(sch.IsRepeatable("keybind")).To(BeTrue())
		})

		It("is false for ordinary keys", func() {
			Expect(sch.IsRepeatable("font-size")).To(BeFalse())
		})

		It("is false for unknown keys", func() {
			Expect(sch.IsRepeatable("bogus")).To(BeFalse())
		})
	})

	It("returns sorted keys", func() {
		Expect(sch.Keys()).To(Equal([]string{"font-family", "font-size", "keybind"}))
	})
})
