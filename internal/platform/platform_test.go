package platform_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/termtools/termlint/internal/platform"
)

var _ = Describe("FromGOOS", func() {
	DescribeTable("maps GOOS values onto platform tags",
		func(goos string, expected platform.Platform) {
			Expect(platform.FromGOOS(goos)).To(Equal(expected))
		},
		Entry("linux", "linux", platform.Linux),
		Entry("darwin maps to macos", "darwin", platform.MacOS),
		Entry("windows", "windows", platform.Windows),
		Entry("freebsd is outside the tag set", "freebsd", platform.Unknown),
		Entry("empty string", "", platform.Unknown),
	)
})

var _ = Describe("Parse", func() {
	It("accepts the tag names themselves", func() {
		Expect(platform.Parse("linux")).To(Equal(platform.Linux))
		Expect(platform.Parse("macos")).To(Equal(platform.MacOS))
		Expect(platform.Parse("windows")).To(Equal(platform.Windows))
	})

	It("returns Unknown for anything else", func() {
		Expect(platform.Parse("darwin")).To(Equal(platform.Unknown))
		Expect(platform.Parse("Linux")).To(Equal(platform.Unknown))
		Expect(platform.Parse("")).To(Equal(platform.Unknown))
	})
})

var _ = Describe("Platform", func() {
	It("knows which tags are members of the closed set", func() {
		Expect(platform.Linux.Known()).To(BeTrue())
		Expect(platform.Unknown.Known()).To(BeFalse())
	})

	It("renders Unknown as a readable name", func() {
		Expect(platform.Unknown.String()).To(Equal("unknown"))
		Expect(platform.MacOS.String()).To(Equal("macos"))
	})
})

var _ = Describe("Detect", func() {
	It("returns a stable tag for the test host", func() {
		Expect(platform.Detect()).To(Equal(platform.Detect()))
	})
})
