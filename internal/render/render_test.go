package render_test

import (
	"bytes"
	"os"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/termtools/termlint/internal/render"
	"github.com/termtools/termlint/pkg/diag"
	"github.com/termtools/termlint/pkg/parser"
)

var _ = Describe("ColorEnabled", func() {
	BeforeEach(func() {
		GinkgoT().Setenv("NO_COLOR", "")
		GinkgoT().Setenv("CLICOLOR", "")
		GinkgoT().Setenv("TERM", "xterm-256color")

		Expect(os.Unsetenv("NO_COLOR")).To(Succeed())
		Expect(os.Unsetenv("CLICOLOR")).To(Succeed())
	})

	It("is on by default", func() {
		Expect(render.ColorEnabled(false)).To(BeTrue())
	})

	It("is off when the flag disables it", func() {
		Expect(render.ColorEnabled(true)).To(BeFalse())
	})

	It("honors NO_COLOR with any value", func() {
		GinkgoT().Setenv("NO_COLOR", "")
		Expect(render.ColorEnabled(false)).To(BeFalse())

		GinkgoT().Setenv("NO_COLOR", "1")
		Expect(render.ColorEnabled(false)).To(BeFalse())
	})

	It("honors CLICOLOR=0", func() {
		GinkgoT().Setenv("CLICOLOR", "0")
		Expect(render.ColorEnabled(false)).To(BeFalse())
	})

	It("honors TERM=dumb", func() {
		GinkgoT().Setenv("TERM", "dumb")
		Expect(render.ColorEnabled(false)).To(BeFalse())
	})
})

var _ = Describe("Renderer", func() {
	var (
		buf *bytes.Buffer
		r   *render.Renderer
	)

	BeforeEach(func() {
		buf = &bytes.Buffer{}
		r = render.NewRenderer(buf, render.NewTheme(false), 0)
	})

	It("prints location, severity, message, source, and a caret line", func() {
		lines := parser.ParseDocument("font-size = large\n")

		r.Print("test.conf", lines, []diag.Diagnostic{{
			Line:     0,
			Range:    diag.NewRange(12, 17),
			Message:  "expected a number",
			Severity: diag.SeverityWarning,
		}})

		out := buf.String()
		Expect(out).To(ContainSubstring("test.conf:1:13: warning: expected a number\n"))
		Expect(out).To(ContainSubstring("  font-size = large\n"))
		Expect(out).To(ContainSubstring("  " + "            ^^^^^" + "\n"))
	})

	It("skips the source echo for out-of-range lines", func() {
		r.Print("test.conf", nil, []diag.Diagnostic{{
			Line:     4,
			Range:    diag.NewRange(0, 1),
			Message:  "orphan finding",
			Severity: diag.SeverityError,
		}})

		Expect(buf.String()).To(Equal("test.conf:5:1: error: orphan finding\n"))
	})

	It("prints diagnostics in input order", func() {
		lines := parser.ParseDocument("a = 1\nb = 2\n")

		r.Print("x", lines, []diag.Diagnostic{
			{Line: 1, Range: diag.NewRange(0, 1), Message: "second", Severity: diag.SeverityError},
			{Line: 0, Range: diag.NewRange(0, 1), Message: "first", Severity: diag.SeverityError},
		})

		out := buf.String()
		Expect(bytes.Index(buf.Bytes(), []byte("second"))).To(BeNumerically("<", bytes.Index(buf.Bytes(), []byte("first"))))
		Expect(out).To(ContainSubstring("x:2:1"))
	})

	It("clamps spans that run past the line", func() {
		lines := parser.ParseDocument("ab = 1\n")

		r.Print("f", lines, []diag.Diagnostic{{
			Line:     0,
			Range:    diag.NewRange(0, 99),
			Message:  "whole line",
			Severity: diag.SeverityError,
		}})

		Expect(buf.String()).To(ContainSubstring("  ^^^^^^\n"))
	})

	It("clips the source echo and caret line to the renderer width", func() {
		long := "font-family = " + strings.Repeat("Menlo, ", 20) + "monospace"
		lines := parser.ParseDocument(long + "\n")

		narrow := render.NewRenderer(buf, render.NewTheme(false), 30)
		narrow.Print("f", lines, []diag.Diagnostic{{
			Line:     0,
			Range:    diag.NewRange(0, len(long)),
			Message:  "too long to show whole",
			Severity: diag.SeverityWarning,
		}})

		var echo, caret string

		for _, line := range strings.Split(buf.String(), "\n") {
			if strings.Contains(line, "font-family") {
				echo = line
			}

			if strings.Contains(line, "^") {
				caret = line
			}
		}

		Expect(echo).To(HaveSuffix("…"))
		Expect(len([]rune(echo))).To(BeNumerically("<=", 30))
		Expect(len(caret)).To(BeNumerically("<=", 30))
	})

	It("leaves output untouched when width is zero", func() {
		long := "title = " + strings.Repeat("x", 200)
		lines := parser.ParseDocument(long + "\n")

		r.Print("f", lines, []diag.Diagnostic{{
			Line:     0,
			Range:    diag.NewRange(0, 5),
			Message:  "m",
			Severity: diag.SeverityWarning,
		}})

		Expect(buf.String()).To(ContainSubstring(long))
	})

	It("underlines at least one column for empty spans", func() {
		lines := parser.ParseDocument("ab = 1\n")

		r.Print("f", lines, []diag.Diagnostic{{
			Line:     0,
			Range:    diag.NewRange(3, 3),
			Message:  "point finding",
			Severity: diag.SeverityInfo,
		}})

		Expect(buf.String()).To(ContainSubstring("   ^\n"))
	})
})

var _ = Describe("TerminalWidth", func() {
	It("falls back when the file is not a terminal", func() {
		f, err := os.CreateTemp(GinkgoT().TempDir(), "not-a-tty")
		Expect(err).NotTo(HaveOccurred())

		defer f.Close()

		Expect(render.TerminalWidth(f, 80)).To(Equal(80))
	})
})

var _ = Describe("NewTheme", func() {
	It("produces empty styles when color is off", func() {
		theme := render.NewTheme(false)
		Expect(theme.Error.Render("x")).To(Equal("x"))
		Expect(theme.Location.Render("x")).To(Equal("x"))
	})
})

var _ = Describe("Summary", func() {
	DescribeTable("formats counts",
		func(c diag.Count, expected string) {
			Expect(render.Summary(c)).To(Equal(expected))
		},
		Entry("nothing", diag.Count{}, "no problems"),
		Entry("one error", diag.Count{Errors: 1}, "1 error"),
		Entry("mixed", diag.Count{Errors: 2, Warnings: 1}, "2 errors, 1 warning"),
		Entry("info never pluralizes", diag.Count{Infos: 2}, "2 info"),
		Entry("all severities", diag.Count{Errors: 1, Warnings: 2, Infos: 3, Hints: 4}, "1 error, 2 warnings, 3 info, 4 hints"),
	)
})
