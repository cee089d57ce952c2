// Package validator decides whether a raw config value satisfies its
// option's declared type. It is pure: identical inputs always yield
// identical results, and nothing here performs I/O.
package validator

import (
	"fmt"

	"github.com/termtools/termlint/pkg/diag"
)

// Result represents the outcome of a single value check.
type Result struct {
	// Valid indicates whether the value satisfies the declared type.
	Valid bool

	// Message is the human-readable failure description. Set whenever
	// Valid is false.
	Message string

	// Severity tags the failure. SeverityUnknown means the consumer's
	// default (warning) applies.
	Severity diag.Severity
}

// Pass creates a passing result.
func Pass() *Result {
	return &Result{Valid: true}
}

// Fail creates a failing result at error severity, the default for
// structural type mismatches.
func Fail(format string, args ...any) *Result {
	return &Result{
		Valid:    false,
		Message:  fmt.Sprintf(format, args...),
		Severity: diag.SeverityError,
	}
}

// FailWith creates a failing result with an explicit severity.
func FailWith(severity diag.Severity, format string, args ...any) *Result {
	return &Result{
		Valid:    false,
		Message:  fmt.Sprintf(format, args...),
		Severity: severity,
	}
}
