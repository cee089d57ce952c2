// Package platform maps the host OS identity onto the closed set of
// platform tags used by schema platform restrictions.
package platform

import "runtime"

// Platform is a platform tag.
type Platform string

const (
	// Linux is the Linux platform tag.
	Linux Platform = "linux"

	// MacOS is the macOS platform tag.
	MacOS Platform = "macos"

	// Windows is the Windows platform tag.
	Windows Platform = "windows"

	// Unknown means the host platform could not be determined. Platform
	// checks are suppressed for it.
	Unknown Platform = ""
)

// Detect maps the running OS onto a platform tag. Hosts outside the closed
// set yield Unknown.
func Detect() Platform {
	return FromGOOS(runtime.GOOS)
}

// FromGOOS maps a GOOS value onto a platform tag.
func FromGOOS(goos string) Platform {
	switch goos {
	case "linux":
		return Linux
	case "darwin":
		return MacOS
	case "windows":
		return Windows
	default:
		return Unknown
	}
}

// Parse returns the tag named by s, or Unknown when s is not a known tag.
func Parse(s string) Platform {
	switch Platform(s) {
	case Linux, MacOS, Windows:
		return Platform(s)
	default:
		return Unknown
	}
}

// Known reports whether the platform is a member of the closed tag set.
func (p Platform) Known() bool {
	return p != Unknown
}

// String returns the tag text.
func (p Platform) String() string {
	if p == Unknown {
		return "unknown"
	}

	return string(p)
}
