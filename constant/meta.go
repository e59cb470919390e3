// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

import _ "embed"

const (
	// App is the canonical application identifier used for filesystem paths and CLI branding.
	App = "aizen"

	// Version is the current application semantic version string.
	Version = "0.3.1"

	// UserAgent is the default HTTP User-Agent string sent to the remote anime API.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Build metadata, overridden through -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// Platform names as reported by runtime.GOOS.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
	Android = "android"
)

// Banner is the ASCII art shown on top of the root command help.
//
//go:embed ascii.txt
var Banner string
