// Package version exposes build metadata set through -ldflags.
package version

import "fmt"

// Overridden at release time with -ldflags "-X".
var (
	Version = "v0.1.0"
	Commit  = "none"
	Date    = "unknown"
)

// GetVersion returns the release version, e.g. "v0.1.0".
func GetVersion() string {
	return Version
}

// GetFullVersion returns the version with commit and build date.
func GetFullVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
