// Package version exposes build metadata injected at compile time.
// The variables are meant to be overridden with -ldflags during release builds,
// for example: -X github.com/wpmvc/helpers/internal/version.Version=1.2.3.
package version

// Build metadata populated via ldflags at release time.
//
//nolint:gochecknoglobals // These variables are set at build time via ldflags.
var (
	// Version is the semantic version of the binary.
	Version = "0.1.0"

	// Commit is the VCS commit hash the binary was built from.
	Commit = "none"

	// BuildTime is the timestamp of the build.
	BuildTime = "unknown"
)

// Short returns only the version number.
func Short() string {
	return Version
}

// Full returns the complete build description.
func Full() string {
	return "version: " + Version + ", commit: " + Commit + ", built at: " + BuildTime
}
