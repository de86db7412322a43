// Package version provides version information for the dialogchain CLI.
//
// Overview:
//   - Responsibility: CLI version metadata (version, commit, build time)
//   - Key Types: Version variables and formatting functions
//   - Concurrency Model: Immutable after build, safe for concurrent use
//   - Error Semantics: No errors (all constants)
//   - Performance Notes: Zero-cost constants
package version

import (
	"fmt"
	"runtime"
)

// Version is the CLI version. Set by the release pipeline via ldflags.
var Version = "v0.1.0-dev"

// Commit is the git commit hash. Set by the release pipeline via ldflags.
var Commit = "unknown"

// BuildTime is the build timestamp in RFC3339 format. Set by the release
// pipeline via ldflags.
var BuildTime = "unknown"

// GetVersionString returns the single-line version string.
//
// Returns:
//   - string: Formatted version string
func GetVersionString() string {
	return fmt.Sprintf("dialogchain version %s (commit %s, built %s)", Version, Commit, BuildTime)
}

// GetFullVersionInfo returns detailed multi-line version information.
//
// Returns:
//   - string: Version, commit, build time, and Go runtime details
func GetFullVersionInfo() string {
	return fmt.Sprintf(`dialogchain version %s (commit %s, built %s)
go version %s (%s/%s)`,
		Version, Commit, BuildTime,
		runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
