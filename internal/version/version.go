// Package version carries build metadata injected via -ldflags.
package version

var (
	// Version is the semantic version of this build.
	Version = "2.0.0"
	// Commit is the short git commit hash.
	Commit = "dev"
	// BuildDate is the RFC3339 build timestamp.
	BuildDate = ""
)
