// Package version carries build metadata injected at link time.
package version

// Set via -ldflags at build time; the defaults identify a source build.
var (
	// Version is the semantic version of the binary.
	Version = "dev"

	// Commit is the Git hash the binary was built from.
	Commit = "<unknown>"

	// Date is the build timestamp.
	Date = "<unknown>"
)
