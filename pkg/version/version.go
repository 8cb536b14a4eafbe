// Package version exposes build metadata injected at link time via
// -ldflags "-X github.com/uistudio/figgen/pkg/version.Version=v1.2.3 ...".
package version

// Build metadata. Defaults identify local development builds.
var (
	// Version is the semantic release version.
	Version = "dev"

	// Commit is the git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)
