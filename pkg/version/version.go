// Package version exposes the build version of the quoteflow binary.
package version

// Version is overridden at build time via -ldflags.
//
//nolint:gochecknoglobals // Set by the linker at build time.
var Version = "dev"

// GetVersion returns the current build version string.
func GetVersion() string {
	return Version
}
