// Spectral Preprocessing Tool - desktop GUI for smoothing spectral data.
package main

import (
	"os"

	"github.com/spectralworks/spectral-prep/internal/cli"
	"github.com/spectralworks/spectral-prep/internal/version"
)

// Version information, overridden by ldflags in release builds.
var (
	Version   = "v1.0.0"
	BuildTime = "unknown"
)

func main() {
	// Set version in the version package (canonical source for all packages)
	version.Version = Version
	version.BuildTime = BuildTime

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
