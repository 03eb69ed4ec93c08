// Package cli provides the process entry point. The tool is GUI-only:
// running the binary opens the main window. Cobra supplies the standard
// --help/--version process-startup surface and nothing else.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/spectralworks/spectral-prep/internal/gui"
	"github.com/spectralworks/spectral-prep/internal/version"
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "spectral-prep",
		Short: "Spectral Preprocessing Tool",
		Long: `Spectral Preprocessing Tool ` + version.Version + ` - Built: ` + version.BuildTime + `

Loads tabular spectral data (wavelength plus intensity columns) from an
Excel spreadsheet, displays it as a table or line plot, applies a
Savitzky-Golay smoothing filter with adjustable window size and polynomial
order, and saves the smoothed result to a new spreadsheet.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return gui.Launch()
		},
	}

	rootCmd.Version = version.Version + " (" + version.BuildTime + ")"
	return rootCmd
}

// Execute runs the application.
func Execute() error {
	return NewRootCmd().Execute()
}
