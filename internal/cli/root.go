// Package cli provides the command-line interface for smash.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/smash/internal/version"
)

// Execute builds the root command and runs it with ctx.
// This is called by main.main().
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd creates the smash command with all flags and subcommands
// registered. Each call returns an independent command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "smash [flags] FILE...",
		Short: "Reduce the colours of images to a fixed palette",
		Long: `Smash quantizes images to a fixed number of colours for texture formats
that use a colour lookup table.

Each FILE is written next to the original with a suffix appended to its name.
When several files are given they are quantized together: pixels at the same
coordinate share a palette entry, so every image can be drawn with the same
palette index map. All files must then have the same dimensions.

Supported input formats: PNG, JPEG, GIF, WebP, BMP, TIFF

Examples:
  # Reduce a texture to 256 RGBA8 colours
  smash wall.png

  # Reduce to 16 colours in the RGB5A3 format and keep the palette
  smash -c RGB5A3 -k 16 --palette-out wall.tlut wall.png

  # Quantize a diffuse map and its mask with one shared palette
  smash -k 64 diffuse.png mask.png

  # Show the palette and error statistics
  smash --report -k 32 wall.png`,
		Version:      version.Short(),
		SilenceUsage: true,
		Args:         cobra.MinimumNArgs(1),
		RunE:         runSmash,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().String("log-level", "", "log level (trace, debug, info, warn, error)")
	registerSmashFlags(rootCmd)

	rootCmd.SetVersionTemplate(version.String() + "\n")
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
