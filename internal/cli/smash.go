package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/smash/internal/colour"
	"github.com/jmylchreest/smash/internal/image"
	"github.com/jmylchreest/smash/internal/palette"
	"github.com/jmylchreest/smash/internal/pipeline"
)

var (
	// Quantization flags
	smashColorType     string
	smashSuffix        string
	smashColours       int
	smashFormat        string
	smashMaxIterations int
	smashWorkers       int
	smashPaletteOut    string
	smashReport        bool

	// flagEnv maps flags to the environment variables that set their defaults.
	flagEnv = map[string]string{
		"colortype": pipeline.EnvColorType,
		"suffix":    pipeline.EnvSuffix,
		"colours":   pipeline.EnvColours,
		"format":    pipeline.EnvFormat,
	}

	// envErr holds a malformed SMASH_* variable until the command runs.
	envErr error
)

// registerSmashFlags defines the quantization flags. Defaults come from the
// built-in configuration overridden by SMASH_* environment variables.
func registerSmashFlags(cmd *cobra.Command) {
	defaults, err := pipeline.DefaultConfig().WithEnv()
	envErr = err

	flags := cmd.Flags()
	flags.StringVarP(&smashColorType, "colortype", "c", defaults.ColorType.String(), "output color type (RGBA8, RGB5A3)")
	flags.StringVarP(&smashSuffix, "suffix", "s", defaults.Suffix, "suffix appended to output file names")
	flags.IntVarP(&smashColours, "colours", "k", defaults.Colours, fmt.Sprintf("palette size (%d-%d)", pipeline.MinColours, pipeline.MaxColours))
	flags.StringVarP(&smashFormat, "format", "f", string(defaults.Encoding), "output file format (png, bmp, tiff)")
	flags.IntVar(&smashMaxIterations, "max-iterations", defaults.MaxIterations, "refinement iteration limit (0 for none)")
	flags.IntVar(&smashWorkers, "workers", defaults.Workers, "clusters reassigned concurrently")
	flags.StringVar(&smashPaletteOut, "palette-out", "", "write the packed palette to a file (.gz, .xz and .zst are compressed)")
	flags.BoolVar(&smashReport, "report", false, "print the palette and error statistics")

	flags.VisitAll(func(f *pflag.Flag) {
		if env, ok := flagEnv[f.Name]; ok {
			f.Usage += fmt.Sprintf(" [$%s]", env)
		}
	})
}

// runSmash executes the root command.
func runSmash(cmd *cobra.Command, args []string) error {
	if envErr != nil {
		return envErr
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	logLevel, _ := cmd.Flags().GetString("log-level")
	stderr := cmd.ErrOrStderr()

	colorType, err := colour.ParseType(smashColorType)
	if err != nil {
		return err
	}
	encoding, err := image.ParseEncoding(smashFormat)
	if err != nil {
		return err
	}

	config := pipeline.Config{
		ColorType:     colorType,
		Colours:       smashColours,
		Suffix:        smashSuffix,
		Encoding:      encoding,
		MaxIterations: smashMaxIterations,
		Workers:       smashWorkers,
		PaletteOut:    smashPaletteOut,
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := newLogger(stderr, verbose, logLevel)
	if err != nil {
		return err
	}

	for _, path := range args {
		if err := image.ValidateImagePath(path); err != nil {
			return fmt.Errorf("invalid image path: %w", err)
		}
		if verbose {
			width, height, err := image.GetImageDimensions(path)
			if err != nil {
				return fmt.Errorf("invalid image path: %w", err)
			}
			fmt.Fprintf(stderr, "Input: %s (%dx%d)\n", path, width, height)
		}
	}

	p, err := pipeline.New(config, pipeline.WithLogger(logger))
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(stderr, "Quantizing %d image(s) to %d %s colours...\n", len(args), config.Colours, config.ColorType)
	}

	summary, err := p.Run(cmd.Context(), args)
	if err != nil {
		return err
	}

	if verbose {
		for i, out := range summary.Outputs {
			fmt.Fprintf(stderr, "Wrote %s -> %s\n", args[i], out)
		}
		if summary.PaletteFile != "" {
			fmt.Fprintf(stderr, "Wrote palette to %s\n", summary.PaletteFile)
		}
		if !summary.Report.Converged {
			fmt.Fprintf(stderr, "Refinement stopped after %d iterations without converging\n", summary.Report.Iterations)
		}
	}

	if smashReport {
		return writeReport(cmd.OutOrStdout(), summary)
	}
	return nil
}

// logLevels are the names accepted by --log-level.
var logLevels = []string{"trace", "debug", "info", "warn", "error", "off"}

// newLogger builds the hclog logger shared by the pipeline and the engine.
// An explicit log level wins over --verbose.
func newLogger(w io.Writer, verbose bool, level string) (hclog.Logger, error) {
	lvl := hclog.Warn
	if verbose {
		lvl = hclog.Debug
	}
	if level != "" {
		lvl = hclog.LevelFromString(level)
		if lvl == hclog.NoLevel {
			return nil, fmt.Errorf("invalid log level %s (valid levels: %s)", level, strings.Join(logLevels, ", "))
		}
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "smash",
		Output: w,
		Level:  lvl,
	}), nil
}

// writeReport prints the statistics followed by a preview of each palette.
func writeReport(w io.Writer, summary *pipeline.Summary) error {
	if err := summary.Report.Write(w); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	opts := palette.Options{Width: 80}
	if f, ok := w.(*os.File); ok {
		opts = palette.TerminalOptions(f)
	}

	for i, pal := range summary.Palettes {
		fmt.Fprintf(w, "\nPalette %d (%s):\n", i+1, summary.Outputs[i])
		if err := palette.Preview(w, pal, opts); err != nil {
			return fmt.Errorf("failed to write palette preview: %w", err)
		}
	}
	return nil
}
