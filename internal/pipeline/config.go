package pipeline

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jmylchreest/smash/internal/colour"
	"github.com/jmylchreest/smash/internal/image"
	"github.com/jmylchreest/smash/internal/kmeans"
)

const (
	// MinColours is the smallest palette that can be requested.
	MinColours = 1

	// MaxColours is the largest palette that can be requested. Refinement
	// compares every center with every other one, so work per iteration
	// grows with the square of the palette size.
	MaxColours = 4096
)

// Environment variables that override the built-in defaults.
const (
	EnvColorType = "SMASH_COLORTYPE"
	EnvSuffix    = "SMASH_SUFFIX"
	EnvColours   = "SMASH_COLOURS"
	EnvFormat    = "SMASH_FORMAT"
)

// Config holds the settings of a run.
type Config struct {
	// ColorType is the output colour format.
	ColorType colour.Type

	// Colours is the palette size.
	Colours int

	// Suffix is appended to each input stem to name its output.
	Suffix string

	// Encoding is the output file format.
	Encoding image.Encoding

	// MaxIterations caps refinement. Zero means no cap.
	MaxIterations int

	// Workers is the number of clusters reassigned concurrently.
	Workers int

	// PaletteOut, when set, receives the packed palette.
	PaletteOut string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		ColorType:     colour.TypeRGBA8,
		Colours:       kmeans.DefaultCenters,
		Suffix:        image.DefaultSuffix,
		Encoding:      image.EncodingPNG,
		MaxIterations: kmeans.DefaultMaxIterations,
		Workers:       1,
	}
}

// WithEnv returns c with any SMASH_* environment overrides applied.
// Malformed values are reported rather than ignored.
func (c Config) WithEnv() (Config, error) {
	if v := os.Getenv(EnvColorType); v != "" {
		t, err := colour.ParseType(v)
		if err != nil {
			return c, fmt.Errorf("invalid %s: %w", EnvColorType, err)
		}
		c.ColorType = t
	}
	if v, ok := os.LookupEnv(EnvSuffix); ok {
		c.Suffix = v
	}
	if v := os.Getenv(EnvColours); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("invalid %s: %w", EnvColours, err)
		}
		c.Colours = n
	}
	if v := os.Getenv(EnvFormat); v != "" {
		e, err := image.ParseEncoding(v)
		if err != nil {
			return c, fmt.Errorf("invalid %s: %w", EnvFormat, err)
		}
		c.Encoding = e
	}
	return c, nil
}

// Validate validates the configuration.
func (c Config) Validate() error {
	if !colour.IsValidType(c.ColorType) {
		return fmt.Errorf("unknown color type %s (valid types: %v)", c.ColorType, colour.ValidTypes())
	}
	if c.Colours < MinColours {
		return fmt.Errorf("colour count must be at least %d, got %d", MinColours, c.Colours)
	}
	if c.Colours > MaxColours {
		return fmt.Errorf("colour count too large: %d (maximum: %d)", c.Colours, MaxColours)
	}
	if _, err := image.ParseEncoding(string(c.Encoding)); err != nil {
		return err
	}
	if c.MaxIterations < 0 {
		return fmt.Errorf("max iterations cannot be negative, got %d", c.MaxIterations)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	return nil
}
