// Package pipeline loads images, quantizes them with a shared palette and
// writes the results.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	stdimage "image"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/smash/internal/colour"
	"github.com/jmylchreest/smash/internal/image"
	"github.com/jmylchreest/smash/internal/palette"
)

var (
	// ErrNoInputs is returned when Run is given no files.
	ErrNoInputs = errors.New("no input files")

	// ErrDimensionMismatch is returned when images quantized together do
	// not share their dimensions.
	ErrDimensionMismatch = errors.New("images have different dimensions")

	// ErrOverwriteInput is returned when an output path would replace one of
	// the inputs, for example with an empty suffix and an unchanged format.
	ErrOverwriteInput = errors.New("output would overwrite input")

	// ErrMissingMapping means a pixel was not covered by the quantization
	// map. It indicates a bug rather than bad input.
	ErrMissingMapping = errors.New("no quantized colour for pixel")
)

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger hclog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithLoader replaces the filesystem image loader.
func WithLoader(loader image.Loader) Option {
	return func(p *Pipeline) {
		p.loader = loader
	}
}

// Pipeline runs quantization over image files.
type Pipeline struct {
	cfg    Config
	loader image.Loader
	logger hclog.Logger
}

// New validates cfg and creates a Pipeline.
func New(cfg Config, opts ...Option) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	p := &Pipeline{
		cfg:    cfg,
		loader: image.NewFileLoader(),
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Summary describes a finished run.
type Summary struct {
	// Outputs holds the written file for each input, in input order.
	Outputs []string

	// Palettes holds one expanded palette per input. Entry j of every
	// palette belongs to the same cluster.
	Palettes [][]colour.Pixel

	// PaletteFile is the packed palette path, empty when none was written.
	PaletteFile string

	// Report holds quality statistics.
	Report palette.Report
}

// Run quantizes inputs jointly and writes one output per input.
func (p *Pipeline) Run(ctx context.Context, inputs []string) (*Summary, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInputs
	}

	outputs, err := p.outputPaths(inputs)
	if err != nil {
		return nil, err
	}

	images, err := image.LoadAll(ctx, p.loader, inputs)
	if err != nil {
		return nil, err
	}
	if err := sameDimensions(inputs, images); err != nil {
		return nil, err
	}
	bounds := images[0].Bounds()
	p.logger.Debug("loaded images", "count", len(images), "width", bounds.Dx(), "height", bounds.Dy())

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var q *quantized
	switch p.cfg.ColorType {
	case colour.TypeRGBA8:
		q, err = quantize[colour.RGBA8](p, colour.RGBA8Format{}, images)
	case colour.TypeRGB5A3:
		q, err = quantize[colour.RGB5A3](p, colour.RGB5A3Format{}, images)
	default:
		err = fmt.Errorf("unknown color type %s (valid types: %v)", p.cfg.ColorType, colour.ValidTypes())
	}
	if err != nil {
		return nil, err
	}

	if err := image.SaveAll(ctx, q.images, outputs, p.cfg.Encoding); err != nil {
		return nil, err
	}
	p.logger.Debug("saved images", "outputs", outputs)

	summary := &Summary{
		Outputs:  outputs,
		Palettes: q.palettes,
		Report: palette.Report{
			ColorType:   p.cfg.ColorType,
			Images:      len(images),
			PaletteSize: q.paletteSize,
			Iterations:  q.iterations,
			Converged:   q.converged,
			Stats:       q.stats,
		},
	}

	if p.cfg.PaletteOut != "" {
		if err := palette.WriteFile(p.cfg.PaletteOut, q.packed); err != nil {
			return nil, err
		}
		summary.PaletteFile = p.cfg.PaletteOut
		p.logger.Debug("wrote palette", "path", p.cfg.PaletteOut, "bytes", len(q.packed))
	}

	return summary, nil
}

// outputPaths derives one output per input and rejects any that would
// replace an input file.
func (p *Pipeline) outputPaths(inputs []string) ([]string, error) {
	sources := make(map[string]bool, len(inputs))
	for _, in := range inputs {
		sources[filepath.Clean(in)] = true
	}

	outputs := make([]string, len(inputs))
	for i, in := range inputs {
		out := image.OutputPath(in, p.cfg.Suffix, p.cfg.Encoding)
		if sources[filepath.Clean(out)] {
			return nil, fmt.Errorf("%w: %s (use a non-empty suffix or another format)", ErrOverwriteInput, out)
		}
		outputs[i] = out
	}
	return outputs, nil
}

func sameDimensions(paths []string, images []*stdimage.NRGBA) error {
	want := images[0].Bounds().Size()
	for i, img := range images[1:] {
		if got := img.Bounds().Size(); got != want {
			return fmt.Errorf("%w: %s is %dx%d but %s is %dx%d", ErrDimensionMismatch,
				paths[0], want.X, want.Y, paths[i+1], got.X, got.Y)
		}
	}
	return nil
}
