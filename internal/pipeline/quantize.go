package pipeline

import (
	"fmt"
	stdimage "image"
	"iter"

	"github.com/jmylchreest/smash/internal/colour"
	"github.com/jmylchreest/smash/internal/combination"
	"github.com/jmylchreest/smash/internal/kmeans"
	"github.com/jmylchreest/smash/internal/palette"
)

// Map is the quantization map of a single image: every distinct pixel and
// the colour it was quantized to.
type Map[O colour.Color] map[colour.Pixel]O

// quantized is the format independent outcome of quantize.
type quantized struct {
	images      []*stdimage.NRGBA
	palettes    [][]colour.Pixel
	packed      []byte
	paletteSize int
	iterations  int
	converged   bool
	stats       palette.Stats
}

func (p *Pipeline) engineOptions() []kmeans.Option {
	return []kmeans.Option{
		kmeans.WithLogger(p.logger.Named("kmeans")),
		kmeans.WithMaxIterations(p.cfg.MaxIterations),
		kmeans.WithWorkers(p.cfg.Workers),
	}
}

// quantize reduces images to a shared palette in format. A single image is
// clustered by pixel; several images are clustered by the tuple of pixels
// found at each coordinate.
func quantize[O colour.Color](p *Pipeline, format colour.Format[O], images []*stdimage.NRGBA) (*quantized, error) {
	if len(images) == 1 {
		return quantizeSingle(p, format, images[0])
	}
	return quantizeJoint(p, format, images)
}

func quantizeSingle[O colour.Color](p *Pipeline, format colour.Format[O], img *stdimage.NRGBA) (*quantized, error) {
	space := colour.NewSpace(format)
	groups := kmeans.Collect(pixels(img))
	p.logger.Debug("grouped pixels", "distinct", len(groups), "pixels", kmeans.TotalCount(groups))

	engine := kmeans.New[colour.Pixel, O](space, p.engineOptions()...)
	result, err := engine.Run(groups, p.cfg.Colours)
	if err != nil {
		return nil, fmt.Errorf("failed to quantize image: %w", err)
	}

	var sampler palette.Sampler
	m := make(Map[O], len(groups))
	result.Each(func(g kmeans.Group[colour.Pixel], center O) {
		m[g.Value] = center
		sampler.Add(g.Value, center.Pixel(), space.Distance(g.Value, center), g.Count)
	})

	out, err := Apply(img, m)
	if err != nil {
		return nil, err
	}

	return &quantized{
		images:      []*stdimage.NRGBA{out},
		palettes:    [][]colour.Pixel{palette.Pixels(result.Centers)},
		packed:      palette.Encode(format, result.Centers),
		paletteSize: result.Len(),
		iterations:  result.Iterations,
		converged:   result.Converged,
		stats:       sampler.Stats(),
	}, nil
}

func quantizeJoint[O colour.Color](p *Pipeline, format colour.Format[O], images []*stdimage.NRGBA) (*quantized, error) {
	space := combination.NewSpace(format)
	groups := kmeans.Collect(tuples(images))
	p.logger.Debug("grouped pixel tuples", "images", len(images), "distinct", len(groups), "pixels", kmeans.TotalCount(groups))

	engine := kmeans.New[combination.Input, combination.Output[O]](space, p.engineOptions()...)
	result, err := engine.Run(groups, p.cfg.Colours)
	if err != nil {
		return nil, fmt.Errorf("failed to quantize images: %w", err)
	}

	var sampler palette.Sampler
	result.Each(func(g kmeans.Group[combination.Input], center combination.Output[O]) {
		for i, c := range center {
			in := g.Value.At(i)
			sampler.Add(in, c.Pixel(), colour.Distance(in.Components(), c.Components()), g.Count)
		}
	})

	m := combination.NewMap(result)
	out, err := ApplyJoint(images, m)
	if err != nil {
		return nil, err
	}

	// The sampler sees one sample per image and tuple; report distinct
	// tuples as the input colours.
	stats := sampler.Stats()
	stats.Colours = len(groups)

	palettes := m.Palettes()
	expanded := make([][]colour.Pixel, len(palettes))
	for i, pal := range palettes {
		expanded[i] = palette.Pixels(pal)
	}

	return &quantized{
		images:      out,
		palettes:    expanded,
		packed:      palette.Encode(format, palettes...),
		paletteSize: result.Len(),
		iterations:  result.Iterations,
		converged:   result.Converged,
		stats:       stats,
	}, nil
}

// Apply rewrites every pixel of img through m.
func Apply[O colour.Color](img *stdimage.NRGBA, m Map[O]) (*stdimage.NRGBA, error) {
	bounds := img.Bounds()
	out := stdimage.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			px := pixelAt(img, x, y)
			c, ok := m[px]
			if !ok {
				return nil, fmt.Errorf("%w %s at (%d, %d)", ErrMissingMapping, px, x, y)
			}
			out.SetNRGBA(x, y, c.Pixel().NRGBA())
		}
	}
	return out, nil
}

// ApplyJoint rewrites images through the joint map m, using one unzipped map
// per image.
func ApplyJoint[O colour.Color](images []*stdimage.NRGBA, m *combination.Map[O]) ([]*stdimage.NRGBA, error) {
	if m.Width() != len(images) {
		return nil, fmt.Errorf("map covers %d images, got %d", m.Width(), len(images))
	}

	maps := m.Unzip()
	bounds := images[0].Bounds()
	out := make([]*stdimage.NRGBA, len(images))
	for i := range out {
		out[i] = stdimage.NewNRGBA(bounds)
	}

	row := make([]colour.Pixel, len(images))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			for i, img := range images {
				row[i] = pixelAt(img, x, y)
			}
			key := combination.NewInput(row...)
			for i, per := range maps {
				c, ok := per[key]
				if !ok {
					return nil, fmt.Errorf("%w %s in image %d at (%d, %d)", ErrMissingMapping, key, i, x, y)
				}
				out[i].SetNRGBA(x, y, c.Pixel().NRGBA())
			}
		}
	}
	return out, nil
}

func pixelAt(img *stdimage.NRGBA, x, y int) colour.Pixel {
	c := img.NRGBAAt(x, y)
	return colour.NewPixel(c.R, c.G, c.B, c.A)
}

// pixels yields every pixel of img in row order.
func pixels(img *stdimage.NRGBA) iter.Seq[colour.Pixel] {
	return func(yield func(colour.Pixel) bool) {
		bounds := img.Bounds()
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				if !yield(pixelAt(img, x, y)) {
					return
				}
			}
		}
	}
}

// tuples yields the pixels of all images at each coordinate in row order.
// The images must share their bounds.
func tuples(images []*stdimage.NRGBA) iter.Seq[combination.Input] {
	return func(yield func(combination.Input) bool) {
		bounds := images[0].Bounds()
		row := make([]colour.Pixel, len(images))
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				for i, img := range images {
					row[i] = pixelAt(img, x, y)
				}
				if !yield(combination.NewInput(row...)) {
					return
				}
			}
		}
	}
}
