package palette

import (
	"fmt"
	"image/color"
	"io"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/jmylchreest/smash/internal/colour"
)

// Sampler accumulates the error of every quantized colour, weighted by how
// many pixels carry it.
type Sampler struct {
	errors  []float64
	weights []float64

	deltaE       []float64
	deltaWeights []float64
}

// Add records that count pixels of colour in were replaced by out, with
// distance being the quantization metric between them.
func (s *Sampler) Add(in, out colour.Pixel, distance float64, count uint32) {
	s.errors = append(s.errors, distance)
	s.weights = append(s.weights, float64(count))

	// Perceptual difference is only meaningful for visible colours.
	if in.A == 0 || out.A == 0 {
		return
	}
	a, okA := colorful.MakeColor(color.NRGBA{R: in.R, G: in.G, B: in.B, A: 0xFF})
	b, okB := colorful.MakeColor(color.NRGBA{R: out.R, G: out.G, B: out.B, A: 0xFF})
	if !okA || !okB {
		return
	}
	s.deltaE = append(s.deltaE, a.DistanceLab(b))
	s.deltaWeights = append(s.deltaWeights, float64(count))
}

// Stats summarises the recorded samples.
func (s *Sampler) Stats() Stats {
	st := Stats{Colours: len(s.errors)}
	if len(s.errors) == 0 {
		return st
	}

	st.Pixels = int(floats.Sum(s.weights))
	st.MeanError, st.StdDevError = stat.PopMeanStdDev(s.errors, s.weights)
	st.MaxError = floats.Max(s.errors)
	if len(s.deltaE) > 0 {
		st.MeanDeltaE = stat.Mean(s.deltaE, s.deltaWeights)
		st.MaxDeltaE = floats.Max(s.deltaE)
	}
	return st
}

// Stats describes how far quantized pixels moved from their originals.
type Stats struct {
	// Colours is the number of distinct input colours.
	Colours int

	// Pixels is the number of pixels covered.
	Pixels int

	// MeanError, StdDevError and MaxError use the quantization metric and
	// are weighted by pixel count.
	MeanError   float64
	StdDevError float64
	MaxError    float64

	// MeanDeltaE and MaxDeltaE are CIE76 differences of visible pixels.
	MeanDeltaE float64
	MaxDeltaE  float64
}

// Report is everything printed by the command line report.
type Report struct {
	ColorType   colour.Type
	Images      int
	PaletteSize int
	Iterations  int
	Converged   bool
	Stats       Stats
}

// Write renders the report as a two column table.
func (r Report) Write(w io.Writer) error {
	t := NewTable([]string{"Metric", "Value"})
	t.SetAlignRight(1)
	t.AddRow("color type", r.ColorType.String())
	t.AddRow("images", strconv.Itoa(r.Images))
	t.AddRow("pixels", strconv.Itoa(r.Stats.Pixels))
	t.AddRow("input colours", strconv.Itoa(r.Stats.Colours))
	t.AddRow("palette size", strconv.Itoa(r.PaletteSize))
	t.AddRow("iterations", strconv.Itoa(r.Iterations))
	t.AddRow("converged", strconv.FormatBool(r.Converged))
	t.AddRow("mean error", formatFloat(r.Stats.MeanError))
	t.AddRow("error std dev", formatFloat(r.Stats.StdDevError))
	t.AddRow("max error", formatFloat(r.Stats.MaxError))
	t.AddRow("mean delta E", fmt.Sprintf("%.2f", r.Stats.MeanDeltaE))
	t.AddRow("max delta E", fmt.Sprintf("%.2f", r.Stats.MaxDeltaE))

	_, err := io.WriteString(w, t.Render())
	return err
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
