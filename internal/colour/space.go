package colour

import (
	"fmt"

	"github.com/jmylchreest/smash/internal/kmeans"
)

// Space adapts an output Format to the clustering engine, with single
// pixels as the data points.
type Space[O Color] struct {
	format Format[O]
}

// NewSpace returns a clustering space that quantizes pixels with format.
func NewSpace[O Color](format Format[O]) Space[O] {
	return Space[O]{format: format}
}

// Format returns the output format of the space.
func (s Space[O]) Format() Format[O] {
	return s.format
}

// Distance is the metric distance from an input pixel to an output colour.
func (s Space[O]) Distance(in Pixel, out O) float64 {
	return Distance(in.Components(), out.Components())
}

// NormalizedDistance subtracts the error the format cannot avoid for in,
// leaving only the error caused by choosing out over in's own conversion.
func (s Space[O]) NormalizedDistance(in Pixel, out O) float64 {
	c := in.Components()
	floor := Distance(c, s.format.FromPixel(in).Components())
	d := Distance(c, out.Components())
	if d < floor {
		return 0
	}
	return d - floor
}

// CenterDistance is the metric distance between two output colours.
func (s Space[O]) CenterDistance(a, b O) float64 {
	return Distance(a.Components(), b.Components())
}

// AsOutput converts an input pixel to the format.
func (s Space[O]) AsOutput(in Pixel) O {
	return s.format.FromPixel(in)
}

// Mean converts the weighted mean of groups to the format.
func (s Space[O]) Mean(groups []kmeans.Group[Pixel]) (O, error) {
	c := MeanOf(func(yield func(Pixel, uint32) bool) {
		for _, g := range groups {
			if !yield(g.Value, g.Count) {
				return
			}
		}
	})
	out, err := s.format.Convert(c)
	if err != nil {
		var zero O
		return zero, fmt.Errorf("failed to convert mean of %d groups: %w", len(groups), err)
	}
	return out, nil
}

// Equal reports whether two output colours are identical.
func (s Space[O]) Equal(a, b O) bool {
	return a == b
}
