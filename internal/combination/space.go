package combination

import (
	"fmt"

	"github.com/jmylchreest/smash/internal/colour"
	"github.com/jmylchreest/smash/internal/kmeans"
)

// Space clusters pixel tuples. Distances are summed over the images and
// means are taken independently per image.
type Space[O colour.Color] struct {
	inner colour.Space[O]
}

// NewSpace returns a tuple space that quantizes every image with format.
func NewSpace[O colour.Color](format colour.Format[O]) Space[O] {
	return Space[O]{inner: colour.NewSpace(format)}
}

// Distance sums the per-image distances.
func (s Space[O]) Distance(in Input, out Output[O]) float64 {
	var d float64
	for i, c := range out {
		d += s.inner.Distance(in.At(i), c)
	}
	return d
}

// NormalizedDistance sums the per-image normalized distances.
func (s Space[O]) NormalizedDistance(in Input, out Output[O]) float64 {
	var d float64
	for i, c := range out {
		d += s.inner.NormalizedDistance(in.At(i), c)
	}
	return d
}

// CenterDistance sums the per-image distances between two tuples.
func (s Space[O]) CenterDistance(a, b Output[O]) float64 {
	var d float64
	for i := range a {
		d += s.inner.CenterDistance(a[i], b[i])
	}
	return d
}

// AsOutput quantizes each pixel of the tuple.
func (s Space[O]) AsOutput(in Input) Output[O] {
	out := make(Output[O], in.Len())
	for i := range out {
		out[i] = s.inner.AsOutput(in.At(i))
	}
	return out
}

// Mean computes the weighted mean of each image slot on its own.
func (s Space[O]) Mean(groups []kmeans.Group[Input]) (Output[O], error) {
	if len(groups) == 0 {
		return nil, fmt.Errorf("failed to compute mean: %w", kmeans.ErrNoGroups)
	}

	width := groups[0].Value.Len()
	out := make(Output[O], width)
	for i := range width {
		mean := colour.MeanOf(func(yield func(colour.Pixel, uint32) bool) {
			for _, g := range groups {
				if !yield(g.Value.At(i), g.Count) {
					return
				}
			}
		})
		c, err := s.inner.Format().Convert(mean)
		if err != nil {
			return nil, fmt.Errorf("failed to compute mean of image %d: %w", i, err)
		}
		out[i] = c
	}
	return out, nil
}

// Equal reports whether two tuples are identical.
func (s Space[O]) Equal(a, b Output[O]) bool {
	return a.Equal(b)
}
