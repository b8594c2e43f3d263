package kmeans

import "math"

// vec is a point in a plain Euclidean space. Inputs and outputs share the
// type, so the quantization floor is always zero.
type vec [3]float64

type euclid struct{}

func (euclid) Distance(in, out vec) float64 {
	var d float64
	for i := range in {
		diff := in[i] - out[i]
		d += diff * diff
	}
	return d
}

func (s euclid) NormalizedDistance(in, out vec) float64 { return s.Distance(in, out) }
func (s euclid) CenterDistance(a, b vec) float64 { return s.Distance(a, b) }
func (euclid) AsOutput(in vec) vec { return in }
func (euclid) Equal(a, b vec) bool { return a == b }

func (euclid) Mean(groups []Group[vec]) (vec, error) {
	var sum vec
	var total float64
	for _, g := range groups {
		w := float64(g.Count)
		for i := range sum {
			sum[i] += g.Value[i] * w
		}
		total += w
	}
	for i := range sum {
		sum[i] /= total
	}
	return sum, nil
}

// snap is a one dimensional space whose outputs are whole numbers, so
// several inputs share one output and have a non-zero quantization floor.
type snap struct{}

func (snap) Distance(in, out float64) float64 { return (in - out) * (in - out) }

func (s snap) NormalizedDistance(in, out float64) float64 {
	d := s.Distance(in, out) - s.Distance(in, s.AsOutput(in))
	return math.Max(0, d)
}

func (s snap) CenterDistance(a, b float64) float64 { return s.Distance(a, b) }
func (snap) AsOutput(in float64) float64 { return math.Round(in) }
func (snap) Equal(a, b float64) bool { return a == b }

func (snap) Mean(groups []Group[float64]) (float64, error) {
	var sum, total float64
	for _, g := range groups {
		sum += g.Value * float64(g.Count)
		total += float64(g.Count)
	}
	return math.Round(sum / total), nil
}
