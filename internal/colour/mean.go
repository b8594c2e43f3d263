package colour

import "iter"

// MeanOf returns the weighted mean of a set of pixels, where each pixel is
// paired with its occurrence count. RGB is weighted by count times alpha so
// that nearly transparent pixels barely move the result; alpha is weighted by
// count alone. If every pixel is transparent the mean is (0,0,0,0).
func MeanOf(samples iter.Seq2[Pixel, uint32]) Components {
	var rSum, gSum, bSum, aSum float64
	var total uint64

	for p, count := range samples {
		c := p.Components()
		weightedA := c.A * float64(count)

		rSum += c.R * weightedA
		gSum += c.G * weightedA
		bSum += c.B * weightedA
		aSum += weightedA
		total += uint64(count)
	}

	if aSum <= 0 {
		return Components{}
	}
	return Components{
		R: rSum / aSum,
		G: gSum / aSum,
		B: bSum / aSum,
		A: aSum / float64(total),
	}
}
