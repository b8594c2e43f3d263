package colour

import (
	"errors"
	"math"
)

var (
	// ErrInvalidComponents is returned when a component is NaN.
	ErrInvalidComponents = errors.New("colour components must not be NaN")

	// ErrAlphaLevel is returned when an alpha value does not round to a
	// representable level of the target format.
	ErrAlphaLevel = errors.New("alpha level out of range")
)

// Components holds the four channels of a colour as reals in [0,1].
type Components struct {
	R, G, B, A float64
}

// Validate reports ErrInvalidComponents if any channel is NaN.
func (c Components) Validate() error {
	if math.IsNaN(c.R) || math.IsNaN(c.G) || math.IsNaN(c.B) || math.IsNaN(c.A) {
		return ErrInvalidComponents
	}
	return nil
}

// Clamp limits every channel to [0,1].
func (c Components) Clamp() Components {
	return Components{
		R: clamp01(c.R),
		G: clamp01(c.G),
		B: clamp01(c.B),
		A: clamp01(c.A),
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// scale rounds v*maxLevel to the nearest integer level, half away from zero.
func scale(v float64, maxLevel float64) uint16 {
	return uint16(math.Round(v * maxLevel))
}

// Distance is the clustering metric between two colours: the squared RGB
// distance premultiplied by both alphas, plus three times the squared alpha
// difference. Fully transparent colours therefore differ only in alpha.
func Distance(a, b Components) float64 {
	dr := a.R - b.R
	dg := a.G - b.G
	db := a.B - b.B
	da := a.A - b.A

	opaque := dr*dr + dg*dg + db*db
	return opaque*a.A*b.A + 3*da*da
}
