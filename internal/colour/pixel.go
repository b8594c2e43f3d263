// Package colour implements the colour codec: the 8-bit input representation,
// the quantized output formats, the distance metric used for clustering and
// the weighted mean used to reposition cluster centers.
package colour

import (
	"fmt"
	"image/color"
)

// Pixel is an exact 8-bit RGBA sample taken from a source image.
// Pixels are non-premultiplied. A pixel with zero alpha is always stored as
// (0,0,0,0) so that all fully transparent samples compare equal.
type Pixel struct {
	R, G, B, A uint8
}

// Transparent is the canonical fully transparent pixel.
var Transparent = Pixel{}

// NewPixel returns the canonical pixel for the given channels.
func NewPixel(r, g, b, a uint8) Pixel {
	if a == 0 {
		return Transparent
	}
	return Pixel{R: r, G: g, B: b, A: a}
}

// PixelFromColor converts any color.Color to a canonical Pixel by way of the
// non-premultiplied NRGBA model.
func PixelFromColor(c color.Color) Pixel {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return NewPixel(n.R, n.G, n.B, n.A)
}

// NRGBA returns the pixel as a color.NRGBA.
func (p Pixel) NRGBA() color.NRGBA {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}
}

// Components returns the channels normalised to [0,1].
func (p Pixel) Components() Components {
	return Components{
		R: float64(p.R) / 255,
		G: float64(p.G) / 255,
		B: float64(p.B) / 255,
		A: float64(p.A) / 255,
	}
}

// Pixel returns p itself, so Pixel satisfies the same accessor as the
// output formats.
func (p Pixel) Pixel() Pixel {
	return p
}

// String returns the pixel as #rrggbbaa.
func (p Pixel) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", p.R, p.G, p.B, p.A)
}
