// Package combination treats the pixels found at one coordinate across
// several images as a single data point, so that one palette of colour tuples
// quantizes all of the images consistently.
package combination

import (
	"slices"
	"strings"

	"github.com/jmylchreest/smash/internal/colour"
)

// Input is an ordered tuple of pixels, one per image. It is comparable and
// can be used as a map key.
type Input struct {
	key string
}

// NewInput builds a tuple from pixels in image order.
func NewInput(pixels ...colour.Pixel) Input {
	b := make([]byte, 0, 4*len(pixels))
	for _, p := range pixels {
		p = colour.NewPixel(p.R, p.G, p.B, p.A)
		b = append(b, p.R, p.G, p.B, p.A)
	}
	return Input{key: string(b)}
}

// Len returns the number of images in the tuple.
func (in Input) Len() int {
	return len(in.key) / 4
}

// At returns the pixel of image i.
func (in Input) At(i int) colour.Pixel {
	k := in.key[4*i : 4*i+4]
	return colour.Pixel{R: k[0], G: k[1], B: k[2], A: k[3]}
}

// Pixels returns the tuple as a slice.
func (in Input) Pixels() []colour.Pixel {
	pixels := make([]colour.Pixel, in.Len())
	for i := range pixels {
		pixels[i] = in.At(i)
	}
	return pixels
}

// String lists the pixels of the tuple.
func (in Input) String() string {
	parts := make([]string, in.Len())
	for i := range parts {
		parts[i] = in.At(i).String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Output is a tuple of quantized colours, one per image.
type Output[O colour.Color] []O

// Pixels expands every colour of the tuple to 8 bits.
func (o Output[O]) Pixels() []colour.Pixel {
	pixels := make([]colour.Pixel, len(o))
	for i, c := range o {
		pixels[i] = c.Pixel()
	}
	return pixels
}

// Equal reports whether both tuples hold the same colours.
func (o Output[O]) Equal(other Output[O]) bool {
	return slices.Equal(o, other)
}
