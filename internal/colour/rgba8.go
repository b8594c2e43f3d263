package colour

import "fmt"

// RGBA8 is the full precision output format: 8 bits per channel.
type RGBA8 struct {
	R, G, B, A uint8
}

// Components returns the channels normalised to [0,1].
func (c RGBA8) Components() Components {
	return Pixel(c).Components()
}

// Pixel returns the colour as an 8-bit pixel.
func (c RGBA8) Pixel() Pixel {
	return Pixel(c)
}

// String returns the colour as #rrggbbaa.
func (c RGBA8) String() string {
	return Pixel(c).String()
}

// RGBA8Format converts colours to RGBA8.
type RGBA8Format struct{}

// Type returns TypeRGBA8.
func (RGBA8Format) Type() Type {
	return TypeRGBA8
}

// Convert rounds each channel to 8 bits. Zero alpha yields (0,0,0,0).
func (RGBA8Format) Convert(c Components) (RGBA8, error) {
	if err := c.Validate(); err != nil {
		return RGBA8{}, fmt.Errorf("failed to convert to RGBA8: %w", err)
	}
	c = c.Clamp()

	a := uint8(scale(c.A, 255))
	if a == 0 {
		return RGBA8{}, nil
	}
	return RGBA8{
		R: uint8(scale(c.R, 255)),
		G: uint8(scale(c.G, 255)),
		B: uint8(scale(c.B, 255)),
		A: a,
	}, nil
}

// FromPixel is exact for RGBA8.
func (RGBA8Format) FromPixel(p Pixel) RGBA8 {
	return RGBA8(NewPixel(p.R, p.G, p.B, p.A))
}

// BinarySize is four bytes per colour.
func (RGBA8Format) BinarySize() int {
	return 4
}

// AppendBinary appends R, G, B, A.
func (RGBA8Format) AppendBinary(dst []byte, c RGBA8) []byte {
	return append(dst, c.R, c.G, c.B, c.A)
}
