package colour

import (
	"encoding/binary"
	"fmt"
)

// RGB5A3 is the packed 16-bit texture format used by GameCube and Wii
// hardware. When bit 15 is set the colour is opaque and stores 5 bits per RGB
// channel (1rrrrrgggggbbbbb). Otherwise it stores a 3-bit alpha level and 4
// bits per RGB channel (0aaarrrrggggbbbb).
type RGB5A3 uint16

const (
	rgb5A3OpaqueBit = 1 << 15
	alphaLevels     = 7
)

// IsOpaque reports whether the colour uses the 5-bit opaque layout.
func (c RGB5A3) IsOpaque() bool {
	return c&rgb5A3OpaqueBit != 0
}

// R5 returns the 5-bit red level of an opaque colour.
func (c RGB5A3) R5() uint8 { return uint8(c>>10) & 0x1F }

// G5 returns the 5-bit green level of an opaque colour.
func (c RGB5A3) G5() uint8 { return uint8(c>>5) & 0x1F }

// B5 returns the 5-bit blue level of an opaque colour.
func (c RGB5A3) B5() uint8 { return uint8(c) & 0x1F }

// A3 returns the 3-bit alpha level of a translucent colour.
func (c RGB5A3) A3() uint8 { return uint8(c>>12) & 0x07 }

// R4 returns the 4-bit red level of a translucent colour.
func (c RGB5A3) R4() uint8 { return uint8(c>>8) & 0x0F }

// G4 returns the 4-bit green level of a translucent colour.
func (c RGB5A3) G4() uint8 { return uint8(c>>4) & 0x0F }

// B4 returns the 4-bit blue level of a translucent colour.
func (c RGB5A3) B4() uint8 { return uint8(c) & 0x0F }

// Components returns the stored levels normalised to [0,1].
func (c RGB5A3) Components() Components {
	if c.IsOpaque() {
		return Components{
			R: float64(c.R5()) / 31,
			G: float64(c.G5()) / 31,
			B: float64(c.B5()) / 31,
			A: 1,
		}
	}
	return Components{
		R: float64(c.R4()) / 15,
		G: float64(c.G4()) / 15,
		B: float64(c.B4()) / 15,
		A: float64(c.A3()) / alphaLevels,
	}
}

// Pixel expands the colour to 8 bits per channel.
func (c RGB5A3) Pixel() Pixel {
	if c.IsOpaque() {
		return Pixel{R: Expand5(c.R5()), G: Expand5(c.G5()), B: Expand5(c.B5()), A: 0xFF}
	}
	return NewPixel(Expand4(c.R4()), Expand4(c.G4()), Expand4(c.B4()), Expand3(c.A3()))
}

// String describes the stored levels.
func (c RGB5A3) String() string {
	if c.IsOpaque() {
		return fmt.Sprintf("RGB5A3(rgb5 r=%d g=%d b=%d)", c.R5(), c.G5(), c.B5())
	}
	return fmt.Sprintf("RGB5A3(rgb4a3 r=%d g=%d b=%d a=%d)", c.R4(), c.G4(), c.B4(), c.A3())
}

func packRGB5(r, g, b uint16) RGB5A3 {
	return RGB5A3(rgb5A3OpaqueBit | r<<10 | g<<5 | b)
}

func packRGB4A3(r, g, b, a uint16) RGB5A3 {
	return RGB5A3(a<<12 | r<<8 | g<<4 | b)
}

// RGB5A3Format converts colours to RGB5A3.
type RGB5A3Format struct{}

// Type returns TypeRGB5A3.
func (RGB5A3Format) Type() Type {
	return TypeRGB5A3
}

// Convert picks the layout from the alpha level: level 0 is fully
// transparent, level 7 is opaque with 5-bit RGB and levels 1-6 keep 4-bit RGB.
func (RGB5A3Format) Convert(c Components) (RGB5A3, error) {
	if err := c.Validate(); err != nil {
		return 0, fmt.Errorf("failed to convert to RGB5A3: %w", err)
	}
	c = c.Clamp()

	level := scale(c.A, alphaLevels)
	switch {
	case level == 0:
		return 0, nil
	case level == alphaLevels:
		return packRGB5(scale(c.R, 31), scale(c.G, 31), scale(c.B, 31)), nil
	case level < alphaLevels:
		return packRGB4A3(scale(c.R, 15), scale(c.G, 15), scale(c.B, 15), level), nil
	default:
		return 0, fmt.Errorf("failed to convert to RGB5A3: %w: %v rounds to %d", ErrAlphaLevel, c.A, level)
	}
}

// FromPixel is the integer equivalent of Convert(p.Components()).
func (RGB5A3Format) FromPixel(p Pixel) RGB5A3 {
	level := uint16(Reduce3(p.A))
	switch level {
	case 0:
		return 0
	case alphaLevels:
		return packRGB5(uint16(Reduce5(p.R)), uint16(Reduce5(p.G)), uint16(Reduce5(p.B)))
	default:
		return packRGB4A3(uint16(Reduce4(p.R)), uint16(Reduce4(p.G)), uint16(Reduce4(p.B)), level)
	}
}

// BinarySize is two bytes per colour.
func (RGB5A3Format) BinarySize() int {
	return 2
}

// AppendBinary appends the packed value in big-endian order, the TLUT
// layout expected by the hardware.
func (RGB5A3Format) AppendBinary(dst []byte, c RGB5A3) []byte {
	return binary.BigEndian.AppendUint16(dst, uint16(c))
}
