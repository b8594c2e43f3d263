package colour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRGB5A3FromPixel(t *testing.T) {
	tests := []struct {
		pixel Pixel
		want  RGB5A3
	}{
		{pixel: Pixel{0xFF, 0x00, 0x08, 0xFF}, want: 1<<15 | 0x1F<<10 | 0<<5 | 1},
		{pixel: Pixel{0xED, 0x04, 0x05, 0xED}, want: 1<<15 | 0x1D<<10 | 0<<5 | 1},
		{pixel: Pixel{0xEC, 0x08, 0x09, 0xEC}, want: 6<<12 | 0x0E<<8 | 0<<4 | 1},
		{pixel: Transparent, want: 0},
		{pixel: Pixel{0xFF, 0xFF, 0xFF, 0x10}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.pixel.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, RGB5A3Format{}.FromPixel(tt.pixel))

			converted, err := RGB5A3Format{}.Convert(tt.pixel.Components())
			require.NoError(t, err)
			assert.Equal(t, tt.want, converted)
		})
	}
}

func TestRGB5A3Pixel(t *testing.T) {
	tests := []struct {
		packed RGB5A3
		want   Pixel
	}{
		{packed: 1<<15 | 0x1F<<10 | 0<<5 | 1, want: Pixel{0xFF, 0x00, 0x08, 0xFF}},
		{packed: 1<<15 | 0x1D<<10 | 0<<5 | 1, want: Pixel{0xEF, 0x00, 0x08, 0xFF}},
		{packed: 0x6<<12 | 0x0E<<8 | 0<<4 | 1, want: Pixel{0xEE, 0x00, 0x11, 0xDB}},
		{packed: 0x0123, want: Transparent},
	}

	for _, tt := range tests {
		t.Run(tt.packed.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.packed.Pixel())
		})
	}
}

func TestRGB5A3Accessors(t *testing.T) {
	opaque := RGB5A3(1<<15 | 0x1D<<10 | 0<<5 | 1)
	assert.True(t, opaque.IsOpaque())
	assert.Equal(t, [3]uint8{0x1D, 0, 1}, [3]uint8{opaque.R5(), opaque.G5(), opaque.B5()})

	translucent := RGB5A3(0x6<<12 | 0x0E<<8 | 0x3<<4 | 1)
	assert.False(t, translucent.IsOpaque())
	assert.Equal(t, [4]uint8{0x0E, 0x3, 1, 6}, [4]uint8{translucent.R4(), translucent.G4(), translucent.B4(), translucent.A3()})
}

func TestExpand5(t *testing.T) {
	tests := []struct{ in, want uint8 }{
		{0, 0}, {1, 8}, {0x1D, 0xEF}, {0x1F, 0xFF},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Expand5(tt.in), "Expand5(%d)", tt.in)
	}
	assert.Equal(t, uint8(0xFF), Expand4(0xF))
	assert.Equal(t, uint8(0xDB), Expand3(6))
	assert.Equal(t, uint8(0xFF), Expand3(7))
}

func TestReduceInvertsExpand(t *testing.T) {
	for v := range uint8(32) {
		assert.Equal(t, v, Reduce5(Expand5(v)))
	}
	for v := range uint8(16) {
		assert.Equal(t, v, Reduce4(Expand4(v)))
	}
	for v := range uint8(8) {
		assert.Equal(t, v, Reduce3(Expand3(v)))
	}
}

func TestFromPixelMatchesConvert(t *testing.T) {
	for a := 0; a < 256; a++ {
		for v := 0; v < 256; v += 3 {
			p := NewPixel(uint8(v), uint8(255-v), uint8(v/2), uint8(a))

			packed, err := RGB5A3Format{}.Convert(p.Components())
			require.NoError(t, err)
			require.Equal(t, packed, RGB5A3Format{}.FromPixel(p), "pixel %v", p)

			rgba, err := RGBA8Format{}.Convert(p.Components())
			require.NoError(t, err)
			require.Equal(t, rgba, RGBA8Format{}.FromPixel(p), "pixel %v", p)
		}
	}
}

func TestRGB5A3RoundTrip(t *testing.T) {
	for v := 0; v <= 0xFFFF; v++ {
		c := RGB5A3(v)
		if !c.IsOpaque() && (c.A3() == alphaLevels || (c.A3() == 0 && c != 0)) {
			// Full alpha always uses the opaque layout, and transparent
			// values never carry RGB bits.
			continue
		}

		converted, err := RGB5A3Format{}.Convert(c.Components())
		require.NoError(t, err)
		require.Equal(t, c, converted, "components of %v", c)
		require.Equal(t, c, RGB5A3Format{}.FromPixel(c.Pixel()), "pixel of %v", c)
	}
}

func TestRGBA8RoundTrip(t *testing.T) {
	for _, p := range []Pixel{{0, 0, 0, 255}, {1, 2, 3, 4}, {255, 254, 253, 128}, Transparent} {
		c := RGBA8Format{}.FromPixel(p)
		converted, err := RGBA8Format{}.Convert(c.Components())
		require.NoError(t, err)
		assert.Equal(t, c, converted)
		assert.Equal(t, p, c.Pixel())
	}
}

func TestAppendBinary(t *testing.T) {
	assert.Equal(t, []byte{0x80, 0x01}, RGB5A3Format{}.AppendBinary(nil, 0x8001))
	assert.Equal(t, 2, RGB5A3Format{}.BinarySize())
	assert.Equal(t, []byte{9, 1, 2, 3, 4}, RGBA8Format{}.AppendBinary([]byte{9}, RGBA8{1, 2, 3, 4}))
	assert.Equal(t, 4, RGBA8Format{}.BinarySize())
}
