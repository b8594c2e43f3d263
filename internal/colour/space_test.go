package colour

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/smash/internal/kmeans"
)

func TestNormalizedDistance(t *testing.T) {
	rgba := NewSpace[RGBA8](RGBA8Format{})
	packed := NewSpace[RGB5A3](RGB5A3Format{})

	in := Pixel{0xED, 0x04, 0x05, 0xED}
	other := Pixel{0x10, 0x20, 0x30, 0xFF}

	// RGBA8 represents every pixel exactly, so there is no floor.
	assert.Equal(t, rgba.Distance(in, RGBA8(other)), rgba.NormalizedDistance(in, RGBA8(other)))
	assert.Zero(t, rgba.NormalizedDistance(in, rgba.AsOutput(in)))

	own := packed.AsOutput(in)
	assert.Positive(t, packed.Distance(in, own), "RGB5A3 cannot store the pixel exactly")
	assert.Zero(t, packed.NormalizedDistance(in, own))

	far := packed.AsOutput(other)
	assert.InDelta(t, packed.Distance(in, far)-packed.Distance(in, own), packed.NormalizedDistance(in, far), 1e-12)
}

func TestNormalizedDistanceNeverNegative(t *testing.T) {
	packed := NewSpace[RGB5A3](RGB5A3Format{})
	for v := 0; v < 256; v += 5 {
		in := NewPixel(uint8(v), uint8(v), uint8(255-v), uint8(v))
		for _, out := range []RGB5A3{0, 0x8000, 0xFFFF, 0x3ABC, packed.AsOutput(in)} {
			assert.GreaterOrEqual(t, packed.NormalizedDistance(in, out), 0.0)
		}
	}
}

func TestSpaceMean(t *testing.T) {
	space := NewSpace[RGBA8](RGBA8Format{})
	mean, err := space.Mean([]kmeans.Group[Pixel]{
		{Value: Pixel{0xFF, 0x80, 0x00, 0x80}, Count: 2},
		{Value: Pixel{0x00, 0x00, 0x00, 0xFF}, Count: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, RGBA8{0x80, 0x40, 0x00, 0xAA}, mean)
	assert.True(t, space.Equal(mean, RGBA8{0x80, 0x40, 0x00, 0xAA}))
}

func TestGroupingCollapsesTransparent(t *testing.T) {
	pixels := []Pixel{
		NewPixel(255, 255, 255, 0),
		NewPixel(1, 2, 3, 0),
		NewPixel(1, 2, 3, 4),
		NewPixel(0, 0, 0, 0),
	}

	groups := kmeans.Collect(slices.Values(pixels))

	assert.Equal(t, []kmeans.Group[Pixel]{
		{Value: Transparent, Count: 3},
		{Value: Pixel{1, 2, 3, 4}, Count: 1},
	}, groups)
}

// gridPixels returns 4096 distinct opaque pixels on a 16 level RGB grid.
func gridPixels() []Pixel {
	var pixels []Pixel
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 17 {
				pixels = append(pixels, NewPixel(uint8(r), uint8(g), uint8(b), 255))
			}
		}
	}
	return pixels
}

func TestQuantizeTo256Colours(t *testing.T) {
	groups := kmeans.Collect(slices.Values(gridPixels()))
	require.Greater(t, len(groups), 256)

	result, err := kmeans.New[Pixel, RGBA8](NewSpace[RGBA8](RGBA8Format{})).Run(groups, 256)
	require.NoError(t, err)

	distinct := make(map[RGBA8]bool)
	for _, c := range result.Centers {
		distinct[c] = true
	}
	assert.Len(t, distinct, 256)

	assigned := make(map[Pixel]int)
	result.Each(func(g kmeans.Group[Pixel], _ RGBA8) {
		assigned[g.Value]++
	})
	assert.Len(t, assigned, len(groups))
	for p, n := range assigned {
		assert.Equal(t, 1, n, "pixel %v", p)
	}
}

func TestQuantizeRGB5A3KeepsTransparency(t *testing.T) {
	pixels := gridPixels()
	for a := 0; a < 256; a += 15 {
		pixels = append(pixels, NewPixel(200, uint8(a), 40, uint8(a)))
	}
	groups := kmeans.Collect(slices.Values(pixels))

	result, err := kmeans.New[Pixel, RGB5A3](NewSpace[RGB5A3](RGB5A3Format{})).Run(groups, 64)
	require.NoError(t, err)
	require.Equal(t, 64, result.Len())

	result.Each(func(g kmeans.Group[Pixel], center RGB5A3) {
		if g.Value.A == 0 {
			assert.Equal(t, Transparent, g.Value)
		}
		if center.Pixel().A == 0 {
			assert.Equal(t, Transparent, center.Pixel())
		}
	})
}
