package colour

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPixel(t *testing.T) {
	tests := []struct {
		name string
		in   [4]uint8
		want Pixel
	}{
		{name: "opaque", in: [4]uint8{1, 2, 3, 255}, want: Pixel{1, 2, 3, 255}},
		{name: "translucent", in: [4]uint8{9, 8, 7, 1}, want: Pixel{9, 8, 7, 1}},
		{name: "transparent white", in: [4]uint8{255, 255, 255, 0}, want: Transparent},
		{name: "transparent red", in: [4]uint8{255, 0, 0, 0}, want: Transparent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPixel(tt.in[0], tt.in[1], tt.in[2], tt.in[3]))
		})
	}
}

func TestPixelFromColor(t *testing.T) {
	tests := []struct {
		name  string
		color color.Color
		want  Pixel
	}{
		{name: "nrgba", color: color.NRGBA{R: 200, G: 100, B: 50, A: 128}, want: Pixel{200, 100, 50, 128}},
		{name: "opaque rgba", color: color.RGBA{R: 10, G: 20, B: 30, A: 255}, want: Pixel{10, 20, 30, 255}},
		{name: "transparent nrgba", color: color.NRGBA{R: 200, G: 100, B: 50, A: 0}, want: Transparent},
		{name: "gray", color: color.Gray{Y: 77}, want: Pixel{77, 77, 77, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PixelFromColor(tt.color))
		})
	}
}

func TestPixelString(t *testing.T) {
	assert.Equal(t, "#ff0008ff", Pixel{0xFF, 0x00, 0x08, 0xFF}.String())
	assert.Equal(t, color.NRGBA{R: 1, G: 2, B: 3, A: 4}, Pixel{1, 2, 3, 4}.NRGBA())
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Pixel
		want float64
	}{
		{name: "white to black", a: Pixel{0xFF, 0xFF, 0xFF, 0xFF}, b: Pixel{0, 0, 0, 0xFF}, want: 3},
		{name: "white to transparent", a: Pixel{0xFF, 0xFF, 0xFF, 0xFF}, b: Transparent, want: 3},
		{name: "same colour", a: Pixel{12, 34, 56, 78}, b: Pixel{12, 34, 56, 78}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Distance(tt.a.Components(), tt.b.Components()))
			assert.Equal(t, tt.want, Distance(tt.b.Components(), tt.a.Components()))
		})
	}
}

func TestDistanceSymmetric(t *testing.T) {
	pixels := []Pixel{
		{0, 0, 0, 255}, {255, 128, 0, 128}, {3, 200, 17, 1}, Transparent, {90, 90, 90, 250},
	}
	for _, a := range pixels {
		assert.Zero(t, Distance(a.Components(), a.Components()))
		for _, b := range pixels {
			d := Distance(a.Components(), b.Components())
			assert.Equal(t, d, Distance(b.Components(), a.Components()))
			assert.GreaterOrEqual(t, d, 0.0)
			if a != b {
				assert.Positive(t, d, "%v to %v", a, b)
			}
		}
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in      string
		want    Type
		wantErr bool
	}{
		{in: "RGBA8", want: TypeRGBA8},
		{in: "rgba8", want: TypeRGBA8},
		{in: "Rgb5a3", want: TypeRGB5A3},
		{in: " RGB5A3 ", want: TypeRGB5A3},
		{in: "RGB565", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseType(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown color type")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertRejectsNaN(t *testing.T) {
	nan := Components{R: math.NaN(), G: 0, B: 0, A: 1}

	_, err := RGBA8Format{}.Convert(nan)
	assert.ErrorIs(t, err, ErrInvalidComponents)

	_, err = RGB5A3Format{}.Convert(nan)
	assert.ErrorIs(t, err, ErrInvalidComponents)
}

func TestConvertClamps(t *testing.T) {
	out := Components{R: 1.5, G: -0.2, B: 0.5, A: 2}

	rgba, err := RGBA8Format{}.Convert(out)
	require.NoError(t, err)
	assert.Equal(t, RGBA8{255, 0, 128, 255}, rgba)

	packed, err := RGB5A3Format{}.Convert(out)
	require.NoError(t, err)
	assert.Equal(t, packRGB5(31, 0, 16), packed)
}

func TestMeanOf(t *testing.T) {
	type sample struct {
		pixel Pixel
		count uint32
	}
	tests := []struct {
		name    string
		samples []sample
		want    RGBA8
	}{
		{
			name:    "opaque pair",
			samples: []sample{{Pixel{0xFF, 0x80, 0x00, 0xFF}, 1}, {Pixel{0x00, 0x00, 0x00, 0xFF}, 1}},
			want:    RGBA8{0x80, 0x40, 0x00, 0xFF},
		},
		{
			name:    "transparent pair",
			samples: []sample{{Pixel{0xFF, 0xFF, 0xFF, 0x00}, 1}, {Pixel{0x80, 0x80, 0x80, 0x00}, 1}},
			want:    RGBA8{},
		},
		{
			name:    "alpha weighted",
			samples: []sample{{Pixel{0xFF, 0x80, 0x00, 0x80}, 2}, {Pixel{0x00, 0x00, 0x00, 0xFF}, 1}},
			want:    RGBA8{0x80, 0x40, 0x00, 0xAA},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mean := MeanOf(func(yield func(Pixel, uint32) bool) {
				for _, s := range tt.samples {
					if !yield(s.pixel, s.count) {
						return
					}
				}
			})
			got, err := RGBA8Format{}.Convert(mean)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
