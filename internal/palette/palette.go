// Package palette exports quantized palettes as raw colour lookup tables and
// reports on the quality of a quantization.
package palette

import (
	"github.com/jmylchreest/smash/internal/colour"
)

// Encode packs palettes into a binary lookup table. Palettes are written in
// order, each entry using the native layout of format (RGBA8: four bytes
// R, G, B, A; RGB5A3: one big-endian uint16).
func Encode[O colour.Color](format colour.Format[O], palettes ...[]O) []byte {
	size := 0
	for _, p := range palettes {
		size += len(p) * format.BinarySize()
	}

	data := make([]byte, 0, size)
	for _, p := range palettes {
		for _, c := range p {
			data = format.AppendBinary(data, c)
		}
	}
	return data
}

// Pixels expands a palette to 8-bit pixels.
func Pixels[O colour.Color](palette []O) []colour.Pixel {
	pixels := make([]colour.Pixel, len(palette))
	for i, c := range palette {
		pixels[i] = c.Pixel()
	}
	return pixels
}
