// Test image generator for creating sample textures for manual quantization runs
package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

func main() {
	width := 128
	height := 128

	// A smooth gradient with a soft alpha falloff exercises both the opaque
	// and the translucent RGB5A3 encodings.
	texture := image.NewNRGBA(image.Rect(0, 0, width, height))
	mask := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			alpha := uint8(255 - (x * 255 / (width - 1) / 2))
			if x < 8 {
				alpha = 0
			}
			texture.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 2),
				G: uint8(y * 2),
				B: uint8((x + y) % 256),
				A: alpha,
			})

			// Matching mask with hard edged bands
			band := uint8((y / 16) * 32)
			mask.SetNRGBA(x, y, color.NRGBA{R: band, G: band, B: band, A: 255})
		}
	}

	save("testdata/texture.png", texture)
	save("testdata/mask.png", mask)

	println("Test images created: testdata/texture.png, testdata/mask.png")
}

func save(path string, img image.Image) {
	file, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		panic(err)
	}
}
