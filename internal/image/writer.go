package image

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/sync/errgroup"
)

// Encoding is the file format quantized images are written in.
type Encoding string

const (
	// EncodingPNG writes PNG files. This is the default.
	EncodingPNG Encoding = "png"

	// EncodingBMP writes 32-bit BMP files.
	EncodingBMP Encoding = "bmp"

	// EncodingTIFF writes uncompressed TIFF files.
	EncodingTIFF Encoding = "tiff"
)

// DefaultSuffix is appended to the input file stem to name the output.
const DefaultSuffix = " (smashed)"

// ValidEncodings returns the supported output encodings.
func ValidEncodings() []Encoding {
	return []Encoding{EncodingPNG, EncodingBMP, EncodingTIFF}
}

// ParseEncoding parses an encoding name, ignoring case.
func ParseEncoding(s string) (Encoding, error) {
	e := Encoding(strings.ToLower(strings.TrimSpace(s)))
	switch e {
	case EncodingPNG, EncodingBMP, EncodingTIFF:
		return e, nil
	case "tif":
		return EncodingTIFF, nil
	default:
		return "", fmt.Errorf("unknown output format %s (valid formats: %v)", s, ValidEncodings())
	}
}

// Extension returns the file extension for the encoding, including the dot.
func (e Encoding) Extension() string {
	return "." + string(e)
}

// Encode writes img to w.
func (e Encoding) Encode(w io.Writer, img image.Image) error {
	switch e {
	case EncodingPNG, "":
		return png.Encode(w, img)
	case EncodingBMP:
		return bmp.Encode(w, img)
	case EncodingTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Uncompressed})
	default:
		return fmt.Errorf("unsupported output format: %s", e)
	}
}

// OutputPath derives the output file name from an input path: the input
// stem, then suffix, then the extension of the encoding, in the input's
// directory.
func OutputPath(input, suffix string, e Encoding) string {
	dir := filepath.Dir(input)
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(dir, stem+suffix+e.Extension())
}

// Save encodes img to path.
func Save(path string, img image.Image, e Encoding) error {
	file, err := os.Create(path) // #nosec G304 - Output path derived from user-specified input path
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	encodeErr := e.Encode(file, img)
	closeErr := file.Close()
	if encodeErr != nil {
		return fmt.Errorf("failed to encode %s: %w", path, encodeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close output file: %w", closeErr)
	}
	return nil
}

// SaveAll writes images[i] to paths[i] concurrently.
func SaveAll(ctx context.Context, images []*image.NRGBA, paths []string, e Encoding) error {
	if len(images) != len(paths) {
		return fmt.Errorf("got %d images but %d output paths", len(images), len(paths))
	}

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return Save(path, images[i], e)
		})
	}
	return g.Wait()
}
