package colour

import (
	"fmt"
	"strings"
)

// Type selects the output colour format.
type Type string

const (
	// TypeRGBA8 quantizes to 8 bits per channel.
	TypeRGBA8 Type = "RGBA8"

	// TypeRGB5A3 quantizes to the packed RGB5A3 texture format.
	TypeRGB5A3 Type = "RGB5A3"
)

// ValidTypes returns the supported output formats.
func ValidTypes() []Type {
	return []Type{TypeRGBA8, TypeRGB5A3}
}

// IsValidType checks if t names a supported output format.
func IsValidType(t Type) bool {
	for _, valid := range ValidTypes() {
		if t == valid {
			return true
		}
	}
	return false
}

// ParseType parses a colour type name, ignoring case.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	if !IsValidType(t) {
		return "", fmt.Errorf("unknown color type %s (valid types: %v)", s, ValidTypes())
	}
	return t, nil
}

// String returns the type name.
func (t Type) String() string {
	return string(t)
}

// Color is a quantized output colour.
type Color interface {
	comparable

	// Components returns the stored colour normalised to [0,1].
	Components() Components

	// Pixel expands the colour to an 8-bit pixel for writing images.
	Pixel() Pixel
}

// Format is the conversion capability of one output colour format.
type Format[O Color] interface {
	// Type identifies the format.
	Type() Type

	// Convert quantizes real components to the format. Components outside
	// [0,1] are clamped; NaN components fail.
	Convert(c Components) (O, error)

	// FromPixel quantizes an exact input pixel. It never fails and agrees
	// with Convert(p.Components()).
	FromPixel(p Pixel) O

	// BinarySize is the number of bytes AppendBinary writes.
	BinarySize() int

	// AppendBinary appends the hardware encoding of c to dst.
	AppendBinary(dst []byte, c O) []byte
}
