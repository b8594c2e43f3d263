package colour

// Reduce5 maps an 8-bit channel to the nearest 5-bit level.
func Reduce5(v uint8) uint8 {
	return uint8((uint32(v)*31 + 127) / 255)
}

// Reduce4 maps an 8-bit channel to the nearest 4-bit level.
func Reduce4(v uint8) uint8 {
	return uint8((uint32(v) + 8) / 17)
}

// Reduce3 maps an 8-bit channel to the nearest 3-bit level.
func Reduce3(v uint8) uint8 {
	return uint8((uint32(v)*7 + 127) / 255)
}

// Expand5 scales a 5-bit level back to 8 bits, rounding half up.
func Expand5(v uint8) uint8 {
	return uint8((uint32(v)*255 + 15) / 31)
}

// Expand4 scales a 4-bit level back to 8 bits. 255/15 is exact.
func Expand4(v uint8) uint8 {
	return v * 17
}

// Expand3 scales a 3-bit level back to 8 bits, rounding half up.
func Expand3(v uint8) uint8 {
	return uint8((uint32(v)*255 + 3) / 7)
}
