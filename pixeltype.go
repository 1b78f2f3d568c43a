package resizer

// PixelType identifies the numeric layout of one pixel. It is fixed at
// buffer construction and every operation preserves it; the package has
// no format-conversion entry point.
type PixelType int

const (
	// U8x4 is four interleaved 8-bit channels per pixel, with the
	// trailing channel treated as alpha by the [MulDiv] transforms.
	U8x4 PixelType = iota

	// I32 is one signed 32-bit integer channel per pixel, native endian.
	I32

	// F32 is one 32-bit float channel per pixel, native endian.
	F32

	// U8 is one 8-bit channel per pixel.
	U8
)

// BytesPerPixel returns the fixed byte width of one pixel.
func (pt PixelType) BytesPerPixel() int {
	switch pt {
	case U8x4, I32, F32:
		return 4
	case U8:
		return 1
	default:
		return 0
	}
}

// ChannelCount returns the number of components per pixel.
func (pt PixelType) ChannelCount() int {
	if pt == U8x4 {
		return 4
	}
	return 1
}

// IsValid reports whether pt is one of the supported formats.
func (pt PixelType) IsValid() bool {
	switch pt {
	case U8x4, I32, F32, U8:
		return true
	}
	return false
}

// HasAlpha reports whether the format defines a trailing alpha channel.
func (pt PixelType) HasAlpha() bool {
	return pt == U8x4
}

// String returns the format name.
func (pt PixelType) String() string {
	switch pt {
	case U8x4:
		return "u8x4"
	case I32:
		return "i32"
	case F32:
		return "f32"
	case U8:
		return "u8"
	default:
		return "unknown"
	}
}
