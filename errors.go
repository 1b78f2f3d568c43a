package resizer

import "errors"

// Common errors returned by buffer, view and resize operations.
var (
	// ErrInvalidDimensions indicates a zero or negative width or height.
	ErrInvalidDimensions = errors.New("invalid image dimensions")

	// ErrBufferLengthMismatch indicates a pixel buffer whose length does
	// not equal width * height * bytes-per-pixel.
	ErrBufferLengthMismatch = errors.New("pixel buffer length mismatch")

	// ErrPixelTypeMismatch indicates source and destination views with
	// different pixel types; no implicit conversion is performed.
	ErrPixelTypeMismatch = errors.New("source and destination pixel types differ")

	// ErrUnsupportedPixelType indicates a pixel type outside the
	// supported set, or one the requested operation does not apply to.
	ErrUnsupportedPixelType = errors.New("unsupported pixel type")

	// ErrInvalidCropBox indicates a crop box that does not fit inside
	// the view it is applied to.
	ErrInvalidCropBox = errors.New("crop box outside image bounds")
)
