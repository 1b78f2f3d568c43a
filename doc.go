// Package resizer provides fast raster image resampling in pure Go.
//
// Given a source pixel buffer and a target size, the package produces a
// resized buffer using either nearest-neighbor sampling or separable
// convolution with a selectable filter kernel (bilinear, Catmull-Rom,
// Lanczos3). Color channels of images with transparency should be
// resampled in premultiplied-alpha space; the [MulDiv] transform converts
// to and from that space.
//
// # Features
//
//   - Four pixel formats: interleaved 8-bit RGBA-style ([U8x4]),
//     single-channel 8-bit ([U8]), 32-bit integer ([I32]) and 32-bit
//     float ([F32])
//   - Separable two-pass convolution with anti-aliased downscaling
//     (filter support widens with the scale factor)
//   - Nearest-neighbor copy with no arithmetic or precision loss
//   - Optional SIMD acceleration (AVX2/SSE4.1/NEON) via
//     github.com/tphakala/simd, with runtime CPU detection and a
//     guaranteed scalar fallback
//   - Alpha premultiplication and its inverse, in-place or into a
//     destination view
//   - Zero-copy views over caller-owned buffers, with optional source
//     crop box
//   - Pure Go implementation with no CGO dependencies
//
// # Quick Start
//
// For simple one-shot resizing:
//
//	src, err := resizer.NewImageFromBytes(width, height, resizer.U8x4, pixels)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	dst, err := resizer.Resize(src.View(), 320, 240, resizer.Convolution(resizer.FilterLanczos3))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = dst.Bytes()
//
// For repeated resizing with a reusable resizer (internal buffers are
// retained between calls):
//
//	r := resizer.NewResizer(resizer.Convolution(resizer.FilterCatmullRom))
//	for _, job := range jobs {
//	    if err := r.Resize(job.src.View(), job.dst.ViewMut()); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Premultiplied Alpha
//
// Convolving color channels of a [U8x4] image with transparency is only
// correct in premultiplied-alpha space:
//
//	var md resizer.MulDiv
//	_ = md.MultiplyAlphaInplace(src.ViewMut())
//	_ = r.Resize(src.View(), dst.ViewMut())
//	_ = md.DivideAlphaInplace(dst.ViewMut())
//
// # CPU Extensions
//
// A [Resizer] detects the best available vector instruction set at
// construction. [Resizer.SetCPUExtensions] overrides the selection, for
// example to benchmark the scalar path. Forcing a tier the hardware
// cannot execute is a contract violation by the caller; the result is
// undefined. Setting the RESIZER_NO_SIMD environment variable forces
// scalar detection process-wide.
//
// # Determinism and Thread Safety
//
// Rows and columns are processed in a fixed order, so output is
// bit-reproducible for a given input, algorithm and extension choice.
// A [Resizer] instance must not be shared between goroutines without
// external exclusion: it reuses internal scratch buffers across calls.
// Distinct instances are independent. Source views are read-only during
// a call and the destination must not alias the source buffer.
package resizer
