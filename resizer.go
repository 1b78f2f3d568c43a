package resizer

import (
	"fmt"

	"github.com/tphakala/go-image-resizer/internal/engine"
	"github.com/tphakala/go-image-resizer/internal/filter"
)

// Resizer resamples images between two sizes. It holds the algorithm
// and CPU-extension selection plus reusable scratch buffers; it keeps no
// state about any particular image pair, so a single instance can serve
// any sequence of sizes and formats.
//
// A Resizer is not safe for concurrent use: calls on the same instance
// must be serialized externally because the scratch buffers are shared
// between calls.
type Resizer struct {
	alg  ResizeAlg
	cpu  CPUExtensions
	bufs engine.Buffers
}

// NewResizer creates a resizer with the given algorithm and the best
// CPU extension tier detected at construction time.
func NewResizer(alg ResizeAlg) *Resizer {
	return &Resizer{
		alg: alg,
		cpu: DetectCPUExtensions(),
	}
}

// Algorithm returns the configured resize algorithm.
func (r *Resizer) Algorithm() ResizeAlg { return r.alg }

// SetAlgorithm changes the resize algorithm for subsequent calls.
func (r *Resizer) SetAlgorithm(alg ResizeAlg) { r.alg = alg }

// CPUExtensions returns the currently selected extension tier.
func (r *Resizer) CPUExtensions() CPUExtensions { return r.cpu }

// SetCPUExtensions overrides automatic CPU detection for subsequent
// calls.
//
// This is the one trust-the-caller operation in the package: selecting a
// tier the hardware cannot execute is a contract violation and the
// resulting behavior is undefined. Selecting a lower tier than detected
// is always safe and useful for benchmarking the scalar path.
func (r *Resizer) SetCPUExtensions(ext CPUExtensions) { r.cpu = ext }

// ResetInternalBuffers releases the scratch storage retained between
// calls. The next resize reallocates what it needs.
func (r *Resizer) ResetInternalBuffers() {
	r.bufs.Reset()
}

// Resize resamples the source view into the destination view. Source
// and destination must have the same pixel type; the destination is
// written in full and must not alias the source buffer. The source's
// crop box, if set, restricts the sampled region.
func (r *Resizer) Resize(src *ImageView, dst *ImageViewMut) error {
	if src.PixelType() != dst.PixelType() {
		return fmt.Errorf("%w: %v vs %v", ErrPixelTypeMismatch, src.PixelType(), dst.PixelType())
	}

	sp := src.plane()
	dp := dst.plane()

	if r.alg.IsNearest() {
		engine.NearestResize(dp, sp)
		return nil
	}

	k := r.alg.Filter().kernel()
	hchunks := filter.Compute(sp.Width, dp.Width, k)
	vchunks := filter.Compute(sp.Height, dp.Height, k)
	level := r.cpu.level()

	switch src.PixelType() {
	case U8:
		engine.ConvolveU8(dp, sp, 1, filter.Quantize(hchunks), filter.Quantize(vchunks), level, &r.bufs)
	case U8x4:
		engine.ConvolveU8(dp, sp, 4, filter.Quantize(hchunks), filter.Quantize(vchunks), level, &r.bufs)
	case F32:
		engine.ConvolveFloat(dp, sp,
			filter.ConvertChunks[float32](hchunks),
			filter.ConvertChunks[float32](vchunks),
			level, &r.bufs)
	case I32:
		engine.ConvolveI32(dp, sp,
			filter.ConvertChunks[float64](hchunks),
			filter.ConvertChunks[float64](vchunks),
			&r.bufs)
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedPixelType, src.PixelType())
	}
	return nil
}
