package resizer

import "fmt"

// Resize is a one-shot helper: it allocates a destination image of the
// requested size and format-matching pixel type, resamples src into it
// with the given algorithm and returns it. For repeated work, reuse a
// [Resizer] instead so internal buffers are retained.
func Resize(src *ImageView, dstWidth, dstHeight int, alg ResizeAlg) (*Image, error) {
	dst, err := NewImage(dstWidth, dstHeight, src.PixelType())
	if err != nil {
		return nil, err
	}
	r := NewResizer(alg)
	if err := r.Resize(src, dst.ViewMut()); err != nil {
		return nil, fmt.Errorf("resize failed: %w", err)
	}
	return dst, nil
}
