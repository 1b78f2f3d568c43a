package resizer

import (
	"fmt"

	"github.com/tphakala/go-image-resizer/internal/engine"
)

// MulDiv converts [U8x4] pixels to and from premultiplied-alpha space.
// It is stateless; the zero value is ready to use. Correct convolution
// of color channels requires premultiplied alpha, so a typical pipeline
// is multiply, resize, divide.
type MulDiv struct{}

// MultiplyAlphaInplace scales every color component of the view by its
// pixel's alpha: c = round(c * a / 255).
func (MulDiv) MultiplyAlphaInplace(v *ImageViewMut) error {
	if err := requireAlpha(v.PixelType()); err != nil {
		return err
	}
	p := v.plane()
	engine.MultiplyAlphaU8x4(p, p)
	return nil
}

// DivideAlphaInplace is the inverse of MultiplyAlphaInplace:
// c = round(c * 255 / a), clamped to 255. Zero-alpha pixels are left
// as-is.
func (MulDiv) DivideAlphaInplace(v *ImageViewMut) error {
	if err := requireAlpha(v.PixelType()); err != nil {
		return err
	}
	p := v.plane()
	engine.DivideAlphaU8x4(p, p)
	return nil
}

// MultiplyAlpha premultiplies src into dst. Both views must be [U8x4];
// the source's crop box, if set, selects the processed region, and its
// size must equal the destination size.
func (MulDiv) MultiplyAlpha(src *ImageView, dst *ImageViewMut) error {
	if err := requireAlphaPair(src, dst); err != nil {
		return err
	}
	engine.MultiplyAlphaU8x4(dst.plane(), src.plane())
	return nil
}

// DivideAlpha un-premultiplies src into dst under the same contract as
// MultiplyAlpha.
func (MulDiv) DivideAlpha(src *ImageView, dst *ImageViewMut) error {
	if err := requireAlphaPair(src, dst); err != nil {
		return err
	}
	engine.DivideAlphaU8x4(dst.plane(), src.plane())
	return nil
}

func requireAlpha(pt PixelType) error {
	if !pt.HasAlpha() {
		return fmt.Errorf("%w: %v has no alpha channel", ErrUnsupportedPixelType, pt)
	}
	return nil
}

func requireAlphaPair(src *ImageView, dst *ImageViewMut) error {
	if err := requireAlpha(src.PixelType()); err != nil {
		return err
	}
	if err := requireAlpha(dst.PixelType()); err != nil {
		return err
	}
	_, _, sw, sh := src.CropBox()
	if sw != dst.Width() || sh != dst.Height() {
		return fmt.Errorf("%w: source region %dx%d vs destination %dx%d",
			ErrInvalidDimensions, sw, sh, dst.Width(), dst.Height())
	}
	return nil
}
