package resizer

import (
	"fmt"

	"github.com/tphakala/go-image-resizer/internal/engine"
)

// Image owns a contiguous pixel store of exactly
// width * height * BytesPerPixel bytes.
type Image struct {
	width     int
	height    int
	pixelType PixelType
	buf       []byte
}

// NewImage allocates a zero-filled image of the given size and format.
func NewImage(width, height int, pt PixelType) (*Image, error) {
	if err := validateDims(width, height); err != nil {
		return nil, err
	}
	if !pt.IsValid() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedPixelType, pt)
	}
	return &Image{
		width:     width,
		height:    height,
		pixelType: pt,
		buf:       make([]byte, width*height*pt.BytesPerPixel()),
	}, nil
}

// NewImageFromBytes adopts a caller-provided pixel buffer without
// copying. The buffer length must equal width * height * BytesPerPixel.
func NewImageFromBytes(width, height int, pt PixelType, buf []byte) (*Image, error) {
	if err := validateDims(width, height); err != nil {
		return nil, err
	}
	if !pt.IsValid() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedPixelType, pt)
	}
	if err := validateBufferLen(width, height, pt, len(buf)); err != nil {
		return nil, err
	}
	return &Image{width: width, height: height, pixelType: pt, buf: buf}, nil
}

// Width returns the image width in pixels.
func (im *Image) Width() int { return im.width }

// Height returns the image height in pixels.
func (im *Image) Height() int { return im.height }

// PixelType returns the pixel format.
func (im *Image) PixelType() PixelType { return im.pixelType }

// Bytes returns the backing pixel store. The slice aliases the image;
// mutating it mutates the image.
func (im *Image) Bytes() []byte { return im.buf }

// View returns a read view of the whole image. The view borrows the
// image storage and must not outlive it.
func (im *Image) View() *ImageView {
	return &ImageView{
		width:     im.width,
		height:    im.height,
		pixelType: im.pixelType,
		buf:       im.buf,
		crop:      cropBox{0, 0, im.width, im.height},
	}
}

// ViewMut returns a write view of the whole image. No other reader or
// writer may access the image while the view is in use.
func (im *Image) ViewMut() *ImageViewMut {
	return &ImageViewMut{
		width:     im.width,
		height:    im.height,
		pixelType: im.pixelType,
		buf:       im.buf,
	}
}

// cropBox is the source region sampled during a resize.
type cropBox struct {
	left, top, width, height int
}

// ImageView is a non-owning read view of a pixel grid.
type ImageView struct {
	width     int
	height    int
	pixelType PixelType
	buf       []byte
	crop      cropBox
}

// NewImageView wraps a caller-owned buffer in a read view. The buffer
// length must equal width * height * BytesPerPixel and must not be
// mutated while the view is in use.
func NewImageView(width, height int, pt PixelType, buf []byte) (*ImageView, error) {
	if err := validateDims(width, height); err != nil {
		return nil, err
	}
	if !pt.IsValid() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedPixelType, pt)
	}
	if err := validateBufferLen(width, height, pt, len(buf)); err != nil {
		return nil, err
	}
	return &ImageView{
		width:     width,
		height:    height,
		pixelType: pt,
		buf:       buf,
		crop:      cropBox{0, 0, width, height},
	}, nil
}

// Width returns the full image width in pixels.
func (v *ImageView) Width() int { return v.width }

// Height returns the full image height in pixels.
func (v *ImageView) Height() int { return v.height }

// PixelType returns the pixel format.
func (v *ImageView) PixelType() PixelType { return v.pixelType }

// Row returns the pixel bytes of row y of the full image.
func (v *ImageView) Row(y int) []byte {
	stride := v.width * v.pixelType.BytesPerPixel()
	return v.buf[y*stride : (y+1)*stride]
}

// SetCropBox restricts the region sampled when this view is used as a
// resize source. The box must lie fully inside the image.
func (v *ImageView) SetCropBox(left, top, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if left < 0 || top < 0 || left+width > v.width || top+height > v.height {
		return fmt.Errorf("%w: box (%d,%d %dx%d) in image %dx%d",
			ErrInvalidCropBox, left, top, width, height, v.width, v.height)
	}
	v.crop = cropBox{left, top, width, height}
	return nil
}

// CropBox returns the current source region.
func (v *ImageView) CropBox() (left, top, width, height int) {
	return v.crop.left, v.crop.top, v.crop.width, v.crop.height
}

// plane returns the engine view of the cropped region.
func (v *ImageView) plane() engine.Plane {
	ps := v.pixelType.BytesPerPixel()
	stride := v.width * ps
	off := v.crop.top*stride + v.crop.left*ps
	return engine.Plane{
		Pix:       v.buf[off:],
		Width:     v.crop.width,
		Height:    v.crop.height,
		Stride:    stride,
		PixelSize: ps,
	}
}

// ImageViewMut is a non-owning write view of a pixel grid. It is always
// written in full; crop boxes apply to sources only.
type ImageViewMut struct {
	width     int
	height    int
	pixelType PixelType
	buf       []byte
}

// NewImageViewMut wraps a caller-owned buffer in a write view. The
// buffer length must equal width * height * BytesPerPixel; no other
// reader or writer may access it while the view is in use.
func NewImageViewMut(width, height int, pt PixelType, buf []byte) (*ImageViewMut, error) {
	if err := validateDims(width, height); err != nil {
		return nil, err
	}
	if !pt.IsValid() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedPixelType, pt)
	}
	if err := validateBufferLen(width, height, pt, len(buf)); err != nil {
		return nil, err
	}
	return &ImageViewMut{width: width, height: height, pixelType: pt, buf: buf}, nil
}

// Width returns the view width in pixels.
func (v *ImageViewMut) Width() int { return v.width }

// Height returns the view height in pixels.
func (v *ImageViewMut) Height() int { return v.height }

// PixelType returns the pixel format.
func (v *ImageViewMut) PixelType() PixelType { return v.pixelType }

// Row returns the mutable pixel bytes of row y.
func (v *ImageViewMut) Row(y int) []byte {
	stride := v.width * v.pixelType.BytesPerPixel()
	return v.buf[y*stride : (y+1)*stride]
}

func (v *ImageViewMut) plane() engine.Plane {
	ps := v.pixelType.BytesPerPixel()
	return engine.Plane{
		Pix:       v.buf,
		Width:     v.width,
		Height:    v.height,
		Stride:    v.width * ps,
		PixelSize: ps,
	}
}

func validateDims(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return nil
}

func validateBufferLen(width, height int, pt PixelType, got int) error {
	want := width * height * pt.BytesPerPixel()
	if got != want {
		return fmt.Errorf("%w: got %d bytes, want %d (%dx%d %v)",
			ErrBufferLengthMismatch, got, want, width, height, pt)
	}
	return nil
}
