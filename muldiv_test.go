package resizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-image-resizer/internal/testutil"
)

func TestMulDivRejectsAlphalessFormats(t *testing.T) {
	var md MulDiv

	for _, pt := range []PixelType{U8, I32, F32} {
		img, err := NewImage(2, 2, pt)
		require.NoError(t, err)

		assert.ErrorIs(t, md.MultiplyAlphaInplace(img.ViewMut()), ErrUnsupportedPixelType, "%v", pt)
		assert.ErrorIs(t, md.DivideAlphaInplace(img.ViewMut()), ErrUnsupportedPixelType, "%v", pt)

		dst, err := NewImage(2, 2, U8x4)
		require.NoError(t, err)
		assert.ErrorIs(t, md.MultiplyAlpha(img.View(), dst.ViewMut()), ErrUnsupportedPixelType, "%v src", pt)
		assert.ErrorIs(t, md.MultiplyAlpha(dst.View(), img.ViewMut()), ErrUnsupportedPixelType, "%v dst", pt)
	}
}

func TestMulDivDimensionMismatch(t *testing.T) {
	var md MulDiv

	src, err := NewImage(3, 2, U8x4)
	require.NoError(t, err)
	dst, err := NewImage(2, 3, U8x4)
	require.NoError(t, err)

	assert.ErrorIs(t, md.MultiplyAlpha(src.View(), dst.ViewMut()), ErrInvalidDimensions)
	assert.ErrorIs(t, md.DivideAlpha(src.View(), dst.ViewMut()), ErrInvalidDimensions)
}

func TestMultiplyAlphaKnownValues(t *testing.T) {
	var md MulDiv

	img, err := NewImageFromBytes(2, 1, U8x4, []byte{
		255, 128, 0, 128,
		10, 20, 30, 255,
	})
	require.NoError(t, err)

	require.NoError(t, md.MultiplyAlphaInplace(img.ViewMut()))

	// c' = (c*a + 127) / 255; full alpha leaves the pixel untouched.
	assert.Equal(t, []byte{
		128, 64, 0, 128,
		10, 20, 30, 255,
	}, img.Bytes())
}

func TestMulDivInplaceMatchesTwoView(t *testing.T) {
	var md MulDiv

	pix := make([]byte, 16*16*4)
	copy(pix, testutil.DeterministicBytes(len(pix), 11))

	inplace, err := NewImageFromBytes(16, 16, U8x4, append([]byte(nil), pix...))
	require.NoError(t, err)
	src, err := NewImageFromBytes(16, 16, U8x4, pix)
	require.NoError(t, err)
	dst, err := NewImage(16, 16, U8x4)
	require.NoError(t, err)

	require.NoError(t, md.MultiplyAlphaInplace(inplace.ViewMut()))
	require.NoError(t, md.MultiplyAlpha(src.View(), dst.ViewMut()))
	assert.Equal(t, inplace.Bytes(), dst.Bytes(), "multiply")

	require.NoError(t, md.DivideAlphaInplace(inplace.ViewMut()))
	require.NoError(t, md.DivideAlpha(dst.View(), dst.ViewMut()))
	assert.Equal(t, inplace.Bytes(), dst.Bytes(), "divide")
}

func TestMulDivHonorsCropBox(t *testing.T) {
	var md MulDiv

	src, err := NewImageFromBytes(2, 2, U8x4, []byte{
		255, 128, 64, 128, 10, 20, 30, 255,
		200, 100, 50, 0, 40, 80, 120, 64,
	})
	require.NoError(t, err)
	view := src.View()
	require.NoError(t, view.SetCropBox(1, 1, 1, 1))

	dst, err := NewImage(1, 1, U8x4)
	require.NoError(t, err)
	require.NoError(t, md.MultiplyAlpha(view, dst.ViewMut()))

	// Bottom-right pixel only: c' = (c*64 + 127) / 255.
	assert.Equal(t, []byte{10, 20, 30, 64}, dst.Bytes())

	// The cropped size, not the full size, must match the destination.
	full, err := NewImage(2, 2, U8x4)
	require.NoError(t, err)
	assert.ErrorIs(t, md.MultiplyAlpha(view, full.ViewMut()), ErrInvalidDimensions)
}

func TestMulDivTwoViewLeavesSourceUntouched(t *testing.T) {
	var md MulDiv

	pix := testutil.DeterministicBytes(8*8*4, 3)
	orig := append([]byte(nil), pix...)

	src, err := NewImageFromBytes(8, 8, U8x4, pix)
	require.NoError(t, err)
	dst, err := NewImage(8, 8, U8x4)
	require.NoError(t, err)

	require.NoError(t, md.MultiplyAlpha(src.View(), dst.ViewMut()))
	assert.Equal(t, orig, pix)
}
