package resizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewImageValidation(t *testing.T) {
	_, err := NewImage(0, 10, U8)
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = NewImage(10, 0, U8)
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = NewImage(-1, 5, U8)
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = NewImage(4, 4, PixelType(99))
	assert.ErrorIs(t, err, ErrUnsupportedPixelType)

	im, err := NewImage(4, 3, U8x4)
	require.NoError(t, err)
	assert.Equal(t, 4, im.Width())
	assert.Equal(t, 3, im.Height())
	assert.Equal(t, U8x4, im.PixelType())
	assert.Len(t, im.Bytes(), 4*3*4)
	for _, b := range im.Bytes() {
		assert.Zero(t, b)
	}
}

func TestNewImageFromBytes(t *testing.T) {
	buf := make([]byte, 4*3*4)
	_, err := NewImageFromBytes(4, 3, U8x4, buf[:len(buf)-1])
	assert.ErrorIs(t, err, ErrBufferLengthMismatch)

	im, err := NewImageFromBytes(4, 3, U8x4, buf)
	require.NoError(t, err)

	// Adoption, not copy: writes through the image show in the
	// original slice.
	im.Bytes()[0] = 0xAB
	assert.Equal(t, byte(0xAB), buf[0])
}

func TestPixelTypeProperties(t *testing.T) {
	assert.Equal(t, 4, U8x4.BytesPerPixel())
	assert.Equal(t, 4, I32.BytesPerPixel())
	assert.Equal(t, 4, F32.BytesPerPixel())
	assert.Equal(t, 1, U8.BytesPerPixel())

	assert.Equal(t, 4, U8x4.ChannelCount())
	assert.Equal(t, 1, U8.ChannelCount())

	assert.True(t, U8x4.HasAlpha())
	assert.False(t, U8.HasAlpha())
	assert.False(t, I32.HasAlpha())

	assert.False(t, PixelType(42).IsValid())
	assert.Equal(t, "unknown", PixelType(42).String())
	assert.Equal(t, "u8x4", U8x4.String())
}

func TestImageViewRows(t *testing.T) {
	pix := make([]byte, 3*2)
	for i := range pix {
		pix[i] = byte(i)
	}
	v, err := NewImageView(3, 2, U8, pix)
	require.NoError(t, err)

	assert.Equal(t, []byte{0, 1, 2}, v.Row(0))
	assert.Equal(t, []byte{3, 4, 5}, v.Row(1))
}

func TestSetCropBox(t *testing.T) {
	im, err := NewImage(8, 6, U8)
	require.NoError(t, err)
	v := im.View()

	assert.ErrorIs(t, v.SetCropBox(0, 0, 0, 3), ErrInvalidDimensions)
	assert.ErrorIs(t, v.SetCropBox(-1, 0, 4, 4), ErrInvalidCropBox)
	assert.ErrorIs(t, v.SetCropBox(5, 0, 4, 4), ErrInvalidCropBox)
	assert.ErrorIs(t, v.SetCropBox(0, 4, 4, 3), ErrInvalidCropBox)

	require.NoError(t, v.SetCropBox(2, 1, 4, 3))
	left, top, w, h := v.CropBox()
	assert.Equal(t, [4]int{2, 1, 4, 3}, [4]int{left, top, w, h})
}

func TestViewMutValidation(t *testing.T) {
	_, err := NewImageViewMut(3, 2, U8, make([]byte, 5))
	assert.ErrorIs(t, err, ErrBufferLengthMismatch)

	_, err = NewImageViewMut(0, 2, U8, nil)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}
