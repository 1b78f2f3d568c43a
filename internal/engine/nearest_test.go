package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tphakala/go-image-resizer/internal/testutil"
)

// TestNearestResize4x4To2x2 checks the index mapping floor((d+0.5)*S/D):
// columns 1 and 3, rows 1 and 3 survive.
func TestNearestResize4x4To2x2(t *testing.T) {
	src := newPlane(4, 4, 1, []byte{
		0, 85, 170, 255,
		1, 86, 171, 254,
		2, 87, 172, 253,
		3, 88, 173, 252,
	})
	dst := newPlane(2, 2, 1, nil)

	NearestResize(dst, src)

	assert.Equal(t, []byte{86, 254, 88, 252}, dst.Pix)
}

// TestNearestResizeCopiesOnly verifies nearest-neighbor never invents
// component values: every output byte occurs in the source.
func TestNearestResizeCopiesOnly(t *testing.T) {
	pix := testutil.DeterministicBytes(16*16, 11)
	src := newPlane(16, 16, 1, pix)
	dst := newPlane(7, 5, 1, nil)

	NearestResize(dst, src)

	seen := make(map[byte]bool, len(pix))
	for _, b := range pix {
		seen[b] = true
	}
	for i, b := range dst.Pix {
		assert.True(t, seen[b], "output byte %d at %d not present in source", b, i)
	}
}

// TestNearestResizeU8x4PixelIntegrity verifies whole pixels are copied:
// every output 4-byte group equals some source pixel.
func TestNearestResizeU8x4PixelIntegrity(t *testing.T) {
	pix := testutil.DeterministicBytes(8*8*4, 23)
	src := newPlane(8, 8, 4, pix)
	dst := newPlane(3, 3, 4, nil)

	NearestResize(dst, src)

	srcPixels := make(map[[4]byte]bool, 64)
	for i := 0; i < len(pix); i += 4 {
		srcPixels[[4]byte{pix[i], pix[i+1], pix[i+2], pix[i+3]}] = true
	}
	for i := 0; i < len(dst.Pix); i += 4 {
		p := [4]byte{dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2], dst.Pix[i+3]}
		assert.True(t, srcPixels[p], "output pixel %v not present in source", p)
	}
}

// TestNearestResizeSameSize verifies the degenerate case is a plain
// copy.
func TestNearestResizeSameSize(t *testing.T) {
	pix := testutil.DeterministicBytes(9*6*4, 5)
	src := newPlane(9, 6, 4, pix)
	dst := newPlane(9, 6, 4, nil)

	NearestResize(dst, src)

	assert.Equal(t, src.Pix, dst.Pix)
}

// TestNearestResizeUpscale verifies a 1x1 source fills any destination.
func TestNearestResizeUpscale(t *testing.T) {
	src := newPlane(1, 1, 1, []byte{42})
	dst := newPlane(10, 10, 1, nil)

	NearestResize(dst, src)

	testutil.AssertAllBytes(t, dst.Pix, 42)
}
