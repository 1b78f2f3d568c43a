package filter

import (
	"math"
	"sort"

	"github.com/tphakala/simd/f64"

	"github.com/tphakala/go-image-resizer/internal/simdops"
)

const (
	// FixedBits is the fractional precision of the quantized coefficients
	// used by the 8-bit convolution kernels.
	FixedBits = 14

	// FixedOne is the fixed-point representation of weight 1.0.
	FixedOne = 1 << FixedBits

	// FixedHalf is the rounding bias added before the final shift,
	// giving round-half-up behavior.
	FixedHalf = 1 << (FixedBits - 1)
)

// Chunk holds the normalized contribution of a span of source indices to
// one destination index along one axis. Weights[i] is the weight of
// source index Start+i and the weights sum to 1.0.
type Chunk struct {
	Start   int
	Weights []float64
}

// ChunkOf is a Chunk with weights converted to float type F for the
// float-accumulating convolution kernels.
type ChunkOf[F simdops.Float] struct {
	Start   int
	Weights []F
}

// FixedChunk is a Chunk with weights quantized to FixedBits fixed point
// for the integer convolution kernels. The coefficients of every chunk
// sum to exactly FixedOne.
type FixedChunk struct {
	Start  int
	Coeffs []int16
}

// Compute builds the coefficient table mapping a source axis of length
// srcLen onto a destination axis of length dstLen with kernel k. Both
// lengths must be positive.
//
// When downsampling, the kernel support is widened by the scale factor
// srcLen/dstLen so that every source pixel contributes to some
// destination pixel; this is what prevents aliasing on large ratios.
// Taps falling outside [0, srcLen) are dropped and the remaining weights
// renormalized so each chunk sums to 1.0.
func Compute(srcLen, dstLen int, k Kernel) []Chunk {
	ratio := float64(srcLen) / float64(dstLen)
	scale := math.Max(1.0, ratio)
	radius := k.Support * scale

	chunks := make([]Chunk, dstLen)
	for d := range dstLen {
		center := (float64(d)+0.5)*ratio - 0.5

		lo := int(math.Floor(center - radius))
		hi := int(math.Ceil(center + radius))
		if lo < 0 {
			lo = 0
		}
		if hi > srcLen-1 {
			hi = srcLen - 1
		}

		weights := make([]float64, hi-lo+1)
		for i := range weights {
			weights[i] = k.Weight((float64(lo+i) - center) / scale)
		}

		// Renormalize: taps clamped away at the image edges must not
		// darken or brighten the output.
		sum := f64.Sum(weights)
		f64.Scale(weights, weights, 1.0/sum)

		chunks[d] = Chunk{Start: lo, Weights: weights}
	}
	return chunks
}

// ConvertChunks converts the float64 coefficient table into float type F.
func ConvertChunks[F simdops.Float](chunks []Chunk) []ChunkOf[F] {
	out := make([]ChunkOf[F], len(chunks))
	for i, ch := range chunks {
		weights := make([]F, len(ch.Weights))
		for j, w := range ch.Weights {
			weights[j] = F(w)
		}
		out[i] = ChunkOf[F]{Start: ch.Start, Weights: weights}
	}
	return out
}

// Quantize converts the coefficient table to FixedBits fixed point.
//
// Rounding error is diffused across the taps of each chunk in order of
// decreasing weight magnitude, so the quantized coefficients always sum
// to exactly FixedOne and flat input regions are reproduced bit-exactly.
func Quantize(chunks []Chunk) []FixedChunk {
	out := make([]FixedChunk, len(chunks))
	for i, ch := range chunks {
		order := make([]int, len(ch.Weights))
		for j := range order {
			order[j] = j
		}
		sort.Slice(order, func(a, b int) bool {
			return math.Abs(ch.Weights[order[b]]) < math.Abs(ch.Weights[order[a]])
		})

		coeffs := make([]int16, len(ch.Weights))
		diff := 0.0
		for _, j := range order {
			w := ch.Weights[j]*FixedOne + diff
			iw := math.Floor(w + 0.5)
			coeffs[j] = int16(iw)
			diff = w - iw
		}
		out[i] = FixedChunk{Start: ch.Start, Coeffs: coeffs}
	}
	return out
}
