// Package simdops provides generic slice kernels for float32 and float64
// types, backed either by github.com/tphakala/simd or by pure Go loops.
// This enables a single convolution codebase to support both precision
// levels without duplication.
//
// With Profile-Guided Optimization (Go 1.22+), function pointer calls in
// hot paths can be devirtualized and inlined, achieving near-zero overhead.
package simdops

import (
	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

// Float is the type constraint for supported floating-point types.
type Float interface {
	float32 | float64
}

// Ops provides slice operations for type F. Function pointers allow
// type-safe generic code while delegating to optimized type-specific
// implementations.
type Ops[F Float] struct {
	// DotProductUnsafe computes the dot product without bounds checking.
	// Use only when slices are guaranteed to have equal length.
	DotProductUnsafe func(a, b []F) F

	// Sum returns the sum of all elements.
	Sum func(a []F) F

	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []F, s F)
}

// Pre-instantiated operations for each float type and backend.
// These are package-level variables to avoid repeated allocation.
var (
	ops32 = Ops[float32]{
		DotProductUnsafe: f32.DotProductUnsafe,
		Sum:              f32.Sum,
		Scale:            f32.Scale,
	}
	ops64 = Ops[float64]{
		DotProductUnsafe: f64.DotProductUnsafe,
		Sum:              f64.Sum,
		Scale:            f64.Scale,
	}
	scalar32 = Ops[float32]{
		DotProductUnsafe: scalarDot[float32],
		Sum:              scalarSum[float32],
		Scale:            scalarScale[float32],
	}
	scalar64 = Ops[float64]{
		DotProductUnsafe: scalarDot[float64],
		Sum:              scalarSum[float64],
		Scale:            scalarScale[float64],
	}
)

// For returns the vectorized Ops instance for type F.
// The type switch happens at instantiation time, not in hot paths.
func For[F Float]() *Ops[F] {
	var zero F
	switch any(zero).(type) {
	case float32:
		ops, ok := any(&ops32).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float32")
		}
		return ops
	case float64:
		ops, ok := any(&ops64).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float64")
		}
		return ops
	default:
		panic("simdops: unsupported float type")
	}
}

// Scalar returns the pure Go Ops instance for type F. It accumulates in
// strict element order, making it the portability and reference fallback
// for the vectorized backend.
func Scalar[F Float]() *Ops[F] {
	var zero F
	switch any(zero).(type) {
	case float32:
		ops, ok := any(&scalar32).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float32")
		}
		return ops
	case float64:
		ops, ok := any(&scalar64).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float64")
		}
		return ops
	default:
		panic("simdops: unsupported float type")
	}
}

func scalarDot[F Float](a, b []F) F {
	var acc F
	for i, v := range a {
		acc += v * b[i]
	}
	return acc
}

func scalarSum[F Float](a []F) F {
	var acc F
	for _, v := range a {
		acc += v
	}
	return acc
}

func scalarScale[F Float](dst, a []F, s F) {
	for i, v := range a {
		dst[i] = v * s
	}
}
