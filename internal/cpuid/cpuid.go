// Package cpuid detects the vector instruction sets available on the
// running CPU and exposes them as an ordered capability level.
//
// Detection runs once at package init. The RESIZER_NO_SIMD environment
// variable forces the scalar level regardless of hardware capabilities,
// which is useful for testing and debugging.
package cpuid

import (
	"os"
	"strconv"

	simdcpu "github.com/tphakala/simd/cpu"
)

// Level represents a vector instruction set capability tier.
type Level int

const (
	// LevelNone indicates no SIMD, pure Go scalar loops.
	LevelNone Level = iota

	// LevelSSE41 indicates SSE4.1 instructions (128-bit SIMD).
	LevelSSE41

	// LevelAVX2 indicates AVX2 instructions (256-bit SIMD).
	LevelAVX2

	// LevelNEON indicates ARM NEON instructions (128-bit SIMD).
	LevelNEON

	numLevels
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelSSE41:
		return "sse4.1"
	case LevelAVX2:
		return "avx2"
	case LevelNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// IsValid reports whether l is a known capability level.
func (l Level) IsValid() bool {
	return l >= LevelNone && l < numLevels
}

// available marks the levels the running CPU can execute.
// LevelNone is always available; the rest are set by the per-arch init.
var available [numLevels]bool

// detected is the best available level for this runtime.
var detected Level

// Detected returns the best vector capability level of the running CPU.
func Detected() Level {
	return detected
}

// Supported reports whether the running CPU can execute code paths
// selected for the given level.
func Supported(l Level) bool {
	return l.IsValid() && available[l]
}

// Info returns a human-readable description of the SIMD backend in use
// by the vectorized kernels.
func Info() string {
	return simdcpu.Info()
}

// noSimdEnv reports whether the RESIZER_NO_SIMD environment variable
// requests scalar-only operation.
func noSimdEnv() bool {
	val := os.Getenv("RESIZER_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
