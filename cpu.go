package resizer

import "github.com/tphakala/go-image-resizer/internal/cpuid"

// CPUExtensions identifies a vector instruction capability tier used by
// the resize kernels.
type CPUExtensions int

const (
	// CPUExtensionsNone selects the pure Go scalar kernels.
	CPUExtensionsNone CPUExtensions = iota

	// CPUExtensionsSSE41 selects kernels for SSE4.1-class hardware.
	CPUExtensionsSSE41

	// CPUExtensionsAVX2 selects kernels for AVX2-class hardware.
	CPUExtensionsAVX2

	// CPUExtensionsNEON selects kernels for ARM NEON hardware.
	CPUExtensionsNEON
)

// DetectCPUExtensions returns the best extension tier the running CPU
// supports, or CPUExtensionsNone when the RESIZER_NO_SIMD environment
// variable is set.
func DetectCPUExtensions() CPUExtensions {
	return fromLevel(cpuid.Detected())
}

// Supported reports whether the running CPU can execute this tier.
func (c CPUExtensions) Supported() bool {
	return cpuid.Supported(c.level())
}

// String returns the tier name.
func (c CPUExtensions) String() string {
	return c.level().String()
}

func (c CPUExtensions) level() cpuid.Level {
	switch c {
	case CPUExtensionsSSE41:
		return cpuid.LevelSSE41
	case CPUExtensionsAVX2:
		return cpuid.LevelAVX2
	case CPUExtensionsNEON:
		return cpuid.LevelNEON
	default:
		return cpuid.LevelNone
	}
}

func fromLevel(l cpuid.Level) CPUExtensions {
	switch l {
	case cpuid.LevelSSE41:
		return CPUExtensionsSSE41
	case cpuid.LevelAVX2:
		return CPUExtensionsAVX2
	case cpuid.LevelNEON:
		return CPUExtensionsNEON
	default:
		return CPUExtensionsNone
	}
}

// SIMDInfo returns a human-readable description of the SIMD backend
// used by the vectorized kernels.
func SIMDInfo() string {
	return cpuid.Info()
}
