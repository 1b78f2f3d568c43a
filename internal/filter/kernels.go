// Package filter provides the convolution filter kernels and the
// per-axis coefficient tables used by the resize engine.
package filter

import "math"

const (
	// lanczosLobes is the number of sinc lobes kept by the Lanczos3 window.
	lanczosLobes = 3.0

	// cubicB and cubicC are the Mitchell-Netravali parameters for the
	// Catmull-Rom spline.
	cubicB = 0.0
	cubicC = 0.5

	// sincZeroThreshold guards the removable singularity at x = 0.
	sincZeroThreshold = 1e-10
)

// Kernel describes a separable resampling filter: a weight function of
// normalized distance and the support radius beyond which the weight is
// defined to be zero.
type Kernel struct {
	// Name identifies the kernel in diagnostics.
	Name string

	// Support is the filter radius in source-pixel units.
	Support float64

	// Weight evaluates the kernel at distance x. It is symmetric and
	// returns 0 outside [-Support, Support].
	Weight func(x float64) float64
}

// Bilinear returns the triangle kernel: linear falloff to zero at
// distance 1.
func Bilinear() Kernel {
	return Kernel{
		Name:    "bilinear",
		Support: 1.0,
		Weight: func(x float64) float64 {
			x = math.Abs(x)
			if x < 1.0 {
				return 1.0 - x
			}
			return 0.0
		},
	}
}

// CatmullRom returns the Catmull-Rom cubic spline kernel (the
// Mitchell-Netravali cubic with B=0, C=0.5). It passes through the
// control points and can overshoot the source value range; the engine
// clamps only the final accumulated value, never individual taps.
func CatmullRom() Kernel {
	return Kernel{
		Name:    "catmull-rom",
		Support: 2.0,
		Weight: func(x float64) float64 {
			x = math.Abs(x)
			if x < 1.0 {
				return ((12.0-9.0*cubicB-6.0*cubicC)*x*x*x +
					(-18.0+12.0*cubicB+6.0*cubicC)*x*x +
					(6.0 - 2.0*cubicB)) / 6.0
			}
			if x < 2.0 {
				return ((-cubicB-6.0*cubicC)*x*x*x +
					(6.0*cubicB+30.0*cubicC)*x*x +
					(-12.0*cubicB-48.0*cubicC)*x +
					(8.0*cubicB + 24.0*cubicC)) / 6.0
			}
			return 0.0
		},
	}
}

// Lanczos3 returns the 3-lobed windowed-sinc kernel:
// sinc(x) * sinc(x/3) for |x| < 3.
func Lanczos3() Kernel {
	return Kernel{
		Name:    "lanczos3",
		Support: lanczosLobes,
		Weight: func(x float64) float64 {
			x = math.Abs(x)
			if x >= lanczosLobes {
				return 0.0
			}
			return sinc(x) * sinc(x/lanczosLobes)
		},
	}
}

// sinc is the normalized sinc function sin(πx)/(πx).
func sinc(x float64) float64 {
	if math.Abs(x) < sincZeroThreshold {
		return 1.0
	}
	arg := math.Pi * x
	return math.Sin(arg) / arg
}
