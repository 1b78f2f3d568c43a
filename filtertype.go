package resizer

import "github.com/tphakala/go-image-resizer/internal/filter"

// FilterType selects the convolution kernel.
type FilterType int

const (
	// FilterBilinear is the triangle kernel with support radius 1.
	FilterBilinear FilterType = iota

	// FilterCatmullRom is the Catmull-Rom cubic spline with support
	// radius 2. It is sharper than bilinear and can overshoot the
	// source value range.
	FilterCatmullRom

	// FilterLanczos3 is the 3-lobed windowed sinc with support radius 3.
	FilterLanczos3
)

// Support returns the kernel's support radius in source-pixel units.
func (ft FilterType) Support() float64 {
	return ft.kernel().Support
}

// String returns the filter name.
func (ft FilterType) String() string {
	return ft.kernel().Name
}

func (ft FilterType) kernel() filter.Kernel {
	switch ft {
	case FilterCatmullRom:
		return filter.CatmullRom()
	case FilterLanczos3:
		return filter.Lanczos3()
	default:
		return filter.Bilinear()
	}
}

// ResizeAlg selects the resampling algorithm: nearest-neighbor or
// convolution with a [FilterType]. The zero value is convolution with
// [FilterBilinear].
type ResizeAlg struct {
	nearest bool
	filter  FilterType
}

// Nearest returns the nearest-neighbor algorithm.
func Nearest() ResizeAlg {
	return ResizeAlg{nearest: true}
}

// Convolution returns separable convolution with the given filter.
func Convolution(ft FilterType) ResizeAlg {
	return ResizeAlg{filter: ft}
}

// IsNearest reports whether the algorithm is nearest-neighbor.
func (a ResizeAlg) IsNearest() bool { return a.nearest }

// Filter returns the convolution filter. Meaningless for Nearest.
func (a ResizeAlg) Filter() FilterType { return a.filter }

// String returns a description of the algorithm.
func (a ResizeAlg) String() string {
	if a.nearest {
		return "nearest"
	}
	return "convolution/" + a.filter.String()
}
