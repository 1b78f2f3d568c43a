//go:build !amd64 && !arm64

package cpuid

func init() {
	available[LevelNone] = true
	detected = LevelNone
}
