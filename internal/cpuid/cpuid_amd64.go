//go:build amd64

package cpuid

import "golang.org/x/sys/cpu"

func init() {
	available[LevelNone] = true

	if cpu.X86.HasSSE41 {
		available[LevelSSE41] = true
	}
	if cpu.X86.HasAVX2 {
		available[LevelAVX2] = true
	}

	if noSimdEnv() {
		detected = LevelNone
		return
	}

	switch {
	case available[LevelAVX2]:
		detected = LevelAVX2
	case available[LevelSSE41]:
		detected = LevelSSE41
	default:
		detected = LevelNone
	}
}
