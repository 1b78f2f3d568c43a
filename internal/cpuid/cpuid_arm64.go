//go:build arm64

package cpuid

import "golang.org/x/sys/cpu"

func init() {
	available[LevelNone] = true

	// ASIMD (NEON) is mandatory on ARMv8, but trust the kernel report.
	if cpu.ARM64.HasASIMD {
		available[LevelNEON] = true
	}

	if noSimdEnv() {
		detected = LevelNone
		return
	}

	if available[LevelNEON] {
		detected = LevelNEON
	} else {
		detected = LevelNone
	}
}
