//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

var hasNEON bool

func init() {
	// ARM64 (AArch64) always has NEON (ASIMD) available; it is part of the
	// ARMv8-A base architecture. There is no archsimd lowering for arm64
	// yet, so both registers keep the portable lane loops.
	hasNEON = cpu.ARM64.HasASIMD

	currentLevel = DispatchScalar
	currentWidth = Narrow
	currentName = "scalar"
}

// HasAVX returns false on ARM.
func HasAVX() bool {
	return false
}

// HasAVX2 returns false on ARM.
func HasAVX2() bool {
	return false
}

// HasNEON returns true if the CPU reports Advanced SIMD.
func HasNEON() bool {
	return hasNEON
}
