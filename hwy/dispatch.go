package hwy

import (
	"os"
	"strconv"
	"sync/atomic"
)

// DispatchLevel represents the instruction set backing a lowering.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go lane loops.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates an x86-64 host without AVX2. No archsimd
	// lowering is installed at this level.
	DispatchSSE2

	// DispatchAVX indicates VEX-encoded 128-bit instructions.
	DispatchAVX

	// DispatchAVX2 indicates AVX2 instructions (256-bit integer SIMD).
	DispatchAVX2

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX:
		return "avx"
	case DispatchAVX2:
		return "avx2"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is the dispatch target for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the register width of the widest active lowering.
// Set by init() in dispatch_*.go files.
var currentWidth Width = Narrow

// currentName is the human-readable name of the current level.
var currentName = "scalar"

// checkMasks enables validation of Blend comparison vectors.
var checkMasks atomic.Bool

func init() {
	checkMasks.Store(envBool("HWY_CHECK_MASKS"))
}

// CurrentLevel returns the dispatch target for this host. On amd64 hosts
// without AVX2 it is DispatchSSE2 while every register keeps its portable
// lowering; use LevelOf for the lowering backing a given register.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the register width of the widest active lowering.
func CurrentWidth() Width {
	return currentWidth
}

// CurrentName returns a human-readable name for the current SIMD target.
// For example: "avx2", "avx", "scalar".
func CurrentName() string {
	return currentName
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, every register keeps its portable lowering regardless of CPU
// capabilities. This is useful for testing and debugging.
func NoSimdEnv() bool {
	return envBool("HWY_NO_SIMD")
}

// CheckMasks reports whether Blend validates that every comparison lane is
// all-ones or all-zeros. It starts from the HWY_CHECK_MASKS environment
// variable.
func CheckMasks() bool {
	return checkMasks.Load()
}

// SetCheckMasks turns Blend mask validation on or off and returns the
// previous setting.
func SetCheckMasks(on bool) bool {
	return checkMasks.Swap(on)
}

func envBool(name string) bool {
	val := os.Getenv(name)
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
