//go:build !amd64 && !arm64

package hwy

func init() {
	// Non-amd64 architectures use the portable lowering.
	currentLevel = DispatchScalar
	currentWidth = Narrow
	currentName = "scalar"
}

// HasAVX returns false on non-x86 architectures.
func HasAVX() bool {
	return false
}

// HasAVX2 returns false on non-x86 architectures.
func HasAVX2() bool {
	return false
}

// HasNEON returns false on non-ARM architectures.
func HasNEON() bool {
	return false
}
