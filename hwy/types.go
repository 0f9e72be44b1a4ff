// Package hwy provides fixed-width SIMD vectors with a single generic surface
// for every supported (element type, register width) pair.
//
// A vector is named by its element type and its register type:
//
//	Vector[int32, Int32x4] // 4 lanes of int32 in a 128-bit (narrow) register
//	Vector[int32, Int32x8] // 8 lanes of int32 in a 256-bit (wide) register
//
// Each register type carries its own lowering of the vector operations, so a
// pair that has no lowering does not compile. When built with
// GOEXPERIMENT=simd on amd64, the lowerings use AVX/AVX2 instructions if the
// CPU has them; otherwise they fall back to portable lane loops.
//
// Basic usage:
//
//	import "github.com/ajroetker/fixedvec/hwy"
//
//	v := hwy.NewInt32x4(4, 7, -2, 9)
//	gt := v.Greater(hwy.Set[int32, hwy.Int32x4](5))
//	v.AddAssign(hwy.Blend(gt, hwy.Set[int32, hwy.Int32x4](10), hwy.Set[int32, hwy.Int32x4](3)))
//	fmt.Println(v) // 14 10 8 12
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
// Only the element types with a Register lowering can actually be used
// to instantiate a Vector.
type Lanes interface {
	Floats | Integers
}
