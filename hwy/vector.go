// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hwy

import (
	"fmt"
	"slices"
	"unsafe"
)

// Vector is a fixed-width SIMD value of element type T held in register R.
// It has exactly one physical representation, R, and its lane count is
// sizeof(R)/sizeof(T).
//
// Vectors are values: assignment copies the register, and every operation
// except AddAssign returns a fresh vector. The zero value has all lanes zero.
//
// A comparison result (mask) is a Vector whose lanes are all-ones or
// all-zeros. Only Greater produces masks and only Blend consumes them.
type Vector[T Lanes, R Register[R, T]] struct {
	reg R
}

// Narrow32 is a 4-lane int32 vector in a 128-bit register.
type Narrow32 = Vector[int32, Int32x4]

// Wide32 is an 8-lane int32 vector in a 256-bit register.
type Wide32 = Vector[int32, Int32x8]

// Set creates a vector with all lanes set to value.
func Set[T Lanes, R Register[R, T]](value T) Vector[T, R] {
	var r R
	return Vector[T, R]{reg: r.broadcast(value)}
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes, R Register[R, T]]() Vector[T, R] {
	return Vector[T, R]{}
}

// NewInt32x4 creates a narrow int32 vector from exactly four lanes; v0 is
// lane 0.
func NewInt32x4(v0, v1, v2, v3 int32) Narrow32 {
	return Narrow32{reg: Int32x4{v0, v1, v2, v3}}
}

// NewInt32x8 creates a wide int32 vector from exactly eight lanes; v0 is
// lane 0.
func NewInt32x8(v0, v1, v2, v3, v4, v5, v6, v7 int32) Wide32 {
	return Wide32{reg: Int32x8{v0, v1, v2, v3, v4, v5, v6, v7}}
}

// FromRegister wraps a raw register value.
func FromRegister[T Lanes, R Register[R, T]](r R) Vector[T, R] {
	return Vector[T, R]{reg: r}
}

// Load creates a vector from the first NumLanes values of src. Values past
// the lane count are ignored; a shorter slice is an error rather than being
// zero-padded.
func Load[T Lanes, R Register[R, T]](src []T) (Vector[T, R], error) {
	var v Vector[T, R]
	n := v.NumLanes()
	if len(src) < n {
		return v, &LaneCountError{Want: n, Got: len(src)}
	}
	v.reg = v.reg.load(src[:n])
	return v, nil
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vector[T, R]) NumLanes() int {
	var zero T
	return int(unsafe.Sizeof(v.reg) / unsafe.Sizeof(zero))
}

// Width returns the register width backing this vector.
func (v Vector[T, R]) Width() Width {
	return v.reg.width()
}

// Lane returns lane i. It panics if i is out of range.
func (v Vector[T, R]) Lane(i int) T {
	return v.reg.lanes()[i]
}

// Lanes returns a copy of the lanes in lane order.
func (v Vector[T, R]) Lanes() []T {
	return slices.Clone(v.reg.lanes())
}

// Register returns a copy of the underlying register.
func (v Vector[T, R]) Register() R {
	return v.reg
}

// Store writes the lanes to dst and returns the number written, which is
// min(len(dst), NumLanes()).
func (v Vector[T, R]) Store(dst []T) int {
	return copy(dst, v.reg.lanes())
}

// Add returns the lane-wise sum. Integer lanes wrap on overflow.
func (v Vector[T, R]) Add(o Vector[T, R]) Vector[T, R] {
	return Vector[T, R]{reg: v.reg.add(o.reg)}
}

// AddAssign replaces v's lanes with the lane-wise sum of v and o and returns
// v so calls can be chained. It is the only operation that mutates a
// vector.
func (v *Vector[T, R]) AddAssign(o Vector[T, R]) *Vector[T, R] {
	v.reg = v.reg.add(o.reg)
	return v
}

// Sub returns the lane-wise difference. Integer lanes wrap on overflow.
func (v Vector[T, R]) Sub(o Vector[T, R]) Vector[T, R] {
	return Vector[T, R]{reg: v.reg.sub(o.reg)}
}

// Mul returns the lane-wise product. Integer lanes keep the low bits of
// the product, so they wrap on overflow like Add.
func (v Vector[T, R]) Mul(o Vector[T, R]) Vector[T, R] {
	return Vector[T, R]{reg: v.reg.mul(o.reg)}
}

// Greater compares lanes as signed values and returns a mask whose lane i
// is all-ones if v[i] > o[i] and all-zeros otherwise.
func (v Vector[T, R]) Greater(o Vector[T, R]) Vector[T, R] {
	return Vector[T, R]{reg: v.reg.greater(o.reg)}
}

// Equal reports whether all lanes of v and o are equal.
func (v Vector[T, R]) Equal(o Vector[T, R]) bool {
	return slices.Equal(v.reg.lanes(), o.reg.lanes())
}

// IsMask reports whether every lane is all-ones or all-zeros.
func (v Vector[T, R]) IsMask() bool {
	return v.reg.firstNonMask() < 0
}

// Blend selects, for each lane, trueValue where comparison is set and
// falseValue where it is clear.
//
// The argument order is (comparison, falseValue, trueValue). That is the
// reverse of the usual select(cond, a, b) convention; IfThenElse provides
// that order.
//
// comparison should be a mask produced by Greater. For any other bit
// pattern only the sign bit of each lane decides (set selects trueValue),
// unless mask checking is enabled (see SetCheckMasks), in which case Blend
// panics with an error wrapping ErrNotMask.
func Blend[T Lanes, R Register[R, T]](comparison, falseValue, trueValue Vector[T, R]) Vector[T, R] {
	if checkMasks.Load() {
		if i := comparison.reg.firstNonMask(); i >= 0 {
			panic(fmt.Errorf("%w: lane %d is %v", ErrNotMask, i, comparison.Lane(i)))
		}
	}
	return Vector[T, R]{reg: comparison.reg.blend(falseValue.reg, trueValue.reg)}
}

// IfThenElse returns yes where mask is set and no elsewhere.
// It is Blend with the conventional select argument order.
func IfThenElse[T Lanes, R Register[R, T]](mask, yes, no Vector[T, R]) Vector[T, R] {
	return Blend(mask, no, yes)
}
