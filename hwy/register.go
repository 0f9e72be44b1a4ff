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

// Int32x4 is a 128-bit register holding 4 int32 lanes.
type Int32x4 [4]int32

// Int32x8 is a 256-bit register holding 8 int32 lanes.
type Int32x8 [8]int32

// Register is the set of physical registers a Vector with element type T can
// be built on. The type list names every supported register and the
// unexported methods tie each one to its element type, so an unsupported
// (element type, register) pair fails to compile:
//
//	hwy.Vector[int32, hwy.Int32x4] // ok
//	hwy.Vector[int64, hwy.Int32x4] // Int32x4 does not satisfy Register[Int32x4, int64]
//	hwy.Vector[int32, [4]int32]    // [4]int32 is not in the type set
type Register[R any, T Lanes] interface {
	Int32x4 | Int32x8

	broadcast(x T) R
	load(src []T) R
	add(b R) R
	sub(b R) R
	mul(b R) R
	greater(b R) R
	// blend is called on the comparison register.
	blend(falseValue, trueValue R) R
	lanes() []T
	firstNonMask() int
	width() Width
	level() DispatchLevel
}

// lowering is the per-register operation table. Each register has a portable
// table; init() in dispatch_*.go may swap in a hardware-backed one.
type lowering[R any] struct {
	level     DispatchLevel
	broadcast func(x int32) R
	add       func(a, b R) R
	sub       func(a, b R) R
	mul       func(a, b R) R
	greater   func(a, b R) R
	blend     func(mask, falseValue, trueValue R) R
}

var (
	int32x4Ops = int32x4Scalar
	int32x8Ops = int32x8Scalar
)

func (Int32x4) broadcast(x int32) Int32x4 { return int32x4Ops.broadcast(x) }

func (Int32x4) load(src []int32) (r Int32x4) {
	copy(r[:], src)
	return r
}

func (r Int32x4) add(b Int32x4) Int32x4     { return int32x4Ops.add(r, b) }
func (r Int32x4) sub(b Int32x4) Int32x4     { return int32x4Ops.sub(r, b) }
func (r Int32x4) mul(b Int32x4) Int32x4     { return int32x4Ops.mul(r, b) }
func (r Int32x4) greater(b Int32x4) Int32x4 { return int32x4Ops.greater(r, b) }

func (r Int32x4) blend(falseValue, trueValue Int32x4) Int32x4 {
	return int32x4Ops.blend(r, falseValue, trueValue)
}

func (r Int32x4) lanes() []int32     { return r[:] }
func (r Int32x4) firstNonMask() int  { return firstNonMaskLane(r[:]) }
func (Int32x4) width() Width         { return Narrow }
func (Int32x4) level() DispatchLevel { return int32x4Ops.level }

func (Int32x8) broadcast(x int32) Int32x8 { return int32x8Ops.broadcast(x) }

func (Int32x8) load(src []int32) (r Int32x8) {
	copy(r[:], src)
	return r
}

func (r Int32x8) add(b Int32x8) Int32x8     { return int32x8Ops.add(r, b) }
func (r Int32x8) sub(b Int32x8) Int32x8     { return int32x8Ops.sub(r, b) }
func (r Int32x8) mul(b Int32x8) Int32x8     { return int32x8Ops.mul(r, b) }
func (r Int32x8) greater(b Int32x8) Int32x8 { return int32x8Ops.greater(r, b) }

func (r Int32x8) blend(falseValue, trueValue Int32x8) Int32x8 {
	return int32x8Ops.blend(r, falseValue, trueValue)
}

func (r Int32x8) lanes() []int32     { return r[:] }
func (r Int32x8) firstNonMask() int  { return firstNonMaskLane(r[:]) }
func (Int32x8) width() Width         { return Wide }
func (Int32x8) level() DispatchLevel { return int32x8Ops.level }

// LevelOf returns the instruction set backing Vector[T, R] in this process.
func LevelOf[T Lanes, R Register[R, T]]() DispatchLevel {
	var r R
	return r.level()
}

// firstNonMaskLane returns the index of the first lane that is neither
// all-ones nor all-zeros, or -1.
func firstNonMaskLane(lanes []int32) int {
	for i, x := range lanes {
		if x != 0 && x != -1 {
			return i
		}
	}
	return -1
}
