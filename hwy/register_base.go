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

// This file provides the pure Go (scalar) lowering of every register. It is
// always compiled: the hardware lowerings in register_avx.go replace these
// tables at init time, and HWY_NO_SIMD keeps them in place.

var int32x4Scalar = lowering[Int32x4]{
	level: DispatchScalar,
	broadcast: func(x int32) (r Int32x4) {
		broadcastLanes(r[:], x)
		return r
	},
	add: func(a, b Int32x4) (r Int32x4) {
		addLanes(r[:], a[:], b[:])
		return r
	},
	sub: func(a, b Int32x4) (r Int32x4) {
		subLanes(r[:], a[:], b[:])
		return r
	},
	mul: func(a, b Int32x4) (r Int32x4) {
		mulLanes(r[:], a[:], b[:])
		return r
	},
	greater: func(a, b Int32x4) (r Int32x4) {
		greaterLanes(r[:], a[:], b[:])
		return r
	},
	blend: func(mask, falseValue, trueValue Int32x4) (r Int32x4) {
		blendLanes(r[:], mask[:], falseValue[:], trueValue[:])
		return r
	},
}

var int32x8Scalar = lowering[Int32x8]{
	level: DispatchScalar,
	broadcast: func(x int32) (r Int32x8) {
		broadcastLanes(r[:], x)
		return r
	},
	add: func(a, b Int32x8) (r Int32x8) {
		addLanes(r[:], a[:], b[:])
		return r
	},
	sub: func(a, b Int32x8) (r Int32x8) {
		subLanes(r[:], a[:], b[:])
		return r
	},
	mul: func(a, b Int32x8) (r Int32x8) {
		mulLanes(r[:], a[:], b[:])
		return r
	},
	greater: func(a, b Int32x8) (r Int32x8) {
		greaterLanes(r[:], a[:], b[:])
		return r
	},
	blend: func(mask, falseValue, trueValue Int32x8) (r Int32x8) {
		blendLanes(r[:], mask[:], falseValue[:], trueValue[:])
		return r
	},
}

func broadcastLanes(dst []int32, x int32) {
	for i := range dst {
		dst[i] = x
	}
}

// addLanes wraps on overflow like the native integer add.
func addLanes(dst, a, b []int32) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func subLanes(dst, a, b []int32) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// mulLanes keeps the low 32 bits of each product, like VPMULLD.
func mulLanes(dst, a, b []int32) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// greaterLanes writes -1 (all bits set) where a > b under signed comparison
// and 0 elsewhere.
func greaterLanes(dst, a, b []int32) {
	for i := range dst {
		if a[i] > b[i] {
			dst[i] = -1
		} else {
			dst[i] = 0
		}
	}
}

// blendLanes takes trueValue where the mask lane's sign bit is set.
// For pure masks this is the same as testing for all-ones.
func blendLanes(dst, mask, falseValue, trueValue []int32) {
	for i := range dst {
		if mask[i] < 0 {
			dst[i] = trueValue[i]
		} else {
			dst[i] = falseValue[i]
		}
	}
}
