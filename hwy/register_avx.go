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

//go:build amd64 && goexperiment.simd

package hwy

import "simd/archsimd"

// This file lowers the registers onto archsimd vectors. Int32x4 uses the
// VEX-encoded 128-bit forms (VPADDD/VPCMPGTD/VPMULLD) and Int32x8 the 256-bit
// ones. Both tables are installed only on AVX2 hosts: BroadcastInt32x4 is
// VPBROADCASTD, an AVX2 instruction.
//
// Merge semantics: a.Merge(b, mask) returns a where mask is TRUE, b where
// FALSE. Blend converts the comparison register to a lane mask with a
// signed "less than zero" test first, so only the sign bit of each lane
// decides, matching blendLanes.

var int32x4AVX = lowering[Int32x4]{
	level: DispatchAVX,
	broadcast: func(x int32) (r Int32x4) {
		archsimd.BroadcastInt32x4(x).StoreSlice(r[:])
		return r
	},
	add: func(a, b Int32x4) (r Int32x4) {
		va := archsimd.LoadInt32x4Slice(a[:])
		vb := archsimd.LoadInt32x4Slice(b[:])
		va.Add(vb).StoreSlice(r[:])
		return r
	},
	sub: func(a, b Int32x4) (r Int32x4) {
		va := archsimd.LoadInt32x4Slice(a[:])
		vb := archsimd.LoadInt32x4Slice(b[:])
		va.Sub(vb).StoreSlice(r[:])
		return r
	},
	mul: func(a, b Int32x4) (r Int32x4) {
		va := archsimd.LoadInt32x4Slice(a[:])
		vb := archsimd.LoadInt32x4Slice(b[:])
		va.Mul(vb).StoreSlice(r[:])
		return r
	},
	greater: func(a, b Int32x4) (r Int32x4) {
		va := archsimd.LoadInt32x4Slice(a[:])
		vb := archsimd.LoadInt32x4Slice(b[:])
		ones := archsimd.BroadcastInt32x4(-1)
		zero := archsimd.BroadcastInt32x4(0)
		ones.Merge(zero, va.Greater(vb)).StoreSlice(r[:])
		return r
	},
	blend: func(mask, falseValue, trueValue Int32x4) (r Int32x4) {
		sel := archsimd.LoadInt32x4Slice(mask[:]).Less(archsimd.BroadcastInt32x4(0))
		vt := archsimd.LoadInt32x4Slice(trueValue[:])
		vf := archsimd.LoadInt32x4Slice(falseValue[:])
		vt.Merge(vf, sel).StoreSlice(r[:])
		return r
	},
}

var int32x8AVX2 = lowering[Int32x8]{
	level: DispatchAVX2,
	broadcast: func(x int32) (r Int32x8) {
		archsimd.BroadcastInt32x8(x).StoreSlice(r[:])
		return r
	},
	add: func(a, b Int32x8) (r Int32x8) {
		va := archsimd.LoadInt32x8Slice(a[:])
		vb := archsimd.LoadInt32x8Slice(b[:])
		va.Add(vb).StoreSlice(r[:])
		return r
	},
	sub: func(a, b Int32x8) (r Int32x8) {
		va := archsimd.LoadInt32x8Slice(a[:])
		vb := archsimd.LoadInt32x8Slice(b[:])
		va.Sub(vb).StoreSlice(r[:])
		return r
	},
	mul: func(a, b Int32x8) (r Int32x8) {
		va := archsimd.LoadInt32x8Slice(a[:])
		vb := archsimd.LoadInt32x8Slice(b[:])
		va.Mul(vb).StoreSlice(r[:])
		return r
	},
	greater: func(a, b Int32x8) (r Int32x8) {
		va := archsimd.LoadInt32x8Slice(a[:])
		vb := archsimd.LoadInt32x8Slice(b[:])
		ones := archsimd.BroadcastInt32x8(-1)
		zero := archsimd.BroadcastInt32x8(0)
		ones.Merge(zero, va.Greater(vb)).StoreSlice(r[:])
		return r
	},
	blend: func(mask, falseValue, trueValue Int32x8) (r Int32x8) {
		sel := archsimd.LoadInt32x8Slice(mask[:]).Less(archsimd.BroadcastInt32x8(0))
		vt := archsimd.LoadInt32x8Slice(trueValue[:])
		vf := archsimd.LoadInt32x8Slice(falseValue[:])
		vt.Merge(vf, sel).StoreSlice(r[:])
		return r
	},
}
