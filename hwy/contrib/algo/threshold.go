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

package algo

import "github.com/ajroetker/fixedvec/hwy"

// thresholdKernel holds the broadcast operands for one register type so
// they are built once per call, not once per vector.
type thresholdKernel[R hwy.Register[R, int32]] struct {
	threshold hwy.Vector[int32, R]
	below     hwy.Vector[int32, R]
	above     hwy.Vector[int32, R]
}

func newThresholdKernel[R hwy.Register[R, int32]](threshold, below, above int32) thresholdKernel[R] {
	return thresholdKernel[R]{
		threshold: hwy.Set[int32, R](threshold),
		below:     hwy.Set[int32, R](below),
		above:     hwy.Set[int32, R](above),
	}
}

// apply processes exactly one vector from src into dst. The caller
// guarantees both hold at least NumLanes elements; a short src is a bug in
// the caller and panics with the *hwy.LaneCountError.
func (k thresholdKernel[R]) apply(dst, src []int32) {
	v, err := hwy.Load[int32, R](src)
	if err != nil {
		panic(err)
	}
	v.AddAssign(hwy.Blend(v.Greater(k.threshold), k.below, k.above))
	v.Store(dst)
}

// ThresholdAdjust writes src[i]+above to dst[i] where src[i] > threshold and
// src[i]+below elsewhere. Sums wrap on overflow. It processes
// min(len(dst), len(src)) elements and returns that count. dst and src may
// be the same slice.
func ThresholdAdjust(dst, src []int32, threshold, below, above int32) int {
	n := min(len(dst), len(src))

	wide := newThresholdKernel[hwy.Int32x8](threshold, below, above)
	wideLanes := wide.threshold.NumLanes()
	i := 0
	for ; i+wideLanes <= n; i += wideLanes {
		wide.apply(dst[i:], src[i:])
	}

	narrow := newThresholdKernel[hwy.Int32x4](threshold, below, above)
	if narrowLanes := narrow.threshold.NumLanes(); i+narrowLanes <= n {
		narrow.apply(dst[i:], src[i:])
		i += narrowLanes
	}

	for ; i < n; i++ {
		if src[i] > threshold {
			dst[i] = src[i] + above
		} else {
			dst[i] = src[i] + below
		}
	}
	return n
}
