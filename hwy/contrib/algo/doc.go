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

// Package algo applies hwy vector operations to whole slices.
//
// # Threshold adjust
//
// ThresholdAdjust is the compare, blend and accumulate pattern run over a
// slice: every element above a threshold gets one adjustment added, every
// other element another.
//
//	src := []int32{4, 7, -2, 9, 3}
//	dst := make([]int32, len(src))
//	algo.ThresholdAdjust(dst, src, 5, 10, 3) // dst = [14 10 8 12 13]
//
// The slice is consumed in wide (8-lane) vectors, then at most one narrow
// (4-lane) vector, then a scalar tail, so the result is identical for every
// length.
//
// ParallelThresholdAdjust splits large slices into lane-aligned chunks and
// runs them on a bounded number of goroutines.
package algo
