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

import (
	"context"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/fixedvec/hwy"
)

func thresholdAdjustRef(src []int32, threshold, below, above int32) []int32 {
	out := make([]int32, len(src))
	for i, x := range src {
		if x > threshold {
			out[i] = x + above
		} else {
			out[i] = x + below
		}
	}
	return out
}

func randomInts(rng *rand.Rand, n int) []int32 {
	out := make([]int32, n)
	for i := range out {
		out[i] = int32(rng.Uint32())
	}
	return out
}

func TestThresholdAdjustScenario(t *testing.T) {
	src := []int32{4, 7, -2, 9, 3}
	dst := make([]int32, len(src))

	n := ThresholdAdjust(dst, src, 5, 10, 3)
	assert.Equal(t, 5, n)
	assert.Equal(t, []int32{14, 10, 8, 12, 13}, dst)
}

func TestThresholdAdjustAllLengths(t *testing.T) {
	rng := rand.New(rand.NewPCG(21, 22))
	for n := 0; n <= 40; n++ {
		src := randomInts(rng, n)
		dst := make([]int32, n)

		got := ThresholdAdjust(dst, src, 0, -7, math.MaxInt32)
		require.Equal(t, n, got)
		if diff := cmp.Diff(thresholdAdjustRef(src, 0, -7, math.MaxInt32), dst); diff != "" {
			t.Fatalf("ThresholdAdjust length %d mismatch (-want +got):\n%s", n, diff)
		}
	}
}

func TestThresholdAdjustInPlace(t *testing.T) {
	data := []int32{4, -2, 9, 7, 3, 2, 4, 6, 100, -100, 5, 6}
	want := thresholdAdjustRef(data, 5, 0, 3)

	ThresholdAdjust(data, data, 5, 0, 3)
	assert.Equal(t, want, data)
}

func TestThresholdAdjustShortDst(t *testing.T) {
	src := []int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	dst := make([]int32, 6)

	n := ThresholdAdjust(dst, src, 3, 100, 1000)
	assert.Equal(t, 6, n)
	assert.Equal(t, []int32{101, 102, 103, 1004, 1005, 1006}, dst)
}

func TestThresholdKernelShortSourcePanics(t *testing.T) {
	k := newThresholdKernel[hwy.Int32x8](0, 1, 2)
	dst := make([]int32, 8)

	defer func() {
		r := recover()
		require.NotNil(t, r, "apply on a 5-element source should panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %T is not an error", r)
		var lce *hwy.LaneCountError
		require.ErrorAs(t, err, &lce)
		assert.Equal(t, hwy.LaneCountError{Want: 8, Got: 5}, *lce)
	}()
	k.apply(dst, []int32{1, 2, 3, 4, 5})
}

func TestParallelThresholdAdjustMatchesSerial(t *testing.T) {
	rng := rand.New(rand.NewPCG(23, 24))
	for _, n := range []int{0, 17, MinParallelChunk, MinParallelChunk*3 + 5, 100_003} {
		src := randomInts(rng, n)
		want := make([]int32, n)
		ThresholdAdjust(want, src, -12345, 1, -1)

		for _, workers := range []int{0, 1, 3, 8} {
			got := make([]int32, n)
			err := ParallelThresholdAdjust(context.Background(), got, src, -12345, 1, -1, workers)
			require.NoError(t, err)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("n=%d workers=%d mismatch (-want +got):\n%s", n, workers, diff)
			}
		}
	}
}

func TestParallelThresholdAdjustCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := make([]int32, MinParallelChunk*4)
	dst := make([]int32, len(src))
	err := ParallelThresholdAdjust(ctx, dst, src, 0, 1, 2, 4)
	assert.ErrorIs(t, err, context.Canceled)

	err = ParallelThresholdAdjust(ctx, dst[:8], src[:8], 0, 1, 2, 4)
	assert.ErrorIs(t, err, context.Canceled)
}

func BenchmarkThresholdAdjust(b *testing.B) {
	rng := rand.New(rand.NewPCG(1, 1))
	src := randomInts(rng, 1024)
	dst := make([]int32, len(src))
	b.SetBytes(int64(len(src) * 4))
	for b.Loop() {
		ThresholdAdjust(dst, src, 0, 1, 2)
	}
}
