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
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/fixedvec/hwy"
)

// MinParallelChunk is the smallest chunk handed to a goroutine. Slices
// shorter than this run on the calling goroutine.
const MinParallelChunk = 4096

// ParallelThresholdAdjust is ThresholdAdjust split across at most workers
// goroutines. If workers <= 0, GOMAXPROCS is used. Chunks are multiples of
// the wide lane count, so each chunk takes the same vector path as the
// serial version and the output is identical.
//
// Each goroutine writes a disjoint range of dst. Chunks not yet started
// when ctx is cancelled are skipped and ctx.Err() is returned; dst is then
// only partially written.
func ParallelThresholdAdjust(ctx context.Context, dst, src []int32, threshold, below, above int32, workers int) error {
	n := min(len(dst), len(src))
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	if n <= MinParallelChunk || workers == 1 {
		if err := ctx.Err(); err != nil {
			return err
		}
		ThresholdAdjust(dst[:n], src[:n], threshold, below, above)
		return nil
	}

	wideLanes := hwy.Wide.Lanes(4)
	chunk := max((n+workers-1)/workers, MinParallelChunk)
	chunk = (chunk + wideLanes - 1) / wideLanes * wideLanes

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ThresholdAdjust(dst[start:end], src[start:end], threshold, below, above)
			return nil
		})
	}
	return g.Wait()
}
