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

package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/fixedvec/hwy/contrib/algo"
)

type bulkOptions struct {
	threshold int32
	below     int32
	above     int32
	workers   int
}

func newBulkCmd(root *rootOptions) *cobra.Command {
	opts := &bulkOptions{}

	cmd := &cobra.Command{
		Use:   "bulk [flags] value...",
		Short: "Apply the threshold adjustment to any number of values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := parseLanes(args)
			if err != nil {
				return err
			}
			dst := make([]int32, len(src))

			start := time.Now()
			err = algo.ParallelThresholdAdjust(cmd.Context(), dst, src, opts.threshold, opts.below, opts.above, opts.workers)
			if err != nil {
				return fmt.Errorf("threshold adjust: %w", err)
			}
			root.logger.Info("bulk adjust complete",
				"values", len(src),
				"workers", opts.workers,
				"elapsed", time.Since(start))

			fmt.Fprintln(cmd.OutOrStdout(), joinValues(dst))
			return nil
		},
	}

	cmd.Flags().Int32Var(&opts.threshold, "threshold", 0, "Values greater than this take the --above adjustment")
	cmd.Flags().Int32Var(&opts.below, "below", 0, "Adjustment for values not above the threshold")
	cmd.Flags().Int32Var(&opts.above, "above", 0, "Adjustment for values above the threshold")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "Goroutines to use (0 = GOMAXPROCS)")
	return cmd
}

// joinValues renders values space-separated, like a vector's lanes.
func joinValues(values []int32) string {
	return strings.Join(lo.Map(values, func(x int32, _ int) string {
		return strconv.FormatInt(int64(x), 10)
	}), " ")
}
