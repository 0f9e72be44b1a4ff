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
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ajroetker/fixedvec/hwy"
)

func newInfoCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the dispatch level and the lowering backing each register",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root.logger.Debug("reporting dispatch",
				"check_masks", hwy.CheckMasks(),
				"no_simd", hwy.NoSimdEnv())

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "target:\t%s\n", hwy.CurrentName())
			fmt.Fprintf(w, "level:\t%s\n", hwy.CurrentLevel())
			fmt.Fprintf(w, "width:\t%s (%d bits)\n", hwy.CurrentWidth(), hwy.CurrentWidth().Bits())
			fmt.Fprintf(w, "Int32x4:\t%s\n", hwy.LevelOf[int32, hwy.Int32x4]())
			fmt.Fprintf(w, "Int32x8:\t%s\n", hwy.LevelOf[int32, hwy.Int32x8]())
			fmt.Fprintf(w, "avx:\t%t\n", hwy.HasAVX())
			fmt.Fprintf(w, "avx2:\t%t\n", hwy.HasAVX2())
			fmt.Fprintf(w, "neon:\t%t\n", hwy.HasNEON())
			fmt.Fprintf(w, "check masks:\t%t\n", hwy.CheckMasks())
			return w.Flush()
		},
	}
}
