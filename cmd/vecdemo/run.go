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

	"github.com/spf13/cobra"

	"github.com/ajroetker/fixedvec/hwy"
)

// scenario is the rendered result of one compare/blend/accumulate pass.
type scenario struct {
	Width      hwy.Width
	Level      hwy.DispatchLevel
	Input      string
	Comparison string
	Blend      string
	Result     string
}

// runScenario computes v += Blend(v > threshold, falseValue, trueValue) on
// a vector built from exactly NumLanes values.
func runScenario[R hwy.Register[R, int32]](lanes []int32, threshold, falseValue, trueValue int32) (scenario, error) {
	var zero hwy.Vector[int32, R]
	if len(lanes) != zero.NumLanes() {
		return scenario{}, &hwy.LaneCountError{Want: zero.NumLanes(), Got: len(lanes)}
	}
	v, err := hwy.Load[int32, R](lanes)
	if err != nil {
		return scenario{}, err
	}

	input := v.String()
	cmp := v.Greater(hwy.Set[int32, R](threshold))
	adj := hwy.Blend(cmp, hwy.Set[int32, R](falseValue), hwy.Set[int32, R](trueValue))
	v.AddAssign(adj)

	return scenario{
		Width:      v.Width(),
		Level:      hwy.LevelOf[int32, R](),
		Input:      input,
		Comparison: cmp.String(),
		Blend:      adj.String(),
		Result:     v.String(),
	}, nil
}

func parseLanes(args []string) ([]int32, error) {
	lanes := make([]int32, len(args))
	for i, arg := range args {
		x, err := strconv.ParseInt(arg, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("lane %d: %w", i, err)
		}
		lanes[i] = int32(x)
	}
	return lanes, nil
}

type runOptions struct {
	width      string
	threshold  int32
	falseValue int32
	trueValue  int32
}

func newRunCmd(root *rootOptions) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run [flags] lane...",
		Short: "Compare lanes against a threshold, blend two adjustments and accumulate",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, err := hwy.ParseWidth(opts.width)
			if err != nil {
				return err
			}
			lanes, err := parseLanes(args)
			if err != nil {
				return err
			}

			var s scenario
			switch width {
			case hwy.Narrow:
				s, err = runScenario[hwy.Int32x4](lanes, opts.threshold, opts.falseValue, opts.trueValue)
			case hwy.Wide:
				s, err = runScenario[hwy.Int32x8](lanes, opts.threshold, opts.falseValue, opts.trueValue)
			}
			if err != nil {
				return fmt.Errorf("%s vector: %w", width, err)
			}

			root.logger.Debug("scenario complete",
				"width", s.Width.String(),
				"lowering", s.Level.String(),
				"threshold", opts.threshold)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "simple %d bit test (%s):\n", s.Width.Bits(), s.Level)
			fmt.Fprintf(out, "input:      %s\n", s.Input)
			fmt.Fprintf(out, "comparison: %s\n", s.Comparison)
			fmt.Fprintf(out, "blend:      %s\n", s.Blend)
			fmt.Fprintf(out, "result:     %s\n", s.Result)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.width, "width", "narrow", "Vector width (narrow/128, wide/256)")
	cmd.Flags().Int32Var(&opts.threshold, "threshold", 5, "Lanes greater than this take the --true adjustment")
	cmd.Flags().Int32Var(&opts.falseValue, "false", 10, "Adjustment for lanes not above the threshold")
	cmd.Flags().Int32Var(&opts.trueValue, "true", 3, "Adjustment for lanes above the threshold")
	return cmd
}
