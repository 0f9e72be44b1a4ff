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

//go:build amd64 && !goexperiment.simd

package hwy

import "golang.org/x/sys/cpu"

// Fallback for when GOEXPERIMENT=simd is not enabled.
// The CPU features are still detected so callers can report them, but
// without archsimd every register keeps its portable lowering.

var (
	// hasAVX indicates VEX-encoded 128-bit integer ops (Sandy Bridge+)
	hasAVX bool

	// hasAVX2 indicates 256-bit integer ops (Haswell+)
	hasAVX2 bool
)

func init() {
	hasAVX = cpu.X86.HasAVX
	hasAVX2 = cpu.X86.HasAVX2
	setScalarMode()
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = Narrow
	currentName = "scalar"
}

// HasAVX returns true if the CPU supports AVX instructions.
func HasAVX() bool {
	return hasAVX
}

// HasAVX2 returns true if the CPU supports AVX2 instructions.
func HasAVX2() bool {
	return hasAVX2
}

// HasNEON returns false on x86.
func HasNEON() bool {
	return false
}
