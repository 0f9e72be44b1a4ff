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

import (
	"fmt"
	"strconv"
	"strings"
)

// Width is the total size in bits of the register backing a vector.
type Width int

const (
	// Narrow is a 128-bit register (SSE, AVX-128, NEON).
	Narrow Width = 128

	// Wide is a 256-bit register (AVX2).
	Wide Width = 256
)

// Bits returns the register size in bits.
func (w Width) Bits() int {
	return int(w)
}

// Bytes returns the register size in bytes (16 for Narrow, 32 for Wide).
func (w Width) Bytes() int {
	return int(w) / 8
}

// Lanes returns how many elements of elemBytes bytes fit in the register.
func (w Width) Lanes(elemBytes int) int {
	if elemBytes <= 0 {
		return 0
	}
	return w.Bytes() / elemBytes
}

// String returns "narrow", "wide", or the bit count for other values.
func (w Width) String() string {
	switch w {
	case Narrow:
		return "narrow"
	case Wide:
		return "wide"
	default:
		return strconv.Itoa(int(w)) + "bit"
	}
}

// ParseWidth parses a width class name ("narrow", "wide") or a bit count
// ("128", "256"). The result is always a supported width.
func ParseWidth(s string) (Width, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "narrow", "128", "128bit":
		return Narrow, nil
	case "wide", "256", "256bit":
		return Wide, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownWidth, s)
	}
}
