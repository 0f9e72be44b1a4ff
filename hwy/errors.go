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
	"errors"
	"fmt"
)

var (
	// ErrNotMask is the panic cause when Blend receives a comparison vector
	// with a lane that is neither all-ones nor all-zeros while mask checking
	// is enabled.
	ErrNotMask = errors.New("hwy: comparison lane is not a mask")

	// ErrUnknownWidth is returned by ParseWidth for unsupported widths.
	ErrUnknownWidth = errors.New("hwy: unknown vector width")
)

// LaneCountError reports a slice that holds fewer values than the vector has
// lanes.
type LaneCountError struct {
	Want int
	Got  int
}

func (e *LaneCountError) Error() string {
	return fmt.Sprintf("hwy: need %d lanes, got %d values", e.Want, e.Got)
}
