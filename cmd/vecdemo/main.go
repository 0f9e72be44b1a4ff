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

// vecdemo exercises the hwy vector contract from the command line.
//
// Usage:
//
//	vecdemo run --width narrow --threshold 5 --false 10 --true 3 -- 4 7 -2 9
//	vecdemo run --width wide --threshold 5 --false 0 --true 3 -- 4 -2 9 7 3 2 4 6
//	vecdemo bulk --threshold 0 --below -1 --above 1 --workers 4 -- 5 -3 8 ...
//	vecdemo info
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
