package main

import "github.com/ajroetker/fixedvec/hwy"

var (
	_ hwy.Vector[int32, hwy.Int32x4]
	_ hwy.Vector[int32, hwy.Int32x8]
	_ = hwy.NewInt32x4(1, 2, 3, 4)
	_ = hwy.NewInt32x8(1, 2, 3, 4, 5, 6, 7, 8)
)

func main() {}
