package main

import "github.com/ajroetker/fixedvec/hwy"

var _ = hwy.NewInt32x8(1, 2, 3, 4, 5, 6, 7, 8, 9)

func main() {}
