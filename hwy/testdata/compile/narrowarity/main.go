package main

import "github.com/ajroetker/fixedvec/hwy"

var _ = hwy.NewInt32x4(1, 2, 3)

func main() {}
