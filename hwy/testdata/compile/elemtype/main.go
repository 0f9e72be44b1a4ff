package main

import "github.com/ajroetker/fixedvec/hwy"

var _ hwy.Vector[int64, hwy.Int32x4]

func main() {}
